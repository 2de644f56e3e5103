package clustering_test

import (
	"testing"

	"github.com/katalvlaran/mazegen/clustering"
	"github.com/katalvlaran/mazegen/generator"
)

// BenchmarkClustering measures a full 101×101 run with a fixed seed.
// Complexity: O(N²) for N anchors.
func BenchmarkClustering(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := clustering.New(generator.WithSize(101, 101), generator.WithSeed(42))
		for g.Step() == generator.Continue {
		}
	}
}
