// Command mazegen builds a maze with one of the four generators and prints
// it, or replays its construction in the terminal.
//
//	mazegen -method dig -width 41 -height 21 -seed 7
//	mazegen -method wallextend -animate -delay 30ms
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazegen"
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

var (
	methodFlag   = flag.String("method", string(mazegen.Dig), "generation method: "+methodList())
	widthFlag    = flag.Int("width", 31, "maze width in cells (odd, at least 5)")
	heightFlag   = flag.Int("height", 21, "maze height in cells (odd, at least 5)")
	seedFlag     = flag.Int64("seed", 0, "random seed, 0 for a clock seed")
	animateFlag  = flag.Bool("animate", false, "replay the construction in the terminal")
	delayFlag    = flag.Duration("delay", 20*time.Millisecond, "pause between animation steps")
	interiorFlag = flag.Bool("interior", false, "print the maze without its outer ring")
	statsFlag    = flag.Bool("stats", false, "print topology statistics")
)

// config is the parsed command line.
type config struct {
	method   mazegen.Method
	width    int
	height   int
	seed     int64
	animate  bool
	delay    time.Duration
	interior bool
	stats    bool
}

func methodList() string {
	names := make([]string, 0, 4)
	for _, m := range mazegen.Methods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("mazegen: ")

	method, err := mazegen.ParseMethod(*methodFlag)
	if err != nil {
		log.Fatal(err)
	}
	cfg := config{
		method:   method,
		width:    *widthFlag,
		height:   *heightFlag,
		seed:     *seedFlag,
		animate:  *animateFlag,
		delay:    *delayFlag,
		interior: *interiorFlag,
		stats:    *statsFlag,
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run generates one maze according to cfg and writes it to out.
func run(ctx context.Context, cfg config, out io.Writer) error {
	opts := []generator.Option{
		generator.WithSize(cfg.width, cfg.height),
		generator.WithSeed(cfg.seed),
	}

	var (
		m   *grid.Maze
		err error
	)
	start := time.Now()
	if cfg.animate {
		m, err = animate(ctx, cfg, opts)
	} else {
		m, err = mazegen.Generate(ctx, cfg.method, opts...)
	}
	if err != nil {
		return err
	}
	w, h := m.Size()
	log.Printf("%s %dx%d seed=%d in %v", cfg.method, w, h, cfg.seed, time.Since(start).Round(time.Microsecond))

	return write(out, m, cfg)
}

// animate replays the construction on a tcell screen and returns the
// finished maze once the user dismisses the view.
func animate(ctx context.Context, cfg config, opts []generator.Option) (*grid.Maze, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	v, err := newViewer(screen, cfg.method, cfg.delay, opts...)
	if err != nil {
		return nil, err
	}
	return v.run(ctx)
}

func write(out io.Writer, m *grid.Maze, cfg config) error {
	if cfg.interior {
		m = m.Interior()
	}
	if _, err := io.WriteString(out, m.String()); err != nil {
		return err
	}
	if !cfg.stats {
		return nil
	}
	s := grid.Analyze(m.Grid())
	_, err := fmt.Fprintf(out, "passable=%d walls=%d edges=%d dead-ends=%d perfect=%t\n",
		s.Passable, s.Walls, s.Edges, s.DeadEnds, s.Perfect())
	return err
}
