package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazegen"
	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// errQuit is returned when the user leaves the view before generation ends.
var errQuit = errors.New("generation abandoned")

// Each maze cell is drawn two columns wide to keep it roughly square.
const cellColumns = 2

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFresh   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePending = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// viewer steps a generator on a timer and mirrors its cell changes onto a
// tcell screen.
type viewer struct {
	screen tcell.Screen
	method mazegen.Method
	gen    generator.Generator
	delay  time.Duration

	mirror  *grid.Grid
	pending []generator.Event
	last    []generator.Event
	steps   int
	edits   int
	done    bool
}

func newViewer(screen tcell.Screen, method mazegen.Method, delay time.Duration, opts ...generator.Option) (*viewer, error) {
	v := &viewer{screen: screen, method: method, delay: delay}
	opts = append(opts, generator.WithOnChange(v.record))
	gen, err := mazegen.New(method, opts...)
	if err != nil {
		return nil, err
	}
	v.gen = gen
	v.mirror = gen.Snapshot()
	return v, nil
}

// record is the generator's OnChange hook. Events are queued and applied
// after Step returns so drawing never happens inside the generator.
func (v *viewer) record(e generator.Event) {
	v.pending = append(v.pending, e)
}

// advance performs one Step, applies its events and reports whether the
// generator has finished.
func (v *viewer) advance() bool {
	if v.done {
		return true
	}
	res := v.gen.Step()
	v.steps++

	v.last = v.last[:0]
	for _, e := range v.pending {
		v.mirror.Set(e.X, e.Y, e.To)
		v.last = append(v.last, e)
	}
	v.edits += len(v.pending)
	v.pending = v.pending[:0]

	if res == generator.Finished {
		v.done = true
		if m, err := v.gen.Maze(); err == nil {
			v.mirror = m.Grid()
		}
		v.last = v.last[:0]
	}
	return v.done
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.mirror.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, style := cellLook(v.mirror.Get(x, y))
			for c := 0; c < cellColumns; c++ {
				v.screen.SetContent(x*cellColumns+c, y, r, nil, style)
			}
		}
	}
	for _, e := range v.last {
		r, _ := cellLook(e.To)
		for c := 0; c < cellColumns; c++ {
			v.screen.SetContent(e.X*cellColumns+c, e.Y, r, nil, styleFresh)
		}
	}

	status := fmt.Sprintf("%s  %s  steps=%d edits=%d", v.method, v.gen.State(), v.steps, v.edits)
	if v.done {
		status += "  (any key to exit)"
	} else {
		status += "  (q to quit)"
	}
	drawText(v.screen, 0, h+1, status, styleStatus)
	v.screen.Show()
}

func cellLook(c grid.CellType) (rune, tcell.Style) {
	switch c {
	case grid.Wall:
		return grid.Glyph(c), styleWall
	case grid.PendingWall:
		return '▒', stylePending
	case grid.Region:
		return '·', stylePending
	case grid.Start, grid.Goal:
		return grid.Glyph(c), styleMarker
	default:
		return grid.Glyph(c), tcell.StyleDefault
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// run drives the generator until it finishes and the user presses a key.
// Esc, Ctrl+C or q before the end abandons the run.
func (v *viewer) run(ctx context.Context) (*grid.Maze, error) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	delay := v.delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.done {
					return v.gen.Maze()
				}
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil, errQuit
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			}
		case <-ticker.C:
			if v.done {
				continue
			}
			v.advance()
			v.draw()
		}
	}
}
