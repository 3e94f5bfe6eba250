package render

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/snapshot"
	"github.com/lixenwraith/territory/system"
)

// Placer is the part of a match the view drives
type Placer interface {
	Place(req engine.PlacementRequest) (core.Entity, error)
}

// View is the interactive terminal front end: it draws snapshots and turns keys into placements
type View struct {
	screen  tcell.Screen
	orch    *RenderOrchestrator
	overlay *OverlayRenderer
	placer  Placer
	mute    func() bool

	frames chan snapshot.Snapshot

	mu  sync.Mutex
	ctx RenderContext
}

// NewView builds a view with the standard layers
func NewView(screen tcell.Screen, placer Placer) *View {
	v := &View{
		screen:  screen,
		orch:    NewRenderOrchestrator(screen),
		overlay: &OverlayRenderer{},
		placer:  placer,
		frames:  make(chan snapshot.Snapshot, 1),
	}
	v.orch.Register(&TileRenderer{}, PriorityTiles)
	v.orch.Register(&EmitterRenderer{}, PriorityEmitters)
	v.orch.Register(&CursorRenderer{}, PriorityCursor)
	v.orch.Register(&StatusBarRenderer{}, PriorityUI)
	v.orch.Register(v.overlay, PriorityOverlay)

	v.ctx.OffsetX, v.ctx.OffsetY = 1, 1
	v.ctx.Direction = grid.DirNone
	return v
}

// SetMuteToggle wires the mute key, fn returns true when audio is now enabled
func (v *View) SetMuteToggle(fn func() bool, muted bool) {
	v.mu.Lock()
	v.mute = fn
	v.ctx.Muted = muted
	v.mu.Unlock()
}

// Observe hands the view a new snapshot, only the latest undrawn one is kept
// Called from the tick goroutine
func (v *View) Observe(s snapshot.Snapshot) {
	select {
	case <-v.frames:
	default:
	}
	select {
	case v.frames <- s:
	default:
	}
}

// Context returns a copy of the current render state
func (v *View) Context() RenderContext {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctx
}

// Draw renders the current state
func (v *View) Draw() {
	v.orch.RenderFrame(v.Context())
}

// Update replaces the drawn snapshot
func (v *View) Update(s snapshot.Snapshot) {
	v.mu.Lock()
	v.ctx.Snapshot = s
	v.mu.Unlock()
}

// Run draws and handles input until q/Esc or ctx cancellation
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case s := <-v.frames:
			v.Update(s)
			v.Draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
			case *tcell.EventKey:
				if v.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			}
			v.Draw()
		}
	}
}

// HandleKey applies one key press, reporting true when the user asked to quit
//
//	arrows/hjkl move the cursor, 1-6 select a kind, d cycles the line direction,
//	space/enter places, m toggles audio, q/Esc quits
func (v *View) HandleKey(key tcell.Key, r rune) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.moveLocked(0, -1)
	case tcell.KeyDown:
		v.moveLocked(0, 1)
	case tcell.KeyLeft:
		v.moveLocked(-1, 0)
	case tcell.KeyRight:
		v.moveLocked(1, 0)
	case tcell.KeyEnter:
		v.placeLocked()
	case tcell.KeyRune:
		return v.runeLocked(r)
	}
	return false
}

func (v *View) runeLocked(r rune) bool {
	switch {
	case r == 'q':
		return true
	case r == 'k':
		v.moveLocked(0, -1)
	case r == 'j':
		v.moveLocked(0, 1)
	case r == 'h':
		v.moveLocked(-1, 0)
	case r == 'l':
		v.moveLocked(1, 0)
	case r == ' ':
		v.placeLocked()
	case r == 'd':
		v.ctx.Direction++
		if v.ctx.Direction >= grid.DirCount {
			v.ctx.Direction = grid.DirNone
		}
	case r == 'm':
		if v.mute != nil {
			v.ctx.Muted = !v.mute()
		}
	case r >= '1' && r < '1'+rune(emitter.KindCount):
		v.ctx.Selected = emitter.Kind(r - '1')
		v.ctx.Message = ""
	}
	if v.ctx.Snapshot.Ended {
		v.overlay.Dismissed = true
	}
	return false
}

func (v *View) moveLocked(dx, dy int) {
	next := v.ctx.Cursor.Add(dx, dy)
	ms, ok := v.ctx.MapState()
	if !ok || ms.Bounds.Contains(next) {
		v.ctx.Cursor = next
	}
}

func (v *View) placeLocked() {
	ms, ok := v.ctx.MapState()
	if !ok || v.placer == nil {
		return
	}
	_, err := v.placer.Place(engine.PlacementRequest{
		Player:    core.HumanPlayer,
		Kind:      v.ctx.Selected,
		Map:       ms.ID,
		Pos:       v.ctx.Cursor,
		Direction: v.ctx.Direction,
	})
	switch {
	case err == nil:
		v.ctx.Message = "placed " + v.ctx.Selected.String()
	case errors.Is(err, system.ErrGameOver):
		v.ctx.Message = "match is over"
	default:
		v.ctx.Message = err.Error()
	}
}
