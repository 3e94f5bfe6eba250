package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/snapshot"
)

var testMap = core.SeededMapID(1, 0)

func testSnapshot() snapshot.Snapshot {
	ms := snapshot.MapState{ID: testMap, Bounds: grid.Bounds{Width: 3, Height: 2}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			ms.Tiles = append(ms.Tiles, snapshot.TileState{Pos: core.Pos(x, y)})
		}
	}
	ms.Tiles[0].Strength = component.StrengthTwo
	ms.Tiles[2].Terrain = component.TerrainNonColorable

	return snapshot.Snapshot{
		Tick: 7,
		Maps: []snapshot.MapState{ms},
		Emitters: []snapshot.EmitterState{
			{Entity: 1, Kind: emitter.KindPulser, Player: 1, Map: testMap, Pos: core.Pos(1, 1)},
		},
		Points: []snapshot.PointsState{
			{Player: core.HumanPlayer, Building: 20, Ability: 10},
			{Player: 1, Building: 20, Ability: 10},
		},
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 10)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

type fakePlacer struct {
	reqs []engine.PlacementRequest
	err  error
}

func (p *fakePlacer) Place(req engine.PlacementRequest) (core.Entity, error) {
	p.reqs = append(p.reqs, req)
	return 1, p.err
}

func TestViewDrawsTilesAndEmitters(t *testing.T) {
	screen := newSimScreen(t)
	v := NewView(screen, nil)
	v.Update(testSnapshot())
	v.Draw()

	// Map drawn at offset (1,1), cursor sits on (0,0)
	if r := runeAt(screen, 1, 1); r != '2' {
		t.Errorf("Expected strength glyph '2', got %q", r)
	}
	if r := runeAt(screen, 2, 1); r != GlyphNeutral {
		t.Errorf("Expected neutral glyph, got %q", r)
	}
	if r := runeAt(screen, 3, 1); r != GlyphBlocked {
		t.Errorf("Expected blocked glyph, got %q", r)
	}
	if r := runeAt(screen, 2, 2); r != 'P' {
		t.Errorf("Expected pulser glyph, got %q", r)
	}
	if row := rowText(screen, 4); !strings.HasPrefix(row, " tick 7") {
		t.Errorf("Expected status line, got %q", row)
	}
}

func TestViewKeysDrivePlacement(t *testing.T) {
	screen := newSimScreen(t)
	placer := &fakePlacer{err: errors.New("tile stacking capacity reached")}
	v := NewView(screen, placer)
	v.Update(testSnapshot())

	for range 3 {
		v.HandleKey(tcell.KeyRight, 0)
	}
	v.HandleKey(tcell.KeyRune, '3')
	v.HandleKey(tcell.KeyRune, 'd')
	v.HandleKey(tcell.KeyRune, ' ')

	if len(placer.reqs) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(placer.reqs))
	}
	req := placer.reqs[0]
	if req.Pos != core.Pos(2, 0) {
		t.Errorf("Expected cursor clamped to (2,0), got %s", req.Pos)
	}
	if req.Kind != emitter.KindLine || req.Direction != grid.DirN || req.Map != testMap || req.Player != core.HumanPlayer {
		t.Errorf("Unexpected request %+v", req)
	}
	if msg := v.Context().Message; msg != placer.err.Error() {
		t.Errorf("Expected error message, got %q", msg)
	}

	for range 4 {
		v.HandleKey(tcell.KeyRune, 'd')
	}
	if dir := v.Context().Direction; dir != grid.DirNone {
		t.Errorf("Expected direction to cycle back to none, got %s", dir)
	}

	if !v.HandleKey(tcell.KeyRune, 'q') || !v.HandleKey(tcell.KeyEscape, 0) {
		t.Error("Expected q and Esc to quit")
	}
}

func TestViewMuteToggle(t *testing.T) {
	v := NewView(newSimScreen(t), nil)
	enabled := false
	v.SetMuteToggle(func() bool { enabled = !enabled; return enabled }, true)

	v.HandleKey(tcell.KeyRune, 'm')
	if v.Context().Muted || !enabled {
		t.Error("Expected audio enabled after toggling")
	}
}

func TestOverlayShowsResult(t *testing.T) {
	screen := newSimScreen(t)
	v := NewView(screen, nil)
	s := testSnapshot()
	s.Ended = true
	s.Winner = 1
	v.Update(s)
	v.Draw()

	if row := rowText(screen, 2); !strings.Contains(row, "DEFEAT - player 1 wins") {
		t.Errorf("Expected defeat banner, got %q", row)
	}

	v.HandleKey(tcell.KeyRune, '1')
	v.Draw()
	if row := rowText(screen, 2); strings.Contains(row, "DEFEAT") {
		t.Errorf("Expected banner dismissed, got %q", row)
	}
}

type markRenderer struct{ r rune }

func (m markRenderer) Render(_ RenderContext, screen tcell.Screen) {
	screen.SetContent(0, 0, m.r, nil, StyleBackground)
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newSimScreen(t)
	o := NewRenderOrchestrator(screen)
	o.Register(markRenderer{'b'}, PriorityUI)
	o.Register(markRenderer{'a'}, PriorityTiles)
	o.Register(markRenderer{'c'}, PriorityUI)
	o.RenderFrame(RenderContext{})

	if r := runeAt(screen, 0, 0); r != 'c' {
		t.Errorf("Expected last registered top priority to draw last, got %q", r)
	}
}

func TestPlayerColorScalesWithStrength(t *testing.T) {
	weak := PlayerColor(core.HumanPlayer, component.StrengthOne)
	strong := PlayerColor(core.HumanPlayer, component.StrengthFive)
	wr, wg, wb := weak.RGB()
	sr, sg, sb := strong.RGB()
	if wr+wg+wb >= sr+sg+sb {
		t.Errorf("Expected stronger tiles brighter, got %v vs %v", weak, strong)
	}
}
