package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/event"
)

func TestScoreAccruesForOwnersOnly(t *testing.T) {
	f := newFixture(t, 5, 5)
	f.w.Resources.Config.AccrualPeriod = time.Second
	f.w.Resources.Points = engine.NewPointsResource(f.w.Resources.Config.Players, 10, 10)
	f.own(core.Pos(0, 0), core.HumanPlayer, component.StrengthOne)

	f.step(9)
	if got := f.w.Resources.Points.Pool(core.HumanPlayer).Building; got != 10 {
		t.Fatalf("Accrued before a full period: %d", got)
	}

	f.step(1)
	human := f.w.Resources.Points.Pool(core.HumanPlayer)
	if human.Building != 11 || human.Ability != 11 {
		t.Errorf("Expected 11/11, got %d/%d", human.Building, human.Ability)
	}
	if other := f.w.Resources.Points.Pool(1); other.Building != 10 {
		t.Errorf("Player without tiles must not accrue, got %d", other.Building)
	}

	score := f.w.Resources.Score
	if score.Colorable != 25 || score.Tiles[core.HumanPlayer] != 1 {
		t.Errorf("Expected 1 of 25 tiles, got %d of %d", score.Tiles[core.HumanPlayer], score.Colorable)
	}
}

func TestDominationEndsMatch(t *testing.T) {
	f := newFixture(t, 5, 5)
	f.w.SetSystemEnabled("endcheck", true)
	f.own(core.Pos(0, 0), 1, component.StrengthOne)

	f.step(1)
	ended := f.w.Resources.Ended
	if ended == nil {
		t.Fatal("Expected match to end")
	}
	if ended.Winner != 1 || ended.Tick != 1 {
		t.Errorf("Expected winner 1 at tick 1, got %+v", *ended)
	}

	f.step(2)
	if f.w.Resources.Ended.Tick != 1 {
		t.Errorf("End result must not change, got tick %d", f.w.Resources.Ended.Tick)
	}
	if n := countEvents(f.q.Consume(), event.EventGameEnded); n != 1 {
		t.Errorf("Expected one game-ended event, got %d", n)
	}
}

func TestSinglePlayerNeverDominates(t *testing.T) {
	f := newFixture(t, 5, 5)
	f.w.Resources.Config.Players = []core.PlayerID{core.HumanPlayer}
	f.w.SetSystemEnabled("endcheck", true)
	f.own(core.Pos(0, 0), core.HumanPlayer, component.StrengthOne)

	f.step(3)
	if f.w.Resources.Ended != nil {
		t.Error("A lone player must not win by domination")
	}
}

func TestPercentageEndsMatch(t *testing.T) {
	f := newFixture(t, 5, 5)
	f.w.SetSystemEnabled("endcheck", true)
	f.w.Resources.Config.EndMode = engine.EndPercentage
	f.w.Resources.Config.EndTarget = 0.2

	for x := 0; x < 4; x++ {
		f.own(core.Pos(x, 0), core.HumanPlayer, component.StrengthOne)
	}
	f.own(core.Pos(4, 4), 1, component.StrengthOne)

	f.step(1)
	if f.w.Resources.Ended != nil {
		t.Fatal("4 of 25 tiles is below a 20% target")
	}

	f.own(core.Pos(4, 0), core.HumanPlayer, component.StrengthOne)
	f.step(1)
	if f.w.Resources.Ended == nil || f.w.Resources.Ended.Winner != core.HumanPlayer {
		t.Errorf("Expected player 0 to win at 20%%, got %+v", f.w.Resources.Ended)
	}
}
