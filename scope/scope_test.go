package scope

import (
	"testing"

	"github.com/nathoo/gnusto/types"
)

func testState() (*types.GameState, *types.Location) {
	s := types.NewGameState()
	loc := &types.Location{ID: "hall", Name: "Hall"}
	s.Locations["hall"] = loc

	s.Items["lamp"] = &types.Item{ID: "lamp", Name: "lamp", Parent: types.Parent{Kind: types.ParentPlayer}, Flags: types.FlagLightSource}
	s.Items["box"] = &types.Item{ID: "box", Name: "box", Parent: types.Parent{Kind: types.ParentLocation, ID: "hall"}, Flags: types.FlagContainer}
	s.Items["coin"] = &types.Item{ID: "coin", Name: "coin", Parent: types.Parent{Kind: types.ParentItem, ID: "box"}}
	return s, loc
}

func TestIsDark(t *testing.T) {
	s, loc := testState()

	if !IsDark(s, loc) {
		t.Fatal("room should be dark: held lamp is off by default")
	}
}

func TestIsDark_LampOffMeansDark(t *testing.T) {
	s, loc := testState()
	s.Items["lamp"].Flags = s.Items["lamp"].Flags.Clear(types.FlagOn)
	if !IsDark(s, loc) {
		t.Fatal("expected dark room with lamp off and no inherent light")
	}
}

func TestIsDark_LampOnMeansLit(t *testing.T) {
	s, loc := testState()
	s.Items["lamp"].Flags = s.Items["lamp"].Flags.Set(types.FlagOn)
	if IsDark(s, loc) {
		t.Fatal("expected lit room with lamp on")
	}
}

func TestInScope_ClosedContainerHidesContents(t *testing.T) {
	s, loc := testState()
	ids := InScopeSet(s, loc)
	if ids["coin"] {
		t.Error("coin should not be in scope: box is closed and opaque")
	}
	if !ids["box"] {
		t.Error("box itself should be in scope")
	}
}

func TestInScope_OpenContainerRevealsContents(t *testing.T) {
	s, loc := testState()
	s.Items["box"].Flags = s.Items["box"].Flags.Set(types.FlagOpen)
	ids := InScopeSet(s, loc)
	if !ids["coin"] {
		t.Error("coin should be in scope once box is open")
	}
}

func TestCanReach_ClosedContainerBlocks(t *testing.T) {
	s, loc := testState()
	if CanReach(s, loc, "coin") {
		t.Error("coin should not be reachable inside a closed box")
	}
	s.Items["box"].Flags = s.Items["box"].Flags.Set(types.FlagOpen)
	if !CanReach(s, loc, "coin") {
		t.Error("coin should be reachable once box is open")
	}
}

func TestCanCarry(t *testing.T) {
	s, _ := testState()
	s.Items["lamp"].Size = 5
	if !CanCarry(s, 10, 4) {
		t.Error("expected room for 4 more size units with 10 max and 5 held")
	}
	if CanCarry(s, 10, 6) {
		t.Error("expected no room for 6 more size units with 10 max and 5 held")
	}
	if !CanCarry(s, -1, 1000) {
		t.Error("negative maxCarry should mean unlimited")
	}
}
