package handlers

import (
	"testing"

	"github.com/nathoo/gnusto/types"
)

func testContext() (Context, *types.GameState) {
	s := types.NewGameState()
	loc := &types.Location{ID: "hall", Name: "Hall", Flags: types.LocInherentlyLit}
	s.Locations["hall"] = loc

	s.Items["lantern"] = &types.Item{
		ID: "lantern", Name: "brass lantern",
		Parent: types.Parent{Kind: types.ParentLocation, ID: "hall"},
		Flags:  types.FlagTakable | types.FlagLightSource | types.FlagDevice,
	}
	s.Items["box"] = &types.Item{
		ID: "box", Name: "box",
		Parent: types.Parent{Kind: types.ParentLocation, ID: "hall"},
		Flags:  types.FlagContainer | types.FlagOpenable | types.FlagOpen, Capacity: -1,
	}
	s.Items["bag"] = &types.Item{
		ID: "bag", Name: "bag",
		Parent: types.Parent{Kind: types.ParentLocation, ID: "hall"},
		Flags:  types.FlagContainer | types.FlagOpenable | types.FlagOpen, Capacity: -1,
	}

	s.Player = types.Player{Location: "hall", MaxHealth: 100, Health: 100, Flags: map[string]bool{}}
	return Context{State: s, Location: loc, MaxCarry: -1}, s
}

func applyChanges(s *types.GameState, changes []types.StateChange) {
	for _, c := range changes {
		switch c.Attribute {
		case types.AttrParent:
			s.Items[c.TargetID].Parent = c.NewValue.(types.Parent)
		case types.AttrFlag:
			if flag, on, ok := types.FlagEdit(c); ok {
				s.Items[c.TargetID].Flags = s.Items[c.TargetID].Flags.With(flag, on)
			}
		}
	}
}

// S1/law: TAKE x then DROP x returns x to the player's location with
// touched set, per spec.md §8's "Laws" list.
func TestTakeThenDrop(t *testing.T) {
	ctx, s := testContext()
	ctx.Command = types.Command{Verb: "take", DirectObject: ptr(types.ItemRef("lantern"))}

	res := TakeHandler{}.Process(ctx)
	if res.Message != "Taken." {
		t.Fatalf("unexpected take message: %q", res.Message)
	}
	applyChanges(s, res.Changes)
	if !s.Items["lantern"].Parent.IsPlayer() {
		t.Fatal("lantern should be held after TAKE")
	}

	ctx.Command = types.Command{Verb: "drop", DirectObject: ptr(types.ItemRef("lantern"))}
	res = DropHandler{}.Process(ctx)
	applyChanges(s, res.Changes)
	if !s.Items["lantern"].Parent.IsLocation("hall") {
		t.Fatal("lantern should be back in the hall after DROP")
	}
}

func TestTake_NotTakable(t *testing.T) {
	ctx, s := testContext()
	s.Items["lantern"].Flags = s.Items["lantern"].Flags.Clear(types.FlagTakable)
	ctx.Command = types.Command{Verb: "take", DirectObject: ptr(types.ItemRef("lantern"))}

	res := TakeHandler{}.Process(ctx)
	if len(res.Changes) != 0 {
		t.Fatal("a rejected TAKE must produce no state changes")
	}
}

// S5: put box in bag when bag is already inside box must be rejected as a
// circular containment, with no state change.
func TestInsert_RejectsCycle(t *testing.T) {
	ctx, s := testContext()
	s.Items["bag"].Parent = types.Parent{Kind: types.ParentItem, ID: "box"}

	ctx.Command = types.Command{
		Verb:           "insert",
		DirectObject:   ptr(types.ItemRef("box")),
		IndirectObject: ptr(types.ItemRef("bag")),
	}
	res := InsertHandler{}.Process(ctx)
	if len(res.Changes) != 0 {
		t.Fatalf("expected no changes for a cyclic insert, got %v", res.Changes)
	}
}

func TestInsert_RespectsCapacity(t *testing.T) {
	ctx, s := testContext()
	s.Items["box"].Capacity = 5
	s.Items["coin"] = &types.Item{ID: "coin", Name: "coin", Parent: types.Parent{Kind: types.ParentPlayer}, Size: 10}

	ctx.Command = types.Command{
		Verb:           "insert",
		DirectObject:   ptr(types.ItemRef("coin")),
		IndirectObject: ptr(types.ItemRef("box")),
	}
	res := InsertHandler{}.Process(ctx)
	if len(res.Changes) != 0 {
		t.Fatal("an oversize item must not fit in a capacity-limited container")
	}
}

// law: OPEN c then CLOSE c restores open=false.
func TestOpenThenClose(t *testing.T) {
	ctx, s := testContext()
	s.Items["box"].Flags = s.Items["box"].Flags.Clear(types.FlagOpen)

	ctx.Command = types.Command{Verb: "open", DirectObject: ptr(types.ItemRef("box"))}
	res := OpenHandler{}.Process(ctx)
	applyChanges(s, res.Changes)
	if !s.Items["box"].Flags.Has(types.FlagOpen) {
		t.Fatal("box should be open")
	}

	ctx.Command = types.Command{Verb: "close", DirectObject: ptr(types.ItemRef("box"))}
	res = CloseHandler{}.Process(ctx)
	applyChanges(s, res.Changes)
	if s.Items["box"].Flags.Has(types.FlagOpen) {
		t.Fatal("box should be closed again")
	}
}

func ptr(r types.EntityRef) *types.EntityRef { return &r }
