package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/scope"
	"github.com/nathoo/gnusto/types"
)

// TakeHandler implements TAKE/GET, including TAKE ALL.
type TakeHandler struct{}

func (TakeHandler) Verb() string        { return "take" }
func (TakeHandler) RequiresLight() bool { return true }
func (TakeHandler) ConsumesTurn() bool  { return true }

func (TakeHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.IsAllDirect {
		return takeAll(ctx)
	}
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Take what?")
	}
	if err := takePrecondition(ctx, it); err != "" {
		return msg(err)
	}
	return types.ActionResult{
		Message: "Taken.",
		Changes: []types.StateChange{
			types.ReparentChange(it.ID, types.Parent{Kind: types.ParentPlayer}),
			touch(it.ID),
		},
	}
}

func takePrecondition(ctx Context, it *types.Item) string {
	if it.Parent.IsPlayer() {
		return "You already have that."
	}
	if !it.Flags.Has(types.FlagTakable) {
		return fmt.Sprintf("You can't take the %s.", it.Name)
	}
	if !scope.CanReach(ctx.State, ctx.Location, it.ID) {
		return fmt.Sprintf("You can't reach the %s.", it.Name)
	}
	if !scope.CanCarry(ctx.State, ctx.MaxCarry, it.Size) {
		return "Your hands are full."
	}
	return ""
}

func takeAll(ctx Context) types.ActionResult {
	var changes []types.StateChange
	var taken, skipped []string
	for _, ref := range ctx.Command.DirectObjects {
		it := ctx.State.Items[ref.ID]
		if it == nil {
			continue
		}
		if takePrecondition(ctx, it) != "" {
			skipped = append(skipped, it.ID)
			continue
		}
		changes = append(changes, types.ReparentChange(it.ID, types.Parent{Kind: types.ParentPlayer}), touch(it.ID))
		taken = append(taken, it.ID)
	}
	if len(taken) == 0 {
		return msg("There is nothing here you can take.")
	}
	return types.ActionResult{
		Message:     "Taken.",
		Changes:     changes,
		ConsumedAll: taken,
		SkippedAll:  skipped,
	}
}

// DropHandler implements DROP/PUT DOWN, including DROP ALL.
type DropHandler struct{}

func (DropHandler) Verb() string        { return "drop" }
func (DropHandler) RequiresLight() bool { return true }
func (DropHandler) ConsumesTurn() bool  { return true }

func (DropHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.IsAllDirect {
		return dropAll(ctx)
	}
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Drop what?")
	}
	if !it.Parent.IsPlayer() {
		return msg("You don't have that.")
	}
	changes := []types.StateChange{
		types.ReparentChange(it.ID, types.Parent{Kind: types.ParentLocation, ID: ctx.Location.ID}),
		touch(it.ID),
	}
	if it.Flags.Has(types.FlagWorn) {
		changes = append(changes, types.FlagChange(it.ID, types.FlagWorn, false))
	}
	return types.ActionResult{
		Message: "Dropped.",
		Changes: changes,
	}
}

func dropAll(ctx Context) types.ActionResult {
	var changes []types.StateChange
	var dropped []string
	for _, ref := range ctx.Command.DirectObjects {
		it := ctx.State.Items[ref.ID]
		if it == nil || !it.Parent.IsPlayer() {
			continue
		}
		changes = append(changes, types.ReparentChange(it.ID, types.Parent{Kind: types.ParentLocation, ID: ctx.Location.ID}), touch(it.ID))
		if it.Flags.Has(types.FlagWorn) {
			changes = append(changes, types.FlagChange(it.ID, types.FlagWorn, false))
		}
		dropped = append(dropped, it.ID)
	}
	if len(dropped) == 0 {
		return msg("You aren't carrying anything.")
	}
	return types.ActionResult{Message: "Dropped.", Changes: changes, ConsumedAll: dropped}
}

// PutOnHandler implements PUT <item> ON <surface>; PUT <item> IN <thing>
// is handed to InsertHandler.
type PutOnHandler struct{}

func (PutOnHandler) Verb() string        { return "put_on" }
func (PutOnHandler) RequiresLight() bool { return true }
func (PutOnHandler) ConsumesTurn() bool  { return true }

func (PutOnHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.Preposition == "in" {
		return InsertHandler{}.Process(ctx)
	}
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	surface := objectItem(ctx.State, ctx.Command.IndirectObject)
	if item == nil || surface == nil {
		return msg("Put what on what?")
	}
	if !item.Parent.IsPlayer() && !scope.CanReach(ctx.State, ctx.Location, item.ID) {
		return msg("You don't have that.")
	}
	if !surface.Flags.Has(types.FlagSurface) {
		return msg(fmt.Sprintf("You can't put anything on the %s.", surface.Name))
	}
	if item.ID == surface.ID {
		return msg("You can't put something on itself.")
	}
	if ctx.State.IsAncestorOf(item.ID, surface.ID) {
		return msg(fmt.Sprintf("You can't put the %s on the %s — the %s is already inside the %s.", item.Name, surface.Name, surface.Name, item.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You put the %s on the %s.", item.Name, surface.Name),
		Changes: []types.StateChange{
			types.ReparentChange(item.ID, types.Parent{Kind: types.ParentItem, ID: surface.ID}),
			touch(item.ID), touch(surface.ID),
		},
	}
}

// InsertHandler implements PUT <item> IN <container>.
type InsertHandler struct{}

func (InsertHandler) Verb() string        { return "insert" }
func (InsertHandler) RequiresLight() bool { return true }
func (InsertHandler) ConsumesTurn() bool  { return true }

func (InsertHandler) Process(ctx Context) types.ActionResult {
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	container := objectItem(ctx.State, ctx.Command.IndirectObject)
	if item == nil || container == nil {
		return msg("Put what in what?")
	}
	if !item.Parent.IsPlayer() && !scope.CanReach(ctx.State, ctx.Location, item.ID) {
		return msg("You don't have that.")
	}
	if !container.Flags.Has(types.FlagContainer) {
		return msg(fmt.Sprintf("You can't put anything in the %s.", container.Name))
	}
	if !container.Flags.Has(types.FlagOpen) {
		return msg(fmt.Sprintf("The %s is closed.", container.Name))
	}
	if item.ID == container.ID {
		return msg("You can't put something in itself.")
	}
	if ctx.State.IsAncestorOf(item.ID, container.ID) {
		return msg(fmt.Sprintf("You can't put the %s in the %s — the %s is already inside the %s.", item.Name, container.Name, container.Name, item.Name))
	}
	if container.Capacity >= 0 && scope.CarriedWeightInContainer(ctx.State, container.ID)+item.Size > container.Capacity {
		return msg(fmt.Sprintf("The %s won't fit in the %s.", item.Name, container.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You put the %s in the %s.", item.Name, container.Name),
		Changes: []types.StateChange{
			types.ReparentChange(item.ID, types.Parent{Kind: types.ParentItem, ID: container.ID}),
			touch(item.ID), touch(container.ID),
		},
	}
}
