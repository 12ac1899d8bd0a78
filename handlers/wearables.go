package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// WearHandler implements WEAR/DON <item>.
type WearHandler struct{}

func (WearHandler) Verb() string        { return "wear" }
func (WearHandler) RequiresLight() bool { return true }
func (WearHandler) ConsumesTurn() bool  { return true }

func (WearHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Wear what?")
	}
	if !it.Flags.Has(types.FlagWearable) {
		return msg(fmt.Sprintf("You can't wear the %s.", it.Name))
	}
	if it.Flags.Has(types.FlagScenery) {
		return msg(fmt.Sprintf("You can't wear the %s.", it.Name))
	}
	if !it.Parent.IsPlayer() {
		return msg("You aren't holding that.")
	}
	if it.Flags.Has(types.FlagWorn) {
		return msg(fmt.Sprintf("You're already wearing the %s.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You put on the %s.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagWorn, true), touch(it.ID)},
	}
}

// RemoveHandler implements REMOVE/TAKE OFF <item>.
type RemoveHandler struct{}

func (RemoveHandler) Verb() string        { return "remove" }
func (RemoveHandler) RequiresLight() bool { return true }
func (RemoveHandler) ConsumesTurn() bool  { return true }

func (RemoveHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Remove what?")
	}
	if !it.Flags.Has(types.FlagWorn) {
		return msg(fmt.Sprintf("You aren't wearing the %s.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You take off the %s.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagWorn, false), touch(it.ID)},
	}
}
