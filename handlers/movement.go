package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// GoHandler implements GO <direction> (and its bare-direction shortcut,
// already expanded to this form by the parser).
type GoHandler struct{}

func (GoHandler) Verb() string        { return "go" }
func (GoHandler) RequiresLight() bool { return false }
func (GoHandler) ConsumesTurn() bool  { return true }

func (GoHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.Direction == "" {
		return msg("Go where?")
	}
	exit, ok := ctx.Location.Exit(ctx.Command.Direction)
	if !ok {
		return msg("You can't go that way.")
	}
	if exit.DoorID != "" {
		door := ctx.State.Items[exit.DoorID]
		if door != nil && !door.Flags.Has(types.FlagOpen) {
			if exit.BlockedMessage != "" {
				return msg(exit.BlockedMessage)
			}
			if door.Flags.Has(types.FlagLocked) {
				return msg(fmt.Sprintf("The %s is locked.", door.Name))
			}
			return msg(fmt.Sprintf("The %s is closed.", door.Name))
		}
	}
	return types.ActionResult{
		Changes: []types.StateChange{
			{TargetID: "player", Attribute: types.AttrPlayerLoc, NewValue: exit.DestinationID},
		},
	}
}

// EnterHandler implements ENTER <item>, for entering a vehicle, cage, or
// other enterable item rather than a direction.
type EnterHandler struct{}

func (EnterHandler) Verb() string        { return "enter" }
func (EnterHandler) RequiresLight() bool { return true }
func (EnterHandler) ConsumesTurn() bool  { return true }

func (EnterHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Enter what?")
	}
	if !it.Flags.Has(types.FlagContainer) && !it.Flags.Has(types.FlagSurface) {
		return msg(fmt.Sprintf("You can't enter the %s.", it.Name))
	}
	if it.Flags.Has(types.FlagContainer) && !it.Flags.Has(types.FlagOpen) {
		return msg(fmt.Sprintf("The %s is closed.", it.Name))
	}
	// Content can wire a destination room onto an enterable item (a boat,
	// a cage) via a "enter_destination" prop; without one, entering just
	// narrates — the item is scenery you can get onto, not a vehicle.
	dest, _ := it.Props["enter_destination"].(string)
	if dest == "" {
		return msg(fmt.Sprintf("You get onto the %s. Nothing happens.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You get into the %s.", it.Name),
		Changes: []types.StateChange{
			{TargetID: "player", Attribute: types.AttrPlayerLoc, NewValue: dest},
		},
	}
}

// ExitHandler implements EXIT / OUT / LEAVE — the inverse of ENTER.
type ExitHandler struct{}

func (ExitHandler) Verb() string        { return "exit" }
func (ExitHandler) RequiresLight() bool { return false }
func (ExitHandler) ConsumesTurn() bool  { return true }

func (ExitHandler) Process(ctx Context) types.ActionResult {
	return msg("You are not inside anything.")
}

// ClimbHandler implements CLIMB <item>, used for ladders, trees, and
// exit-like climbable scenery.
type ClimbHandler struct{}

func (ClimbHandler) Verb() string        { return "climb" }
func (ClimbHandler) RequiresLight() bool { return true }
func (ClimbHandler) ConsumesTurn() bool  { return true }

func (ClimbHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.Direction != "" {
		return GoHandler{}.Process(ctx)
	}
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Climb what?")
	}
	if !it.Flags.Has(types.FlagClimbable) {
		return msg(fmt.Sprintf("You can't climb the %s.", it.Name))
	}
	return msg(fmt.Sprintf("You climb the %s, but there's nothing new to see from there.", it.Name))
}
