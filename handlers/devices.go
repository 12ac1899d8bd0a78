package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/scope"
	"github.com/nathoo/gnusto/types"
)

// wouldGoDarkWithoutLight reports whether turning off/extinguishing
// sourceID would leave the player's current location dark — true only
// when the location isn't inherently lit and no other active light
// source remains in scope.
func wouldGoDarkWithoutLight(ctx Context, sourceID string) bool {
	if ctx.Location.Flags.Has(types.LocInherentlyLit) {
		return false
	}
	for _, id := range scope.InScope(ctx.State, ctx.Location) {
		if id == sourceID {
			continue
		}
		it := ctx.State.Items[id]
		if it == nil {
			continue
		}
		if it.Flags.Has(types.FlagLightSource) && (it.Flags.Has(types.FlagOn) || it.Flags.Has(types.FlagBurning)) {
			return false
		}
	}
	return true
}

// TurnOnHandler implements TURN ON/SWITCH ON/ACTIVATE <item>.
type TurnOnHandler struct{}

func (TurnOnHandler) Verb() string        { return "turn_on" }
func (TurnOnHandler) RequiresLight() bool { return false }
func (TurnOnHandler) ConsumesTurn() bool  { return true }

func (TurnOnHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Turn on what?")
	}
	if !it.Flags.Has(types.FlagDevice) && !it.Flags.Has(types.FlagLightSource) {
		return msg(fmt.Sprintf("You can't turn on the %s.", it.Name))
	}
	if it.Flags.Has(types.FlagOn) {
		return msg(fmt.Sprintf("The %s is already on.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("The %s is now on.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagOn, true), touch(it.ID)},
	}
}

// TurnOffHandler implements TURN OFF/SWITCH OFF/DEACTIVATE <item>.
type TurnOffHandler struct{}

func (TurnOffHandler) Verb() string        { return "turn_off" }
func (TurnOffHandler) RequiresLight() bool { return false }
func (TurnOffHandler) ConsumesTurn() bool  { return true }

func (TurnOffHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Turn off what?")
	}
	if !it.Flags.Has(types.FlagDevice) && !it.Flags.Has(types.FlagLightSource) {
		return msg(fmt.Sprintf("You can't turn off the %s.", it.Name))
	}
	if !it.Flags.Has(types.FlagOn) {
		return msg(fmt.Sprintf("The %s is already off.", it.Name))
	}
	message := fmt.Sprintf("The %s is now off.", it.Name)
	if it.Flags.Has(types.FlagLightSource) && wouldGoDarkWithoutLight(ctx, it.ID) {
		message += " It is now pitch dark in here."
	}
	return types.ActionResult{
		Message: message,
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagOn, false), touch(it.ID)},
	}
}

// BurnHandler implements BURN/LIGHT <item> [WITH <source>].
type BurnHandler struct{}

func (BurnHandler) Verb() string        { return "burn" }
func (BurnHandler) RequiresLight() bool { return true }
func (BurnHandler) ConsumesTurn() bool  { return true }

func (BurnHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Burn what?")
	}
	if !it.Flags.Has(types.FlagFlammable) {
		return msg(fmt.Sprintf("The %s isn't flammable.", it.Name))
	}
	if it.Flags.Has(types.FlagBurning) {
		return msg(fmt.Sprintf("The %s is already burning.", it.Name))
	}
	source := objectItem(ctx.State, ctx.Command.IndirectObject)
	if !it.Flags.Has(types.FlagSelfIgnitable) {
		if source == nil {
			return msg("Burn it with what?")
		}
		lit := source.Flags.Has(types.FlagBurning) ||
			(source.Flags.Has(types.FlagLightSource) && source.Flags.Has(types.FlagOn))
		if !lit {
			return msg(fmt.Sprintf("The %s isn't lit.", source.Name))
		}
	}
	return types.ActionResult{
		Message: fmt.Sprintf("The %s catches fire.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagBurning, true)},
	}
}

// ExtinguishHandler implements EXTINGUISH/PUT OUT/DOUSE <item>.
type ExtinguishHandler struct{}

func (ExtinguishHandler) Verb() string        { return "extinguish" }
func (ExtinguishHandler) RequiresLight() bool { return false }
func (ExtinguishHandler) ConsumesTurn() bool  { return true }

func (ExtinguishHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Extinguish what?")
	}
	if it.Flags.Has(types.FlagBurning) {
		message := fmt.Sprintf("The %s is no longer burning.", it.Name)
		if it.Flags.Has(types.FlagLightSource) && wouldGoDarkWithoutLight(ctx, it.ID) {
			message += " It is now pitch dark in here."
		}
		return types.ActionResult{
			Message: message,
			Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagBurning, false)},
		}
	}
	if it.Flags.Has(types.FlagLightSource) && it.Flags.Has(types.FlagOn) {
		message := fmt.Sprintf("The %s is now off.", it.Name)
		if wouldGoDarkWithoutLight(ctx, it.ID) {
			message += " It is now pitch dark in here."
		}
		return types.ActionResult{
			Message: message,
			Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagOn, false)},
		}
	}
	return msg(fmt.Sprintf("The %s isn't burning.", it.Name))
}
