package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// genericVerb is a stateless verb whose only job is to produce a content
// prop (Props[propKey]) if present, or a fallback line otherwise, without
// mutating anything — the catch-all shape for most social/sensory verbs
// spec.md's vocabulary enumerates beyond the contract table.
type genericVerb struct {
	verb          string
	requiresLight bool
	propKey       string
	noObjFallback string
	objFallback   string
}

func (g genericVerb) Verb() string        { return g.verb }
func (g genericVerb) RequiresLight() bool { return g.requiresLight }
func (genericVerb) ConsumesTurn() bool    { return true }

func (g genericVerb) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg(g.noObjFallback)
	}
	if g.propKey != "" {
		if line, ok := it.Props[g.propKey].(string); ok && line != "" {
			return msg(line)
		}
	}
	return msg(fmt.Sprintf(g.objFallback, it.Name))
}

func NewPushHandler() Handler {
	return genericVerb{"push", true, "push_reveals", "Push what?", "Pushing the %s doesn't do anything."}
}
func NewPullHandler() Handler {
	return genericVerb{"pull", true, "pull_reveals", "Pull what?", "Pulling the %s doesn't do anything."}
}
func NewWaveHandler() Handler {
	return genericVerb{"wave", false, "", "You wave.", "You wave the %s around."}
}
func NewKnockHandler() Handler {
	return genericVerb{"knock", false, "knock_response", "Knock on what?", "You knock on the %s. No one answers."}
}
func NewSingHandler() Handler {
	return genericVerb{"sing", false, "", "You sing a little tune.", "You sing a little tune."}
}
func NewPrayHandler() Handler {
	return genericVerb{"pray", false, "", "Nothing happens.", "Nothing happens."}
}
func NewSleepHandler() Handler {
	return genericVerb{"sleep", false, "", "You aren't sleepy.", "You aren't sleepy."}
}
func NewYellHandler() Handler {
	return genericVerb{"yell", false, "", "You yell loudly.", "You yell loudly."}
}
func NewSwimHandler() Handler {
	return genericVerb{"swim", true, "", "There's nowhere to swim here.", "There's nowhere to swim here."}
}

// GiveHandler implements GIVE <item> TO <npc>.
type GiveHandler struct{}

func (GiveHandler) Verb() string        { return "give" }
func (GiveHandler) RequiresLight() bool { return true }
func (GiveHandler) ConsumesTurn() bool  { return true }

func (GiveHandler) Process(ctx Context) types.ActionResult {
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	npc := objectItem(ctx.State, ctx.Command.IndirectObject)
	if item == nil || npc == nil {
		return msg("Give what to whom?")
	}
	if !item.Parent.IsPlayer() {
		return msg("You don't have that.")
	}
	if !npc.Flags.Has(types.FlagCharacter) {
		return msg(fmt.Sprintf("You can't give anything to the %s.", npc.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You give the %s to the %s.", item.Name, npc.Name),
		Changes: []types.StateChange{types.ReparentChange(item.ID, types.Parent{Kind: types.ParentItem, ID: npc.ID})},
	}
}

// ShowHandler implements SHOW <item> TO <npc>.
type ShowHandler struct{}

func (ShowHandler) Verb() string        { return "show" }
func (ShowHandler) RequiresLight() bool { return true }
func (ShowHandler) ConsumesTurn() bool  { return true }

func (ShowHandler) Process(ctx Context) types.ActionResult {
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	npc := objectItem(ctx.State, ctx.Command.IndirectObject)
	if item == nil || npc == nil {
		return msg("Show what to whom?")
	}
	if !npc.Flags.Has(types.FlagCharacter) {
		return msg(fmt.Sprintf("The %s doesn't react.", npc.Name))
	}
	if table := topics(npc); table != nil {
		if reply, ok := table["show:"+item.ID]; ok {
			return msg(reply)
		}
	}
	return msg(fmt.Sprintf("The %s doesn't seem interested.", npc.Name))
}

// ThrowHandler implements THROW <item> AT <target>.
type ThrowHandler struct{}

func (ThrowHandler) Verb() string        { return "throw" }
func (ThrowHandler) RequiresLight() bool { return true }
func (ThrowHandler) ConsumesTurn() bool  { return true }

func (ThrowHandler) Process(ctx Context) types.ActionResult {
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	if item == nil {
		return msg("Throw what?")
	}
	if !item.Parent.IsPlayer() {
		return msg("You don't have that.")
	}
	target := objectItem(ctx.State, ctx.Command.IndirectObject)
	dest := types.Parent{Kind: types.ParentLocation, ID: ctx.Location.ID}
	if target == nil {
		return types.ActionResult{
			Message: fmt.Sprintf("You throw the %s.", item.Name),
			Changes: []types.StateChange{types.ReparentChange(item.ID, dest)},
		}
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You throw the %s at the %s. It falls to the ground.", item.Name, target.Name),
		Changes: []types.StateChange{types.ReparentChange(item.ID, dest)},
	}
}

// EatHandler implements EAT/CONSUME <item>.
type EatHandler struct{}

func (EatHandler) Verb() string        { return "eat" }
func (EatHandler) RequiresLight() bool { return true }
func (EatHandler) ConsumesTurn() bool  { return true }

func (EatHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Eat what?")
	}
	if !it.Flags.Has(types.FlagEdible) {
		return msg(fmt.Sprintf("You can't eat the %s.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You eat the %s. Delicious.", it.Name),
		Changes: []types.StateChange{types.ReparentChange(it.ID, types.Parent{Kind: types.ParentNowhere})},
	}
}

// DrinkHandler implements DRINK/QUAFF <item>.
type DrinkHandler struct{}

func (DrinkHandler) Verb() string        { return "drink" }
func (DrinkHandler) RequiresLight() bool { return true }
func (DrinkHandler) ConsumesTurn() bool  { return true }

func (DrinkHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Drink what?")
	}
	if !it.Flags.Has(types.FlagDrinkable) {
		return msg(fmt.Sprintf("You can't drink the %s.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You drink the %s. Refreshing.", it.Name),
		Changes: []types.StateChange{types.ReparentChange(it.ID, types.Parent{Kind: types.ParentNowhere})},
	}
}

// TieHandler implements TIE/FASTEN <item> TO <target>.
type TieHandler struct{}

func (TieHandler) Verb() string        { return "tie" }
func (TieHandler) RequiresLight() bool { return true }
func (TieHandler) ConsumesTurn() bool  { return true }

func (TieHandler) Process(ctx Context) types.ActionResult {
	item := objectItem(ctx.State, ctx.Command.DirectObject)
	target := objectItem(ctx.State, ctx.Command.IndirectObject)
	if item == nil || target == nil {
		return msg("Tie what to what?")
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You tie the %s to the %s.", item.Name, target.Name),
		Changes: []types.StateChange{types.ReparentChange(item.ID, types.Parent{Kind: types.ParentItem, ID: target.ID})},
	}
}

// UntieHandler implements UNTIE/DETACH <item>.
type UntieHandler struct{}

func (UntieHandler) Verb() string        { return "untie" }
func (UntieHandler) RequiresLight() bool { return true }
func (UntieHandler) ConsumesTurn() bool  { return true }

func (UntieHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Untie what?")
	}
	if it.Parent.Kind != types.ParentItem {
		return msg(fmt.Sprintf("The %s isn't tied to anything.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You untie the %s.", it.Name),
		Changes: []types.StateChange{types.ReparentChange(it.ID, types.Parent{Kind: types.ParentLocation, ID: ctx.Location.ID})},
	}
}

// BuyHandler implements BUY/PURCHASE <item>: an item carrying a
// content-authored "price" prop is moved to the player. No currency is
// checked or deducted.
type BuyHandler struct{}

func (BuyHandler) Verb() string        { return "buy" }
func (BuyHandler) RequiresLight() bool { return true }
func (BuyHandler) ConsumesTurn() bool  { return true }

func (BuyHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Buy what?")
	}
	if _, forSale := it.Props["price"]; !forSale {
		return msg(fmt.Sprintf("The %s isn't for sale.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You buy the %s.", it.Name),
		Changes: []types.StateChange{types.ReparentChange(it.ID, types.Parent{Kind: types.ParentPlayer})},
	}
}
