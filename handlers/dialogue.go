package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/gnusto/types"
)

// topics extracts an NPC item's topic table: a map from lowercase topic
// keyword to the line it should produce, content-authored via Props["topics"].
func topics(it *types.Item) map[string]string {
	switch raw := it.Props["topics"].(type) {
	case map[string]string:
		return raw
	case map[string]any:
		out := make(map[string]string, len(raw))
		for k, v := range raw {
			if line, ok := v.(string); ok {
				out[k] = line
			}
		}
		return out
	}
	return nil
}

// AskHandler implements ASK <npc> ABOUT <topic>.
type AskHandler struct{}

func (AskHandler) Verb() string        { return "ask" }
func (AskHandler) RequiresLight() bool { return true }
func (AskHandler) ConsumesTurn() bool  { return true }

func (AskHandler) Process(ctx Context) types.ActionResult {
	return converse(ctx, "ask")
}

// TellHandler implements TELL <npc> ABOUT <topic>.
type TellHandler struct{}

func (TellHandler) Verb() string        { return "tell" }
func (TellHandler) RequiresLight() bool { return true }
func (TellHandler) ConsumesTurn() bool  { return true }

func (TellHandler) Process(ctx Context) types.ActionResult {
	return converse(ctx, "tell")
}

func converse(ctx Context, verb string) types.ActionResult {
	npc := objectItem(ctx.State, ctx.Command.DirectObject)
	if npc == nil {
		return msg(fmt.Sprintf("%s whom?", capitalize(verb)))
	}
	if !npc.Flags.Has(types.FlagCharacter) {
		return msg(fmt.Sprintf("You can't %s the %s anything.", verb, npc.Name))
	}
	table := topics(npc)
	topic := ""
	if ctx.Command.IndirectObject != nil {
		if it := objectItem(ctx.State, ctx.Command.IndirectObject); it != nil {
			topic = strings.ToLower(it.Name)
		} else if ctx.Command.IndirectObject.Kind == types.RefUniversal {
			topic = ctx.Command.IndirectObject.UniversalKind
		}
	}
	if topic == "" {
		return msg(fmt.Sprintf("%s %s about what?", capitalize(verb), npc.Name))
	}
	touched := []types.StateChange{touch(npc.ID)}
	if reply, ok := table[topic]; ok {
		return types.ActionResult{Message: reply, Changes: touched}
	}
	var known []string
	for k := range table {
		known = append(known, k)
	}
	sort.Strings(known)
	if len(known) == 0 {
		return types.ActionResult{Message: fmt.Sprintf("%s has nothing to say about that.", npc.Name), Changes: touched}
	}
	return types.ActionResult{
		Message: fmt.Sprintf("%s has nothing to say about that. Ask about: %s.", npc.Name, strings.Join(known, ", ")),
		Changes: touched,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// YesHandler implements YES/Y — answers any outstanding PendingQuestion.
type YesHandler struct{}

func (YesHandler) Verb() string        { return "yes" }
func (YesHandler) RequiresLight() bool { return false }
func (YesHandler) ConsumesTurn() bool  { return true }

func (YesHandler) Process(ctx Context) types.ActionResult {
	p := ctx.State.Pending
	if p == nil {
		return msg("That wasn't a yes-or-no question.")
	}
	if p.OnYesVerb == "" {
		return types.ActionResult{
			Message:     "Okay.",
			SideEffects: []types.SideEffect{{Type: types.SideClearPending}},
		}
	}
	return types.ActionResult{
		Message: "Okay.",
		SideEffects: []types.SideEffect{
			{Type: types.SideClearPending},
			{Type: "replay_verb", Params: map[string]any{"verb": p.OnYesVerb, "object_id": p.OnYesObjectID}},
		},
	}
}

// NoHandler implements NO/N — declines any outstanding PendingQuestion.
type NoHandler struct{}

func (NoHandler) Verb() string        { return "no" }
func (NoHandler) RequiresLight() bool { return false }
func (NoHandler) ConsumesTurn() bool  { return true }

func (NoHandler) Process(ctx Context) types.ActionResult {
	p := ctx.State.Pending
	if p == nil {
		return msg("That wasn't a yes-or-no question.")
	}
	text := p.CancelMessage
	if text == "" {
		text = "Okay."
	}
	return types.ActionResult{
		Message:     text,
		SideEffects: []types.SideEffect{{Type: types.SideClearPending}},
	}
}
