// Package handlers implements the action handler for every verb: the
// logic spec.md §4.4's contract table calls out, expressed as declarative
// ActionResults the engine applies — handlers never touch GameState
// directly. Each Handler is stateless; all per-call state lives in Context.
package handlers

import (
	"github.com/nathoo/gnusto/types"
)

// Dice abstracts the die-rolling the engine's RNG provides, so this
// package never imports the engine (which itself imports handlers).
type Dice interface {
	Roll(sides int) int
}

// Context is everything a Handler.Process call needs to compute its
// ActionResult. It is a read view: Process must describe changes via the
// returned ActionResult rather than mutate State directly.
type Context struct {
	State    *types.GameState
	Location *types.Location
	Command  types.Command
	MaxCarry int
	Dice     Dice
}

// Handler is one verb's (or verb family's) action logic.
type Handler interface {
	// Verb is the canonical verb id this handler answers for.
	Verb() string
	// RequiresLight reports whether the handler needs light; the engine
	// refuses to run such a handler in a dark room.
	RequiresLight() bool
	// ConsumesTurn reports whether running the handler advances
	// TurnCount/fuses/daemons. The engine applies it to every call,
	// including one that ends in a refusal message. Meta commands (SAVE,
	// SCORE, VERBOSE, ...) do not consume a turn.
	ConsumesTurn() bool
	// Process computes the result of running the command. It must not
	// mutate ctx.State; all effects are described in the returned result.
	Process(ctx Context) types.ActionResult
}

// Registry maps verb id to its Handler, plus a per-(item,verb) override
// table consulted first — mirroring the teacher's rule-before-default
// resolution order, now keyed directly rather than through a rule bucket.
type Registry struct {
	defaults  map[string]Handler
	overrides map[overrideKey]Handler
}

type overrideKey struct {
	ItemID string
	Verb   string
}

func NewRegistry() *Registry {
	return &Registry{
		defaults:  map[string]Handler{},
		overrides: map[overrideKey]Handler{},
	}
}

// Register installs h as the default handler for its verb.
func (r *Registry) Register(h Handler) {
	r.defaults[h.Verb()] = h
}

// RegisterOverride installs h to run instead of the default handler
// whenever verb is invoked with itemID as the direct object — used for
// content-authored per-item verb behavior (a magic lamp's own RUB, say).
func (r *Registry) RegisterOverride(itemID, verb string, h Handler) {
	r.overrides[overrideKey{itemID, verb}] = h
}

// Resolve picks the handler that should process cmd: an item-specific
// override if one is registered for the direct object, else the verb's
// default handler.
func (r *Registry) Resolve(cmd types.Command) (Handler, bool) {
	if cmd.DirectObject != nil && cmd.DirectObject.Kind == types.RefItem {
		if h, ok := r.overrides[overrideKey{cmd.DirectObject.ID, cmd.Verb}]; ok {
			return h, true
		}
	}
	h, ok := r.defaults[cmd.Verb]
	return h, ok
}

// objectItem resolves a *types.EntityRef naming an item to its *types.Item,
// returning nil if the ref is nil, not an item, or dangling.
func objectItem(s *types.GameState, ref *types.EntityRef) *types.Item {
	if ref == nil || ref.Kind != types.RefItem {
		return nil
	}
	return s.Items[ref.ID]
}

// msg is a convenience constructor for a no-op result carrying only text.
func msg(text string) types.ActionResult { return types.ActionResult{Message: text} }

// touch returns the StateChange that sets an item's touched flag — every
// handler whose contract in spec.md §4.4 calls for "touch" on success
// appends this to its Changes.
func touch(itemID string) types.StateChange {
	return types.FlagChange(itemID, types.FlagTouched, true)
}
