// Package engine wires vocab, scope, parser, handlers, and events into the
// per-turn Step() loop: parse input, run the matched handler, apply its
// StateChanges atomically, tick the event scheduler, and render the result.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/gnusto/engine/state"
	"github.com/nathoo/gnusto/events"
	"github.com/nathoo/gnusto/handlers"
	"github.com/nathoo/gnusto/parser"
	"github.com/nathoo/gnusto/scope"
	"github.com/nathoo/gnusto/types"
	"github.com/nathoo/gnusto/vocab"
)

// Result is everything a turn produced: the text to show the player, plus
// any requests the CLI/TUI layer must act on (save, restore, quit, ...).
type Result struct {
	Output           []string
	QuitRequested    bool
	RestartRequested bool
	SaveRequested    bool
	RestoreRequested bool
}

// Engine holds the immutable content (Defs), the live GameState, and the
// supporting machinery — RNG, handler registry, noun index — needed to
// process one command at a time.
type Engine struct {
	Defs      *state.Defs
	State     *types.GameState
	RNG       *RNG
	Registry  *handlers.Registry
	SessionID string
	nounIdx   *vocab.NounIndex
}

// New creates a fresh engine ready to play from defs, seeding the RNG from
// the current time so a new game's combat rolls aren't reproducible — a
// save captures the seed, which is what makes restore deterministic.
func New(defs *state.Defs) *Engine {
	s := state.New(defs)
	s.RNGSeed = time.Now().UnixNano()
	return &Engine{
		Defs:      defs,
		State:     s,
		RNG:       NewRNG(s.RNGSeed),
		Registry:  handlers.NewDefaultRegistry(),
		SessionID: uuid.NewString(),
		nounIdx:   vocab.BuildNounIndex(s.Items),
	}
}

// RestoreRNG rebuilds the RNG at a saved position, used when loading a save.
func (e *Engine) RestoreRNG(seed, position int64) {
	e.RNG = RestoreRNG(seed, position)
}

// RefreshNounIndex rebuilds the noun/adjective index — call after RESTORE
// swaps in a new GameState whose items differ from what was indexed.
func (e *Engine) RefreshNounIndex() {
	e.nounIdx = vocab.BuildNounIndex(e.State.Items)
}

// Restore swaps in a previously saved GameState, rebuilding the RNG at its
// saved position and the noun index against its items.
func (e *Engine) Restore(s *types.GameState, sessionID string) {
	e.State = s
	e.SessionID = sessionID
	e.RestoreRNG(s.RNGSeed, s.RNGPosition)
	e.RefreshNounIndex()
}

// Reset replaces the live state with a fresh one from Defs — RESTART.
func (e *Engine) Reset() {
	e.State = state.Restart(e.Defs)
	e.State.RNGSeed = time.Now().UnixNano()
	e.RNG = NewRNG(e.State.RNGSeed)
	e.RefreshNounIndex()
}

// Step processes one line of player input through the full turn pipeline.
func (e *Engine) Step(input string) Result {
	var result Result

	e.State.CommandLog = append(e.State.CommandLog, input)

	loc := e.State.Locations[e.State.Player.Location]
	if loc == nil {
		result.Output = append(result.Output, "You are nowhere. This is a bug.")
		return result
	}

	// Stage 1: parse.
	cmd, perr := parser.Parse(input, parser.World{State: e.State, Location: loc, NounIndex: e.nounIdx})
	if perr != nil {
		result.Output = append(result.Output, perr.Error())
		return result
	}

	h, ok := e.Registry.Resolve(cmd)
	if !ok {
		result.Output = append(result.Output, fmt.Sprintf("I don't know how to %q.", cmd.Verb))
		return result
	}

	// Stage 2: light check.
	dark := scope.IsDark(e.State, loc)
	if dark && h.RequiresLight() {
		result.Output = append(result.Output, "It is pitch dark, and you can't see a thing.")
		return result
	}

	// Stage 3: game-over gate. No content hook runs before the handler.
	if e.State.Flags["game_over"] {
		result.Output = append(result.Output, "The game has ended. RESTART, RESTORE, or QUIT.")
		return result
	}

	prevLoc := e.State.Player.Location

	// Stage 4: run the handler.
	actionResult := h.Process(handlers.Context{
		State:    e.State,
		Location: loc,
		Command:  cmd,
		MaxCarry: state.MaxCarry(e.Defs),
		Dice:     e.RNG,
	})

	// Stage 5: apply StateChanges atomically.
	if !validateChanges(e.State, actionResult.Changes) {
		result.Output = append(result.Output, "Something prevents that from happening.")
		return result
	}
	for _, c := range actionResult.Changes {
		applyChange(e.State, c)
	}
	if actionResult.Message != "" {
		result.Output = append(result.Output, actionResult.Message)
	}

	// Stage 6: after-turn hooks — dispatch GameEvents raised by the change set.
	emitted := deriveEvents(actionResult.Changes)
	if len(emitted) > 0 {
		extra := events.Dispatch(emitted, e.Defs.Handlers)
		if len(extra) > 0 {
			more, text := applyEffects(e.State, extra)
			for _, c := range more {
				applyChange(e.State, c)
			}
			result.Output = append(result.Output, text...)
		}
	}

	// Stage 7: side effects.
	for _, se := range actionResult.SideEffects {
		e.applySideEffect(se, &result)
	}

	// Stage 8: turn increment + fuse/daemon tick.
	if h.ConsumesTurn() {
		e.State.TurnCount++
		e.State.Player.Moves++
		for _, id := range events.TickFuses(e.State) {
			e.runScheduled(id, &result)
		}
		for _, id := range events.TickDaemons(e.State, e.State.TurnCount) {
			e.runScheduled(id, &result)
		}
	}

	// Stage 9: pronoun update.
	updatePronouns(e.State, cmd)

	// Stage 10: room re-description on room change or newly-lit.
	if e.State.Player.Location != prevLoc {
		newLoc := e.State.Locations[e.State.Player.Location]
		if newLoc != nil {
			result.Output = append(result.Output, handlers.DescribeRoom(e.State, newLoc, false))
			if !newLoc.Flags.Has(types.LocVisited) {
				newLoc.Flags = newLoc.Flags.Set(types.LocVisited)
			}
		}
	} else if dark && !scope.IsDark(e.State, loc) {
		result.Output = append(result.Output, handlers.DescribeRoom(e.State, loc, true))
	}

	e.State.RNGPosition = e.RNG.Position()

	return result
}

func (e *Engine) runScheduled(fuseOrDaemonID string, result *Result) {
	var effs []types.Effect
	for _, d := range e.Defs.Fuses {
		if d.ID == fuseOrDaemonID {
			effs = d.Effects
		}
	}
	for _, d := range e.Defs.Daemons {
		if d.ID == fuseOrDaemonID {
			effs = d.Effects
		}
	}
	if len(effs) == 0 {
		return
	}
	changes, text := applyEffects(e.State, effs)
	for _, c := range changes {
		applyChange(e.State, c)
	}
	result.Output = append(result.Output, text...)
}

func (e *Engine) applySideEffect(se types.SideEffect, result *Result) {
	switch se.Type {
	case types.SideRequestQuit:
		result.QuitRequested = true
	case types.SideRequestRestart:
		result.RestartRequested = true
	case types.SideRequestSave:
		result.SaveRequested = true
	case types.SideRequestRestore:
		result.RestoreRequested = true
	case types.SideToggleScript:
		on, _ := se.Params["on"].(bool)
		e.State.ScriptActive = on
	case types.SideSetVerbosity:
		v, _ := se.Params["verbose"].(bool)
		e.State.Verbose = v
	case types.SideStartFuse:
		id, _ := se.Params["id"].(string)
		delay, _ := se.Params["delay"].(int)
		events.StartFuse(e.State, id, delay)
	case types.SideStopFuse:
		id, _ := se.Params["id"].(string)
		events.StopFuse(e.State, id)
	case types.SideStartDaemon:
		id, _ := se.Params["id"].(string)
		period, _ := se.Params["period"].(int)
		events.StartDaemon(e.State, id, period)
	case types.SideStopDaemon:
		id, _ := se.Params["id"].(string)
		events.StopDaemon(e.State, id)
	case types.SideStartCombat:
		enemyID, _ := se.Params["enemy_id"].(string)
		e.State.Combat = &types.CombatState{Active: true, EnemyID: enemyID, PreviousLocation: e.State.Player.Location}
	case types.SideEndCombat:
		e.State.Combat = &types.CombatState{}
	case types.SideSetPendingYesNo:
		prompt, _ := se.Params["prompt"].(string)
		e.State.Pending = &types.PendingQuestion{Prompt: prompt, ExpectedKind: "yesno"}
	case types.SideClearPending:
		e.State.Pending = nil
	case "replay_verb":
		// Re-dispatch a confirmed verb after a YES answer straight through
		// the registry, without re-parsing; an unregistered verb is ignored.
		verb, _ := se.Params["verb"].(string)
		cmd := types.Command{Verb: verb}
		if id, _ := se.Params["object_id"].(string); id != "" {
			ref := types.ItemRef(id)
			cmd.DirectObject = &ref
		}
		if h, ok := e.Registry.Resolve(cmd); ok {
			loc := e.State.Locations[e.State.Player.Location]
			r := h.Process(handlers.Context{State: e.State, Location: loc, Command: cmd, Dice: e.RNG})
			for _, c := range r.Changes {
				applyChange(e.State, c)
			}
			if r.Message != "" {
				result.Output = append(result.Output, r.Message)
			}
		}
	}
}

// validateChanges checks the OldValue precondition of parent changes before
// any change is applied, so a failed check applies none of the batch.
// OldValue on other attributes is not checked.
func validateChanges(s *types.GameState, changes []types.StateChange) bool {
	for _, c := range changes {
		if !c.HasOldValue {
			continue
		}
		switch c.Attribute {
		case types.AttrParent:
			it, ok := s.Items[c.TargetID]
			if !ok || it.Parent != c.OldValue {
				return false
			}
		}
	}
	return true
}

func applyChange(s *types.GameState, c types.StateChange) {
	switch c.Attribute {
	case types.AttrParent:
		if it, ok := s.Items[c.TargetID]; ok {
			it.Parent = c.NewValue.(types.Parent)
		}
	case types.AttrFlag:
		if flag, on, ok := types.FlagEdit(c); ok {
			if it, exists := s.Items[c.TargetID]; exists {
				it.Flags = it.Flags.With(flag, on)
			}
		}
	case types.AttrProp:
		if key, value, ok := types.PropEdit(c); ok {
			if it, exists := s.Items[c.TargetID]; exists {
				if it.Props == nil {
					it.Props = map[string]any{}
				}
				it.Props[key] = value
			}
		}
	case types.AttrPlayerLoc:
		s.Player.Location = c.NewValue.(string)
	case types.AttrPlayerScore:
		s.Player.Score = c.NewValue.(int)
	case types.AttrPlayerMoves:
		s.Player.Moves = c.NewValue.(int)
	case types.AttrPlayerHealth:
		s.Player.Health = c.NewValue.(int)
	case types.AttrGlobalFlag:
		s.Flags[c.TargetID] = c.NewValue.(bool)
	case types.AttrLocVisited:
		if loc, ok := s.Locations[c.TargetID]; ok {
			loc.Flags = loc.Flags.Set(types.LocVisited)
		}
	case types.AttrCharacterHealth:
		if it, ok := s.Items[c.TargetID]; ok && it.Character != nil {
			it.Character.Health = c.NewValue.(int)
		}
	}
}

// deriveEvents turns a batch of applied StateChanges into the GameEvents
// content handlers can react to — a thin, closed mapping so content never
// needs to know about StateChange's internal shape.
func deriveEvents(changes []types.StateChange) []types.GameEvent {
	var out []types.GameEvent
	for _, c := range changes {
		switch c.Attribute {
		case types.AttrParent:
			out = append(out, types.GameEvent{Type: "item_moved", Data: map[string]any{"item": c.TargetID}})
		case types.AttrFlag:
			if flag, on, ok := types.FlagEdit(c); ok && flag == types.FlagOpen && on {
				out = append(out, types.GameEvent{Type: "item_opened", Data: map[string]any{"item": c.TargetID}})
			}
		case types.AttrPlayerLoc:
			out = append(out, types.GameEvent{Type: "room_entered", Data: map[string]any{"room": c.NewValue}})
		}
	}
	return out
}

// applyEffects interprets content-authored Effects (from event handlers,
// fuses, and daemons) into StateChanges plus narrative text — the
// declarative layer between Lua-authored content and the typed GameState.
func applyEffects(s *types.GameState, effs []types.Effect) ([]types.StateChange, []string) {
	var changes []types.StateChange
	var text []string
	for _, eff := range effs {
		switch eff.Type {
		case "say":
			if t, ok := eff.Params["text"].(string); ok {
				text = append(text, t)
			}
		case "move_item":
			item, _ := eff.Params["item"].(string)
			kind, _ := eff.Params["parent_kind"].(string)
			id, _ := eff.Params["parent_id"].(string)
			changes = append(changes, types.ReparentChange(item, parentFromKind(kind, id)))
		case "set_flag":
			item, _ := eff.Params["item"].(string)
			flagName, _ := eff.Params["flag"].(string)
			on, _ := eff.Params["value"].(bool)
			if flag, ok := types.ItemFlagByName(flagName); ok {
				changes = append(changes, types.FlagChange(item, flag, on))
			}
		case "set_prop":
			item, _ := eff.Params["item"].(string)
			key, _ := eff.Params["key"].(string)
			changes = append(changes, types.PropChange(item, key, eff.Params["value"]))
		case "set_global_flag":
			name, _ := eff.Params["flag"].(string)
			on, _ := eff.Params["value"].(bool)
			s.Flags[name] = on
		case "start_fuse":
			id, _ := eff.Params["id"].(string)
			delay, _ := eff.Params["delay"].(int)
			events.StartFuse(s, id, delay)
		case "stop_fuse":
			id, _ := eff.Params["id"].(string)
			events.StopFuse(s, id)
		case "start_daemon":
			id, _ := eff.Params["id"].(string)
			period, _ := eff.Params["period"].(int)
			events.StartDaemon(s, id, period)
		case "stop_daemon":
			id, _ := eff.Params["id"].(string)
			events.StopDaemon(s, id)
		}
	}
	return changes, text
}

func parentFromKind(kind, id string) types.Parent {
	switch kind {
	case "location":
		return types.Parent{Kind: types.ParentLocation, ID: id}
	case "item":
		return types.Parent{Kind: types.ParentItem, ID: id}
	case "player":
		return types.Parent{Kind: types.ParentPlayer}
	default:
		return types.Parent{Kind: types.ParentNowhere}
	}
}

// updatePronouns records "it"/"them" referents after a successful command,
// so a following "take it" or "drop them" resolves without re-naming.
func updatePronouns(s *types.GameState, cmd types.Command) {
	if cmd.DirectObject != nil && cmd.DirectObject.Kind == types.RefItem {
		s.Pronouns["it"] = map[string]bool{cmd.DirectObject.ID: true}
	}
	if len(cmd.DirectObjects) > 0 {
		set := map[string]bool{}
		for _, ref := range cmd.DirectObjects {
			set[ref.ID] = true
		}
		s.Pronouns["them"] = set
	}
}
