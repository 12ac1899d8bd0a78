// Package state holds the immutable game definitions compiled from Lua
// content — Defs — and the New/Restart logic that instantiates a fresh,
// fully-mutable types.GameState from them. Once a GameState exists the
// engine and handlers operate on it directly; Defs are never consulted
// again except to restart.
package state

import (
	"github.com/nathoo/gnusto/events"
	"github.com/nathoo/gnusto/types"
)

// GameDef carries the handful of whole-game settings content declares:
// the starting room, the player's carry capacity, and starting inventory.
type GameDef struct {
	Title      string
	Start      string
	MaxCarry   int
	Inventory  []string
	DebugMode  bool
}

// EventHandlerDef binds a GameEvent type to the effects it should produce,
// consulted by events.Dispatch once per turn.
type EventHandlerDef struct {
	EventType string
	Effects   []types.Effect
}

// Defs is the complete, immutable compiled form of one game's content.
// It is built once at load time and never mutated; New and Restart copy
// from it to produce live state.
type Defs struct {
	Game      GameDef
	Items     map[string]*types.Item
	Locations map[string]*types.Location
	Fuses     []events.Def
	Daemons   []DaemonDef
	Handlers  map[string][]events.Def
}

// DaemonDef is a content-declared recurring event: what period it runs at
// and whether it starts active immediately on New/Restart.
type DaemonDef struct {
	ID            string
	Period        int
	ActiveAtStart bool
	Effects       []types.Effect
}

// New instantiates a fresh GameState from defs: every Item and Location is
// deep-copied so runtime mutation never touches the template, the player
// is placed at Game.Start, and any daemons marked ActiveAtStart begin
// ticking immediately.
func New(defs *Defs) *types.GameState {
	s := types.NewGameState()

	for id, tmpl := range defs.Items {
		s.Items[id] = tmpl.Clone()
	}
	for id, tmpl := range defs.Locations {
		s.Locations[id] = tmpl.Clone()
	}

	s.Player = types.Player{
		Location:  defs.Game.Start,
		MaxHealth: 100,
		Health:    100,
		Flags:     map[string]bool{},
	}
	for _, id := range defs.Game.Inventory {
		if it, ok := s.Items[id]; ok {
			it.Parent = types.Parent{Kind: types.ParentPlayer}
		}
	}

	for _, d := range defs.Daemons {
		if d.ActiveAtStart {
			events.StartDaemon(s, d.ID, d.Period)
		}
	}

	return s
}

// Restart produces a fresh GameState identical to what New would produce,
// discarding all progress — it is swapped in when RESTART's
// SideRequestRestart is honoured.
func Restart(defs *Defs) *types.GameState {
	return New(defs)
}

// MaxCarry is the content-configured inventory size cap; a negative value
// (the default when content doesn't set one) means unlimited.
func MaxCarry(defs *Defs) int {
	if defs.Game.MaxCarry == 0 {
		return -1
	}
	return defs.Game.MaxCarry
}
