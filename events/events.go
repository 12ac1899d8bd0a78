// Package events implements the fuse/daemon scheduler and single-pass
// GameEvent dispatch, run by the engine once per turn after a command's
// StateChanges have been applied.
package events

import "github.com/nathoo/gnusto/types"

// Def is a content-authored fuse or daemon: what to run and, for a fuse,
// how many turns from now. Defs are immutable templates; FuseState and
// DaemonState in GameState track the live countdown/activity.
type Def struct {
	ID      string
	Effects []types.Effect
}

// TickFuses decrements every active fuse by one turn and returns the ids
// that fired this turn (Remaining hit zero), in the order they were
// declared — a fuse fires once, then is deactivated.
func TickFuses(s *types.GameState) []string {
	var fired []string
	for i := range s.Fuses {
		f := &s.Fuses[i]
		if !f.Active {
			continue
		}
		f.Remaining--
		if f.Remaining <= 0 {
			f.Active = false
			fired = append(fired, f.ID)
		}
	}
	return fired
}

// TickDaemons returns the ids of every active daemon whose Period divides
// the current turn count — a daemon fires every Period turns, forever,
// until stopped.
func TickDaemons(s *types.GameState, turn int) []string {
	var fired []string
	for i := range s.Daemons {
		d := &s.Daemons[i]
		if !d.Active || d.Period <= 0 {
			continue
		}
		if turn%d.Period == 0 {
			fired = append(fired, d.ID)
		}
	}
	return fired
}

// StartFuse activates (or restarts) the named fuse with the given delay.
// A fuse not yet present in GameState.Fuses is appended.
func StartFuse(s *types.GameState, id string, delay int) {
	for i := range s.Fuses {
		if s.Fuses[i].ID == id {
			s.Fuses[i].Remaining = delay
			s.Fuses[i].Active = true
			return
		}
	}
	s.Fuses = append(s.Fuses, types.FuseState{ID: id, Remaining: delay, Active: true})
}

// StopFuse deactivates the named fuse without firing it.
func StopFuse(s *types.GameState, id string) {
	for i := range s.Fuses {
		if s.Fuses[i].ID == id {
			s.Fuses[i].Active = false
			return
		}
	}
}

// StartDaemon activates (or restarts) the named daemon at the given period.
func StartDaemon(s *types.GameState, id string, period int) {
	for i := range s.Daemons {
		if s.Daemons[i].ID == id {
			s.Daemons[i].Period = period
			s.Daemons[i].Active = true
			return
		}
	}
	s.Daemons = append(s.Daemons, types.DaemonState{ID: id, Period: period, Active: true})
}

// StopDaemon deactivates the named daemon.
func StopDaemon(s *types.GameState, id string) {
	for i := range s.Daemons {
		if s.Daemons[i].ID == id {
			s.Daemons[i].Active = false
			return
		}
	}
}

// Dispatch runs every registered handler whose EventType matches one of
// the emitted events and collects the effects they produce. Single pass:
// effects produced here are applied once and never re-dispatched, so
// content cannot build infinite event chains.
func Dispatch(emitted []types.GameEvent, handlers map[string][]Def) []types.Effect {
	var out []types.Effect
	for _, ev := range emitted {
		for _, def := range handlers[ev.Type] {
			out = append(out, def.Effects...)
		}
	}
	return out
}
