package events

import (
	"testing"

	"github.com/nathoo/gnusto/types"
)

func TestTickFuses_FiresAtZero(t *testing.T) {
	s := types.NewGameState()
	StartFuse(s, "bomb", 2)

	if fired := TickFuses(s); len(fired) != 0 {
		t.Fatalf("fired too early: %v", fired)
	}
	fired := TickFuses(s)
	if len(fired) != 1 || fired[0] != "bomb" {
		t.Fatalf("fired = %v, want [bomb]", fired)
	}
	if s.Fuses[0].Active {
		t.Error("fuse should deactivate after firing")
	}
}

func TestTickDaemons_FiresOnPeriod(t *testing.T) {
	s := types.NewGameState()
	StartDaemon(s, "heartbeat", 3)

	for turn := 1; turn <= 2; turn++ {
		if fired := TickDaemons(s, turn); len(fired) != 0 {
			t.Fatalf("turn %d: fired early: %v", turn, fired)
		}
	}
	fired := TickDaemons(s, 3)
	if len(fired) != 1 || fired[0] != "heartbeat" {
		t.Fatalf("turn 3: fired = %v, want [heartbeat]", fired)
	}
	fired = TickDaemons(s, 6)
	if len(fired) != 1 {
		t.Fatalf("turn 6: fired = %v, want [heartbeat]", fired)
	}
}

func TestStopFuse(t *testing.T) {
	s := types.NewGameState()
	StartFuse(s, "bomb", 1)
	StopFuse(s, "bomb")
	if fired := TickFuses(s); len(fired) != 0 {
		t.Errorf("stopped fuse should not fire: %v", fired)
	}
}

func TestDispatch(t *testing.T) {
	handlers := map[string][]Def{
		"door_opened": {
			{ID: "chime", Effects: []types.Effect{{Type: "say", Params: map[string]any{"text": "A chime sounds."}}}},
		},
	}
	effs := Dispatch([]types.GameEvent{{Type: "door_opened"}}, handlers)
	if len(effs) != 1 || effs[0].Type != "say" {
		t.Fatalf("Dispatch() = %v", effs)
	}
}
