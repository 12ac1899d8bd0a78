package types

import "sort"

// Player holds the player's runtime state. Inventory is derived on demand
// from Items whose Parent is ParentPlayer — it is never stored redundantly.
type Player struct {
	Location  string
	Score     int
	Moves     int
	Health    int
	MaxHealth int
	Flags     map[string]bool
}

// PendingQuestion models a short-lived two-phase conversation: a YES/NO
// prompt, an ASK/TELL follow-up, or a meta-command confirmation. It lives
// in GameState as data (per spec.md §9's "do not model as callbacks").
type PendingQuestion struct {
	Prompt        string
	ExpectedKind  string // "yesno", "topic"
	OnYesVerb     string
	OnYesObjectID string
	CancelMessage string
}

// CombatState tracks an in-progress fight.
type CombatState struct {
	Active           bool
	EnemyID          string
	Round            int
	PlayerDefending  bool
	EnemyDefending   bool
	PreviousLocation string
}

// FuseState is the runtime countdown for a one-shot scheduled event.
type FuseState struct {
	ID        string
	Remaining int
	Active    bool
}

// DaemonState is the runtime activity flag for a recurring event.
type DaemonState struct {
	ID     string
	Period int
	Active bool
}

// GameState is the complete mutable state of a running game. It is owned
// exclusively by the Engine for the duration of a turn; handlers observe
// it through a read-only view and describe changes instead of writing them.
type GameState struct {
	Items     map[string]*Item
	Locations map[string]*Location

	Player Player
	Flags  map[string]bool

	// Pronouns maps a pronoun word to the set of item ids it currently refers
	// to. "it" resolves to a singleton set; "them"/"all" may hold several.
	Pronouns map[string]map[string]bool

	Combat  *CombatState
	Pending *PendingQuestion

	Fuses   []FuseState
	Daemons []DaemonState

	TurnCount  int
	Moves      int
	RNGSeed    int64
	RNGPosition int64

	ScriptActive bool
	Verbose      bool // true = full room descriptions even on revisit

	CommandLog []string
}

// NewGameState creates an empty, ready-to-populate state. Callers (the
// engine's New/Restart) fill Items/Locations/Player from Defs.
func NewGameState() *GameState {
	return &GameState{
		Items:      map[string]*Item{},
		Locations:  map[string]*Location{},
		Flags:      map[string]bool{},
		Pronouns:   map[string]map[string]bool{},
		Combat:     &CombatState{},
		CommandLog: []string{},
		Verbose:    true,
	}
}

// HasItem reports whether the player is directly holding itemID.
func (s *GameState) HasItem(itemID string) bool {
	it, ok := s.Items[itemID]
	return ok && it.Parent.IsPlayer()
}

// InCombat reports whether a fight is in progress.
func (s *GameState) InCombat() bool {
	return s.Combat != nil && s.Combat.Active
}

// Inventory returns the ids of items directly held by the player, in a
// deterministic (sorted) order.
func (s *GameState) Inventory() []string {
	var ids []string
	for id, it := range s.Items {
		if it.Parent.IsPlayer() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// IsAncestorOf reports whether ancestorID contains descendantID somewhere
// in its parent chain — used to refuse a reparent that would create a
// cycle (e.g. "put box in bag" when bag is already inside box).
func (s *GameState) IsAncestorOf(ancestorID, descendantID string) bool {
	cur, ok := s.Items[descendantID]
	for ok {
		if cur.Parent.Kind != ParentItem {
			return false
		}
		if cur.Parent.ID == ancestorID {
			return true
		}
		cur, ok = s.Items[cur.Parent.ID]
	}
	return false
}

// Children returns the ids of items directly parented to containerID
// (an Item or a Location), in a deterministic order.
func (s *GameState) Children(parent Parent) []string {
	var ids []string
	for id, it := range s.Items {
		if it.Parent == parent {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
