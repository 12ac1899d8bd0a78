// Package scope answers reachability and visibility questions against a
// GameState: what the player can see, touch, or carry right now. It owns no
// state of its own and never mutates GameState — the parser and handlers
// both consult it as a pure query surface.
package scope

import "github.com/nathoo/gnusto/types"

// maxContainerDepth bounds the container/surface recursion scope walks
// through, per the spec's "arbitrarily deep nesting is not required"
// allowance — five levels covers every realistic puzzle chain.
const maxContainerDepth = 5

// IsDark reports whether the player's current location is dark: it is
// dark unless the location is inherently lit or some light source that is
// on/burning is present in scope.
func IsDark(s *types.GameState, loc *types.Location) bool {
	if loc.Flags.Has(types.LocInherentlyLit) {
		return false
	}
	for _, id := range InScope(s, loc) {
		it := s.Items[id]
		if it == nil {
			continue
		}
		if it.Flags.Has(types.FlagLightSource) && (it.Flags.Has(types.FlagOn) || it.Flags.Has(types.FlagBurning)) {
			return false
		}
	}
	return true
}

// InScope returns every item id the player can currently perceive: items
// held, items worn, items in the room (including globals), and items
// recursively inside open/transparent containers or on surfaces, up to
// maxContainerDepth.
func InScope(s *types.GameState, loc *types.Location) []string {
	seen := map[string]bool{}
	var out []string

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for id, it := range s.Items {
		if it.Parent.IsPlayer() {
			add(id)
		}
	}
	for _, id := range loc.Globals {
		add(id)
	}
	for id, it := range s.Items {
		if it.Parent.Kind == types.ParentLocation && it.Parent.ID == loc.ID {
			add(id)
		}
	}

	// Recurse into containers/surfaces already in scope.
	frontier := append([]string(nil), out...)
	for depth := 0; depth < maxContainerDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			it := s.Items[id]
			if it == nil {
				continue
			}
			if !canSeeInto(it) {
				continue
			}
			for cid, child := range s.Items {
				if child.Parent.Kind == types.ParentItem && child.Parent.ID == id {
					if !seen[cid] {
						add(cid)
						next = append(next, cid)
					}
				}
			}
		}
		frontier = next
	}

	return out
}

// canSeeInto reports whether an item's contents are visible: surfaces
// always show their contents, containers only when open or transparent.
func canSeeInto(it *types.Item) bool {
	if it.Flags.Has(types.FlagSurface) {
		return true
	}
	if it.Flags.Has(types.FlagContainer) {
		return it.Flags.Has(types.FlagOpen) || it.Flags.Has(types.FlagTransparent)
	}
	return false
}

// InScopeSet is InScope as a membership set, for repeated lookups.
func InScopeSet(s *types.GameState, loc *types.Location) map[string]bool {
	set := map[string]bool{}
	for _, id := range InScope(s, loc) {
		set[id] = true
	}
	return set
}

// CanReach reports whether the player can physically manipulate itemID
// right now: held items and items in the current room's reachable set
// qualify; items merely visible through a closed transparent container do
// not (they can be seen but not touched).
func CanReach(s *types.GameState, loc *types.Location, itemID string) bool {
	it, ok := s.Items[itemID]
	if !ok {
		return false
	}
	if it.Parent.IsPlayer() {
		return true
	}
	for cur := it; cur != nil; {
		switch cur.Parent.Kind {
		case types.ParentLocation:
			return cur.Parent.ID == loc.ID
		case types.ParentItem:
			parent, ok := s.Items[cur.Parent.ID]
			if !ok {
				return false
			}
			if parent.Flags.Has(types.FlagContainer) && !parent.Flags.Has(types.FlagOpen) {
				return false
			}
			cur = parent
		default:
			return false
		}
	}
	return false
}

// CanSee reports whether itemID is visible from the current location —
// reachable items, plus items inside a closed-but-transparent container.
func CanSee(s *types.GameState, loc *types.Location, itemID string) bool {
	set := InScopeSet(s, loc)
	return set[itemID]
}

// IsHolding reports whether the player directly holds itemID (not merely
// carries it inside a held container).
func IsHolding(s *types.GameState, itemID string) bool {
	it, ok := s.Items[itemID]
	return ok && it.Parent.IsPlayer()
}

// CarriedWeight sums the Size of every item directly or transitively held
// by the player (held containers count their contents too).
func CarriedWeight(s *types.GameState) int {
	total := 0
	for _, id := range s.Inventory() {
		total += subtreeSize(s, id)
	}
	return total
}

func subtreeSize(s *types.GameState, id string) int {
	it := s.Items[id]
	if it == nil {
		return 0
	}
	total := it.Size
	for cid, child := range s.Items {
		if child.Parent.Kind == types.ParentItem && child.Parent.ID == id {
			total += subtreeSize(s, cid)
		}
	}
	return total
}

// CarriedWeightInContainer sums the Size of every item directly parented
// to containerID — used to enforce an item's Capacity on INSERT.
func CarriedWeightInContainer(s *types.GameState, containerID string) int {
	total := 0
	for _, it := range s.Items {
		if it.Parent.Kind == types.ParentItem && it.Parent.ID == containerID {
			total += it.Size
		}
	}
	return total
}

// CanCarry reports whether the player has room to pick up an item of the
// given size. Callers pass the limit from the game's Game{ max_carry }
// setting; a negative limit means unlimited.
func CanCarry(s *types.GameState, maxCarry, extraSize int) bool {
	if maxCarry < 0 {
		return true
	}
	return CarriedWeight(s)+extraSize <= maxCarry
}
