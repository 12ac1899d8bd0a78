package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/gnusto/engine/state"
	"github.com/nathoo/gnusto/types"
)

// validate checks cross-references in compiled Defs that the Lua layer
// can't catch itself — a typo in an exit destination or a starting
// inventory item id would otherwise surface as a runtime panic deep in a
// player's first turn.
func validate(defs *state.Defs) error {
	var errs []string

	if defs.Game.Start == "" {
		errs = append(errs, "Game.start is required")
	} else if _, ok := defs.Locations[defs.Game.Start]; !ok {
		errs = append(errs, fmt.Sprintf("Game.start %q is not a declared room", defs.Game.Start))
	}

	for _, id := range defs.Game.Inventory {
		if _, ok := defs.Items[id]; !ok {
			errs = append(errs, fmt.Sprintf("Game.inventory references undeclared item %q", id))
		}
	}

	for locID, loc := range defs.Locations {
		for _, exit := range loc.Exits {
			if _, ok := defs.Locations[exit.DestinationID]; !ok {
				errs = append(errs, fmt.Sprintf("room %q exit %q points to undeclared room %q", locID, exit.Direction, exit.DestinationID))
			}
			if exit.DoorID != "" {
				if _, ok := defs.Items[exit.DoorID]; !ok {
					errs = append(errs, fmt.Sprintf("room %q exit %q references undeclared door item %q", locID, exit.Direction, exit.DoorID))
				}
			}
		}
		for _, globalID := range loc.Globals {
			if _, ok := defs.Items[globalID]; !ok {
				errs = append(errs, fmt.Sprintf("room %q globals references undeclared item %q", locID, globalID))
			}
		}
	}

	for id, it := range defs.Items {
		switch it.Parent.Kind {
		case types.ParentLocation:
			if _, ok := defs.Locations[it.Parent.ID]; !ok {
				errs = append(errs, fmt.Sprintf("item %q location %q is not a declared room", id, it.Parent.ID))
			}
		case types.ParentItem:
			if _, ok := defs.Items[it.Parent.ID]; !ok {
				errs = append(errs, fmt.Sprintf("item %q container %q is not a declared item", id, it.Parent.ID))
			}
		}
		if it.Character != nil {
			for _, loot := range it.Character.Loot {
				if _, ok := defs.Items[loot.ItemID]; !ok {
					errs = append(errs, fmt.Sprintf("item %q loot references undeclared item %q", id, loot.ItemID))
				}
			}
		}
		if keyID, ok := it.Props["lockKey"].(string); ok && keyID != "" {
			if _, ok := defs.Items[keyID]; !ok {
				errs = append(errs, fmt.Sprintf("item %q lockKey references undeclared item %q", id, keyID))
			}
		}
	}

	for _, fuse := range defs.Fuses {
		if fuse.ID == "" {
			errs = append(errs, "a Fuse{} is missing its id")
		}
	}
	for _, daemon := range defs.Daemons {
		if daemon.Period <= 0 {
			errs = append(errs, fmt.Sprintf("daemon %q must have a positive period", daemon.ID))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	sort.Strings(errs)
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}
