package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/gnusto/scope"
	"github.com/nathoo/gnusto/types"
)

// LookHandler implements LOOK — a full room re-description.
type LookHandler struct{}

func (LookHandler) Verb() string        { return "look" }
func (LookHandler) RequiresLight() bool { return false }
func (LookHandler) ConsumesTurn() bool  { return true }

func (LookHandler) Process(ctx Context) types.ActionResult {
	return msg(DescribeRoom(ctx.State, ctx.Location, true))
}

// DescribeRoom renders a location's name, description (when forceFull, not
// yet visited, or in verbose mode), visible item listing, and exits — the shared renderer
// used by LOOK and by the engine's automatic room redescription.
func DescribeRoom(s *types.GameState, loc *types.Location, forceFull bool) string {
	var b strings.Builder
	b.WriteString(loc.Name)
	if forceFull || !loc.Flags.Has(types.LocVisited) || s.Verbose {
		b.WriteString("\n")
		b.WriteString(loc.Description)
	}

	var names []string
	for _, id := range scope.InScope(s, loc) {
		it := s.Items[id]
		if it == nil || it.Flags.Has(types.FlagOmitDescription) {
			continue
		}
		if it.Parent.Kind != types.ParentLocation || it.Parent.ID != loc.ID {
			continue
		}
		names = append(names, it.Name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		b.WriteString("\nYou see: " + strings.Join(names, ", ") + ".")
	}

	var dirs []string
	for _, e := range loc.Exits {
		dirs = append(dirs, e.Direction)
	}
	sort.Strings(dirs)
	if len(dirs) > 0 {
		b.WriteString("\nExits: " + strings.Join(dirs, ", ") + ".")
	}
	return b.String()
}

// ExamineHandler implements EXAMINE/X/LOOK AT <item>.
type ExamineHandler struct{}

func (ExamineHandler) Verb() string        { return "examine" }
func (ExamineHandler) RequiresLight() bool { return true }
func (ExamineHandler) ConsumesTurn() bool  { return true }

func (ExamineHandler) Process(ctx Context) types.ActionResult {
	if ctx.Command.DirectObject != nil && ctx.Command.DirectObject.Kind == types.RefUniversal {
		return msg(universalDescription(ctx.Command.DirectObject.UniversalKind))
	}
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Examine what?")
	}
	desc, _ := it.Props["description"].(string)
	result := msg(emptyOr(desc, fmt.Sprintf("You see nothing special about the %s.", it.Name)))
	result.Changes = []types.StateChange{touch(it.ID)}
	if it.Flags.Has(types.FlagContainer) {
		if it.Flags.Has(types.FlagOpen) || it.Flags.Has(types.FlagTransparent) {
			contents := childNames(ctx.State, it.ID)
			if len(contents) > 0 {
				result.Message += "\nIt contains: " + strings.Join(contents, ", ") + "."
			} else {
				result.Message += "\nIt is empty."
			}
		}
	}
	return result
}

func universalDescription(kind string) string {
	switch kind {
	case "air":
		return "It's just air."
	case "ground":
		return "Nothing special about the ground here."
	case "self":
		return "You look about the same as ever."
	default:
		return "You see nothing special."
	}
}

func childNames(s *types.GameState, containerID string) []string {
	var names []string
	for _, id := range s.Children(types.Parent{Kind: types.ParentItem, ID: containerID}) {
		if it := s.Items[id]; it != nil {
			names = append(names, it.Name)
		}
	}
	return names
}

func emptyOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// LookInHandler implements LOOK IN/SEARCH <container>.
type LookInHandler struct{}

func (LookInHandler) Verb() string        { return "look_in" }
func (LookInHandler) RequiresLight() bool { return true }
func (LookInHandler) ConsumesTurn() bool  { return true }

func (LookInHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Look in what?")
	}
	if !it.Flags.Has(types.FlagContainer) {
		return msg(fmt.Sprintf("You can't look inside the %s.", it.Name))
	}
	if !it.Flags.Has(types.FlagOpen) && !it.Flags.Has(types.FlagTransparent) {
		return msg(fmt.Sprintf("The %s is closed.", it.Name))
	}
	contents := childNames(ctx.State, it.ID)
	if len(contents) == 0 {
		return msg(fmt.Sprintf("The %s is empty.", it.Name))
	}
	return msg(fmt.Sprintf("The %s contains: %s.", it.Name, strings.Join(contents, ", ")))
}

// LookUnderHandler implements LOOK UNDER <item> — almost always a dead
// end, unless content wires an "under_reveals" prop onto the item.
type LookUnderHandler struct{}

func (LookUnderHandler) Verb() string        { return "look_under" }
func (LookUnderHandler) RequiresLight() bool { return true }
func (LookUnderHandler) ConsumesTurn() bool  { return true }

func (LookUnderHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Look under what?")
	}
	if reveal, ok := it.Props["under_reveals"].(string); ok && reveal != "" {
		return msg(reveal)
	}
	return msg(fmt.Sprintf("There's nothing under the %s.", it.Name))
}

// SmellHandler implements SMELL/SNIFF [item].
type SmellHandler struct{}

func (SmellHandler) Verb() string        { return "smell" }
func (SmellHandler) RequiresLight() bool { return false }
func (SmellHandler) ConsumesTurn() bool  { return true }

func (SmellHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("You smell nothing unusual.")
	}
	if smell, ok := it.Props["smell"].(string); ok && smell != "" {
		return msg(smell)
	}
	return msg(fmt.Sprintf("The %s smells about as you'd expect.", it.Name))
}

// ListenHandler implements LISTEN/HEAR [item].
type ListenHandler struct{}

func (ListenHandler) Verb() string        { return "listen" }
func (ListenHandler) RequiresLight() bool { return false }
func (ListenHandler) ConsumesTurn() bool  { return true }

func (ListenHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("You hear nothing out of the ordinary.")
	}
	if sound, ok := it.Props["sound"].(string); ok && sound != "" {
		return msg(sound)
	}
	return msg(fmt.Sprintf("The %s makes no sound.", it.Name))
}

// TouchHandler implements TOUCH/FEEL/RUB <item>.
type TouchHandler struct{}

func (TouchHandler) Verb() string        { return "touch" }
func (TouchHandler) RequiresLight() bool { return true }
func (TouchHandler) ConsumesTurn() bool  { return true }

func (TouchHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Touch what?")
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You feel nothing unexpected about the %s.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagTouched, true)},
	}
}

// InventoryHandler implements INVENTORY/I/INV.
type InventoryHandler struct{}

func (InventoryHandler) Verb() string        { return "inventory" }
func (InventoryHandler) RequiresLight() bool { return false }
func (InventoryHandler) ConsumesTurn() bool  { return false }

func (InventoryHandler) Process(ctx Context) types.ActionResult {
	ids := ctx.State.Inventory()
	if len(ids) == 0 {
		return msg("You are carrying nothing.")
	}
	var names []string
	for _, id := range ids {
		it := ctx.State.Items[id]
		if it == nil {
			continue
		}
		name := it.Name
		if it.Flags.Has(types.FlagWorn) {
			name += " (worn)"
		}
		names = append(names, name)
	}
	return msg("You are carrying: " + strings.Join(names, ", ") + ".")
}

// ScoreHandler implements SCORE.
type ScoreHandler struct{}

func (ScoreHandler) Verb() string        { return "score" }
func (ScoreHandler) RequiresLight() bool { return false }
func (ScoreHandler) ConsumesTurn() bool  { return false }

func (ScoreHandler) Process(ctx Context) types.ActionResult {
	return msg(fmt.Sprintf("Your score is %d in %d moves.", ctx.State.Player.Score, ctx.State.Player.Moves))
}

// WaitHandler implements WAIT/Z.
type WaitHandler struct{}

func (WaitHandler) Verb() string        { return "wait" }
func (WaitHandler) RequiresLight() bool { return false }
func (WaitHandler) ConsumesTurn() bool  { return true }

func (WaitHandler) Process(ctx Context) types.ActionResult { return msg("Time passes.") }

// ReadHandler implements READ <item>.
type ReadHandler struct{}

func (ReadHandler) Verb() string        { return "read" }
func (ReadHandler) RequiresLight() bool { return true }
func (ReadHandler) ConsumesTurn() bool  { return true }

func (ReadHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Read what?")
	}
	if !it.Flags.Has(types.FlagReadable) {
		return msg(fmt.Sprintf("There's nothing written on the %s.", it.Name))
	}
	text, _ := it.Props["readText"].(string)
	result := types.ActionResult{
		Message: emptyOr(text, "It's blank."),
		Changes: []types.StateChange{touch(it.ID)},
	}
	if takeFirst, _ := it.Props["shouldTakeFirst"].(bool); takeFirst && !it.Parent.IsPlayer() {
		result.Changes = append(result.Changes, types.ReparentChange(it.ID, types.Parent{Kind: types.ParentPlayer}))
	}
	return result
}
