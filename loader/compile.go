package loader

import (
	"fmt"

	"github.com/nathoo/gnusto/engine/state"
	"github.com/nathoo/gnusto/events"
	"github.com/nathoo/gnusto/types"
	lua "github.com/yuin/gopher-lua"
)

type rawRoom struct {
	id    string
	table *lua.LTable
}

type rawItem struct {
	id    string
	table *lua.LTable
}

type rawFuse struct {
	id    string
	table *lua.LTable
}

type rawDaemon struct {
	id    string
	table *lua.LTable
}

type rawHandler struct {
	eventType string
	table     *lua.LTable
}

func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// toGoValue converts a Lua value to a Go value recursively.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		maxN := val.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}

func tableToAnyMap(tbl *lua.LTable) map[string]any {
	if tbl == nil {
		return nil
	}
	m := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			m[string(ks)] = toGoValue(v)
		}
	})
	return m
}

// tableToStringSet converts a Lua array of strings into a presence set,
// used for an item's adjectives/synonyms/flags.
func tableToStringSet(tbl *lua.LTable) map[string]bool {
	if tbl == nil {
		return nil
	}
	set := map[string]bool{}
	n := tbl.MaxN()
	for i := 1; i <= n; i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			set[string(s)] = true
		}
	}
	return set
}

func tableToStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	n := tbl.MaxN()
	for i := 1; i <= n; i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Items:     map[string]*types.Item{},
		Locations: map[string]*types.Location{},
		Handlers:  map[string][]events.Def{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	for _, raw := range coll.rooms {
		loc, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		defs.Locations[loc.ID] = loc
	}

	for _, raw := range coll.items {
		it, err := compileItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling item %s: %w", raw.id, err)
		}
		defs.Items[it.ID] = it
	}

	for _, raw := range coll.fuses {
		defs.Fuses = append(defs.Fuses, events.Def{ID: raw.id, Effects: compileEffects(getTable(raw.table, "effects"))})
	}

	for _, raw := range coll.daemons {
		defs.Daemons = append(defs.Daemons, state.DaemonDef{
			ID:            raw.id,
			Period:        getInt(raw.table, "period"),
			ActiveAtStart: getBool(raw.table, "active_at_start", false),
			Effects:       compileEffects(getTable(raw.table, "effects")),
		})
	}

	for i, raw := range coll.handlers {
		def := events.Def{ID: fmt.Sprintf("%s_handler_%d", raw.eventType, i), Effects: compileEffects(getTable(raw.table, "effects"))}
		defs.Handlers[raw.eventType] = append(defs.Handlers[raw.eventType], def)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) state.GameDef {
	return state.GameDef{
		Title:     getString(tbl, "title"),
		Start:     getString(tbl, "start"),
		MaxCarry:  getInt(tbl, "max_carry"),
		Inventory: tableToStringSlice(getTable(tbl, "inventory")),
		DebugMode: getBool(tbl, "debug_mode", false),
	}
}

func compileRoom(raw rawRoom) (*types.Location, error) {
	tbl := raw.table
	loc := &types.Location{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Globals:     tableToStringSlice(getTable(tbl, "globals")),
		Props:       tableToAnyMap(getTable(tbl, "props")),
	}
	if getBool(tbl, "lit", false) {
		loc.Flags = loc.Flags.Set(types.LocInherentlyLit)
	}

	if exitsTbl := getTable(tbl, "exits"); exitsTbl != nil {
		n := exitsTbl.MaxN()
		for i := 1; i <= n; i++ {
			exitTbl, ok := exitsTbl.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			loc.Exits = append(loc.Exits, types.Exit{
				Direction:      getString(exitTbl, "dir"),
				DestinationID:  getString(exitTbl, "to"),
				DoorID:         getString(exitTbl, "door"),
				BlockedMessage: getString(exitTbl, "blocked"),
			})
		}
	}

	return loc, nil
}

func compileItem(raw rawItem) (*types.Item, error) {
	tbl := raw.table
	it := &types.Item{
		ID:         raw.id,
		Name:       getString(tbl, "name"),
		Adjectives: tableToStringSet(getTable(tbl, "adjectives")),
		Synonyms:   tableToStringSet(getTable(tbl, "synonyms")),
		Size:       getInt(tbl, "size"),
		Capacity:   -1,
		Props:      tableToAnyMap(getTable(tbl, "props")),
	}
	if capTbl := tbl.RawGetString("capacity"); capTbl != lua.LNil {
		it.Capacity = getInt(tbl, "capacity")
	}

	for name := range tableToStringSet(getTable(tbl, "flags")) {
		if flag, ok := types.ItemFlagByName(name); ok {
			it.Flags = it.Flags.Set(flag)
		}
	}

	switch {
	case getBool(tbl, "held", false):
		it.Parent = types.Parent{Kind: types.ParentPlayer}
	case getString(tbl, "in") != "":
		it.Parent = types.Parent{Kind: types.ParentItem, ID: getString(tbl, "in")}
	case getString(tbl, "location") != "":
		it.Parent = types.Parent{Kind: types.ParentLocation, ID: getString(tbl, "location")}
	default:
		it.Parent = types.Parent{Kind: types.ParentNowhere}
	}

	if charTbl := getTable(tbl, "character"); charTbl != nil {
		ch := &types.CharacterSheet{
			Health:          getInt(charTbl, "health"),
			MaxHealth:       getInt(charTbl, "max_health"),
			Attack:          getInt(charTbl, "attack"),
			Defense:         getInt(charTbl, "defense"),
			RequiresWeapon:  getBool(charTbl, "requires_weapon", false),
			PreferredWeapon: getString(charTbl, "preferred_weapon"),
		}
		if behTbl := getTable(charTbl, "behavior"); behTbl != nil {
			n := behTbl.MaxN()
			for i := 1; i <= n; i++ {
				if entry, ok := behTbl.RawGetInt(i).(*lua.LTable); ok {
					ch.Behavior = append(ch.Behavior, types.BehaviorEntry{
						Action: getString(entry, "action"),
						Weight: getInt(entry, "weight"),
					})
				}
			}
		}
		if lootTbl := getTable(charTbl, "loot"); lootTbl != nil {
			n := lootTbl.MaxN()
			for i := 1; i <= n; i++ {
				if entry, ok := lootTbl.RawGetInt(i).(*lua.LTable); ok {
					ch.Loot = append(ch.Loot, types.LootEntry{
						ItemID: getString(entry, "item"),
						Chance: getInt(entry, "chance"),
					})
				}
			}
		}
		it.Character = ch
	}

	return it, nil
}

func compileEffects(tbl *lua.LTable) []types.Effect {
	if tbl == nil {
		return nil
	}
	var effects []types.Effect
	n := tbl.MaxN()
	for i := 1; i <= n; i++ {
		if effTbl, ok := tbl.RawGetInt(i).(*lua.LTable); ok {
			effects = append(effects, compileEffect(effTbl))
		}
	}
	return effects
}

func compileEffect(tbl *lua.LTable) types.Effect {
	effType := getString(tbl, "type")
	params := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			key := string(ks)
			if key != "type" {
				params[key] = toGoValue(v)
			}
		}
	})
	return types.Effect{Type: effType, Params: params}
}
