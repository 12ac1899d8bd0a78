package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerEffectHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title=.., start=.., max_carry=.., inventory={"id", ...} }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room("id") { name=.., description=.., exits={...}, globals={...}, lit=true }
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item("id") { name=.., adjectives={...}, synonyms={...}, location="room",
	//              in="container_id", held=true, size=.., capacity=..,
	//              flags={"takable", "container"}, props={...}, character={...} }
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawItem{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Fuse("id") { effects={...} } — only effects is read; a fuse's delay
	// is given by the ScheduleFuse effect that starts it.
	L.SetGlobal("Fuse", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.fuses = append(coll.fuses, rawFuse{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Daemon("id") { period=10, active_at_start=true, effects={...} }
	L.SetGlobal("Daemon", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.daemons = append(coll.daemons, rawDaemon{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// On("event_type") { effects={...} } — reacts to engine-emitted GameEvents
	// (item_moved, item_opened, room_entered) declared in engine.deriveEvents.
	L.SetGlobal("On", L.NewFunction(func(L *lua.LState) int {
		eventType := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.handlers = append(coll.handlers, rawHandler{eventType: eventType, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))
}

// registerEffectHelpers registers the constructors content uses inside an
// `effects = {...}` list — each returns a plain table with a "type" field
// that compileEffect turns into a types.Effect.
func registerEffectHelpers(L *lua.LState) {
	// Say("text")
	L.SetGlobal("Say", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("say"))
		tbl.RawSetString("text", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// MoveToRoom("item", "room")
	L.SetGlobal("MoveToRoom", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("move_item"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("parent_kind", lua.LString("location"))
		tbl.RawSetString("parent_id", lua.LString(L.CheckString(2)))
		L.Push(tbl)
		return 1
	}))

	// MoveToContainer("item", "container_item_id")
	L.SetGlobal("MoveToContainer", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("move_item"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("parent_kind", lua.LString("item"))
		tbl.RawSetString("parent_id", lua.LString(L.CheckString(2)))
		L.Push(tbl)
		return 1
	}))

	// MoveToPlayer("item")
	L.SetGlobal("MoveToPlayer", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("move_item"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("parent_kind", lua.LString("player"))
		L.Push(tbl)
		return 1
	}))

	// RemoveFromPlay("item")
	L.SetGlobal("RemoveFromPlay", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("move_item"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("parent_kind", lua.LString("nowhere"))
		L.Push(tbl)
		return 1
	}))

	// SetItemFlag("item", "flag_name", true)
	L.SetGlobal("SetItemFlag", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("set_flag"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("flag", lua.LString(L.CheckString(2)))
		tbl.RawSetString("value", lua.LBool(L.CheckBool(3)))
		L.Push(tbl)
		return 1
	}))

	// SetItemProp("item", "key", value)
	L.SetGlobal("SetItemProp", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("set_prop"))
		tbl.RawSetString("item", lua.LString(L.CheckString(1)))
		tbl.RawSetString("key", lua.LString(L.CheckString(2)))
		tbl.RawSetString("value", L.Get(3))
		L.Push(tbl)
		return 1
	}))

	// SetGlobalFlag("name", true)
	L.SetGlobal("SetGlobalFlag", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("set_global_flag"))
		tbl.RawSetString("flag", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", lua.LBool(L.CheckBool(2)))
		L.Push(tbl)
		return 1
	}))

	// ScheduleFuse("id", delay)
	L.SetGlobal("ScheduleFuse", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("start_fuse"))
		tbl.RawSetString("id", lua.LString(L.CheckString(1)))
		tbl.RawSetString("delay", lua.LNumber(L.CheckNumber(2)))
		L.Push(tbl)
		return 1
	}))

	// CancelFuse("id")
	L.SetGlobal("CancelFuse", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("stop_fuse"))
		tbl.RawSetString("id", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))

	// ScheduleDaemon("id", period)
	L.SetGlobal("ScheduleDaemon", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("start_daemon"))
		tbl.RawSetString("id", lua.LString(L.CheckString(1)))
		tbl.RawSetString("period", lua.LNumber(L.CheckNumber(2)))
		L.Push(tbl)
		return 1
	}))

	// CancelDaemon("id")
	L.SetGlobal("CancelDaemon", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("stop_daemon"))
		tbl.RawSetString("id", lua.LString(L.CheckString(1)))
		L.Push(tbl)
		return 1
	}))
}
