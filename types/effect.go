package types

// Effect is a declarative, data-only description of something a fuse, a
// daemon, or an event handler wants to happen. It is interpreted by the
// engine's effect applier into StateChanges plus narrative text — game
// content (compiled from Lua) only
// ever produces these, never touches GameState directly.
type Effect struct {
	Type   string
	Params map[string]any
}

// GameEvent is emitted after an ActionResult's StateChanges are applied.
// Event handlers (Defs.Handlers) react to these in a single dispatch pass
// after the action — they do not recurse.
type GameEvent struct {
	Type string
	Data map[string]any
}

// SideEffect is a request the handler cannot express as a StateChange
// because it drives engine behavior rather than game-state data: moving
// the player (modeled as a StateChange to AttrPlayerLoc instead — kept
// separate here only for effects that have no data representation at
// all), scheduling a fuse or daemon, or asking the engine to save,
// restore, restart, or quit.
type SideEffect struct {
	Type   string
	Params map[string]any
}

// SideEffect.Type values the engine switches on, alongside the
// "replay_verb" type that YesHandler emits.
const (
	SideRequestQuit     = "request_quit"
	SideRequestRestart  = "request_restart"
	SideRequestSave     = "request_save"
	SideRequestRestore  = "request_restore"
	SideStartFuse       = "start_fuse"
	SideStopFuse        = "stop_fuse"
	SideStartDaemon     = "start_daemon"
	SideStopDaemon      = "stop_daemon"
	SideToggleScript    = "toggle_script"
	SideSetVerbosity    = "set_verbosity"
	SideStartCombat     = "start_combat"
	SideEndCombat       = "end_combat"
	SideSetPendingYesNo = "set_pending_yes_no"
	SideClearPending    = "clear_pending"
)

// ActionResult is what a Handler.Process returns: narrative text, the
// atomic StateChanges the Engine should apply, and any SideEffects.
type ActionResult struct {
	Message     string
	Changes     []StateChange
	SideEffects []SideEffect
	ConsumedAll []string // for ALL-expanded commands: ids that succeeded
	SkippedAll  []string // ids that failed a precondition and were silently skipped
}
