package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// metaVerb is shared boilerplate for the session-control verbs: none of
// them require light, and none of them consume a game turn.
type metaVerb struct {
	verb string
}

func (m metaVerb) Verb() string        { return m.verb }
func (metaVerb) RequiresLight() bool   { return false }
func (metaVerb) ConsumesTurn() bool    { return false }

// SaveHandler implements SAVE.
type SaveHandler struct{ metaVerb }

func NewSaveHandler() SaveHandler { return SaveHandler{metaVerb{"save"}} }

func (SaveHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Saving...",
		SideEffects: []types.SideEffect{{Type: types.SideRequestSave}},
	}
}

// RestoreHandler implements RESTORE/LOAD.
type RestoreHandler struct{ metaVerb }

func NewRestoreHandler() RestoreHandler { return RestoreHandler{metaVerb{"restore"}} }

func (RestoreHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Restoring...",
		SideEffects: []types.SideEffect{{Type: types.SideRequestRestore}},
	}
}

// RestartHandler implements RESTART.
type RestartHandler struct{ metaVerb }

func NewRestartHandler() RestartHandler { return RestartHandler{metaVerb{"restart"}} }

func (RestartHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Restarting.",
		SideEffects: []types.SideEffect{{Type: types.SideRequestRestart}},
	}
}

// QuitHandler implements QUIT/Q.
type QuitHandler struct{ metaVerb }

func NewQuitHandler() QuitHandler { return QuitHandler{metaVerb{"quit"}} }

func (QuitHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Thanks for playing.",
		SideEffects: []types.SideEffect{{Type: types.SideRequestQuit}},
	}
}

// ScriptHandler implements SCRIPT — begin transcript logging.
type ScriptHandler struct{ metaVerb }

func NewScriptHandler() ScriptHandler { return ScriptHandler{metaVerb{"script"}} }

func (ScriptHandler) Process(ctx Context) types.ActionResult {
	if ctx.State.ScriptActive {
		return msg("Scripting is already on.")
	}
	return types.ActionResult{
		Message:     "Scripting on.",
		SideEffects: []types.SideEffect{{Type: types.SideToggleScript, Params: map[string]any{"on": true}}},
	}
}

// UnscriptHandler implements UNSCRIPT — stop transcript logging.
type UnscriptHandler struct{ metaVerb }

func NewUnscriptHandler() UnscriptHandler { return UnscriptHandler{metaVerb{"unscript"}} }

func (UnscriptHandler) Process(ctx Context) types.ActionResult {
	if !ctx.State.ScriptActive {
		return msg("Scripting is already off.")
	}
	return types.ActionResult{
		Message:     "Scripting off.",
		SideEffects: []types.SideEffect{{Type: types.SideToggleScript, Params: map[string]any{"on": false}}},
	}
}

// VerboseHandler implements VERBOSE — always give full room descriptions.
type VerboseHandler struct{ metaVerb }

func NewVerboseHandler() VerboseHandler { return VerboseHandler{metaVerb{"verbose"}} }

func (VerboseHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Verbose mode on.",
		SideEffects: []types.SideEffect{{Type: types.SideSetVerbosity, Params: map[string]any{"verbose": true}}},
	}
}

// BriefHandler implements BRIEF — only describe rooms in full on first visit.
type BriefHandler struct{ metaVerb }

func NewBriefHandler() BriefHandler { return BriefHandler{metaVerb{"brief"}} }

func (BriefHandler) Process(ctx Context) types.ActionResult {
	return types.ActionResult{
		Message:     "Brief mode on.",
		SideEffects: []types.SideEffect{{Type: types.SideSetVerbosity, Params: map[string]any{"verbose": false}}},
	}
}

// DebugHandler implements the DEBUG easter-egg verb: dumps the player's
// current location id and turn count, gated behind a content-authored
// "debug_enabled" global flag so release builds can disable it outright.
type DebugHandler struct{ metaVerb }

func NewDebugHandler() DebugHandler { return DebugHandler{metaVerb{"debug"}} }

func (DebugHandler) Process(ctx Context) types.ActionResult {
	if !ctx.State.Flags["debug_enabled"] {
		return msg("I don't understand that.")
	}
	return msg(fmt.Sprintf("[debug] location=%s turn=%d", ctx.Location.ID, ctx.State.TurnCount))
}

// XyzzyHandler implements the traditional XYZZY magic word.
type XyzzyHandler struct{ metaVerb }

func NewXyzzyHandler() XyzzyHandler { return XyzzyHandler{metaVerb{"xyzzy"}} }

func (XyzzyHandler) Process(ctx Context) types.ActionResult {
	return msg("A hollow voice says \"Fool.\"")
}
