package handlers

import (
	"fmt"

	"github.com/nathoo/gnusto/types"
)

// OpenHandler implements OPEN <item>.
type OpenHandler struct{}

func (OpenHandler) Verb() string        { return "open" }
func (OpenHandler) RequiresLight() bool { return true }
func (OpenHandler) ConsumesTurn() bool  { return true }

func (OpenHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Open what?")
	}
	if !it.Flags.Has(types.FlagOpenable) && !it.Flags.Has(types.FlagContainer) {
		return msg(fmt.Sprintf("You can't open the %s.", it.Name))
	}
	if it.Flags.Has(types.FlagLocked) {
		return msg(fmt.Sprintf("The %s is locked.", it.Name))
	}
	if it.Flags.Has(types.FlagOpen) {
		return msg(fmt.Sprintf("The %s is already open.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You open the %s.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagOpen, true), touch(it.ID)},
	}
}

// CloseHandler implements CLOSE/SHUT <item>.
type CloseHandler struct{}

func (CloseHandler) Verb() string        { return "close" }
func (CloseHandler) RequiresLight() bool { return true }
func (CloseHandler) ConsumesTurn() bool  { return true }

func (CloseHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	if it == nil {
		return msg("Close what?")
	}
	if !it.Flags.Has(types.FlagOpenable) && !it.Flags.Has(types.FlagContainer) {
		return msg(fmt.Sprintf("You can't close the %s.", it.Name))
	}
	if !it.Flags.Has(types.FlagOpen) {
		return msg(fmt.Sprintf("The %s is already closed.", it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You close the %s.", it.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagOpen, false), touch(it.ID)},
	}
}

// LockHandler implements LOCK <item> WITH <key>.
type LockHandler struct{}

func (LockHandler) Verb() string        { return "lock" }
func (LockHandler) RequiresLight() bool { return true }
func (LockHandler) ConsumesTurn() bool  { return true }

func (LockHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	key := objectItem(ctx.State, ctx.Command.IndirectObject)
	if it == nil {
		return msg("Lock what?")
	}
	if !it.Flags.Has(types.FlagLockable) {
		return msg(fmt.Sprintf("The %s can't be locked.", it.Name))
	}
	if it.Flags.Has(types.FlagOpen) {
		return msg(fmt.Sprintf("You'll have to close the %s first.", it.Name))
	}
	if it.Flags.Has(types.FlagLocked) {
		return msg(fmt.Sprintf("The %s is already locked.", it.Name))
	}
	if key == nil {
		return msg("Lock it with what?")
	}
	if !key.Parent.IsPlayer() {
		return msg(fmt.Sprintf("You aren't holding the %s.", key.Name))
	}
	wantKey, _ := it.Props["lockKey"].(string)
	if wantKey == "" || wantKey != key.ID {
		return msg(fmt.Sprintf("The %s doesn't fit the %s.", key.Name, it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You lock the %s with the %s.", it.Name, key.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagLocked, true), touch(it.ID), touch(key.ID)},
	}
}

// UnlockHandler implements UNLOCK <item> WITH <key>.
type UnlockHandler struct{}

func (UnlockHandler) Verb() string        { return "unlock" }
func (UnlockHandler) RequiresLight() bool { return true }
func (UnlockHandler) ConsumesTurn() bool  { return true }

func (UnlockHandler) Process(ctx Context) types.ActionResult {
	it := objectItem(ctx.State, ctx.Command.DirectObject)
	key := objectItem(ctx.State, ctx.Command.IndirectObject)
	if it == nil {
		return msg("Unlock what?")
	}
	if !it.Flags.Has(types.FlagLockable) {
		return msg(fmt.Sprintf("The %s can't be unlocked.", it.Name))
	}
	if !it.Flags.Has(types.FlagLocked) {
		return msg(fmt.Sprintf("The %s is already unlocked.", it.Name))
	}
	if key == nil {
		return msg("Unlock it with what?")
	}
	if !key.Parent.IsPlayer() {
		return msg(fmt.Sprintf("You aren't holding the %s.", key.Name))
	}
	wantKey, _ := it.Props["lockKey"].(string)
	if wantKey == "" || wantKey != key.ID {
		return msg(fmt.Sprintf("The %s doesn't fit the %s.", key.Name, it.Name))
	}
	return types.ActionResult{
		Message: fmt.Sprintf("You unlock the %s with the %s.", it.Name, key.Name),
		Changes: []types.StateChange{types.FlagChange(it.ID, types.FlagLocked, false), touch(it.ID), touch(key.ID)},
	}
}
