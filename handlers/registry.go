package handlers

// NewDefaultRegistry builds the Registry of every built-in verb handler.
// Callers may layer per-item overrides on top via RegisterOverride after
// this call returns; the Lua loader declares none.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	for _, h := range []Handler{
		GoHandler{}, EnterHandler{}, ExitHandler{}, ClimbHandler{},
		LookHandler{}, ExamineHandler{}, LookInHandler{}, LookUnderHandler{},
		SmellHandler{}, ListenHandler{}, TouchHandler{},
		InventoryHandler{}, ScoreHandler{}, WaitHandler{}, ReadHandler{},
		TakeHandler{}, DropHandler{}, PutOnHandler{}, InsertHandler{},
		OpenHandler{}, CloseHandler{}, LockHandler{}, UnlockHandler{},
		WearHandler{}, RemoveHandler{},
		TurnOnHandler{}, TurnOffHandler{}, BurnHandler{}, ExtinguishHandler{},
		AttackHandler{},
		AskHandler{}, TellHandler{}, YesHandler{}, NoHandler{},
		NewSaveHandler(), NewRestoreHandler(), NewRestartHandler(), NewQuitHandler(),
		NewScriptHandler(), NewUnscriptHandler(), NewVerboseHandler(), NewBriefHandler(),
		NewDebugHandler(), NewXyzzyHandler(),
		NewPushHandler(), NewPullHandler(), GiveHandler{}, ShowHandler{}, ThrowHandler{},
		EatHandler{}, DrinkHandler{}, TieHandler{}, UntieHandler{},
		NewWaveHandler(), NewSingHandler(), NewPrayHandler(), NewSleepHandler(),
		NewKnockHandler(), NewYellHandler(), NewSwimHandler(), BuyHandler{},
	} {
		r.Register(h)
	}

	return r
}
