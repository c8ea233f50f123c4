package reason

// ReturnStage is the second phase of an OnErrorReturn chain.  It holds the value produced by the
// error handler until OnOk decides which value the chain evaluates to.
type ReturnStage[E any, R any] struct {
	r        Result[E]
	fallback R
}

// OnErrorReturn invokes action with the reason if r is an Error and keeps its return value as the
// fallback of the chain.  Completing the chain with OnOk yields a single R no matter which branch
// ran, which lets a failure be defaulted away:
//
//	n := reason.OnErrorReturn(r, func(Reason) int { return 99 }).OnOk(func() int { return 1 })
func OnErrorReturn[E any, R any](r Result[E], action func(E) R) ReturnStage[E, R] {
	s := ReturnStage[E, R]{r: r}
	if !r.ok {
		s.fallback = action(r.reason)
	}
	return s
}

// OnOk returns the result of action if the bound Result is Ok, otherwise the value returned by the
// error handler.  action is not invoked for an Error.
func (s ReturnStage[E, R]) OnOk(action func() R) R {
	if s.r.ok {
		return action()
	}
	return s.fallback
}
