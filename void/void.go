// Package void provides a Result that records whether an operation succeeded without carrying
// any payload in either branch.
//
// Handlers are attached in two phases: OnError runs first and returns a Stage, and the Stage's
// OnOk completes the chain.  Exactly one of the two handlers runs for any given Result.
package void

import "context"

// AsyncAction is a blocking handler that should honor the cancellation of the provided context.
type AsyncAction func(ctx context.Context) error

// Result is either Ok or Error.  The zero value is an Error result.
type Result struct {
	ok bool
}

// Ok returns a successful Result.
func Ok() Result {
	return Result{ok: true}
}

// Error returns a failed Result.
func Error() Result {
	return Result{}
}

// From returns Ok when ok is true and Error otherwise.
func From(ok bool) Result {
	return Result{ok: ok}
}

// IsOk reports whether the Result is Ok.
func (r Result) IsOk() bool {
	return r.ok
}

// IsError reports whether the Result is an Error.
func (r Result) IsError() bool {
	return !r.ok
}

// String returns "Ok" or "Error".
func (r Result) String() string {
	if r.ok {
		return "Ok"
	}
	return "Error"
}

// When invokes ok if the Result is Ok and err if it is an Error.  Exactly one handler runs.
func (r Result) When(ok func(), err func()) {
	if r.ok {
		ok()
		return
	}
	err()
}

// OnError invokes action if the Result is an Error.  The returned Stage is bound to r regardless of
// which branch was taken.
func (r Result) OnError(action func()) Stage {
	if !r.ok {
		action()
	}
	return Stage{r: r}
}

// OnErrorAsync invokes action and waits for it to return if the Result is an Error.
// The context is checked immediately before action would run; if it is already done the context
// error is returned and action is not invoked.  An Ok Result never consults the context.
// An error returned by action is passed back unmodified.
func (r Result) OnErrorAsync(ctx context.Context, action AsyncAction) (Stage, error) {
	s := Stage{r: r}
	if r.ok {
		return s, nil
	}
	return s, run(ctx, action)
}

// Stage is the second phase of an OnError chain.
type Stage struct {
	r Result
}

// OnOk invokes action if the bound Result is Ok.
func (s Stage) OnOk(action func()) {
	if s.r.ok {
		action()
	}
}

// OnOkAsync invokes action and waits for it to return if the bound Result is Ok, using the same
// cancellation rules as OnErrorAsync.
func (s Stage) OnOkAsync(ctx context.Context, action AsyncAction) error {
	if !s.r.ok {
		return nil
	}
	return run(ctx, action)
}

func run(ctx context.Context, action AsyncAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return action(ctx)
}
