// Package reason provides a Result that is either Ok with no payload or an Error carrying a
// caller defined reason of type E.
//
// The reason type is typically an enumeration of domain specific failures.  The package never
// inspects it.
package reason

import (
	"context"
	"fmt"
)

// AsyncAction is a blocking handler that should honor the cancellation of the provided context.
type AsyncAction func(ctx context.Context) error

// AsyncHandler is an AsyncAction that also receives the reason of an Error result.
type AsyncHandler[E any] func(ctx context.Context, reason E) error

// Result is either Ok or an Error holding a reason.  The zero value is an Error holding the zero
// value of E.
type Result[E any] struct {
	ok     bool
	reason E
}

// Ok returns a successful Result.
func Ok[E any]() Result[E] {
	return Result[E]{ok: true}
}

// Error returns a failed Result holding r.
func Error[E any](r E) Result[E] {
	return Result[E]{reason: r}
}

// FromError converts a plain Go error into a Result.  A nil error is Ok.
func FromError(err error) Result[error] {
	if err != nil {
		return Error(err)
	}
	return Ok[error]()
}

// IsOk reports whether the Result is Ok.
func (r Result[E]) IsOk() bool {
	return r.ok
}

// IsError reports whether the Result is an Error.
func (r Result[E]) IsError() bool {
	return !r.ok
}

// String formats the Result as "Ok" or "Error(reason)".
func (r Result[E]) String() string {
	if r.ok {
		return "Ok"
	}
	return fmt.Sprintf("Error(%v)", r.reason)
}

// When invokes ok if the Result is Ok and err with the reason if it is an Error.
// Exactly one handler runs.
func (r Result[E]) When(ok func(), err func(E)) {
	if r.ok {
		ok()
		return
	}
	err(r.reason)
}

// WhenError invokes err with the reason if the Result is an Error and does nothing otherwise.
func (r Result[E]) WhenError(err func(E)) {
	if !r.ok {
		err(r.reason)
	}
}

// OnError invokes action with the reason if the Result is an Error.  The returned Stage is bound
// to r regardless of which branch was taken.
func (r Result[E]) OnError(action func(E)) Stage[E] {
	if !r.ok {
		action(r.reason)
	}
	return Stage[E]{r: r}
}

// OnErrorAsync invokes action with the reason and waits for it to return if the Result is an Error.
// The context is checked immediately before action would run; if it is already done the context
// error is returned and action is not invoked.  An Ok Result never consults the context.
func (r Result[E]) OnErrorAsync(ctx context.Context, action AsyncHandler[E]) (Stage[E], error) {
	s := Stage[E]{r: r}
	if r.ok {
		return s, nil
	}
	if err := ctx.Err(); err != nil {
		return s, err
	}
	return s, action(ctx, r.reason)
}

// Stage is the second phase of an OnError chain.
type Stage[E any] struct {
	r Result[E]
}

// OnOk invokes action if the bound Result is Ok.
func (s Stage[E]) OnOk(action func()) {
	if s.r.ok {
		action()
	}
}

// OnOkAsync invokes action and waits for it to return if the bound Result is Ok, using the same
// cancellation rules as OnErrorAsync.
func (s Stage[E]) OnOkAsync(ctx context.Context, action AsyncAction) error {
	if !s.r.ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return action(ctx)
}
