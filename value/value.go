// Package value provides a Result that is either Ok carrying a value of type T or an Error
// carrying a reason of type E.
//
// Results are always built with Ok or Error (or FromTuple for plain Go errors), so T and E may be
// the same type without any ambiguity about which branch a Result is in.
package value

import "fmt"

// Result is either Ok with a value or an Error with a reason.  The zero value is an Error holding
// the zero value of E.
type Result[E any, T any] struct {
	ok     bool
	val    T
	reason E
}

// Ok returns a successful Result holding v.  The reason type is listed first so it can be given
// explicitly while T is inferred: value.Ok[Reason](42).
func Ok[E any, T any](v T) Result[E, T] {
	return Result[E, T]{ok: true, val: v}
}

// Error returns a failed Result holding r.  The value type is listed first so it can be given
// explicitly while E is inferred: value.Error[int](ReasonNotFound).
func Error[T any, E any](r E) Result[E, T] {
	return Result[E, T]{reason: r}
}

// FromTuple converts a Go (value, error) pair into a Result.  A nil error is Ok.
func FromTuple[T any](v T, err error) Result[error, T] {
	if err != nil {
		return Error[T](err)
	}
	return Ok[error](v)
}

// Unpack converts r back into a Go (value, error) pair.  The value is the zero value of T for an
// Error.
func Unpack[T any](r Result[error, T]) (T, error) {
	if r.ok {
		return r.val, nil
	}
	return *new(T), r.reason
}

// IsOk reports whether the Result is Ok.
func (r Result[E, T]) IsOk() bool {
	return r.ok
}

// IsError reports whether the Result is an Error.
func (r Result[E, T]) IsError() bool {
	return !r.ok
}

// String formats the Result as "Ok(value)" or "Error(reason)".
func (r Result[E, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Error(%v)", r.reason)
}

// When returns ok applied to the value if the Result is Ok, otherwise err applied to the reason.
// Exactly one handler runs.
func (r Result[E, T]) When(ok func(T) T, err func(E) T) T {
	if r.ok {
		return ok(r.val)
	}
	return err(r.reason)
}

// Inspect calls ok with the value and returns the value unchanged if the Result is Ok, otherwise
// it returns err applied to the reason.
func (r Result[E, T]) Inspect(ok func(T), err func(E) T) T {
	if r.ok {
		ok(r.val)
		return r.val
	}
	return err(r.reason)
}

// WhenError returns the value if the Result is Ok, otherwise the substitute returned by err.
func (r Result[E, T]) WhenError(err func(E) T) T {
	if r.ok {
		return r.val
	}
	return err(r.reason)
}

// Match maps either branch of r to a common type R.  Both handlers are required and exactly one
// runs.
func Match[E any, T any, R any](r Result[E, T], ok func(T) R, err func(E) R) R {
	if r.ok {
		return ok(r.val)
	}
	return err(r.reason)
}

// OnError invokes action with the reason if the Result is an Error.  The returned Stage is bound
// to r regardless of which branch was taken.
func (r Result[E, T]) OnError(action func(E)) Stage[E, T] {
	if !r.ok {
		action(r.reason)
	}
	return Stage[E, T]{r: r}
}

// Stage is the second phase of an OnError chain.
type Stage[E any, T any] struct {
	r Result[E, T]
}

// OnOk invokes action with the value if the bound Result is Ok.
func (s Stage[E, T]) OnOk(action func(T)) {
	if s.r.ok {
		action(s.r.val)
	}
}
