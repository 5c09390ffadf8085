package result

import "fmt"

// Result holds exactly one of a success value of type T or an error value
// of type E. Construct it with [Ok] or [Err]; the variant is fixed at
// construction and every combinator returns a new Result instead of
// mutating the receiver.
//
// The zero value is an Err carrying E's zero value. Prefer the constructors.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps an error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload and whether the result is Ok.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Error returns the error payload and whether the result is Err.
func (r Result[T, E]) Error() (E, bool) {
	return r.err, !r.ok
}

// Tap invokes fn with the success value and returns the result unchanged.
// fn is not invoked on Err.
func (r Result[T, E]) Tap(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr invokes fn with the error value and returns the result unchanged.
// fn is not invoked on Ok.
func (r Result[T, E]) TapErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Unwrap returns the success value.
// It panics on Err with a message embedding the error payload. This is the
// only operation in the package that can fault; use [Result.UnwrapOr] or
// [Result.Value] when the caller cannot rule out the Err variant.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: unwrap of err result: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on Err. Never panics.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// String implements fmt.Stringer for debugging output.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
