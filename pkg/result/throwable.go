package result

import (
	"context"
	"fmt"
)

// From lifts a classic Go (value, error) return into a Result.
//
//	r := result.From(strconv.Atoi(s))
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// FromThrowable wraps a fallible function so that invoking the wrapper
// never fails out of band: errors and recovered panics both land on the
// Err channel.
func FromThrowable[T any](fn func() (T, error)) func() Result[T, error] {
	return FromThrowableWith(fn, func(err error) error { return err })
}

// FromThrowableWith is [FromThrowable] with an error mapper applied to the
// caught failure before wrapping it in Err.
func FromThrowableWith[T, E any](fn func() (T, error), mapper func(error) E) func() Result[T, E] {
	return func() (r Result[T, E]) {
		defer func() {
			if rec := recover(); rec != nil {
				r = Err[T, E](mapper(recoveredError(rec)))
			}
		}()

		v, err := fn()
		if err != nil {
			return Err[T, E](mapper(err))
		}
		return Ok[T, E](v)
	}
}

// FromCtxThrowable wraps a blocking fallible function; the wrapper accepts
// a context, never fails out of band, and resolves to a Result.
func FromCtxThrowable[T any](fn func(context.Context) (T, error)) func(context.Context) Result[T, error] {
	return FromCtxThrowableWith(fn, func(err error) error { return err })
}

// FromCtxThrowableWith is [FromCtxThrowable] with an error mapper.
func FromCtxThrowableWith[T, E any](fn func(context.Context) (T, error), mapper func(error) E) func(context.Context) Result[T, E] {
	return func(ctx context.Context) (r Result[T, E]) {
		defer func() {
			if rec := recover(); rec != nil {
				r = Err[T, E](mapper(recoveredError(rec)))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			return Err[T, E](mapper(err))
		}
		return Ok[T, E](v)
	}
}

// recoveredError normalizes a recovered panic value to an error.
func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}
