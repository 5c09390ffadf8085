package result

import "context"

// Context-aware counterparts of the package combinators. The user function
// receives a context and may block; the combinator itself adds no
// suspension points and no cancellation of its own — once invoked, the
// chain runs until the user function returns.

// MapCtx is [Map] for a blocking transformation.
func MapCtx[T, E, U any](ctx context.Context, r Result[T, E], fn func(context.Context, T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(ctx, r.value))
}

// MapErrCtx is [MapErr] for a blocking transformation.
func MapErrCtx[T, E, F any](ctx context.Context, r Result[T, E], fn func(context.Context, E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(ctx, r.err))
}

// AndThenCtx is [AndThen] for a blocking transformation.
func AndThenCtx[T, E, U any](ctx context.Context, r Result[T, E], fn func(context.Context, T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(ctx, r.value)
}

// TapCtx invokes fn with the success value and returns the result
// unchanged. fn is not invoked on Err.
func TapCtx[T, E any](ctx context.Context, r Result[T, E], fn func(context.Context, T)) Result[T, E] {
	if r.ok {
		fn(ctx, r.value)
	}
	return r
}

// TapErrCtx invokes fn with the error value and returns the result
// unchanged. fn is not invoked on Ok.
func TapErrCtx[T, E any](ctx context.Context, r Result[T, E], fn func(context.Context, E)) Result[T, E] {
	if !r.ok {
		fn(ctx, r.err)
	}
	return r
}
