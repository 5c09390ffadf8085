package result

// Combinators that change a type parameter live at package level because
// Go methods cannot introduce new type parameters.

// Map applies fn to the success value and wraps the return value in a new
// Ok. On Err the error value is carried over untouched and fn is not
// invoked.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr applies fn to the error value and wraps the return value in a new
// Err. The dual of [Map]: on Ok the success value is carried over untouched
// and fn is not invoked.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// AndThen chains a fallible transformation: on Ok the returned result is
// whatever fn returns, which lets any step in a chain short-circuit to Err.
// On Err fn is not invoked and the error propagates.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(r.value)
}

// Match dispatches exhaustively on the variant and returns the branch's
// return value.
func Match[T, E, U any](r Result[T, E], okFn func(T) U, errFn func(E) U) U {
	if r.ok {
		return okFn(r.value)
	}
	return errFn(r.err)
}
