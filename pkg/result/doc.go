// Package result provides a generic success/failure container with
// chainable combinators, pushing error handling into return values instead
// of panics.
//
// A [Result] holds exactly one of a success value (Ok) or an error value
// (Err). Both type parameters are free: the error side does not have to be
// a Go error.
//
// # Construction
//
//	r := result.Ok[int, string](42)
//	e := result.Err[int, string]("not found")
//
//	// Lift a classic (value, error) return:
//	r := result.From(strconv.Atoi("42"))
//
// # Combinators
//
// Methods cover the combinators that keep both type parameters fixed:
//
//	r.IsOk()            // variant query
//	r.Tap(func(v int) { log.Println(v) })
//	r.UnwrapOr(-1)      // total: never panics
//	r.Unwrap()          // panics on Err — the one faulting operation
//
// Transformations that change a type parameter are package-level functions,
// since Go methods cannot introduce new type parameters:
//
//	doubled := result.Map(r, func(v int) int { return v * 2 })
//	parsed := result.AndThen(raw, parseHeader) // short-circuits on Err
//	msg := result.Match(r,
//	    func(v int) string { return fmt.Sprintf("got %d", v) },
//	    func(e string) string { return "failed: " + e },
//	)
//
// On the non-matching variant the supplied function is never invoked and
// the payload is carried over untouched.
//
// # Blocking operations
//
// Context-aware variants (MapCtx, AndThenCtx, TapCtx, …) thread a
// context.Context into the user function for transformations that perform
// I/O. Sync and ctx combinators compose freely in one chain.
//
// # Boundary with throwing code
//
// [FromThrowable] wraps a fallible function so the wrapper never fails out
// of band — returned errors and recovered panics both become Err:
//
//	safeParse := result.FromThrowable(func() (config, error) {
//	    return parseConfig(path) // may return an error or panic
//	})
//	cfg := safeParse().UnwrapOr(defaultConfig)
//
// Use [FromThrowableWith] to map the caught failure into a domain error
// type on the way in.
package result
