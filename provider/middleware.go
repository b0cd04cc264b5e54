package provider

// Middleware transforms a RequestResponse backend by wrapping it. The
// returned backend delegates to the original while adding cross-cutting
// behavior such as logging or tracing.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes multiple middlewares into one. Middlewares apply in
// order: the first is outermost (executes first on the way in, last on
// the way out).
//
// Chain(a, b, c)(backend) is equivalent to a(b(c(backend))).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
