// Package curry turns an ordinary fixed-arity callable into a curried one:
// a wrapper that accepts its arguments incrementally across multiple calls,
// accumulating a partial binding until enough arguments are present to
// invoke the real function.
//
// A Specializer is built once with the desired behavior and then applied to
// callables together with an explicit Signature (Go reflection exposes a
// function's arity but not its parameter names, so the names and default
// table are declared up front):
//
//	spec, err := curry.New()
//	if err != nil { ... }
//	add := func(a, b, c int) int { return a + b + c }
//	f, err := spec.Specialize(add, curry.Signature{
//	    Name:   "add",
//	    Params: []string{"a", "b", "c"},
//	})
//	if err != nil { ... }
//
//	g, _ := f.Call(1)          // binds a
//	h, _ := g.(*curry.Node).Call(2, 3)
//	sum, _ := h.(*curry.Node).Call() // forces: add(1, 2, 3) == 6
//
// Plain values bind positionally to the first free parameter slot; values
// wrapped with Arg bind by name:
//
//	g, _ := f.Call(curry.Arg("c", 3))
//
// Behavior is controlled by three independent options:
//
//   - WithEager: the call that binds the last free parameter invokes the
//     function directly instead of requiring an explicit empty Call.
//   - WithOverride: named values may rebind already-bound parameters; the
//     later value wins. Otherwise rebinding is an error.
//   - WithDefaults: the Signature's default values are pre-bound at
//     specialization time. Independent of this flag, declared defaults
//     always fill parameters left unbound at forcing time.
//
// Every Node is an immutable snapshot; deriving two continuations from the
// same node never lets their bindings interfere. Variadic callables are
// rejected: their parameter count is not fixed, so currying them is
// ambiguous.
//
// All failures are synchronous and fail-fast. Typed errors carry the
// callable name and the offending parameter and unwrap to the package's
// sentinel errors for matching with errors.Is.
package curry
