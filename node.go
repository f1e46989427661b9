package curry

import (
	"maps"
	"reflect"

	"github.com/ygrebnov/errorc"

	curryerrors "github.com/dpiegdon/curry/internal/errors"
)

// Named pairs a parameter name with a value for keyword-style binding.
type Named struct {
	Name  string
	Value any
}

// Arg names a value for keyword-style binding in Node.Call.
func Arg(name string, value any) Named {
	return Named{Name: name, Value: value}
}

// Node is one curried, partially-applied value: an immutable snapshot of
// the underlying callable, its signature, the arguments bound so far and
// the behavior flags. Calling a Node never mutates it, so independent
// continuations can be derived from the same node and nodes can be shared
// across goroutines (invoking the underlying callable concurrently is only
// as safe as the callable itself).
type Node struct {
	fn            reflect.Value
	sig           *signature
	bound         map[string]any
	lazy          bool
	allowOverride bool
}

// Call applies values to the curried callable. Plain values bind
// positionally to the first free parameter slot, in the order given;
// values wrapped with Arg bind by name. All positional values are resolved
// before any named ones, regardless of how the call site interleaves them.
//
// An empty Call forces evaluation: the underlying callable is invoked with
// the accumulated bindings and its result is returned verbatim. Otherwise
// the return value is either a new *Node holding the extended bindings or,
// when laziness is disabled and the last free slot was just bound, the
// result of the underlying call.
func (n *Node) Call(args ...any) (any, error) {
	if len(args) == 0 {
		return n.invoke(n.bound)
	}

	bound := maps.Clone(n.bound)
	for _, a := range args {
		if _, ok := a.(Named); ok {
			continue
		}
		slot, err := n.firstFree(bound)
		if err != nil {
			return nil, err
		}
		if err = n.set(bound, slot, a); err != nil {
			return nil, err
		}
	}
	for _, a := range args {
		na, ok := a.(Named)
		if !ok {
			continue
		}
		if err := n.set(bound, na.Name, na.Value); err != nil {
			return nil, err
		}
	}

	if !n.lazy && len(bound) == n.sig.slots() {
		return n.invoke(bound)
	}

	return &Node{
		fn:            n.fn,
		sig:           n.sig,
		bound:         bound,
		lazy:          n.lazy,
		allowOverride: n.allowOverride,
	}, nil
}

// Name returns the display name of the underlying callable.
func (n *Node) Name() string { return n.sig.name }

// Arity returns the total number of declared parameters, receiver included.
func (n *Node) Arity() int { return n.sig.arity() }

// Bound returns a copy of the arguments bound so far.
func (n *Node) Bound() map[string]any { return maps.Clone(n.bound) }

// Free returns the names of the parameters not yet bound, in declaration
// order. The receiver slot of a method value is never listed.
func (n *Node) Free() []string {
	free := make([]string, 0, n.sig.slots()-len(n.bound))
	for _, p := range n.sig.free() {
		if _, ok := n.bound[p]; !ok {
			free = append(free, p)
		}
	}
	return free
}

// firstFree resolves the earliest declared parameter not yet bound.
func (n *Node) firstFree(bound map[string]any) (string, error) {
	for _, p := range n.sig.free() {
		if _, ok := bound[p]; !ok {
			return p, nil
		}
	}
	return "", &ArityError{Fn: n.sig.name, Arity: n.sig.arity()}
}

func (n *Node) set(bound map[string]any, param string, value any) error {
	if _, ok := n.sig.position[param]; !ok {
		// Unknown names and the pre-filled receiver of a method value.
		return &UnknownParameterError{Fn: n.sig.name, Param: param}
	}
	if _, exists := bound[param]; exists && !n.allowOverride {
		return &OverrideError{Fn: n.sig.name, Param: param}
	}
	bound[param] = value
	return nil
}

// invoke calls the underlying callable with the given bindings. Unbound
// parameters fall back to their declared defaults; parameters with neither
// a binding nor a default make the call fail.
func (n *Node) invoke(bound map[string]any) (any, error) {
	t := n.fn.Type()
	in := make([]reflect.Value, n.sig.slots())
	var missing []string
	for _, p := range n.sig.free() {
		val, ok := bound[p]
		if !ok {
			val, ok = n.sig.defaults[p]
		}
		if !ok {
			missing = append(missing, p)
			continue
		}
		pos := n.sig.position[p]
		rv, err := n.argValue(p, val, t.In(pos))
		if err != nil {
			return nil, err
		}
		in[pos] = rv
	}
	if len(missing) > 0 {
		return nil, &MissingArgumentsError{Fn: n.sig.name, Params: missing}
	}
	return shapeResult(t, n.fn.Call(in))
}

// argValue adapts one bound value for the reflective call. reflect.Call
// panics on unassignable values, so assignability is checked here; an
// untyped nil binds the parameter type's zero value.
func (n *Node) argValue(param string, value any, paramType reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(paramType), nil
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(paramType) {
		return reflect.Value{}, errorc.With(
			curryerrors.ErrArgumentTypeMismatch,
			errorc.String(curryerrors.ErrorFieldFunction, n.sig.name),
			errorc.String(curryerrors.ErrorFieldParameter, param),
			errorc.String(curryerrors.ErrorFieldValueType, rv.Type().String()),
			errorc.String(curryerrors.ErrorFieldParameterType, paramType.String()),
		)
	}
	return rv, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// shapeResult turns the callable's return values into a single result. A
// trailing error return is split off as the call's error; the remaining
// values yield nil, the value itself, or a []any slice.
func shapeResult(t reflect.Type, outs []reflect.Value) (any, error) {
	if k := t.NumOut(); k > 0 && t.Out(k-1) == errorType {
		if e := outs[k-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		outs = outs[:k-1]
	}
	switch len(outs) {
	case 0:
		return nil, nil
	case 1:
		return outs[0].Interface(), nil
	}
	vals := make([]any, len(outs))
	for i, o := range outs {
		vals[i] = o.Interface()
	}
	return vals, nil
}
