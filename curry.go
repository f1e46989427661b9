package curry

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	curryerrors "github.com/dpiegdon/curry/internal/errors"
)

// Specializer converts callables into curried wrappers. It is closed over
// the three behavior flags, holds no other state, and is safe to reuse
// across callables and goroutines.
type Specializer struct {
	lazy          bool
	allowOverride bool
	useDefaults   bool
}

// Option configures a Specializer at construction time.
type Option func(*Specializer)

// WithEager makes the call that binds the last free parameter invoke the
// underlying callable and return its result directly, instead of requiring
// an explicit empty forcing call.
func WithEager() Option {
	return func(s *Specializer) { s.lazy = false }
}

// WithOverride allows named values to rebind already-bound parameters; the
// later value wins. If not specified, rebinding is an error.
func WithOverride() Option {
	return func(s *Specializer) { s.allowOverride = true }
}

// WithDefaults seeds the initial bindings from the Signature's default
// values at specialization time, so only the remaining parameters need to
// be supplied. If not specified, defaults still apply at forcing time for
// parameters that were never bound.
func WithDefaults() Option {
	return func(s *Specializer) { s.useDefaults = true }
}

// New returns a Specializer closed over the behavior flags. Without
// options, evaluation is lazy, rebinding is an error, and initial bindings
// are empty.
func New(opts ...Option) (*Specializer, error) {
	s := &Specializer{lazy: true}
	for _, opt := range opts {
		if opt == nil {
			return nil, errorc.With(
				curryerrors.ErrConfiguration,
				errorc.String(curryerrors.ErrorFieldReason, "nil option"),
			)
		}
		opt(s)
	}
	return s, nil
}

// Specialize wraps fn into the root Node of a curried call chain. The
// declaration is validated against fn's reflected type: fn must be a
// non-variadic func value whose arity matches the declared parameter list
// (minus the receiver slot for method values).
func (s *Specializer) Specialize(fn any, decl Signature) (*Node, error) {
	v := reflect.ValueOf(fn)
	if fn == nil || v.Kind() != reflect.Func || v.IsNil() {
		return nil, &NotCallableError{}
	}

	sig, err := newSignature(v, decl)
	if err != nil {
		return nil, err
	}

	bound := make(map[string]any, sig.slots())
	if s.useDefaults {
		for p, val := range sig.defaults {
			bound[p] = val
		}
	}

	return &Node{
		fn:            v,
		sig:           sig,
		bound:         bound,
		lazy:          s.lazy,
		allowOverride: s.allowOverride,
	}, nil
}
