package curry

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"

	curryerrors "github.com/dpiegdon/curry/internal/errors"
)

// Signature declares the parameter model of a callable. Go reflection
// exposes a function's arity but not its parameter names, so the caller
// declares them explicitly; Specialize validates the declaration against
// the callable's reflected type.
type Signature struct {
	// Name is the display name used in error messages. When empty, the
	// name is recovered from the function's runtime symbol.
	Name string

	// Params lists the parameter names in declaration order.
	Params []string

	// Defaults maps a trailing suffix of Params to their default values.
	Defaults map[string]any

	// Receiver marks Params[0] as the receiver of a method value. Go has
	// already bound the receiver in that case: the slot is skipped by
	// positional resolution, cannot be bound by name, and does not count
	// toward completion. A method expression, whose receiver is an
	// ordinary first parameter, is declared with Receiver unset.
	Receiver bool
}

// signature is the validated, immutable form shared by every node derived
// from one Specialize call.
type signature struct {
	name     string
	params   []string
	defaults map[string]any
	receiver bool

	// position indexes the free (non-receiver) parameter names by their
	// argument position in the underlying callable.
	position map[string]int
}

func newSignature(fn reflect.Value, decl Signature) (*signature, error) {
	name := decl.Name
	if name == "" {
		name = funcName(fn)
	}

	t := fn.Type()
	if t.IsVariadic() {
		return nil, &VariadicError{Fn: name}
	}

	if decl.Receiver && len(decl.Params) == 0 {
		return nil, configError("receiver declared without parameters", name)
	}
	want := len(decl.Params)
	if decl.Receiver {
		want--
	}
	if t.NumIn() != want {
		return nil, errorc.With(
			curryerrors.ErrConfiguration,
			errorc.String(curryerrors.ErrorFieldFunction, name),
			errorc.String(curryerrors.ErrorFieldReason, "parameter count does not match the callable"),
			errorc.String(curryerrors.ErrorFieldDeclared, strconv.Itoa(want)),
			errorc.String(curryerrors.ErrorFieldActual, strconv.Itoa(t.NumIn())),
		)
	}

	s := &signature{
		name:     name,
		params:   make([]string, len(decl.Params)),
		defaults: make(map[string]any, len(decl.Defaults)),
		receiver: decl.Receiver,
		position: make(map[string]int, want),
	}
	copy(s.params, decl.Params)

	seen := make(map[string]struct{}, len(s.params))
	for i, p := range s.params {
		if p == "" {
			return nil, configError("empty parameter name", name)
		}
		if _, dup := seen[p]; dup {
			return nil, errorc.With(
				curryerrors.ErrConfiguration,
				errorc.String(curryerrors.ErrorFieldFunction, name),
				errorc.String(curryerrors.ErrorFieldReason, "duplicate parameter name"),
				errorc.String(curryerrors.ErrorFieldParameter, p),
			)
		}
		seen[p] = struct{}{}
		if decl.Receiver && i == 0 {
			continue
		}
		if decl.Receiver {
			s.position[p] = i - 1
		} else {
			s.position[p] = i
		}
	}

	// Defaults must cover exactly a trailing suffix of the parameter list,
	// and never the receiver.
	first := len(s.params) - len(decl.Defaults)
	for p, val := range decl.Defaults {
		if _, ok := seen[p]; !ok {
			return nil, errorc.With(
				curryerrors.ErrConfiguration,
				errorc.String(curryerrors.ErrorFieldFunction, name),
				errorc.String(curryerrors.ErrorFieldReason, "default for undeclared parameter"),
				errorc.String(curryerrors.ErrorFieldParameter, p),
			)
		}
		if s.isReceiver(p) || s.position[p]+receiverShift(decl.Receiver) < first {
			return nil, errorc.With(
				curryerrors.ErrConfiguration,
				errorc.String(curryerrors.ErrorFieldFunction, name),
				errorc.String(curryerrors.ErrorFieldReason, "defaults must cover a trailing suffix of the parameters"),
				errorc.String(curryerrors.ErrorFieldParameter, p),
			)
		}
		s.defaults[p] = val
	}

	return s, nil
}

func configError(reason, fn string) error {
	return errorc.With(
		curryerrors.ErrConfiguration,
		errorc.String(curryerrors.ErrorFieldFunction, fn),
		errorc.String(curryerrors.ErrorFieldReason, reason),
	)
}

func receiverShift(receiver bool) int {
	if receiver {
		return 1
	}
	return 0
}

// arity is the total declared parameter count, receiver included. Error
// messages report this number.
func (s *signature) arity() int { return len(s.params) }

// slots is the number of parameters that can actually be bound.
func (s *signature) slots() int { return len(s.position) }

// free lists the bindable parameter names in declaration order.
func (s *signature) free() []string {
	if s.receiver {
		return s.params[1:]
	}
	return s.params
}

func (s *signature) isReceiver(p string) bool {
	return s.receiver && p == s.params[0]
}

// funcName recovers a display name for fn from its runtime symbol, trimming
// the package path and the suffix attached to method values.
func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "func"
	}
	return name
}
