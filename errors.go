package curry

import (
	"strconv"
	"strings"

	curryerrors "github.com/dpiegdon/curry/internal/errors"
)

// Sentinel errors for the failure kinds this package detects. Every typed
// error below unwraps to one of these, so callers can match with errors.Is
// without depending on message text.
var (
	ErrConfiguration        = curryerrors.ErrConfiguration
	ErrNotCallable          = curryerrors.ErrNotCallable
	ErrVariadic             = curryerrors.ErrVariadic
	ErrArityExceeded        = curryerrors.ErrArityExceeded
	ErrUnknownParameter     = curryerrors.ErrUnknownParameter
	ErrOverrideNotAllowed   = curryerrors.ErrOverrideNotAllowed
	ErrMissingArguments     = curryerrors.ErrMissingArguments
	ErrArgumentTypeMismatch = curryerrors.ErrArgumentTypeMismatch
)

// NotCallableError reports that the specialization target is not a function
// or method value.
type NotCallableError struct{}

func (e *NotCallableError) Error() string {
	return "First argument must be a function or a bound method."
}

func (e *NotCallableError) Unwrap() error { return ErrNotCallable }

// VariadicError reports an attempt to curry a variadic callable. The number
// of parameters of such a callable is not fixed, so currying it is ambiguous.
type VariadicError struct {
	// Fn is the display name of the callable.
	Fn string
}

func (e *VariadicError) Error() string {
	return "Currying variadic function " + e.Fn + "() is ambiguous."
}

func (e *VariadicError) Unwrap() error { return ErrVariadic }

// ArityError reports a positional value supplied with no free slot remaining.
type ArityError struct {
	Fn string

	// Arity is the total number of declared parameters, receiver included.
	Arity int
}

func (e *ArityError) Error() string {
	return e.Fn + "() takes " + strconv.Itoa(e.Arity) + " positional arguments but more were given"
}

func (e *ArityError) Unwrap() error { return ErrArityExceeded }

// UnknownParameterError reports a named value whose name is not a free
// parameter of the callable.
type UnknownParameterError struct {
	Fn    string
	Param string
}

func (e *UnknownParameterError) Error() string {
	return e.Fn + "() got an unexpected keyword argument '" + e.Param + "'"
}

func (e *UnknownParameterError) Unwrap() error { return ErrUnknownParameter }

// OverrideError reports a rebinding of an already-bound parameter while
// overriding is disabled.
type OverrideError struct {
	Fn    string
	Param string
}

func (e *OverrideError) Error() string {
	return "Curried function " + e.Fn + "() does not allow overriding given parameter '" + e.Param + "'."
}

func (e *OverrideError) Unwrap() error { return ErrOverrideNotAllowed }

// MissingArgumentsError reports a forced call whose bindings, together with
// the declared defaults, do not cover every parameter.
type MissingArgumentsError struct {
	Fn string

	// Params holds the uncovered parameter names in declaration order.
	Params []string
}

func (e *MissingArgumentsError) Error() string {
	var b strings.Builder
	b.WriteString(e.Fn)
	b.WriteString("() missing ")
	b.WriteString(strconv.Itoa(len(e.Params)))
	if len(e.Params) == 1 {
		b.WriteString(" required positional argument: ")
	} else {
		b.WriteString(" required positional arguments: ")
	}
	for i, p := range e.Params {
		switch {
		case i == 0:
		case len(e.Params) == 2:
			b.WriteString(" and ")
		case i == len(e.Params)-1:
			b.WriteString(", and ")
		default:
			b.WriteString(", ")
		}
		b.WriteString("'" + p + "'")
	}
	return b.String()
}

func (e *MissingArgumentsError) Unwrap() error { return ErrMissingArguments }
