package errors

import "github.com/ygrebnov/errorc"

const Namespace = "curry"

var namespace = errorc.Namespace(Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrConfiguration        = namespace.NewError("invalid configuration")
	ErrNotCallable          = namespace.NewError("target is not callable")
	ErrVariadic             = namespace.NewError("variadic target")
	ErrArityExceeded        = namespace.NewError("too many positional arguments")
	ErrUnknownParameter     = namespace.NewError("unknown parameter")
	ErrOverrideNotAllowed   = namespace.NewError("override not allowed")
	ErrMissingArguments     = namespace.NewError("missing required arguments")
	ErrArgumentTypeMismatch = namespace.NewError("argument type mismatch")
)

var newKey = errorc.KeyFactory(Namespace)

// Structured error field keys. Keep string values stable for log queries.
var (
	ErrorFieldFunction      = newKey("function")       // curry.function
	ErrorFieldParameter     = newKey("parameter")      // curry.parameter
	ErrorFieldParameterType = newKey("parameter_type") // curry.parameter_type
	ErrorFieldValueType     = newKey("value_type")     // curry.value_type
	ErrorFieldDeclared      = newKey("declared")       // curry.declared
	ErrorFieldActual        = newKey("actual")         // curry.actual
	ErrorFieldReason        = newKey("reason")         // curry.reason
)
