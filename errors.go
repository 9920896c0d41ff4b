package guard

import "strings"

// Kind categorizes why a check failed, independent of the message text.
type Kind int

const (
	// NullArgument signals that a required reference value is absent.
	NullArgument Kind = iota + 1
	// InvalidArgument signals an argument that violates a stated condition.
	InvalidArgument
	// OutOfRange signals a value outside an acceptable range.
	OutOfRange
	// InvalidState signals that the object's state does not permit the operation.
	InvalidState
	// MalformedInput signals structured input that does not conform to its expected format.
	MalformedInput
	// Unsupported signals an operation that is not supported in the current configuration.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case NullArgument:
		return "null argument"
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	case InvalidState:
		return "invalid state"
	case MalformedInput:
		return "malformed input"
	case Unsupported:
		return "unsupported operation"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per [Kind], for use with [errors.Is] on a recovered guard error.
var (
	ErrNullArgument    = &Error{Kind: NullArgument}
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrOutOfRange      = &Error{Kind: OutOfRange}
	ErrInvalidState    = &Error{Kind: InvalidState}
	ErrMalformedInput  = &Error{Kind: MalformedInput}
	ErrUnsupported     = &Error{Kind: Unsupported}
)

// Error is the value raised by every failing check.
// Name is empty when the check is not scoped to a single parameter, and
// Message is empty when the check variant attaches none.
type Error struct {
	Kind    Kind
	Name    string
	Message string
}

func (e *Error) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Kind.String())
	if e.Name != "" {
		buf.WriteString(` "`)
		buf.WriteString(e.Name)
		buf.WriteString(`"`)
	}
	if e.Message != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Message)
	}
	return buf.String()
}

// Is reports whether target is a guard [*Error] of the same [Kind].
// This makes every raised error match its kind's sentinel.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

func raise(kind Kind, name, message string) {
	panic(&Error{Kind: kind, Name: name, Message: message})
}

// optional resolves the trailing variadic message of a check, falling back to
// the check's default. Extra values beyond the first are ignored.
func optional(msg []string, fallback string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return fallback
}
