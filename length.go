package guard

import "fmt"

// Each length check rejects a nil pointer with a [NullArgument] error before
// comparing the string's length to the bound, so an absent string is never
// reported as a length violation.

// LengthAtMost raises an [InvalidArgument] error if the string is longer than bound.
func LengthAtMost(value *string, bound int, name string, msg ...string) {
	NotNil(value, name)
	if len(*value) > bound {
		raise(InvalidArgument, name, optional(msg, fmt.Sprintf("The string length should be less than or equal to %d.", bound)))
	}
}

// LengthLessThan raises an [InvalidArgument] error unless the string is shorter than bound.
func LengthLessThan(value *string, bound int, name string, msg ...string) {
	NotNil(value, name)
	if len(*value) >= bound {
		raise(InvalidArgument, name, optional(msg, fmt.Sprintf("The string length should be less than %d.", bound)))
	}
}

// LengthAtLeast raises an [InvalidArgument] error if the string is shorter than bound.
func LengthAtLeast(value *string, bound int, name string, msg ...string) {
	NotNil(value, name)
	if len(*value) < bound {
		raise(InvalidArgument, name, optional(msg, fmt.Sprintf("The string length should be greater than or equal to %d.", bound)))
	}
}

// LengthGreaterThan raises an [InvalidArgument] error unless the string is longer than bound.
func LengthGreaterThan(value *string, bound int, name string, msg ...string) {
	NotNil(value, name)
	if len(*value) <= bound {
		raise(InvalidArgument, name, optional(msg, fmt.Sprintf("The string length should be greater than %d.", bound)))
	}
}
