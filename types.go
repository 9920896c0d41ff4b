package guard

import (
	"fmt"
	"reflect"
)

// AssignableTo raises a [NullArgument] error if typ is nil, and an
// [InvalidArgument] error unless typ denotes T itself or a type assignable to
// T (a type implementing an interface T, or whose underlying type matches).
// The default message names both types with their full package paths.
func AssignableTo[T any](typ reflect.Type, name string) {
	if typ == nil {
		raise(NullArgument, name, msgNotNil)
	}
	want := reflect.TypeFor[T]()
	if typ != want && !typ.AssignableTo(want) {
		raise(InvalidArgument, name, fmt.Sprintf(
			"The type %s or a derived type was expected, but %s was given.",
			fullName(want), fullName(typ)))
	}
}

// InstanceOf checks the dynamic type of a live value the way [AssignableTo]
// checks a type descriptor. A nil value raises a [NullArgument] error.
func InstanceOf[T any](value any, name string) {
	NotNil(value, name)
	AssignableTo[T](reflect.TypeOf(value), name)
}

// fullName qualifies a named type with its package path.
// Unnamed types fall back to their reflect string form.
func fullName(t reflect.Type) string {
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}
