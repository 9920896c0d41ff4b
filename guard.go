package guard

import (
	"iter"
	"reflect"

	"github.com/saylorsolutions/guard/seq"
)

const (
	msgNotNil      = "Null value is not allowed."
	msgNotEmpty    = "The empty string is not allowed."
	msgNotEmptySeq = "The empty sequence is not allowed."
	msgNilElement  = "The sequence contains a null element."
)

// isNil reports whether value is absent: either an untyped nil, or a nil
// value of a kind that can be nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNil raises a [NullArgument] error if value is nil.
// Nil-ness covers untyped nil and nil pointers, maps, slices, channels, functions, and interfaces.
// Values of kinds that can't be nil always pass; wrap a value type in a pointer to express absence.
func NotNil(value any, name string, msg ...string) {
	if isNil(value) {
		raise(NullArgument, name, optional(msg, msgNotNil))
	}
}

// NotEmpty raises an [InvalidArgument] error if value is the empty string.
// Use [NotNilOrEmpty] when absence and emptiness need to be distinguished.
func NotEmpty(value string, name string, msg ...string) {
	if len(value) == 0 {
		raise(InvalidArgument, name, optional(msg, msgNotEmpty))
	}
}

// NotNilOrEmpty raises a [NullArgument] error for a nil pointer, then an
// [InvalidArgument] error for an empty string. The order is fixed: an absent
// string is always reported as absent, never as merely empty.
func NotNilOrEmpty(value *string, name string, msg ...string) {
	NotNil(value, name, msg...)
	NotEmpty(*value, name, msg...)
}

// NotEmptySeq raises a [NullArgument] error for a nil sequence, then an
// [InvalidArgument] error if the sequence yields no elements.
// The sequence is enumerated at most once and at most one element is pulled,
// so single-pass lazy sequences are safe to check. Note that for a strictly
// single-pass sequence the pulled element is consumed.
func NotEmptySeq[T any](values iter.Seq[T], name string, msg ...string) {
	if values == nil {
		raise(NullArgument, name, optional(msg, msgNotNil))
	}
	empty := true
	for range values {
		empty = false
		break
	}
	if empty {
		raise(InvalidArgument, name, optional(msg, msgNotEmptySeq))
	}
}

// NotEmptySlice is [NotEmptySeq] for a slice already in hand.
// A nil slice raises a [NullArgument] error.
func NotEmptySlice[T any](values []T, name string, msg ...string) {
	if values == nil {
		raise(NullArgument, name, optional(msg, msgNotNil))
	}
	if len(values) == 0 {
		raise(InvalidArgument, name, optional(msg, msgNotEmptySeq))
	}
}

// NoNilElements permits a nil sequence. A non-nil sequence must contain no nil
// elements, or an [InvalidArgument] error is raised. The scan is lazy and
// short-circuits at the first nil element, and the sequence is enumerated at
// most once. Element nil-ness follows the same rule as [NotNil].
func NoNilElements[T any](values iter.Seq[T], name string) {
	if values == nil {
		return
	}
	for value := range values {
		if isNil(value) {
			raise(InvalidArgument, name, msgNilElement)
		}
	}
}

// NoNilElementsSlice is [NoNilElements] for a slice already in hand.
func NoNilElementsSlice[T any](values []T, name string) {
	if values == nil {
		return
	}
	NoNilElements(seq.Of(values...), name)
}
