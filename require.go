package guard

// InRange raises an [OutOfRange] error when ok is false.
// The range test itself is evaluated by the caller; use this family when the
// semantic failure is a value outside acceptable bounds. Without a message the
// raised error carries only the kind and parameter name.
func InRange(ok bool, name string, msg ...string) {
	if !ok {
		raise(OutOfRange, name, optional(msg, ""))
	}
}

// True raises an [InvalidArgument] error carrying exactly message when ok is false.
// There is no default message for this check; callers state the violated condition.
func True(ok bool, name, message string) {
	if !ok {
		raise(InvalidArgument, name, message)
	}
}

// TrueUnnamed is [True] without a blamed parameter, for conditions that span
// several arguments so that no single one can be named.
func TrueUnnamed(ok bool, message string) {
	if !ok {
		raise(InvalidArgument, "", message)
	}
}

// Truef raises an [InvalidArgument] error with format rendered through the
// process printer (see [SetLanguage]) when ok is false.
// Nothing is formatted when the check passes, so format arguments may be
// expensive or only valid on the failing path.
func Truef(ok bool, name, format string, args ...any) {
	if !ok {
		raise(InvalidArgument, name, sprintf(format, args...))
	}
}
