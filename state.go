package guard

// The State family mirrors [True] and friends but signals that the object's
// internal state does not permit the operation, rather than blaming an
// argument. State errors never carry a parameter name.

// State raises an [InvalidState] error when ok is false.
// The error carries no message at all; use [StateMsg] or [Statef] to attach one.
func State(ok bool) {
	if !ok {
		raise(InvalidState, "", "")
	}
}

// StateMsg raises an [InvalidState] error carrying exactly message when ok is false.
func StateMsg(ok bool, message string) {
	if !ok {
		raise(InvalidState, "", message)
	}
}

// Statef raises an [InvalidState] error with format rendered through the
// process printer (see [SetLanguage]) when ok is false.
// Nothing is formatted when the check passes.
func Statef(ok bool, format string, args ...any) {
	if !ok {
		raise(InvalidState, "", sprintf(format, args...))
	}
}
