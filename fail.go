package guard

// Format raises a [MalformedInput] error carrying message when ok is false.
// Use it after parsing structured input that did not match its expected shape.
func Format(ok bool, message string) {
	if !ok {
		raise(MalformedInput, "", message)
	}
}

// Supported raises an [Unsupported] error carrying message when ok is false.
// Use it to reject operations unavailable in the current configuration or build.
func Supported(ok bool, message string) {
	if !ok {
		raise(Unsupported, "", message)
	}
}

// Fail unconditionally raises an [InvalidArgument] error.
// Place it at the head of a branch that earlier validation should have made
// unreachable.
func Fail(name, message string) {
	raise(InvalidArgument, name, message)
}

// EndChecks marks the end of a function's guard block.
// It does nothing at runtime; tools like cmd/guardlint treat everything before
// the marker as the function's precondition block.
func EndChecks() {}
