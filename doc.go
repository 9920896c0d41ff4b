/*
Package guard provides guard clauses: stateless checks used at the start of a
function or at a mutation point to reject invalid arguments and object state
before any further work proceeds.

Each check evaluates a condition already in hand and either returns with no
observable effect or panics with a typed [*Error]. The error carries a [Kind]
identifying why the check failed, the blamed parameter name when the check is
parameter-scoped, and a resolved message, so a recovering caller can
distinguish failure causes with [errors.Is] or [errors.As]. Use [Catch] or
[CatchValue] to convert a raised guard error into an ordinary returned error
at an API boundary, or a [Collector] to report several violated preconditions
at once.

Messages for the formatted check variants are rendered with
[golang.org/x/text/message] using the process-wide language tag, which
defaults to English and can be changed with [SetLanguage].

The [EndChecks] marker has no runtime behavior. It delimits the end of a
function's guard block for static tooling such as cmd/guardlint.
*/
package guard
