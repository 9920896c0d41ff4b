package guard

import "strings"

// Catch runs fn and converts a raised guard [*Error] into an ordinary
// returned error. Panics that did not originate from a guard check are
// re-raised untouched. This is the bridge for API boundaries that propagate
// errors by return value rather than by panic.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			guardErr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = guardErr
		}
	}()
	fn()
	return nil
}

// CatchValue is [Catch] for work that produces a value.
// The returned value is the zero value when a guard error was raised before
// fn completed.
func CatchValue[T any](fn func() T) (val T, err error) {
	err = Catch(func() {
		val = fn()
	})
	return val, err
}

// Collector gathers errors from several guard checks so that every violated
// precondition can be reported at once instead of only the first.
//
// A Collector is itself an error, so it can be returned directly and compared
// with [errors.Is] or [errors.As]. Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new [Collector], optionally with a join string that differs from the default of "\n".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Check runs fn under [Catch] and records the guard error it raises, if any.
func (c *Collector) Check(fn func()) *Collector {
	return c.Add(Catch(fn))
}

// Add adds a new, potentially nil error to the Collector.
// Nil errors will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// Result will return nil if no errors have been collected.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Collector is still returning a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
