package guard

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	printer.Store(message.NewPrinter(language.English))
}

// SetLanguage changes the language tag used to render messages for the
// formatted check variants. Numbers and other locale-sensitive verbs follow
// the tag, so callers parsing messages mechanically should leave the default
// in place. This is concurrency safe, but it is a process-wide setting and
// affects every goroutine using formatted checks.
func SetLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag))
}

func sprintf(format string, args ...any) string {
	return printer.Load().Sprintf(format, args...)
}
