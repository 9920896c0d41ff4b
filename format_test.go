package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/saylorsolutions/guard"
)

func TestSetLanguage(t *testing.T) {
	guard.SetLanguage(language.German)
	t.Cleanup(func() {
		guard.SetLanguage(language.English)
	})

	err := raised(t, func() {
		guard.Truef(false, "x", "limit is %.2f", 3.5)
	})
	assert.Equal(t, "limit is 3,50", err.Message, "German renders a decimal comma")

	guard.SetLanguage(language.English)
	err = raised(t, func() {
		guard.Truef(false, "x", "limit is %.2f", 3.5)
	})
	assert.Equal(t, "limit is 3.50", err.Message)
}

func TestFormattedMessagesGroupDigits(t *testing.T) {
	err := raised(t, func() {
		guard.Truef(false, "x", "max is %d", 1000000)
	})
	assert.Equal(t, "max is 1,000,000", err.Message, "the default English tag groups digits")
}
