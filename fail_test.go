package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saylorsolutions/guard"
)

func TestFormat(t *testing.T) {
	assert.NoError(t, guard.Catch(func() {
		guard.Format(true, "unused")
	}))

	err := raised(t, func() {
		guard.Format(false, "expected key=value")
	})
	assert.Equal(t, guard.MalformedInput, err.Kind)
	assert.Equal(t, "expected key=value", err.Message)
	assert.ErrorIs(t, err, guard.ErrMalformedInput)
}

func TestSupported(t *testing.T) {
	assert.NoError(t, guard.Catch(func() {
		guard.Supported(true, "unused")
	}))

	err := raised(t, func() {
		guard.Supported(false, "compression is not available in this build")
	})
	assert.Equal(t, guard.Unsupported, err.Kind)
	assert.ErrorIs(t, err, guard.ErrUnsupported)
}

func TestFail(t *testing.T) {
	err := raised(t, func() {
		guard.Fail("x", "boom")
	})
	assert.Equal(t, guard.InvalidArgument, err.Kind)
	assert.Equal(t, "x", err.Name)
	assert.Equal(t, "boom", err.Message)
}

func TestEndChecks(t *testing.T) {
	assert.NotPanics(t, guard.EndChecks)
}
