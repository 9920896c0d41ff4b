package guard_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saylorsolutions/guard"
)

type shape interface {
	area() float64
}

type circle struct {
	radius float64
}

func (c circle) area() float64 {
	return 3.14159 * c.radius * c.radius
}

type brick struct{}

func TestAssignableTo(t *testing.T) {
	assert.NoError(t, guard.Catch(func() {
		guard.AssignableTo[shape](reflect.TypeFor[circle](), "t")
		guard.AssignableTo[shape](reflect.TypeFor[shape](), "t")
		guard.AssignableTo[circle](reflect.TypeFor[circle](), "t")
	}))

	err := raised(t, func() {
		guard.AssignableTo[shape](reflect.TypeFor[brick](), "t")
	})
	assert.Equal(t, guard.InvalidArgument, err.Kind)
	assert.Equal(t, "t", err.Name)
	assert.Contains(t, err.Message, "shape")
	assert.Contains(t, err.Message, "brick")
	assert.Contains(t, err.Message, "or a derived type was expected")
}

func TestAssignableTo_NilType(t *testing.T) {
	err := raised(t, func() {
		guard.AssignableTo[shape](nil, "t")
	})
	assert.Equal(t, guard.NullArgument, err.Kind)
}

func TestAssignableTo_FullNames(t *testing.T) {
	err := raised(t, func() {
		guard.AssignableTo[shape](reflect.TypeFor[brick](), "t")
	})
	// Both type names carry their package paths.
	pkg := reflect.TypeFor[brick]().PkgPath()
	assert.Contains(t, err.Message, pkg+".shape")
	assert.Contains(t, err.Message, pkg+".brick")
}

func TestInstanceOf(t *testing.T) {
	assert.NoError(t, guard.Catch(func() {
		guard.InstanceOf[shape](circle{radius: 1}, "s")
	}))

	err := raised(t, func() {
		guard.InstanceOf[shape](brick{}, "s")
	})
	assert.Equal(t, guard.InvalidArgument, err.Kind)

	err = raised(t, func() {
		guard.InstanceOf[shape](nil, "s")
	})
	assert.Equal(t, guard.NullArgument, err.Kind)
}
