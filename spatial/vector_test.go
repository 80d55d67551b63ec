package spatial_test

import (
	"fmt"
	"testing"

	"github.com/plus3/alscript/spatial"
	"github.com/stretchr/testify/assert"
)

func TestVector2Arithmetic(t *testing.T) {
	a := spatial.NewVector2(130, 90)
	b := spatial.NewVector2(120, 110)

	assert.Equal(t, spatial.NewVector2(10, -20), a.Sub(b))
	assert.Equal(t, spatial.NewVector2(250, 200), a.Add(b))
	assert.Equal(t, spatial.NewVector2(65, 45), a.Scale(0.5))
	assert.InDelta(t, 5.0, spatial.NewVector2(3, 4).Length(), eps)

	assert.True(t, spatial.Vector2Zero.IsZero())
	assert.False(t, a.IsZero())
}

func TestVector3Arithmetic(t *testing.T) {
	a := spatial.NewVector3(1, 2, 3)
	b := spatial.NewVector3(-2, 0.5, 4)

	assert.Equal(t, spatial.NewVector3(-1, 2.5, 7), a.Add(b))
	assert.Equal(t, spatial.NewVector3(3, 1.5, -1), a.Sub(b))
	assert.Equal(t, spatial.NewVector3(2, 4, 6), a.Scale(2))
	assert.Equal(t, spatial.NewVector3(-1, -2, -3), a.Neg())
	assert.Equal(t, float32(11), a.Dot(b))
}

func TestVector3FieldsAreMutable(t *testing.T) {
	v := spatial.Vector3Zero
	v.Y = 1.65
	v.Z -= 5

	assert.Equal(t, spatial.NewVector3(0, 1.65, -5), v)
	assert.True(t, spatial.Vector3Zero.IsZero(), "shared zero value must not change")
}

func TestVector3Cross(t *testing.T) {
	assertVec(t, axisZ, axisX.Cross(axisY))
	assertVec(t, axisX, axisY.Cross(axisZ))
	assertVec(t, axisZ.Neg(), axisY.Cross(axisX))
}

func TestVector3Normalize(t *testing.T) {
	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, spatial.Vector3Zero, spatial.Vector3Zero.Normalize())
	})

	t.Run("unit length", func(t *testing.T) {
		n := spatial.NewVector3(0, 3, 4).Normalize()
		assertVec(t, spatial.NewVector3(0, 0.6, 0.8), n)
		assert.InDelta(t, 1.0, n.Length(), eps)
	})
}

func ExampleVector3_Add() {
	pos := spatial.NewVector3(1, 0, 2)
	step := spatial.NewVector3(0, 0, -1).Scale(0.5)

	fmt.Printf("%+v\n", pos.Add(step))
	// Output: {X:1 Y:0 Z:1.5}
}
