package spatial_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/plus3/alscript/spatial"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

var (
	axisX = spatial.NewVector3(1, 0, 0)
	axisY = spatial.NewVector3(0, 1, 0)
	axisZ = spatial.NewVector3(0, 0, 1)
)

func assertQuat(t *testing.T, want, got spatial.Quaternion) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, eps), "want %+v, got %+v", want, got)
}

func assertVec(t *testing.T, want, got spatial.Vector3) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, eps), "want %+v, got %+v", want, got)
}

func TestInverseIsInvolution(t *testing.T) {
	samples := []spatial.Quaternion{
		spatial.Identity,
		spatial.FromAxisAngle(axisY, 1.2),
		spatial.FromAxisAngle(spatial.NewVector3(1, 1, 0).Normalize(), -0.4),
		spatial.FromEulerAngles(spatial.NewVector3(0.3, -1.1, 0.7)),
	}

	for i, q := range samples {
		t.Run(fmt.Sprintf("sample=%d", i), func(t *testing.T) {
			assertQuat(t, q, q.Inverse().Inverse())
		})
	}
}

func TestInverseCancelsRotation(t *testing.T) {
	q := spatial.FromAxisAngle(spatial.NewVector3(0, 1, 1).Normalize(), 0.9)
	assertQuat(t, spatial.Identity, q.Mul(q.Inverse()))

	v := spatial.NewVector3(3, -2, 5)
	assertVec(t, v, q.Inverse().Rotate(q.Rotate(v)))
}

func TestMulIsAssociative(t *testing.T) {
	q1 := spatial.FromAxisAngle(axisX, 0.5)
	q2 := spatial.FromAxisAngle(axisY, -1.3)
	q3 := spatial.FromEulerAngles(spatial.NewVector3(0.2, 0.4, 0.6))

	assertQuat(t, q1.Mul(q2).Mul(q3), q1.Mul(q2.Mul(q3)))
}

func TestMulIsNotCommutative(t *testing.T) {
	q1 := spatial.FromAxisAngle(axisX, math.Pi/2)
	q2 := spatial.FromAxisAngle(axisY, math.Pi/2)

	assertQuat(t, spatial.NewQuaternion(0.5, 0.5, 0.5, 0.5), q1.Mul(q2))
	assertQuat(t, spatial.NewQuaternion(0.5, 0.5, -0.5, 0.5), q2.Mul(q1))
	assert.False(t, q1.Mul(q2).ApproxEqual(q2.Mul(q1), eps))
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	yaw := spatial.FromAxisAngle(axisY, math.Pi/2)
	pitch := spatial.FromAxisAngle(axisX, math.Pi/2)
	v := spatial.NewVector3(0, 0, -1)

	assertVec(t, yaw.Rotate(pitch.Rotate(v)), yaw.Mul(pitch).Rotate(v))
}

func TestIdentityRotate(t *testing.T) {
	for _, v := range []spatial.Vector3{
		spatial.Vector3Zero,
		spatial.NewVector3(1, 2, 3),
		spatial.NewVector3(-4.5, 0, 7.25),
	} {
		assertVec(t, v, spatial.Identity.Rotate(v))
		assertVec(t, v, v.Transform(spatial.Identity))
	}
}

func TestFromAxisAngle(t *testing.T) {
	t.Run("zero angle is identity", func(t *testing.T) {
		for _, axis := range []spatial.Vector3{axisX, axisY, axisZ, spatial.NewVector3(0, -1, 0)} {
			assert.Equal(t, spatial.Identity, spatial.FromAxisAngle(axis, 0))
		}
	})

	t.Run("quarter turn about Y", func(t *testing.T) {
		q := spatial.FromAxisAngle(axisY, math.Pi/2)
		assertVec(t, spatial.NewVector3(0, 0, -1), q.Rotate(axisX))
		assertVec(t, spatial.NewVector3(-1, 0, 0), q.Rotate(spatial.NewVector3(0, 0, -1)))
	})

	t.Run("axis is not normalized", func(t *testing.T) {
		q := spatial.FromAxisAngle(spatial.NewVector3(2, 0, 0), math.Pi)
		assert.InDelta(t, 2.0, q.X, eps)
		assert.InDelta(t, 0.0, q.W, eps)
	})
}

func TestFromEulerAngles(t *testing.T) {
	t.Run("zero is identity", func(t *testing.T) {
		assertQuat(t, spatial.Identity, spatial.FromEulerAngles(spatial.Vector3Zero))
	})

	t.Run("single components", func(t *testing.T) {
		const a = 0.8
		assertQuat(t, spatial.FromAxisAngle(axisY, a), spatial.FromEulerAngles(spatial.NewVector3(a, 0, 0)))
		assertQuat(t, spatial.FromAxisAngle(axisX, a), spatial.FromEulerAngles(spatial.NewVector3(0, a, 0)))
		assertQuat(t, spatial.FromAxisAngle(axisZ, a), spatial.FromEulerAngles(spatial.NewVector3(0, 0, a)))
	})

	t.Run("composition", func(t *testing.T) {
		pitch, yaw, roll := float32(0.3), float32(-1.1), float32(0.7)
		want := spatial.FromAxisAngle(axisZ, roll).
			Mul(spatial.FromAxisAngle(axisY, pitch)).
			Mul(spatial.FromAxisAngle(axisX, yaw))
		got := spatial.FromEulerAngles(spatial.NewVector3(pitch, yaw, roll))

		assertQuat(t, want, got)
		assertQuat(t, spatial.NewQuaternion(-0.5291698, -0.0575400, 0.3624201, 0.7650622), got)
	})

	t.Run("unit length", func(t *testing.T) {
		q := spatial.FromEulerAngles(spatial.NewVector3(2.1, -0.3, 1.4))
		assert.InDelta(t, 1.0, q.Length(), eps)
	})
}

func TestQuaternionNormalize(t *testing.T) {
	assert.Equal(t, spatial.Identity, spatial.Quaternion{}.Normalize())

	q := spatial.NewQuaternion(0, 0, 3, 4).Normalize()
	assertQuat(t, spatial.NewQuaternion(0, 0, 0.6, 0.8), q)
}

func ExampleQuaternion_Rotate() {
	yaw := spatial.FromAxisAngle(spatial.NewVector3(0, 1, 0), math.Pi)
	forward := yaw.Rotate(spatial.NewVector3(0, 0, -1))

	fmt.Println(forward.ApproxEqual(spatial.NewVector3(0, 0, 1), 1e-6))
	// Output: true
}
