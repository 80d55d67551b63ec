package spatial

import "math"

// Quaternion is a rotation quaternion with vector part (X, Y, Z) and scalar W.
//
// Every rotation operation assumes a unit quaternion. Nothing here normalizes
// implicitly; callers that accumulate rotations must call Normalize themselves.
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quaternion{0, 0, 0, 1}

// NewQuaternion creates a Quaternion from its components.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// FromAxisAngle builds a rotation of angle radians around axis.
// The axis must already be normalized.
func FromAxisAngle(axis Vector3, angle float32) Quaternion {
	half := angle * 0.5
	s := sin32(half)
	c := cos32(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// FromEulerAngles converts Euler angles in radians (pitch = X, yaw = Y,
// roll = Z) to a quaternion.
//
// The component layout is fixed and scripts depend on it: the result equals
// FromAxisAngle(Z, roll) * FromAxisAngle(Y, pitch) * FromAxisAngle(X, yaw).
func FromEulerAngles(euler Vector3) Quaternion {
	halfPitch := euler.X * 0.5
	halfYaw := euler.Y * 0.5
	halfRoll := euler.Z * 0.5

	sp, cp := sin32(halfPitch), cos32(halfPitch)
	sy, cy := sin32(halfYaw), cos32(halfYaw)
	sr, cr := sin32(halfRoll), cos32(halfRoll)

	return Quaternion{
		W: cy*cp*cr + sy*sp*sr,
		X: sy*cp*cr - cy*sp*sr,
		Y: cy*sp*cr + sy*cp*sr,
		Z: cy*cp*sr - sy*sp*cr,
	}
}

// Mul returns the Hamilton product q * o: the rotation that applies o first
// and q second.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Inverse returns the conjugate of q, which is its inverse only when q is a
// unit quaternion.
func (q Quaternion) Inverse() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate applies q to v through the sandwich product q * (v, 0) * q⁻¹.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	qv := Quaternion{v.X, v.Y, v.Z, 0}
	r := q.Mul(qv).Mul(q.Inverse())
	return Vector3{r.X, r.Y, r.Z}
}

// Dot is the four-component dot product. For unit quaternions it is the
// cosine of half the angle between the two rotations.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Length returns the magnitude of q.
func (q Quaternion) Length() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// Normalize returns q scaled to unit length. The zero quaternion maps to
// Identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return Identity
	}
	inv := 1 / l
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// ApproxEqual reports whether every component of q and o differs by at most
// eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float32) bool {
	return near(q.X, o.X, eps) && near(q.Y, o.Y, eps) &&
		near(q.Z, o.Z, eps) && near(q.W, o.W, eps)
}

// ApproxEqual reports whether every component of v and o differs by at most
// eps.
func (v Vector3) ApproxEqual(o Vector3, eps float32) bool {
	return near(v.X, o.X, eps) && near(v.Y, o.Y, eps) && near(v.Z, o.Z, eps)
}

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }
