package math

import "github.com/chewxy/math32"

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation. Expected to be unit length.
 * @param angle The angle of rotation in radians.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	s, c := math32.Sincos(0.5 * angle)
	return Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
}

// NewQuatLookAt builds the orientation whose -Z axis points along direction,
// keeping up as close to the object's +Y as possible. direction must be
// normalized and not parallel to up.
func NewQuatLookAt(direction, up Vec3) Quaternion {
	c2 := direction.Negate()
	right := up.Cross(c2)
	c0 := right.MulScalar(1 / math32.Sqrt(math32.Max(0.00001, right.Dot(right))))
	c1 := c2.Cross(c0)
	return quatFromBasis(c0, c1, c2)
}

// quatFromBasis converts the rotation matrix with columns c0, c1, c2 to a quaternion.
func quatFromBasis(c0, c1, c2 Vec3) Quaternion {
	fourXSquaredMinus1 := c0.X - c1.Y - c2.Z
	fourYSquaredMinus1 := c1.Y - c0.X - c2.Z
	fourZSquaredMinus1 := c2.Z - c0.X - c1.Y
	fourWSquaredMinus1 := c0.X + c1.Y + c2.Z

	biggestIndex := 0
	fourBiggestSquaredMinus1 := fourWSquaredMinus1
	if fourXSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourXSquaredMinus1
		biggestIndex = 1
	}
	if fourYSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourYSquaredMinus1
		biggestIndex = 2
	}
	if fourZSquaredMinus1 > fourBiggestSquaredMinus1 {
		fourBiggestSquaredMinus1 = fourZSquaredMinus1
		biggestIndex = 3
	}

	biggestVal := math32.Sqrt(fourBiggestSquaredMinus1+1) * 0.5
	mult := 0.25 / biggestVal

	switch biggestIndex {
	case 0:
		return Quaternion{(c1.Z - c2.Y) * mult, (c2.X - c0.Z) * mult, (c0.Y - c1.X) * mult, biggestVal}
	case 1:
		return Quaternion{biggestVal, (c0.Y + c1.X) * mult, (c2.X + c0.Z) * mult, (c1.Z - c2.Y) * mult}
	case 2:
		return Quaternion{(c0.Y + c1.X) * mult, biggestVal, (c1.Z + c2.Y) * mult, (c2.X - c0.Z) * mult}
	default:
		return Quaternion{(c2.X + c0.Z) * mult, (c1.Z + c2.Y) * mult, biggestVal, (c0.Y - c1.X) * mult}
	}
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{q.X / normal, q.Y / normal, q.Z / normal, q.W / normal}
}

/**
 * @brief Multiplies the provided quaternions.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X,
		Y: -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y,
		Z: q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z,
		W: -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W,
	}
}

// Rotate applies the rotation q to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.MulScalar(2 * q.W)).Add(uuv.MulScalar(2))
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	out := NewMat4Identity()
	n := q.Normalize()

	out.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out.Data[1] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out.Data[2] = 2.0*n.X*n.Z - 2.0*n.Y*n.W

	out.Data[4] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out.Data[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out.Data[6] = 2.0*n.Y*n.Z + 2.0*n.X*n.W

	out.Data[8] = 2.0*n.X*n.Z + 2.0*n.Y*n.W
	out.Data[9] = 2.0*n.Y*n.Z - 2.0*n.X*n.W
	out.Data[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out
}
