package geometry

import (
	"fmt"
	"math"
)

// angleEpsilonDeg is the threshold below which an extracted rotation angle is
// reported as exactly zero. Re-extracting an angle with atan2 after composing
// its inverse leaves residuals around 1e-11 degrees; anything under this
// bound is display noise, not rotation.
const angleEpsilonDeg = 1e-4

// AffineTransform represents a 2x3 affine transformation matrix.
//
//	[A B TX]
//	[C D TY]
//
// mapping (x, y) to (A*x + B*y + TX, C*x + D*y + TY). The zero value is the
// degenerate all-zero matrix; use Identity for a neutral transform. All
// methods are pure: they return a new transform and never mutate the
// receiver, so a transform can be shared freely between readers.
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a translation transform.
func Translation(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a rotation transform around the origin.
func Rotation(radians float64) AffineTransform {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return AffineTransform{A: cos, B: -sin, C: sin, D: cos}
}

// RotationDeg returns a rotation transform around the origin, in degrees.
func RotationDeg(degrees float64) AffineTransform {
	return Rotation(degrees * math.Pi / 180)
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// ApplyXY applies the transform to raw coordinates.
func (t AffineTransform) ApplyXY(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.TX, t.C*x + t.D*y + t.TY
}

// Compose returns this transform composed with another (this * other), i.e.
// the transform that applies other first and this one second.
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Translate returns the transform with a translation composed onto it, so
// the translation happens in the transform's source coordinate space.
func (t AffineTransform) Translate(dx, dy float64) AffineTransform {
	return t.Compose(Translation(dx, dy))
}

// ScaleAbout returns the transform with a uniform scale about a pivot point
// (in source coordinates) composed onto it. The pivot maps to the same
// target point before and after.
func (t AffineTransform) ScaleAbout(factor float64, pivot Point2D) AffineTransform {
	return t.Compose(Translation(pivot.X, pivot.Y)).
		Compose(Scale(factor, factor)).
		Compose(Translation(-pivot.X, -pivot.Y))
}

// RotateAbout returns the transform with a rotation (degrees) about a pivot
// point (in source coordinates) composed onto it.
func (t AffineTransform) RotateAbout(degrees float64, pivot Point2D) AffineTransform {
	return t.Compose(Translation(pivot.X, pivot.Y)).
		Compose(RotationDeg(degrees)).
		Compose(Translation(-pivot.X, -pivot.Y))
}

// Determinant returns the determinant of the linear part.
func (t AffineTransform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	det := t.Determinant()
	if math.Abs(det) < 1e-12 {
		return AffineTransform{}, false
	}

	invDet := 1.0 / det
	return AffineTransform{
		A:  t.D * invDet,
		B:  -t.B * invDet,
		TX: (t.B*t.TY - t.D*t.TX) * invDet,
		C:  -t.C * invDet,
		D:  t.A * invDet,
		TY: (t.C*t.TX - t.A*t.TY) * invDet,
	}, true
}

// ScaleFactor returns the uniform scale encoded in the transform, measured
// as the length of the transformed unit x vector. For the rotate/scale
// compositions produced by the viewport this is the zoom level.
func (t AffineTransform) ScaleFactor() float64 {
	return math.Hypot(t.A, t.C)
}

// RotationRadians returns the rotation encoded in the transform, in the
// range (-pi, pi].
func (t AffineTransform) RotationRadians() float64 {
	return math.Atan2(t.C, t.A)
}

// RotationDegrees returns the rotation encoded in the transform in degrees,
// clamped to exactly 0 when within angleEpsilonDeg of zero.
func (t AffineTransform) RotationDegrees() float64 {
	deg := t.RotationRadians() * 180 / math.Pi
	if math.Abs(deg) < angleEpsilonDeg {
		return 0
	}
	return deg
}

// CSS returns the transform as a CSS-style matrix expression,
// "matrix(a, b, c, d, e, f)", in column order: (a, b) is the image of the
// unit x vector, (c, d) the image of the unit y vector, (e, f) the
// translation.
func (t AffineTransform) CSS() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", t.A, t.C, t.B, t.D, t.TX, t.TY)
}

// ToMatrix returns the transform as a [2][3]float64 array.
func (t AffineTransform) ToMatrix() [2][3]float64 {
	return [2][3]float64{
		{t.A, t.B, t.TX},
		{t.C, t.D, t.TY},
	}
}

// FromMatrix creates an AffineTransform from a [2][3]float64 array.
func FromMatrix(m [2][3]float64) AffineTransform {
	return AffineTransform{
		A: m[0][0], B: m[0][1], TX: m[0][2],
		C: m[1][0], D: m[1][1], TY: m[1][2],
	}
}
