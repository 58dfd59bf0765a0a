package rowan

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transformation3D constrains strategies whose transform converts to a
// spatial homogeneous matrix. Satisfied by Matrix3D, Rigid3D, and
// TranslationRotation3D.
type Transformation3D[T any] interface {
	Transformation[T]
	Mat4() mgl64.Mat4
}

// --- Matrix3D ---

// Matrix3D is the general spatial strategy: the local transform is an
// arbitrary homogeneous 4x4 matrix.
type Matrix3D struct {
	M mgl64.Mat4
}

// NewMatrix3D wraps a homogeneous matrix as a Matrix3D strategy value.
func NewMatrix3D(m mgl64.Mat4) Matrix3D { return Matrix3D{M: m} }

func (t Matrix3D) Identity() Matrix3D { return Matrix3D{M: mgl64.Ident4()} }

func (t Matrix3D) Compose(child Matrix3D) Matrix3D {
	return Matrix3D{M: t.M.Mul4(child.M)}
}

// Inverted returns the generic matrix inverse, or the identity if the
// matrix is singular.
func (t Matrix3D) Inverted() Matrix3D {
	if math.Abs(t.M.Det()) < Epsilon {
		return t.Identity()
	}
	return Matrix3D{M: t.M.Inv()}
}

func (t Matrix3D) Mat4() mgl64.Mat4 { return t.M }

func (t Matrix3D) Translated(shift mgl64.Vec3, kind TransformKind) Matrix3D {
	return t.composed(mgl64.Translate3D(shift[0], shift[1], shift[2]), kind)
}

func (t Matrix3D) Rotated(angle float64, axis mgl64.Vec3, kind TransformKind) Matrix3D {
	return t.composed(mgl64.HomogRotate3D(angle, axis.Normalize()), kind)
}

func (t Matrix3D) Reflected(normal mgl64.Vec3, kind TransformKind) Matrix3D {
	return t.composed(reflection3D(normal), kind)
}

func (t Matrix3D) Scaled(factors mgl64.Vec3, kind TransformKind) Matrix3D {
	return t.composed(mgl64.Scale3D(factors[0], factors[1], factors[2]), kind)
}

// Normalized is a no-op: a general matrix does not track a rotation
// component to restore.
func (t Matrix3D) Normalized() Matrix3D { return t }

func (t Matrix3D) composed(m mgl64.Mat4, kind TransformKind) Matrix3D {
	if kind == Local {
		return Matrix3D{M: t.M.Mul4(m)}
	}
	return Matrix3D{M: m.Mul4(t.M)}
}

// --- Rigid3D ---

// Rigid3D restricts the matrix to rigid transforms (orthogonal rotation
// part plus translation, reflections included), giving a closed-form
// inverse and a drift-correcting NormalizeRotation.
type Rigid3D struct {
	M mgl64.Mat4
}

// NewRigid3D wraps a homogeneous matrix as a Rigid3D strategy value.
// Panics if the matrix is not rigid within tolerance.
func NewRigid3D(m mgl64.Mat4) Rigid3D {
	if !isRigid3D(m) {
		panic("rowan: matrix is not a rigid transformation")
	}
	return Rigid3D{M: m}
}

func (t Rigid3D) Identity() Rigid3D { return Rigid3D{M: mgl64.Ident4()} }

func (t Rigid3D) Compose(child Rigid3D) Rigid3D {
	return Rigid3D{M: t.M.Mul4(child.M)}
}

// Inverted returns the closed-form rigid inverse Rᵀ, -Rᵀt.
func (t Rigid3D) Inverted() Rigid3D {
	m := t.M
	inv := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv.Set(r, c, m.At(c, r))
		}
	}
	tx, ty, tz := m.At(0, 3), m.At(1, 3), m.At(2, 3)
	for r := 0; r < 3; r++ {
		inv.Set(r, 3, -(inv.At(r, 0)*tx + inv.At(r, 1)*ty + inv.At(r, 2)*tz))
	}
	return Rigid3D{M: inv}
}

func (t Rigid3D) Mat4() mgl64.Mat4 { return t.M }

func (t Rigid3D) Translated(shift mgl64.Vec3, kind TransformKind) Rigid3D {
	return t.composed(mgl64.Translate3D(shift[0], shift[1], shift[2]), kind)
}

func (t Rigid3D) Rotated(angle float64, axis mgl64.Vec3, kind TransformKind) Rigid3D {
	return t.composed(mgl64.HomogRotate3D(angle, axis.Normalize()), kind)
}

func (t Rigid3D) Reflected(normal mgl64.Vec3, kind TransformKind) Rigid3D {
	return t.composed(reflection3D(normal), kind)
}

// Normalized re-orthonormalizes the rotation part with Gram-Schmidt,
// keeping the translation untouched.
func (t Rigid3D) Normalized() Rigid3D {
	col := func(c int) mgl64.Vec3 {
		return mgl64.Vec3{t.M.At(0, c), t.M.At(1, c), t.M.At(2, c)}
	}
	c0 := col(0).Normalize()
	c1 := col(1)
	c1 = c1.Sub(c0.Mul(c0.Dot(c1))).Normalize()
	c2 := col(2)
	c2 = c2.Sub(c0.Mul(c0.Dot(c2))).Sub(c1.Mul(c1.Dot(c2))).Normalize()
	m := t.M
	for r, cols := 0, [3]mgl64.Vec3{c0, c1, c2}; r < 3; r++ {
		m.Set(r, 0, cols[0][r])
		m.Set(r, 1, cols[1][r])
		m.Set(r, 2, cols[2][r])
	}
	return Rigid3D{M: m}
}

func (t Rigid3D) composed(m mgl64.Mat4, kind TransformKind) Rigid3D {
	if kind == Local {
		return Rigid3D{M: t.M.Mul4(m)}
	}
	return Rigid3D{M: m.Mul4(t.M)}
}

// --- TranslationRotation3D ---

// TranslationRotation3D stores the transform as an explicit translation
// vector and rotation quaternion. Composition and inversion stay in that
// representation; the matrix is reconstructed on demand. Cannot represent
// reflections or scaling.
type TranslationRotation3D struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// NewTranslationRotation3D decomposes a rigid, orientation-preserving
// matrix into translation and rotation. Panics if the matrix is not rigid
// within tolerance or contains a reflection.
func NewTranslationRotation3D(m mgl64.Mat4) TranslationRotation3D {
	if !isRigid3D(m) || rot3Det(m) < 0 {
		panic("rowan: matrix is not a rotation and translation")
	}
	return TranslationRotation3D{
		Translation: mgl64.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)},
		Rotation:    mgl64.Mat4ToQuat(m),
	}
}

func (t TranslationRotation3D) Identity() TranslationRotation3D {
	return TranslationRotation3D{Rotation: mgl64.QuatIdent()}
}

func (t TranslationRotation3D) Compose(child TranslationRotation3D) TranslationRotation3D {
	return TranslationRotation3D{
		Translation: t.Translation.Add(t.Rotation.Rotate(child.Translation)),
		Rotation:    t.Rotation.Mul(child.Rotation),
	}
}

// Inverted returns the closed-form inverse: conjugated rotation,
// back-rotated negated translation.
func (t TranslationRotation3D) Inverted() TranslationRotation3D {
	conj := t.Rotation.Conjugate()
	return TranslationRotation3D{
		Translation: conj.Rotate(t.Translation).Mul(-1),
		Rotation:    conj,
	}
}

func (t TranslationRotation3D) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Mat4())
}

func (t TranslationRotation3D) Translated(shift mgl64.Vec3, kind TransformKind) TranslationRotation3D {
	out := t
	if kind == Local {
		out.Translation = t.Translation.Add(t.Rotation.Rotate(shift))
	} else {
		out.Translation = t.Translation.Add(shift)
	}
	return out
}

func (t TranslationRotation3D) Rotated(angle float64, axis mgl64.Vec3, kind TransformKind) TranslationRotation3D {
	q := mgl64.QuatRotate(angle, axis.Normalize())
	out := t
	if kind == Local {
		out.Rotation = t.Rotation.Mul(q)
	} else {
		// Left-composing a rotation also spins the translation.
		out.Rotation = q.Mul(t.Rotation)
		out.Translation = q.Rotate(t.Translation)
	}
	return out
}

// Normalized renormalizes the rotation quaternion to unit length.
func (t TranslationRotation3D) Normalized() TranslationRotation3D {
	out := t
	out.Rotation = t.Rotation.Normalize()
	return out
}

// --- shared spatial helpers ---

// reflection3D builds the Householder reflection across the plane with the
// given normal. The normal must be normalized.
func reflection3D(normal mgl64.Vec3) mgl64.Mat4 {
	if math.Abs(normal.Len()-1) > Epsilon {
		panic("rowan: reflection normal must be normalized")
	}
	m := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := -2 * normal[r] * normal[c]
			if r == c {
				v++
			}
			m.Set(r, c, v)
		}
	}
	return m
}

func rot3Det(m mgl64.Mat4) float64 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(1, 2)*m.At(2, 0)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}

// isRigid3D reports whether the rotation part of m is orthogonal (within
// tolerance) and the bottom row is (0, 0, 0, 1).
func isRigid3D(m mgl64.Mat4) bool {
	const tol = 1e-6
	col := func(c int) mgl64.Vec3 {
		return mgl64.Vec3{m.At(0, c), m.At(1, c), m.At(2, c)}
	}
	c0, c1, c2 := col(0), col(1), col(2)
	return math.Abs(c0.Len()-1) < tol &&
		math.Abs(c1.Len()-1) < tol &&
		math.Abs(c2.Len()-1) < tol &&
		math.Abs(c0.Dot(c1)) < tol &&
		math.Abs(c0.Dot(c2)) < tol &&
		math.Abs(c1.Dot(c2)) < tol &&
		math.Abs(m.At(3, 0)) < tol &&
		math.Abs(m.At(3, 1)) < tol &&
		math.Abs(m.At(3, 2)) < tol &&
		math.Abs(m.At(3, 3)-1) < tol
}
