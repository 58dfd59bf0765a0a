package rowan

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transformation2D constrains strategies whose transform converts to a
// planar homogeneous matrix. Satisfied by Matrix2D, Rigid2D, and
// TranslationRotation2D.
type Transformation2D[T any] interface {
	Transformation[T]
	Mat3() mgl64.Mat3
}

// --- Matrix2D ---

// Matrix2D is the general planar strategy: the local transform is an
// arbitrary homogeneous 3x3 matrix. Supports scaling and shearing at the
// cost of generic matrix inversion.
type Matrix2D struct {
	M mgl64.Mat3
}

// NewMatrix2D wraps a homogeneous matrix as a Matrix2D strategy value.
func NewMatrix2D(m mgl64.Mat3) Matrix2D { return Matrix2D{M: m} }

func (t Matrix2D) Identity() Matrix2D { return Matrix2D{M: mgl64.Ident3()} }

func (t Matrix2D) Compose(child Matrix2D) Matrix2D {
	return Matrix2D{M: t.M.Mul3(child.M)}
}

// Inverted returns the generic matrix inverse, or the identity if the
// matrix is singular.
func (t Matrix2D) Inverted() Matrix2D {
	if math.Abs(t.M.Det()) < Epsilon {
		return t.Identity()
	}
	return Matrix2D{M: t.M.Inv()}
}

func (t Matrix2D) Mat3() mgl64.Mat3 { return t.M }

func (t Matrix2D) Translated(shift mgl64.Vec2, kind TransformKind) Matrix2D {
	return t.composed(mgl64.Translate2D(shift[0], shift[1]), kind)
}

func (t Matrix2D) Rotated(angle float64, kind TransformKind) Matrix2D {
	return t.composed(mgl64.HomogRotate2D(angle), kind)
}

func (t Matrix2D) Reflected(normal mgl64.Vec2, kind TransformKind) Matrix2D {
	return t.composed(reflection2D(normal), kind)
}

func (t Matrix2D) Scaled(factors mgl64.Vec2, kind TransformKind) Matrix2D {
	return t.composed(mgl64.Scale2D(factors[0], factors[1]), kind)
}

// Normalized is a no-op: a general matrix does not track a rotation
// component to restore.
func (t Matrix2D) Normalized() Matrix2D { return t }

func (t Matrix2D) composed(m mgl64.Mat3, kind TransformKind) Matrix2D {
	if kind == Local {
		return Matrix2D{M: t.M.Mul3(m)}
	}
	return Matrix2D{M: m.Mul3(t.M)}
}

// --- Rigid2D ---

// Rigid2D restricts the matrix to rigid transforms (orthogonal rotation
// part plus translation, reflections included). The inverse is the closed
// form Rᵀ, -Rᵀt instead of a generic inversion, and NormalizeRotation can
// restore orthogonality after drift.
type Rigid2D struct {
	M mgl64.Mat3
}

// NewRigid2D wraps a homogeneous matrix as a Rigid2D strategy value.
// Panics if the matrix is not rigid within Epsilon; callers must
// pre-validate or accept the loss and use Matrix2D instead.
func NewRigid2D(m mgl64.Mat3) Rigid2D {
	if !isRigid2D(m) {
		panic("rowan: matrix is not a rigid transformation")
	}
	return Rigid2D{M: m}
}

func (t Rigid2D) Identity() Rigid2D { return Rigid2D{M: mgl64.Ident3()} }

func (t Rigid2D) Compose(child Rigid2D) Rigid2D {
	return Rigid2D{M: t.M.Mul3(child.M)}
}

// Inverted returns the closed-form rigid inverse.
func (t Rigid2D) Inverted() Rigid2D {
	m := t.M
	inv := mgl64.Ident3()
	// Rᵀ
	inv.Set(0, 0, m.At(0, 0))
	inv.Set(0, 1, m.At(1, 0))
	inv.Set(1, 0, m.At(0, 1))
	inv.Set(1, 1, m.At(1, 1))
	// -Rᵀt
	tx, ty := m.At(0, 2), m.At(1, 2)
	inv.Set(0, 2, -(inv.At(0, 0)*tx + inv.At(0, 1)*ty))
	inv.Set(1, 2, -(inv.At(1, 0)*tx + inv.At(1, 1)*ty))
	return Rigid2D{M: inv}
}

func (t Rigid2D) Mat3() mgl64.Mat3 { return t.M }

func (t Rigid2D) Translated(shift mgl64.Vec2, kind TransformKind) Rigid2D {
	return t.composed(mgl64.Translate2D(shift[0], shift[1]), kind)
}

func (t Rigid2D) Rotated(angle float64, kind TransformKind) Rigid2D {
	return t.composed(mgl64.HomogRotate2D(angle), kind)
}

func (t Rigid2D) Reflected(normal mgl64.Vec2, kind TransformKind) Rigid2D {
	return t.composed(reflection2D(normal), kind)
}

// Normalized re-orthonormalizes the rotation part with Gram-Schmidt,
// keeping the translation untouched.
func (t Rigid2D) Normalized() Rigid2D {
	c0 := mgl64.Vec2{t.M.At(0, 0), t.M.At(1, 0)}
	c1 := mgl64.Vec2{t.M.At(0, 1), t.M.At(1, 1)}
	c0 = c0.Normalize()
	c1 = c1.Sub(c0.Mul(c0.Dot(c1))).Normalize()
	m := t.M
	m.Set(0, 0, c0[0])
	m.Set(1, 0, c0[1])
	m.Set(0, 1, c1[0])
	m.Set(1, 1, c1[1])
	return Rigid2D{M: m}
}

func (t Rigid2D) composed(m mgl64.Mat3, kind TransformKind) Rigid2D {
	if kind == Local {
		return Rigid2D{M: t.M.Mul3(m)}
	}
	return Rigid2D{M: m.Mul3(t.M)}
}

// --- TranslationRotation2D ---

// TranslationRotation2D stores the transform as an explicit translation
// vector and rotation angle. Composition and inversion stay in that
// representation; the matrix is reconstructed on demand. Cannot represent
// reflections or scaling.
type TranslationRotation2D struct {
	Translation mgl64.Vec2
	// Rotation is the angle in radians.
	Rotation float64
}

// NewTranslationRotation2D decomposes a rigid, orientation-preserving
// matrix into translation and rotation. Panics if the matrix is not rigid
// within Epsilon or contains a reflection.
func NewTranslationRotation2D(m mgl64.Mat3) TranslationRotation2D {
	if !isRigid2D(m) || rot2Det(m) < 0 {
		panic("rowan: matrix is not a rotation and translation")
	}
	return TranslationRotation2D{
		Translation: mgl64.Vec2{m.At(0, 2), m.At(1, 2)},
		Rotation:    math.Atan2(m.At(1, 0), m.At(0, 0)),
	}
}

func (t TranslationRotation2D) Identity() TranslationRotation2D {
	return TranslationRotation2D{}
}

func (t TranslationRotation2D) Compose(child TranslationRotation2D) TranslationRotation2D {
	return TranslationRotation2D{
		Translation: t.Translation.Add(rotateVec2(t.Rotation, child.Translation)),
		Rotation:    t.Rotation + child.Rotation,
	}
}

// Inverted returns the closed-form inverse: negated angle, back-rotated
// negated translation.
func (t TranslationRotation2D) Inverted() TranslationRotation2D {
	return TranslationRotation2D{
		Translation: rotateVec2(-t.Rotation, t.Translation).Mul(-1),
		Rotation:    -t.Rotation,
	}
}

func (t TranslationRotation2D) Mat3() mgl64.Mat3 {
	return mgl64.Translate2D(t.Translation[0], t.Translation[1]).
		Mul3(mgl64.HomogRotate2D(t.Rotation))
}

func (t TranslationRotation2D) Translated(shift mgl64.Vec2, kind TransformKind) TranslationRotation2D {
	out := t
	if kind == Local {
		out.Translation = t.Translation.Add(rotateVec2(t.Rotation, shift))
	} else {
		out.Translation = t.Translation.Add(shift)
	}
	return out
}

func (t TranslationRotation2D) Rotated(angle float64, kind TransformKind) TranslationRotation2D {
	out := t
	out.Rotation = t.Rotation + angle
	if kind == Global {
		// Left-composing a rotation also spins the translation.
		out.Translation = rotateVec2(angle, t.Translation)
	}
	return out
}

// Normalized wraps the accumulated angle back into (-π, π]. The
// representation cannot drift out of rigidity, so there is nothing else to
// restore.
func (t TranslationRotation2D) Normalized() TranslationRotation2D {
	out := t
	out.Rotation = math.Remainder(t.Rotation, 2*math.Pi)
	return out
}

// --- shared planar helpers ---

// reflection2D builds the Householder reflection across the line with the
// given normal. The normal must be normalized.
func reflection2D(normal mgl64.Vec2) mgl64.Mat3 {
	if math.Abs(normal.Len()-1) > Epsilon {
		panic("rowan: reflection normal must be normalized")
	}
	m := mgl64.Ident3()
	m.Set(0, 0, 1-2*normal[0]*normal[0])
	m.Set(0, 1, -2*normal[0]*normal[1])
	m.Set(1, 0, -2*normal[0]*normal[1])
	m.Set(1, 1, 1-2*normal[1]*normal[1])
	return m
}

func rotateVec2(angle float64, v mgl64.Vec2) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{cos*v[0] - sin*v[1], sin*v[0] + cos*v[1]}
}

func rot2Det(m mgl64.Mat3) float64 {
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
}

// isRigid2D reports whether the rotation part of m is orthogonal (within
// Epsilon) and the bottom row is (0, 0, 1).
func isRigid2D(m mgl64.Mat3) bool {
	c0 := mgl64.Vec2{m.At(0, 0), m.At(1, 0)}
	c1 := mgl64.Vec2{m.At(0, 1), m.At(1, 1)}
	const tol = 1e-6
	return math.Abs(c0.Len()-1) < tol &&
		math.Abs(c1.Len()-1) < tol &&
		math.Abs(c0.Dot(c1)) < tol &&
		math.Abs(m.At(2, 0)) < tol &&
		math.Abs(m.At(2, 1)) < tol &&
		math.Abs(m.At(2, 2)-1) < tol
}
