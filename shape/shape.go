package shape

import "github.com/go-gl/mathgl/mgl64"

// Type identifies a shape kind. Every kind carries a distinct prime, so
// the product of two kinds' values is a collision-free symmetric key for
// pairwise dispatch (unique factorization: no two unordered pairs share a
// product). Values are fixed forever; never reuse a prime.
type Type uint16

const (
	TypePoint          Type = 2
	TypeLine           Type = 3
	TypeLineSegment    Type = 5
	TypeSphere         Type = 7
	TypeCapsule        Type = 11
	TypeAxisAlignedBox Type = 13
	TypeBox            Type = 17
	TypePlane          Type = 19
	TypeGroup          Type = 23
)

// Duplicate constant keys in a map literal refuse to compile, so a
// repeated prime assignment is caught at build time.
var _ = map[Type]struct{}{
	TypePoint:          {},
	TypeLine:           {},
	TypeLineSegment:    {},
	TypeSphere:         {},
	TypeCapsule:        {},
	TypeAxisAlignedBox: {},
	TypeBox:            {},
	TypePlane:          {},
	TypeGroup:          {},
}

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLine:
		return "Line"
	case TypeLineSegment:
		return "LineSegment"
	case TypeSphere:
		return "Sphere"
	case TypeCapsule:
		return "Capsule"
	case TypeAxisAlignedBox:
		return "AxisAlignedBox"
	case TypeBox:
		return "Box"
	case TypePlane:
		return "Plane"
	case TypeGroup:
		return "Group"
	}
	return "Unknown"
}

// Epsilon is the tolerance used by exact-contact tests (point on point,
// point on plane).
const Epsilon = 1e-9

// Vec constrains the vector types shapes are generic over. Both
// mgl64.Vec2 and mgl64.Vec3 satisfy it; the array element gives tests
// componentwise access for box overlap checks.
type Vec[V any] interface {
	~[2]float64 | ~[3]float64
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Dot(V) float64
	Len() float64
}

// Mover applies an affine transformation: Point maps positions (with
// translation), Direction maps directions (without).
type Mover[V any] interface {
	Point(V) V
	Direction(V) V
}

// Shape is the polymorphic wrapper the collision dispatcher routes on.
//
// Transform writes the transformed shape into dst, which must be a
// pre-existing instance of the same concrete kind; it never allocates.
// Passing a dst of a different kind is a contract breach and panics.
type Shape[V Vec[V]] interface {
	Type() Type
	Clone() Shape[V]
	Transform(m Mover[V], dst Shape[V])
}

// Affine2 adapts a planar homogeneous matrix to the Mover contract.
type Affine2 struct {
	M mgl64.Mat3
}

func NewAffine2(m mgl64.Mat3) Affine2 { return Affine2{M: m} }

func (a Affine2) Point(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		a.M.At(0, 0)*p[0] + a.M.At(0, 1)*p[1] + a.M.At(0, 2),
		a.M.At(1, 0)*p[0] + a.M.At(1, 1)*p[1] + a.M.At(1, 2),
	}
}

func (a Affine2) Direction(d mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		a.M.At(0, 0)*d[0] + a.M.At(0, 1)*d[1],
		a.M.At(1, 0)*d[0] + a.M.At(1, 1)*d[1],
	}
}

// Affine3 adapts a spatial homogeneous matrix to the Mover contract.
type Affine3 struct {
	M mgl64.Mat4
}

func NewAffine3(m mgl64.Mat4) Affine3 { return Affine3{M: m} }

func (a Affine3) Point(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		a.M.At(0, 0)*p[0] + a.M.At(0, 1)*p[1] + a.M.At(0, 2)*p[2] + a.M.At(0, 3),
		a.M.At(1, 0)*p[0] + a.M.At(1, 1)*p[1] + a.M.At(1, 2)*p[2] + a.M.At(1, 3),
		a.M.At(2, 0)*p[0] + a.M.At(2, 1)*p[1] + a.M.At(2, 2)*p[2] + a.M.At(2, 3),
	}
}

func (a Affine3) Direction(d mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		a.M.At(0, 0)*d[0] + a.M.At(0, 1)*d[1] + a.M.At(0, 2)*d[2],
		a.M.At(1, 0)*d[0] + a.M.At(1, 1)*d[1] + a.M.At(1, 2)*d[2],
		a.M.At(2, 0)*d[0] + a.M.At(2, 1)*d[1] + a.M.At(2, 2)*d[2],
	}
}
