package shape

import (
	"math"
	"reflect"
	"testing"

	"github.com/barkimedes/go-deepcopy"
	"github.com/go-gl/mathgl/mgl64"
)

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

// --- Clone ---

func TestCloneIsIndependent(t *testing.T) {
	g := NewGroup[mgl64.Vec3](Any,
		NewSphere(mgl64.Vec3{1, 2, 3}, 4),
		NewCapsule(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 0.5),
		NewGroup(All, NewPoint(mgl64.Vec3{5, 5, 5})),
	)
	snapshot, err := deepcopy.Anything(g)
	if err != nil {
		t.Fatalf("deepcopy: %v", err)
	}

	clone := g.Clone()

	// Mutating the original must not leak into the clone.
	g.Members[0].(*Sphere[mgl64.Vec3]).Radius = 99
	g.Members[1].(*Capsule[mgl64.Vec3]).A = mgl64.Vec3{-9, -9, -9}
	g.Members[2].(*Group[mgl64.Vec3]).Members[0].(*Point[mgl64.Vec3]).Position = mgl64.Vec3{}

	if !reflect.DeepEqual(clone, snapshot) {
		t.Error("clone should match the pre-mutation snapshot")
	}
}

func TestCloneEveryKind(t *testing.T) {
	shapes := []Shape[mgl64.Vec3]{
		NewPoint(mgl64.Vec3{1, 2, 3}),
		NewLine(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
		NewLineSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
		NewSphere(mgl64.Vec3{1, 2, 3}, 4),
		NewCapsule(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, 0.5),
		NewAxisAlignedBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
		NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}),
		NewPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}),
	}
	for _, s := range shapes {
		c := s.Clone()
		if c == s {
			t.Errorf("%v: Clone returned the receiver", s.Type())
		}
		if c.Type() != s.Type() {
			t.Errorf("%v: Clone changed kind to %v", s.Type(), c.Type())
		}
		if !reflect.DeepEqual(c, s) {
			t.Errorf("%v: Clone is not equal to the original", s.Type())
		}
	}
}

// --- Transform ---

func TestTransformInPlace(t *testing.T) {
	m := NewAffine3(mgl64.Translate3D(10, 0, 0).Mul4(mgl64.HomogRotate3D(math.Pi/2, mgl64.Vec3{0, 0, 1})))

	s := NewSphere(mgl64.Vec3{1, 0, 0}, 2)
	dst := s.Clone().(*Sphere[mgl64.Vec3])
	s.Transform(m, dst)
	if !vecNear(dst.Center, mgl64.Vec3{10, 1, 0}) {
		t.Errorf("transformed center = %v, want (10,1,0)", dst.Center)
	}
	if dst.Radius != 2 {
		t.Errorf("radius = %v, want 2 (rigid transform)", dst.Radius)
	}
	if !vecNear(s.Center, mgl64.Vec3{1, 0, 0}) {
		t.Error("source shape must stay untouched")
	}

	// Planes map the normal as a direction: no translation applied.
	p := NewPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
	pd := p.Clone().(*Plane[mgl64.Vec3])
	p.Transform(m, pd)
	if !vecNear(pd.Position, mgl64.Vec3{10, 0, 0}) {
		t.Errorf("plane position = %v, want (10,0,0)", pd.Position)
	}
	if !vecNear(pd.Normal, mgl64.Vec3{0, 1, 0}) {
		t.Errorf("plane normal = %v, want (0,1,0)", pd.Normal)
	}
}

func TestTransformReordersBoxCorners(t *testing.T) {
	// A reflection flips min past max; the box must re-sort componentwise.
	flip := NewAffine2(mgl64.Scale2D(-1, 1))
	b := NewAxisAlignedBox(mgl64.Vec2{1, 0}, mgl64.Vec2{3, 2})
	dst := b.Clone().(*AxisAlignedBox[mgl64.Vec2])
	b.Transform(flip, dst)

	if dst.Min != (mgl64.Vec2{-3, 0}) || dst.Max != (mgl64.Vec2{-1, 2}) {
		t.Errorf("box = [%v, %v], want [(-3,0), (-1,2)]", dst.Min, dst.Max)
	}
}

func TestTransformGroupMembers(t *testing.T) {
	g := NewGroup(Any,
		NewSphere(mgl64.Vec3{0, 0, 0}, 1),
		NewPoint(mgl64.Vec3{1, 0, 0}),
	)
	dst := g.Clone().(*Group[mgl64.Vec3])
	g.Transform(NewAffine3(mgl64.Translate3D(0, 5, 0)), dst)

	if !vecNear(dst.Members[0].(*Sphere[mgl64.Vec3]).Center, mgl64.Vec3{0, 5, 0}) {
		t.Error("group member sphere not transformed")
	}
	if !vecNear(dst.Members[1].(*Point[mgl64.Vec3]).Position, mgl64.Vec3{1, 5, 0}) {
		t.Error("group member point not transformed")
	}
}

func TestTransformKindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched destination kind")
		}
	}()
	s := NewSphere(mgl64.Vec3{0, 0, 0}, 1)
	s.Transform(NewAffine3(mgl64.Ident4()), NewPoint(mgl64.Vec3{}))
}

// --- Type ---

func TestTypeString(t *testing.T) {
	if TypeSphere.String() != "Sphere" || TypeGroup.String() != "Group" {
		t.Error("Type.String should name the kind")
	}
	if Type(997).String() != "Unknown" {
		t.Error("unassigned tag should stringify as Unknown")
	}
}
