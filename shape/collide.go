package shape

import (
	"fmt"
	"math"
)

// Collides reports whether two shapes overlap.
//
// Dispatch is symmetric: the key is the product of the two kinds' prime
// tags, so key(a, b) == key(b, a) and unique factorization guarantees no
// two unordered pairs share a key. Because multiplication discards operand
// order, each case re-inspects the tags to canonicalize before calling the
// geometric test.
//
// Pairs with no closed-form test (anything against Box, line against line,
// ...) report false. A key outside the closed kind set is a design-time
// defect and panics.
func Collides[V Vec[V]](a, b Shape[V]) bool {
	if a == nil || b == nil {
		panic("shape: Collides on nil shape")
	}

	// Groups fold over their members before any pairwise key applies.
	if a.Type() == TypeGroup {
		return a.(*Group[V]).collidesWith(b)
	}
	if b.Type() == TypeGroup {
		return b.(*Group[V]).collidesWith(a)
	}

	switch int(a.Type()) * int(b.Type()) {
	case int(TypePoint) * int(TypePoint):
		return pointPoint(a.(*Point[V]), b.(*Point[V]))
	case int(TypePoint) * int(TypeSphere):
		if a.Type() != TypePoint {
			a, b = b, a
		}
		return pointSphere(a.(*Point[V]), b.(*Sphere[V]))
	case int(TypePoint) * int(TypeCapsule):
		if a.Type() != TypePoint {
			a, b = b, a
		}
		return pointCapsule(a.(*Point[V]), b.(*Capsule[V]))
	case int(TypePoint) * int(TypeAxisAlignedBox):
		if a.Type() != TypePoint {
			a, b = b, a
		}
		return pointBox(a.(*Point[V]), b.(*AxisAlignedBox[V]))
	case int(TypePoint) * int(TypePlane):
		if a.Type() != TypePoint {
			a, b = b, a
		}
		return pointPlane(a.(*Point[V]), b.(*Plane[V]))
	case int(TypeLine) * int(TypeSphere):
		if a.Type() != TypeLine {
			a, b = b, a
		}
		return lineSphere(a.(*Line[V]), b.(*Sphere[V]))
	case int(TypeLine) * int(TypePlane):
		if a.Type() != TypeLine {
			a, b = b, a
		}
		return linePlane(a.(*Line[V]), b.(*Plane[V]))
	case int(TypeLineSegment) * int(TypeSphere):
		if a.Type() != TypeLineSegment {
			a, b = b, a
		}
		return segmentSphere(a.(*LineSegment[V]), b.(*Sphere[V]))
	case int(TypeLineSegment) * int(TypePlane):
		if a.Type() != TypeLineSegment {
			a, b = b, a
		}
		return segmentPlane(a.(*LineSegment[V]), b.(*Plane[V]))
	case int(TypeSphere) * int(TypeSphere):
		return sphereSphere(a.(*Sphere[V]), b.(*Sphere[V]))
	case int(TypeSphere) * int(TypeCapsule):
		if a.Type() != TypeSphere {
			a, b = b, a
		}
		return sphereCapsule(a.(*Sphere[V]), b.(*Capsule[V]))
	case int(TypeSphere) * int(TypeAxisAlignedBox):
		if a.Type() != TypeSphere {
			a, b = b, a
		}
		return sphereBox(a.(*Sphere[V]), b.(*AxisAlignedBox[V]))
	case int(TypeSphere) * int(TypePlane):
		if a.Type() != TypeSphere {
			a, b = b, a
		}
		return spherePlane(a.(*Sphere[V]), b.(*Plane[V]))
	case int(TypeCapsule) * int(TypeCapsule):
		return capsuleCapsule(a.(*Capsule[V]), b.(*Capsule[V]))
	case int(TypeCapsule) * int(TypePlane):
		if a.Type() != TypeCapsule {
			a, b = b, a
		}
		return capsulePlane(a.(*Capsule[V]), b.(*Plane[V]))
	case int(TypeAxisAlignedBox) * int(TypeAxisAlignedBox):
		return boxBox(a.(*AxisAlignedBox[V]), b.(*AxisAlignedBox[V]))
	case int(TypeAxisAlignedBox) * int(TypePlane):
		if a.Type() != TypeAxisAlignedBox {
			a, b = b, a
		}
		return boxPlane(a.(*AxisAlignedBox[V]), b.(*Plane[V]))
	case int(TypePlane) * int(TypePlane):
		return planePlane(a.(*Plane[V]), b.(*Plane[V]))

	// Pairs the closed kind set allows but no geometric test covers.
	case int(TypePoint) * int(TypeLine),
		int(TypePoint) * int(TypeLineSegment),
		int(TypePoint) * int(TypeBox),
		int(TypeLine) * int(TypeLine),
		int(TypeLine) * int(TypeLineSegment),
		int(TypeLine) * int(TypeCapsule),
		int(TypeLine) * int(TypeAxisAlignedBox),
		int(TypeLine) * int(TypeBox),
		int(TypeLineSegment) * int(TypeLineSegment),
		int(TypeLineSegment) * int(TypeCapsule),
		int(TypeLineSegment) * int(TypeAxisAlignedBox),
		int(TypeLineSegment) * int(TypeBox),
		int(TypeSphere) * int(TypeBox),
		int(TypeCapsule) * int(TypeAxisAlignedBox),
		int(TypeCapsule) * int(TypeBox),
		int(TypeAxisAlignedBox) * int(TypeBox),
		int(TypeBox) * int(TypeBox),
		int(TypeBox) * int(TypePlane):
		return false
	}
	panic(fmt.Sprintf("shape: no dispatch entry for %v vs %v", a.Type(), b.Type()))
}

// --- pairwise tests (operands already canonicalized) ---

func pointPoint[V Vec[V]](a, b *Point[V]) bool {
	return a.Position.Sub(b.Position).Len() <= Epsilon
}

func pointSphere[V Vec[V]](p *Point[V], s *Sphere[V]) bool {
	return p.Position.Sub(s.Center).Len() <= s.Radius
}

func pointCapsule[V Vec[V]](p *Point[V], c *Capsule[V]) bool {
	return distPointSegment(c.A, c.B, p.Position) <= c.Radius
}

func pointBox[V Vec[V]](p *Point[V], b *AxisAlignedBox[V]) bool {
	return insideBox(b.Min, b.Max, p.Position)
}

func pointPlane[V Vec[V]](p *Point[V], pl *Plane[V]) bool {
	return math.Abs(signedPlaneDist(pl.Position, pl.Normal, p.Position)) <= Epsilon
}

func lineSphere[V Vec[V]](l *Line[V], s *Sphere[V]) bool {
	return distPointLine(l.A, l.B, s.Center) <= s.Radius
}

func linePlane[V Vec[V]](l *Line[V], pl *Plane[V]) bool {
	dir := l.B.Sub(l.A)
	if math.Abs(pl.Normal.Dot(dir)) > Epsilon {
		// Not parallel, so the infinite line pierces the plane.
		return true
	}
	return math.Abs(signedPlaneDist(pl.Position, pl.Normal, l.A)) <= Epsilon
}

func segmentSphere[V Vec[V]](l *LineSegment[V], s *Sphere[V]) bool {
	return distPointSegment(l.A, l.B, s.Center) <= s.Radius
}

func segmentPlane[V Vec[V]](l *LineSegment[V], pl *Plane[V]) bool {
	da := signedPlaneDist(pl.Position, pl.Normal, l.A)
	db := signedPlaneDist(pl.Position, pl.Normal, l.B)
	return da*db <= 0 || math.Abs(da) <= Epsilon || math.Abs(db) <= Epsilon
}

func sphereSphere[V Vec[V]](a, b *Sphere[V]) bool {
	return a.Center.Sub(b.Center).Len() <= a.Radius+b.Radius
}

func sphereCapsule[V Vec[V]](s *Sphere[V], c *Capsule[V]) bool {
	return distPointSegment(c.A, c.B, s.Center) <= s.Radius+c.Radius
}

func sphereBox[V Vec[V]](s *Sphere[V], b *AxisAlignedBox[V]) bool {
	closest := clampToBox(b.Min, b.Max, s.Center)
	return closest.Sub(s.Center).Len() <= s.Radius
}

func spherePlane[V Vec[V]](s *Sphere[V], pl *Plane[V]) bool {
	return math.Abs(signedPlaneDist(pl.Position, pl.Normal, s.Center)) <= s.Radius
}

func capsuleCapsule[V Vec[V]](a, b *Capsule[V]) bool {
	return distSegmentSegment(a.A, a.B, b.A, b.B) <= a.Radius+b.Radius
}

func capsulePlane[V Vec[V]](c *Capsule[V], pl *Plane[V]) bool {
	da := signedPlaneDist(pl.Position, pl.Normal, c.A)
	db := signedPlaneDist(pl.Position, pl.Normal, c.B)
	if da*db <= 0 {
		// Endpoints straddle (or touch) the plane.
		return true
	}
	return math.Min(math.Abs(da), math.Abs(db)) <= c.Radius
}

func boxBox[V Vec[V]](a, b *AxisAlignedBox[V]) bool {
	return boxesOverlap(a.Min, a.Max, b.Min, b.Max)
}

func boxPlane[V Vec[V]](b *AxisAlignedBox[V], pl *Plane[V]) bool {
	center := b.Min.Add(b.Max).Mul(0.5)
	half := b.Max.Sub(b.Min).Mul(0.5)
	n := pl.Normal
	if l := n.Len(); l > Epsilon {
		n = n.Mul(1 / l)
	}
	// Projection radius of the box onto the plane normal.
	var r float64
	for i := 0; i < len(half); i++ {
		r += half[i] * math.Abs(n[i])
	}
	return math.Abs(signedPlaneDist(pl.Position, pl.Normal, center)) <= r
}

func planePlane[V Vec[V]](a, b *Plane[V]) bool {
	na, nb := a.Normal, b.Normal
	parallel := math.Abs(math.Abs(na.Dot(nb))-na.Len()*nb.Len()) <= Epsilon
	if !parallel {
		return true
	}
	// Parallel planes collide only when coincident.
	return math.Abs(signedPlaneDist(a.Position, a.Normal, b.Position)) <= Epsilon
}
