package shape

// Concrete shape kinds. Shapes are mutable pointer values owned by
// whichever feature or Group holds them; Clone produces an independent
// deep copy, Transform writes into a same-kind destination in place.

// Point is a single position.
type Point[V Vec[V]] struct {
	Position V
}

func NewPoint[V Vec[V]](position V) *Point[V] {
	return &Point[V]{Position: position}
}

func (p *Point[V]) Type() Type { return TypePoint }

func (p *Point[V]) Clone() Shape[V] {
	c := *p
	return &c
}

func (p *Point[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Point[V])
	if !ok {
		panic("shape: transform destination is not a Point")
	}
	out.Position = m.Point(p.Position)
}

// Line is the infinite line through A and B.
type Line[V Vec[V]] struct {
	A, B V
}

func NewLine[V Vec[V]](a, b V) *Line[V] {
	return &Line[V]{A: a, B: b}
}

func (l *Line[V]) Type() Type { return TypeLine }

func (l *Line[V]) Clone() Shape[V] {
	c := *l
	return &c
}

func (l *Line[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Line[V])
	if !ok {
		panic("shape: transform destination is not a Line")
	}
	out.A = m.Point(l.A)
	out.B = m.Point(l.B)
}

// LineSegment is the finite segment between A and B.
type LineSegment[V Vec[V]] struct {
	A, B V
}

func NewLineSegment[V Vec[V]](a, b V) *LineSegment[V] {
	return &LineSegment[V]{A: a, B: b}
}

func (l *LineSegment[V]) Type() Type { return TypeLineSegment }

func (l *LineSegment[V]) Clone() Shape[V] {
	c := *l
	return &c
}

func (l *LineSegment[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*LineSegment[V])
	if !ok {
		panic("shape: transform destination is not a LineSegment")
	}
	out.A = m.Point(l.A)
	out.B = m.Point(l.B)
}

// Sphere is a center and radius (a circle in 2D).
type Sphere[V Vec[V]] struct {
	Center V
	Radius float64
}

func NewSphere[V Vec[V]](center V, radius float64) *Sphere[V] {
	return &Sphere[V]{Center: center, Radius: radius}
}

func (s *Sphere[V]) Type() Type { return TypeSphere }

func (s *Sphere[V]) Clone() Shape[V] {
	c := *s
	return &c
}

// Transform assumes the transformation is rigid: the radius is carried
// over unscaled.
func (s *Sphere[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Sphere[V])
	if !ok {
		panic("shape: transform destination is not a Sphere")
	}
	out.Center = m.Point(s.Center)
	out.Radius = s.Radius
}

// Capsule is a sphere swept along the segment from A to B.
type Capsule[V Vec[V]] struct {
	A, B   V
	Radius float64
}

func NewCapsule[V Vec[V]](a, b V, radius float64) *Capsule[V] {
	return &Capsule[V]{A: a, B: b, Radius: radius}
}

func (c *Capsule[V]) Type() Type { return TypeCapsule }

func (c *Capsule[V]) Clone() Shape[V] {
	d := *c
	return &d
}

// Transform assumes the transformation is rigid: the radius is carried
// over unscaled.
func (c *Capsule[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Capsule[V])
	if !ok {
		panic("shape: transform destination is not a Capsule")
	}
	out.A = m.Point(c.A)
	out.B = m.Point(c.B)
	out.Radius = c.Radius
}

// AxisAlignedBox is the box spanned componentwise by Min and Max.
type AxisAlignedBox[V Vec[V]] struct {
	Min, Max V
}

func NewAxisAlignedBox[V Vec[V]](min, max V) *AxisAlignedBox[V] {
	return &AxisAlignedBox[V]{Min: min, Max: max}
}

func (b *AxisAlignedBox[V]) Type() Type { return TypeAxisAlignedBox }

func (b *AxisAlignedBox[V]) Clone() Shape[V] {
	c := *b
	return &c
}

// Transform maps the two corner points. Only transformations that keep the
// box axis-aligned (translations, axis-aligned reflections) preserve the
// shape's meaning; anything else is the caller's responsibility to avoid.
func (b *AxisAlignedBox[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*AxisAlignedBox[V])
	if !ok {
		panic("shape: transform destination is not an AxisAlignedBox")
	}
	lo, hi := m.Point(b.Min), m.Point(b.Max)
	for i := 0; i < len(lo); i++ {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
	out.Min, out.Max = lo, hi
}

// Box is an oriented box: a center and one half-extent axis vector per
// dimension. It participates in dispatch but has no pairwise tests yet.
type Box[V Vec[V]] struct {
	Center V
	Axes   []V
}

func NewBox[V Vec[V]](center V, axes ...V) *Box[V] {
	return &Box[V]{Center: center, Axes: axes}
}

func (b *Box[V]) Type() Type { return TypeBox }

func (b *Box[V]) Clone() Shape[V] {
	c := &Box[V]{Center: b.Center, Axes: make([]V, len(b.Axes))}
	copy(c.Axes, b.Axes)
	return c
}

func (b *Box[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Box[V])
	if !ok {
		panic("shape: transform destination is not a Box")
	}
	if len(out.Axes) != len(b.Axes) {
		panic("shape: transform destination Box has mismatched axis count")
	}
	out.Center = m.Point(b.Center)
	for i, axis := range b.Axes {
		out.Axes[i] = m.Direction(axis)
	}
}

// Plane is the infinite plane through Position with the given Normal.
// A three-dimensional shape; the 2D kind set does not include it.
type Plane[V Vec[V]] struct {
	Position, Normal V
}

func NewPlane[V Vec[V]](position, normal V) *Plane[V] {
	return &Plane[V]{Position: position, Normal: normal}
}

func (p *Plane[V]) Type() Type { return TypePlane }

func (p *Plane[V]) Clone() Shape[V] {
	c := *p
	return &c
}

// Transform assumes the transformation is rigid; the normal is mapped as a
// direction, which is only correct without non-uniform scaling.
func (p *Plane[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Plane[V])
	if !ok {
		panic("shape: transform destination is not a Plane")
	}
	out.Position = m.Point(p.Position)
	out.Normal = m.Direction(p.Normal)
}
