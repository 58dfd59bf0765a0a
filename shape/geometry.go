package shape

// Pure geometric primitives backing the dispatch table. Everything here is
// written with dot products only, so the same code serves 2D and 3D.

// closestOnSegment returns the point on segment ab closest to p.
func closestOnSegment[V Vec[V]](a, b, p V) V {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den < Epsilon {
		// Degenerate segment: both endpoints coincide.
		return a
	}
	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// distPointSegment returns the distance from p to segment ab.
func distPointSegment[V Vec[V]](a, b, p V) float64 {
	return closestOnSegment(a, b, p).Sub(p).Len()
}

// distPointLine returns the distance from p to the infinite line ab.
func distPointLine[V Vec[V]](a, b, p V) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den < Epsilon {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / den
	return a.Add(ab.Mul(t)).Sub(p).Len()
}

// distSegmentSegment returns the distance between segments p1q1 and p2q2
// (closest-point computation per Ericson, Real-Time Collision Detection).
func distSegmentSegment[V Vec[V]](p1, q1, p2, q2 V) float64 {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a < Epsilon && e < Epsilon:
		// Both segments degenerate to points.
		return r.Len()
	case a < Epsilon:
		s = 0
		t = clamp01(f / e)
	default:
		c := d1.Dot(r)
		if e < Epsilon {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			den := a*e - b*b
			if den > Epsilon {
				s = clamp01((b*f - c*e) / den)
			} else {
				// Parallel segments: pick an arbitrary s.
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}
	c1 := p1.Add(d1.Mul(s))
	c2 := p2.Add(d2.Mul(t))
	return c1.Sub(c2).Len()
}

// signedPlaneDist returns the signed distance of p from the plane, scaled
// by the normal's length (sign is what callers care about; magnitude is
// exact when the normal is unit length).
func signedPlaneDist[V Vec[V]](position, normal, p V) float64 {
	n := normal
	l := n.Len()
	if l > Epsilon {
		n = n.Mul(1 / l)
	}
	return n.Dot(p.Sub(position))
}

// clampToBox clamps p componentwise into [lo, hi].
func clampToBox[V Vec[V]](lo, hi, p V) V {
	q := p
	for i := 0; i < len(q); i++ {
		if q[i] < lo[i] {
			q[i] = lo[i]
		} else if q[i] > hi[i] {
			q[i] = hi[i]
		}
	}
	return q
}

// insideBox reports whether p lies in [lo, hi] componentwise, edges
// included.
func insideBox[V Vec[V]](lo, hi, p V) bool {
	for i := 0; i < len(p); i++ {
		if p[i] < lo[i] || p[i] > hi[i] {
			return false
		}
	}
	return true
}

// boxesOverlap reports whether the boxes [lo1,hi1] and [lo2,hi2] overlap.
// Boxes sharing only a face are considered overlapping.
func boxesOverlap[V Vec[V]](lo1, hi1, lo2, hi2 V) bool {
	for i := 0; i < len(lo1); i++ {
		if hi1[i] < lo2[i] || hi2[i] < lo1[i] {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
