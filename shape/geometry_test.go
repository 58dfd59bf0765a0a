package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestClosestOnSegment(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{4, 0, 0}

	if got := closestOnSegment(a, b, mgl64.Vec3{2, 3, 0}); !vecNear(got, mgl64.Vec3{2, 0, 0}) {
		t.Errorf("interior projection = %v, want (2,0,0)", got)
	}
	if got := closestOnSegment(a, b, mgl64.Vec3{-5, 1, 0}); !vecNear(got, a) {
		t.Errorf("clamped to start = %v, want %v", got, a)
	}
	if got := closestOnSegment(a, b, mgl64.Vec3{9, 1, 0}); !vecNear(got, b) {
		t.Errorf("clamped to end = %v, want %v", got, b)
	}
	// Degenerate segment collapses to its single point.
	if got := closestOnSegment(a, a, mgl64.Vec3{7, 7, 7}); !vecNear(got, a) {
		t.Errorf("degenerate segment = %v, want %v", got, a)
	}
}

func TestDistPointLineVsSegment(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{1, 0, 0}
	p := mgl64.Vec3{10, 2, 0}

	// The line extends past b; the segment clamps.
	near(t, "line distance", distPointLine(a, b, p), 2)
	near(t, "segment distance", distPointSegment(a, b, p), math.Sqrt(81+4))
}

func TestDistSegmentSegment(t *testing.T) {
	near(t, "parallel",
		distSegmentSegment(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0, 0},
			mgl64.Vec3{0, 3, 0}, mgl64.Vec3{4, 3, 0}), 3)
	near(t, "crossing",
		distSegmentSegment(
			mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, -1, 1}, mgl64.Vec3{0, 1, 1}), 1)
	near(t, "endpoint to endpoint",
		distSegmentSegment(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{4, 4, 0}, mgl64.Vec3{4, 9, 0}), 5)
	near(t, "degenerate both",
		distSegmentSegment(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 2, 0}), 2)
	near(t, "degenerate one",
		distSegmentSegment(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0},
			mgl64.Vec3{-1, 2, 0}, mgl64.Vec3{1, 2, 0}), 2)
}

func TestSignedPlaneDist(t *testing.T) {
	pos := mgl64.Vec3{0, 1, 0}
	normal := mgl64.Vec3{0, 2, 0} // non-unit on purpose

	near(t, "above", signedPlaneDist(pos, normal, mgl64.Vec3{5, 4, 5}), 3)
	near(t, "below", signedPlaneDist(pos, normal, mgl64.Vec3{0, -1, 0}), -2)
	near(t, "on plane", signedPlaneDist(pos, normal, mgl64.Vec3{9, 1, -9}), 0)
}

func TestBoxHelpers(t *testing.T) {
	lo := mgl64.Vec3{0, 0, 0}
	hi := mgl64.Vec3{2, 2, 2}

	if got := clampToBox(lo, hi, mgl64.Vec3{-1, 1, 5}); !vecNear(got, mgl64.Vec3{0, 1, 2}) {
		t.Errorf("clampToBox = %v, want (0,1,2)", got)
	}
	if !insideBox(lo, hi, mgl64.Vec3{2, 0, 1}) {
		t.Error("boundary point should be inside")
	}
	if insideBox(lo, hi, mgl64.Vec3{2.1, 0, 1}) {
		t.Error("outside point should not be inside")
	}
	if !boxesOverlap(lo, hi, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{3, 1, 1}) {
		t.Error("face-touching boxes should overlap")
	}
	if boxesOverlap(lo, hi, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{4, 1, 1}) {
		t.Error("separated boxes should not overlap")
	}
}
