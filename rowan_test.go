package rowan

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEps = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > testEps {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

func assertMat3(t *testing.T, name string, got, want mgl64.Mat3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-7 {
			t.Errorf("%s[%d] = %v, want %v (full:\n%v\nvs\n%v)", name, i, got[i], want[i], got, want)
			return
		}
	}
}

func assertMat4(t *testing.T, name string, got, want mgl64.Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-7 {
			t.Errorf("%s[%d] = %v, want %v (full:\n%v\nvs\n%v)", name, i, got[i], want[i], got, want)
			return
		}
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
