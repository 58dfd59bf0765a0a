package rowan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraViewIsInverseOfAbsolute(t *testing.T) {
	scene := NewRigidScene2D()
	rig := New[Rigid2D]("rig", scene)
	cam := NewCamera(rig)

	Rotate2D(rig, Deg(17), Global)
	Translate(rig, mgl64.Vec2{2, 1}, Global)

	// View forces cleaning itself.
	view := cam.View().Mat3()
	assertMat3(t, "view * absolute",
		view.Mul3(rig.AbsoluteTransformation().Mat3()), mgl64.Ident3())

	if cam.Object() != rig {
		t.Error("Object() should return the owning node")
	}
}

func TestCameraViewTracksMovement(t *testing.T) {
	scene := NewRigidScene2D()
	rig := New[Rigid2D]("rig", scene)
	cam := NewCamera(rig)

	Translate(rig, mgl64.Vec2{2, 0}, Global)
	first := cam.View().Mat3()

	Translate(rig, mgl64.Vec2{3, 1}, Global)
	second := cam.View().Mat3()

	assertNear(t, "first view tx", first.At(0, 2), -2)
	assertNear(t, "second view tx", second.At(0, 2), -5)
	assertNear(t, "second view ty", second.At(1, 2), -1)
}

func TestCameraAttachToCleanNode(t *testing.T) {
	scene := NewRigidScene2D()
	rig := New[Rigid2D]("rig", scene)
	Translate(rig, mgl64.Vec2{3, -2}, Global)
	rig.SetClean()

	// Attached after cleaning, the camera must still end up with the real
	// inverse rather than its identity placeholder.
	cam := NewCamera(rig)
	view := cam.View().Mat3()
	assertNear(t, "view tx", view.At(0, 2), -3)
	assertNear(t, "view ty", view.At(1, 2), 2)
}

func TestCameraOnNestedNode(t *testing.T) {
	scene := NewRigidScene2D()
	vehicle := New[Rigid2D]("vehicle", scene)
	rig := New[Rigid2D]("rig", vehicle)
	cam := NewCamera(rig)

	Rotate2D(vehicle, Deg(90), Global)
	Translate(rig, mgl64.Vec2{1, 0}, Local)

	// A point at the camera's world position maps to the view origin.
	view := cam.View().Mat3()
	pos := rig.AbsoluteTransformation().Mat3().Col(2).Vec2()
	mapped := view.Mul3x1(mgl64.Vec3{pos[0], pos[1], 1})
	assertNear(t, "mapped x", mapped[0], 0)
	assertNear(t, "mapped y", mapped[1], 0)
}
