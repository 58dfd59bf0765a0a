package rowan

import "github.com/go-gl/mathgl/mgl64"

// Transformation is the value-level contract every transformation strategy
// satisfies. Strategies are plain value types: composing or inverting
// returns a new value and never mutates the receiver.
//
// Compose is parent-then-child: for matrix-backed strategies,
// a.Compose(b).Mat() equals a.Mat() * b.Mat(). Identity must be callable on
// the zero value, since nodes derive their initial local transform from it.
type Transformation[T any] interface {
	// Identity returns the identity transformation.
	Identity() T
	// Compose combines the receiver (parent) with child, parent first.
	Compose(child T) T
	// Inverted returns the inverse transformation. Rigid strategies use a
	// closed form rather than generic matrix inversion.
	Inverted() T
}

// The mutation helpers below are free functions rather than Node methods so
// each can constrain T to exactly the capability it needs: a strategy that
// cannot represent a reflection simply has no Reflected method, and calls
// against it fail to compile instead of at runtime.

// Translate shifts the node's local transformation by shift. V is the
// vector type matching the strategy's dimensionality. No-op on a scene.
func Translate[T interface {
	Transformation[T]
	Translated(shift V, kind TransformKind) T
}, V any](n *Node[T], shift V, kind TransformKind) {
	if n.scene {
		return
	}
	n.local = n.local.Translated(shift, kind)
	n.SetDirty()
}

// Rotate2D rotates a planar node's local transformation by angle radians.
// No-op on a scene.
func Rotate2D[T interface {
	Transformation[T]
	Rotated(angle float64, kind TransformKind) T
}](n *Node[T], angle float64, kind TransformKind) {
	if n.scene {
		return
	}
	n.local = n.local.Rotated(angle, kind)
	n.SetDirty()
}

// Rotate3D rotates a spatial node's local transformation by angle radians
// around axis. The axis need not be normalized. No-op on a scene.
func Rotate3D[T interface {
	Transformation[T]
	Rotated(angle float64, axis mgl64.Vec3, kind TransformKind) T
}](n *Node[T], angle float64, axis mgl64.Vec3, kind TransformKind) {
	if n.scene {
		return
	}
	n.local = n.local.Rotated(angle, axis, kind)
	n.SetDirty()
}

// Reflect mirrors the node's local transformation across the hyperplane
// with the given normal, which must be normalized. No-op on a scene.
func Reflect[T interface {
	Transformation[T]
	Reflected(normal V, kind TransformKind) T
}, V any](n *Node[T], normal V, kind TransformKind) {
	if n.scene {
		return
	}
	n.local = n.local.Reflected(normal, kind)
	n.SetDirty()
}

// Scale scales the node's local transformation by the per-axis factors.
// Only matrix-backed strategies support scaling. No-op on a scene.
func Scale[T interface {
	Transformation[T]
	Scaled(factors V, kind TransformKind) T
}, V any](n *Node[T], factors V, kind TransformKind) {
	if n.scene {
		return
	}
	n.local = n.local.Scaled(factors, kind)
	n.SetDirty()
}

// NormalizeRotation re-orthonormalizes the rotation component of the
// node's local transformation, undoing accumulated floating-point drift.
// No-op on a scene.
func NormalizeRotation[T interface {
	Transformation[T]
	Normalized() T
}](n *Node[T]) {
	if n.scene {
		return
	}
	n.local = n.local.Normalized()
	n.SetDirty()
}
