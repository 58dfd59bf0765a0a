package rowan

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/arbordyne/rowan/shape"
)

// Collider2D attaches a planar shape to a node and keeps a world-space
// image of it current through the cleaning cycle. Collision queries force
// cleanliness first, so the tested shapes are always in world space.
type Collider2D[T Transformation2D[T]] struct {
	node  *Node[T]
	local shape.Shape[mgl64.Vec2]
	world shape.Shape[mgl64.Vec2]
}

// NewCollider2D creates a collider feature holding s (in the node's local
// space) and attaches it to n. The collider takes ownership of s.
func NewCollider2D[T Transformation2D[T]](n *Node[T], s shape.Shape[mgl64.Vec2]) *Collider2D[T] {
	c := &Collider2D[T]{node: n, local: s, world: s.Clone()}
	n.AddFeature(c)
	return c
}

// Object returns the node the collider is attached to.
func (c *Collider2D[T]) Object() *Node[T] { return c.node }

// Shape returns the collider's shape in world space, cleaning the owning
// node first if necessary.
func (c *Collider2D[T]) Shape() shape.Shape[mgl64.Vec2] {
	c.node.SetClean()
	return c.world
}

// Collides tests this collider's shape against another's, in world space.
func (c *Collider2D[T]) Collides(other *Collider2D[T]) bool {
	return shape.Collides(c.Shape(), other.Shape())
}

func (c *Collider2D[T]) Caches() Caching { return CacheAbsolute }

func (c *Collider2D[T]) MarkDirty() {}

func (c *Collider2D[T]) Clean(absolute T) {
	c.local.Transform(shape.NewAffine2(absolute.Mat3()), c.world)
}

func (c *Collider2D[T]) CleanInverted(T) {}

// Collider3D is the spatial counterpart of Collider2D.
type Collider3D[T Transformation3D[T]] struct {
	node  *Node[T]
	local shape.Shape[mgl64.Vec3]
	world shape.Shape[mgl64.Vec3]
}

// NewCollider3D creates a collider feature holding s (in the node's local
// space) and attaches it to n. The collider takes ownership of s.
func NewCollider3D[T Transformation3D[T]](n *Node[T], s shape.Shape[mgl64.Vec3]) *Collider3D[T] {
	c := &Collider3D[T]{node: n, local: s, world: s.Clone()}
	n.AddFeature(c)
	return c
}

// Object returns the node the collider is attached to.
func (c *Collider3D[T]) Object() *Node[T] { return c.node }

// Shape returns the collider's shape in world space, cleaning the owning
// node first if necessary.
func (c *Collider3D[T]) Shape() shape.Shape[mgl64.Vec3] {
	c.node.SetClean()
	return c.world
}

// Collides tests this collider's shape against another's, in world space.
func (c *Collider3D[T]) Collides(other *Collider3D[T]) bool {
	return shape.Collides(c.Shape(), other.Shape())
}

func (c *Collider3D[T]) Caches() Caching { return CacheAbsolute }

func (c *Collider3D[T]) MarkDirty() {}

func (c *Collider3D[T]) Clean(absolute T) {
	c.local.Transform(shape.NewAffine3(absolute.Mat4()), c.world)
}

func (c *Collider3D[T]) CleanInverted(T) {}
