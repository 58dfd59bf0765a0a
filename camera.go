package rowan

// Camera is a feature that caches the inverse of its node's absolute
// transform, the view transform mapping world space into camera space.
// It is the canonical consumer of the InvertedAbsolute caching flag: the
// graph hands it the inverse during cleaning so render passes read it for
// free.
type Camera[T Transformation[T]] struct {
	node *Node[T]
	view T
}

// NewCamera creates a camera feature and attaches it to n.
func NewCamera[T Transformation[T]](n *Node[T]) *Camera[T] {
	c := &Camera[T]{node: n}
	var zero T
	c.view = zero.Identity()
	n.AddFeature(c)
	return c
}

// Object returns the node the camera is attached to.
func (c *Camera[T]) Object() *Node[T] { return c.node }

// View returns the camera's view transformation (world to camera). The
// owning node is cleaned first if necessary, so the result is always
// current.
func (c *Camera[T]) View() T {
	c.node.SetClean()
	return c.view
}

func (c *Camera[T]) Caches() Caching { return CacheInvertedAbsolute }

func (c *Camera[T]) MarkDirty() {}

func (c *Camera[T]) Clean(T) {}

func (c *Camera[T]) CleanInverted(invertedAbsolute T) {
	c.view = invertedAbsolute
}
