package rowan

import (
	"fmt"
	"io"
)

// nodeIDCounter is a plain counter (no atomic, rowan is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph element. It owns its local transformation (a value
// of the strategy type T), its children, and an ordered list of attached
// features. Nodes are created with [New] bound to a parent, or with
// [NewScene] as a root; the tree is the sole owner of every node.
type Node[T Transformation[T]] struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent   *Node[T]
	children []*Node[T]

	// Features, in attachment order.
	features []Feature[T]

	// Transforms. absolute is only valid while dirty is false.
	local    T
	absolute T

	dirty    bool
	scene    bool
	disposed bool
}

// NewScene creates a root node. A scene's transformation is permanently the
// identity: transform mutations on it are no-ops and it is never dirty.
// Destroying a scene (via Dispose) destroys the whole tree.
func NewScene[T Transformation[T]](name string) *Node[T] {
	var zero T
	n := &Node[T]{
		ID:       nextNodeID(),
		Name:     name,
		local:    zero.Identity(),
		absolute: zero.Identity(),
		scene:    true,
	}
	return n
}

// New creates a node attached to parent. Nodes cannot exist detached:
// panics if parent is nil. The new node starts dirty.
func New[T Transformation[T]](name string, parent *Node[T]) *Node[T] {
	if parent == nil {
		panic("rowan: node requires a parent")
	}
	if globalDebug {
		debugCheckDisposed(parent.disposed, parent.Name, "New (parent)")
	}
	var zero T
	n := &Node[T]{
		ID:       nextNodeID(),
		Name:     name,
		local:    zero.Identity(),
		absolute: zero.Identity(),
		dirty:    true,
		parent:   parent,
	}
	parent.children = append(parent.children, n)
	if globalDebug {
		debugCheckTreeDepth(n.Name, n.depth())
	}
	return n
}

// --- Hierarchy ---

// Parent returns the node's parent, or nil for a scene.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsScene reports whether this node is a scene root.
func (n *Node[T]) IsScene() bool { return n.scene }

// Scene returns the root of the tree this node belongs to.
func (n *Node[T]) Scene() *Node[T] {
	p := n
	for p.parent != nil {
		p = p.parent
	}
	return p
}

// Children returns the child list in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// NumChildren returns the number of children.
func (n *Node[T]) NumChildren() int { return len(n.children) }

// ChildAt returns the child at the given index.
func (n *Node[T]) ChildAt(index int) *Node[T] { return n.children[index] }

// SetParent reparents this node. The node is removed from its old parent's
// child list, appended to newParent's, and its subtree is marked dirty.
// Panics if this node is a scene, newParent is nil, or newParent is a
// descendant of this node (the reparent would create a cycle).
func (n *Node[T]) SetParent(newParent *Node[T]) {
	if n.scene {
		panic("rowan: scene cannot be reparented")
	}
	if newParent == nil {
		panic("rowan: node requires a parent")
	}
	if globalDebug {
		debugCheckDisposed(n.disposed, n.Name, "SetParent (child)")
		debugCheckDisposed(newParent.disposed, newParent.Name, "SetParent (parent)")
	}
	if newParent == n.parent {
		return
	}
	if isAncestor(n, newParent) {
		panic("rowan: reparenting would create a cycle")
	}
	n.parent.removeChild(n)
	n.parent = newParent
	newParent.children = append(newParent.children, n)
	n.SetDirty()
	if globalDebug {
		debugCheckTreeDepth(n.Name, n.depth())
	}
}

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor[T Transformation[T]](candidate, node *Node[T]) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChild removes child from n.children without touching child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node[T]) removeChild(child *Node[T]) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func (n *Node[T]) depth() int {
	d := 0
	for p := n; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Dirty / clean ---

// IsDirty reports whether the node's cached absolute transform is stale.
func (n *Node[T]) IsDirty() bool { return n.dirty }

// SetDirty marks this node and its entire subtree dirty and notifies each
// subtree node's features via MarkDirty. Idempotent: a node that is already
// dirty is skipped together with its subtree, which by invariant is already
// dirty too. A scene is never dirty.
func (n *Node[T]) SetDirty() {
	if globalDebug {
		debugCheckDisposed(n.disposed, n.Name, "SetDirty")
	}
	if n.dirty || n.scene {
		return
	}
	n.setDirty()
}

func (n *Node[T]) setDirty() {
	n.dirty = true
	for _, c := range n.children {
		if !c.dirty {
			c.setDirty()
		}
	}
	for _, f := range n.features {
		f.MarkDirty()
	}
}

// SetClean recomputes the node's absolute transform and clears its dirty
// flag. Ancestors are cleaned first, so their absolute transforms (and
// their features' caches) are valid before this node's is computed. The
// inverted absolute transform is computed at most once, and only if some
// attached feature requested it. No-op if the node is already clean.
func (n *Node[T]) SetClean() {
	if globalDebug {
		debugCheckDisposed(n.disposed, n.Name, "SetClean")
	}
	if !n.dirty {
		return
	}
	n.parent.SetClean()
	n.absolute = n.parent.absolute.Compose(n.local)

	var inverted T
	haveInverted := false
	for _, f := range n.features {
		c := f.Caches()
		if c&CacheAbsolute != 0 {
			f.Clean(n.absolute)
		}
		if c&CacheInvertedAbsolute != 0 {
			if !haveInverted {
				inverted = n.absolute.Inverted()
				haveInverted = true
			}
			f.CleanInverted(inverted)
		}
	}
	n.dirty = false
}

// --- Transform access ---

// Transformation returns the node's local transformation.
func (n *Node[T]) Transformation() T { return n.local }

// SetTransformation replaces the node's local transformation and marks the
// subtree dirty. No-op on a scene.
func (n *Node[T]) SetTransformation(t T) {
	if n.scene {
		return
	}
	n.local = t
	n.SetDirty()
}

// AbsoluteTransformation returns the node's cached absolute (world)
// transformation. Only valid after SetClean; reading it from a dirty node
// is a caller error, checked in debug mode.
func (n *Node[T]) AbsoluteTransformation() T {
	if globalDebug {
		debugCheckClean(n.dirty, n.Name)
	}
	return n.absolute
}

// --- Features ---

// AddFeature appends f to the node's feature list. Attaching a feature
// with caching flags marks the node dirty, so the next SetClean delivers
// the feature's first transforms. Feature constructors (NewCamera,
// NewCollider2D, ...) call this themselves; use it directly only for
// hand-rolled Feature implementations.
func (n *Node[T]) AddFeature(f Feature[T]) {
	if f == nil {
		panic("rowan: cannot attach nil feature")
	}
	if globalDebug {
		debugCheckDisposed(n.disposed, n.Name, "AddFeature")
	}
	n.features = append(n.features, f)
	// A caching feature only ever receives its transforms on a dirty to
	// clean transition, so attaching one to a clean node must dirty it.
	if f.Caches() != CacheNone {
		n.SetDirty()
	}
}

// RemoveFeature detaches f from the node. No-op if f is not attached.
func (n *Node[T]) RemoveFeature(f Feature[T]) {
	for i, g := range n.features {
		if g == f {
			copy(n.features[i:], n.features[i+1:])
			n.features[len(n.features)-1] = nil
			n.features = n.features[:len(n.features)-1]
			return
		}
	}
}

// Features returns the attached features in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node[T]) Features() []Feature[T] { return n.features }

// NumFeatures returns the number of attached features.
func (n *Node[T]) NumFeatures() int { return len(n.features) }

// --- Disposal ---

// Dispose detaches this node from its parent and recursively disposes its
// subtree, dropping all attached features. Using a disposed node afterwards
// is a caller error, checked in debug mode. Disposing a scene destroys the
// whole tree.
func (n *Node[T]) Dispose() {
	if n.disposed {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	n.dispose()
}

func (n *Node[T]) dispose() {
	n.disposed = true
	n.ID = 0
	for _, c := range n.children {
		c.parent = nil
		c.dispose()
	}
	n.children = nil
	for i := range n.features {
		n.features[i] = nil
	}
	n.features = nil
}

// IsDisposed reports whether this node has been disposed.
func (n *Node[T]) IsDisposed() bool { return n.disposed }

// --- Debug printing ---

// Dump writes an indented description of the subtree rooted at n, one node
// per line with its dirty state and feature count.
func Dump[T Transformation[T]](w io.Writer, n *Node[T]) {
	dump(w, n, 0)
}

func dump[T Transformation[T]](w io.Writer, n *Node[T], depth int) {
	state := "clean"
	if n.dirty {
		state = "dirty"
	}
	if n.scene {
		state = "scene"
	}
	_, _ = fmt.Fprintf(w, "%*s%s #%d [%s, %d features]\n",
		depth*2, "", n.Name, n.ID, state, len(n.features))
	for _, c := range n.children {
		dump(w, c, depth+1)
	}
}
