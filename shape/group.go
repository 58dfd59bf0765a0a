package shape

// Op selects how a Group combines its members' collision results.
type Op uint8

const (
	// Any reports a collision if at least one member collides (union).
	Any Op = iota
	// All reports a collision only if every member collides
	// (intersection).
	All
)

// Group is a composite shape. The combinator is a property of the group,
// not of the dispatcher: the same dispatch entry serves both union and
// intersection groups. An empty group collides with nothing.
type Group[V Vec[V]] struct {
	Op      Op
	Members []Shape[V]
}

func NewGroup[V Vec[V]](op Op, members ...Shape[V]) *Group[V] {
	return &Group[V]{Op: op, Members: members}
}

func (g *Group[V]) Type() Type { return TypeGroup }

// Clone deep-copies the group, cloning every member.
func (g *Group[V]) Clone() Shape[V] {
	c := &Group[V]{Op: g.Op, Members: make([]Shape[V], len(g.Members))}
	for i, m := range g.Members {
		c.Members[i] = m.Clone()
	}
	return c
}

// Transform maps every member into the corresponding member of dst, which
// must be a Group of identical length and member kinds (a Clone of this
// group, typically).
func (g *Group[V]) Transform(m Mover[V], dst Shape[V]) {
	out, ok := dst.(*Group[V])
	if !ok {
		panic("shape: transform destination is not a Group")
	}
	if len(out.Members) != len(g.Members) {
		panic("shape: transform destination Group has mismatched member count")
	}
	for i, member := range g.Members {
		member.Transform(m, out.Members[i])
	}
}

// collidesWith tests the group against a shape (possibly itself a group)
// under the group's combinator, short-circuiting where possible.
func (g *Group[V]) collidesWith(s Shape[V]) bool {
	if len(g.Members) == 0 {
		return false
	}
	for _, m := range g.Members {
		hit := Collides(m, s)
		if hit && g.Op == Any {
			return true
		}
		if !hit && g.Op == All {
			return false
		}
	}
	return g.Op == All
}
