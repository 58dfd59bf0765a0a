// Package shape provides geometric primitives and symmetric double-dispatch
// collision testing for the rowan scene graph.
//
// Shapes are generic over their vector type: instantiate with mgl64.Vec2
// for planar shapes or mgl64.Vec3 for spatial ones ([Plane] is meaningful
// only in 3D). Each kind carries a distinct prime [Type] tag; [Collides]
// multiplies the two operands' tags into a collision-free symmetric key and
// routes to the matching pairwise test in a single switch:
//
//	a := shape.NewSphere(mgl64.Vec2{0, 0}, 1)
//	b := shape.NewCapsule(mgl64.Vec2{0.5, 0}, mgl64.Vec2{2, 0}, 0.25)
//	shape.Collides[mgl64.Vec2](a, b) // true, and Collides(b, a) agrees
//
// [Group] composes member shapes under union ([Any]) or intersection
// ([All]) semantics and participates in dispatch like any other kind.
//
// Shapes attached to scene graph nodes are kept in world space by the
// rowan Collider features, which transform them during cleaning.
package shape
