// Package rowan is a hierarchical scene graph with pluggable transformation
// strategies, cached absolute transforms, and an attachable feature system.
//
// # Scene graph
//
// Every element is a [Node], generic over its transformation strategy.
// Nodes form a tree rooted at a scene node created with [NewScene]; all
// other nodes are created attached to a parent with [New] and are owned by
// the tree for their whole lifetime:
//
//	scene := rowan.NewRigidScene2D()
//	arm := rowan.New("arm", scene)
//	hand := rowan.New("hand", arm)
//
//	rowan.Rotate2D(arm, rowan.Deg(17), rowan.Global)
//	rowan.Translate(hand, mgl64.Vec2{1, -0.3}, rowan.Local)
//
//	hand.SetClean()
//	world := hand.AbsoluteTransformation().Mat3()
//
// Mutating a node marks its whole subtree dirty; [Node.SetClean] recomputes
// cached absolute transforms top-down, ancestors strictly before
// descendants, and notifies attached features.
//
// # Transformation strategies
//
// A node's local transform is an interchangeable value type satisfying
// [Transformation]: general matrices ([Matrix2D], [Matrix3D]), rigid
// matrices with closed-form inverses ([Rigid2D], [Rigid3D]), or
// translation+rotation pairs ([TranslationRotation2D],
// [TranslationRotation3D]). Mutations that need a particular capability are
// free functions ([Translate], [Rotate2D], [Rotate3D], [Reflect], [Scale],
// [NormalizeRotation]) constrained to the strategies that support it.
//
// # Features
//
// A [Feature] is a capability attached to one node for life: cameras
// ([Camera]), collision shapes ([Collider2D], [Collider3D]), tween
// animation ([Animator], via [gween]), or ad-hoc callbacks ([FuncFeature]).
// Features opt into receiving the absolute transform, its inverse, or both
// during cleaning.
//
// # Shapes
//
// Geometric shapes and symmetric double-dispatch collision testing live in
// the rowan/shape subpackage.
//
// [gween]: https://github.com/tanema/gween
package rowan
