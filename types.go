package rowan

// Typed aliases for the common dimension and strategy combinations, in the
// spirit of "Object2D is an object with a planar matrix transform". The
// generic types remain available for less common pairings.

type (
	// Object2D is a node with a general planar matrix transform.
	Object2D = Node[Matrix2D]
	// RigidObject2D is a node with a rigid planar transform.
	RigidObject2D = Node[Rigid2D]
	// Object3D is a node with a general spatial matrix transform.
	Object3D = Node[Matrix3D]
	// RigidObject3D is a node with a rigid spatial transform.
	RigidObject3D = Node[Rigid3D]
)

// NewScene2D creates a scene root for Object2D trees.
func NewScene2D() *Object2D { return NewScene[Matrix2D]("scene") }

// NewRigidScene2D creates a scene root for RigidObject2D trees.
func NewRigidScene2D() *RigidObject2D { return NewScene[Rigid2D]("scene") }

// NewScene3D creates a scene root for Object3D trees.
func NewScene3D() *Object3D { return NewScene[Matrix3D]("scene") }

// NewRigidScene3D creates a scene root for RigidObject3D trees.
func NewRigidScene3D() *RigidObject3D { return NewScene[Rigid3D]("scene") }
