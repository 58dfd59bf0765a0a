package rowan

// Feature is a capability attached to a node: rendering state, collision
// shapes, cameras, animation. The graph knows nothing about a feature
// beyond these hooks.
//
// Clean and CleanInverted are called at most once per SetClean cycle, only
// when the owning node transitions from dirty to clean, and only for the
// flags Caches reports. Within one cleaning pass a feature may rely on all
// ancestor nodes' features having been cleaned already, but not on any
// ordering among features of the same node beyond attachment order.
type Feature[T Transformation[T]] interface {
	// Caches reports which derived transforms this feature wants.
	// The result must be constant for the feature's lifetime.
	Caches() Caching
	// MarkDirty is called when the owning node becomes dirty. Most
	// features ignore it; override to eagerly drop derived resources.
	MarkDirty()
	// Clean delivers the node's freshly computed absolute transform.
	Clean(absolute T)
	// CleanInverted delivers the inverse of the absolute transform.
	CleanInverted(invertedAbsolute T)
}

// FuncFeature adapts plain callbacks into a Feature. Callbacks are nil by
// default and zero cost when unused; assign them after construction.
// Handy for tests and one-off caches that do not warrant a named type.
type FuncFeature[T Transformation[T]] struct {
	// The caching flags are fixed at construction; changing them after
	// attachment breaks the at-most-once cleaning contract.
	caching Caching

	OnMarkDirty     func()
	OnClean         func(absolute T)
	OnCleanInverted func(invertedAbsolute T)
}

// NewFuncFeature creates a FuncFeature with the given caching flags and
// attaches it to n.
func NewFuncFeature[T Transformation[T]](n *Node[T], caching Caching) *FuncFeature[T] {
	f := &FuncFeature[T]{caching: caching}
	n.AddFeature(f)
	return f
}

func (f *FuncFeature[T]) Caches() Caching { return f.caching }

func (f *FuncFeature[T]) MarkDirty() {
	if f.OnMarkDirty != nil {
		f.OnMarkDirty()
	}
}

func (f *FuncFeature[T]) Clean(absolute T) {
	if f.OnClean != nil {
		f.OnClean(absolute)
	}
}

func (f *FuncFeature[T]) CleanInverted(invertedAbsolute T) {
	if f.OnCleanInverted != nil {
		f.OnCleanInverted(invertedAbsolute)
	}
}
