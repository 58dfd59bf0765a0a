package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// track is one running tween and the mutation it drives.
type track[T Transformation[T]] struct {
	tween *gween.Tween
	apply func(n *Node[T], value float64)
	done  bool
}

// Animator is a feature that drives a node's transform with tweens.
// Add tracks with Track and call Update(dt) each frame; the apply callback
// receives the eased value and typically calls SetTransformation or one of
// the mutation helpers, which mark the node dirty as usual.
//
// There is no global animation manager; users call Update themselves.
// If the target node is disposed, the animator stops immediately.
type Animator[T Transformation[T]] struct {
	node   *Node[T]
	tracks []track[T]
	// Done is true once every track has finished or the node is disposed.
	Done bool
}

// NewAnimator creates an animator feature and attaches it to n.
func NewAnimator[T Transformation[T]](n *Node[T]) *Animator[T] {
	a := &Animator[T]{node: n, Done: true}
	n.AddFeature(a)
	return a
}

// Track adds a tween from begin to end over duration seconds with the
// given easing, driving apply with the eased value each Update.
func (a *Animator[T]) Track(begin, end float64, duration float32, fn ease.TweenFunc, apply func(n *Node[T], value float64)) {
	a.tracks = append(a.tracks, track[T]{
		tween: gween.New(float32(begin), float32(end), duration, fn),
		apply: apply,
	})
	a.Done = false
}

// Update advances all tracks by dt seconds and applies their values.
// Finished tracks stop applying; once all are finished Done is set.
func (a *Animator[T]) Update(dt float32) {
	if a.Done {
		return
	}
	if a.node.IsDisposed() {
		a.Done = true
		a.tracks = nil
		return
	}
	allDone := true
	for i := range a.tracks {
		tr := &a.tracks[i]
		if tr.done {
			continue
		}
		value, finished := tr.tween.Update(dt)
		tr.apply(a.node, float64(value))
		if finished {
			tr.done = true
		} else {
			allDone = false
		}
	}
	if allDone {
		a.Done = true
		a.tracks = a.tracks[:0]
	}
}

func (a *Animator[T]) Caches() Caching { return CacheNone }

func (a *Animator[T]) MarkDirty() {}

func (a *Animator[T]) Clean(T) {}

func (a *Animator[T]) CleanInverted(T) {}
