package rowan

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func slideX(n *Node[TranslationRotation2D], value float64) {
	n.SetTransformation(TranslationRotation2D{Translation: mgl64.Vec2{value, 0}})
}

func TestAnimatorLinearTrack(t *testing.T) {
	scene := NewScene[TranslationRotation2D]("scene")
	n := New[TranslationRotation2D]("n", scene)
	anim := NewAnimator(n)

	if !anim.Done {
		t.Fatal("animator with no tracks should start done")
	}
	anim.Track(0, 10, 1, ease.Linear, slideX)
	if anim.Done {
		t.Fatal("adding a track should clear Done")
	}

	anim.Update(0.5)
	assertNearTol(t, "halfway", n.Transformation().Translation[0], 5, 1e-4)
	if anim.Done {
		t.Error("animator should still be running at the halfway point")
	}

	anim.Update(0.6)
	assertNearTol(t, "end", n.Transformation().Translation[0], 10, 1e-4)
	if !anim.Done {
		t.Error("animator should be done after the track finishes")
	}

	// Update after completion leaves the transform alone.
	n.SetTransformation(TranslationRotation2D{Translation: mgl64.Vec2{-1, 0}})
	anim.Update(0.1)
	assertNear(t, "after done", n.Transformation().Translation[0], -1)
}

func TestAnimatorMultipleTracks(t *testing.T) {
	scene := NewScene[TranslationRotation2D]("scene")
	n := New[TranslationRotation2D]("n", scene)
	anim := NewAnimator(n)

	anim.Track(0, 4, 1, ease.Linear, slideX)
	anim.Track(0, Deg(90), 2, ease.Linear, func(n *Node[TranslationRotation2D], value float64) {
		tr := n.Transformation()
		tr.Rotation = value
		n.SetTransformation(tr)
	})

	anim.Update(1)
	assertNearTol(t, "first track finished", n.Transformation().Translation[0], 4, 1e-4)
	assertNearTol(t, "second track halfway", n.Transformation().Rotation, Deg(45), 1e-4)
	if anim.Done {
		t.Error("animator must run until every track finishes")
	}

	anim.Update(1)
	assertNearTol(t, "second track finished", n.Transformation().Rotation, Deg(90), 1e-4)
	if !anim.Done {
		t.Error("animator should be done once all tracks finish")
	}
}

func TestAnimatorMarksNodeDirty(t *testing.T) {
	scene := NewScene[TranslationRotation2D]("scene")
	n := New[TranslationRotation2D]("n", scene)
	anim := NewAnimator(n)
	anim.Track(0, 10, 1, ease.Linear, slideX)

	n.SetClean()
	anim.Update(0.25)
	if !n.IsDirty() {
		t.Error("applying a track value should dirty the node")
	}
	n.SetClean()
	assertNearTol(t, "absolute follows animation",
		n.AbsoluteTransformation().Translation[0], 2.5, 1e-4)
}

func TestAnimatorStopsOnDisposedNode(t *testing.T) {
	scene := NewScene[TranslationRotation2D]("scene")
	n := New[TranslationRotation2D]("n", scene)
	anim := NewAnimator(n)
	anim.Track(0, 10, 1, ease.Linear, slideX)

	n.Dispose()
	anim.Update(0.5)

	if !anim.Done {
		t.Error("animator should stop when its node is disposed")
	}
}
