package rowan

import "math"

// TransformKind selects which side a transform mutation composes on.
// Global composes on the left (the step happens in world space), Local
// composes on the right (the step happens in the object's own space).
// The two orders produce different results for any non-commuting pair.
type TransformKind uint8

const (
	// Global applies the new transform in world space (left-composed).
	Global TransformKind = iota
	// Local applies the new transform in object space (right-composed).
	Local
)

// Caching describes which derived transforms a feature wants delivered
// during SetClean. A feature that caches nothing never receives Clean or
// CleanInverted calls.
type Caching uint8

const (
	// CacheNone opts out of cleaning entirely.
	CacheNone Caching = 0
	// CacheAbsolute requests Clean with the node's absolute transform.
	CacheAbsolute Caching = 1 << 0
	// CacheInvertedAbsolute requests CleanInverted with the inverse of the
	// node's absolute transform.
	CacheInvertedAbsolute Caching = 1 << 1
	// CacheBoth requests both hooks.
	CacheBoth = CacheAbsolute | CacheInvertedAbsolute
)

// Epsilon is the tolerance used for rigidity checks and approximate
// comparisons throughout the package.
const Epsilon = 1e-9

// Deg converts degrees to radians. All rotation angles in the API are
// radians; this keeps call sites with literal angles readable.
func Deg(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// SetDebug enables or disables debug checks for the whole package:
// use-after-dispose panics, stale-absolute reads, and tree depth warnings.
// Off by default; the checks cost a few pointer walks per operation.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// globalDebug gates the debugCheck* helpers so hot paths can skip them
// with a single branch. rowan is single-threaded, so a plain bool is fine.
var globalDebug bool
