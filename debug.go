package rowan

import (
	"fmt"
	"os"
)

// Debug helpers, gated behind globalDebug (see SetDebug). They take plain
// values rather than nodes so they stay free of the graph's type
// parameter.

// debugCheckDisposed panics with a descriptive message when a disposed
// node is used in a tree operation.
func debugCheckDisposed(disposed bool, name, op string) {
	if disposed {
		panic(fmt.Sprintf("rowan debug: %s on disposed node %q", op, name))
	}
}

// debugCheckClean panics when a dirty node's absolute transform is read;
// the value is stale until SetClean runs.
func debugCheckClean(dirty bool, name string) {
	if dirty {
		panic(fmt.Sprintf("rowan debug: AbsoluteTransformation on dirty node %q", name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(name string, depth int) {
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, name)
	}
}
