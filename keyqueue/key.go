package keyqueue

import (
	"fmt"
	"math"
)

// Key is a two-component priority ordered lexicographically.
type Key struct {
	K1 float64
	K2 float64
}

// InfKey is the key reported by an empty queue. Every finite key is
// smaller than it.
var InfKey = Key{K1: math.Inf(1), K2: math.Inf(1)}

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	if k.K1 != o.K1 {
		return k.K1 < o.K1
	}
	return k.K2 < o.K2
}

// String renders the key as "[k1, k2]".
func (k Key) String() string {
	return fmt.Sprintf("[%g, %g]", k.K1, k.K2)
}
