package toolkit

import (
	"fmt"
	"math/rand/v2"
)

// RandRange returns a uniformly distributed integer in [min, max].
// It panics if min > max.
func RandRange(min, max uint64) uint64 {
	if min > max {
		panic(fmt.Sprintf("toolkit: RandRange min %d > max %d", min, max))
	}
	if min == 0 && max == ^uint64(0) {
		return rand.Uint64()
	}
	return min + rand.Uint64N(max-min+1) //#nosec G404 -- jitter only
}
