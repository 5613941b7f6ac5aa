package random

import (
	"math/rand"
	"time"
)

// Source is the randomness used by the pickers below.
// *rand.Rand satisfies it; tests can supply a scripted sequence.
type Source interface {
	// Intn returns a non-negative pseudo-random number in [0, n)
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed means "seed from the clock".
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SelectRandomItems selects n random items from slice
// Returns indices of selected items, all distinct
func SelectRandomItems(src Source, totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	if n >= totalCount {
		// Return all indices
		indices := make([]int, totalCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	// Create slice of all indices
	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}

	// Shuffle using Fisher-Yates algorithm
	for i := len(allIndices) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		allIndices[i], allIndices[j] = allIndices[j], allIndices[i]
	}

	// Return first n indices
	return allIndices[:n]
}

// PickN returns n distinct elements of items chosen uniformly without replacement.
// When items has n or fewer elements, all of them are returned in order.
func PickN[T any](src Source, items []T, n int) []T {
	indices := SelectRandomItems(src, len(items), n)
	picked := make([]T, len(indices))
	for i, idx := range indices {
		picked[i] = items[idx]
	}
	return picked
}
