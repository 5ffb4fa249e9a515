// Package priority centralizes this module's one use of
// github.com/rhartert/yagh, the generic binary heap the reference solver
// uses for decision-variable ordering (internal/sat/ordering.go). There, a
// mutable min-heap keyed by -score turns "pick the highest-scoring
// variable" into a repeated Pop. The same trick turns "candidates ordered
// ascending/descending by some comparable metric, tie-broken by declaration
// order" into a permutation built once by popping the heap dry here, which
// both the candidate selector (component D) and the blocking-literal
// generator (component E) need.
package priority

import "github.com/rhartert/yagh"

// Order builds the permutation of [0, len(keys)) that visits indices in
// ascending order of keys[i], ties broken by i itself (yagh.IntMap breaks
// ties by insertion order, so keys must be pushed in ascending-index
// order, which Order does). Negate keys before calling Order to get a
// descending order instead.
func Order(keys []float64) []int {
	h := yagh.New[float64](len(keys))
	h.GrowBy(len(keys))
	for i, k := range keys {
		h.Put(i, k)
	}
	out := make([]int, 0, len(keys))
	for {
		next, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, next.Elem)
	}
	return out
}
