// Package resetset provides a clause-id set that can be cleared in O(1),
// adapted from the reference solver's internal/sat.ResetSet (used there to
// track already-seen variables during conflict analysis). That original is
// backed by a dense slice indexed by variable id; clause ids here are not
// required to be dense (I4 permits gaps from deletions), so this version
// keys off a map instead, trading array indexing for map lookups while
// keeping the same O(1)-clear timestamp trick.
package resetset

import "github.com/satkit/bce/internal/formula"

// Set tracks a set of clause ids that can be cleared without visiting every
// member, by bumping a generation counter instead of deleting entries.
type Set struct {
	addedAt   map[formula.ClauseID]uint32
	timestamp uint32
}

// New returns an empty Set.
func New() *Set {
	return &Set{addedAt: make(map[formula.ClauseID]uint32)}
}

// Contains reports whether cid was added since the last Clear.
func (s *Set) Contains(cid formula.ClauseID) bool {
	return s.addedAt[cid] == s.timestamp && s.timestamp != 0
}

// Add marks cid as present in the set.
func (s *Set) Add(cid formula.ClauseID) {
	if s.timestamp == 0 {
		s.timestamp = 1
	}
	s.addedAt[cid] = s.timestamp
}

// Clear empties the set in O(1), amortized against the occasional map
// compaction needed once the timestamp counter wraps.
func (s *Set) Clear() {
	s.timestamp++
	if s.timestamp == 0 { // overflow back to the reserved zero value
		s.addedAt = make(map[formula.ClauseID]uint32, len(s.addedAt))
		s.timestamp = 1
	}
}
