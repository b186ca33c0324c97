// Package tokenset implements a compact bitset over token.Kind, used as
// first-sets, follow-sets, and recovery sets throughout the parser.
package tokenset

import "github.com/emilte/ruff/internal/token"

const wordBits = 64

// Set is a fixed-size bitset over token.Kind. The zero value is the
// empty set.
type Set struct {
	words [2]uint64 // covers token.Kind up to 127; the alphabet has 101 kinds.
}

func wordIndex(k token.Kind) (int, uint64) {
	idx := int(k) / wordBits
	bit := uint64(1) << (uint(k) % wordBits)
	return idx, bit
}

// New builds a Set containing the given kinds.
func New(kinds ...token.Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a copy of s with k added.
func (s Set) With(k token.Kind) Set {
	idx, bit := wordIndex(k)
	s.words[idx] |= bit
	return s
}

// Without returns a copy of s with k removed.
func (s Set) Without(k token.Kind) Set {
	idx, bit := wordIndex(k)
	s.words[idx] &^= bit
	return s
}

// Contains reports whether k is a member of s.
func (s Set) Contains(k token.Kind) bool {
	idx, bit := wordIndex(k)
	return s.words[idx]&bit != 0
}

// Union returns the set union of s and other.
func (s Set) Union(other Set) Set {
	var r Set
	for i := range s.words {
		r.words[i] = s.words[i] | other.words[i]
	}
	return r
}

// Intersect returns the set intersection of s and other.
func (s Set) Intersect(other Set) Set {
	var r Set
	for i := range s.words {
		r.words[i] = s.words[i] & other.words[i]
	}
	return r
}

// Subtract returns s with every member of other removed.
func (s Set) Subtract(other Set) Set {
	var r Set
	for i := range s.words {
		r.words[i] = s.words[i] &^ other.words[i]
	}
	return r
}

// Empty reports whether s has no members.
func (s Set) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}
