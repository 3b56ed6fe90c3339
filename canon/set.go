package canon

// Set is an unordered collection of canonical keys.
type Set map[Key]struct{}

// NewSet canonicalizes every element and collects the keys into a Set.
func NewSet(elems []any) (Set, error) {
	s := make(Set, len(elems))
	for _, e := range elems {
		k, err := Canonicalize(e)
		if err != nil {
			return nil, err
		}
		s[k] = struct{}{}
	}
	return s, nil
}

// Add inserts k into the set.
func (s Set) Add(k Key) { s[k] = struct{}{} }

// Has reports whether k is in the set.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int { return len(s) }

// Union returns a new set with every key present in s or other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the keys present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for k := range small {
		if large.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set with the keys present in exactly
// one of s and other.
func (s Set) SymmetricDifference(other Set) Set {
	out := make(Set, len(s)+len(other))
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	for k := range other {
		if !s.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the keys of s that are absent from
// other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}
