package tinyid

import "slices"

// Set is a collection of IDs. It satisfies Lookup.
type Set map[ID]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...ID) Set {
	ret := make(Set, len(ids))
	for _, id := range ids {
		ret[id] = struct{}{}
	}
	return ret
}

// Add inserts id and reports whether it was absent.
func (s Set) Add(id ID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Remove deletes id.
func (s Set) Remove(id ID) {
	delete(s, id)
}

// Contains reports whether id is in the set.
func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in byte order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	Sort(out)
	return out
}

// Sort orders ids in place by Compare.
func Sort(ids []ID) {
	slices.SortFunc(ids, Compare)
}
