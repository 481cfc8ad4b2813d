package collections

type Set[V comparable] map[V]struct{}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Len returns the number of elements in the set
func (set Set[V]) Len() int {
	return len(set)
}
