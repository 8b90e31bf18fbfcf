package validator

import "slices"

// Contains reports whether s holds an element equal to e.
func Contains[E any](s []E, e E, equal EqualFunc[E]) bool {
	return slices.ContainsFunc(s, func(x E) bool { return equal(x, e) })
}

// Missing returns the elements of want that s does not contain.
func Missing[E any](s, want []E, equal EqualFunc[E]) []E {
	var out []E
	for _, w := range want {
		if !Contains(s, w, equal) {
			out = append(out, w)
		}
	}
	return out
}

// ContainsAll reports whether s holds every element of want.
func ContainsAll[E any](s, want []E, equal EqualFunc[E]) bool {
	return len(Missing(s, want, equal)) == 0
}

// ContainsAny reports whether s holds at least one element of want.
func ContainsAny[E any](s, want []E, equal EqualFunc[E]) bool {
	for _, w := range want {
		if Contains(s, w, equal) {
			return true
		}
	}
	return false
}

// SameElements reports whether a and b hold the same elements with the same
// multiplicity, in any order.
func SameElements[E any](a, b []E, equal EqualFunc[E]) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if !used[i] && equal(x, y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Duplicates returns every element that occurs more than once in s, each
// reported once in order of its second occurrence.
func Duplicates[E any](s []E, equal EqualFunc[E]) []E {
	var out []E
	for i, x := range s {
		if Contains(out, x, equal) {
			continue
		}
		if Contains(s[:i], x, equal) {
			out = append(out, x)
		}
	}
	return out
}

// IsSorted reports whether s is in ascending order under compare.
func IsSorted[E any](s []E, compare CompareFunc[E]) bool {
	return slices.IsSortedFunc(s, compare)
}
