package util

import "sort"

// SortBy returns a copy of s sorted by less, leaving s itself untouched.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// SliceIndexOf returns the index of the first occurrence of v in s, or -1
// if v is not present.
func SliceIndexOf[E comparable](v E, s []E) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// SliceRemove returns a copy of s with the first occurrence of v removed.
// If v is not present, the returned slice has the same elements as s.
func SliceRemove[E comparable](v E, s []E) []E {
	idx := SliceIndexOf(v, s)
	if idx < 0 {
		out := make([]E, len(s))
		copy(out, s)
		return out
	}
	out := make([]E, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}
