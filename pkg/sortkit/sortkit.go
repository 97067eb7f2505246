// Package sortkit holds stable, non-mutating sort routines.
package sortkit

import "golang.org/x/exp/constraints"

// Merge merges two ascending slices into a new ascending slice.
// Neither argument is modified. On ties the element of a comes first.
func Merge[T constraints.Ordered](a, b []T) []T {
	return MergeFunc(a, b, less[T])
}

// MergeFunc is Merge with a custom ordering.
func MergeFunc[T any](a, b []T, less func(x, y T) bool) []T {
	out := make([]T, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out = append(out, b[j])
			j++
			continue
		}
		out = append(out, a[i])
		i++
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// MergeSort returns a new ascending copy of vs.
// A nil slice yields nil.
func MergeSort[T constraints.Ordered](vs []T) []T {
	return MergeSortFunc(vs, less[T])
}

// MergeSortFunc sorts a copy of vs by less with a top-down merge sort.
// Equal elements keep their relative order.
func MergeSortFunc[T any](vs []T, less func(x, y T) bool) []T {
	if vs == nil {
		return nil
	}
	if len(vs) < 2 {
		return append(make([]T, 0, len(vs)), vs...)
	}
	mid := len(vs) / 2
	return MergeFunc(
		MergeSortFunc(vs[:mid], less),
		MergeSortFunc(vs[mid:], less),
		less,
	)
}

func less[T constraints.Ordered](x, y T) bool { return x < y }
