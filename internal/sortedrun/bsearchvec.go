// Package sortedrun implements a vector that stays queryable by binary
// search after every insertion without ever fully re-sorting itself: it
// is partitioned into sorted runs whose sizes track the binary
// representation of the element count, the same way a binary counter
// carries on increment. Looking a value up costs one binary search per
// run (O(log^2 n) overall); building the final sorted output merges the
// runs once.
package sortedrun

// lesser is the ordering a BSearchVec's element type must supply. Matrix's
// canonical-form ordering is not a primitive type's natural <, so this
// package asks for a method instead of constraining on cmp.Ordered.
type lesser[T any] interface {
	Less(T) bool
}

// BSearchVec is a sorted-run vector of T.
type BSearchVec[T lesser[T]] struct {
	vec []T
}

// Len returns the number of elements inserted.
func (b *BSearchVec[T]) Len() int { return len(b.vec) }

// runBoundaries returns the sorted-run decomposition of a vector of
// length n: chunks sized after the set bits of n, largest first, so
// consecutive runs partition [0, n) front to back.
func runBoundaries(n int) [][2]int {
	if n == 0 {
		return nil
	}
	var sizes []int
	remaining := n
	for remaining > 0 {
		lsb := remaining & (-remaining)
		sizes = append(sizes, lsb)
		remaining -= lsb
	}
	for i, j := 0, len(sizes)-1; i < j; i, j = i+1, j-1 {
		sizes[i], sizes[j] = sizes[j], sizes[i]
	}
	runs := make([][2]int, len(sizes))
	start := 0
	for i, s := range sizes {
		runs[i] = [2]int{start, start + s}
		start += s
	}
	return runs
}

// equal reports a == b using only the Less ordering.
func equal[T lesser[T]](a, b T) bool { return !a.Less(b) && !b.Less(a) }

// binarySearch reports whether elem is present in the sorted slice
// vec[lo:hi].
func binarySearch[T lesser[T]](vec []T, lo, hi int, elem T) bool {
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case vec[mid].Less(elem):
			lo = mid + 1
		case elem.Less(vec[mid]):
			hi = mid
		default:
			return true
		}
	}
	return false
}

// Contains reports whether elem has been inserted, searching every run.
func (b *BSearchVec[T]) Contains(elem T) bool {
	for _, r := range runBoundaries(len(b.vec)) {
		if binarySearch(b.vec, r[0], r[1], elem) {
			return true
		}
	}
	return false
}

// mergeInPlace merges the two adjacent sorted spans vec[a:m] and
// vec[m:e] into a single sorted span vec[a:e].
func mergeInPlace[T lesser[T]](vec []T, a, m, e int) {
	left := append([]T(nil), vec[a:m]...)
	right := append([]T(nil), vec[m:e]...)
	i, j, k := 0, 0, a
	for i < len(left) && j < len(right) {
		if right[j].Less(left[i]) {
			vec[k] = right[j]
			j++
		} else {
			vec[k] = left[i]
			i++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		vec[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		vec[k] = right[j]
	}
}

// Insert appends elem as a new singleton run, then merges it backward
// into the preceding run for as long as the two runs' sizes match — the
// same carry chain a binary counter follows on increment.
func (b *BSearchVec[T]) Insert(elem T) {
	oldLen := len(b.vec)
	oldRuns := runBoundaries(oldLen)
	b.vec = append(b.vec, elem)

	end := len(b.vec)
	curStart := oldLen
	curSize := 1
	for i := len(oldRuns) - 1; i >= 0; i-- {
		r := oldRuns[i]
		sz := r[1] - r[0]
		if sz != curSize {
			break
		}
		mergeInPlace(b.vec, r[0], curStart, end)
		curStart = r[0]
		curSize += sz
	}
}

// InsertIfMissing inserts elem unless Contains(elem) already holds,
// reporting whether it was inserted.
func (b *BSearchVec[T]) InsertIfMissing(elem T) bool {
	if b.Contains(elem) {
		return false
	}
	b.Insert(elem)
	return true
}

// BuildSorted merges every remaining run into one fully sorted slice and
// returns it; it does not reset the receiver.
func (b *BSearchVec[T]) BuildSorted() []T {
	runs := runBoundaries(len(b.vec))
	for i := 1; i < len(runs); i++ {
		mergeInPlace(b.vec, 0, runs[i][0], runs[i][1])
	}
	result := make([]T, len(b.vec))
	copy(result, b.vec)
	return result
}
