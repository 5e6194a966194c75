package clifford

import (
	"sort"

	"github.com/YuantianDing/clifquo/internal/bitvec"
	"github.com/YuantianDing/clifquo/internal/gateset"
)

// LeftReduceRow brings row i into the unique canonical form of the
// row-symmetry action restricted to that row: after reduction, x < z < y
// where (x, z, y) = (xrow(i), zrow(i), xrow(i)^zrow(i)), sorted by a
// 3-comparison network that applies only H_L/S_L at row i.
func LeftReduceRow(m Matrix, i int) Matrix {
	x := m.XRow(i)
	z := m.ZRow(i)
	y := x.Xor(z)

	if x.V > z.V {
		x, z = z, x
		m = m.HL(i)
	}
	if z.V > y.V {
		z, y = y, z
		m = m.SL(i)
	}
	if x.V > z.V {
		x, z = z, x
		m = m.HL(i)
	}
	return m
}

// LeftReduce applies LeftReduceRow to every row.
func LeftReduce(m Matrix) Matrix {
	for i := 0; i < m.N(); i++ {
		m = LeftReduceRow(m, i)
	}
	return m
}

// LeftReduceRowBacktrackAt finds the Sym3 element s such that applying s
// as a left action to base's row baseRow reproduces target's row
// targetRow exactly, given that LeftReduceRow has already equated them.
// Exactly one of the six elements matches; it panics otherwise (an
// invariant breach, since the caller guarantees a match exists).
func LeftReduceRowBacktrackAt(base Matrix, baseRow int, target Matrix, targetRow int) gateset.Sym3 {
	want := target.GetRow(targetRow).V
	for _, s := range gateset.AllSym3 {
		cand := ApplySym3Left(base, s, baseRow)
		if cand.GetRow(baseRow).V == want {
			return s
		}
	}
	panic("clifford: left_reduce_row_backtrack: no matching Sym3 element")
}

// LeftReduceRowBacktrack is the single-row case of LeftReduceRowBacktrackAt
// where base and target are compared at the same row index.
func LeftReduceRowBacktrack(base, target Matrix, i int) gateset.Sym3 {
	return LeftReduceRowBacktrackAt(base, i, target, i)
}

// argsortRows returns, for a matrix's rows viewed as Bv(4n) = xrow++zrow,
// the permutation order such that m.GetRow(order[i]) is ascending in i.
func argsortRows(m Matrix) []int {
	order := make([]int, m.N())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.GetRow(order[a]).V < m.GetRow(order[b]).V
	})
	return order
}

// LeftorderReduce left-reduces m, then sorts its rows (each viewed as
// xrow++zrow) into ascending order.
func LeftorderReduce(m Matrix) Matrix {
	m = LeftReduce(m)
	order := argsortRows(m)
	rows := make([]bitvec.Bv, m.N())
	for i, idx := range order {
		rows[i] = m.GetRow(idx)
	}
	return FromQubitRows(m.N(), rows)
}

// LeftorderReduceBacktrack returns (S, pi) with pi*(S*base) = target,
// given LeftorderReduce(base) = LeftorderReduce(target). S is per-qubit
// row symmetry, pi is the row permutation recovered from how each
// matrix's row-sort rearranges its original row indices.
func LeftorderReduceBacktrack(base, target Matrix) (gateset.Sym3N, gateset.CircPerm) {
	n := base.N()
	baseReduced := LeftReduce(base)
	targetReduced := LeftReduce(target)

	basePerm := argsortRows(baseReduced)
	targetPerm := argsortRows(targetReduced)

	leftSym := gateset.NewSym3N(n)
	leftPerm := gateset.Unmapped()
	for i := 0; i < n; i++ {
		s := LeftReduceRowBacktrackAt(base, basePerm[i], target, targetPerm[i])
		leftSym = leftSym.With(basePerm[i], s)
		leftPerm = leftPerm.UpdatePermute(basePerm[i], targetPerm[i])
	}
	return leftSym, leftPerm
}

// permuteColumns returns m with column i replaced by m's column perm[i],
// for every i: the right action of the permutation described by perm.
func permuteColumns(m Matrix, perm []int) Matrix {
	n := m.N()
	xcols := make([]bitvec.Bv, n)
	zcols := make([]bitvec.Bv, n)
	for j := 0; j < n; j++ {
		xcols[j] = m.XCol(j)
		zcols[j] = m.ZCol(j)
	}
	result := m
	for j := 0; j < n; j++ {
		result = result.setXCol(j, xcols[perm[j]])
		result = result.setZCol(j, zcols[perm[j]])
	}
	result.assertSymplectic()
	return result
}

// allPermutations enumerates all n! permutations of [0,n) as arrays where
// perm[i] is the index assigned to position i.
func allPermutations(n int) [][]int {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	var results [][]int
	cur := append([]int(nil), elems...)
	var rec func(k int)
	rec = func(k int) {
		if k == len(cur) {
			results = append(results, append([]int(nil), cur...))
			return
		}
		for i := k; i < len(cur); i++ {
			cur[k], cur[i] = cur[i], cur[k]
			rec(k + 1)
			cur[k], cur[i] = cur[i], cur[k]
		}
	}
	rec(0)
	return results
}

// blockPermutations enumerates all permutations of the index range
// [block[0], block[1]) among themselves.
func blockPermutations(block [2]int) [][]int {
	start, end := block[0], block[1]
	size := end - start
	cur := make([]int, size)
	for i := range cur {
		cur[i] = start + i
	}
	var results [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == len(cur) {
			results = append(results, append([]int(nil), cur...))
			return
		}
		for i := k; i < len(cur); i++ {
			cur[k], cur[i] = cur[i], cur[k]
			rec(k + 1)
			cur[k], cur[i] = cur[i], cur[k]
		}
	}
	rec(0)
	return results
}

// collectEqPairs finds maximal contiguous runs of length > 1 in a sorted
// metrics array, returning their [start, end) ranges.
func collectEqPairs(metrics []int) [][2]int {
	var pairs [][2]int
	lastEq := 0
	for i := 1; i < len(metrics); i++ {
		if metrics[i] != metrics[lastEq] {
			if i-lastEq > 1 {
				pairs = append(pairs, [2]int{lastEq, i})
			}
			lastEq = i
		}
	}
	if len(metrics)-lastEq > 1 {
		pairs = append(pairs, [2]int{lastEq, len(metrics)})
	}
	return pairs
}

// enumerateBlockPermutations calls cb once per combination of independent
// permutations of each equivalence block, with identity outside them.
func enumerateBlockPermutations(blocks [][2]int, n int, cb func([]int)) {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var rec func(idx int, cur []int)
	rec = func(idx int, cur []int) {
		if idx == len(blocks) {
			cb(cur)
			return
		}
		for _, p := range blockPermutations(blocks[idx]) {
			next := append([]int(nil), cur...)
			for i, v := range p {
				next[blocks[idx][0]+i] = v
			}
			rec(idx+1, next)
		}
	}
	rec(0, base)
}

// QuickReduce is the full canonical form: the minimal representative
// under (left Sym3^N) x left-row-permutation x right-column-permutation,
// found by sorting columns by metric and then exhaustively searching
// metric-preserving column permutations for the lexicographically least
// LeftorderReduce result.
func QuickReduce(m Matrix) Matrix {
	n := m.N()
	metrics := make([]int, n)
	for j := 0; j < n; j++ {
		metrics[j] = m.ColMetric(j)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return metrics[order[a]] < metrics[order[b]] })

	sortedMetrics := make([]int, n)
	for i, oi := range order {
		sortedMetrics[i] = metrics[oi]
	}
	base := permuteColumns(m, order)

	blocks := collectEqPairs(sortedMetrics)

	best := LeftorderReduce(base)
	enumerateBlockPermutations(blocks, n, func(perm []int) {
		candidate := LeftorderReduce(permuteColumns(base, perm))
		if candidate.Less(best) {
			best = candidate
		}
	})
	return LeftorderReduce(best)
}

// QuickReduceBacktrack returns (piL, sL, piR) such that
// piL*(sL*base)*piR = target, assuming QuickReduce(base) = QuickReduce(target).
func QuickReduceBacktrack(base, target Matrix) (leftPerm gateset.CircPerm, leftSym gateset.Sym3N, rightPerm gateset.CircPerm) {
	n := base.N()
	targetLO := LeftorderReduce(target)

	var chosen []int
	found := false
	for _, p := range allPermutations(n) {
		if LeftorderReduce(permuteColumns(base, p)).Equal(targetLO) {
			chosen = p
			found = true
			break
		}
	}
	if !found {
		panic("clifford: quick_reduce_backtrack: no matching column permutation found")
	}

	permutedBase := permuteColumns(base, chosen)
	leftSym, leftPerm = LeftorderReduceBacktrack(permutedBase, target)
	rightPerm = gateset.FromInverse(chosen)
	return leftPerm, leftSym, rightPerm
}

// QuickReduceEqCount returns the size of the orbit of m under the full
// symmetry group: (n!)^2 * 6^n / |Aut(m)|, where |Aut(m)| counts column
// permutations pi with LeftorderReduce(m*pi) = LeftorderReduce(m).
func QuickReduceEqCount(m Matrix) int {
	n := m.N()
	target := LeftorderReduce(m)
	aut := 0
	for _, p := range allPermutations(n) {
		if LeftorderReduce(permuteColumns(m, p)).Equal(target) {
			aut++
		}
	}
	return factorial(n) * factorial(n) * intPow(6, n) / aut
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// SymplecticMatrixCount returns the order of the symplectic group
// Sp(2n, F2): the total number of valid n-qubit symplectic matrices.
func SymplecticMatrixCount(n int) uint64 {
	result := uint64(1) << uint(n*n)
	for i := 2; i <= 2*n; i += 2 {
		result *= (uint64(1) << uint(i)) - 1
	}
	return result
}
