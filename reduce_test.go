package clifford

import (
	"testing"

	"github.com/YuantianDing/clifquo/internal/gateset"
)

func seedMatrix(n, genIdx int) Matrix {
	gens := gateset.AllGenerators(n)
	return ApplyGeneratorLeft(Identity(n), gens[genIdx%len(gens)])
}

func TestLeftReduceRowOrdersXZY(t *testing.T) {
	n := 3
	for idx := 0; idx < 20; idx++ {
		m := seedMatrix(n, idx*7+1)
		for i := 0; i < n; i++ {
			r := LeftReduceRow(m, i)
			x, z := r.XRow(i), r.ZRow(i)
			y := x.Xor(z)
			if !(x.V <= z.V && z.V <= y.V) {
				t.Fatalf("row %d not ordered: x=%v z=%v y=%v", i, x, z, y)
			}
		}
	}
}

func TestLeftReduceIdempotent(t *testing.T) {
	n := 3
	m := seedMatrix(n, 5)
	once := LeftReduce(m)
	twice := LeftReduce(once)
	if !once.Equal(twice) {
		t.Fatalf("LeftReduce not idempotent: %v != %v", once, twice)
	}
}

func TestLeftReduceRowBacktrackReproducesTarget(t *testing.T) {
	n := 3
	base := seedMatrix(n, 2)
	for _, s := range gateset.AllSym3 {
		target := ApplySym3Left(base, s, 0)
		found := LeftReduceRowBacktrack(base, target, 0)
		cand := ApplySym3Left(base, found, 0)
		if cand.GetRow(0).V != target.GetRow(0).V {
			t.Fatalf("backtrack failed for applied sym %v: got row %v, want %v", s, cand.GetRow(0), target.GetRow(0))
		}
	}
}

func TestLeftorderReduceIdempotent(t *testing.T) {
	n := 3
	m := seedMatrix(n, 9)
	once := LeftorderReduce(m)
	twice := LeftorderReduce(once)
	if !once.Equal(twice) {
		t.Fatalf("LeftorderReduce not idempotent: %v != %v", once, twice)
	}
}

func TestLeftorderReduceRowsSorted(t *testing.T) {
	n := 4
	m := seedMatrix(n, 11)
	r := LeftorderReduce(m)
	for i := 1; i < n; i++ {
		if r.GetRow(i-1).V > r.GetRow(i).V {
			t.Fatalf("rows not ascending at %d: %v > %v", i, r.GetRow(i-1), r.GetRow(i))
		}
	}
}

func TestLeftorderReduceBacktrackRoundTrip(t *testing.T) {
	n := 3
	base := seedMatrix(n, 3)
	sym := gateset.NewSym3N(n)
	for i := 0; i < n; i++ {
		sym = sym.With(i, gateset.AllSym3[(i+1)%6])
	}
	rowPerm := gateset.FromMapping([]int{1, 2, 0})

	target := ApplyCircPermLeft(ApplySym3NLeft(base, sym), rowPerm)

	leftSym, leftPerm := LeftorderReduceBacktrack(base, target)
	reconstructed := ApplyCircPermLeft(ApplySym3NLeft(base, leftSym), leftPerm.Inverse(n))
	if !reconstructed.Equal(target) {
		t.Fatalf("LeftorderReduceBacktrack round trip failed: got %v, want %v", reconstructed, target)
	}
}

func TestQuickReduceIdempotent(t *testing.T) {
	n := 3
	m := seedMatrix(n, 13)
	once := QuickReduce(m)
	twice := QuickReduce(once)
	if !once.Equal(twice) {
		t.Fatalf("QuickReduce not idempotent: %v != %v", once, twice)
	}
}

func TestQuickReduceInvariantUnderColumnPermutation(t *testing.T) {
	n := 3
	m := seedMatrix(n, 17)
	want := QuickReduce(m)
	for _, p := range allPermutations(n) {
		permuted := permuteColumns(m, p)
		if got := QuickReduce(permuted); !got.Equal(want) {
			t.Fatalf("QuickReduce not invariant under column perm %v: got %v, want %v", p, got, want)
		}
	}
}

func TestQuickReduceInvariantUnderRowSymmetry(t *testing.T) {
	n := 3
	m := seedMatrix(n, 19)
	want := QuickReduce(m)
	for _, s := range gateset.AllSym3 {
		cand := ApplySym3Left(m, s, 0)
		if got := QuickReduce(cand); !got.Equal(want) {
			t.Fatalf("QuickReduce not invariant under row symmetry %v: got %v, want %v", s, got, want)
		}
	}
}

func TestQuickReduceInvariantUnderRowPermutation(t *testing.T) {
	n := 3
	m := seedMatrix(n, 23)
	want := QuickReduce(m)
	cand := m.SwapL(0, 2)
	if !cand.CheckSymplectic() {
		t.Fatal("swapped matrix not symplectic")
	}
	if got := QuickReduce(cand); !got.Equal(want) {
		t.Fatalf("QuickReduce not invariant under row swap: got %v, want %v", got, want)
	}
}

func TestQuickReduceBacktrackReconstructsTarget(t *testing.T) {
	n := 3
	base := seedMatrix(n, 29)

	sym := gateset.NewSym3N(n)
	for i := 0; i < n; i++ {
		sym = sym.With(i, gateset.AllSym3[(i+2)%6])
	}
	rowPerm := gateset.FromMapping([]int{2, 0, 1})
	colPerm := gateset.FromMapping([]int{1, 2, 0})

	target := ApplyCircPermRight(ApplyCircPermLeft(ApplySym3NLeft(base, sym), rowPerm), colPerm)

	if !QuickReduce(base).Equal(QuickReduce(target)) {
		t.Fatal("constructed target must share base's canonical form")
	}

	leftPerm, leftSym, rightPerm := QuickReduceBacktrack(base, target)
	permutedBase := ApplyCircPermRight(base, rightPerm.Inverse(n))
	reconstructed := ApplyCircPermLeft(ApplySym3NLeft(permutedBase, leftSym), leftPerm.Inverse(n))
	if !reconstructed.Equal(target) {
		t.Fatalf("QuickReduceBacktrack reconstruction failed: got %v, want %v", reconstructed, target)
	}
}

func TestQuickReduceEqCountDividesGroupOrder(t *testing.T) {
	n := 3
	m := seedMatrix(n, 31)
	count := QuickReduceEqCount(m)
	groupOrder := factorial(n) * factorial(n) * intPow(6, n)
	if groupOrder%count != 0 {
		t.Fatalf("orbit size %d does not divide group order %d", count, groupOrder)
	}
	if count <= 0 {
		t.Fatalf("orbit size must be positive, got %d", count)
	}
}

func TestSymplecticMatrixCountKnownValues(t *testing.T) {
	cases := map[int]uint64{
		2: 720,
		3: 1451520,
	}
	for n, want := range cases {
		if got := SymplecticMatrixCount(n); got != want {
			t.Fatalf("SymplecticMatrixCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCollectEqPairsFindsRuns(t *testing.T) {
	pairs := collectEqPairs([]int{1, 2, 2, 2, 3, 4, 4})
	want := [][2]int{{1, 4}, {5, 7}}
	if len(pairs) != len(want) {
		t.Fatalf("got %v, want %v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("got %v, want %v", pairs, want)
		}
	}
}

func TestAllPermutationsCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		perms := allPermutations(n)
		if len(perms) != factorial(n) {
			t.Fatalf("n=%d: got %d permutations, want %d", n, len(perms), factorial(n))
		}
	}
}
