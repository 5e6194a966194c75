package clifford

import (
	"testing"

	"github.com/YuantianDing/clifquo/internal/bitvec"
	"github.com/YuantianDing/clifquo/internal/gateset"
)

func TestIdentitySymplectic(t *testing.T) {
	for n := 2; n <= MaxN; n++ {
		m := Identity(n)
		if !m.CheckSymplectic() {
			t.Fatalf("n=%d: identity not symplectic", n)
		}
		if m.CountOnes() != 2*n {
			t.Fatalf("n=%d: identity should have exactly 2n set bits, got %d", n, m.CountOnes())
		}
	}
}

func TestGeneratorsPreserveSymplecticity(t *testing.T) {
	for n := 2; n <= 4; n++ {
		m := Identity(n)
		for _, g := range gateset.AllGenerators(n) {
			left := ApplyGeneratorLeft(m, g)
			if !left.CheckSymplectic() {
				t.Fatalf("n=%d: ApplyGeneratorLeft(%v) broke symplecticity", n, g)
			}
			right := ApplyGeneratorRight(m, g)
			if !right.CheckSymplectic() {
				t.Fatalf("n=%d: ApplyGeneratorRight(%v) broke symplecticity", n, g)
			}
		}
	}
}

func TestSym3ActionsPreserveSymplecticity(t *testing.T) {
	n := 3
	m := ApplyGeneratorLeft(Identity(n), gateset.AllGenerators(n)[0])
	for _, s := range gateset.AllSym3 {
		cand := ApplySym3Left(m, s, 0)
		if !cand.CheckSymplectic() {
			t.Fatalf("ApplySym3Left(%v) broke symplecticity", s)
		}
	}
}

func TestSwapRoundTrip(t *testing.T) {
	n := 4
	m := Identity(n)
	for _, g := range gateset.AllGenerators(n) {
		m = ApplyGeneratorLeft(m, g)
		break
	}
	swapped := m.Swap(1, 2).Swap(1, 2)
	if !swapped.Equal(m) {
		t.Fatalf("double swap should be identity: got %v, want %v", swapped, m)
	}
}

func TestLessTotalOrder(t *testing.T) {
	n := 2
	a := Identity(n)
	b := ApplyGeneratorLeft(a, gateset.AllGenerators(n)[0])
	if a.Equal(b) {
		t.Fatal("distinct matrices compared equal")
	}
	if !(a.Less(b) || b.Less(a)) {
		t.Fatal("Less must totally order distinct matrices")
	}
	if a.Less(a) {
		t.Fatal("Less must be irreflexive")
	}
}

func TestColMetricCountsIdentity(t *testing.T) {
	n := 3
	m := Identity(n)
	for j := 0; j < n; j++ {
		if got := m.ColMetric(j); got != 2 {
			t.Fatalf("identity column %d: ColMetric = %d, want 2", j, got)
		}
	}
}

func TestFromRowsAndFromQubitRowsRoundTrip(t *testing.T) {
	n := 3
	src := Identity(n)
	src = ApplyGeneratorLeft(src, gateset.AllGenerators(n)[0])

	rows := make([]bitvec.Bv, 2*n)
	for i := 0; i < n; i++ {
		rows[i] = src.XRow(i)
		rows[i+n] = src.ZRow(i)
	}
	rebuilt := FromRows(n, rows)
	if !rebuilt.Equal(src) {
		t.Fatalf("FromRows round trip: got %v, want %v", rebuilt, src)
	}

	qrows := make([]bitvec.Bv, n)
	for i := 0; i < n; i++ {
		qrows[i] = src.GetRow(i)
	}
	rebuiltQ := FromQubitRows(n, qrows)
	if !rebuiltQ.Equal(src) {
		t.Fatalf("FromQubitRows round trip: got %v, want %v", rebuiltQ, src)
	}
}

func TestXColZColConsistentWithRows(t *testing.T) {
	n := 3
	m := Identity(n)
	m = ApplyGeneratorLeft(m, gateset.AllGenerators(n)[0])
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xcol := m.XCol(j)
			if xcol.Bit(uint(i)) != m.XRow(i).Bit(uint(j)) {
				t.Fatalf("XCol(%d) bit %d mismatches XRow(%d) bit %d", j, i, i, j)
			}
		}
	}
}

// ApplyCircPermRight must set column i of the result to column p(i) of m,
// the same gather permuteColumns performs directly with p's own array.
func TestApplyCircPermRightMatchesPermuteColumns(t *testing.T) {
	n := 3
	m := ApplyGeneratorLeft(Identity(n), gateset.AllGenerators(n)[0])

	p := gateset.FromMapping([]int{2, 0, 1})
	got := ApplyCircPermRight(m, p)

	gather := make([]int, n)
	for i := 0; i < n; i++ {
		gather[i] = p.At(i)
	}
	want := permuteColumns(m, gather)

	if !got.Equal(want) {
		t.Fatalf("ApplyCircPermRight mismatch: got %v, want %v", got, want)
	}
}

func TestApplyCircPermLeftInverseRoundTrip(t *testing.T) {
	n := 3
	m := ApplyGeneratorLeft(Identity(n), gateset.AllGenerators(n)[0])

	p := gateset.FromMapping([]int{1, 2, 0})
	permuted := ApplyCircPermLeft(m, p)
	back := ApplyCircPermLeft(permuted, p.Inverse(n))
	if !back.Equal(m) {
		t.Fatalf("ApplyCircPermLeft(p) then ApplyCircPermLeft(p^-1) should restore m: got %v, want %v", back, m)
	}
}
