package gateset

import (
	"math/rand/v2"
	"testing"

	"github.com/YuantianDing/clifquo/internal/randgen"
)

func TestAllGeneratorsCount(t *testing.T) {
	for n := 2; n <= 5; n++ {
		gens := AllGenerators(n)
		want := 9 * n * (n - 1)
		if len(gens) != want {
			t.Fatalf("n=%d: got %d generators, want %d", n, len(gens), want)
		}
	}
}

func TestGenAccessorsRoundTrip(t *testing.T) {
	g := NewGen(OpHP, OpPH, 1, 3)
	if g.OpCtrl() != OpHP {
		t.Fatalf("OpCtrl: got %v", g.OpCtrl())
	}
	if g.ICtrl() != 1 {
		t.Fatalf("ICtrl: got %d", g.ICtrl())
	}
	if g.OpNot() != OpPH {
		t.Fatalf("OpNot: got %v", g.OpNot())
	}
	if g.INot() != 3 {
		t.Fatalf("INot: got %d", g.INot())
	}
	if !g.NonNull() {
		t.Fatal("constructed generator must be non-null")
	}
}

func TestNewGenPanicsOnSameQubit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for ictrl == inot")
		}
	}()
	NewGen(OpI, OpI, 2, 2)
}

func TestRandomGeneratorsRoundTripAccessors(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 500; i++ {
		ictrl, inot := randgen.RandomQubitPair(prng, 5)
		opCtrl := allOps[randgen.RandomOp(prng)]
		opNot := allOps[randgen.RandomOp(prng)]

		g := NewGen(opCtrl, opNot, ictrl, inot)
		if g.OpCtrl() != opCtrl || g.ICtrl() != ictrl || g.OpNot() != opNot || g.INot() != inot {
			t.Fatalf("round trip mismatch for (%v,%v,%d,%d): got (%v,%v,%d,%d)",
				opCtrl, opNot, ictrl, inot, g.OpCtrl(), g.OpNot(), g.ICtrl(), g.INot())
		}
	}
}

func TestAllGeneratorsAreDistinct(t *testing.T) {
	gens := AllGenerators(3)
	seen := make(map[Gen]bool, len(gens))
	for _, g := range gens {
		if seen[g] {
			t.Fatalf("duplicate generator: %v", g)
		}
		seen[g] = true
	}
}
