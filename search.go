package clifford

import (
	"sort"

	"github.com/YuantianDing/clifquo/internal/gateset"
	"github.com/YuantianDing/clifquo/internal/sortedrun"
	"github.com/YuantianDing/clifquo/internal/tree"
)

// applyPath replays a root-to-leaf generator-index path onto the identity
// matrix, left-applying each generator in path order.
func applyPath(n int, gens []gateset.Gen, path []byte) Matrix {
	m := Identity(n)
	for _, b := range path {
		m = ApplyGeneratorLeft(m, gens[b])
	}
	return m
}

func sortedDedup(xs []Matrix) []Matrix {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Less(xs[j]) })
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || !out[len(out)-1].Equal(x) {
			out = append(out, x)
		}
	}
	return out
}

func sortedContains(xs []Matrix, v Matrix) bool {
	idx := sort.Search(len(xs), func(i int) bool { return !xs[i].Less(v) })
	return idx < len(xs) && xs[idx].Equal(v)
}

// Search enumerates every optimal-length n-qubit Clifford generator
// sequence by breadth-first extension, canonicalizing each candidate via
// QuickReduce and discarding any whose canonical form was already reached
// at an equal or shorter depth. It returns the resulting prefix tree,
// whose layer k holds, for every depth-k root-to-leaf path, the surviving
// generator choices for depth k+1, and the running symplectic-count total:
// the sum of QuickReduceEqCount(R) over every canonical form R newly
// inserted at any depth, which equals SymplecticMatrixCount(n) once the
// search has run to completion (the full search enumerates every
// equivalence class exactly once).
func Search(n int) (*tree.Tree, uint64) {
	gens := gateset.AllGenerators(n)
	g := len(gens)
	if g > 255 {
		panic("clifford: too many generators for a byte-indexed tree")
	}

	values := make([]byte, g)
	for i := range values {
		values[i] = byte(i)
	}
	t := tree.FromRootBytes(values)

	var total uint64

	depth0 := QuickReduce(Identity(n))
	total += uint64(QuickReduceEqCount(depth0))
	last2Layer := sortedDedup([]Matrix{depth0})

	depth1 := make([]Matrix, g)
	for i, gen := range gens {
		depth1[i] = QuickReduce(ApplyGeneratorLeft(Identity(n), gen))
	}
	lastLayer := sortedDedup(depth1)
	for _, r := range lastLayer {
		total += uint64(QuickReduceEqCount(r))
	}

	depth := 1
	for {
		var builder tree.GroupedSpanBuilder
		var current sortedrun.BSearchVec[Matrix]

		it := t.IterLayers(depth)
		for it.Valid() {
			path := it.Path()
			mPath := applyPath(n, gens, path)
			builder.NewSpan()
			for gi, gen := range gens {
				r := QuickReduce(ApplyGeneratorLeft(mPath, gen))
				if sortedContains(lastLayer, r) || sortedContains(last2Layer, r) || current.Contains(r) {
					continue
				}
				builder.Add(byte(gi))
				current.Insert(r)
				total += uint64(QuickReduceEqCount(r))
			}
			it.Next()
		}

		t.AddLayer(builder.Build())
		last2Layer = lastLayer
		lastLayer = current.BuildSorted()
		if len(lastLayer) == 0 {
			break
		}
		depth++
	}
	return t, total
}
