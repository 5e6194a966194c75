package tree

import (
	"fmt"
	"io"
	"strings"
)

// Tree is a sequence of byte-packed layers. Layer 0 is a single
// GroupedSpan holding the root-level bytes; for k > 0, layer k's span
// count equals layer k-1's total data-byte count, so each byte emitted
// at layer k-1 owns exactly one span of children in layer k.
type Tree struct {
	layers [][]byte
}

// NLayers returns the number of layers added so far.
func (t *Tree) NLayers() int { return len(t.layers) }

// Layer returns the raw bytes of layer i.
func (t *Tree) Layer(i int) []byte { return t.layers[i] }

// AddLayer appends a new layer built by a GroupedSpanBuilder. For every
// layer after the root, it asserts the span-count invariant: the new
// layer's span count must equal the prior layer's total data-byte count,
// since each byte of the prior layer owns exactly one span of children.
func (t *Tree) AddLayer(layer []byte) {
	if n := len(t.layers); n > 0 {
		want := GroupedSpanFrom(t.layers[n-1]).TotalBytes()
		got := GroupedSpanFrom(layer).Count()
		if got != want {
			panic(fmt.Sprintf("tree: layer %d has %d spans, want %d (prior layer's data-byte count)", n, got, want))
		}
	}
	t.layers = append(t.layers, layer)
}

// FromRootBytes builds a one-layer tree whose root spans the given bytes.
func FromRootBytes(values []byte) *Tree {
	var b GroupedSpanBuilder
	b.NewSpan()
	for _, v := range values {
		b.Add(v)
	}
	t := &Tree{}
	t.AddLayer(b.Build())
	return t
}

// Iter walks root-to-leaf paths depth-first across every layer of a Tree.
type Iter struct {
	indices []GroupedSpanIter
}

func newIndices(t *Tree, nlayers int) []GroupedSpanIter {
	idx := make([]GroupedSpanIter, nlayers)
	for i := 0; i < nlayers; i++ {
		idx[i] = NewGroupedSpanIter(GroupedSpanFrom(t.layers[i]))
	}
	return idx
}

// NewIter returns an iterator over every layer of t, positioned at the
// first leaf.
func NewIter(t *Tree) *Iter {
	it := &Iter{indices: newIndices(t, len(t.layers))}
	it.maintain()
	return it
}

// NewIterLayers returns an iterator restricted to the first nlayers
// layers of t.
func NewIterLayers(t *Tree, nlayers int) *Iter {
	if nlayers > len(t.layers) {
		nlayers = len(t.layers)
	}
	it := &Iter{indices: newIndices(t, nlayers)}
	it.maintain()
	return it
}

// Iter returns an iterator over the whole tree.
func (t *Tree) Iter() *Iter { return NewIter(t) }

// IterLayers returns an iterator restricted to the first nlayers layers.
func (t *Tree) IterLayers(nlayers int) *Iter { return NewIterLayers(t, nlayers) }

// Valid reports whether the cursor is positioned at a real leaf.
func (it *Iter) Valid() bool { return len(it.indices) > 0 && it.indices[0].Valid() }

// NLayers returns the number of layers this cursor walks.
func (it *Iter) NLayers() int { return len(it.indices) }

// At returns the byte at layer i of the current path.
func (it *Iter) At(i int) byte { return it.indices[i].Byte() }

// Path returns the full root-to-leaf byte sequence at the cursor.
func (it *Iter) Path() []byte {
	path := make([]byte, len(it.indices))
	for i, idx := range it.indices {
		path[i] = idx.Byte()
	}
	return path
}

// Check reports whether every layer's cursor is valid, a consistency
// check that should always hold while Valid is true.
func (it *Iter) Check() bool {
	if !it.Valid() {
		return true
	}
	for _, idx := range it.indices {
		if !idx.Valid() {
			return false
		}
	}
	return true
}

// maintain repeatedly repairs the cursor after an out-of-sync layer
// (one whose byte cursor ran out while a shallower layer still has
// bytes left) until every layer is consistent or the whole walk is done.
func (it *Iter) maintain() {
	for !it.maintainCheck() {
	}
}

func (it *Iter) maintainCheck() bool {
	if !it.Valid() {
		return true
	}
	for i := range it.indices {
		if !it.indices[i].Valid() {
			it.indices[i] = it.indices[i].NextSpan()
			it.increment(i)
			return false
		}
	}
	return true
}

// increment advances the deepest layer below ltLayer by one byte,
// carrying into shallower layers (and their next span) as each is
// exhausted, the way an odometer carries between digits.
func (it *Iter) increment(ltLayer int) {
	for i := ltLayer - 1; i >= 0; i-- {
		it.indices[i] = it.indices[i].Advance()
		if it.indices[i].Valid() {
			return
		}
		it.indices[i] = it.indices[i].NextSpan()
	}
}

// Next advances to the following leaf in depth-first order.
func (it *Iter) Next() {
	it.increment(len(it.indices))
	it.maintain()
}

// NextParent skips the remaining children of the deepest layer's current
// parent, advancing to the first leaf under the next one.
func (it *Iter) NextParent() {
	last := len(it.indices) - 1
	it.indices[last] = it.indices[last].NextSpan()
	it.increment(last)
	it.maintain()
}

// Count walks the whole tree and returns the number of leaves.
func (t *Tree) Count() int {
	c := 0
	for it := t.Iter(); it.Valid(); it.Next() {
		c++
	}
	return c
}

// String renders every layer as a list of bracketed spans, for
// debugging and tests.
func (t *Tree) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a human-readable dump of every layer to w.
func (t *Tree) Fprint(w io.Writer) error {
	for i, layer := range t.layers {
		if _, err := fmt.Fprintf(w, "layer %d: [", i); err != nil {
			return err
		}
		first := true
		for span := GroupedSpanFrom(layer); span.Valid(); span = span.Next() {
			if !first {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
			first = false
			if _, err := fmt.Fprintf(w, "%v", span.Current()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "]\n"); err != nil {
			return err
		}
	}
	return nil
}
