// Package tree stores the layers of a breadth-first search as a grouped
// prefix tree: layer k's bytes are partitioned into length-prefixed spans
// whose count equals the total byte count of layer k-1, so each byte of
// layer k-1 owns exactly the span of layer k's bytes reachable from it.
// Root-to-leaf paths are walked depth-first without ever materializing
// parent/child pointers.
package tree

// GroupedSpan is a cursor over a byte buffer holding a sequence of
// length-prefixed spans: a size byte followed by that many data bytes,
// repeated until the buffer is exhausted.
type GroupedSpan struct {
	data []byte
}

// GroupedSpanFrom wraps b as a cursor positioned at its first span.
func GroupedSpanFrom(b []byte) GroupedSpan { return GroupedSpan{data: b} }

// Valid reports whether the cursor still has a span to read.
func (g GroupedSpan) Valid() bool { return len(g.data) > 0 }

// Last reports whether the current span is the final one in the buffer.
func (g GroupedSpan) Last() bool {
	n := int(g.data[0])
	return 1+n >= len(g.data)
}

// Current returns the data bytes of the span at the cursor.
func (g GroupedSpan) Current() []byte {
	n := int(g.data[0])
	return g.data[1 : 1+n]
}

// Next advances the cursor to the following span.
func (g GroupedSpan) Next() GroupedSpan {
	n := int(g.data[0])
	return GroupedSpan{data: g.data[1+n:]}
}

// Count returns the number of spans remaining from the cursor onward.
func (g GroupedSpan) Count() int {
	c := 0
	for cur := g; cur.Valid(); cur = cur.Next() {
		c++
	}
	return c
}

// Bytes returns the raw remaining buffer.
func (g GroupedSpan) Bytes() []byte { return g.data }

// TotalBytes returns the sum of data bytes across every span remaining
// from the cursor onward.
func (g GroupedSpan) TotalBytes() int {
	c := 0
	for cur := g; cur.Valid(); cur = cur.Next() {
		c += len(cur.Current())
	}
	return c
}

// GroupedSpanIter walks the bytes of one span at a time, and knows how to
// move on to the next span once the current one is exhausted.
type GroupedSpanIter struct {
	parent  GroupedSpan
	current []byte
}

// NewGroupedSpanIter positions an iterator at the first byte of parent's
// current span.
func NewGroupedSpanIter(parent GroupedSpan) GroupedSpanIter {
	var cur []byte
	if parent.Valid() {
		cur = parent.Current()
	}
	return GroupedSpanIter{parent: parent, current: cur}
}

// Last reports whether the byte at the cursor is the final byte of the
// final span in the buffer.
func (it GroupedSpanIter) Last() bool { return len(it.current) == 1 && it.parent.Last() }

// Finished reports whether the underlying GroupedSpan has no more spans.
func (it GroupedSpanIter) Finished() bool { return !it.parent.Valid() }

// Valid reports whether there is a byte at the cursor.
func (it GroupedSpanIter) Valid() bool { return len(it.current) != 0 }

// Byte returns the byte at the cursor.
func (it GroupedSpanIter) Byte() byte {
	return it.current[0]
}

// Advance returns the iterator moved one byte forward within the current
// span (it becomes invalid once the span is exhausted).
func (it GroupedSpanIter) Advance() GroupedSpanIter {
	return GroupedSpanIter{parent: it.parent, current: it.current[1:]}
}

// NextSpan returns the iterator repositioned at the start of the
// following span.
func (it GroupedSpanIter) NextSpan() GroupedSpanIter {
	p := it.parent.Next()
	var cur []byte
	if p.Valid() {
		cur = p.Current()
	}
	return GroupedSpanIter{parent: p, current: cur}
}

// GroupedSpanBuilder appends length-prefixed spans into a byte buffer.
type GroupedSpanBuilder struct {
	buffer    []byte
	sizeIndex int
}

// Len returns the number of bytes written so far, including size prefixes.
func (b *GroupedSpanBuilder) Len() int { return len(b.buffer) }

// NewSpan closes out the previous span (patching in its size) and opens a
// new one.
func (b *GroupedSpanBuilder) NewSpan() {
	if len(b.buffer) > 0 {
		b.buffer[b.sizeIndex] = byte(len(b.buffer) - b.sizeIndex - 1)
	}
	b.buffer = append(b.buffer, 0)
	b.sizeIndex = len(b.buffer) - 1
}

// Add appends a data byte to the current span.
func (b *GroupedSpanBuilder) Add(v byte) {
	b.buffer = append(b.buffer, v)
}

// Build patches in the final span's size and returns the finished buffer.
// The builder is left empty and ready to build another buffer.
func (b *GroupedSpanBuilder) Build() []byte {
	if len(b.buffer) == 0 {
		return nil
	}
	b.buffer[b.sizeIndex] = byte(len(b.buffer) - b.sizeIndex - 1)
	result := b.buffer
	b.buffer = nil
	b.sizeIndex = 0
	return result
}
