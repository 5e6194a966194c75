// Package bitvec implements fixed-width bit vectors packed into a single
// machine word.
//
// This is a simplified and stripped down version of the wide, slice-backed
// bitset in github.com/bits-and-blooms/bitset, specialized to widths that
// always fit in a uint64 (the symplectic matrices this module works with
// never exceed 2*5*5 = 50 bits per row block).
package bitvec

import "math/bits"

// Bv is an ordered tuple of K bits (0 <= K <= 64), stored in the low K bits
// of V. Bits at position >= K are always zero; every constructor and
// mutator preserves that.
type Bv struct {
	V uint64
	K uint8
}

// New returns a K-bit vector holding the low K bits of v. It panics if v
// has any bit set above position K-1, mirroring the masked-construction
// assertion of the original bit-vector type.
func New(v uint64, k uint8) Bv {
	bv := Bv{V: v, K: k}
	if v&^bv.mask() != 0 {
		panic("bitvec: value exceeds width")
	}
	return bv
}

// Zero returns the all-zero K-bit vector.
func Zero(k uint8) Bv { return Bv{K: k} }

func (b Bv) mask() uint64 {
	if b.K >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << b.K) - 1
}

// Width returns K.
func (b Bv) Width() uint8 { return b.K }

func (b Bv) And(o Bv) Bv { return Bv{b.V & o.V, b.K} }
func (b Bv) Or(o Bv) Bv  { return Bv{b.V | o.V, b.K} }
func (b Bv) Xor(o Bv) Bv { return Bv{b.V ^ o.V, b.K} }
func (b Bv) Not() Bv     { return Bv{^b.V & b.mask(), b.K} }

func (b Bv) Shl(shift uint) Bv { return Bv{(b.V << shift) & b.mask(), b.K} }
func (b Bv) Shr(shift uint) Bv { return Bv{b.V >> shift, b.K} }

// Bit reports whether bit i is set.
func (b Bv) Bit(i uint) bool {
	return (b.V>>i)&1 != 0
}

// SetBit returns b with bit i forced to v.
func (b Bv) SetBit(i uint, v bool) Bv {
	if v {
		return Bv{b.V | (uint64(1) << i), b.K}
	}
	return Bv{b.V &^ (uint64(1) << i), b.K}
}

// XorBit returns b with bit i flipped when v is true.
func (b Bv) XorBit(i uint, v bool) Bv {
	if v {
		return Bv{b.V ^ (uint64(1) << i), b.K}
	}
	return b
}

// FlipBit unconditionally flips bit i.
func (b Bv) FlipBit(i uint) Bv {
	return Bv{b.V ^ (uint64(1) << i), b.K}
}

// Slice returns the M-bit sub-vector starting at bit offset start. It
// panics if start+m exceeds the source width.
func Slice(b Bv, start uint, m uint8) Bv {
	if uint(start)+uint(m) > uint(b.K) {
		panic("bitvec: slice out of bounds")
	}
	out := Bv{K: m}
	out.V = (b.V >> start) & out.mask()
	return out
}

// XorSlice XORs value (width M) into b starting at bit offset start.
func (b Bv) XorSlice(start uint, value Bv) Bv {
	if uint(start)+uint(value.K) > uint(b.K) {
		panic("bitvec: xor-slice out of bounds")
	}
	return Bv{b.V ^ (value.V << start), b.K}
}

// UpdateSlice overwrites the bits of b from start for value's width with
// value's bits.
func (b Bv) UpdateSlice(start uint, value Bv) Bv {
	if uint(start)+uint(value.K) > uint(b.K) {
		panic("bitvec: update-slice out of bounds")
	}
	clearMask := value.mask() << start
	return Bv{(b.V &^ clearMask) | (value.V << start), b.K}
}

// Concat returns b++o, b's bits occupying the low K positions and o's bits
// the high M positions: a K+M wide vector.
func (b Bv) Concat(o Bv) Bv {
	return Bv{b.V | (o.V << b.K), b.K + o.K}
}

// Popcount returns the number of set bits.
func (b Bv) Popcount() int { return bits.OnesCount64(b.V) }

// Dot is the GF(2) inner product: parity of the popcount of the AND.
func (b Bv) Dot(o Bv) bool { return b.And(o).Popcount()%2 != 0 }

func (b Bv) Equal(o Bv) bool { return b.V == o.V && b.K == o.K }
