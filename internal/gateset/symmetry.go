package gateset

import (
	"fmt"
	"strings"

	"github.com/YuantianDing/clifquo/internal/bitvec"
)

// Sym3 is an element of the six-element group generated by H and S acting
// on one qubit row, packed into the low 3 bits of a byte. Bit 0 selects an
// initial H, bit 1 a middle S, bit 2 a trailing H — read low bit first.
type Sym3 uint8

const (
	Sym3I   Sym3 = 0b000
	Sym3H   Sym3 = 0b001
	Sym3P   Sym3 = 0b010
	Sym3HPH Sym3 = 0b111
	Sym3HP  Sym3 = 0b011
	Sym3PH  Sym3 = 0b110
)

// AllSym3 lists the six distinct elements.
var AllSym3 = [6]Sym3{Sym3I, Sym3H, Sym3P, Sym3HPH, Sym3PH, Sym3HP}

func (s Sym3) Bv() bitvec.Bv { return bitvec.New(uint64(s), 3) }

// Bit reports the i-th encoding bit (0: leading H, 1: S, 2: trailing H).
func (s Sym3) Bit(i int) bool { return s.Bv().Bit(uint(i)) }

func (s Sym3) String() string {
	switch s {
	case Sym3I:
		return "I"
	case Sym3H:
		return "H"
	case Sym3P:
		return "P"
	case Sym3HPH:
		return "HPH"
	case Sym3HP:
		return "HP"
	case Sym3PH:
		return "PH"
	default:
		panic("gateset: invalid Sym3")
	}
}

// Sym3N packs N (<=5) Sym3 elements into 3*N bits of a uint16.
type Sym3N struct {
	data uint16
	n    int
}

// NewSym3N returns the all-identity element for n qubits.
func NewSym3N(n int) Sym3N { return Sym3N{n: n} }

func (s Sym3N) Bv() bitvec.Bv { return bitvec.New(uint64(s.data), uint8(3*s.n)) }

// At returns the symmetry element assigned to qubit i.
func (s Sym3N) At(i int) Sym3 {
	return Sym3(bitvec.Slice(s.Bv(), uint(i*3), 3).V)
}

// With returns a copy of s with qubit i's element replaced by g.
func (s Sym3N) With(i int, g Sym3) Sym3N {
	updated := s.Bv().UpdateSlice(uint(i*3), g.Bv())
	return Sym3N{data: uint16(updated.V), n: s.n}
}

func (s Sym3N) String() string {
	parts := make([]string, s.n)
	for i := 0; i < s.n; i++ {
		parts[i] = fmt.Sprintf("%d:%s", i, s.At(i))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
