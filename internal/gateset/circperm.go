package gateset

import (
	"fmt"
	"strings"

	"github.com/YuantianDing/clifquo/internal/bitvec"
)

// unmapped is the sentinel slot value meaning "this qubit has no image".
const unmapped = 7

// CircPerm represents an injective partial map [0,5) -> [0,5), packed as
// five 3-bit slots (qubit i's image in slot i) of a 15-bit word. Slot
// value 7 means unmapped.
type CircPerm struct {
	perm uint16
}

// Unmapped returns the fully-unmapped permutation (every slot is the
// sentinel), the starting point for building one up with UpdatePermute.
func Unmapped() CircPerm { return CircPerm{perm: 0x7FFF} }

// Identity returns the identity permutation on 5 slots (qubit i maps to
// i for every i); callers restrict attention to [0,n) themselves.
func Identity() CircPerm {
	p := Unmapped()
	for i := 0; i < 5; i++ {
		p = p.UpdatePermute(i, i)
	}
	return p
}

// FromMapping builds a CircPerm where qubit i maps to mapping[i].
func FromMapping(mapping []int) CircPerm {
	p := Unmapped()
	for i, v := range mapping {
		p = p.UpdatePermute(i, v)
	}
	return p
}

// FromInverse builds a CircPerm where mapping[i] maps to i (i.e. the
// inverse of the permutation described by mapping).
func FromInverse(mapping []int) CircPerm {
	p := Unmapped()
	for i, v := range mapping {
		p = p.UpdatePermute(v, i)
	}
	return p
}

func (p CircPerm) vec() bitvec.Bv { return bitvec.New(uint64(p.perm), 15) }

// At returns the image of qubit; it panics if qubit is unmapped.
func (p CircPerm) At(qubit int) int {
	v := bitvec.Slice(p.vec(), uint(qubit*3), 3).V
	if v == unmapped {
		panic("gateset: circperm: qubit is unmapped")
	}
	return int(v)
}

// Permute returns the image of qubit and whether it is mapped at all.
func (p CircPerm) Permute(qubit int) (int, bool) {
	v := bitvec.Slice(p.vec(), uint(qubit*3), 3).V
	if v == unmapped {
		return 0, false
	}
	return int(v), true
}

// UpdatePermute returns a copy of p with qubit `from` mapped to `to`.
func (p CircPerm) UpdatePermute(from, to int) CircPerm {
	updated := p.vec().UpdateSlice(uint(from*3), bitvec.New(uint64(to), 3))
	return CircPerm{perm: uint16(updated.V)}
}

// Swapped returns p with the images of a and b exchanged.
func (p CircPerm) Swapped(a, b int) CircPerm {
	return p.UpdatePermute(a, p.At(b)).UpdatePermute(b, p.At(a))
}

// Inverse returns the inverse permutation over [0,n).
func (p CircPerm) Inverse(n int) CircPerm {
	result := Unmapped()
	for i := 0; i < n; i++ {
		result = result.UpdatePermute(p.At(i), i)
	}
	return result
}

func (p CircPerm) Equal(o CircPerm) bool { return p.perm == o.perm }

// EmitBySwap decomposes p into the transpositions a selection sort would
// use to carry p's tracking array back to the identity, calling swap(i, j)
// for each one in order. Replaying that exact sequence of position-based
// swaps against an identity-valued array reconstructs p's inverse, not p
// itself — apply_circperm callers that want p applied to a matrix's rows
// or columns must invoke this on p.Inverse(n).
func (p CircPerm) EmitBySwap(n int, swap func(a, b int)) {
	perm := p
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if perm.At(i) > perm.At(j) {
				perm = perm.Swapped(i, j)
				swap(i, j)
			}
		}
	}
}

func (p CircPerm) String() string {
	var parts []string
	for i := 0; i < 5; i++ {
		if v, ok := p.Permute(i); ok {
			parts = append(parts, fmt.Sprintf("%d:%d", i, v))
		}
	}
	return "Perm[" + strings.Join(parts, ", ") + "]"
}
