// Package clifford represents N-qubit Clifford group elements (N <= 5,
// modulo Pauli and phase) as 2N x 2N binary symplectic matrices, and
// canonicalizes them under the left row-symmetry, left row-permutation,
// and right column-permutation group action that search.go's breadth-first
// driver uses to enumerate optimal-length generator sequences.
package clifford

import (
	"fmt"

	"github.com/YuantianDing/clifquo/internal/bitvec"
	"github.com/YuantianDing/clifquo/internal/gateset"
)

// MaxN is the largest qubit count this package supports; at N=5 a row
// block is 2*5*5 = 50 bits, comfortably inside a uint64.
const MaxN = 5

// Matrix is an N-qubit symplectic matrix: a pair of N*2N-bit vectors.
// Row i (i < N) of the upper ("X") block and row i of the lower ("Z")
// block are packed width-2N entries of xrows/zrows at offset i*2N. Matrix
// is a value type, copied freely like the rest of this package's types.
type Matrix struct {
	n     int
	xrows uint64
	zrows uint64
}

// N returns the qubit count.
func (m Matrix) N() int { return m.n }

func (m Matrix) rowWidth() uint8 { return uint8(2 * m.n) }

func (m Matrix) xrowsBv() bitvec.Bv { return bitvec.New(m.xrows, uint8(m.n)*m.rowWidth()) }
func (m Matrix) zrowsBv() bitvec.Bv { return bitvec.New(m.zrows, uint8(m.n)*m.rowWidth()) }

// Identity returns the canonical identity element on n qubits: xrow(i)
// has bit i set, zrow(i) has bit n+i set.
func Identity(n int) Matrix {
	checkN(n)
	m := Matrix{n: n}
	for i := 0; i < n; i++ {
		m = m.setXRow(i, bitvec.Zero(m.rowWidth()).SetBit(uint(i), true))
		m = m.setZRow(i, bitvec.Zero(m.rowWidth()).SetBit(uint(n+i), true))
	}
	if !m.CheckSymplectic() {
		panic("clifford: identity failed symplecticity (unreachable)")
	}
	return m
}

// FromRows builds a matrix from 2n externally-prepared rows, each of
// width 2n: rows[i] is xrow(i) for i < n, rows[i] is zrow(i-n) for i >= n.
// It panics if the result is not symplectic.
func FromRows(n int, rows []bitvec.Bv) Matrix {
	checkN(n)
	if len(rows) != 2*n {
		panic("clifford: FromRows needs exactly 2n rows")
	}
	m := Matrix{n: n}
	for i := 0; i < n; i++ {
		m = m.setXRow(i, rows[i])
		m = m.setZRow(i, rows[i+n])
	}
	if !m.CheckSymplectic() {
		panic("clifford: FromRows: not symplectic")
	}
	return m
}

// FromQubitRows builds a matrix from n externally-prepared rows, each of
// width 4n, being xrow(i) concatenated with zrow(i). It panics if the
// result is not symplectic.
func FromQubitRows(n int, rows []bitvec.Bv) Matrix {
	checkN(n)
	if len(rows) != n {
		panic("clifford: FromQubitRows needs exactly n rows")
	}
	m := Matrix{n: n}
	w := m.rowWidth()
	for i, row := range rows {
		m = m.setXRow(i, bitvec.Slice(row, 0, w))
		m = m.setZRow(i, bitvec.Slice(row, uint(w), w))
	}
	if !m.CheckSymplectic() {
		panic("clifford: FromQubitRows: not symplectic")
	}
	return m
}

func checkN(n int) {
	if n < 2 || n > MaxN {
		panic("clifford: N out of range")
	}
}

// XRow returns row i of the X block.
func (m Matrix) XRow(i int) bitvec.Bv { return bitvec.Slice(m.xrowsBv(), uint(i)*uint(m.rowWidth()), m.rowWidth()) }

// ZRow returns row i of the Z block.
func (m Matrix) ZRow(i int) bitvec.Bv { return bitvec.Slice(m.zrowsBv(), uint(i)*uint(m.rowWidth()), m.rowWidth()) }

// GetRow returns xrow(i) ++ zrow(i), a Bv of width 4n.
func (m Matrix) GetRow(i int) bitvec.Bv { return m.XRow(i).Concat(m.ZRow(i)) }

// XCol collects the j-th bit of every X row followed by the j-th bit of
// every Z row into a width-2n vector.
func (m Matrix) XCol(j int) bitvec.Bv {
	result := bitvec.Zero(uint8(2 * m.n))
	for i := 0; i < m.n; i++ {
		result = result.SetBit(uint(i), m.xrows&(1<<(uint(i)*uint(m.rowWidth())+uint(j))) != 0)
		result = result.SetBit(uint(m.n+i), m.zrows&(1<<(uint(i)*uint(m.rowWidth())+uint(j))) != 0)
	}
	return result
}

// ZCol is XCol(j+n).
func (m Matrix) ZCol(j int) bitvec.Bv { return m.XCol(j + m.n) }

func (m Matrix) setXRow(i int, v bitvec.Bv) Matrix {
	m.xrows = m.xrowsBv().UpdateSlice(uint(i)*uint(m.rowWidth()), v).V
	return m
}
func (m Matrix) setZRow(i int, v bitvec.Bv) Matrix {
	m.zrows = m.zrowsBv().UpdateSlice(uint(i)*uint(m.rowWidth()), v).V
	return m
}
func (m Matrix) xorXRow(i int, v bitvec.Bv) Matrix {
	m.xrows = m.xrowsBv().XorSlice(uint(i)*uint(m.rowWidth()), v).V
	return m
}
func (m Matrix) xorZRow(i int, v bitvec.Bv) Matrix {
	m.zrows = m.zrowsBv().XorSlice(uint(i)*uint(m.rowWidth()), v).V
	return m
}

func (m Matrix) setXCol(j int, v bitvec.Bv) Matrix {
	for i := 0; i < m.n; i++ {
		pos := uint(i)*uint(m.rowWidth()) + uint(j)
		m.xrows = bitvec.Bv{V: m.xrows, K: uint8(m.n) * m.rowWidth()}.SetBit(pos, v.Bit(uint(i))).V
		m.zrows = bitvec.Bv{V: m.zrows, K: uint8(m.n) * m.rowWidth()}.SetBit(pos, v.Bit(uint(m.n+i))).V
	}
	return m
}
func (m Matrix) setZCol(j int, v bitvec.Bv) Matrix { return m.setXCol(j+m.n, v) }

func (m Matrix) xorXCol(j int, v bitvec.Bv) Matrix {
	for i := 0; i < m.n; i++ {
		pos := uint(i)*uint(m.rowWidth()) + uint(j)
		m.xrows = bitvec.Bv{V: m.xrows, K: uint8(m.n) * m.rowWidth()}.XorBit(pos, v.Bit(uint(i))).V
		m.zrows = bitvec.Bv{V: m.zrows, K: uint8(m.n) * m.rowWidth()}.XorBit(pos, v.Bit(uint(m.n+i))).V
	}
	return m
}
func (m Matrix) xorZCol(j int, v bitvec.Bv) Matrix { return m.xorXCol(j+m.n, v) }

// ColMetric is the combined Hamming weight of the OR of xcol(j)'s two
// N-halves and the OR of zcol(j)'s two N-halves: the number of qubits
// whose X or Z row has bit j set, plus the number whose X or Z row has
// bit n+j set. Metrics order columns
// before fine-grained canonicalization in quick_reduce.
func (m Matrix) ColMetric(j int) int {
	xc := m.XCol(j)
	zc := m.ZCol(j)
	n := uint8(m.n)
	xLo := bitvec.Slice(xc, 0, n)
	xHi := bitvec.Slice(xc, uint(n), n)
	zLo := bitvec.Slice(zc, 0, n)
	zHi := bitvec.Slice(zc, uint(n), n)
	return xLo.Or(xHi).Popcount() + zLo.Or(zHi).Popcount()
}

// omega is the symplectic form between two width-2n vectors: u dotted
// with v's two N-halves swapped.
func omega(u, v bitvec.Bv, n int) bool {
	lo := bitvec.Slice(v, 0, uint8(n))
	hi := bitvec.Slice(v, uint(n), uint8(n))
	rotated := hi.Concat(lo)
	return u.Dot(rotated)
}

// CheckSymplectic reports whether the symplecticity invariant holds:
// <xi, zi> = 1 for every i, and <xi, zj> = <zi, xj> = 0 for every j != i.
func (m Matrix) CheckSymplectic() bool {
	for i := 0; i < m.n; i++ {
		if !omega(m.XRow(i), m.ZRow(i), m.n) {
			return false
		}
		for j := 0; j < i; j++ {
			if omega(m.XRow(i), m.ZRow(j), m.n) || omega(m.ZRow(i), m.XRow(j), m.n) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) assertSymplectic() {
	if !m.CheckSymplectic() {
		panic("clifford: symplecticity invariant violated")
	}
}

// --- Generator actions: left action A -> G*A ---

func (m Matrix) HL(i int) Matrix {
	x, z := m.XRow(i), m.ZRow(i)
	m = m.setXRow(i, z)
	m = m.setZRow(i, x)
	m.assertSymplectic()
	return m
}

func (m Matrix) SL(i int) Matrix {
	m = m.xorZRow(i, m.XRow(i))
	m.assertSymplectic()
	return m
}

func (m Matrix) HSHL(i int) Matrix {
	m = m.xorXRow(i, m.ZRow(i))
	m.assertSymplectic()
	return m
}

func (m Matrix) CNOTL(ctrl, target int) Matrix {
	m = m.xorXRow(target, m.XRow(ctrl))
	m = m.xorZRow(ctrl, m.ZRow(target))
	m.assertSymplectic()
	return m
}

func (m Matrix) SwapL(a, b int) Matrix {
	xa, xb := m.XRow(a), m.XRow(b)
	m = m.setXRow(a, xb)
	m = m.setXRow(b, xa)
	za, zb := m.ZRow(a), m.ZRow(b)
	m = m.setZRow(a, zb)
	m = m.setZRow(b, za)
	m.assertSymplectic()
	return m
}

// --- Generator actions: right action A -> A*G ---

func (m Matrix) HR(j int) Matrix {
	x, z := m.XCol(j), m.ZCol(j)
	m = m.setXCol(j, z)
	m = m.setZCol(j, x)
	m.assertSymplectic()
	return m
}

func (m Matrix) SR(j int) Matrix {
	m = m.xorXCol(j, m.ZCol(j))
	m.assertSymplectic()
	return m
}

func (m Matrix) HSHR(j int) Matrix {
	m = m.xorZCol(j, m.XCol(j))
	m.assertSymplectic()
	return m
}

func (m Matrix) CNOTR(ctrl, target int) Matrix {
	m = m.xorXCol(ctrl, m.XCol(target))
	m = m.xorZCol(target, m.ZCol(ctrl))
	m.assertSymplectic()
	return m
}

func (m Matrix) SwapR(a, b int) Matrix {
	xa, xb := m.XCol(a), m.XCol(b)
	m = m.setXCol(a, xb)
	m = m.setXCol(b, xa)
	za, zb := m.ZCol(a), m.ZCol(b)
	m = m.setZCol(a, zb)
	m = m.setZCol(b, za)
	m.assertSymplectic()
	return m
}

// Swap applies both SwapL and SwapR at (a, b), preserving total weight.
func (m Matrix) Swap(a, b int) Matrix {
	before := m.CountOnes()
	m = m.SwapL(a, b)
	m = m.SwapR(a, b)
	if m.CountOnes() != before {
		panic("clifford: swap changed bit count (unreachable)")
	}
	return m
}

// CountOnes is the total popcount of both row blocks.
func (m Matrix) CountOnes() int { return m.xrowsBv().Popcount() + m.zrowsBv().Popcount() }

func applySingleOpL(m Matrix, op gateset.Op, i int) Matrix {
	switch op {
	case gateset.OpI:
	case gateset.OpHP:
		m = m.HL(i)
		m = m.SL(i)
	case gateset.OpPH:
		m = m.SL(i)
		m = m.HL(i)
	}
	return m
}

func applySingleOpR(m Matrix, op gateset.Op, j int) Matrix {
	switch op {
	case gateset.OpI:
	case gateset.OpHP:
		m = m.HR(j)
		m = m.SR(j)
	case gateset.OpPH:
		m = m.SR(j)
		m = m.HR(j)
	}
	return m
}

// ApplyGeneratorLeft applies g.op_ctrl at g.ictrl, g.op_not at g.inot,
// then CNOT_L(ictrl, inot), all as left actions.
func ApplyGeneratorLeft(m Matrix, g gateset.Gen) Matrix {
	if !g.NonNull() {
		panic("clifford: apply null generator")
	}
	m = applySingleOpL(m, g.OpCtrl(), g.ICtrl())
	m = applySingleOpL(m, g.OpNot(), g.INot())
	return m.CNOTL(g.ICtrl(), g.INot())
}

// ApplyGeneratorRight mirrors ApplyGeneratorLeft with right actions.
func ApplyGeneratorRight(m Matrix, g gateset.Gen) Matrix {
	if !g.NonNull() {
		panic("clifford: apply null generator")
	}
	m = applySingleOpR(m, g.OpCtrl(), g.ICtrl())
	m = applySingleOpR(m, g.OpNot(), g.INot())
	return m.CNOTR(g.ICtrl(), g.INot())
}

// ApplySym3Left applies s's leading-H/S/trailing-H sequence (bit 0 first)
// as a left action on row i.
func ApplySym3Left(m Matrix, s gateset.Sym3, i int) Matrix {
	if s.Bit(0) {
		m = m.HL(i)
	}
	if s.Bit(1) {
		m = m.SL(i)
	}
	if s.Bit(2) {
		m = m.HL(i)
	}
	return m
}

// ApplySym3NLeft applies one Sym3 element per qubit as a left action.
func ApplySym3NLeft(m Matrix, s gateset.Sym3N) Matrix {
	for i := 0; i < m.n; i++ {
		m = ApplySym3Left(m, s.At(i), i)
	}
	return m
}

// ApplyCircPermLeft returns the matrix whose row i is m's row p(i) for
// every qubit (a gather by p), realized as SwapL transpositions via
// EmitBySwap on p's inverse (EmitBySwap's swap sequence reconstructs the
// inverse of the permutation it is called on, which cancels out here).
func ApplyCircPermLeft(m Matrix, p gateset.CircPerm) Matrix {
	result := m
	p.Inverse(m.n).EmitBySwap(m.n, func(a, b int) { result = result.SwapL(a, b) })
	return result
}

// ApplyCircPermRight returns the matrix whose column i is m's column p(i)
// for every qubit, mirroring ApplyCircPermLeft with right actions.
func ApplyCircPermRight(m Matrix, p gateset.CircPerm) Matrix {
	result := m
	p.Inverse(m.n).EmitBySwap(m.n, func(a, b int) { result = result.SwapR(a, b) })
	return result
}

// Less orders matrices lexicographically by (xrows, zrows) as unsigned
// integers, the ordering quick_reduce minimizes over.
func (m Matrix) Less(o Matrix) bool {
	if m.xrows != o.xrows {
		return m.xrows < o.xrows
	}
	return m.zrows < o.zrows
}

func (m Matrix) Equal(o Matrix) bool { return m.xrows == o.xrows && m.zrows == o.zrows && m.n == o.n }

// AsRaw returns the two packed row-block integers, for hashing/storage.
func (m Matrix) AsRaw() (uint64, uint64) { return m.xrows, m.zrows }

func (m Matrix) String() string {
	xs := make([]string, m.n)
	zs := make([]string, m.n)
	for i := 0; i < m.n; i++ {
		xs[i] = fmt.Sprintf("%0*b", m.rowWidth(), m.XRow(i).V)
		zs[i] = fmt.Sprintf("%0*b", m.rowWidth(), m.ZRow(i).V)
	}
	return fmt.Sprintf("X%v Z%v", xs, zs)
}
