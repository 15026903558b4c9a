package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed into a 64-bit mask. Bit N corresponds
// to Square(N), so with the file-major square encoding each byte of the mask
// holds one file.
type Bitboard uint64

// rankPattern replicates an 8-bit rank mask across all eight files.
func rankPattern(ranks uint8) Bitboard {
	return Bitboard(0x0101010101010101 * uint64(ranks))
}

// One returns a bitboard with only the given square set.
func One(sq Square) Bitboard { return 1 << uint(sq) }

// RankBB returns the bitboard of all squares on the given rank.
func RankBB(rank int) Bitboard { return rankPattern(1 << uint(rank)) }

// FileBB returns the bitboard of all squares on the given file.
func FileBB(file int) Bitboard { return Bitboard(0xff).ShiftRight(file) }

// At reports whether the square is a member of the set.
func (b Bitboard) At(sq Square) bool { return (b>>uint(sq))&1 == 1 }

// None reports whether the set is empty.
func (b Bitboard) None() bool { return b == 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// firstBit returns the lowest set bit index, or ok=false for an empty mask.
func firstBit(b Bitboard) (int, bool) {
	idx := bits.TrailingZeros64(uint64(b))
	return idx, idx != 64
}

// lastBit returns the highest set bit index, or ok=false for an empty mask.
func lastBit(b Bitboard) (int, bool) {
	lz := bits.LeadingZeros64(uint64(b))
	return 63 - lz, lz != 64
}

// BitboardIter consumes the set bits of a bitboard from the lowest square
// index upward. It is single-use; request a fresh iterator to re-scan.
type BitboardIter struct {
	bits Bitboard
}

// Iter returns a forward-only iterator over the member squares.
func (b Bitboard) Iter() BitboardIter { return BitboardIter{b} }

// Next pops and returns the lowest remaining square. ok is false once the
// set is exhausted.
func (it *BitboardIter) Next() (Square, bool) {
	if it.bits == 0 {
		return NoSquare, false
	}
	idx := bits.TrailingZeros64(uint64(it.bits))
	it.bits &= it.bits - 1
	return Square(idx), true
}

// ==========================
// Directional shifts
// ==========================
//
// Vertical shifts move by ranks (within each file byte), horizontal shifts
// move by whole files (byte-sized steps). Bits shifted off a board edge are
// dropped, never wrapped into the neighboring file.

// ShiftUp moves every square up by the given number of ranks.
func (b Bitboard) ShiftUp(ranks int) Bitboard {
	return (b << uint(ranks)) & rankPattern(0xff<<uint(ranks))
}

// ShiftDown moves every square down by the given number of ranks.
func (b Bitboard) ShiftDown(ranks int) Bitboard {
	return (b >> uint(ranks)) & rankPattern(0xff>>uint(ranks))
}

// ShiftVer moves by ranks, with positive values going up.
func (b Bitboard) ShiftVer(ranks int) Bitboard {
	if ranks >= 0 {
		return b.ShiftUp(ranks)
	}
	return b.ShiftDown(-ranks)
}

// ShiftLeft moves every square toward the a-file.
func (b Bitboard) ShiftLeft(files int) Bitboard { return b >> uint(files*8) }

// ShiftRight moves every square toward the h-file.
func (b Bitboard) ShiftRight(files int) Bitboard { return b << uint(files*8) }

// ShiftHor moves by files, with positive values going toward the h-file.
func (b Bitboard) ShiftHor(files int) Bitboard {
	if files >= 0 {
		return b.ShiftRight(files)
	}
	return b.ShiftLeft(-files)
}

// ==========================
// Precomputed patterns
// ==========================

// Knight-jump and king-step destination sets per origin square, and the full
// diagonal/anti-diagonal line through each diagonal index. Built once at
// startup and never mutated.
var knightPatterns [64]Bitboard
var kingPatterns [64]Bitboard
var diagonals [15]Bitboard
var antidiagonals [15]Bitboard

func init() {
	for idx := 0; idx < 64; idx++ {
		sq := Square(idx)
		// Seed masks hold the jump pattern from c3 and the step pattern
		// from b2; shifting them to the origin clips at the edges.
		knightPatterns[idx] = Bitboard(0x0a1100110a).ShiftHor(sq.File() - 2).ShiftVer(sq.Rank() - 2)
		kingPatterns[idx] = Bitboard(0x070507).ShiftHor(sq.File() - 1).ShiftVer(sq.Rank() - 1)
	}
	for idx := 0; idx < 15; idx++ {
		// Main diagonal a1-h8 and main anti-diagonal a8-h1, shifted sideways.
		diagonals[idx] = Bitboard(0x8040201008040201).ShiftHor(idx - 7)
		antidiagonals[idx] = Bitboard(0x0102040810204080).ShiftHor(idx - 7)
	}
}

// ==========================
// Ray casting
// ==========================

// CastRay computes the squares visible from the origin along a line template
// (a rank, file, diagonal or anti-diagonal passing through it), stopping at
// the first occupied square in each direction. The blocking squares
// themselves are included, so captures are represented.
func CastRay(from Square, pattern, pieces Bitboard) Bitboard {
	obstacles := pattern & pieces &^ One(from)
	before := Bitboard(^uint64(0)) >> uint(63-int(from))
	after := Bitboard(^uint64(0)) << uint(from)
	low, ok := lastBit(obstacles & before)
	if !ok {
		low = 0
	}
	high, ok := firstBit(obstacles & after)
	if !ok {
		high = 63
	}
	ones := uint(1 + high - low)
	mask := Bitboard(^uint64(0)) >> (64 - ones) << uint(low)
	return pattern & mask
}

// CastDiagonals returns the diagonal and anti-diagonal slider attacks from
// the origin given the occupancy in pieces.
func CastDiagonals(from Square, pieces Bitboard) Bitboard {
	diag := CastRay(from, diagonals[7+from.File()-from.Rank()], pieces)
	antidiag := CastRay(from, antidiagonals[from.File()+from.Rank()], pieces)
	return diag | antidiag
}

// CastCardinals returns the rank and file slider attacks from the origin
// given the occupancy in pieces.
func CastCardinals(from Square, pieces Bitboard) Bitboard {
	hor := CastRay(from, RankBB(from.Rank()), pieces)
	ver := CastRay(from, FileBB(from.File()), pieces)
	return hor | ver
}

// String renders the set rank by rank for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("Bitboard(\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('|')
		for file := 0; file < 8; file++ {
			if b.At(SquareAt(file, rank)) {
				sb.WriteByte('@')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteByte(')')
	return sb.String()
}
