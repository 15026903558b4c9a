package chess

import "errors"

// Square represents a board cell as an index in [0, 64).
//
// The encoding is file-major: index = file*8 + rank, with file a..h mapping
// to 0..7 and rank 1..8 mapping to 0..7. Every bitboard in this package uses
// the same layout, so a whole file occupies one byte of the 64-bit mask.
type Square int

const NoSquare Square = -1

// SquareAt builds a square from file and rank indices, both in [0, 8).
func SquareAt(file, rank int) Square {
	return Square(file<<3 | rank)
}

// File returns the file index (0 = a-file).
func (s Square) File() int { return int(s) >> 3 }

// Rank returns the rank index (0 = rank 1).
func (s Square) Rank() int { return int(s) & 7 }

// shift offsets the square by files and ranks. The caller guarantees the
// result stays on the board.
func (s Square) shift(dfile, drank int) Square {
	return SquareAt(s.File()+dfile, s.Rank()+drank)
}

func parseFile(c byte) (int, bool) {
	if 'a' <= c && c <= 'h' {
		return int(c - 'a'), true
	}
	return 0, false
}

func parseRank(c byte) (int, bool) {
	if '1' <= c && c <= '8' {
		return int(c - '1'), true
	}
	return 0, false
}

// ParseSquare parses a square in algebraic notation, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.New("invalid square: must be two characters")
	}
	file, ok := parseFile(s[0])
	if !ok {
		return NoSquare, errors.New("invalid square: bad file letter")
	}
	rank, ok := parseRank(s[1])
	if !ok {
		return NoSquare, errors.New("invalid square: bad rank digit")
	}
	return SquareAt(file, rank), nil
}

// String returns the square in algebraic notation.
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}
