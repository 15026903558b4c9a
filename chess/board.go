package chess

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return 1 - c }

// relRank maps a rank index to the color's point of view: rank 0 is each
// side's home rank, rank 7 its promotion rank.
func (c Color) relRank(rank int) int {
	if c == White {
		return rank
	}
	return 7 - rank
}

// up is the forward rank direction for the color.
func (c Color) up() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// MakePiece combines a side with a colorless type to produce a concrete Piece.
func MakePiece(color Color, pt PieceType) Piece {
	return Piece(uint8(pt) | uint8(color)<<3)
}

// bbIndex maps a piece to its slot in Board's twelve bitboards.
func (p Piece) bbIndex() int {
	return int(p.Color())*6 + int(p.Type()) - 1
}

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	const notation = "PNBRQK"
	ch := notation[int(p.Type())-1]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// Board is the raw piece placement: one bitboard per (color, piece type)
// pair. At most one of the twelve sets may contain any given square; the
// mutators trust their callers to preserve that.
type Board struct {
	pieces [12]Bitboard
}

// FindPiece returns the bitboard for one piece-type/color combination.
func (b *Board) FindPiece(p Piece) Bitboard {
	return b.pieces[p.bbIndex()]
}

// FindColor returns the union of all six piece sets of a color.
func (b *Board) FindColor(c Color) Bitboard {
	var sum Bitboard
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		sum |= b.FindPiece(MakePiece(c, pt))
	}
	return sum
}

// CountPieces returns how many pieces of the given kind a color has.
func (b *Board) CountPieces(c Color, pt PieceType) int {
	return b.FindPiece(MakePiece(c, pt)).Count()
}

// AllPieces returns the occupancy of the whole board.
func (b *Board) AllPieces() Bitboard {
	return b.FindColor(White) | b.FindColor(Black)
}

// Add places a piece on a square. The caller guarantees the square is empty.
func (b *Board) Add(sq Square, p Piece) {
	b.pieces[p.bbIndex()] |= One(sq)
}

// Remove takes a piece off a square.
func (b *Board) Remove(sq Square, p Piece) {
	b.pieces[p.bbIndex()] &^= One(sq)
}

// GetPieces materializes a dense 64-entry placement snapshot, NoPiece for
// empty squares.
func (b *Board) GetPieces() [64]Piece {
	var placement [64]Piece
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			p := MakePiece(c, pt)
			for it := b.FindPiece(p).Iter(); ; {
				sq, ok := it.Next()
				if !ok {
					break
				}
				if placement[sq] != NoPiece {
					panic("multiple piece types on same square")
				}
				placement[sq] = p
			}
		}
	}
	return placement
}

// ParseBoardFEN parses the piece-placement field of a FEN string (ranks 8
// down to 1, '/'-separated, digits for runs of empty files).
func ParseBoardFEN(s string) (Board, error) {
	var board Board
	rank := 8
	for _, rankField := range strings.Split(s, "/") {
		if rank == 0 {
			return Board{}, errors.New("invalid FEN: too many ranks")
		}
		rank--
		file := 0
		for i := 0; i < len(rankField); i++ {
			ch := rankField[i]
			if file >= 8 || ch >= utf8.RuneSelf {
				return Board{}, errors.New("invalid FEN: rank does not fit in 8 files")
			}
			if '1' <= ch && ch <= '8' {
				file += int(ch - '0')
			} else {
				piece := pieceFromChar(ch)
				if piece == NoPiece {
					return Board{}, errors.New("invalid FEN: unrecognized piece character")
				}
				board.Add(SquareAt(file, rank), piece)
				file++
			}
		}
		if file != 8 {
			return Board{}, errors.New("invalid FEN: rank does not have 8 files")
		}
	}
	if rank != 0 {
		return Board{}, errors.New("invalid FEN: not enough ranks")
	}
	return board, nil
}

// ToFEN produces the piece-placement FEN field for the board.
func (b *Board) ToFEN() string {
	placement := b.GetPieces()
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < 8; file++ {
			p := placement[SquareAt(file, rank)]
			if p == NoPiece {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteByte('0' + byte(blanks))
				blanks = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if blanks > 0 {
			sb.WriteByte('0' + byte(blanks))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String renders the placement rank by rank for debugging.
func (b *Board) String() string {
	placement := b.GetPieces()
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('|')
		for file := 0; file < 8; file++ {
			p := placement[SquareAt(file, rank)]
			if p == NoPiece {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(charFromPiece(p))
			}
		}
		sb.WriteByte('|')
		if rank > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
