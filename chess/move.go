package chess

import "strings"

// SpecialMove is the closed set of special-move kinds a move can carry.
// Keeping it a single tagged value (rather than independent flags) keeps the
// branching in ApplyMove exhaustive.
type SpecialMove uint8

const (
	SpecialNone SpecialMove = iota
	SpecialEnPassant
	SpecialPromoteKnight
	SpecialPromoteBishop
	SpecialPromoteRook
	SpecialPromoteQueen
	SpecialCastleQueen
	SpecialCastleKing
)

// Promotion returns the promotion piece type for the four promote kinds,
// ok=false for everything else.
func (s SpecialMove) Promotion() (PieceType, bool) {
	switch s {
	case SpecialPromoteKnight:
		return PieceTypeKnight, true
	case SpecialPromoteBishop:
		return PieceTypeBishop, true
	case SpecialPromoteRook:
		return PieceTypeRook, true
	case SpecialPromoteQueen:
		return PieceTypeQueen, true
	default:
		return PieceTypeNone, false
	}
}

// Move encodes one half-move in a 32-bit value: the moved piece type, origin
// and destination squares, and the special-move tag. Moves are produced only
// by the generator; ApplyMove trusts them.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 3 bits
	moveSpecialShift = 15 // 3 bits
)

// NewMove constructs a Move value from components.
func NewMove(pt PieceType, from, to Square, special SpecialMove) Move {
	return Move(uint32(from)&0x3F |
		(uint32(to)&0x3F)<<moveToShift |
		uint32(pt)<<movePieceShift |
		uint32(special)<<moveSpecialShift)
}

// From returns the origin square of the move.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3F) }

// MovedPiece returns the colorless type of the piece being moved.
func (m Move) MovedPiece() PieceType { return PieceType((m >> movePieceShift) & 0x7) }

// Special returns the special-move tag.
func (m Move) Special() SpecialMove { return SpecialMove((m >> moveSpecialShift) & 0x7) }

// algebraic letter per piece type, empty for pawns.
func (pt PieceType) algebraic() string {
	return [...]string{"", "", "N", "B", "R", "Q", "K"}[pt]
}

// UCI returns the move in UCI wire form: origin and destination squares,
// plus a lowercase promotion letter when applicable (e.g. "e7e8q").
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if promo, ok := m.Special().Promotion(); ok {
		s += strings.ToLower(promo.algebraic())
	}
	return s
}

// String returns a compact human-readable form, e.g. "Ng1f3" or "e7e8Q".
func (m Move) String() string {
	s := m.MovedPiece().algebraic() + m.From().String() + m.To().String()
	if promo, ok := m.Special().Promotion(); ok {
		s += promo.algebraic()
	}
	return s
}
