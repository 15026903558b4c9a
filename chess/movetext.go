package chess

import "errors"

// Move text parsing errors. Syntax errors mean the string is not a move at
// all; the other two mean it is well-formed but does not select exactly one
// move from the supplied legal list.
var (
	ErrInvalidSyntax = errors.New("invalid move syntax")
	ErrAmbiguousMove = errors.New("ambiguous move")
	ErrIllegalMove   = errors.New("illegal move")
)

// ParseUCI parses a move in UCI long algebraic form ("e2e4", "e7e8q") and
// resolves it against the legal moves of the current position.
func ParseUCI(s string, legal []Move) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, ErrInvalidSyntax
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, ErrInvalidSyntax
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, ErrInvalidSyntax
	}
	promotion := PieceType(0)
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promotion = PieceTypeKnight
		case 'b':
			promotion = PieceTypeBishop
		case 'r':
			promotion = PieceTypeRook
		case 'q':
			promotion = PieceTypeQueen
		default:
			return 0, ErrInvalidSyntax
		}
	}
	for _, mov := range legal {
		if mov.From() != from || mov.To() != to {
			continue
		}
		pt, isPromo := mov.Special().Promotion()
		if isPromo != (promotion != 0) || (isPromo && pt != promotion) {
			continue
		}
		return mov, nil
	}
	return 0, ErrIllegalMove
}

// matchSAN reports whether a legal move fits the parsed SAN constraints.
func matchSAN(mov Move, pt PieceType, fromFile, fromRank int, to Square, promotion PieceType) bool {
	if mov.MovedPiece() != pt || mov.To() != to {
		return false
	}
	switch mov.Special() {
	case SpecialCastleQueen, SpecialCastleKing:
		// Castling is only ever written with its own tokens.
		return false
	}
	if fromFile != -1 && mov.From().File() != fromFile {
		return false
	}
	if fromRank != -1 && mov.From().Rank() != fromRank {
		return false
	}
	movPromo, isPromo := mov.Special().Promotion()
	if isPromo != (promotion != 0) || (isPromo && movPromo != promotion) {
		return false
	}
	return true
}

// ParseSAN parses a move in standard algebraic notation ("Nf3", "exd5",
// "cxd8=Q+", "O-O") and resolves it against the legal moves of the current
// position. Check and mate suffixes are accepted but not verified, and any
// trailing characters after a recognized move are ignored.
func ParseSAN(s string, legal []Move) (Move, error) {
	// Castling tokens first; queenside is a prefix of kingside, so it is
	// tested first.
	var castle SpecialMove
	switch {
	case len(s) >= 5 && (s[0:5] == "O-O-O" || s[0:5] == "0-0-0"):
		castle = SpecialCastleQueen
	case len(s) >= 3 && (s[0:3] == "O-O" || s[0:3] == "0-0"):
		castle = SpecialCastleKing
	}
	if castle != SpecialNone {
		for _, mov := range legal {
			if mov.Special() == castle {
				return mov, nil
			}
		}
		return 0, ErrIllegalMove
	}

	pt := PieceTypePawn
	i := 0
	if i < len(s) {
		switch s[i] {
		case 'N':
			pt = PieceTypeKnight
		case 'B':
			pt = PieceTypeBishop
		case 'R':
			pt = PieceTypeRook
		case 'Q':
			pt = PieceTypeQueen
		case 'K':
			pt = PieceTypeKing
		}
		if pt != PieceTypePawn {
			i++
		}
	}

	// Up to two coordinate groups: an optional disambiguation (file, rank,
	// or both) followed by the destination. Parse greedily, then decide
	// which group was which.
	fromFile, fromRank := -1, -1
	file1, rank1 := -1, -1
	if i < len(s) {
		if f, ok := parseFile(s[i]); ok {
			file1 = f
			i++
		}
	}
	if i < len(s) {
		if r, ok := parseRank(s[i]); ok {
			rank1 = r
			i++
		}
	}
	capture := false
	if i < len(s) && s[i] == 'x' {
		capture = true
		i++
	}
	file2, rank2 := -1, -1
	if i < len(s) {
		if f, ok := parseFile(s[i]); ok {
			file2 = f
			i++
		}
	}
	if i < len(s) {
		if r, ok := parseRank(s[i]); ok {
			rank2 = r
			i++
		}
	}

	var to Square
	switch {
	case file2 != -1 && rank2 != -1:
		fromFile, fromRank = file1, rank1
		to = SquareAt(file2, rank2)
	case file2 == -1 && rank2 == -1 && !capture && file1 != -1 && rank1 != -1:
		to = SquareAt(file1, rank1)
	default:
		return 0, ErrInvalidSyntax
	}

	promotion := PieceType(0)
	if i < len(s) && s[i] == '=' {
		i++
		if i >= len(s) {
			return 0, ErrInvalidSyntax
		}
		switch s[i] {
		case 'N':
			promotion = PieceTypeKnight
		case 'B':
			promotion = PieceTypeBishop
		case 'R':
			promotion = PieceTypeRook
		case 'Q':
			promotion = PieceTypeQueen
		default:
			return 0, ErrInvalidSyntax
		}
		i++
	}

	found := Move(0)
	count := 0
	for _, mov := range legal {
		if matchSAN(mov, pt, fromFile, fromRank, to, promotion) {
			found = mov
			count++
		}
	}
	switch count {
	case 0:
		return 0, ErrIllegalMove
	case 1:
		return found, nil
	default:
		return 0, ErrAmbiguousMove
	}
}
