package chess

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Draw cutoff on the half-move clock, in half-moves since the last capture
// or pawn move.
const halfMoveCutoff = 75

// Position is the full game state: the piece placement plus everything the
// rules need beyond it. Castling and double-push eligibility are derived
// from the unmoved set, the squares whose original pawn/rook/king has never
// moved. A Position is a plain value; copying it yields a fully independent
// game state, which the search relies on (copy-on-branch, no undo).
type Position struct {
	board         Board
	unmoved       Bitboard
	epTarget      Square // NoSquare when no en-passant capture is available
	ply           int    // first half-move of the game is ply 1
	halfMoveClock int
}

// SideToMove reports which color moves next, derived from ply parity.
func (p *Position) SideToMove() Color { return Color((p.ply - 1) % 2) }

// Board gives read access to the piece placement.
func (p *Position) Board() *Board { return &p.board }

// Ply returns the half-move counter (1 at the initial position).
func (p *Position) Ply() int { return p.ply }

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// EnPassantTarget returns the current en-passant target square, or NoSquare.
func (p *Position) EnPassantTarget() Square { return p.epTarget }

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position { return *p }

// ParseFEN parses a six-field FEN string into a Position. The castling
// rights field is validated against actual king and rook placement; a FEN
// claiming impossible rights is rejected.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Split(fen, " ")
	if len(fields) != 6 {
		return nil, errors.New("invalid FEN: expected 6 fields")
	}

	board, err := ParseBoardFEN(fields[0])
	if err != nil {
		return nil, err
	}

	// Pawns still on their home rank have necessarily never moved.
	var unmoved Bitboard
	unmoved |= board.FindPiece(WhitePawn) & RankBB(1)
	unmoved |= board.FindPiece(BlackPawn) & RankBB(6)

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var color Color
			var rookFile int
			switch fields[2][i] {
			case 'K':
				color, rookFile = White, 7
			case 'Q':
				color, rookFile = White, 0
			case 'k':
				color, rookFile = Black, 7
			case 'q':
				color, rookFile = Black, 0
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
			rookPos := SquareAt(rookFile, color.relRank(0))
			kingPos := SquareAt(4, color.relRank(0))
			if !board.FindPiece(MakePiece(color, PieceTypeRook)).At(rookPos) ||
				!board.FindPiece(MakePiece(color, PieceTypeKing)).At(kingPos) {
				return nil, errors.New("invalid FEN: castling rights do not match piece placement")
			}
			unmoved |= One(rookPos) | One(kingPos)
		}
	}

	epTarget := NoSquare
	if fields[3] != "-" {
		epTarget, err = ParseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: bad en passant square")
		}
	}

	halfMoveClock, err := strconv.Atoi(fields[4])
	if err != nil || halfMoveClock < 0 {
		return nil, errors.New("invalid FEN: half-move clock is not a non-negative integer")
	}
	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil || moveNumber < 1 {
		return nil, errors.New("invalid FEN: full-move number is not a positive integer")
	}
	ply := 2*moveNumber + int(sideToMove) - 1

	return &Position{
		board:         board,
		unmoved:       unmoved,
		epTarget:      epTarget,
		ply:           ply,
		halfMoveClock: halfMoveClock,
	}, nil
}

// ToFEN produces the FEN string for the position. The castling rights field
// is derived from the unmoved set, so rights that are already unrecoverable
// are not emitted.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	sb.WriteString(p.board.ToFEN())
	sb.WriteByte(' ')
	if p.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	kw := p.unmoved.At(SquareAt(4, 0))
	kb := p.unmoved.At(SquareAt(4, 7))
	ckw := kw && p.unmoved.At(SquareAt(7, 0))
	cqw := kw && p.unmoved.At(SquareAt(0, 0))
	ckb := kb && p.unmoved.At(SquareAt(7, 7))
	cqb := kb && p.unmoved.At(SquareAt(0, 7))
	if !ckw && !cqw && !ckb && !cqb {
		sb.WriteByte('-')
	} else {
		if ckw {
			sb.WriteByte('K')
		}
		if cqw {
			sb.WriteByte('Q')
		}
		if ckb {
			sb.WriteByte('k')
		}
		if cqb {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(p.epTarget.String())

	moveNumber := (p.ply-1)/2 + 1
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(moveNumber))
	return sb.String()
}

// findKing locates the color's king. ok is false if the king is absent
// (malformed positions only); two kings of one color is a fatal error.
func (p *Position) findKing(color Color) (Square, bool) {
	bb := p.board.FindPiece(MakePiece(color, PieceTypeKing))
	if bb.Count() > 1 {
		panic("more than 1 king of the same color on board")
	}
	sq, ok := firstBit(bb)
	return Square(sq), ok
}

// attacked computes the full set of squares attacked by a color, given the
// occupancy to cast slider rays against. The same set serves check
// detection and castling-path tests.
func (p *Position) attacked(color Color, pieces Bitboard) Bitboard {
	var att Bitboard
	pawnForward := p.board.FindPiece(MakePiece(color, PieceTypePawn)).ShiftVer(color.up())
	att |= pawnForward.ShiftLeft(1) | pawnForward.ShiftRight(1)
	for it := p.board.FindPiece(MakePiece(color, PieceTypeKnight)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		att |= knightPatterns[from]
	}
	for it := p.board.FindPiece(MakePiece(color, PieceTypeBishop)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		att |= CastDiagonals(from, pieces)
	}
	for it := p.board.FindPiece(MakePiece(color, PieceTypeRook)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		att |= CastCardinals(from, pieces)
	}
	for it := p.board.FindPiece(MakePiece(color, PieceTypeQueen)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		att |= CastCardinals(from, pieces) | CastDiagonals(from, pieces)
	}
	if kingPos, ok := p.findKing(color); ok {
		att |= kingPatterns[kingPos]
	}
	return att
}

// genPawnMoves emits a pawn move, expanded into the four promotions when it
// reaches the far rank.
func genPawnMoves(out []Move, color Color, from, to Square) []Move {
	if to.Rank() == color.relRank(7) {
		return append(out,
			NewMove(PieceTypePawn, from, to, SpecialPromoteKnight),
			NewMove(PieceTypePawn, from, to, SpecialPromoteBishop),
			NewMove(PieceTypePawn, from, to, SpecialPromoteRook),
			NewMove(PieceTypePawn, from, to, SpecialPromoteQueen),
		)
	}
	return append(out, NewMove(PieceTypePawn, from, to, SpecialNone))
}

// GenPseudoLegal enumerates all moves for the side to move which obey piece
// movement rules, without checking whether the mover's own king is left in
// check. Castling is the one exception: its attack conditions are already
// verified here, so emitted castling moves are fully legal.
func (p *Position) GenPseudoLegal() []Move {
	moves := make([]Move, 0, 64)

	color := p.SideToMove()
	up, down := color.up(), -color.up()
	allies := p.board.FindColor(color)
	enemies := p.board.FindColor(color.Opponent())
	pieces := allies | enemies

	// Pawns. Forward, capture-left and capture-right sets are computed for
	// all pawns at once; origins are reconstructed by shifting back.
	pawns := p.board.FindPiece(MakePiece(color, PieceTypePawn))
	pawnForward := pawns.ShiftVer(up)
	pawnCapLeft := pawnForward.ShiftLeft(1)
	pawnCapRight := pawnForward.ShiftRight(1)
	if p.epTarget != NoSquare {
		if pawnCapLeft.At(p.epTarget) {
			moves = append(moves, NewMove(PieceTypePawn, p.epTarget.shift(1, down), p.epTarget, SpecialEnPassant))
		}
		if pawnCapRight.At(p.epTarget) {
			moves = append(moves, NewMove(PieceTypePawn, p.epTarget.shift(-1, down), p.epTarget, SpecialEnPassant))
		}
	}
	pawnForward &^= pieces
	pawnPush := pawnForward.ShiftVer(up) &^ pieces & p.unmoved.ShiftVer(2*up)
	for it := pawnForward.Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		moves = genPawnMoves(moves, color, to.shift(0, down), to)
	}
	for it := pawnPush.Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		moves = genPawnMoves(moves, color, to.shift(0, 2*down), to)
	}
	for it := (pawnCapLeft & enemies).Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		moves = genPawnMoves(moves, color, to.shift(1, down), to)
	}
	for it := (pawnCapRight & enemies).Iter(); ; {
		to, ok := it.Next()
		if !ok {
			break
		}
		moves = genPawnMoves(moves, color, to.shift(-1, down), to)
	}

	// Knights
	for it := p.board.FindPiece(MakePiece(color, PieceTypeKnight)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		for it2 := (knightPatterns[from] &^ allies).Iter(); ; {
			to, ok := it2.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(PieceTypeKnight, from, to, SpecialNone))
		}
	}

	// Sliders
	for it := p.board.FindPiece(MakePiece(color, PieceTypeBishop)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		for it2 := (CastDiagonals(from, pieces) &^ allies).Iter(); ; {
			to, ok := it2.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(PieceTypeBishop, from, to, SpecialNone))
		}
	}
	for it := p.board.FindPiece(MakePiece(color, PieceTypeRook)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		for it2 := (CastCardinals(from, pieces) &^ allies).Iter(); ; {
			to, ok := it2.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(PieceTypeRook, from, to, SpecialNone))
		}
	}
	for it := p.board.FindPiece(MakePiece(color, PieceTypeQueen)).Iter(); ; {
		from, ok := it.Next()
		if !ok {
			break
		}
		for it2 := ((CastCardinals(from, pieces) | CastDiagonals(from, pieces)) &^ allies).Iter(); ; {
			to, ok := it2.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(PieceTypeQueen, from, to, SpecialNone))
		}
	}

	// King, including castling
	if kingPos, ok := p.findKing(color); ok {
		attacked := p.attacked(color.Opponent(), pieces)
		for it := (kingPatterns[kingPos] &^ allies).Iter(); ; {
			to, ok := it.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(PieceTypeKing, kingPos, to, SpecialNone))
		}
		if p.unmoved.At(kingPos) {
			rank0 := color.relRank(0)
			queenCorner := SquareAt(0, rank0)
			kingCorner := SquareAt(7, rank0)
			// Emptiness covers every square strictly between king and rook;
			// the attack test covers the king's start, middle and end squares.
			queenBetween := Bitboard(0x0000000001010100).ShiftUp(rank0) // b,c,d files
			queenPath := Bitboard(0x0000000101010000).ShiftUp(rank0)    // c,d,e files
			kingArea := Bitboard(0x0001010100000000).ShiftUp(rank0)     // e,f,g files
			rooks := p.board.FindPiece(MakePiece(color, PieceTypeRook))
			exceptKing := pieces &^ One(kingPos)
			queenSide := p.unmoved.At(queenCorner) && rooks.At(queenCorner) && (queenBetween & pieces).None()
			kingSide := p.unmoved.At(kingCorner) && rooks.At(kingCorner) && (kingArea & exceptKing).None()
			if queenSide && (attacked & queenPath).None() {
				moves = append(moves, NewMove(PieceTypeKing, kingPos, SquareAt(2, rank0), SpecialCastleQueen))
			}
			if kingSide && (attacked & kingArea).None() {
				moves = append(moves, NewMove(PieceTypeKing, kingPos, SquareAt(6, rank0), SpecialCastleKing))
			}
		}
	}

	return moves
}

// IsInCheck reports whether the color's king square is attacked by the
// opponent. A missing king counts as being in check, so malformed positions
// fail safe.
func (p *Position) IsInCheck(color Color) bool {
	kingPos, ok := p.findKing(color)
	if !ok {
		return true
	}
	return p.attacked(color.Opponent(), p.board.AllPieces()).At(kingPos)
}

// GenLegal returns the legal moves for the side to move: the pseudo-legal
// moves minus those leaving the mover's own king in check, verified by
// applying each candidate to a cloned position. Once the half-move clock
// reaches the draw cutoff, no moves are returned.
func (p *Position) GenLegal() []Move {
	if p.halfMoveClock >= halfMoveCutoff {
		return nil
	}
	color := p.SideToMove()
	moves := p.GenPseudoLegal()
	legal := moves[:0]
	for _, mov := range moves {
		pos2 := *p
		pos2.ApplyMove(mov)
		if !pos2.IsInCheck(color) {
			legal = append(legal, mov)
		}
	}
	return legal
}

// ApplyMove advances the position by one half-move, mutating the receiver.
// Moves must come from this position's generator; a move inconsistent with
// the actual board contents is a programming error and panics.
func (p *Position) ApplyMove(mov Move) {
	color := p.SideToMove()
	if !p.board.FindPiece(MakePiece(color, mov.MovedPiece())).At(mov.From()) {
		panic("invalid move: expected piece not found on source square")
	}
	if p.board.FindColor(color).At(mov.To()) {
		panic("invalid move: own piece on target square")
	}

	// Resolve captures and the two relocation special cases first.
	capture := false
	switch mov.Special() {
	case SpecialEnPassant:
		if mov.MovedPiece() != PieceTypePawn || p.epTarget != mov.To() {
			panic("invalid en passant move")
		}
		// The captured pawn is beside the destination, not on it.
		piece := MakePiece(color.Opponent(), PieceTypePawn)
		pawnSq := SquareAt(mov.To().File(), mov.From().Rank())
		if !p.board.FindPiece(piece).At(pawnSq) {
			panic("invalid en passant: enemy pawn not found")
		}
		p.board.Remove(pawnSq, piece)
		p.unmoved &^= One(pawnSq)
		capture = true
	case SpecialCastleQueen, SpecialCastleKing:
		if mov.MovedPiece() != PieceTypeKing || !p.unmoved.At(mov.From()) {
			panic("invalid castling move")
		}
		dfile := mov.To().File() - mov.From().File()
		rank := mov.From().Rank()
		middleSq := SquareAt(mov.From().File()+dfile/2, rank)
		cornerFile := 0
		if dfile > 0 {
			cornerFile = 7
		}
		cornerSq := SquareAt(cornerFile, rank)
		rookPiece := MakePiece(color, PieceTypeRook)
		if !p.board.FindPiece(rookPiece).At(cornerSq) || !p.unmoved.At(cornerSq) {
			panic("invalid castling: rook not found or already moved")
		}
		p.board.Remove(cornerSq, rookPiece)
		p.unmoved &^= One(cornerSq)
		p.board.Add(middleSq, rookPiece)
	default:
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			piece := MakePiece(color.Opponent(), pt)
			if p.board.FindPiece(piece).At(mov.To()) {
				p.board.Remove(mov.To(), piece)
				p.unmoved &^= One(mov.To())
				capture = true
			}
		}
	}

	// A double push from an unmoved pawn exposes the skipped square to en
	// passant for exactly one reply; anything else clears the target.
	fromRank, toRank := mov.From().Rank(), mov.To().Rank()
	if mov.MovedPiece() == PieceTypePawn && p.unmoved.At(mov.From()) &&
		mov.From().File() == mov.To().File() && (toRank-fromRank == 2 || fromRank-toRank == 2) {
		p.epTarget = SquareAt(mov.From().File(), (fromRank+toRank)/2)
	} else {
		p.epTarget = NoSquare
	}

	// Move the piece, substituting on promotion.
	piece := MakePiece(color, mov.MovedPiece())
	p.board.Remove(mov.From(), piece)
	if promotion, ok := mov.Special().Promotion(); ok {
		if mov.MovedPiece() != PieceTypePawn || mov.To().Rank() != color.relRank(7) {
			panic("invalid promotion")
		}
		piece = MakePiece(color, promotion)
	}
	p.board.Add(mov.To(), piece)

	p.unmoved &^= One(mov.From()) | One(mov.To())
	p.ply++
	if !capture && mov.MovedPiece() != PieceTypePawn {
		p.halfMoveClock++
	} else {
		p.halfMoveClock = 0
	}
}

// Perft counts the leaf positions reachable in exactly depth half-moves of
// legal play, the standard move-generator correctness measure.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, mov := range p.GenLegal() {
		pos2 := *p
		pos2.ApplyMove(mov)
		nodes += Perft(&pos2, depth-1)
	}
	return nodes
}

// PerftDivide returns per-root-move leaf counts at the given depth. Useful
// for pinpointing generator disagreements.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, mov := range p.GenLegal() {
		pos2 := *p
		pos2.ApplyMove(mov)
		result[mov] = Perft(&pos2, depth-1)
	}
	return result
}
