// Package ai provides move-picking agents for the chess package: a static
// evaluator, a fixed-depth negamax search, and an asynchronous wrapper for
// driving an agent from an interactive loop.
package ai

import "github.com/jade-guiton/chess/chess"

// Score is a position evaluation in centipawns, from the perspective of one
// side. Higher is better for that side.
type Score int32

const (
	// MaxScore is the checkmate score; all real evaluations fall strictly
	// inside (-MaxScore, MaxScore).
	MaxScore  Score = 1000000
	DrawScore Score = 0
)

// Piece-square tables, adapted from
// https://www.chessprogramming.org/Simplified_Evaluation_Function
// Each group of 8 values is one file, ranks 1 to 8, from white's
// perspective; table values are scaled by 5 centipawns.

var pawnTable = [64]int8{
	0, 1, 1, 0, 1, 2, 10, 0,
	0, 2, -1, 0, 1, 2, 10, 0,
	0, 2, -2, 0, 2, 4, 10, 0,
	0, -4, 0, 4, 5, 6, 10, 0,
	0, -4, 0, 4, 5, 6, 10, 0,
	0, 2, -2, 0, 2, 4, 10, 0,
	0, 2, -1, 0, 1, 2, 10, 0,
	0, 1, 1, 0, 1, 2, 10, 0,
}

var knightTable = [64]int8{
	-10, -8, -6, -6, -6, -6, -8, -10,
	-8, -4, 1, 0, 1, 0, -4, -8,
	-6, 0, 2, 3, 3, 2, 0, -6,
	-6, 1, 3, 4, 4, 3, 0, -6,
	-6, 1, 3, 4, 4, 3, 0, -6,
	-6, 0, 2, 3, 3, 2, 0, -6,
	-8, -4, 1, 0, 1, 0, -4, -8,
	-10, -8, -6, -6, -6, -6, -8, -10,
}

var bishopTable = [64]int8{
	-4, -2, -2, -2, -2, -2, -2, -4,
	-2, 1, 2, 0, 1, 0, 0, -2,
	-2, 0, 2, 2, 1, 1, 0, -2,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-2, 0, 2, 2, 1, 1, 0, -2,
	-2, 1, 2, 0, 1, 0, 0, -2,
	-4, -2, -2, -2, -2, -2, -2, -4,
}

var rookTable = [64]int8{
	0, -1, -1, -1, -1, -1, 1, 0,
	0, 0, 0, 0, 0, 0, 2, 0,
	0, 0, 0, 0, 0, 0, 2, 0,
	1, 0, 0, 0, 0, 0, 2, 0,
	1, 0, 0, 0, 0, 0, 2, 0,
	0, 0, 0, 0, 0, 0, 2, 0,
	0, 0, 0, 0, 0, 0, 2, 0,
	0, -1, -1, -1, -1, -1, 1, 0,
}

var queenTable = [64]int8{
	-4, -2, -2, 0, -1, -2, -2, -4,
	-2, 0, 1, 0, 0, 0, 0, -2,
	-2, 1, 1, 1, 1, 1, 0, -2,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-2, 0, 1, 1, 1, 1, 0, -2,
	-2, 0, 0, 0, 0, 0, 0, -2,
	-4, -2, -2, -1, -1, -2, -2, -4,
}

var kingTable = [64]int8{
	4, 4, -2, -4, -6, -6, -6, -6,
	6, 4, -4, -6, -8, -8, -8, -8,
	2, 0, -4, -6, -8, -8, -8, -8,
	0, 0, -4, -8, -10, -10, -10, -10,
	0, 0, -4, -8, -10, -10, -10, -10,
	2, 0, -4, -6, -8, -8, -8, -8,
	6, 4, -4, -6, -8, -8, -8, -8,
	4, 4, -2, -4, -6, -6, -6, -6,
}

var kingEndgameTable = [64]int8{
	-10, -6, -6, -6, -6, -6, -6, -10,
	-6, -6, -2, -2, -2, -2, -4, -8,
	-6, 0, 4, 6, 6, 4, -2, -6,
	-6, 0, 6, 8, 8, 6, 0, -4,
	-6, 0, 6, 8, 8, 6, 0, -4,
	-6, 0, 4, 6, 6, 4, -2, -6,
	-6, -6, -2, -2, -2, -2, -4, -8,
	-10, -6, -6, -6, -6, -6, -6, -10,
}

// evalMaterial sums base plus table bonus over every piece of the given
// kind. Tables are laid out from white's perspective, so black squares are
// rank-mirrored before lookup.
func evalMaterial(board *chess.Board, piece chess.Piece, base Score, table *[64]int8) Score {
	var val Score
	for it := board.FindPiece(piece).Iter(); ; {
		sq, ok := it.Next()
		if !ok {
			break
		}
		if piece.Color() == chess.Black {
			sq = chess.SquareAt(sq.File(), 7-sq.Rank())
		}
		val += base + 5*Score(table[sq])
	}
	return val
}

func evalSide(board *chess.Board, color chess.Color, endgame bool) Score {
	kt := &kingTable
	if endgame {
		kt = &kingEndgameTable
	}
	var val Score
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypePawn), 100, &pawnTable)
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypeKnight), 320, &knightTable)
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypeBishop), 330, &bishopTable)
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypeRook), 500, &rookTable)
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypeQueen), 900, &queenTable)
	val += evalMaterial(board, chess.MakePiece(color, chess.PieceTypeKing), 20000, kt)
	return val
}

// isEndgame reports whether the color's remaining material qualifies as an
// endgame: no queen, or at most one minor piece and nothing else.
func isEndgame(board *chess.Board, color chess.Color) bool {
	queens := board.CountPieces(color, chess.PieceTypeQueen)
	minor := board.CountPieces(color, chess.PieceTypeKnight) +
		board.CountPieces(color, chess.PieceTypeBishop)
	other := board.CountPieces(color, chess.PieceTypePawn) +
		board.CountPieces(color, chess.PieceTypeRook)
	return queens == 0 || (minor <= 1 && other == 0)
}

// Evaluate statically scores the board from the given color's perspective.
// The endgame determination for the king table is made once, for the scored
// color, and applied to both sides.
func Evaluate(board *chess.Board, color chess.Color) Score {
	endgame := isEndgame(board, color)
	return evalSide(board, color, endgame) - evalSide(board, color.Opponent(), endgame)
}
