package ai

import "github.com/jade-guiton/chess/chess"

// negamax searches to the given depth with a fail-hard alpha-beta window
// (min, max) and returns the score from the side to move's perspective.
// Children are generated pseudo-legally; hanging the king loses its full
// material value, which dominates every other term.
func negamax(pos *chess.Position, depth int, min, max Score) Score {
	color := pos.SideToMove()
	if depth == 0 {
		return Evaluate(pos.Board(), color)
	}
	moves := pos.GenPseudoLegal()
	if len(moves) == 0 {
		if pos.IsInCheck(color) {
			return -MaxScore // checkmate
		}
		return DrawScore // stalemate
	}
	curMax := min
	for _, mov := range moves {
		pos2 := pos.Clone()
		pos2.ApplyMove(mov)
		score := -negamax(&pos2, depth-1, -max, -curMax)
		if score > curMax {
			curMax = score
			if curMax >= max {
				return max
			}
		}
	}
	return curMax
}
