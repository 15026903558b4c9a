package ai

import (
	"testing"

	"github.com/jade-guiton/chess/chess"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := chess.ParseBoardFEN(fen)
	if err != nil {
		t.Fatalf("ParseBoardFEN(%q) failed: %v", fen, err)
	}
	return &board
}

func TestEvaluateInitialIsBalanced(t *testing.T) {
	board := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if got := Evaluate(board, chess.White); got != 0 {
		t.Errorf("initial position for white: got %d want 0", got)
	}
	if got := Evaluate(board, chess.Black); got != 0 {
		t.Errorf("initial position for black: got %d want 0", got)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	board := mustBoard(t, "3q2k1/8/8/8/8/8/8/3QQ1K1")
	if got := Evaluate(board, chess.White); got <= 0 {
		t.Errorf("extra queen should score positive for white, got %d", got)
	}
	if got := Evaluate(board, chess.Black); got >= 0 {
		t.Errorf("extra white queen should score negative for black, got %d", got)
	}
}

func TestEvaluatePrefersAdvancedPawns(t *testing.T) {
	home := mustBoard(t, "4k3/8/8/8/8/8/4P3/4K3")
	pushed := mustBoard(t, "4k3/8/4P3/8/8/8/8/4K3")
	if Evaluate(pushed, chess.White) <= Evaluate(home, chess.White) {
		t.Error("a pawn on e6 should score higher than one on e2")
	}
}

func TestIsEndgame(t *testing.T) {
	cases := []struct {
		fen   string
		color chess.Color
		want  bool
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", chess.White, false},
		{"k7/8/8/8/8/8/8/K7", chess.White, true},
		// No queen counts as endgame even with heavy material left.
		{"r3k3/8/8/8/8/8/8/4K2R", chess.White, true},
		// A queen plus a lone minor piece still counts.
		{"4k3/8/8/8/8/8/8/QN2K3", chess.White, true},
		// A queen plus a rook does not.
		{"4k3/8/8/8/8/8/8/QR2K3", chess.White, false},
	}
	for _, tc := range cases {
		board := mustBoard(t, tc.fen)
		if got := isEndgame(board, tc.color); got != tc.want {
			t.Errorf("isEndgame(%q, %v): got %v want %v", tc.fen, tc.color, got, tc.want)
		}
	}
}
