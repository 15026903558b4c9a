package ai

import (
	"testing"

	"github.com/jade-guiton/chess/chess"
)

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return pos
}

func TestNegamaxDepthZeroIsStaticEval(t *testing.T) {
	pos := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	got := negamax(pos, 0, -MaxScore, MaxScore)
	want := Evaluate(pos.Board(), pos.SideToMove())
	if got != want {
		t.Errorf("depth 0: got %d want %d", got, want)
	}
}

func TestNegamaxRespectsWindow(t *testing.T) {
	pos := mustPosition(t, chess.FENStartPos)
	// With a null-width window the search must fail hard at the bound.
	if got := negamax(pos, 2, 0, 0); got != 0 {
		t.Errorf("null window: got %d want 0", got)
	}
	if got := negamax(pos, 2, -MaxScore, MaxScore); got < -MaxScore || got > MaxScore {
		t.Errorf("score %d outside full window", got)
	}
}

func TestSearchAgentTakesHangingQueen(t *testing.T) {
	pos := mustPosition(t, "3q2k1/8/8/8/8/8/8/3R2K1 w - - 0 1")
	agent := NewSearchAgent(1)
	mov := agent.PickMove(pos, pos.GenLegal())
	if got := mov.UCI(); got != "d1d8" {
		t.Errorf("depth 1 should grab the queen, picked %s", got)
	}
}

func TestSearchAgentFindsMateInOne(t *testing.T) {
	pos := mustPosition(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	agent := NewSearchAgent(3)
	mov := agent.PickMove(pos, pos.GenLegal())
	if got := mov.UCI(); got != "a1a8" {
		t.Errorf("depth 3 should find the back-rank mate, picked %s", got)
	}
}

func TestSearchAgentAvoidsLosingPiece(t *testing.T) {
	// The knight on d4 is attacked by the pawn on c5; depth 2 sees the
	// recapture and retreats instead of standing pat.
	pos := mustPosition(t, "4k3/8/8/2p5/3N4/8/8/4K3 w - - 0 1")
	agent := NewSearchAgent(2)
	mov := agent.PickMove(pos, pos.GenLegal())
	if mov.From() != chess.SquareAt(3, 3) {
		t.Errorf("the attacked knight should move, picked %s", mov.UCI())
	}
}
