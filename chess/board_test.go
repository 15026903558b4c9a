package chess_test

import (
	"testing"

	"github.com/jade-guiton/chess/chess"
)

func TestParseBoardFENInitial(t *testing.T) {
	board, err := chess.ParseBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatalf("ParseBoardFEN failed: %v", err)
	}
	if got := board.FindColor(chess.White).Count(); got != 16 {
		t.Errorf("white pieces: got %d want 16", got)
	}
	if got := board.FindColor(chess.Black).Count(); got != 16 {
		t.Errorf("black pieces: got %d want 16", got)
	}
	if !board.FindPiece(chess.MakePiece(chess.White, chess.PieceTypeKing)).At(chess.SquareAt(4, 0)) {
		t.Error("white king should be on e1")
	}
	if got := board.FindPiece(chess.MakePiece(chess.Black, chess.PieceTypePawn)).Count(); got != 8 {
		t.Errorf("black pawns: got %d want 8", got)
	}
}

func TestParseBoardFENErrors(t *testing.T) {
	bad := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",            // too few ranks
		"rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR", // too many ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR",   // rank too long
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",    // rank too short
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR",   // bad piece letter
	}
	for _, fen := range bad {
		if _, err := chess.ParseBoardFEN(fen); err == nil {
			t.Errorf("ParseBoardFEN(%q) should fail", fen)
		}
	}
}

func TestBoardFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
	}
	for _, fen := range fens {
		board, err := chess.ParseBoardFEN(fen)
		if err != nil {
			t.Fatalf("ParseBoardFEN(%q) failed: %v", fen, err)
		}
		if got := board.ToFEN(); got != fen {
			t.Errorf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestGetPieces(t *testing.T) {
	board, err := chess.ParseBoardFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatalf("ParseBoardFEN failed: %v", err)
	}
	placement := board.GetPieces()
	if got := placement[chess.SquareAt(4, 0)]; got != chess.MakePiece(chess.White, chess.PieceTypeKing) {
		t.Errorf("e1: got %v", got)
	}
	if got := placement[chess.SquareAt(3, 7)]; got != chess.MakePiece(chess.Black, chess.PieceTypeQueen) {
		t.Errorf("d8: got %v", got)
	}
	if got := placement[chess.SquareAt(4, 3)]; got != chess.NoPiece {
		t.Errorf("e4 should be empty, got %v", got)
	}
}

func TestGetPiecesPanicsOnOverlap(t *testing.T) {
	var board chess.Board
	sq := chess.SquareAt(3, 3)
	board.Add(sq, chess.MakePiece(chess.White, chess.PieceTypeRook))
	board.Add(sq, chess.MakePiece(chess.Black, chess.PieceTypeQueen))
	defer func() {
		if recover() == nil {
			t.Error("overlapping piece sets should panic")
		}
	}()
	board.GetPieces()
}
