package chess_test

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/jade-guiton/chess/chess"
)

func TestMoveText(t *testing.T) { TestingT(t) }

type MoveTextSuite struct {
	pos   *chess.Position
	legal []chess.Move
}

var _ = Suite(&MoveTextSuite{})

func (s *MoveTextSuite) SetUpTest(c *C) {
	pos, err := chess.ParseFEN(chess.FENStartPos)
	c.Assert(err, IsNil)
	s.pos = pos
	s.legal = pos.GenLegal()
}

func (s *MoveTextSuite) legalFor(c *C, fen string) []chess.Move {
	pos, err := chess.ParseFEN(fen)
	c.Assert(err, IsNil)
	return pos.GenLegal()
}

func (s *MoveTextSuite) TestUCI(c *C) {
	mov, err := chess.ParseUCI("e2e4", s.legal)
	c.Assert(err, IsNil)
	c.Check(mov.From(), Equals, chess.SquareAt(4, 1))
	c.Check(mov.To(), Equals, chess.SquareAt(4, 3))
	c.Check(mov.UCI(), Equals, "e2e4")
}

func (s *MoveTextSuite) TestUCIErrors(c *C) {
	_, err := chess.ParseUCI("e2", s.legal)
	c.Check(err, Equals, chess.ErrInvalidSyntax)
	_, err = chess.ParseUCI("e2e9", s.legal)
	c.Check(err, Equals, chess.ErrInvalidSyntax)
	_, err = chess.ParseUCI("e2e4x", s.legal)
	c.Check(err, Equals, chess.ErrInvalidSyntax)
	_, err = chess.ParseUCI("e2e5", s.legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
	_, err = chess.ParseUCI("e2e3q", s.legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
}

func (s *MoveTextSuite) TestSANPawnMove(c *C) {
	mov, err := chess.ParseSAN("e4", s.legal)
	c.Assert(err, IsNil)
	c.Check(mov.UCI(), Equals, "e2e4")
}

func (s *MoveTextSuite) TestSANPieceMove(c *C) {
	mov, err := chess.ParseSAN("Nf3", s.legal)
	c.Assert(err, IsNil)
	c.Check(mov.UCI(), Equals, "g1f3")
	c.Check(mov.MovedPiece(), Equals, chess.PieceTypeKnight)
}

func (s *MoveTextSuite) TestSANTrailingCharactersIgnored(c *C) {
	mov, err := chess.ParseSAN("e4!?", s.legal)
	c.Assert(err, IsNil)
	c.Check(mov.UCI(), Equals, "e2e4")
}

func (s *MoveTextSuite) TestSANCheckSuffix(c *C) {
	// 1.f3 e5 2.g4 leaves black the classic mating queen swing.
	legal := s.legalFor(c, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	mov, err := chess.ParseSAN("Qh4#", legal)
	c.Assert(err, IsNil)
	c.Check(mov.UCI(), Equals, "d8h4")
}

func (s *MoveTextSuite) TestSANCapture(c *C) {
	legal := s.legalFor(c, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	mov, err := chess.ParseSAN("exd6", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialEnPassant)
}

func (s *MoveTextSuite) TestSANDisambiguation(c *C) {
	legal := s.legalFor(c, "k7/8/8/8/8/8/8/N1N4K w - - 0 1")
	_, err := chess.ParseSAN("Nb3", legal)
	c.Check(err, Equals, chess.ErrAmbiguousMove)
	mov, err := chess.ParseSAN("Nab3", legal)
	c.Assert(err, IsNil)
	c.Check(mov.From(), Equals, chess.SquareAt(0, 0))
	mov, err = chess.ParseSAN("Ncb3", legal)
	c.Assert(err, IsNil)
	c.Check(mov.From(), Equals, chess.SquareAt(2, 0))
}

func (s *MoveTextSuite) TestSANRankDisambiguation(c *C) {
	// Rooks on a1 and a5 both reach a3.
	legal := s.legalFor(c, "k7/8/8/R7/8/8/8/R6K w - - 0 1")
	_, err := chess.ParseSAN("Ra3", legal)
	c.Check(err, Equals, chess.ErrAmbiguousMove)
	mov, err := chess.ParseSAN("R1a3", legal)
	c.Assert(err, IsNil)
	c.Check(mov.From(), Equals, chess.SquareAt(0, 0))
}

func (s *MoveTextSuite) TestSANCastling(c *C) {
	legal := s.legalFor(c, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mov, err := chess.ParseSAN("O-O", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialCastleKing)
	mov, err = chess.ParseSAN("O-O-O", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialCastleQueen)
	mov, err = chess.ParseSAN("0-0", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialCastleKing)
}

func (s *MoveTextSuite) TestSANPromotion(c *C) {
	legal := s.legalFor(c, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	mov, err := chess.ParseSAN("a8=Q", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialPromoteQueen)
	mov, err = chess.ParseSAN("axb8=N+", legal)
	c.Assert(err, IsNil)
	c.Check(mov.Special(), Equals, chess.SpecialPromoteKnight)
	c.Check(mov.To(), Equals, chess.SquareAt(1, 7))
	// The promotion piece is required once a pawn reaches the far rank.
	_, err = chess.ParseSAN("a8", legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
}

func (s *MoveTextSuite) TestSANErrors(c *C) {
	_, err := chess.ParseSAN("", s.legal)
	c.Check(err, Equals, chess.ErrInvalidSyntax)
	_, err = chess.ParseSAN("xx", s.legal)
	c.Check(err, Equals, chess.ErrInvalidSyntax)
	_, err = chess.ParseSAN("e5", s.legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
	_, err = chess.ParseSAN("Ke2", s.legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
	_, err = chess.ParseSAN("O-O", s.legal)
	c.Check(err, Equals, chess.ErrIllegalMove)
}
