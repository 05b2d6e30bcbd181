package san_test

import (
	"testing"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/board/san"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, p *board.Position, s string) *board.Position {
	t.Helper()
	m, err := san.Parse(p, s)
	require.NoError(t, err, s)
	next, err := p.Apply(m)
	require.NoError(t, err, s)
	return next
}

func TestParse_PawnAndKnightMoves(t *testing.T) {
	p := board.Start()
	p = apply(t, p, "e4")
	p = apply(t, p, "e5")
	p = apply(t, p, "Nf3")
	assert.Equal(t, board.White, p.ActiveSide())
}

func TestParse_Capture(t *testing.T) {
	p := board.Start()
	p = apply(t, p, "e4")
	p = apply(t, p, "d5")
	p = apply(t, p, "exd5")

	piece, ok := p.Square(board.FileD, board.Rank5)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, piece.Kind)
	assert.Equal(t, board.White, piece.Side)
}

func TestParse_Castling(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.H1, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
		{Square: board.E8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
	}
	p, err := board.NewPosition(placements, board.White, board.WhiteKingSide, 0, false, 0, 1)
	require.NoError(t, err)

	m, err := san.Parse(p, "O-O")
	require.NoError(t, err)
	assert.Equal(t, board.KingSideCastle, m.Castle)
}

func TestParse_Ambiguous(t *testing.T) {
	placements := []board.Placement{
		{Square: board.A1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.H8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
		{Square: board.A4, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
		{Square: board.H4, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
	}
	p, err := board.NewPosition(placements, board.White, 0, 0, false, 0, 1)
	require.NoError(t, err)

	_, err = san.Parse(p, "Rd4")
	require.Error(t, err)

	m, err := san.Parse(p, "Rad4")
	require.NoError(t, err)
	assert.Equal(t, board.A4, m.From)
}

func TestFormat_Disambiguation(t *testing.T) {
	placements := []board.Placement{
		{Square: board.A1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.H8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
		{Square: board.A4, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
		{Square: board.H4, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
	}
	p, err := board.NewPosition(placements, board.White, 0, 0, false, 0, 1)
	require.NoError(t, err)

	m := board.Move{From: board.A4, To: board.D4}
	assert.Equal(t, "Rad4", san.Format(p, m))
}

func TestFormat_Checkmate(t *testing.T) {
	p := board.Start()
	for _, s := range []string{"f3", "e5", "g4"} {
		p = apply(t, p, s)
	}
	m, err := san.Parse(p, "Qh4")
	require.NoError(t, err)
	assert.Equal(t, "Qh4#", san.Format(p, m))
}

func TestParse_RoundTripsWithFormat(t *testing.T) {
	p := board.Start()
	for _, m := range p.LegalMoves() {
		s := san.Format(p, m)
		parsed, err := san.Parse(p, s)
		require.NoError(t, err, s)
		assert.True(t, m.Equals(parsed), "round trip mismatch for %v via %q", m, s)
	}
}
