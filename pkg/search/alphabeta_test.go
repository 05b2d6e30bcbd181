package search_test

import (
	"context"
	"testing"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
	"github.com/Codeurs2020/chess-bot/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBeta_TerminalIsProgrammerError(t *testing.T) {
	placements := []board.Placement{
		{Square: board.A1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.H8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
		{Square: board.B2, Piece: board.Piece{Side: board.Black, Kind: board.Queen}},
		{Square: board.A3, Piece: board.Piece{Side: board.Black, Kind: board.Bishop}},
	}
	p, err := board.NewPosition(placements, board.White, 0, 0, false, 0, 1)
	require.NoError(t, err)
	require.True(t, p.IsCheckmate())

	ab := search.AlphaBeta{Eval: eval.PieceSquare{}}
	_, err = ab.Search(context.Background(), search.NewTranspositionTable(16), p, 2)
	assert.ErrorIs(t, err, search.ErrTerminalSearch)
}

func TestAlphaBeta_FindsMateInOne(t *testing.T) {
	placements := []board.Placement{
		{Square: board.H1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.A8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
		{Square: board.A1, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
		{Square: board.B2, Piece: board.Piece{Side: board.White, Kind: board.Rook}},
	}
	p, err := board.NewPosition(placements, board.White, 0, 0, false, 0, 1)
	require.NoError(t, err)

	ab := search.AlphaBeta{Eval: eval.PieceSquare{}}
	pv, err := ab.Search(context.Background(), search.NewTranspositionTable(1024), p, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pv.Moves)

	next, err := p.Apply(pv.Moves[0])
	require.NoError(t, err)
	assert.True(t, next.IsCheckmate(), "expected mate in one, got %v", pv)
}

func TestAlphaBeta_StartIsLevel(t *testing.T) {
	start := board.Start()

	ab := search.AlphaBeta{Eval: eval.PieceSquare{}}
	pv, err := ab.Search(context.Background(), search.NewTranspositionTable(1<<16), start, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, pv.Moves)
	assert.Zero(t, pv.Score, "symmetric starting position should evaluate level at low depth")
}
