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

func TestMTDF_AgreesWithAlphaBeta(t *testing.T) {
	start := board.Start()

	ab := search.AlphaBeta{Eval: eval.PieceSquare{}}
	abPV, err := ab.Search(context.Background(), search.NewTranspositionTable(1<<16), start, 2)
	require.NoError(t, err)

	m := search.MTDF{Eval: eval.PieceSquare{}}
	mtdfPV, err := m.Search(context.Background(), search.NewTranspositionTable(1<<16), start, 2)
	require.NoError(t, err)

	assert.Equal(t, abPV.Score, mtdfPV.Score)
}

func TestMTDF_TerminalIsProgrammerError(t *testing.T) {
	placements := []board.Placement{
		{Square: board.A1, Piece: board.Piece{Side: board.White, Kind: board.King}},
		{Square: board.H8, Piece: board.Piece{Side: board.Black, Kind: board.King}},
		{Square: board.B2, Piece: board.Piece{Side: board.Black, Kind: board.Queen}},
		{Square: board.A3, Piece: board.Piece{Side: board.Black, Kind: board.Bishop}},
	}
	p, err := board.NewPosition(placements, board.White, 0, 0, false, 0, 1)
	require.NoError(t, err)

	m := search.MTDF{Eval: eval.PieceSquare{}}
	_, err = m.Search(context.Background(), search.NewTranspositionTable(16), p, 2)
	assert.ErrorIs(t, err, search.ErrTerminalSearch)
}
