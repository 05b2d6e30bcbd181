package board_test

import (
	"testing"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(8).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
	assert.Equal(t, "5", board.Rank(4).String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, "e", board.File(4).String())
}

func TestSquare(t *testing.T) {
	c2, err := board.ParseSquareStr("c2")
	assert.NoError(t, err)
	assert.Equal(t, c2, board.NewSquare(board.FileC, board.Rank2))

	assert.True(t, board.H1.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.Square(64).IsValid())

	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "e1", board.E1.String())

	sq, ok := board.E1.Shift(0, 1)
	assert.True(t, ok)
	assert.Equal(t, "e2", sq.String())

	_, ok = board.A1.Shift(-1, 0)
	assert.False(t, ok)
}
