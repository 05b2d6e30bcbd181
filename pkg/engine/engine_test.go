package engine_test

import (
	"context"
	"testing"

	"github.com/Codeurs2020/chess-bot/pkg/board/fen"
	"github.com/Codeurs2020/chess-bot/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsAtInitialPosition(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "test")
	assert.Equal(t, fen.Initial, e.Position())
}

func TestPlay_AdvancesPosition(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "test")
	require.NoError(t, e.Play(context.Background(), "e4"))
	assert.Contains(t, e.Position(), " b ")
}

func TestPlay_RejectsIllegalMove(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "test")
	err := e.Play(context.Background(), "e5")
	assert.Error(t, err)
}

func TestSetPosition_Invalid(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "test")
	err := e.SetPosition(context.Background(), "not a fen")
	assert.Error(t, err)
}

func TestBestMove_FindsMateInOne(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "test", engine.WithMaxDepth(2))
	require.NoError(t, e.SetPosition(context.Background(), "6k1/R7/6K1/8/8/8/8/7R w - - 0 1"))

	pv, err := e.BestMove(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, pv.Moves)

	p, err := fen.Decode("6k1/R7/6K1/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)
	next, err := p.Apply(pv.Moves[0])
	require.NoError(t, err)
	assert.True(t, next.IsCheckmate(), "expected mate in one, got %v", pv)
}

func TestName(t *testing.T) {
	e := engine.New(context.Background(), "chess-bot", "tester")
	assert.Contains(t, e.Name(), "chess-bot")
	assert.Equal(t, "tester", e.Author())
}
