package search_test

import (
	"testing"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
	"github.com/Codeurs2020/chess-bot/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable_GetMiss(t *testing.T) {
	tt := search.NewTranspositionTable(4)
	_, ok := tt.Get(42)
	assert.False(t, ok)
}

func TestTranspositionTable_AddGet(t *testing.T) {
	tt := search.NewTranspositionTable(4)

	m := board.Move{From: board.A1, To: board.A8, Promotion: board.Queen}
	tt.Add(1, search.Entry{Score: eval.Score(150), Move: m, Depth: 3})

	got, ok := tt.Get(1)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(150), got.Score)
	assert.Equal(t, m, got.Move)
	assert.Equal(t, 3, got.Depth)
}

func TestTranspositionTable_NewerEntryWins(t *testing.T) {
	tt := search.NewTranspositionTable(4)

	tt.Add(1, search.Entry{Score: 10, Depth: 2})
	tt.Add(1, search.Entry{Score: 20, Depth: 5})

	got, ok := tt.Get(1)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(20), got.Score)
	assert.Equal(t, 5, got.Depth)
	assert.Equal(t, 1, tt.Len())
}

func TestTranspositionTable_EvictsLRU(t *testing.T) {
	tt := search.NewTranspositionTable(2)

	tt.Add(1, search.Entry{Score: 1})
	tt.Add(2, search.Entry{Score: 2})
	tt.Add(3, search.Entry{Score: 3}) // evicts key 1, the LRU entry.

	_, ok := tt.Get(1)
	assert.False(t, ok)

	_, ok = tt.Get(2)
	assert.True(t, ok)
	_, ok = tt.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 2, tt.Len())
}

func TestTranspositionTable_GetTouchesMRU(t *testing.T) {
	tt := search.NewTranspositionTable(2)

	tt.Add(1, search.Entry{Score: 1})
	tt.Add(2, search.Entry{Score: 2})

	_, _ = tt.Get(1) // touch 1, so 2 becomes LRU.
	tt.Add(3, search.Entry{Score: 3})

	_, ok := tt.Get(2)
	assert.False(t, ok, "key 2 should have been evicted as LRU")
	_, ok = tt.Get(1)
	assert.True(t, ok)
}
