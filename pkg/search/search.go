// Package search implements fixed- and iterative-depth game tree search over
// board.Position: alpha-beta pruning, MTD(f) and a bounded transposition table.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// ErrTerminalSearch indicates Search was invoked on a terminal position: there is no
// move to search for.
var ErrTerminalSearch = errors.New("search: position is terminal")

// PV is the principal variation found for a given search depth.
type PV struct {
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", len(p.Moves), p.Score, p.Nodes, p.Time, p.Moves)
}

// Options hold the dynamic parameters of a single search invocation.
type Options struct {
	// DepthLimit, if set, bounds the search to the given ply depth. Unset means
	// iterative deepening runs up to DefaultMaxDepth, or until the context is cancelled.
	DepthLimit lang.Optional[uint]
}

// Searcher searches a single fixed depth from p and returns the principal variation.
type Searcher interface {
	Search(ctx context.Context, tt *TranspositionTable, p *board.Position, depth int) (PV, error)
}
