package search

import (
	"context"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// DefaultMaxDepth bounds iterative deepening when no DepthLimit option is given,
// per the core's requirement that long searches be bounded by an explicit maximum
// depth rather than a wall-clock timeout.
const DefaultMaxDepth = 64

// IterativeDeepening runs a Searcher at increasing depths, d = 1, 2, ..., retaining the
// best move/score of the deepest completed iteration. Cancellation is checked before each
// iteration, and AlphaBeta also stops inside an iteration once the context is cancelled;
// an iteration during which the context was cancelled is discarded.
type IterativeDeepening struct {
	Search Searcher
}

func (i IterativeDeepening) Run(ctx context.Context, tt *TranspositionTable, p *board.Position, opt Options) (PV, error) {
	if p.IsTerminal() {
		return PV{}, ErrTerminalSearch
	}

	max := DefaultMaxDepth
	if limit, ok := opt.DepthLimit.V(); ok && limit > 0 {
		max = int(limit)
	}

	var best PV
	for depth := 1; depth <= max; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}

		pv, err := i.Search.Search(ctx, tt, p, depth)
		if err != nil {
			if depth == 1 {
				return PV{}, err
			}
			break
		}
		if contextx.IsCancelled(ctx) {
			break // cut short: keep the deepest completed iteration.
		}

		logw.Debugf(ctx, "iterative deepening depth=%v: %v", depth, pv)
		best = pv
	}
	return best, nil
}
