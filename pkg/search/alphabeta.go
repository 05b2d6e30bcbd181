package search

import (
	"context"
	"time"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta implements negamax-flavoured alpha-beta pruning to a fixed depth. Pseudo-code:
//
//	function alphabeta(node, depth, α, β) is
//	    if depth = 0 or node is terminal then
//	        return heuristic(node)
//	    value := −∞
//	    for each child of node do
//	        value := max(value, −alphabeta(child, depth−1, −β, −α))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha%E2%80%93beta_pruning.
type AlphaBeta struct {
	Eval eval.Evaluator
}

func (a AlphaBeta) Search(ctx context.Context, tt *TranspositionTable, p *board.Position, depth int) (PV, error) {
	if p.IsTerminal() {
		return PV{}, ErrTerminalSearch
	}

	start := time.Now()
	var nodes uint64
	score, pv := a.negamax(ctx, tt, p, depth, eval.NegInf, eval.Inf, 0, &nodes)
	return PV{Moves: pv, Score: score, Nodes: nodes, Time: time.Since(start)}, nil
}

// negamax returns the score of p from the side-to-move's perspective, and the line that
// achieves it, best move first.
func (a AlphaBeta) negamax(ctx context.Context, tt *TranspositionTable, p *board.Position, depth int, alpha, beta eval.Score, ply int, nodes *uint64) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}

	// TT lookup: an entry at least as deep as the remaining depth is reused as exact,
	// matching this implementation's exact-only transposition table policy.
	if e, ok := tt.Get(p.Hash()); ok && e.Depth >= depth {
		return e.Score, nil
	}

	*nodes++

	if depth == 0 {
		return a.Eval.Evaluate(ctx, p), nil
	}

	successors := p.Successors()
	if len(successors) == 0 {
		return eval.Terminal(p, ply), nil
	}

	origAlpha := alpha

	best := eval.NegInf
	var bestLine []board.Move
	var bestMove board.Move
	cutoff := false

	for _, s := range successors {
		childScore, childLine := a.negamax(ctx, tt, s.Position, depth-1, beta.Negate(), alpha.Negate(), ply+1, nodes)
		score := childScore.Negate()

		if score > best {
			best = score
			bestMove = s.Move
			bestLine = append([]board.Move{s.Move}, childLine...)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			cutoff = true
			break // cutoff.
		}
	}

	// Only a value that falls strictly inside the original window is exact: a
	// fail-high (cutoff) is merely a lower bound, and a fail-low (best never raised
	// alpha) is merely an upper bound. Storing either as exact would let a later,
	// wider-window search reuse a bound as if it were the true score.
	if !cutoff && best > origAlpha {
		tt.Add(p.Hash(), Entry{Score: best, Move: bestMove, Depth: depth})
	}
	return best, bestLine
}
