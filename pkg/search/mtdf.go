package search

import (
	"context"
	"time"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
)

// MTDF implements MTD(f): a sequence of zero-window alpha-beta searches that converge on
// the minimax value. Pseudo-code, given a first guess g (0 at the root, or the previous
// iteration's score when combined with iterative deepening):
//
//	upper = +∞; lower = −∞
//	repeat:
//	    β = g + 1 if g == lower else g
//	    g = alphabeta(root, d, β−1, β)   // zero-window
//	    if g < β: upper = g else: lower = g
//	until lower ≥ upper
//	return g
//
// The zero-window searches share the same transposition table, which is essential for
// performance: most sub-searches repeat positions already seen.
type MTDF struct {
	Eval       eval.Evaluator
	FirstGuess eval.Score
}

func (m MTDF) Search(ctx context.Context, tt *TranspositionTable, p *board.Position, depth int) (PV, error) {
	if p.IsTerminal() {
		return PV{}, ErrTerminalSearch
	}

	start := time.Now()
	ab := AlphaBeta{Eval: m.Eval}

	g := m.FirstGuess
	lower, upper := eval.NegInf, eval.Inf
	var nodes uint64
	var pv []board.Move

	for lower < upper {
		beta := g
		if g == lower {
			beta = g + 1
		}

		var score eval.Score
		score, pv = ab.negamaxRoot(ctx, tt, p, depth, beta-1, beta, &nodes)
		g = score
		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}

	return PV{Moves: pv, Score: g, Nodes: nodes, Time: time.Since(start)}, nil
}

// negamaxRoot runs one zero-window (or full-window) negamax search and returns the root
// score and principal variation, tracking total node count across calls via nodes.
func (a AlphaBeta) negamaxRoot(ctx context.Context, tt *TranspositionTable, p *board.Position, depth int, alpha, beta eval.Score, nodes *uint64) (eval.Score, []board.Move) {
	var n uint64
	score, pv := a.negamax(ctx, tt, p, depth, alpha, beta, 0, &n)
	*nodes += n
	return score, pv
}
