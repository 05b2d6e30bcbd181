package eval

import (
	"context"

	"github.com/Codeurs2020/chess-bot/pkg/board"
)

// Evaluator is a static position evaluator: it scores a position from the perspective of
// the side to move, without searching.
type Evaluator interface {
	Evaluate(ctx context.Context, p *board.Position) Score
}

// Material scores the nominal material balance for the side to move, ignoring position.
type Material struct{}

func (Material) Evaluate(_ context.Context, p *board.Position) Score {
	return materialBalance(p)
}

func materialBalance(p *board.Position) Score {
	turn := p.ActiveSide()

	var score Score
	for _, sq := range p.Occupied(turn) {
		piece, _ := p.Square(sq.File(), sq.Rank())
		score += NominalValue(piece.Kind)
	}
	for _, sq := range p.Occupied(turn.Opponent()) {
		piece, _ := p.Square(sq.File(), sq.Rank())
		score -= NominalValue(piece.Kind)
	}
	return score
}

// PieceSquare scores material plus the standard piece-square-table positional bonus, for
// the side to move.
type PieceSquare struct{}

func (PieceSquare) Evaluate(_ context.Context, p *board.Position) Score {
	turn := p.ActiveSide()

	var score Score
	for _, sq := range p.Occupied(turn) {
		piece, _ := p.Square(sq.File(), sq.Rank())
		score += NominalValue(piece.Kind) + pstValue(piece, sq)
	}
	for _, sq := range p.Occupied(turn.Opponent()) {
		piece, _ := p.Square(sq.File(), sq.Rank())
		score -= NominalValue(piece.Kind) + pstValue(piece, sq)
	}
	return score
}

// Terminal scores a terminal position (no legal moves) as checkmate or stalemate. ply is
// the distance from the search root, used so nearer mates are preferred over farther ones.
func Terminal(p *board.Position, ply int) Score {
	if p.IsCheckmate() {
		return Mate(ply)
	}
	return 0 // stalemate.
}
