// Package san parses and formats moves in Standard Algebraic Notation against a
// board.Position, resolving disambiguation against the position's legal moves.
package san

import (
	"fmt"
	"strings"

	"github.com/Codeurs2020/chess-bot/pkg/board"
)

// Parse resolves a SAN string (e.g. "Nf3", "exd5", "O-O", "e8=Q+") to the single legal
// move of p it identifies. Returns an error if no legal move matches, or if more than
// one does (an underspecified, ambiguous SAN string).
func Parse(p *board.Position, s string) (board.Move, error) {
	str := strings.TrimRight(s, "+#!?")
	if str == "" {
		return board.Move{}, fmt.Errorf("san: empty move")
	}

	if str == "O-O" || str == "0-0" {
		return matchCastle(p, board.KingSideCastle)
	}
	if str == "O-O-O" || str == "0-0-0" {
		return matchCastle(p, board.QueenSideCastle)
	}

	kind := board.Pawn
	if isUpperPieceLetter(str[0]) {
		kind, _ = board.ParsePieceKind(rune(str[0]))
		str = str[1:]
	}

	var promotion board.PieceKind
	if eq := strings.IndexByte(str, '='); eq >= 0 {
		if eq != len(str)-2 {
			return board.Move{}, fmt.Errorf("san: malformed promotion: %q", s)
		}
		promo, ok := board.ParsePieceKind(rune(str[eq+1]))
		if !ok || !promo.IsPromotable() {
			return board.Move{}, fmt.Errorf("san: invalid promotion piece: %q", s)
		}
		promotion = promo
		str = str[:eq]
	}

	str = strings.ReplaceAll(str, "x", "")
	if len(str) < 2 {
		return board.Move{}, fmt.Errorf("san: malformed move: %q", s)
	}

	to, err := board.ParseSquareStr(str[len(str)-2:])
	if err != nil {
		return board.Move{}, fmt.Errorf("san: invalid destination square: %q", s)
	}
	disambig := str[:len(str)-2]

	var fromFile board.File
	var fromRank board.Rank
	haveFile, haveRank := false, false
	for _, r := range disambig {
		if f, ok := board.ParseFile(r); ok {
			fromFile, haveFile = f, true
			continue
		}
		if r_, ok := board.ParseRank(r); ok {
			fromRank, haveRank = r_, true
			continue
		}
		return board.Move{}, fmt.Errorf("san: invalid disambiguation character %q: %q", r, s)
	}

	var candidates []board.Move
	for _, m := range p.LegalMoves() {
		if m.Castle != board.NoCastle {
			continue
		}
		piece, ok := p.Square(m.From.File(), m.From.Rank())
		if !ok || piece.Kind != kind {
			continue
		}
		if m.To != to || m.Promotion != promotion {
			continue
		}
		if haveFile && m.From.File() != fromFile {
			continue
		}
		if haveRank && m.From.Rank() != fromRank {
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 0:
		return board.Move{}, fmt.Errorf("san: no legal move matches %q", s)
	case 1:
		return candidates[0], nil
	default:
		return board.Move{}, fmt.Errorf("san: ambiguous move %q matches %v legal moves", s, len(candidates))
	}
}

func isUpperPieceLetter(b byte) bool {
	return b == 'K' || b == 'Q' || b == 'R' || b == 'B' || b == 'N'
}

func matchCastle(p *board.Position, side board.CastlingSide) (board.Move, error) {
	for _, m := range p.LegalMoves() {
		if m.Castle == side {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("san: castling not legal in this position")
}

// Format renders m, legal in p, as a SAN string, disambiguating by file and/or rank
// against p's other legal moves only when required.
func Format(p *board.Position, m board.Move) string {
	switch m.Castle {
	case board.KingSideCastle:
		return "O-O"
	case board.QueenSideCastle:
		return "O-O-O"
	}

	piece, _ := p.Square(m.From.File(), m.From.Rank())
	_, destOccupied := p.Square(m.To.File(), m.To.Rank())
	isCapture := destOccupied || m.Capture

	var sb strings.Builder
	switch piece.Kind {
	case board.Pawn:
		if isCapture {
			sb.WriteString(m.From.File().String())
		}
	default:
		sb.WriteString(strings.ToUpper(piece.Kind.String()))

		byFile, byRank := disambiguation(p, m, piece)
		if byFile {
			sb.WriteString(m.From.File().String())
		}
		if byRank {
			sb.WriteString(m.From.Rank().String())
		}
	}

	if isCapture {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())

	if m.Promotion != board.NoPieceKind {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}

	next, err := p.Apply(m)
	if err == nil {
		if next.IsCheckmate() {
			sb.WriteString("#")
		} else if next.IsCheck() {
			sb.WriteString("+")
		}
	}
	return sb.String()
}

// disambiguation reports whether m's origin square must be qualified by file and/or
// rank to distinguish it from other legal moves of the same piece kind to the same
// destination.
func disambiguation(p *board.Position, m board.Move, piece board.Piece) (byFile, byRank bool) {
	for _, other := range p.LegalMoves() {
		if other.To != m.To || other.From == m.From || other.Castle != board.NoCastle {
			continue
		}
		op, ok := p.Square(other.From.File(), other.From.Rank())
		if !ok || op.Kind != piece.Kind || op.Side != piece.Side {
			continue
		}
		if other.From.File() != m.From.File() {
			byFile = true
		} else {
			byRank = true
		}
	}
	return byFile, byRank
}
