package board

import "fmt"

// Move represents a not-necessarily-legal move. The Capture flag is advisory only: it
// is set from SAN's 'x' marker when present; apply(Move) validates it only insofar as
// the spec requires an agreement check against destination occupancy.
type Move struct {
	From, To  Square
	Promotion PieceKind // desired promotion piece, if any.
	Castle    CastlingSide
	Capture   bool // advisory; set from SAN 'x' when present.
}

// ParseMove parses a move in pure coordinate notation, such as "a2a4" or "a7a8q". The
// parsed move carries no castling information; use package san for that.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: %q: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePieceKind(runes[4])
		if !ok || !promo.IsPromotable() {
			return Move{}, fmt.Errorf("invalid promotion: %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

// Equals reports whether two moves describe the same transition, ignoring the
// advisory Capture flag.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion && m.Castle == o.Castle
}

func (m Move) String() string {
	switch m.Castle {
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	}
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
