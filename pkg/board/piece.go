package board

import "strings"

// PieceKind represents a chess piece kind (King, Pawn, etc), without a side. 3 bits.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ZeroPieceKind PieceKind = Pawn
	NumPieceKinds PieceKind = King + 1
)

// ParsePieceKind parses a FEN/SAN piece letter (case-insensitive).
func ParsePieceKind(r rune) (PieceKind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceKind, false
	}
}

func (k PieceKind) IsValid() bool {
	return Pawn <= k && k <= King
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

func (k PieceKind) String() string {
	switch k {
	case NoPieceKind:
		return "-"
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a (Side, PieceKind) pair. There are twelve distinct values.
type Piece struct {
	Side Side
	Kind PieceKind
}

// NewPiece constructs a Piece. Convenience function.
func NewPiece(s Side, k PieceKind) Piece {
	return Piece{Side: s, Kind: k}
}

func (p Piece) String() string {
	if p.Side == White {
		return strings.ToUpper(p.Kind.String())
	}
	return p.Kind.String()
}
