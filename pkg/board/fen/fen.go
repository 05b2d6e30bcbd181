// Package fen reads and writes board.Position values in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Codeurs2020/chess-bot/pkg/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position. A FEN record has six space-separated
// fields: piece placement, active side, castling availability, en passant target
// square, half-move clock and full-move number.
func Decode(s string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %v: %q", len(parts), s)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w: %q", err, s)
	}

	active, ok := decodeSide(parts[1])
	if !ok {
		return nil, fmt.Errorf("fen: invalid active side %q: %q", parts[1], s)
	}

	castling, ok := decodeCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("fen: invalid castling rights %q: %q", parts[2], s)
	}

	var epTarget board.Square
	var epSet bool
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant square %q: %q", parts[3], s)
		}
		epTarget, epSet = sq, true
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, fmt.Errorf("fen: invalid half-move clock %q: %q", parts[4], s)
	}

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 {
		return nil, fmt.Errorf("fen: invalid full-move number %q: %q", parts[5], s)
	}

	pos, err := board.NewPosition(placements, active, castling, epTarget, epSet, halfMove, fullMove)
	if err != nil {
		return nil, fmt.Errorf("fen: %w: %q", err, s)
	}
	return pos, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	var ret []board.Placement

	rank := board.Rank8
	file := board.ZeroFile
	for _, r := range field {
		switch {
		case r == '/':
			if file != board.NumFiles {
				return nil, fmt.Errorf("incomplete rank before '/'")
			}
			if rank == board.ZeroRank {
				return nil, fmt.Errorf("too many ranks")
			}
			rank--
			file = board.ZeroFile

		case unicode.IsDigit(r):
			file += board.File(r - '0')
			if file > board.NumFiles {
				return nil, fmt.Errorf("rank overruns the board")
			}

		default:
			side, kind, ok := decodePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece letter %q", r)
			}
			if file >= board.NumFiles {
				return nil, fmt.Errorf("rank overruns the board")
			}
			ret = append(ret, board.Placement{Square: board.NewSquare(file, rank), Piece: board.Piece{Side: side, Kind: kind}})
			file++
		}
	}
	if file != board.NumFiles || rank != board.ZeroRank {
		return nil, fmt.Errorf("incomplete piece placement")
	}
	return ret, nil
}

// Encode writes p back into FEN notation.
func Encode(p *board.Position) string {
	var sb strings.Builder
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			piece, ok := p.Square(f, board.Rank(r))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(encodePiece(piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > int(board.Rank1) {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), p.ActiveSide(), p.Castling(), ep, p.HalfMoveClock(), p.FullMoveNumber())
}

func decodeSide(s string) (board.Side, bool) {
	switch s {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func decodeCastling(s string) (board.Castling, bool) {
	var ret board.Castling
	if s == "-" {
		return ret, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= board.WhiteKingSide
		case 'Q':
			ret |= board.WhiteQueenSide
		case 'k':
			ret |= board.BlackKingSide
		case 'q':
			ret |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return ret, true
}

func decodePiece(r rune) (board.Side, board.PieceKind, bool) {
	kind, ok := board.ParsePieceKind(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, kind, true
	}
	return board.Black, kind, true
}

func encodePiece(p board.Piece) rune {
	letter := []rune(p.Kind.String())[0]
	if p.Side == board.White {
		return unicode.ToUpper(letter)
	}
	return letter
}
