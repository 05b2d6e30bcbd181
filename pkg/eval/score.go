// Package eval contains static position evaluation: material balance and piece-square
// tables, scored from the side to move's perspective.
package eval

import (
	"fmt"

	"github.com/Codeurs2020/chess-bot/pkg/board"
)

// Score is a signed evaluation in centipawns, from the side-to-move's perspective:
// positive favors the side to move, negative favors the opponent. Mate scores are
// represented as ±Checkmate offset toward zero by the distance to mate in plies, so
// shorter mates sort ahead of longer ones during search.
type Score int32

const (
	// MinScore and MaxScore bound every score, mate scores included: those lie just
	// inside ±Checkmate (see Mate), well within this range.
	MinScore Score = -1_000_000
	MaxScore Score =  1_000_000

	// Checkmate is the base magnitude of a forced-mate score. Search subtracts the ply
	// distance to mate from this so that Checkmate-1 (mate in one ply) outranks
	// Checkmate-3 (mate in three plies).
	Checkmate Score = 900_000

	// Inf and NegInf bound the alpha-beta search window; they are never a position's
	// final reported score.
	Inf    Score = 1_000_001
	NegInf Score = -Inf
)

// Mate returns the score for being mated in the given number of plies from the root.
func Mate(pliesToMate int) Score {
	return -Checkmate + Score(pliesToMate)
}

// IsMate reports whether s represents a forced mate (for or against the side to move).
func (s Score) IsMate() bool {
	const maxMatePly = 1_000 // far deeper than any search reaches.
	return s <= -Checkmate+maxMatePly || s >= Checkmate-maxMatePly
}

func (s Score) String() string {
	if s.IsMate() {
		if s > 0 {
			return fmt.Sprintf("#%d", Checkmate-s+1)
		}
		return fmt.Sprintf("#-%d", s+Checkmate+1)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Negate flips a score to the opponent's perspective, as required at each negamax ply.
func (s Score) Negate() Score {
	return -s
}

// Unit returns the signed unit for the side: 1 for White, -1 for Black. Useful for
// converting a side-relative score into an absolute, White-positive score.
func Unit(s board.Side) Score {
	if s == board.White {
		return 1
	}
	return -1
}

// Crop clamps s into [MinScore, MaxScore], leaving mate scores untouched.
func Crop(s Score) Score {
	switch {
	case s.IsMate():
		return s
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
