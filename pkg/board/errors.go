package board

import "errors"

// MoveErrorKind enumerates the reasons apply(Move) can fail.
type MoveErrorKind uint8

const (
	SourceEmpty MoveErrorKind = iota
	WrongSide
	DestinationOccupiedBySelf
	CaptureFlagMismatch
	PromotionMismatch
	IllegalGeometry
	BlockedPath
	CastlingNotAllowed
	LeavesOwnKingInCheck
)

func (k MoveErrorKind) String() string {
	switch k {
	case SourceEmpty:
		return "SourceEmpty"
	case WrongSide:
		return "WrongSide"
	case DestinationOccupiedBySelf:
		return "DestinationOccupiedBySelf"
	case CaptureFlagMismatch:
		return "CaptureFlagMismatch"
	case PromotionMismatch:
		return "PromotionMismatch"
	case IllegalGeometry:
		return "IllegalGeometry"
	case BlockedPath:
		return "BlockedPath"
	case CastlingNotAllowed:
		return "CastlingNotAllowed"
	case LeavesOwnKingInCheck:
		return "LeavesOwnKingInCheck"
	default:
		return "?"
	}
}

// MoveError indicates that apply(Move) rejected a move. The Kind names the specific
// validation step that failed, per spec.
type MoveError struct {
	Kind MoveErrorKind
	Move Move
}

func (e *MoveError) Error() string {
	return "illegal move " + e.Move.String() + ": " + e.Kind.String()
}

// Is allows errors.Is(err, ErrLeavesOwnKingInCheck) style matching against a kind sentinel.
func (e *MoveError) Is(target error) bool {
	var o *MoveError
	if errors.As(target, &o) {
		return e.Kind == o.Kind
	}
	return false
}

// Sentinels for errors.Is matching by kind, e.g. errors.Is(err, board.ErrLeavesOwnKingInCheck).
var (
	ErrSourceEmpty               = &MoveError{Kind: SourceEmpty}
	ErrWrongSide                 = &MoveError{Kind: WrongSide}
	ErrDestinationOccupiedBySelf = &MoveError{Kind: DestinationOccupiedBySelf}
	ErrCaptureFlagMismatch       = &MoveError{Kind: CaptureFlagMismatch}
	ErrPromotionMismatch         = &MoveError{Kind: PromotionMismatch}
	ErrIllegalGeometry           = &MoveError{Kind: IllegalGeometry}
	ErrBlockedPath               = &MoveError{Kind: BlockedPath}
	ErrCastlingNotAllowed        = &MoveError{Kind: CastlingNotAllowed}
	ErrLeavesOwnKingInCheck      = &MoveError{Kind: LeavesOwnKingInCheck}
)
