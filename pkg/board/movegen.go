package board

// This file implements move geometry, attack detection and the apply(Move) validation
// pipeline: basic checks, movement legality (including castling), board update,
// castling-rights update, self-check rejection, and side/counter toggling.

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var queenDirs = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// rayFirst walks from sq in direction (df, dr), exclusive of sq, and returns the first
// occupied square's piece, if any, before the board edge.
func (p *Position) rayFirst(sq Square, df, dr int) (Piece, bool) {
	cur := sq
	for {
		next, ok := cur.Shift(df, dr)
		if !ok {
			return Piece{}, false
		}
		cur = next
		if piece, ok := p.at(cur); ok {
			return piece, true
		}
	}
}

// rayClear reports whether every square strictly between from and to (assumed aligned
// on a rank, file or diagonal) is empty.
func (p *Position) rayClear(from, to Square, df, dr int) bool {
	cur, ok := from.Shift(df, dr)
	for ok && cur != to {
		if !p.IsEmpty(cur) {
			return false
		}
		cur, ok = cur.Shift(df, dr)
	}
	return ok
}

// IsAttacked reports whether sq is attacked by the side opposing defender.
func (p *Position) IsAttacked(defender Side, sq Square) bool {
	attacker := defender.Opponent()

	// Pawns: a sq is attacked by an attacker pawn sitting one rank behind it, on an
	// adjacent file, from the attacker's perspective.
	pawnRankStep := -1
	if attacker == Black {
		pawnRankStep = 1
	}
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Shift(df, pawnRankStep); ok {
			if piece, ok := p.at(from); ok && piece.Side == attacker && piece.Kind == Pawn {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		if from, ok := sq.Shift(o[0], o[1]); ok {
			if piece, ok := p.at(from); ok && piece.Side == attacker && piece.Kind == Knight {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		if from, ok := sq.Shift(o[0], o[1]); ok {
			if piece, ok := p.at(from); ok && piece.Side == attacker && piece.Kind == King {
				return true
			}
		}
	}

	for _, d := range bishopDirs {
		if piece, ok := p.rayFirst(sq, d[0], d[1]); ok && piece.Side == attacker && (piece.Kind == Bishop || piece.Kind == Queen) {
			return true
		}
	}
	for _, d := range rookDirs {
		if piece, ok := p.rayFirst(sq, d[0], d[1]); ok && piece.Side == attacker && (piece.Kind == Rook || piece.Kind == Queen) {
			return true
		}
	}

	return false
}

// candidates enumerates pseudo-legal moves for the piece on sq, ignoring whether the
// move would leave the mover's own king in check. Castling is handled separately.
func (p *Position) candidates(sq Square) []Move {
	piece, ok := p.at(sq)
	if !ok {
		return nil
	}

	var ret []Move
	add := func(to Square, promotion PieceKind) {
		ret = append(ret, Move{From: sq, To: to, Promotion: promotion, Capture: !p.IsEmpty(to)})
	}

	switch piece.Kind {
	case Pawn:
		step := 1
		startRank := Rank2
		promoRank := Rank8
		if piece.Side == Black {
			step = -1
			startRank = Rank7
			promoRank = Rank1
		}

		promos := func(to Square) []PieceKind {
			if to.Rank() == promoRank {
				return []PieceKind{Queen, Rook, Bishop, Knight}
			}
			return []PieceKind{NoPieceKind}
		}

		if to, ok := sq.Shift(0, step); ok && p.IsEmpty(to) {
			for _, promo := range promos(to) {
				add(to, promo)
			}
			if sq.Rank() == startRank {
				if to2, ok := sq.Shift(0, 2*step); ok && p.IsEmpty(to2) {
					add(to2, NoPieceKind)
				}
			}
		}
		for _, df := range [2]int{-1, 1} {
			if to, ok := sq.Shift(df, step); ok {
				if other, ok := p.at(to); ok && other.Side != piece.Side {
					for _, promo := range promos(to) {
						add(to, promo)
					}
				}
			}
		}

	case Knight:
		for _, o := range knightOffsets {
			if to, ok := sq.Shift(o[0], o[1]); ok {
				if other, ok := p.at(to); !ok || other.Side != piece.Side {
					add(to, NoPieceKind)
				}
			}
		}

	case King:
		for _, o := range kingOffsets {
			if to, ok := sq.Shift(o[0], o[1]); ok {
				if other, ok := p.at(to); !ok || other.Side != piece.Side {
					add(to, NoPieceKind)
				}
			}
		}

	case Bishop:
		ret = append(ret, p.slideCandidates(sq, piece, bishopDirs[:])...)
	case Rook:
		ret = append(ret, p.slideCandidates(sq, piece, rookDirs[:])...)
	case Queen:
		ret = append(ret, p.slideCandidates(sq, piece, queenDirs[:])...)
	}

	return ret
}

func (p *Position) slideCandidates(sq Square, piece Piece, dirs [][2]int) []Move {
	var ret []Move
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := cur.Shift(d[0], d[1])
			if !ok {
				break
			}
			other, occupied := p.at(to)
			if !occupied {
				ret = append(ret, Move{From: sq, To: to})
				cur = to
				continue
			}
			if other.Side != piece.Side {
				ret = append(ret, Move{From: sq, To: to, Capture: true})
			}
			break
		}
	}
	return ret
}

// castlingCandidates returns the castling moves the active side may attempt, subject to
// rights, empty-path and the king not currently being, passing through, or landing on an
// attacked square.
func (p *Position) castlingCandidates() []Move {
	s := p.active
	ks, qs := p.castling.Rights(s)

	rank := Rank1
	if s == Black {
		rank = Rank8
	}
	kingFrom := NewSquare(FileE, rank)

	var ret []Move
	if p.IsChecked(s) {
		return ret // may not castle out of check.
	}

	if ks {
		between := []Square{NewSquare(FileF, rank), NewSquare(FileG, rank)}
		if p.isCastlingPathClear(between) && p.noneAttacked(s, between) {
			ret = append(ret, Move{From: kingFrom, To: NewSquare(FileG, rank), Castle: KingSideCastle})
		}
	}
	if qs {
		between := []Square{NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank)}
		passThrough := []Square{NewSquare(FileD, rank), NewSquare(FileC, rank)}
		if p.isCastlingPathClear(between) && p.noneAttacked(s, passThrough) {
			ret = append(ret, Move{From: kingFrom, To: NewSquare(FileC, rank), Castle: QueenSideCastle})
		}
	}
	return ret
}

func (p *Position) isCastlingPathClear(squares []Square) bool {
	for _, sq := range squares {
		if !p.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func (p *Position) noneAttacked(defender Side, squares []Square) bool {
	for _, sq := range squares {
		if p.IsAttacked(defender, sq) {
			return false
		}
	}
	return true
}

// LegalMoves enumerates every legal move for the side to move: pseudo-legal candidates
// and castling moves, filtered to those that do not leave the mover's own king in check.
func (p *Position) LegalMoves() []Move {
	var ret []Move
	for _, sq := range p.Occupied(p.active) {
		for _, m := range p.candidates(sq) {
			if _, err := p.Apply(m); err == nil {
				ret = append(ret, m)
			}
		}
	}
	for _, m := range p.castlingCandidates() {
		if _, err := p.Apply(m); err == nil {
			ret = append(ret, m)
		}
	}
	return ret
}

// Apply validates and performs m against p, returning the resulting position. It never
// mutates p. On failure, the returned error is a *MoveError identifying the rejected
// validation step.
func (p *Position) Apply(m Move) (*Position, error) {
	if m.Castle != NoCastle {
		return p.applyCastle(m)
	}

	piece, ok := p.at(m.From)
	if !ok {
		return nil, &MoveError{Kind: SourceEmpty, Move: m}
	}
	if piece.Side != p.active {
		return nil, &MoveError{Kind: WrongSide, Move: m}
	}

	if !p.isGeometryValid(piece, m) {
		return nil, &MoveError{Kind: IllegalGeometry, Move: m}
	}
	if requiresClearPath(piece.Kind) && !p.pathClear(m.From, m.To) {
		return nil, &MoveError{Kind: BlockedPath, Move: m}
	}

	target, targetOccupied := p.at(m.To)
	if targetOccupied && target.Side == piece.Side {
		return nil, &MoveError{Kind: DestinationOccupiedBySelf, Move: m}
	}
	if m.Capture && !targetOccupied {
		return nil, &MoveError{Kind: CaptureFlagMismatch, Move: m}
	}

	isPromotionRank := (piece.Side == White && m.To.Rank() == Rank8) || (piece.Side == Black && m.To.Rank() == Rank1)
	if piece.Kind == Pawn && isPromotionRank {
		if !m.Promotion.IsPromotable() {
			return nil, &MoveError{Kind: PromotionMismatch, Move: m}
		}
	} else if m.Promotion != NoPieceKind {
		return nil, &MoveError{Kind: PromotionMismatch, Move: m}
	}

	squares := p.squares
	squares[m.To] = piece
	squares[m.From] = Piece{Kind: NoPieceKind}
	if piece.Kind == Pawn && m.Promotion != NoPieceKind {
		squares[m.To] = Piece{Side: piece.Side, Kind: m.Promotion}
	}

	next := p.buildNext(squares, piece, m, targetOccupied)
	if next.IsChecked(piece.Side) {
		return nil, &MoveError{Kind: LeavesOwnKingInCheck, Move: m}
	}
	return next, nil
}

func (p *Position) applyCastle(m Move) (*Position, error) {
	s := p.active
	rank := Rank1
	if s == Black {
		rank = Rank8
	}

	ks, qs := p.castling.Rights(s)
	allowed := (m.Castle == KingSideCastle && ks) || (m.Castle == QueenSideCastle && qs)
	if !allowed {
		return nil, &MoveError{Kind: CastlingNotAllowed, Move: m}
	}

	var rookFrom, rookTo Square
	switch m.Castle {
	case KingSideCastle:
		rookFrom, rookTo = NewSquare(FileH, rank), NewSquare(FileF, rank)
	case QueenSideCastle:
		rookFrom, rookTo = NewSquare(FileA, rank), NewSquare(FileD, rank)
	}

	kingFrom := NewSquare(FileE, rank)
	king, ok := p.at(kingFrom)
	if !ok || king.Kind != King || king.Side != s {
		return nil, &MoveError{Kind: CastlingNotAllowed, Move: m}
	}
	if p.IsChecked(s) {
		return nil, &MoveError{Kind: CastlingNotAllowed, Move: m}
	}

	between := p.castlingCandidates()
	found := false
	for _, c := range between {
		if c.Equals(m) {
			found = true
			break
		}
	}
	if !found {
		return nil, &MoveError{Kind: CastlingNotAllowed, Move: m}
	}

	squares := p.squares
	squares[m.To] = king
	squares[kingFrom] = Piece{Kind: NoPieceKind}
	rook, _ := p.at(rookFrom)
	squares[rookTo] = rook
	squares[rookFrom] = Piece{Kind: NoPieceKind}

	next := p.buildNext(squares, king, m, false)
	if next.IsChecked(s) {
		return nil, &MoveError{Kind: LeavesOwnKingInCheck, Move: m}
	}
	return next, nil
}

// buildNext constructs the successor position after a board-level update, applying
// castling-rights revocation, en passant bookkeeping, clocks and the side to move.
func (p *Position) buildNext(squares [64]Piece, moved Piece, m Move, wasCapture bool) *Position {
	castling := p.castling
	if moved.Kind == King {
		castling = castling.Clear(moved.Side)
	}
	if moved.Kind == Rook {
		castling = revokeRookRight(castling, moved.Side, m.From)
	}
	if capturedRook, ok := p.at(m.To); ok && capturedRook.Kind == Rook && m.Castle == NoCastle {
		castling = revokeRookRight(castling, capturedRook.Side, m.To)
	}

	var epTarget Square
	var epSet bool
	if moved.Kind == Pawn {
		df := int(m.To.Rank()) - int(m.From.Rank())
		if df == 2 || df == -2 {
			mid, _ := m.From.Shift(0, df/2)
			epTarget, epSet = mid, true
		}
	}

	halfMove := p.halfMoveClock + 1
	if moved.Kind == Pawn || wasCapture || m.Capture {
		halfMove = 0
	}

	fullMove := p.fullMoveNumber
	if p.active == Black {
		fullMove++
	}

	return newPositionRaw(squares, p.active.Opponent(), castling, epTarget, epSet, halfMove, fullMove)
}

func revokeRookRight(c Castling, s Side, sq Square) Castling {
	rank := Rank1
	if s == Black {
		rank = Rank8
	}
	if sq == NewSquare(FileA, rank) {
		return c.ClearSide(s, QueenSideCastle)
	}
	if sq == NewSquare(FileH, rank) {
		return c.ClearSide(s, KingSideCastle)
	}
	return c
}

func requiresClearPath(k PieceKind) bool {
	return k == Bishop || k == Rook || k == Queen
}

func (p *Position) pathClear(from, to Square) bool {
	df := sign(int(to.File()) - int(from.File()))
	dr := sign(int(to.Rank()) - int(from.Rank()))
	return p.rayClear(from, to, df, dr)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// isGeometryValid checks the movement shape for a non-castling move, ignoring path
// obstructions (checked separately) and self-check (checked by the caller).
func (p *Position) isGeometryValid(piece Piece, m Move) bool {
	df := int(m.To.File()) - int(m.From.File())
	dr := int(m.To.Rank()) - int(m.From.Rank())
	if df == 0 && dr == 0 {
		return false
	}

	switch piece.Kind {
	case Pawn:
		step := 1
		startRank := Rank2
		if piece.Side == Black {
			step = -1
			startRank = Rank7
		}
		target, hasTarget := p.at(m.To)
		isCapture := hasTarget && target.Side != piece.Side
		switch {
		case df == 0 && dr == step && !hasTarget:
			return true
		case df == 0 && dr == 2*step && m.From.Rank() == startRank && !hasTarget:
			mid, ok := m.From.Shift(0, step)
			return ok && p.IsEmpty(mid)
		case (df == 1 || df == -1) && dr == step && isCapture:
			return true
		default:
			return false
		}
	case Knight:
		return abs(df)*abs(dr) == 2
	case Bishop:
		return abs(df) == abs(dr)
	case Rook:
		return df == 0 || dr == 0
	case Queen:
		return df == 0 || dr == 0 || abs(df) == abs(dr)
	case King:
		return abs(df) <= 1 && abs(dr) <= 1
	default:
		return false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
