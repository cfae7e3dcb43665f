package types

import "fmt"

// Move is an immutable packed move record: from-square, to-square, the
// moving piece, an optional captured piece, an optional promotion piece
// type, the en-passant/castling/double-push flags, and (in the high 32
// bits) a search-assigned sort value used only for move ordering. MoveOf
// strips the sort value so that moves compare equal regardless of it;
// SameAs compares only the (from, to, promotion) triple.
type Move uint64

const (
	moveFromShift     = 0
	moveToShift       = 6
	movePieceShift    = 12
	moveCapturedShift = 16
	movePromoShift    = 20
	moveFlagsShift    = 23
	moveValueShift    = 32

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
	movePromoMask  = 0x7

	flagEnPassant  = 1 << 0
	flagCastling   = 1 << 1
	flagDoublePush = 1 << 2
)

// MoveNone is the zero value; From()==To()==SqA1, and IsValid() reports
// false for it.
const MoveNone Move = 0

// NewMove builds a move record. captured and promo may be PieceNone /
// PtNone respectively when not applicable.
func NewMove(from, to Square, piece, captured Piece, promo PieceType, enPassant, castling, doublePush bool) Move {
	m := Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(piece)<<movePieceShift |
		Move(captured)<<moveCapturedShift |
		Move(promo)<<movePromoShift
	var flags Move
	if enPassant {
		flags |= flagEnPassant
	}
	if castling {
		flags |= flagCastling
	}
	if doublePush {
		flags |= flagDoublePush
	}
	return m | flags<<moveFlagsShift
}

func (m Move) From() Square     { return Square((m >> moveFromShift) & moveSquareMask) }
func (m Move) To() Square       { return Square((m >> moveToShift) & moveSquareMask) }
func (m Move) Piece() Piece     { return Piece((m >> movePieceShift) & movePieceMask) }
func (m Move) Captured() Piece  { return Piece((m >> moveCapturedShift) & movePieceMask) }
func (m Move) Promotion() PieceType {
	return PieceType((m >> movePromoShift) & movePromoMask)
}
func (m Move) IsCapture() bool    { return m.Captured() != PieceNone || m.IsEnPassant() }
func (m Move) IsPromotion() bool  { return m.Promotion() != PtNone }
func (m Move) IsEnPassant() bool  { return (m>>moveFlagsShift)&flagEnPassant != 0 }
func (m Move) IsCastling() bool   { return (m>>moveFlagsShift)&flagCastling != 0 }
func (m Move) IsDoublePush() bool { return (m>>moveFlagsShift)&flagDoublePush != 0 }

// IsQuiet reports the spec's "quiet" classification: no capture, no
// promotion, no en passant.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// MoveOf strips the sort value, leaving only the identity-relevant bits.
func (m Move) MoveOf() Move {
	return m &^ (Move(0xFFFFFFFF) << moveValueShift)
}

// SameAs reports (from, to, promotion) equivalence, ignoring sort value
// and even the recorded piece/captured/flag bits (those are derivable
// from position context and two moves with the same from/to/promotion
// are always the same move for a given position).
func (m Move) SameAs(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Promotion() == o.Promotion()
}

// Value returns the embedded sort value.
func (m Move) Value() Value {
	return Value(int32(uint32(m >> moveValueShift)))
}

// WithValue returns a copy of m with its sort value replaced.
func (m Move) WithValue(v Value) Move {
	cleared := m.MoveOf()
	return cleared | Move(uint32(int32(v)))<<moveValueShift
}

// IsValid reports whether the move has distinct, valid squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders long algebraic notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}

// DebugString renders all packed fields, for logging.
func (m Move) DebugString() string {
	return fmt.Sprintf("%s piece=%s captured=%s promo=%s ep=%v castle=%v dbl=%v value=%s",
		m.String(), m.Piece(), m.Captured(), m.Promotion(), m.IsEnPassant(), m.IsCastling(), m.IsDoublePush(), m.Value())
}
