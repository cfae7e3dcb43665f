package types

// Piece is one of the twelve piece kinds, indexed 0..11: white
// P,N,B,R,Q,K then black p,n,b,r,q,k. p.BaseType() == PieceType(index mod 6 + 1).
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = PieceNone
)

var pieceLetters = "PNBRQKpnbrqk"

// MakePiece builds a Piece from a color and base type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(c)*6 + int(pt) - 1)
}

// IsValid reports whether p is one of the 12 real piece kinds.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceNone
}

// BaseType returns the color-independent piece type.
func (p Piece) BaseType() PieceType {
	if !p.IsValid() {
		return PtNone
	}
	return PieceType(int(p)%6) + 1
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// Value returns the material value of the piece (sign-independent).
func (p Piece) Value() Value {
	return p.BaseType().Value()
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceLetters[p])
}

// PieceFromLetter parses a FEN piece letter, PieceNone if unrecognized.
func PieceFromLetter(l byte) Piece {
	for i := 0; i < int(PieceLength); i++ {
		if pieceLetters[i] == l {
			return Piece(i)
		}
	}
	return PieceNone
}
