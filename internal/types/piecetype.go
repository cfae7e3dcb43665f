package types

// PieceType is the base kind of a piece, independent of color.
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength = King + 1
)

// pieceTypeValue holds centipawn material values indexed by PieceType.
// King carries 0 per the evaluator contract (its presence is not material).
var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 0}

// Value returns the material value of one piece of this type.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

// PhaseWeight returns this piece type's contribution to the game-phase sum.
func (pt PieceType) PhaseWeight() int {
	switch pt {
	case Knight, Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 4
	default:
		return 0
	}
}

func (pt PieceType) String() string {
	switch pt {
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
		return "-"
	}
}
