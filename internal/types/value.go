package types

import "fmt"

// Value is a centipawn score.
type Value int32

const (
	// ValueZero is a drawn / neutral score.
	ValueZero Value = 0
	// ValueMate is the mate base score; mate-in-N scores are MATE-ply.
	ValueMate Value = 1_000_000
	// ValueMateThreshold: scores beyond this in absolute value are mate scores.
	ValueMateThreshold Value = ValueMate - 10_000
	// ValueInfinite bounds aspiration windows.
	ValueInfinite Value = ValueMate + 1
)

// IsMateScore reports whether v represents a forced mate.
func (v Value) IsMateScore() bool {
	if v < 0 {
		v = -v
	}
	return v > ValueMateThreshold
}

// MateIn returns the number of plies to mate (positive: side to move
// mates; negative: side to move gets mated), valid only if IsMateScore.
func (v Value) MateIn() int {
	if v > 0 {
		return int(ValueMate-v+1) / 2
	}
	return -int(ValueMate+v+1) / 2
}

func (v Value) String() string {
	if v.IsMateScore() {
		return fmt.Sprintf("mate %d", v.MateIn())
	}
	return fmt.Sprintf("cp %d", int(v))
}
