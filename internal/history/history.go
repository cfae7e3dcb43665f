/*
 * chessengine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package history provides the two quiet-move ordering tables the
// searcher updates on a fail-high: a (from,to) history-count array, and
// two killer-move slots per ply.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessengine/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxPly bounds the killer table; the searcher never recurses this deep.
const MaxPly = 128

// History tracks how often a quiet (from,to) pair has caused a
// fail-high, weighted by depth squared, plus the two most recent killer
// moves for each ply.
type History struct {
	Counts  [64][64]int64
	killers [MaxPly][2]types.Move
}

// New creates an empty history/killer table.
func New() *History {
	return &History{}
}

// Score returns the accumulated history weight for a quiet move.
func (h *History) Score(m types.Move) int64 {
	return h.Counts[m.From()][m.To()]
}

// Update records a fail-high on a quiet move at depth, adding depth^2 to
// its (from,to) weight.
func (h *History) Update(m types.Move, depth int) {
	d := int64(depth)
	h.Counts[m.From()][m.To()] += d * d
}

// Decay halves every history weight, called by the searcher every other
// completed iteration to keep counts from swamping the capture/promotion
// ordering bonuses over a long search.
func (h *History) Decay() {
	for f := range h.Counts {
		for t := range h.Counts[f] {
			h.Counts[f][t] /= 2
		}
	}
}

// Killers returns the two killer moves recorded for ply (MoveNone if
// fewer than two have been recorded).
func (h *History) Killers(ply int) (types.Move, types.Move) {
	if ply < 0 || ply >= MaxPly {
		return types.MoveNone, types.MoveNone
	}
	return h.killers[ply][0], h.killers[ply][1]
}

// AddKiller records a fail-high quiet move as the newest killer for ply,
// moving the previous first killer to the second slot (MRU-with-dedup:
// a move already stored is promoted rather than duplicated).
func (h *History) AddKiller(ply int, m types.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	slot := &h.killers[ply]
	mv := m.MoveOf()
	if slot[0].MoveOf() == mv {
		return
	}
	slot[1] = slot[0]
	slot[0] = mv
}

// IsKiller reports whether m matches either killer slot for ply.
func (h *History) IsKiller(ply int, m types.Move) bool {
	k1, k2 := h.Killers(ply)
	mv := m.MoveOf()
	return k1.MoveOf() == mv || k2.MoveOf() == mv
}

// Clear resets both tables, called between independent searches.
func (h *History) Clear() {
	h.Counts = [64][64]int64{}
	h.killers = [MaxPly][2]types.Move{}
}

func (h *History) String() string {
	sb := strings.Builder{}
	for sf := types.SqA1; sf < types.SqNone; sf++ {
		for st := types.SqA1; st < types.SqNone; st++ {
			if h.Counts[sf][st] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: %d\n", sf, st, h.Counts[sf][st]))
		}
	}
	return sb.String()
}
