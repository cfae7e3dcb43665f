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

package search

import (
	"sort"

	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/util"
)

const (
	orderTT          = types.Value(100_000)
	orderKiller1     = types.Value(80_000)
	orderKiller2     = types.Value(70_000)
	orderGoodCapBase = types.Value(1_000)
	orderBadCapBase  = types.Value(-1_000)
	orderPromoBase   = types.Value(500)

	// maxHistoryOrderValue bounds a quiet move's history contribution so a
	// long search (many fail-highs between Decay calls) can't overflow
	// types.Value when the int64 counter is narrowed down to it.
	maxHistoryOrderValue = int64(orderKiller2 - 1)
)

// orderMoves assigns each move a sort value per §4.F "Move ordering" and
// sorts moves descending by it. SEE is cached per call so a capture's
// exchange value is computed once even if re-examined while sorting.
// qsearch moves skip the TT/killer/history bonuses entirely.
func (s *Searcher) orderMoves(pos *position.Position, moves []types.Move, ttMove types.Move, ply int, qsearch bool) {
	seeCache := make(map[types.Move]types.Value, len(moves))
	var killer1, killer2 types.Move
	if !qsearch {
		killer1, killer2 = s.hist.Killers(ply)
	}

	for i, m := range moves {
		var value types.Value
		switch {
		case !qsearch && ttMove != types.MoveNone && m.SameAs(ttMove):
			value = orderTT
		case m.IsPromotion():
			value = orderPromoBase + m.Promotion().Value()
		case m.IsCapture():
			key := m.MoveOf()
			seeVal, ok := seeCache[key]
			if !ok {
				seeVal = s.see(pos, m)
				seeCache[key] = seeVal
			}
			if seeVal >= 0 {
				value = orderGoodCapBase + seeVal
			} else {
				value = orderBadCapBase + seeVal
			}
		default:
			if !qsearch {
				switch {
				case killer1 != types.MoveNone && m.SameAs(killer1):
					value = orderKiller1
				case killer2 != types.MoveNone && m.SameAs(killer2):
					value = orderKiller2
				}
				value += types.Value(util.Min64(s.hist.Score(m), maxHistoryOrderValue))
			}
		}
		moves[i] = m.WithValue(value)
	}

	sort.SliceStable(moves, func(a, b int) bool {
		return moves[a].Value() > moves[b].Value()
	})
}
