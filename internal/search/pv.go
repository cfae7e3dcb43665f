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
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
)

// extractPV walks the transposition table's best-move chain from the
// current position, up to maxLen moves, per §4.F "PV extraction". It
// stops at a missing entry, a missing move, or a move already seen (a
// TT cycle), and always restores pos to its original state.
func (s *Searcher) extractPV(pos *position.Position, maxLen int) []types.Move {
	pv := make([]types.Move, 0, maxLen)
	seen := make(map[types.Move]bool, maxLen)
	applied := 0

	for len(pv) < maxLen {
		entry := s.tt.Probe(pos.ZobristKey())
		if entry == nil || entry.Move == types.MoveNone {
			break
		}
		mv := entry.Move.MoveOf()
		if seen[mv] {
			break
		}
		seen[mv] = true
		pv = append(pv, mv)
		pos.MakeMove(mv)
		applied++
	}

	for i := 0; i < applied; i++ {
		pos.UndoMove()
	}
	return pv
}
