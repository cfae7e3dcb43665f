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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessengine/internal/engineerr"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/zobrist"
)

func fenPosition(t *testing.T, fen string) *position.Position {
	t.Helper()
	pos, err := position.NewFen(zobrist.New(zobrist.DefaultSeed), fen)
	assert.NoError(t, err)
	return pos
}

func TestSearchIsDeterministic(t *testing.T) {
	pos := position.New()
	s1 := New()
	m1, v1, n1 := s1.Search(pos, 3, 0, nil, nil)

	pos2 := position.New()
	s2 := New()
	m2, v2, n2 := s2.Search(pos2, 3, 0, nil, nil)

	assert.True(t, m1.SameAs(m2))
	assert.Equal(t, v1, v2)
	assert.Equal(t, n1, n2)
}

func TestStalemateReturnsNoMoveAndZeroScore(t *testing.T) {
	pos := fenPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	s := New()
	m, v, _ := s.Search(pos, 3, 0, nil, nil)
	assert.Equal(t, types.MoveNone, m)
	assert.EqualValues(t, types.ValueZero, v)
}

func TestMateInOneIsFoundAtDepthTwo(t *testing.T) {
	pos := fenPosition(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	s := New()
	m, v, _ := s.Search(pos, 2, 0, nil, nil)
	assert.Equal(t, types.SqA1, m.From())
	assert.Equal(t, types.SqA8, m.To())
	assert.True(t, v.IsMateScore())
	assert.True(t, v > 0)
}

func TestSeeDefendedCaptureIsLosing(t *testing.T) {
	pos := fenPosition(t, "4k3/8/3b4/4p3/4R3/8/8/4K3 w - - 0 1")
	s := New()
	m := types.NewMove(types.SqE4, types.SqE5, types.WhiteRook, types.BlackPawn, types.PtNone, false, false, false)
	assert.EqualValues(t, -400, s.see(pos, m))
}

func TestSeeEqualRookTradeIsZero(t *testing.T) {
	pos := fenPosition(t, "4r2k/8/8/4r3/4R3/8/8/7K w - - 0 1")
	s := New()
	m := types.NewMove(types.SqE4, types.SqE5, types.WhiteRook, types.BlackRook, types.PtNone, false, false, false)
	assert.EqualValues(t, 0, s.see(pos, m))
}

func TestSeeUndefendedCaptureKeepsFullValue(t *testing.T) {
	pos := fenPosition(t, "4k3/8/8/4p3/4R3/8/8/4K3 w - - 0 1")
	s := New()
	m := types.NewMove(types.SqE4, types.SqE5, types.WhiteRook, types.BlackPawn, types.PtNone, false, false, false)
	assert.EqualValues(t, 100, s.see(pos, m))
}

func TestStopFlagHaltsNegamaxImmediately(t *testing.T) {
	pos := position.New()
	s := New()
	s.stopFlag.Store(true)
	score := s.negamax(pos, 5, 0, -types.ValueInfinite, types.ValueInfinite, true, nil)
	assert.True(t, s.outOfTime)
	assert.EqualValues(t, -types.ValueInfinite, score)
}

func TestStartSearchRejectsWhileRunning(t *testing.T) {
	pos := position.New()
	s := New()

	err := s.StartSearch(pos, 6, 0, nil, nil)
	assert.NoError(t, err)
	assert.True(t, s.IsSearching())

	err = s.StartSearch(pos, 6, 0, nil, nil)
	assert.ErrorIs(t, err, engineerr.ErrSearchBusy)

	s.RequestStop()
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
}

func TestTTConsistencyAcrossTranspositions(t *testing.T) {
	// 1.Nf3 Nf6 2.Nc3 Nc6 and 1.Nc3 Nc6 2.Nf3 Nf6 reach the same position by
	// a different move order; that position, given here as one FEN and
	// searched by two independent searchers, gets the same evaluation.
	posA := fenPosition(t, "r1bqkb1r/pppppppp/2n2n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R w KQkq - 4 3")
	s := New()
	_, vA, _ := s.Search(posA, 3, 0, nil, nil)

	posB := fenPosition(t, "r1bqkb1r/pppppppp/2n2n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R w KQkq - 4 3")
	s2 := New()
	_, vB, _ := s2.Search(posB, 3, 0, nil, nil)

	assert.Equal(t, vA, vB)
}
