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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessengine/internal/eval"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/zobrist"
)

func newFen(t *testing.T, fen string) *position.Position {
	t.Helper()
	pos, err := position.NewFen(zobrist.New(zobrist.DefaultSeed), fen)
	assert.NoError(t, err)
	return pos
}

func TestStartPositionIsBalanced(t *testing.T) {
	pos := position.New()
	assert.EqualValues(t, 0, eval.Evaluate(pos))
}

func TestPhaseIsMaxAtStart(t *testing.T) {
	pos := position.New()
	assert.Equal(t, 24, pos.Phase())
}

func TestExtraQueenScoresPositive(t *testing.T) {
	pos := newFen(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.True(t, eval.Evaluate(pos) > 0)
}

func TestEvalFlipsSignForBlackToMove(t *testing.T) {
	white := newFen(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	black := newFen(t, "4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	assert.Equal(t, eval.Evaluate(white), -eval.Evaluate(black))
}

func TestPstMirrorsAcrossColors(t *testing.T) {
	mgWhite, egWhite := eval.PSQ(types.WhiteKnight, types.SqD4)
	mgBlack, egBlack := eval.PSQ(types.BlackKnight, types.SqD5)
	assert.Equal(t, mgWhite, mgBlack)
	assert.Equal(t, egWhite, egBlack)
}

func TestComputeMatchesEvaluateInputs(t *testing.T) {
	pos := position.New()
	c := eval.Compute(pos)
	assert.Equal(t, pos.Material(types.White), c.Material[types.White])
	assert.Equal(t, pos.Phase(), c.Phase)
}
