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

// Package eval scores a position in centipawns from the side-to-move's
// perspective (§4.E). Piece-square values are closed-form expressions
// of a square's file/rank distance from the centre rather than literal
// tables, mirrored across the horizontal midline for black.
package eval

import "github.com/frankkopp/chessengine/internal/types"

// fileDist and rankDist measure how far a file/rank lies from the
// board's centre, scaled by 2 so centre files/ranks (d/e, 4/5) land on
// odd integers 1 without fractional arithmetic.
func fileDist(f types.File) int {
	d := 2*int(f) - 7
	if d < 0 {
		d = -d
	}
	return d
}

func rankDist(r types.Rank) int {
	d := 2*int(r) - 7
	if d < 0 {
		d = -d
	}
	return d
}

func centerDist(sq types.Square) int {
	return fileDist(sq.FileOf()) + rankDist(sq.RankOf())
}

// pstWhite returns the (mid, end) piece-square value for a piece of
// base type pt standing on sq, as if pt were white. Callers mirror sq
// for black pieces.
func pstWhite(pt types.PieceType, sq types.Square) (mg, eg types.Value) {
	cd := centerDist(sq)
	switch pt {
	case types.Pawn:
		rank := int(sq.RankOf())
		mg = types.Value(rank*5 - fileDist(sq.FileOf()))
		eg = types.Value(rank * 10)
	case types.Knight:
		mg = types.Value(20 - cd*4)
		eg = types.Value(20 - cd*4)
	case types.Bishop:
		mg = types.Value(10 - cd*2)
		eg = types.Value(10 - cd*2)
	case types.Rook:
		mg = types.Value(5 - cd)
		eg = types.Value(5 - cd)
	case types.Queen:
		mg = types.Value(10 - cd*2)
		eg = types.Value(10 - cd*2)
	case types.King:
		mg = types.Value(cd * 4)
		eg = types.Value(20 - cd*4)
	}
	return
}

// PSQ returns the piece-square (mid, end) contribution of piece on sq,
// already signed for board orientation: black squares are evaluated by
// mirroring across the horizontal midline, per §4.E.
func PSQ(piece types.Piece, sq types.Square) (mg, eg types.Value) {
	pt := piece.BaseType()
	if piece.ColorOf() == types.Black {
		sq = sq.MirrorVertical()
	}
	return pstWhite(pt, sq)
}
