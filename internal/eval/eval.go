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

package eval

import (
	"github.com/frankkopp/chessengine/internal/attacks"
	"github.com/frankkopp/chessengine/internal/config"
	"github.com/frankkopp/chessengine/internal/types"
)

// Position is the subset of *position.Position the evaluator reads. An
// interface rather than a direct import keeps this package's dependency
// direction one-way: position depends on eval for PSQ, not the reverse.
type Position interface {
	SideToMove() types.Color
	Material(types.Color) types.Value
	PsqMid(types.Color) types.Value
	PsqEnd(types.Color) types.Value
	Phase() int
	KingSquare(types.Color) types.Square
	PiecesBb(types.Color, types.PieceType) types.Bitboard
	OccupiedBb(types.Color) types.Bitboard
	OccupiedAll() types.Bitboard
	HasInsufficientMaterial() bool
}

// mobilityPieces are the piece types that contribute to mobility (§4.E):
// pawns and kings are excluded.
var mobilityPieces = [4]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen}

// mobility counts attack-mask bits excluding own-piece squares, summed
// over knights/bishops/rooks/queens, for color c.
func mobilityCount(pos Position, c types.Color) int {
	occAll := pos.OccupiedAll()
	ownBb := pos.OccupiedBb(c)
	count := 0
	for _, pt := range mobilityPieces {
		for pieces := pos.PiecesBb(c, pt); pieces != types.BbZero; {
			from := pieces.PopLsb()
			count += (attacks.Of(pt, from, occAll) &^ ownBb).PopCount()
		}
	}
	return count
}

// kingSafetyPenalty counts how many squares in c's king ring are
// attacked by the opposing side.
func kingSafetyPenalty(pos Position, c types.Color) int {
	them := c.Flip()
	ring := attacks.King(pos.KingSquare(c))
	penalty := 0
	for ring != types.BbZero {
		sq := ring.PopLsb()
		if attacks.IsSquareAttackedBy(sq, them, pos.OccupiedAll(), pos.PiecesBb) {
			penalty++
		}
	}
	return penalty
}

// Components holds the intermediate mg/eg sub-scores a leaf evaluation
// computes, exposed for the searcher's diagnostics and for tests that
// check the phase blend directly (§7 "eval_components recomputed from
// scratch").
type Components struct {
	Material [2]types.Value
	PsqMid   [2]types.Value
	PsqEnd   [2]types.Value
	Mobility [2]int
	KingSafety [2]int
	Phase    int
}

// Compute gathers every sub-score without blending them, so callers that
// only need to verify incremental maintenance don't pay for mobility and
// king-safety (which are never maintained incrementally, per spec).
func Compute(pos Position) Components {
	var c Components
	for _, color := range [2]types.Color{types.White, types.Black} {
		c.Material[color] = pos.Material(color)
		c.PsqMid[color] = pos.PsqMid(color)
		c.PsqEnd[color] = pos.PsqEnd(color)
		if config.Settings.Eval.UseMobility {
			c.Mobility[color] = mobilityCount(pos, color)
		}
		if config.Settings.Eval.UseKingSafety {
			c.KingSafety[color] = kingSafetyPenalty(pos, color)
		}
	}
	c.Phase = pos.Phase()
	return c
}

// Evaluate scores pos in centipawns from the side-to-move's perspective
// (§4.E "Blend"). Returns ValueZero for theoretically drawn material.
func Evaluate(pos Position) types.Value {
	if pos.HasInsufficientMaterial() {
		return types.ValueZero
	}

	c := Compute(pos)

	material := int(c.Material[types.White] - c.Material[types.Black])
	pstMid := int(c.PsqMid[types.White] - c.PsqMid[types.Black])
	pstEnd := int(c.PsqEnd[types.White] - c.PsqEnd[types.Black])

	mobility := 0
	if config.Settings.Eval.UseMobility {
		mobility = config.Settings.Eval.MobilityWeight * (c.Mobility[types.White] - c.Mobility[types.Black])
	}

	kingSafety := 0
	if config.Settings.Eval.UseKingSafety {
		kingSafety = -config.Settings.Eval.KingSafetyPenalty * (c.KingSafety[types.White] - c.KingSafety[types.Black])
	}

	s := types.Score{
		MidGameValue: material + pstMid + mobility + kingSafety,
		EndGameValue: material + pstEnd + mobility/2,
	}
	score := s.Blend(c.Phase)

	if pos.SideToMove() == types.Black {
		score = -score
	}
	return score
}
