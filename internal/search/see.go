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
	"github.com/frankkopp/chessengine/internal/attacks"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
)

var seeAttackerOrder = [6]types.PieceType{
	types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen, types.King,
}

// see runs static exchange evaluation on move's destination square: the
// net material gain for the moving side if both sides recapture with
// their least valuable attacker until no recapture remains profitable
// (§4.F "Static Exchange Evaluation"). It simulates against a local copy
// of the position's piece bitboards, re-deriving slider attacks against
// the shrinking occupancy each step so x-ray attackers are discovered
// naturally, exactly as AttacksTo/revealedAttacks did for the teacher.
func (s *Searcher) see(pos *position.Position, move types.Move) types.Value {
	if move.IsEnPassant() {
		return types.Pawn.Value()
	}

	to := move.To()
	fromSq := move.From()
	movedPiece := move.Piece()
	target := pos.PieceAt(to)

	var pieces [2][types.PtLength]types.Bitboard
	for c := types.White; c <= types.Black; c++ {
		for pt := types.Pawn; pt < types.PtLength; pt++ {
			pieces[c][pt] = pos.PiecesBb(c, pt)
		}
	}
	occ := pos.OccupiedAll()

	attackersOf := func(c types.Color) types.Bitboard {
		return (attacks.Pawn(c.Flip(), to) & pieces[c][types.Pawn]) |
			(attacks.Knight(to) & pieces[c][types.Knight]) |
			(attacks.King(to) & pieces[c][types.King]) |
			(attacks.Bishop(to, occ) & (pieces[c][types.Bishop] | pieces[c][types.Queen])) |
			(attacks.Rook(to, occ) & (pieces[c][types.Rook] | pieces[c][types.Queen]))
	}
	leastValuable := func(c types.Color, bb types.Bitboard) (types.Square, types.PieceType) {
		for _, pt := range seeAttackerOrder {
			if sub := bb & pieces[c][pt]; sub != types.BbZero {
				return sub.Lsb(), pt
			}
		}
		return types.SqNone, types.PtNone
	}

	gain := make([]types.Value, 1, 32)
	gain[0] = target.BaseType().Value()

	side := movedPiece.ColorOf().Flip()
	nextAttackerValue := movedPiece.BaseType().Value()
	if move.IsPromotion() {
		nextAttackerValue = move.Promotion().Value() - types.Pawn.Value()
	}

	// the moving piece has vacated fromSq and now stands on `to`
	pieces[movedPiece.ColorOf()][movedPiece.BaseType()] = pieces[movedPiece.ColorOf()][movedPiece.BaseType()].PopSquare(fromSq)
	occ = occ.PopSquare(fromSq)

	d := 0
	for {
		d++
		gain = append(gain, nextAttackerValue-gain[d-1])
		if seeMax(-gain[d-1], gain[d]) < 0 {
			break
		}

		attackers := attackersOf(side)
		if attackers == types.BbZero {
			break
		}
		sq, pt := leastValuable(side, attackers)

		occ = occ.PopSquare(sq)
		pieces[side][pt] = pieces[side][pt].PopSquare(sq)
		nextAttackerValue = pt.Value()
		side = side.Flip()
	}

	// the last entry computed was only ever used to decide the prune check
	// (or to confirm the previous attacker) and never itself represents a
	// completed capture the back-propagation should count.
	d--
	for d > 0 {
		gain[d-1] = -seeMax(-gain[d-1], gain[d])
		d--
	}
	return gain[0]
}

func seeMax(a, b types.Value) types.Value {
	if a > b {
		return a
	}
	return b
}
