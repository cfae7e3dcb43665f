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

// Package attacks precomputes non-sliding attack masks at init time and
// generates sliding-piece attacks on demand as a pure function of
// (square, occupancy), per spec §4.A. Sliding attacks are ray-scanned
// rather than looked up from magic-bitboard tables — the contract only
// requires a pure function of square and occupancy, and ray scanning is
// a direct, auditable expression of that contract without a second copy
// of a magic-constant table.
package attacks

import "github.com/frankkopp/chessengine/internal/types"

var knightAttacks [64]types.Bitboard
var kingAttacks [64]types.Bitboard
var pawnAttacks [2][64]types.Bitboard // indexed by types.Color

func init() {
	for sq := types.Square(0); sq < 64; sq++ {
		knightAttacks[sq] = knightAttacksFrom(sq)
		kingAttacks[sq] = kingAttacksFrom(sq)
		pawnAttacks[types.White][sq] = pawnAttacksFrom(sq, types.White)
		pawnAttacks[types.Black][sq] = pawnAttacksFrom(sq, types.Black)
	}
}

type step struct{ df, dr int }

var knightSteps = [8]step{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8]step{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func stepAttacksFrom(sq types.Square, steps [8]step) types.Bitboard {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	var bb types.Bitboard
	for _, s := range steps {
		nf, nr := f+s.df, r+s.dr
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.PushSquare(types.SquareOf(types.File(nf), types.Rank(nr)))
		}
	}
	return bb
}

func knightAttacksFrom(sq types.Square) types.Bitboard { return stepAttacksFrom(sq, knightSteps) }
func kingAttacksFrom(sq types.Square) types.Bitboard   { return stepAttacksFrom(sq, kingSteps) }

func pawnAttacksFrom(sq types.Square, c types.Color) types.Bitboard {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	dr := 1
	if c == types.Black {
		dr = -1
	}
	var bb types.Bitboard
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dr
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.PushSquare(types.SquareOf(types.File(nf), types.Rank(nr)))
		}
	}
	return bb
}

// Knight returns the precomputed knight-attack mask for sq.
func Knight(sq types.Square) types.Bitboard { return knightAttacks[sq] }

// King returns the precomputed king-attack mask for sq.
func King(sq types.Square) types.Bitboard { return kingAttacks[sq] }

// Pawn returns the attack mask of a pawn of color c standing on sq (the
// set of squares it attacks, i.e. entry sq is "attacks from sq").
func Pawn(c types.Color, sq types.Square) types.Bitboard { return pawnAttacks[c][sq] }

var rookDirs = [4]types.Direction{types.North, types.East, types.South, types.West}
var bishopDirs = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}

func rayAttacks(sq types.Square, occupied types.Bitboard, dirs [4]types.Direction) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			next := cur.To(d)
			if next == types.SqNone {
				break
			}
			bb = bb.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			cur = next
		}
	}
	return bb
}

// Rook returns the union of rays N/E/S/W from sq, each stopping at (and
// including) the first square set in occupied.
func Rook(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return rayAttacks(sq, occupied, rookDirs)
}

// Bishop is Rook's diagonal counterpart.
func Bishop(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return rayAttacks(sq, occupied, bishopDirs)
}

// Queen is the union of Rook and Bishop attacks from sq.
func Queen(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return Rook(sq, occupied) | Bishop(sq, occupied)
}

// Of dispatches to the precomputed tables for Knight/King and to
// ray-scanning for sliders. Pawn is excluded since it needs a color;
// callers use Pawn directly.
func Of(pt types.PieceType, sq types.Square, occupied types.Bitboard) types.Bitboard {
	switch pt {
	case types.Knight:
		return Knight(sq)
	case types.King:
		return King(sq)
	case types.Bishop:
		return Bishop(sq, occupied)
	case types.Rook:
		return Rook(sq, occupied)
	case types.Queen:
		return Queen(sq, occupied)
	default:
		return 0
	}
}

// IsSquareAttackedBy reports whether any piece of side attacks sq on the
// given occupancy, consulting pieceBb(color, pieceType) for each kind
// (§4.D "Attack probe"). Pawn attacks use the table of the opposite
// color, since a pawn attacks from its square outward: a pawn attacking
// sq from square s means s is in Pawn(side, s) and s is occupied by a
// side pawn — equivalently sq is in Pawn(side.Flip(), sq) intersected
// with side's pawns.
func IsSquareAttackedBy(
	sq types.Square,
	side types.Color,
	occupied types.Bitboard,
	pieceBb func(types.Color, types.PieceType) types.Bitboard,
) bool {
	if Pawn(side.Flip(), sq)&pieceBb(side, types.Pawn) != 0 {
		return true
	}
	if Knight(sq)&pieceBb(side, types.Knight) != 0 {
		return true
	}
	if King(sq)&pieceBb(side, types.King) != 0 {
		return true
	}
	bishopsQueens := pieceBb(side, types.Bishop) | pieceBb(side, types.Queen)
	if Bishop(sq, occupied)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pieceBb(side, types.Rook) | pieceBb(side, types.Queen)
	if Rook(sq, occupied)&rooksQueens != 0 {
		return true
	}
	return false
}
