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

// Package movegen generates pseudo-legal and legal moves for a position
// (§4.D), and exposes the attack probe the searcher and evaluator use
// to test whether a square is attacked.
package movegen

import (
	"github.com/frankkopp/chessengine/internal/attacks"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
)

// promotionPieces is the fixed expansion order for a pawn reaching the
// last rank: queen, rook, bishop, knight.
var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// Generator holds a reusable move buffer so repeated generation calls
// (as happens thousands of times per search) do not allocate.
type Generator struct {
	buf []types.Move
}

// NewGenerator creates a move generator with a preallocated buffer.
func NewGenerator() *Generator {
	return &Generator{buf: make([]types.Move, 0, 128)}
}

// GeneratePseudoLegal returns every pseudo-legal move for the side to
// move in pos: moves obeying piece-motion rules but possibly leaving
// the mover's own king in check.
func (g *Generator) GeneratePseudoLegal(pos *position.Position) []types.Move {
	g.buf = g.buf[:0]
	us := pos.SideToMove()
	genPawnMoves(pos, us, &g.buf)
	genPieceMoves(pos, us, types.Knight, &g.buf)
	genPieceMoves(pos, us, types.King, &g.buf)
	genPieceMoves(pos, us, types.Bishop, &g.buf)
	genPieceMoves(pos, us, types.Rook, &g.buf)
	genPieceMoves(pos, us, types.Queen, &g.buf)
	genCastling(pos, us, &g.buf)
	return g.buf
}

// GenerateLegal returns every legal move: each pseudo-legal move is
// made on the live position and kept iff the mover's king is not left
// in check (§4.D "Legality filter"). Castling's transit-square check
// is enforced redundantly at generation time by genCastling.
func (g *Generator) GenerateLegal(pos *position.Position) []types.Move {
	pseudo := g.GeneratePseudoLegal(pos)
	legal := make([]types.Move, 0, len(pseudo))
	us := pos.SideToMove()
	for _, m := range pseudo {
		pos.MakeMove(m)
		if !IsSquareAttackedBy(pos, pos.KingSquare(us), pos.SideToMove()) {
			legal = append(legal, m)
		}
		pos.UndoMove()
	}
	return legal
}

// IsInCheck reports whether the side to move's king is attacked.
func IsInCheck(pos *position.Position) bool {
	us := pos.SideToMove()
	return IsSquareAttackedBy(pos, pos.KingSquare(us), us.Flip())
}

// IsSquareAttackedBy reports whether any piece of side attacks sq in
// pos (§4.D "Attack probe").
func IsSquareAttackedBy(pos *position.Position, sq types.Square, side types.Color) bool {
	return attacks.IsSquareAttackedBy(sq, side, pos.OccupiedAll(), pos.PiecesBb)
}

// genPieceMoves handles knights, king, and sliders alike: attacks.Of
// already dispatches sliders to ray-scanning and knight/king to their
// precomputed tables, so the destination-masking logic is identical.
func genPieceMoves(pos *position.Position, us types.Color, pt types.PieceType, out *[]types.Move) {
	piece := types.MakePiece(us, pt)
	ownBb := pos.OccupiedBb(us)
	foeBb := pos.OccupiedBb(us.Flip())
	for pieces := pos.PiecesBb(us, pt); pieces != types.BbZero; {
		from := pieces.PopLsb()
		dests := attacks.Of(pt, from, pos.OccupiedAll()) &^ ownBb
		for d := dests; d != types.BbZero; {
			to := d.PopLsb()
			captured := types.PieceNone
			if foeBb.Has(to) {
				captured = pos.PieceAt(to)
			}
			*out = append(*out, types.NewMove(from, to, piece, captured, types.PtNone, false, false, false))
		}
	}
}

func genPawnMoves(pos *position.Position, us types.Color, out *[]types.Move) {
	piece := types.MakePiece(us, types.Pawn)
	them := us.Flip()
	forward := us.MoveDirection()
	occAll := pos.OccupiedAll()
	foeBb := pos.OccupiedBb(them)
	promoRank := us.PromotionRank()

	for pieces := pos.PiecesBb(us, types.Pawn); pieces != types.BbZero; {
		from := pieces.PopLsb()

		// single push
		one := from.To(forward)
		if one != types.SqNone && !occAll.Has(one) {
			addPawnMove(out, piece, from, one, types.PieceNone, promoRank, false)
			// double push from the starting rank
			if from.RankOf() == us.PawnRank() {
				two := one.To(forward)
				if two != types.SqNone && !occAll.Has(two) {
					*out = append(*out, types.NewMove(from, two, piece, types.PieceNone, types.PtNone, false, false, true))
				}
			}
		}

		// diagonal captures
		for _, d := range diagonalsFor(us) {
			to := from.To(d)
			if to == types.SqNone {
				continue
			}
			if foeBb.Has(to) {
				addPawnMove(out, piece, from, to, pos.PieceAt(to), promoRank, false)
				continue
			}
			if to == pos.EpSquare() && pos.EpSquare() != types.SqNone {
				capturedPawn := types.MakePiece(them, types.Pawn)
				*out = append(*out, types.NewMove(from, to, piece, capturedPawn, types.PtNone, true, false, false))
			}
		}
	}
}

func diagonalsFor(c types.Color) [2]types.Direction {
	if c == types.White {
		return [2]types.Direction{types.Northwest, types.Northeast}
	}
	return [2]types.Direction{types.Southwest, types.Southeast}
}

func addPawnMove(out *[]types.Move, piece types.Piece, from, to types.Square, captured types.Piece, promoRank types.Rank, _ bool) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionPieces {
			*out = append(*out, types.NewMove(from, to, piece, captured, pt, false, false, false))
		}
		return
	}
	*out = append(*out, types.NewMove(from, to, piece, captured, types.PtNone, false, false, false))
}

func genCastling(pos *position.Position, us types.Color, out *[]types.Move) {
	rights := pos.CastlingRights()
	occAll := pos.OccupiedAll()
	them := us.Flip()

	if us == types.White {
		if rights.Has(types.CastlingWhiteKingside) &&
			!occAll.Has(types.SqF1) && !occAll.Has(types.SqG1) &&
			!IsSquareAttackedBy(pos, types.SqE1, them) &&
			!IsSquareAttackedBy(pos, types.SqF1, them) &&
			!IsSquareAttackedBy(pos, types.SqG1, them) {
			*out = append(*out, types.NewMove(types.SqE1, types.SqG1, types.WhiteKing, types.PieceNone, types.PtNone, false, true, false))
		}
		if rights.Has(types.CastlingWhiteQueenside) &&
			!occAll.Has(types.SqD1) && !occAll.Has(types.SqC1) && !occAll.Has(types.SqB1) &&
			!IsSquareAttackedBy(pos, types.SqE1, them) &&
			!IsSquareAttackedBy(pos, types.SqD1, them) &&
			!IsSquareAttackedBy(pos, types.SqC1, them) {
			*out = append(*out, types.NewMove(types.SqE1, types.SqC1, types.WhiteKing, types.PieceNone, types.PtNone, false, true, false))
		}
		return
	}
	if rights.Has(types.CastlingBlackKingside) &&
		!occAll.Has(types.SqF8) && !occAll.Has(types.SqG8) &&
		!IsSquareAttackedBy(pos, types.SqE8, them) &&
		!IsSquareAttackedBy(pos, types.SqF8, them) &&
		!IsSquareAttackedBy(pos, types.SqG8, them) {
		*out = append(*out, types.NewMove(types.SqE8, types.SqG8, types.BlackKing, types.PieceNone, types.PtNone, false, true, false))
	}
	if rights.Has(types.CastlingBlackQueenside) &&
		!occAll.Has(types.SqD8) && !occAll.Has(types.SqC8) && !occAll.Has(types.SqB8) &&
		!IsSquareAttackedBy(pos, types.SqE8, them) &&
		!IsSquareAttackedBy(pos, types.SqD8, them) &&
		!IsSquareAttackedBy(pos, types.SqC8, them) {
		*out = append(*out, types.NewMove(types.SqE8, types.SqC8, types.BlackKing, types.PieceNone, types.PtNone, false, true, false))
	}
}

// Perft counts leaf nodes at depth by making and unmaking every legal
// move, recursing on whatever remains of depth.
func Perft(g *Generator, pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range g.GenerateLegal(pos) {
		pos.MakeMove(m)
		nodes += Perft(g, pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}
