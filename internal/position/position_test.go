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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chessengine/internal/movegen"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/zobrist"
)

func newFen(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := NewFen(zobrist.New(zobrist.DefaultSeed), fen)
	require.NoError(t, err)
	return p
}

func TestNewIsStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqE1))
	assert.Equal(t, types.BlackKing, p.PieceAt(types.SqE8))
	assert.Equal(t, types.SqE1, p.KingSquare(types.White))
	assert.Equal(t, types.SqE8, p.KingSquare(types.Black))
	assert.Equal(t, types.SqNone, p.EpSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
}

func TestNewFenRejectsGarbage(t *testing.T) {
	_, err := NewFen(zobrist.New(zobrist.DefaultSeed), "not a fen")
	assert.Error(t, err)
}

func TestNewFenRoundTrips(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkb1r/pppppppp/2n2n2/8/8/2N2N2/PPPPPPPP/R1BQKB1R w KQkq - 4 3",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
	}
	for _, fen := range fens {
		p := newFen(t, fen)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestCloneIsIndependentCopy(t *testing.T) {
	p := New()
	c := p.Clone()
	require.Equal(t, p.Fen(), c.Fen())

	m := types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.PieceNone, types.PtNone, false, false, true)
	c.MakeMove(m)

	assert.Equal(t, StartFen, p.Fen())
	assert.NotEqual(t, p.Fen(), c.Fen())
}

func TestMakeUndoMoveRestoresEverything(t *testing.T) {
	p := New()
	before := p.Fen()
	beforeKey := p.ZobristKey()

	m := types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.PieceNone, types.PtNone, false, false, true)
	p.MakeMove(m)
	assert.NotEqual(t, before, p.Fen())
	assert.Equal(t, types.Black, p.SideToMove())
	assert.Equal(t, types.SqE3, p.EpSquare())

	p.UndoMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestUndoMoveOnEmptyHistoryPanics(t *testing.T) {
	p := New()
	assert.Panics(t, func() { p.UndoMove() })
}

func TestMakeMoveNormalQuiet(t *testing.T) {
	p := newFen(t, "4k3/8/8/8/4N3/8/8/4K3 w - - 3 5")
	m := types.NewMove(types.SqE4, types.SqD6, types.WhiteKnight, types.PieceNone, types.PtNone, false, false, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteKnight, p.PieceAt(types.SqD6))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE4))
	assert.Equal(t, 4, p.HalfMoveClock())
}

func TestMakeMoveCapture(t *testing.T) {
	p := newFen(t, "4k3/8/8/3p4/4N3/8/8/4K3 w - - 0 1")
	m := types.NewMove(types.SqE4, types.SqD5, types.WhiteKnight, types.BlackPawn, types.PtNone, false, false, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteKnight, p.PieceAt(types.SqD5))
	assert.Equal(t, 0, p.HalfMoveClock())
	p.UndoMove()
	assert.Equal(t, types.BlackPawn, p.PieceAt(types.SqD5))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE4))
}

func TestMakeMoveCastlingMovesRook(t *testing.T) {
	p := newFen(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m := types.NewMove(types.SqE1, types.SqG1, types.WhiteKing, types.PieceNone, types.PtNone, false, true, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqG1))
	assert.Equal(t, types.WhiteRook, p.PieceAt(types.SqF1))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqH1))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE1))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteKingside))
	assert.False(t, p.CastlingRights().Has(types.CastlingWhiteQueenside))

	p.UndoMove()
	assert.Equal(t, types.WhiteKing, p.PieceAt(types.SqE1))
	assert.Equal(t, types.WhiteRook, p.PieceAt(types.SqH1))
	assert.True(t, p.CastlingRights().Has(types.CastlingWhiteKingside))
}

func TestMakeMoveEnPassant(t *testing.T) {
	p := newFen(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := types.NewMove(types.SqE5, types.SqD6, types.WhitePawn, types.BlackPawn, types.PtNone, true, false, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqD6))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqD5))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE5))

	p.UndoMove()
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqE5))
	assert.Equal(t, types.BlackPawn, p.PieceAt(types.SqD5))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqD6))
}

func TestMakeMovePromotion(t *testing.T) {
	p := newFen(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	matBefore := p.Material(types.White)
	m := types.NewMove(types.SqE7, types.SqE8, types.WhitePawn, types.PieceNone, types.Queen, false, false, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteQueen, p.PieceAt(types.SqE8))
	assert.Equal(t, matBefore-types.Pawn.Value()+types.Queen.Value(), p.Material(types.White))

	p.UndoMove()
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqE7))
	assert.Equal(t, types.PieceNone, p.PieceAt(types.SqE8))
	assert.Equal(t, matBefore, p.Material(types.White))
}

func TestMakeMovePromotionWithCapture(t *testing.T) {
	p := newFen(t, "3nk3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	m := types.NewMove(types.SqE7, types.SqD8, types.WhitePawn, types.BlackKnight, types.Queen, false, false, false)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteQueen, p.PieceAt(types.SqD8))

	p.UndoMove()
	assert.Equal(t, types.BlackKnight, p.PieceAt(types.SqD8))
	assert.Equal(t, types.WhitePawn, p.PieceAt(types.SqE7))
}

func TestMakeNullMoveTogglesSideOnly(t *testing.T) {
	p := newFen(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	key := p.ZobristKey()
	clock := p.HalfMoveClock()

	p.MakeNullMove()
	assert.Equal(t, types.Black, p.SideToMove())
	assert.Equal(t, types.SqNone, p.EpSquare())
	assert.Equal(t, clock, p.HalfMoveClock())
	assert.NotEqual(t, key, p.ZobristKey())

	p.UndoNullMove()
	assert.Equal(t, types.White, p.SideToMove())
	assert.Equal(t, types.SqD6, p.EpSquare())
	assert.Equal(t, key, p.ZobristKey())
}

func TestUndoNullMoveOnEmptyHistoryPanics(t *testing.T) {
	p := New()
	assert.Panics(t, func() { p.UndoNullMove() })
}

func TestIsInCheckDetectsCheck(t *testing.T) {
	p := newFen(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.True(t, movegen.IsInCheck(p))
	assert.True(t, movegen.IsSquareAttackedBy(p, types.SqE1, types.Black))
	assert.False(t, movegen.IsSquareAttackedBy(p, types.SqE1, types.White))
}

func TestIsInCheckFalseWhenSafe(t *testing.T) {
	p := New()
	assert.False(t, movegen.IsInCheck(p))
}

func TestGenerateLegalExcludesMovesThatLeaveKingInCheck(t *testing.T) {
	// the e4 pawn is pinned along the fourth rank by the rook on h4; its
	// only push would expose white's own king on a4 to check.
	p := newFen(t, "4k3/8/8/8/K3P2r/8/8/8 w - - 0 1")
	g := movegen.NewGenerator()
	legal := g.GenerateLegal(p)
	for _, m := range legal {
		assert.NotEqual(t, types.SqE4, m.From())
	}
}

func TestCheckRepetitionsCountsIdenticalPositions(t *testing.T) {
	p := New()
	knightShuffle := func() {
		p.MakeMove(types.NewMove(types.SqG1, types.SqF3, types.WhiteKnight, types.PieceNone, types.PtNone, false, false, false))
		p.MakeMove(types.NewMove(types.SqG8, types.SqF6, types.BlackKnight, types.PieceNone, types.PtNone, false, false, false))
		p.MakeMove(types.NewMove(types.SqF3, types.SqG1, types.WhiteKnight, types.PieceNone, types.PtNone, false, false, false))
		p.MakeMove(types.NewMove(types.SqF6, types.SqG8, types.BlackKnight, types.PieceNone, types.PtNone, false, false, false))
	}

	assert.False(t, p.CheckRepetitions(2))
	knightShuffle()
	assert.True(t, p.CheckRepetitions(1))
	assert.False(t, p.CheckRepetitions(2))
	knightShuffle()
	assert.True(t, p.CheckRepetitions(2))
}

func TestHasInsufficientMaterialKingsOnly(t *testing.T) {
	p := newFen(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialKingAndMinorVsKing(t *testing.T) {
	p := newFen(t, "4k3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithRook(t *testing.T) {
	p := newFen(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.False(t, p.HasInsufficientMaterial())
}

func TestZobristKeyMatchesAfterMakeUndoRoundTrip(t *testing.T) {
	p := New()
	key := p.ZobristKey()
	moves := []types.Move{
		types.NewMove(types.SqE2, types.SqE4, types.WhitePawn, types.PieceNone, types.PtNone, false, false, true),
		types.NewMove(types.SqE7, types.SqE5, types.BlackPawn, types.PieceNone, types.PtNone, false, false, true),
		types.NewMove(types.SqG1, types.SqF3, types.WhiteKnight, types.PieceNone, types.PtNone, false, false, false),
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	for range moves {
		p.UndoMove()
	}
	assert.Equal(t, key, p.ZobristKey())
	assert.Equal(t, StartFen, p.Fen())
}

func TestStringIncludesFenAndBoard(t *testing.T) {
	p := New()
	s := p.String()
	assert.Contains(t, s, StartFen)
	assert.Contains(t, s, "phase=")
}
