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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBasics(t *testing.T) {
	tests := []struct {
		value    Square
		expected int
	}{
		{SqA1, 0},
		{SqH8, 63},
		{SqNone, 64},
	}
	for _, test := range tests {
		got := int(test.value)
		if test.expected != got {
			t.Errorf("square %s == %d expected. Got %d", test.value.String(), test.expected, got)
		}
	}
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
	assert.False(t, Square(100).IsValid())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
	assert.Equal(t, "e4", SqE4.String())
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa"))
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqA1, SqA2.To(South))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
}

func TestSquareMirrorVertical(t *testing.T) {
	assert.Equal(t, SqA8, SqA1.MirrorVertical())
	assert.Equal(t, SqH1, SqH8.MirrorVertical())
	assert.Equal(t, SqE4, SqE4.MirrorVertical().MirrorVertical())
}

func TestBitboardPushPopHas(t *testing.T) {
	var bb Bitboard
	bb = bb.PushSquare(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.Equal(t, 1, bb.PopCount())
	bb = bb.PopSquare(SqE4)
	assert.False(t, bb.Has(SqE4))
	assert.Equal(t, 0, bb.PopCount())
}

func TestBitboardLsbAndPopLsb(t *testing.T) {
	bb := SqD4.Bb() | SqA1.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, bb.Lsb())
	sq := bb.PopLsb()
	assert.Equal(t, SqA1, sq)
	assert.Equal(t, 2, bb.PopCount())
	assert.False(t, bb.Has(SqA1))
}

func TestBitboardEmptyLsb(t *testing.T) {
	var bb Bitboard
	assert.Equal(t, SqNone, bb.Lsb())
}

func TestShiftBitboardClampsAtEdges(t *testing.T) {
	assert.Equal(t, BbZero, ShiftBitboard(fileHBb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(fileABb(), West))
	assert.True(t, ShiftBitboard(SqE4.Bb(), North).Has(SqE5))
}

func fileABb() Bitboard {
	var bb Bitboard
	for r := Rank1; r <= Rank8; r++ {
		bb = bb.PushSquare(SquareOf(FileA, r))
	}
	return bb
}

func fileHBb() Bitboard {
	var bb Bitboard
	for r := Rank1; r <= Rank8; r++ {
		bb = bb.PushSquare(SquareOf(FileH, r))
	}
	return bb
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqA8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
}

func TestCastlingRightsHasAndString(t *testing.T) {
	cr := CastlingWhiteKingside | CastlingBlackQueenside
	assert.True(t, cr.Has(CastlingWhiteKingside))
	assert.True(t, cr.Has(CastlingBlackQueenside))
	assert.False(t, cr.Has(CastlingWhiteQueenside))
	assert.Equal(t, "Kq", cr.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAll.String())
}

func TestCastlingRightsLostAt(t *testing.T) {
	assert.Equal(t, CastlingWhiteKingside|CastlingWhiteQueenside, CastlingRightsLostAt(SqE1))
	assert.Equal(t, CastlingWhiteKingside, CastlingRightsLostAt(SqH1))
	assert.Equal(t, CastlingNone, CastlingRightsLostAt(SqE4))
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestNewMoveRoundTripsFields(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, PieceNone, PtNone, false, false, true)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, PieceNone, m.Captured())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.True(t, m.IsDoublePush())
	assert.True(t, m.IsQuiet())
	assert.Equal(t, "e2e4", m.String())
}

func TestNewMoveCapture(t *testing.T) {
	m := NewMove(SqE4, SqD5, WhiteKnight, BlackPawn, PtNone, false, false, false)
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsQuiet())
	assert.Equal(t, BlackPawn, m.Captured())
}

func TestNewMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, WhitePawn, PieceNone, Queen, false, false, false)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "e7e8q", m.String())
}

func TestNewMoveEnPassantAndCastlingFlags(t *testing.T) {
	ep := NewMove(SqE5, SqD6, WhitePawn, BlackPawn, PtNone, true, false, false)
	assert.True(t, ep.IsEnPassant())
	assert.True(t, ep.IsCapture())

	castle := NewMove(SqE1, SqG1, WhiteKing, PieceNone, PtNone, false, true, false)
	assert.True(t, castle.IsCastling())
}

func TestMoveNoneStringIsZeroCode(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.String())
	assert.False(t, MoveNone.IsValid())
}

func TestMoveValueRoundTrips(t *testing.T) {
	m := NewMove(SqE2, SqE4, WhitePawn, PieceNone, PtNone, false, false, true)
	withValue := m.WithValue(Value(-250))
	assert.Equal(t, Value(-250), withValue.Value())
	assert.True(t, m.SameAs(withValue))
	assert.Equal(t, m, withValue.MoveOf())
}

func TestMoveSameAsIgnoresPieceAndCaptured(t *testing.T) {
	a := NewMove(SqE2, SqE4, WhitePawn, PieceNone, PtNone, false, false, true)
	b := NewMove(SqE2, SqE4, WhitePawn, BlackPawn, PtNone, false, false, false)
	assert.True(t, a.SameAs(b))
}

func TestMoveIsValidRejectsSameSquare(t *testing.T) {
	m := NewMove(SqE4, SqE4, WhitePawn, PieceNone, PtNone, false, false, false)
	assert.False(t, m.IsValid())
}
