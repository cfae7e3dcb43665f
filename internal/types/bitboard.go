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
	"math/bits"
	"strings"

	"github.com/frankkopp/chessengine/internal/util"
)

// Bitboard is a 64-bit mask, one bit per square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var fileBb [8]Bitboard
var rankBb [8]Bitboard

func init() {
	for f := File(0); f < 8; f++ {
		var bb Bitboard
		for r := Rank(0); r < 8; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileBb[f] = bb
	}
	for r := Rank(0); r < 8; r++ {
		var bb Bitboard
		for f := File(0); f < 8; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankBb[r] = bb
	}
}

// PushSquare sets the bit for s.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b | s.Bb()
}

// PopSquare clears the bit for s.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b &^ s.Bb()
}

// Has reports whether square s is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// Lsb returns the least-significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the least-significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &^= sq.Bb()
	}
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every bit one step in direction d, masking off
// wrap-around at board edges.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileBb[FileH]) << 1
	case West:
		return (b &^ fileBb[FileA]) >> 1
	case Northeast:
		return (b &^ fileBb[FileH]) << 9
	case Southeast:
		return (b &^ fileBb[FileH]) >> 7
	case Southwest:
		return (b &^ fileBb[FileA]) >> 9
	case Northwest:
		return (b &^ fileBb[FileA]) << 7
	default:
		return 0
	}
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			if b.Has(SquareOf(File(f), Rank(r))) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FileDistance returns the absolute difference between two files.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f1) - int(f2))
}

// RankDistance returns the absolute difference between two ranks.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r1) - int(r2))
}

// SquareDistance is Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	return util.Max(fd, rd)
}
