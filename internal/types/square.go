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

import "fmt"

// Square represents exactly one square on a chess board, 0..63.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid reports whether sq is a real board square (sq < 64).
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqNone
}

// FileOf returns the file of the square (0=a .. 7=h).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square (0=rank1 .. 7=rank8).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit bitboard for this square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// MirrorVertical mirrors the square across the horizontal midline
// (a1<->a8), used to evaluate black piece-square tables from the
// white-side closed-form expressions.
func (sq Square) MirrorVertical() Square {
	return sq ^ 56
}

// MakeSquare parses a two-character algebraic square ("e4"). Returns
// SqNone if the string does not denote a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// SquareOf builds a square from file and rank, SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// String renders algebraic notation, or "-" if not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step in Direction d, or SqNone on wrap/overflow.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		sq += Square(d)
	case South:
		sq += Square(d)
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	case Northeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	case Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}
