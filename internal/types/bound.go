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

// Bound classifies a stored search value relative to the window it was
// found in: BoundNone means no value is stored, BoundExact an exact
// score, BoundLower a fail-high (the true value is at least this),
// BoundUpper a fail-low (the true value is at most this).
type Bound int8

const (
	BoundNone  Bound = 0
	BoundExact Bound = 1
	BoundLower Bound = 2
	BoundUpper Bound = 3
	boundLength int = 4
)

func (b Bound) IsValid() bool {
	return b >= BoundNone && b < Bound(boundLength)
}

var boundToString = [boundLength]string{"None", "Exact", "Lower", "Upper"}

func (b Bound) String() string {
	return boundToString[b]
}
