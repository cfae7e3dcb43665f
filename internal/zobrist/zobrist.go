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

// Package zobrist builds the deterministic pseudo-random key table used
// to hash chess positions (§4.B): 12x64 piece-square keys, one
// side-to-move key, four castling keys, eight en-passant-file keys. The
// table is immutable after construction and safe to share by reference
// across every Position built from it (§9 "Global mutable state": no
// process-wide singleton — callers construct one and pass it around).
package zobrist

import "github.com/frankkopp/chessengine/internal/types"

// DefaultSeed is used when no deterministic_seed override is configured.
const DefaultSeed uint64 = 0x9E3779B97F4A7C15

// Keys is the immutable key table. Zero value is invalid; build with New.
type Keys struct {
	PieceSquare [int(types.PieceLength)][64]uint64
	SideToMove  uint64
	Castling    [4]uint64
	EpFile      [8]uint64
}

// random is the xorshift64star PRNG, grounded on the engine's historical
// use of Vigna's public-domain generator for reproducible key tables.
type random struct{ s uint64 }

func newRandom(seed uint64) *random {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &random{s: seed}
}

func (r *random) next() uint64 {
	r.s ^= r.s << 13
	r.s ^= r.s >> 7
	r.s ^= r.s << 17
	return r.s * 2685821657736338717
}

// New builds a fresh, deterministic key table from seed. The same seed
// always produces the same table, satisfying §4.B's "same position
// hashes identically across runs of the same binary" requirement.
func New(seed uint64) *Keys {
	r := newRandom(seed)
	k := &Keys{}
	for p := 0; p < int(types.PieceLength); p++ {
		for sq := 0; sq < 64; sq++ {
			k.PieceSquare[p][sq] = r.next()
		}
	}
	k.SideToMove = r.next()
	for i := range k.Castling {
		k.Castling[i] = r.next()
	}
	for i := range k.EpFile {
		k.EpFile[i] = r.next()
	}
	return k
}

// CastlingBitKey returns the key for a single castling-rights bit (the
// mask must be a single bit; callers XOR per-bit to track the exact
// rights delta a move produces).
func (k *Keys) CastlingBitKey(bit types.CastlingRights) uint64 {
	switch bit {
	case types.CastlingWhiteKingside:
		return k.Castling[0]
	case types.CastlingWhiteQueenside:
		return k.Castling[1]
	case types.CastlingBlackKingside:
		return k.Castling[2]
	case types.CastlingBlackQueenside:
		return k.Castling[3]
	default:
		return 0
	}
}

// allCastlingBits lists the four single-bit rights in fixed order, used
// to iterate CastlingBitKey over a rights mask.
var allCastlingBits = [4]types.CastlingRights{
	types.CastlingWhiteKingside, types.CastlingWhiteQueenside,
	types.CastlingBlackKingside, types.CastlingBlackQueenside,
}

// CastlingDeltaKey XORs together the keys of every bit that differs
// between before and after, the exact operation make/undo need at step 7
// of §4.C make_move.
func (k *Keys) CastlingDeltaKey(before, after types.CastlingRights) uint64 {
	var x uint64
	diff := before ^ after
	for _, bit := range allCastlingBits {
		if diff&bit != 0 {
			x ^= k.CastlingBitKey(bit)
		}
	}
	return x
}

// Compute performs the full-recompute operation of §4.B: XOR every
// piece-square key present, the side key iff black to move, every set
// castling key, and the ep-file key iff an ep-square exists. No caller in
// this module uses it; FEN parsing builds its key incrementally.
func (k *Keys) Compute(
	pieceAt func(types.Square) types.Piece,
	sideToMove types.Color,
	castling types.CastlingRights,
	epSquare types.Square,
) uint64 {
	var h uint64
	for sq := types.Square(0); sq < 64; sq++ {
		p := pieceAt(sq)
		if p.IsValid() {
			h ^= k.PieceSquare[p][sq]
		}
	}
	if sideToMove == types.Black {
		h ^= k.SideToMove
	}
	for _, bit := range allCastlingBits {
		if castling&bit != 0 {
			h ^= k.CastlingBitKey(bit)
		}
	}
	if epSquare.IsValid() {
		h ^= k.EpFile[epSquare.FileOf()]
	}
	return h
}
