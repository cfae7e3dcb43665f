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

// Package position represents a chess board and its position: a 8x8
// piece array backed by per-color/per-type bitboards, an undo stack for
// make/undo, and incremental Zobrist/material/piece-square/phase
// maintenance (§4.C). Create an instance with New or NewFen.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/chessengine/internal/assert"
	"github.com/frankkopp/chessengine/internal/engineerr"
	"github.com/frankkopp/chessengine/internal/eval"
	myLogging "github.com/frankkopp/chessengine/internal/logging"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHistory bounds the undo stack; one entry per ply of the deepest
// supported search plus root moves played so far.
const MaxHistory = 1024

var log *logging.Logger

func init() {
	log = myLogging.GetLog("position")
}

// undoEntry captures every bit of reversible state make_move touches,
// per §4.C step 1 / undo_move's "restore ... verbatim from the undo
// entry" contract.
type undoEntry struct {
	zobristKey     uint64
	move           types.Move
	castlingRights types.CastlingRights
	epSquare       types.Square
	halfMoveClock  int
	fullMoveNumber int
	material       [2]types.Value
	psqMid         [2]types.Value
	psqEnd         [2]types.Value
	phase          int
}

// Position is a mutable chess board. The zero value is invalid; build
// with New or NewFen.
type Position struct {
	keys *zobrist.Keys

	board          [64]types.Piece
	piecesBb       [2][types.PtLength]types.Bitboard
	occupiedBb     [2]types.Bitboard
	castlingRights types.CastlingRights
	epSquare       types.Square
	halfMoveClock  int
	fullMoveNumber int
	sideToMove     types.Color
	kingSquare     [2]types.Square

	zobristKey uint64

	material [2]types.Value
	psqMid   [2]types.Value
	psqEnd   [2]types.Value
	phase    int // uncapped accumulator; Phase() clamps to 0..MaxPhase

	history      [MaxHistory]undoEntry
	historyCount int
}

// New creates the standard start position using the default Zobrist
// key table.
func New() *Position {
	p, err := NewFen(zobrist.New(zobrist.DefaultSeed), StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewFen creates a position from a FEN string, keyed against keys.
// Returns ErrInvalidFEN on any malformed field (§4.C "FEN parsing").
func NewFen(keys *zobrist.Keys, fen string) (*Position, error) {
	p := &Position{keys: keys}
	for sq := range p.board {
		p.board[sq] = types.PieceNone
	}
	p.epSquare = types.SqNone
	if err := p.parseFen(fen); err != nil {
		log.Errorf("invalid fen %q: %v", fen, err)
		return nil, err
	}
	return p, nil
}

// Clone produces a deep copy without the undo stack, for hypothetical
// positions (§4.C "clone()"); the search's null move uses
// MakeNullMove/UndoNullMove instead. The Zobrist table is shared by
// reference.
func (p *Position) Clone() *Position {
	c := &Position{
		keys:           p.keys,
		board:          p.board,
		piecesBb:       p.piecesBb,
		occupiedBb:     p.occupiedBb,
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		sideToMove:     p.sideToMove,
		kingSquare:     p.kingSquare,
		zobristKey:     p.zobristKey,
		material:       p.material,
		psqMid:         p.psqMid,
		psqEnd:         p.psqEnd,
		phase:          p.phase,
	}
	return c
}

// MakeMove commits m to the board in place (§4.C "make_move").
func (p *Position) MakeMove(m types.Move) {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m.String())
		assert.Assert(p.board[m.From()] == m.Piece(), "MakeMove: board mismatch for %s", m.DebugString())
	}

	// 1. push undo entry
	e := &p.history[p.historyCount]
	e.zobristKey = p.zobristKey
	e.move = m
	e.castlingRights = p.castlingRights
	e.epSquare = p.epSquare
	e.halfMoveClock = p.halfMoveClock
	e.fullMoveNumber = p.fullMoveNumber
	e.material = p.material
	e.psqMid = p.psqMid
	e.psqEnd = p.psqEnd
	e.phase = p.phase
	p.historyCount++

	from, to := m.From(), m.To()
	mover := m.Piece()
	color := mover.ColorOf()

	// 2. clear ep-square
	p.clearEnPassant()

	// 3. clear the from-bit
	p.removePiece(from)

	// 4. remove captured piece (en-passant aware)
	if m.IsEnPassant() {
		capSq := to.To(color.Flip().MoveDirection())
		p.removePiece(capSq)
	} else if m.Captured() != types.PieceNone {
		p.removePiece(to)
	}

	// 5. set the to-bit, promotion aware
	if m.IsPromotion() {
		p.putPiece(types.MakePiece(color, m.Promotion()), to)
	} else {
		p.putPiece(mover, to)
	}

	// 6. castling rook hop
	if m.IsCastling() {
		switch to {
		case types.SqG1:
			p.movePiece(types.SqH1, types.SqF1)
		case types.SqC1:
			p.movePiece(types.SqA1, types.SqD1)
		case types.SqG8:
			p.movePiece(types.SqH8, types.SqF8)
		case types.SqC8:
			p.movePiece(types.SqA8, types.SqD8)
		default:
			panic("MakeMove: invalid castling destination")
		}
	}

	// 7. recompute castling rights
	lost := types.CastlingRightsLostAt(from) | types.CastlingRightsLostAt(to)
	if lost != types.CastlingNone && p.castlingRights&lost != types.CastlingNone {
		before := p.castlingRights
		after := before &^ lost
		p.zobristKey ^= p.keys.CastlingDeltaKey(before, after)
		p.castlingRights = after
	}

	// 8. double push sets ep-square
	if m.IsDoublePush() {
		p.epSquare = to.To(color.Flip().MoveDirection())
		p.zobristKey ^= p.keys.EpFile[p.epSquare.FileOf()]
	}

	// 9. occupancies are maintained incrementally by put/removePiece.

	// 10. clocks
	if mover.BaseType() == types.Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if color == types.Black {
		p.fullMoveNumber++
	}

	// 11. incremental eval is maintained by put/removePiece above.

	// 12. toggle side
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= p.keys.SideToMove
}

// UndoMove reverses the most recent MakeMove (§4.C "undo_move()").
// Panics with ErrNoMovesToUndo if the stack is empty.
func (p *Position) UndoMove() {
	if p.historyCount == 0 {
		panic(engineerr.ErrNoMovesToUndo)
	}
	p.historyCount--
	e := &p.history[p.historyCount]
	m := e.move

	from, to := m.From(), m.To()
	color := m.Piece().ColorOf()

	switch {
	case m.IsCastling():
		p.rawMovePiece(to, from) // king back
		switch to {
		case types.SqG1:
			p.rawMovePiece(types.SqF1, types.SqH1)
		case types.SqC1:
			p.rawMovePiece(types.SqD1, types.SqA1)
		case types.SqG8:
			p.rawMovePiece(types.SqF8, types.SqH8)
		case types.SqC8:
			p.rawMovePiece(types.SqD8, types.SqA8)
		}
	case m.IsPromotion():
		p.rawRemovePiece(to)
		p.rawPutPiece(types.MakePiece(color, types.Pawn), from)
		if m.Captured() != types.PieceNone {
			p.rawPutPiece(m.Captured(), to)
		}
	case m.IsEnPassant():
		p.rawMovePiece(to, from)
		capSq := to.To(color.Flip().MoveDirection())
		p.rawPutPiece(m.Captured(), capSq)
	default:
		p.rawMovePiece(to, from)
		if m.Captured() != types.PieceNone {
			p.rawPutPiece(m.Captured(), to)
		}
	}

	p.castlingRights = e.castlingRights
	p.epSquare = e.epSquare
	p.halfMoveClock = e.halfMoveClock
	p.fullMoveNumber = e.fullMoveNumber
	p.material = e.material
	p.psqMid = e.psqMid
	p.psqEnd = e.psqEnd
	p.phase = e.phase
	p.zobristKey = e.zobristKey
	p.sideToMove = p.sideToMove.Flip()
}

// MakeNullMove toggles the side to move without moving a piece, used by
// null-move pruning (§4.F step 4). The ep-square is cleared, matching
// make_move's own ep handling; unlike a real move this does NOT touch
// halfMoveClock, since no pawn moved and no capture occurred.
func (p *Position) MakeNullMove() {
	e := &p.history[p.historyCount]
	e.zobristKey = p.zobristKey
	e.move = types.MoveNone
	e.castlingRights = p.castlingRights
	e.epSquare = p.epSquare
	e.halfMoveClock = p.halfMoveClock
	e.fullMoveNumber = p.fullMoveNumber
	e.material = p.material
	e.psqMid = p.psqMid
	e.psqEnd = p.psqEnd
	e.phase = p.phase
	p.historyCount++

	p.clearEnPassant()
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= p.keys.SideToMove
}

// UndoNullMove reverses MakeNullMove.
func (p *Position) UndoNullMove() {
	if p.historyCount == 0 {
		panic(engineerr.ErrNoMovesToUndo)
	}
	p.historyCount--
	e := &p.history[p.historyCount]
	p.castlingRights = e.castlingRights
	p.epSquare = e.epSquare
	p.halfMoveClock = e.halfMoveClock
	p.fullMoveNumber = e.fullMoveNumber
	p.zobristKey = e.zobristKey
	p.sideToMove = p.sideToMove.Flip()
}

// piece placement helpers

func (p *Position) putPiece(piece types.Piece, sq types.Square) {
	p.rawPutPiece(piece, sq)
	mg, eg := eval.PSQ(piece, sq)
	color := piece.ColorOf()
	pt := piece.BaseType()
	p.material[color] += pt.Value()
	p.psqMid[color] += mg
	p.psqEnd[color] += eg
	p.phase += pt.PhaseWeight()
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	piece := p.rawRemovePiece(sq)
	mg, eg := eval.PSQ(piece, sq)
	color := piece.ColorOf()
	pt := piece.BaseType()
	p.material[color] -= pt.Value()
	p.psqMid[color] -= mg
	p.psqEnd[color] -= eg
	p.phase -= pt.PhaseWeight()
	return piece
}

func (p *Position) movePiece(from, to types.Square) {
	p.putPiece(p.removePiece(from), to)
}

// raw* variants mutate only board/bitboard/zobrist state, used during
// undo where material/psq/phase are restored verbatim from the undo
// entry instead of being re-derived.

func (p *Position) rawPutPiece(piece types.Piece, sq types.Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == types.PieceNone, "rawPutPiece: square %s occupied", sq.String())
	}
	p.board[sq] = piece
	color, pt := piece.ColorOf(), piece.BaseType()
	if pt == types.King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt] = p.piecesBb[color][pt].PushSquare(sq)
	p.occupiedBb[color] = p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= p.keys.PieceSquare[piece][sq]
}

func (p *Position) rawRemovePiece(sq types.Square) types.Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != types.PieceNone, "rawRemovePiece: square %s empty", sq.String())
	}
	p.board[sq] = types.PieceNone
	color, pt := piece.ColorOf(), piece.BaseType()
	p.piecesBb[color][pt] = p.piecesBb[color][pt].PopSquare(sq)
	p.occupiedBb[color] = p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= p.keys.PieceSquare[piece][sq]
	return piece
}

func (p *Position) rawMovePiece(from, to types.Square) {
	p.rawPutPiece(p.rawRemovePiece(from), to)
}

func (p *Position) clearEnPassant() {
	if p.epSquare != types.SqNone {
		p.zobristKey ^= p.keys.EpFile[p.epSquare.FileOf()]
		p.epSquare = types.SqNone
	}
}

// //////////////////////////////////////////////////////////
// Getters
// //////////////////////////////////////////////////////////

// ZobristKey returns the current Zobrist hash.
func (p *Position) ZobristKey() uint64 { return p.zobristKey }

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// PieceAt returns the piece on sq, or PieceNone (§4.C "piece_at").
func (p *Position) PieceAt(sq types.Square) types.Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c types.Color, pt types.PieceType) types.Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBb returns all squares occupied by color c.
func (p *Position) OccupiedBb(c types.Color) types.Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns every occupied square.
func (p *Position) OccupiedAll() types.Bitboard { return p.occupiedBb[types.White] | p.occupiedBb[types.Black] }

// KingSquare returns the king square of color c.
func (p *Position) KingSquare(c types.Color) types.Square { return p.kingSquare[c] }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() types.CastlingRights { return p.castlingRights }

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() types.Square { return p.epSquare }

// HalfMoveClock returns the half-move (50-move rule) clock.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Material returns the material sum for color c.
func (p *Position) Material(c types.Color) types.Value { return p.material[c] }

// PsqMid returns the midgame piece-square sum for color c.
func (p *Position) PsqMid(c types.Color) types.Value { return p.psqMid[c] }

// PsqEnd returns the endgame piece-square sum for color c.
func (p *Position) PsqEnd(c types.Color) types.Value { return p.psqEnd[c] }

// Phase returns the current game-phase value, clamped to 0..MaxPhase. The
// incrementally maintained accumulator itself is never clamped (a
// promotion can push the raw sum above MaxPhase and a later capture bring
// it back down), so clamping only here keeps it exactly equal to a
// from-scratch recompute at every observation point.
func (p *Position) Phase() int {
	switch {
	case p.phase > types.MaxPhase:
		return types.MaxPhase
	case p.phase < 0:
		return 0
	default:
		return p.phase
	}
}

// LastMove returns the most recently made move, or MoveNone.
func (p *Position) LastMove() types.Move {
	if p.historyCount == 0 {
		return types.MoveNone
	}
	return p.history[p.historyCount-1].move
}

// HasInsufficientMaterial reports a theoretical draw by material.
func (p *Position) HasInsufficientMaterial() bool {
	if p.material[types.White]+p.material[types.Black] == 0 {
		return true
	}
	if p.piecesBb[types.White][types.Pawn].PopCount() == 0 && p.piecesBb[types.Black][types.Pawn].PopCount() == 0 {
		wNonPawn := p.nonPawnMaterial(types.White)
		bNonPawn := p.nonPawnMaterial(types.Black)
		bishopVal := types.Bishop.Value()
		knightVal := types.Knight.Value()
		if wNonPawn < 400 && bNonPawn < 400 {
			return true
		}
		if (wNonPawn == 2*knightVal && bNonPawn <= bishopVal) || (bNonPawn == 2*knightVal && wNonPawn <= bishopVal) {
			return true
		}
	}
	return false
}

func (p *Position) nonPawnMaterial(c types.Color) types.Value {
	var v types.Value
	for pt := types.Knight; pt <= types.Queen; pt++ {
		v += types.Value(p.piecesBb[c][pt].PopCount()) * pt.Value()
	}
	return v
}

// CheckRepetitions reports whether the current position has occurred
// at least reps times earlier in the undo history.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	lastHalfMove := p.halfMoveClock
	for i := p.historyCount - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.history[i].zobristKey == p.zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// //////////////////////////////////////////////////////////
// FEN
// //////////////////////////////////////////////////////////

func (p *Position) parseFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return engineerr.ErrInvalidFEN
	}

	sq := types.SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			sq = sq.To(types.South).To(types.South)
		case c >= '1' && c <= '8':
			sq = types.Square(int(sq) + int(c-'0'))
		default:
			piece := types.PieceFromLetter(byte(c))
			if piece == types.PieceNone {
				return engineerr.ErrInvalidFEN
			}
			p.putPiece(piece, sq)
			sq++
		}
	}

	p.sideToMove = types.White
	p.epSquare = types.SqNone
	p.fullMoveNumber = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = types.White
		case "b":
			p.sideToMove = types.Black
			p.zobristKey ^= p.keys.SideToMove
		default:
			return engineerr.ErrInvalidFEN
		}
	}

	if len(fields) >= 3 {
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights |= types.CastlingWhiteKingside
				case 'Q':
					p.castlingRights |= types.CastlingWhiteQueenside
				case 'k':
					p.castlingRights |= types.CastlingBlackKingside
				case 'q':
					p.castlingRights |= types.CastlingBlackQueenside
				default:
					return engineerr.ErrInvalidFEN
				}
			}
		}
		p.zobristKey ^= p.keys.CastlingDeltaKey(types.CastlingNone, p.castlingRights)
	}

	if len(fields) >= 4 {
		if fields[3] != "-" {
			epSq := types.MakeSquare(fields[3])
			if epSq == types.SqNone {
				return engineerr.ErrInvalidFEN
			}
			p.epSquare = epSq
			p.zobristKey ^= p.keys.EpFile[epSq.FileOf()]
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return engineerr.ErrInvalidFEN
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n <= 0 {
			return engineerr.ErrInvalidFEN
		}
		p.fullMoveNumber = n
	}

	return nil
}

// Fen renders the six-field FEN string for the current position
// (§4.C "FEN formatting").
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == types.Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	if p.sideToMove == types.White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// String renders the FEN plus a board diagram and material/phase summary.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Fen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	sb.WriteString(fmt.Sprintf("phase=%d material(w/b)=%d/%d\n", p.phase, p.material[types.White], p.material[types.Black]))
	return sb.String()
}

// StringBoard renders an 8x8 board diagram.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; ; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[types.SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == types.Rank1 {
			break
		}
	}
	return sb.String()
}
