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
	"github.com/frankkopp/chessengine/internal/config"
	"github.com/frankkopp/chessengine/internal/eval"
	"github.com/frankkopp/chessengine/internal/movegen"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/util"
)

// negamax is the alpha-beta core. ply is distance from the root; progressCb
// is non-nil only for the root call and is only ever invoked at ply==0.
func (s *Searcher) negamax(pos *position.Position, depth, ply int, alpha, beta types.Value, isPV bool, progressCb ProgressFunc) types.Value {
	s.timeCheck()
	if s.outOfTime {
		return alpha
	}

	origAlpha := alpha
	key := pos.ZobristKey()

	var ttMove types.Move
	if entry := s.tt.Probe(key); entry != nil {
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			ttVal := valueFromTT(entry.Value, ply)
			switch entry.Bound {
			case types.BoundExact:
				return ttVal
			case types.BoundLower:
				if ttVal > alpha {
					alpha = ttVal
				}
			case types.BoundUpper:
				if ttVal < beta {
					beta = ttVal
				}
			}
			if alpha >= beta {
				return ttVal
			}
		}
	}

	if depth <= 0 {
		return s.qsearch(pos, alpha, beta)
	}

	us := pos.SideToMove()
	inCheck := movegen.IsInCheck(pos)

	if config.Settings.Search.UseNullMove && depth >= config.Settings.Search.NullMoveMinDepth && !inCheck && hasNonPawnMaterial(pos, us) {
		r := 2
		if depth >= 5 {
			r = 3
		}
		nullDepth := util.Max(depth-1-r, 0)
		pos.MakeNullMove()
		score := -s.negamax(pos, nullDepth, ply+1, -beta, -beta+1, false, nil)
		pos.UndoNullMove()
		if s.outOfTime {
			return alpha
		}
		if score >= beta {
			return beta
		}
	}

	moves := s.gen.GenerateLegal(pos)
	if len(moves) == 0 {
		if inCheck {
			return -types.ValueMate + types.Value(ply)
		}
		return types.ValueZero
	}

	s.orderMoves(pos, moves, ttMove, ply, false)

	var staticEval types.Value
	staticEvalKnown := false

	bestScore := -types.ValueInfinite
	bestMove := types.MoveNone

	for i, m := range moves {
		if ply == 0 && progressCb != nil {
			progressCb(m, i, depth)
		}

		index := i + 1
		quiet := m.IsQuiet()
		r := 0
		if index > 1 {
			if config.Settings.Search.UseLmr && depth >= config.Settings.Search.LmrMinDepth && quiet && !inCheck && index > config.Settings.Search.LmrMoveNumber {
				r = 1
			}
			if config.Settings.Search.UseFutility && depth <= config.Settings.Search.FutilityMaxDepth && quiet && !inCheck {
				if !staticEvalKnown {
					staticEval = eval.Evaluate(pos)
					staticEvalKnown = true
				}
				margin := types.Value(250)
				if depth == 1 {
					margin = types.Value(150)
				}
				if staticEval+margin <= alpha {
					r = 1
				}
			}
		}

		pos.MakeMove(m)
		var score types.Value
		if index == 1 {
			score = -s.negamax(pos, depth-1, ply+1, -beta, -alpha, true, nil)
		} else {
			reducedDepth := util.Max(depth-1-r, 0)
			score = -s.negamax(pos, reducedDepth, ply+1, -alpha-1, -alpha, false, nil)
			if score > alpha {
				score = -s.negamax(pos, reducedDepth, ply+1, -beta, -alpha, true, nil)
			}
		}
		pos.UndoMove()

		if r > 0 && score > alpha {
			pos.MakeMove(m)
			score = -s.negamax(pos, depth-1, ply+1, -beta, -alpha, true, nil)
			pos.UndoMove()
		}

		if s.outOfTime {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score >= beta {
			if quiet {
				s.hist.AddKiller(ply, m)
				s.hist.Update(m, depth)
			}
			break
		}
		if score > alpha {
			alpha = score
		}
	}

	bound := types.BoundUpper
	if bestScore >= beta {
		bound = types.BoundLower
	} else if bestScore > origAlpha {
		bound = types.BoundExact
	}
	storedEval := types.ValueZero
	if staticEvalKnown {
		storedEval = staticEval
	}
	s.tt.Put(key, bestMove, int8(depth), valueToTT(bestScore, ply), storedEval, bound)

	return bestScore
}

// qsearch resolves captures/promotions until the position is quiet, per
// §4.F "Quiescence search". It does not use killers, history, or the
// transposition table.
func (s *Searcher) qsearch(pos *position.Position, alpha, beta types.Value) types.Value {
	s.timeCheck()
	if s.outOfTime {
		return alpha
	}

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	legal := s.gen.GenerateLegal(pos)
	tactical := make([]types.Move, 0, len(legal))
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			tactical = append(tactical, m)
		}
	}
	if len(tactical) == 0 {
		return alpha
	}

	s.orderMoves(pos, tactical, types.MoveNone, 0, true)

	for _, m := range tactical {
		if !m.IsPromotion() && m.IsCapture() && s.see(pos, m) < 0 {
			continue
		}

		pos.MakeMove(m)
		score := -s.qsearch(pos, -beta, -alpha)
		pos.UndoMove()

		if s.outOfTime {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
