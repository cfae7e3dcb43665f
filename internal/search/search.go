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

// Package search implements the iterative-deepening negamax searcher:
// aspiration windows around each iteration's previous score, alpha-beta
// with null-move pruning, late-move and futility reductions, principal
// variation search, a transposition table, and killer/history move
// ordering backed by static exchange evaluation for captures.
//
// A Searcher runs one search at a time; StartSearch/WaitWhileSearching let
// a caller on another goroutine start a search and block for its result,
// while RequestStop asks the running search to return as soon as it is
// next observed - at the top of every node, and against the deadline every
// 2048th node.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chessengine/internal/config"
	"github.com/frankkopp/chessengine/internal/engineerr"
	"github.com/frankkopp/chessengine/internal/history"
	myLogging "github.com/frankkopp/chessengine/internal/logging"
	"github.com/frankkopp/chessengine/internal/movegen"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/tt"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/util"
)

// InfoFunc is invoked at the end of each completed iteration, and on
// every aspiration-window fail with the corresponding bound.
type InfoFunc func(depth int, nodes uint64, timeMs int64, score types.Value, pv []types.Move, bound types.Bound)

// ProgressFunc is invoked for each root move immediately before it is
// searched.
type ProgressFunc func(move types.Move, moveIndex int, depth int)

// Searcher owns the long-lived search state: the transposition table and
// the killer/history tables persist across Search calls until NewGame,
// mirroring the teacher's single long-lived Search instance.
type Searcher struct {
	log *logging.Logger

	tt   *tt.Table
	hist *history.History
	gen  *movegen.Generator

	nodes     uint64
	stopFlag  *util.Bool
	outOfTime bool

	startTime   time.Time
	deadline    time.Time
	hasDeadline bool

	// isRunning is held for the duration of one search, the same way the
	// teacher's Search uses a weighted semaphore as a one-slot mutex so
	// WaitWhileSearching can block a caller on another goroutine until the
	// running search releases it.
	isRunning *semaphore.Weighted

	resultMove  types.Move
	resultScore types.Value
	resultNodes uint64
}

// New creates a Searcher with a transposition table sized per
// config.Settings.Search.TTSizeMb.
func New() *Searcher {
	return &Searcher{
		log:       myLogging.GetLog("search"),
		tt:        tt.New(config.Settings.Search.TTSizeMb),
		hist:      history.New(),
		gen:       movegen.NewGenerator(),
		stopFlag:  util.NewBool(false),
		isRunning: semaphore.NewWeighted(1),
	}
}

// NewGame clears the transposition table and killer/history tables,
// discarding everything learned about the previous game.
func (s *Searcher) NewGame() {
	s.tt.Clear()
	s.hist.Clear()
}

// RequestStop asks a running search to return as soon as it is next
// observed; safe to call from another goroutine.
func (s *Searcher) RequestStop() {
	s.stopFlag.Store(true)
}

// OutOfTime reports whether the most recent Search call was cut short by
// the deadline or an external stop request.
func (s *Searcher) OutOfTime() bool {
	return s.outOfTime
}

// Nodes returns the node count of the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

func (s *Searcher) elapsedMs() int64 {
	return time.Since(s.startTime).Milliseconds()
}

// timeCheck is polled at the top of every negamax/qsearch node: the stop
// flag every call, the monotonic deadline every 2048th node (§4.F "Stop
// semantics").
func (s *Searcher) timeCheck() {
	if s.stopFlag.Load() {
		s.outOfTime = true
		return
	}
	s.nodes++
	if s.nodes%uint64(config.Settings.Search.NodesPerTimeCheck) == 0 {
		if s.hasDeadline && time.Now().After(s.deadline) {
			s.outOfTime = true
		}
	}
}

// IsSearching reports whether a search started by StartSearch is still
// running.
func (s *Searcher) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks the caller until any search started by
// StartSearch has finished.
func (s *Searcher) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StartSearch runs the search asynchronously, returning immediately. The
// result becomes available via LastResult once IsSearching reports false
// (or after WaitWhileSearching returns). Returns engineerr.ErrSearchBusy
// without starting anything if a search is already running.
func (s *Searcher) StartSearch(pos *position.Position, depth int, timeMs int, infoCb InfoFunc, progressCb ProgressFunc) error {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, ignoring StartSearch")
		return engineerr.ErrSearchBusy
	}
	go func() {
		defer s.isRunning.Release(1)
		s.resultMove, s.resultScore, s.resultNodes = s.search(pos, depth, timeMs, infoCb, progressCb)
	}()
	return nil
}

// LastResult returns the best move, score, and node count of the most
// recently completed search.
func (s *Searcher) LastResult() (types.Move, types.Value, uint64) {
	return s.resultMove, s.resultScore, s.resultNodes
}

// Search runs iterative deepening up to depth (or until timeMs elapses
// or RequestStop is called) and blocks until finished, returning the best
// move, its score, and the total node count (§6 "Search entry point").
// depth must be >= 1.
func (s *Searcher) Search(pos *position.Position, depth int, timeMs int, infoCb InfoFunc, progressCb ProgressFunc) (types.Move, types.Value, uint64) {
	_ = s.StartSearch(pos, depth, timeMs, infoCb, progressCb)
	s.WaitWhileSearching()
	return s.LastResult()
}

func (s *Searcher) search(pos *position.Position, depth int, timeMs int, infoCb InfoFunc, progressCb ProgressFunc) (types.Move, types.Value, uint64) {
	s.nodes = 0
	s.outOfTime = false
	s.stopFlag.Store(false)
	s.startTime = time.Now()
	s.hasDeadline = timeMs > 0
	if s.hasDeadline {
		s.deadline = s.startTime.Add(time.Duration(timeMs) * time.Millisecond)
	}

	var bestMove types.Move
	var bestScore types.Value
	prevScore := types.ValueZero

	for d := 1; d <= depth; d++ {
		if d%2 == 0 {
			s.hist.Decay()
		}

		alpha, beta := -types.ValueInfinite, types.ValueInfinite
		delta := types.Value(config.Settings.Search.AspirationInitialDelta)
		if config.Settings.Search.UseAspiration && d > 1 {
			alpha = prevScore - delta
			beta = prevScore + delta
		}

		var score types.Value
		for {
			score = s.negamax(pos, d, 0, alpha, beta, true, progressCb)
			if s.outOfTime {
				break
			}
			if score <= alpha {
				if infoCb != nil {
					infoCb(d, s.nodes, s.elapsedMs(), score, nil, types.BoundUpper)
				}
				delta *= 2
				alpha = clampValue(score - delta)
				beta = clampValue(prevScore + delta)
				continue
			}
			if score >= beta {
				if infoCb != nil {
					infoCb(d, s.nodes, s.elapsedMs(), score, nil, types.BoundLower)
				}
				delta *= 2
				beta = clampValue(score + delta)
				continue
			}
			break
		}

		if s.outOfTime {
			break
		}

		prevScore = score
		bestScore = score
		pv := s.extractPV(pos, d)
		if len(pv) > 0 {
			bestMove = pv[0]
		}
		if infoCb != nil {
			infoCb(d, s.nodes, s.elapsedMs(), score, pv, types.BoundExact)
		}
	}

	return bestMove, bestScore, s.nodes
}

func clampValue(v types.Value) types.Value {
	bounded := util.Max(int(v), int(-types.ValueInfinite))
	bounded = util.Min(bounded, int(types.ValueInfinite))
	return types.Value(bounded)
}

func hasNonPawnMaterial(pos *position.Position, c types.Color) bool {
	for _, pt := range [4]types.PieceType{types.Knight, types.Bishop, types.Rook, types.Queen} {
		if pos.PiecesBb(c, pt) != types.BbZero {
			return true
		}
	}
	return false
}

func valueToTT(v types.Value, ply int) types.Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v + types.Value(ply)
	}
	return v - types.Value(ply)
}

func valueFromTT(v types.Value, ply int) types.Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v - types.Value(ply)
	}
	return v + types.Value(ply)
}
