//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search implements iterative-deepening alpha-beta search over a
// chess position: search_root drives the iterations, alphabeta.go holds
// the recursive negamax core and quiescence extension, order.go scores
// and sorts moves for each node.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/chess-engine/core/internal/config"
	"github.com/chess-engine/core/internal/evaluator"
	"github.com/chess-engine/core/internal/history"
	myLogging "github.com/chess-engine/core/internal/logging"
	"github.com/chess-engine/core/internal/movegen"
	"github.com/chess-engine/core/internal/moveslice"
	"github.com/chess-engine/core/internal/position"
	"github.com/chess-engine/core/internal/transpositiontable"
	. "github.com/chess-engine/core/internal/types"
	"github.com/chess-engine/core/internal/util"
)

var out = message.NewPrinter(language.German)

// Search drives an iterative-deepening alpha-beta search over a chess
// position. Create with NewSearch(); call StartSearch to search in a
// goroutine or SearchRoot to search synchronously and return the result.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	// history heuristic, shared across the whole search tree
	history *history.History

	lastSearchResult *Result

	controller   *Controller
	nodesVisited uint64

	// one move generator per ply so killer moves and legal-move scratch
	// buffers don't collide across the recursion stack
	mg []*movegen.Movegen

	statistics Statistics
}

// NewSearch creates a new Search instance ready to receive StartSearch
// or SearchRoot calls.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
	}
}

// NewGame stops any running search and resets state that must not leak
// across games: the transposition table and the history heuristic table.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history = history.NewHistory()
}

// StartSearch starts a search on a copy of the given position in a
// separate goroutine, bounded by limits. Search can be stopped early
// with StopSearch(). Use LastSearchResult() to retrieve the result once
// IsSearching() reports false.
func (s *Search) StartSearch(p position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(&p, &limits)
	// wait until the search goroutine has finished its setup before
	// returning control to the caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests a running search to stop as soon as possible and
// blocks until it has. Has no effect if no search is running.
func (s *Search) StopSearch() {
	if s.controller != nil {
		s.controller.Stop()
	}
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// ClearHash clears the transposition table. Ignored with a log warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.log.Warning("Can't clear hash while searching.")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
	}
}

// LastSearchResult returns the result of the most recently completed
// search.
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited during the last
// search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// run executes a full search_root call in its own goroutine. It is
// started by StartSearch and releases isRunning when done.
func (s *Search) run(pos *position.Position, limits *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	startTime := time.Now()
	s.initialize()
	s.initSemaphore.Release(1)

	result := s.SearchRoot(*pos, *limits)
	result.SearchTime = time.Since(startTime)

	s.log.Info(out.Sprintf("Search finished after %s, depth %d(%d), %d nodes, nps %d",
		result.SearchTime, result.SearchDepth, result.ExtraDepth, result.Nodes,
		util.Nps(result.Nodes, result.SearchTime)))
	s.log.Infof("Search result: %s", result.String())

	s.lastSearchResult = &result
}

// SearchRoot runs iterative deepening from depth 1 up to limits.MaxDepth,
// checking the wall-clock deadline before and after every iteration.
// After each completed iteration the principal variation is reconstructed
// by walking the transposition table from the root. On timeout mid-search
// the result from the last fully completed depth is returned.
func (s *Search) SearchRoot(pos position.Position, limits Limits) Result {
	s.controller = NewController(limits)
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.initialize()

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 1
	}

	s.mg = make([]*movegen.Movegen, MaxDepth+1)
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
	}

	result := Result{BestMove: MoveNone, BestValue: ValueNA}

	if s.checkDrawRepAnd50(&pos, 2) {
		result.BestValue = ValueDraw
		return result
	}

	rootMoves := s.mg[0].GenerateLegalMoves(&pos, movegen.GenAll)
	if rootMoves.Len() == 0 {
		if pos.HasCheck() {
			result.BestValue = -ValueCheckMate
		} else {
			result.BestValue = ValueDraw
		}
		return result
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.controller.Cancelled() {
			break
		}

		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		value := s.alphaBeta(&pos, depth, 0, ValueMin, ValueMax)

		if s.controller.Cancelled() {
			break
		}

		result = Result{
			BestValue:   value,
			SearchDepth: depth,
			Nodes:       s.controller.Nodes(),
		}
		result.Pv = s.reconstructPV(&pos, depth)
		if result.Pv.Len() > 0 {
			result.BestMove = result.Pv.At(0)
		}
		result.ExtraDepth = depth
		s.statistics.CurrentBestRootMove = result.BestMove
		s.statistics.CurrentBestRootMoveValue = result.BestValue

		if rootMoves.Len() == 1 {
			break
		}
	}

	result.Nodes = s.controller.Nodes()
	s.nodesVisited = result.Nodes
	return result
}

// reconstructPV walks the transposition table from the root position,
// applying each entry's stored move on a scratch copy, up to maxPlies
// deep. It stops at the first missing entry or move that is no longer
// legal on the resulting position.
func (s *Search) reconstructPV(pos *position.Position, maxPlies int) moveslice.MoveSlice {
	pv := make(moveslice.MoveSlice, 0, maxPlies)
	if s.tt == nil {
		return pv
	}
	cp := *pos
	mg := movegen.NewMoveGen()
	for i := 0; i < maxPlies; i++ {
		entry := s.tt.Probe(cp.ZobristKey())
		if entry == nil {
			break
		}
		m := entry.Move()
		if m == MoveNone || !mg.ValidateMove(&cp, m) {
			break
		}
		pv.PushBack(m)
		cp.DoMove(m)
	}
	return pv
}

// initialize sets up the transposition table. Safe to call repeatedly.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT && s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSize
		if sizeInMByte == 0 {
			sizeInMByte = 64
		}
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
	}
}

// checkDrawRepAnd50 reports whether the position is drawn by repetition,
// the fifty-move rule or insufficient material.
func (s *Search) checkDrawRepAnd50(p *position.Position, reps int) bool {
	return p.CheckRepetitions(reps) || p.HalfMoveClock() >= 100 || p.HasInsufficientMaterial()
}
