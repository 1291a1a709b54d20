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

package search

import (
	"github.com/chess-engine/core/internal/config"
	"github.com/chess-engine/core/internal/movegen"
	"github.com/chess-engine/core/internal/position"
	. "github.com/chess-engine/core/internal/types"
)

// alphaBeta is the recursive negamax search with alpha-beta pruning.
// Returns a score from the perspective of the side to move at pos.
// A cancelled search (deadline or node budget exhausted, polled via
// s.controller) returns a value the caller must not trust; callers
// check s.controller.Cancelled() immediately after the call returns.
func (s *Search) alphaBeta(pos *position.Position, depth int, ply int, alpha Value, beta Value) Value {
	if s.controller.Cancelled() {
		return alpha
	}

	alphaOrig := alpha

	var ttMove Move
	if config.Settings.Search.UseTT && s.tt != nil {
		if entry := s.tt.Probe(pos.ZobristKey()); entry != nil {
			s.statistics.TTHit++
			ttMove = entry.Move()
			if config.Settings.Search.UseTTValue && int(entry.Depth()) >= depth {
				switch entry.Vtype() {
				case EXACT:
					return entry.Value()
				case BETA:
					if entry.Value() >= beta {
						s.statistics.TTCuts++
						return entry.Value()
					}
				case ALPHA:
					if entry.Value() <= alpha {
						s.statistics.TTCuts++
						return entry.Value()
					}
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	if depth <= 0 || ply >= MaxDepth {
		if !config.Settings.Search.UseQuiescence {
			standPat := s.eval.Evaluate(pos)
			if pos.NextPlayer() == Black {
				standPat = -standPat
			}
			return standPat
		}
		return s.quiescence(pos, alpha, beta, ply)
	}

	mg := s.mg[ply]
	moves := mg.GenerateLegalMoves(pos, movegen.GenAll)
	if moves.Len() == 0 {
		if pos.HasCheck() {
			s.statistics.Checkmates++
			return -ValueCheckMate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	killers := *mg.KillerMoves()
	orderMoves(moves, pos, ttMove, killers, s.history)

	bestValue := ValueNA
	bestMove := MoveNone

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).MoveOf()

		pos.DoMove(m)
		s.controller.CountNode()
		s.nodesVisited++

		var value Value
		if s.checkDrawRepAnd50(pos, 2) {
			value = ValueDraw
		} else {
			value = -s.alphaBeta(pos, depth-1, ply+1, -beta, -alpha)
		}

		pos.UndoMove()

		if s.controller.Cancelled() {
			return alpha
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
		}

		if value >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			if config.Settings.Search.UseKiller && !pos.IsCapturingMove(m) {
				mg.StoreKiller(m)
			}
			if config.Settings.Search.UseHistory && !pos.IsCapturingMove(m) {
				s.history.Add(pos.NextPlayer(), m.From(), m.To(), depth)
			}
			if config.Settings.Search.UseTT && s.tt != nil {
				s.tt.Put(pos.ZobristKey(), m, int8(depth), value, BETA, ValueNA)
			}
			return value
		}

		if value > alpha {
			alpha = value
		}
	}

	if config.Settings.Search.UseTT && s.tt != nil {
		vtype := ALPHA
		if alpha > alphaOrig {
			vtype = EXACT
		}
		s.tt.Put(pos.ZobristKey(), bestMove, int8(depth), bestValue, vtype, ValueNA)
	}

	return bestValue
}

// quiescence extends the search along capturing lines until the position
// is quiet, to avoid the horizon effect at the leaves of the main search.
func (s *Search) quiescence(pos *position.Position, alpha Value, beta Value, ply int) Value {
	if s.controller.Cancelled() {
		return alpha
	}

	s.statistics.LeafPositionsEvaluated++
	standPat := s.eval.Evaluate(pos)
	if pos.NextPlayer() == Black {
		standPat = -standPat
	}

	if config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if ply >= MaxDepth {
		return alpha
	}

	mg := s.mg[ply]
	captures := mg.GenerateLegalMoves(pos, movegen.GenCap)
	orderCaptures(captures, pos)

	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i).MoveOf()

		pos.DoMove(m)
		s.controller.CountNode()
		s.nodesVisited++

		value := -s.quiescence(pos, -beta, -alpha, ply+1)

		pos.UndoMove()

		if s.controller.Cancelled() {
			return alpha
		}

		if value >= beta {
			return value
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}
