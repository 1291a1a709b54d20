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
	"sort"

	"github.com/chess-engine/core/internal/history"
	"github.com/chess-engine/core/internal/moveslice"
	"github.com/chess-engine/core/internal/position"
	. "github.com/chess-engine/core/internal/types"
)

// Move ordering priority tiers. The TT move always comes first, then
// captures ordered by MVV-LVA, then the two killer slots, then quiet
// moves ordered by history score. These magnitudes are far larger than
// what Move.SetValue's 16-bit sort field can hold, so ordering is done
// with a separate score slice rather than the embedded move value.
const (
	scoreTTMove      = 10_000_000
	scoreCaptureBase = 1_000_000
	scoreKiller0     = 900_000
	scoreKiller1     = 800_000
	scoreQuietBase   = 1_000
)

// orderMoves sorts ml in place from highest to lowest priority.
func orderMoves(ml *moveslice.MoveSlice, pos *position.Position, ttMove Move, killers [2]Move, hist *history.History) {
	l := ml.Len()
	if l < 2 {
		return
	}
	scores := make([]int64, l)
	for i := 0; i < l; i++ {
		scores[i] = moveScore(ml.At(i), pos, ttMove, killers, hist)
	}
	idx := make([]int, l)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	ordered := make([]Move, l)
	for i, j := range idx {
		ordered[i] = ml.At(j)
	}
	for i, m := range ordered {
		ml.Set(i, m)
	}
}

// victimValue resolves the captured piece's value for MVV-LVA scoring. An
// en passant move's captured pawn sits one rank behind the to-square, not on
// it, so GetPiece(to) would otherwise resolve to an empty square.
func victimValue(pos *position.Position, m Move) Value {
	if m.MoveType() == EnPassant {
		capSq := m.To().To(pos.NextPlayer().Flip().MoveDirection())
		return pos.GetPiece(capSq).TypeOf().ValueOf()
	}
	return pos.GetPiece(m.To()).TypeOf().ValueOf()
}

func moveScore(m Move, pos *position.Position, ttMove Move, killers [2]Move, hist *history.History) int64 {
	mv := m.MoveOf()
	if ttMove != MoveNone && mv == ttMove.MoveOf() {
		return scoreTTMove
	}
	if pos.IsCapturingMove(mv) {
		victim := victimValue(pos, mv)
		attacker := pos.GetPiece(mv.From()).TypeOf().ValueOf()
		return scoreCaptureBase + int64(victim)*1000 - int64(attacker)
	}
	if killers[0] != MoveNone && mv == killers[0].MoveOf() {
		return scoreKiller0
	}
	if killers[1] != MoveNone && mv == killers[1].MoveOf() {
		return scoreKiller1
	}
	return scoreQuietBase + hist.Get(pos.NextPlayer(), mv.From(), mv.To())
}

// orderCaptures sorts a capture-only move list by MVV-LVA, highest first.
func orderCaptures(ml *moveslice.MoveSlice, pos *position.Position) {
	l := ml.Len()
	if l < 2 {
		return
	}
	scores := make([]int64, l)
	for i := 0; i < l; i++ {
		m := ml.At(i)
		victim := victimValue(pos, m)
		attacker := pos.GetPiece(m.From()).TypeOf().ValueOf()
		scores[i] = int64(victim)*1000 - int64(attacker)
	}
	idx := make([]int, l)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	ordered := make([]Move, l)
	for i, j := range idx {
		ordered[i] = ml.At(j)
	}
	for i, m := range ordered {
		ml.Set(i, m)
	}
}
