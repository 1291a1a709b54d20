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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chess-engine/core/internal/history"
	"github.com/chess-engine/core/internal/movegen"
	"github.com/chess-engine/core/internal/position"
	. "github.com/chess-engine/core/internal/types"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenAll)
	assert.True(t, ml.Len() > 1)

	ttMove := ml.At(ml.Len() - 1).MoveOf()
	orderMoves(ml, p, ttMove, [2]Move{MoveNone, MoveNone}, history.NewHistory())

	assert.Equal(t, ttMove, ml.At(0).MoveOf())
}

func TestOrderMovesRanksCapturesAboveQuiet(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenAll)
	assert.True(t, ml.Len() > 1)

	orderMoves(ml, p, MoveNone, [2]Move{MoveNone, MoveNone}, history.NewHistory())

	assert.True(t, p.IsCapturingMove(ml.At(0).MoveOf()))
}

func TestOrderMovesRanksKillerAboveOtherQuiet(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenAll)
	assert.True(t, ml.Len() > 1)

	var killer Move
	for i := 0; i < ml.Len(); i++ {
		if !p.IsCapturingMove(ml.At(i).MoveOf()) {
			killer = ml.At(i).MoveOf()
			break
		}
	}
	assert.NotEqual(t, MoveNone, killer)

	orderMoves(ml, p, MoveNone, [2]Move{killer, MoveNone}, history.NewHistory())

	assert.Equal(t, killer, ml.At(0).MoveOf())
}

func TestOrderCapturesSortsByMvvLva(t *testing.T) {
	p, err := position.NewPositionFen("4k3/3q1p2/4P3/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenCap)
	assert.True(t, ml.Len() > 1)

	orderCaptures(ml, p)

	first := ml.At(0).MoveOf()
	topVictim := p.GetPiece(first.To()).TypeOf().ValueOf()
	for i := 1; i < ml.Len(); i++ {
		victim := p.GetPiece(ml.At(i).MoveOf().To()).TypeOf().ValueOf()
		assert.True(t, topVictim >= victim)
	}
}

func TestVictimValueResolvesEnPassantCapturedPawn(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenCap)

	var epMove Move
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).MoveOf().MoveType() == EnPassant {
			epMove = ml.At(i).MoveOf()
			break
		}
	}
	assert.NotEqual(t, MoveNone, epMove)
	assert.Equal(t, Pawn.ValueOf(), victimValue(p, epMove))
}

func TestOrderCapturesRanksEnPassantByCapturedPawnValue(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	ml := mg.GenerateLegalMoves(p, movegen.GenCap)
	assert.True(t, ml.Len() > 0)

	orderCaptures(ml, p)

	// the only capture available is the en passant one; it must not have
	// been scored as a worthless (empty to-square) capture
	top := ml.At(0).MoveOf()
	assert.Equal(t, EnPassant, top.MoveType())
}
