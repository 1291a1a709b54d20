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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chess-engine/core/internal/position"
	. "github.com/chess-engine/core/internal/types"
)

func TestMateInOne(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("8/8/8/8/8/5K2/R7/5k2 w - - 0 1")
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.MaxDepth = 4
	result := s.SearchRoot(*p, *sl)
	assert.True(t, result.BestValue.IsCheckMateValue())
	assert.Equal(t, "a2a1", result.BestMove.StringUci())
}

func TestSearchRootStartPosition(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.MaxDepth = 3
	result := s.SearchRoot(*p, *sl)
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.Nodes > 0)
}

func TestSearchRootTimeBound(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.MaxDepth = 64
	sl.MaxTime = 200 * time.Millisecond
	start := time.Now()
	result := s.SearchRoot(*p, *sl)
	assert.True(t, time.Since(start) < 2*time.Second)
	assert.NotEqual(t, MoveNone, result.BestMove)
}
