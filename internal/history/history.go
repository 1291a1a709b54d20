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

// Package history provides the history heuristic table used to order
// quiet moves during search: moves that caused a beta cutoff accumulate a
// score and are tried earlier the next time they are generated.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/chess-engine/core/internal/types"
)

var out = message.NewPrinter(language.German)

// History accumulates a score per (color, from, to) keyed quiet move.
// On a beta cutoff the causing move's entry is bumped by 1<<depth so that
// cutoffs found deeper in the tree count for more.
type History struct {
	Count [ColorLength][SqLength][SqLength]int64
}

// NewHistory creates a new, empty History instance.
func NewHistory() *History {
	return &History{}
}

// Add records a beta cutoff caused by a quiet move at the given depth.
func (h *History) Add(c Color, from Square, to Square, depth int) {
	h.Count[c][from][to] += 1 << uint(depth)
}

// Get returns the accumulated cutoff score for a quiet move.
func (h *History) Get(c Color, from Square, to Square) int64 {
	return h.Count[c][from][to]
}

func (h *History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			if h.Count[White][sf][st] == 0 && h.Count[Black][sf][st] == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: white=%-7d black=%-7d\n",
				sf.String(), st.String(), h.Count[White][sf][st], h.Count[Black][sf][st]))
		}
	}
	return sb.String()
}
