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

// Package evaluator contains structures and functions to calculate
// the static value of a chess position to be used by the search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chess-engine/core/internal/config"
	myLogging "github.com/chess-engine/core/internal/logging"
	"github.com/chess-engine/core/internal/movegen"
	"github.com/chess-engine/core/internal/position"
	. "github.com/chess-engine/core/internal/types"
)

var out = message.NewPrinter(language.German)

// pieceValue holds the centipawn value of each piece type used for
// the material term. Indexed by PieceType.
var pieceValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Evaluator computes a static score for a chess position from material
// balance and mobility, returned in centipawns from White's perspective.
// Create a new instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger
	mg  *movegen.Movegen
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
		mg:  movegen.NewMoveGen(),
	}
}

// Evaluate returns the static value of the given position in centipawns,
// always from White's perspective (positive favors White).
//
//	score = material(White) - material(Black) ± MobilityBonus * legalMoveCount(sideToMove)
//
// The mobility term is added when White is to move and subtracted when
// Black is to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var score Value

	if config.Settings.Eval.UseMaterial {
		score += e.material(p, White) - e.material(p, Black)
	}

	if config.Settings.Eval.UseMobility {
		moves := e.mg.GenerateLegalMoves(p, movegen.GenAll)
		bonus := Value(len(*moves)) * Value(config.Settings.Eval.MobilityBonus)
		if p.NextPlayer() == White {
			score += bonus
		} else {
			score -= bonus
		}
	}

	return score
}

// material sums up the piece values of all pieces of the given color.
func (e *Evaluator) material(p *position.Position, c Color) Value {
	var sum Value
	for pt := Pawn; pt <= King; pt++ {
		sum += Value(p.PiecesBb(c, pt).PopCount()) * pieceValue[pt]
	}
	return sum
}

// Report prints a human readable report about an evaluation. Used in
// debugging and from the test suite.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position   : %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("Material   : %d\n", e.material(p, White)-e.material(p, Black)))
	report.WriteString(out.Sprintf("Eval value : %d (white perspective)\n", e.Evaluate(p)))
	return report.String()
}
