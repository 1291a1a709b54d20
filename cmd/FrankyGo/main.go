/*
 * FrankyGo - UCI chess engine in GO for learning purposes
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

package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chess-engine/core/internal/config"
	"github.com/chess-engine/core/internal/logging"
	"github.com/chess-engine/core/internal/movegen"
	"github.com/chess-engine/core/internal/position"
	"github.com/chess-engine/core/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", 0, "standard log level override, 0=CRITICAL..5=DEBUG (0 keeps config file/default)")
	perft := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and search")
	depth := flag.Int("depth", 0, "search depth limit for the given position")
	movetime := flag.Int("movetime", 0, "search time limit in milliseconds for the given position")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != 0 {
		config.Settings.Log.Level = *logLvl
	}
	logging.GetLog()

	if *perft != 0 {
		var perftTest movegen.Perft
		for i := 1; i <= *perft; i++ {
			perftTest.StartPerft(*fen, i, true)
		}
		return
	}

	if *depth != 0 || *movetime != 0 {
		p, err := position.NewPositionFen(*fen)
		if err != nil {
			out.Println("invalid fen:", err)
			return
		}
		s := search.NewSearch()
		sl := search.NewSearchLimits()
		if *depth != 0 {
			sl.MaxDepth = *depth
		} else {
			sl.MaxDepth = 64
		}
		if *movetime != 0 {
			sl.MaxTime = time.Duration(*movetime) * time.Millisecond
		}
		start := time.Now()
		result := s.SearchRoot(*p, *sl)
		out.Printf("bestmove %s score %s depth %d nodes %d time %s\n",
			result.BestMove.StringUci(), result.BestValue.String(), result.SearchDepth,
			result.Nodes, time.Since(start))
		return
	}

	flag.Usage()
}

func printVersionInfo() {
	out.Printf("FrankyGo chess engine core\n")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
