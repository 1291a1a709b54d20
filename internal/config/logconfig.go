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

package config

// logConfiguration holds the log levels for the various loggers used
// across the engine. Levels follow github.com/op/go-logging's scale
// (0=CRITICAL .. 5=DEBUG).
type logConfiguration struct {
	Level     int
	TestLevel int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Log.Level = LogLevel
	Settings.Log.TestLevel = TestLogLevel
}

// setupLogLvl falls back to the package level LogLevel/TestLogLevel vars
// for any level the config file left at 0.
func setupLogLvl() {
	if Settings.Log.Level == 0 {
		Settings.Log.Level = LogLevel
	}
	if Settings.Log.TestLevel == 0 {
		Settings.Log.TestLevel = TestLogLevel
	}
}
