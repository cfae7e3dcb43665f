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

// Package logging sets up the single shared op/go-logging backend used by
// every other package; each caller gets its own named *Logger so log lines
// carry the originating package/module.
package logging

import (
	"os"
	"sync"

	. "github.com/op/go-logging"
)

var setupOnce sync.Once

// currentLevel is the package-wide leveled backend's threshold. Changed via
// SetLevel; the new level takes effect at the next GetLog call, which
// rebuilds the shared backend.
var currentLevel = DEBUG

// SetLevel sets the level applied to the shared stdout backend.
func SetLevel(lvl Level) {
	currentLevel = lvl
	setupOnce = sync.Once{}
}

// GetLog returns a named logger writing to the shared stdout backend.
func GetLog(name string) *Logger {
	log := MustGetLogger(name)
	setupOnce.Do(func() {
		backend := NewLogBackend(os.Stdout, "", 0)
		format := MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		formatted := NewBackendFormatter(backend, format)
		leveled := AddModuleLevel(formatted)
		leveled.SetLevel(currentLevel, "")
		SetBackend(leveled)
	})
	return log
}
