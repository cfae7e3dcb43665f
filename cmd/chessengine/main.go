/*
 * chessengine - a chess engine core in Go
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
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	oplogging "github.com/op/go-logging"
	// "github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessengine/internal/config"
	"github.com/frankkopp/chessengine/internal/logging"
	"github.com/frankkopp/chessengine/internal/movegen"
	"github.com/frankkopp/chessengine/internal/position"
	"github.com/frankkopp/chessengine/internal/search"
	"github.com/frankkopp/chessengine/internal/types"
	"github.com/frankkopp/chessengine/internal/zobrist"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	// go tool pprof -http=localhost:8080 chessengine cpu.pprof

	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglevel", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search or run perft on")
	depth := flag.Int("depth", 0, "search depth limit (0 = unlimited, bounded by -movetime)")
	movetime := flag.Int("movetime", 5000, "search time in milliseconds (0 = unlimited, bounded by -depth)")
	perft := flag.Int("perft", 0, "runs perft to the given depth on -fen and exits")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, err := oplogging.LogLevel(strings.ToUpper(*logLvl)); err == nil {
		logging.SetLevel(lvl)
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	runSearch(*fen, *depth, *movetime)
}

func runPerft(fen string, depth int) {
	pos, err := position.NewFen(zobrist.New(zobrist.DefaultSeed), fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	g := movegen.NewGenerator()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(g, pos, d)
		elapsed := time.Since(start)
		out.Printf("Perft depth %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func runSearch(fen string, depth, movetimeMs int) {
	pos, err := position.NewFen(zobrist.New(zobrist.DefaultSeed), fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if depth <= 0 {
		depth = 64
	}

	s := search.New()
	infoCb := func(d int, nodes uint64, timeMs int64, score types.Value, pv []types.Move, bound types.Bound) {
		if bound != types.BoundExact {
			return
		}
		out.Printf("info depth %d score %s nodes %d time %d pv %s\n", d, score, nodes, timeMs, formatPV(pv))
	}

	move, score, nodes := s.Search(pos, depth, movetimeMs, infoCb, nil)
	out.Println()
	out.Printf("bestmove %s (score %s, %d nodes)\n", move, score, nodes)
}

func formatPV(pv []types.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func printVersionInfo() {
	out.Printf("chessengine %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
