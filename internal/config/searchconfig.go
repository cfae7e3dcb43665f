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

package config

// searchConfiguration holds the searcher's tunables. Depth, TimeMs and
// DeterministicSeed are loaded from the config file, but no caller reads
// them: the CLI takes depth and time from its flags and always keys
// positions with zobrist.DefaultSeed. The rest are the ambient knobs the
// teacher keeps alongside the domain ones so the search's algorithmic
// choices are config-visible rather than compiled-in constants.
type searchConfiguration struct {
	Depth             int
	TimeMs            int
	DeterministicSeed uint64

	TTSizeMb int

	UseNullMove      bool
	NullMoveMinDepth int

	UseLmr        bool
	LmrMinDepth   int
	LmrMoveNumber int

	UseFutility      bool
	FutilityMaxDepth int

	UseAspiration          bool
	AspirationInitialDelta int

	NodesPerTimeCheck int
}

func init() {
	Settings.Search.Depth = 6
	Settings.Search.TimeMs = 0
	Settings.Search.DeterministicSeed = 0x9E3779B97F4A7C15

	Settings.Search.TTSizeMb = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveMinDepth = 2

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 3
	Settings.Search.LmrMoveNumber = 4

	Settings.Search.UseFutility = true
	Settings.Search.FutilityMaxDepth = 2

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationInitialDelta = 50

	Settings.Search.NodesPerTimeCheck = 2048
}
