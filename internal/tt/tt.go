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

// Package tt implements the searcher's transposition table: a fixed-size
// array of single-slot entries addressed by the low bits of the Zobrist
// key, overwrite-on-insert (no depth-preferred/aging replacement scheme -
// the newest Put to a given slot always wins). Not safe for concurrent
// use; callers synchronize externally the same way the teacher's table
// documents for Resize/Clear.
package tt

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/chessengine/internal/logging"
	"github.com/frankkopp/chessengine/internal/types"
)

var out = message.NewPrinter(language.English)

// MaxSizeMb bounds how large a table Resize will honor.
const MaxSizeMb = 65_536

// Entry is one transposition-table slot, 32 bytes with padding: enough to carry the
// full Value range without the teacher's int16 packing trick, since
// nothing in the spec requires the table to fit a 16-byte cache line.
type Entry struct {
	Key   uint64
	Move  types.Move
	Value types.Value
	Eval  types.Value
	Depth int8
	Bound types.Bound
}

// EntrySize is the size in bytes of a single Entry.
const EntrySize = unsafe.Sizeof(Entry{})

// Table is the transposition table.
type Table struct {
	log *logging.Logger

	data     []Entry
	keyMask  uint64
	capacity uint64
	entries  uint64

	Stats Stats
}

// Stats tracks usage counters for diagnostics, mirroring what the UCI
// "info" line and engine logs report.
type Stats struct {
	Puts    uint64
	Updates uint64
	Probes  uint64
	Hits    uint64
	Misses  uint64
}

// New creates a table sized to the largest power-of-two entry count that
// fits within sizeInMb megabytes.
func New(sizeInMb int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeInMb)
	return t
}

// Resize rebuilds the table for a new memory budget, discarding all
// entries. Not safe to call concurrently with Probe/Put.
func (t *Table) Resize(sizeInMb int) {
	if sizeInMb > MaxSizeMb {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMb, MaxSizeMb))
		sizeInMb = MaxSizeMb
	}
	if sizeInMb < 0 {
		sizeInMb = 0
	}
	sizeInBytes := uint64(sizeInMb) * 1024 * 1024
	capacity := uint64(0)
	if sizeInBytes >= uint64(EntrySize) {
		capacity = 1 << uint64(math.Floor(math.Log2(float64(sizeInBytes)/float64(EntrySize))))
	}
	t.capacity = capacity
	t.keyMask = 0
	if capacity > 0 {
		t.keyMask = capacity - 1
	}
	t.data = make([]Entry, capacity)
	t.entries = 0
	t.Stats = Stats{}
	t.log.Info(out.Sprintf("TT resized to %d entries (%d bytes each, %d MB requested)", capacity, EntrySize, sizeInMb))
}

// Clear empties every entry without changing the table's capacity.
func (t *Table) Clear() {
	t.data = make([]Entry, t.capacity)
	t.entries = 0
	t.Stats = Stats{}
}

func (t *Table) slot(key uint64) *Entry {
	return &t.data[key&t.keyMask]
}

// Probe returns the entry stored at key's slot, or nil on a miss or a
// hash collision (a different position occupying the same slot).
func (t *Table) Probe(key uint64) *Entry {
	if t.capacity == 0 {
		return nil
	}
	t.Stats.Probes++
	e := t.slot(key)
	if e.Key == key && e.Bound != types.BoundNone {
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores a search result, unconditionally overwriting whatever
// previously occupied the slot for this key (the spec's simplified
// replacement policy: the most recent visit to a position is always the
// freshest information available for it).
func (t *Table) Put(key uint64, move types.Move, depth int8, value, eval types.Value, bound types.Bound) {
	if t.capacity == 0 {
		return
	}
	e := t.slot(key)
	if e.Bound == types.BoundNone {
		t.entries++
	}
	t.Stats.Puts++
	if e.Key == key {
		t.Stats.Updates++
	}
	e.Key = key
	e.Move = move
	e.Value = value
	e.Eval = eval
	e.Depth = depth
	e.Bound = bound
}

// Hashfull reports how full the table is, in permill, as UCI expects.
func (t *Table) Hashfull() int {
	if t.capacity == 0 {
		return 0
	}
	return int((1000 * t.entries) / t.capacity)
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 { return t.entries }

func (t *Table) String() string {
	return out.Sprintf("TT: capacity=%d entries=%d (%d%%) puts=%d updates=%d probes=%d hits=%d misses=%d",
		t.capacity, t.entries, t.Hashfull()/10, t.Stats.Puts, t.Stats.Updates, t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
