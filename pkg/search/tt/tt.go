// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tt implements the shared transposition table: a flat,
// cluster-based, generation-aged store keyed by Zobrist hash, written
// concurrently by every search worker without locks. Torn writes are
// tolerated by design: a 16-bit partial-key check filters almost every
// accidental hit, and a mis-accepted entry can only mis-order moves,
// never corrupt the board (see pkg/search/threadpool for the workers
// that write it).
package tt

import (
	"sync/atomic"

	"github.com/kestrelchess/kestrel/pkg/move"
)

// Bound classifies the kind of score stored in an Entry.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// entriesPerCluster is chosen so a cluster plus its 2-byte pad fits
// within one 64-byte cache line: 3 * 10 bytes + 2 bytes padding = 32.
const entriesPerCluster = 3

// entry is one slot of a cluster. Every field is written with a plain
// (non-atomic) store; concurrent writers can tear a single entry across
// two field updates, which is the documented, accepted race: the
// 16-bit key check below makes a torn read look like a miss almost all
// the time, and the cost of the rare false hit is a mis-ordered move,
// not a crash.
type entry struct {
	key       uint16
	move      move.Move
	score     int16
	eval      int16
	depth     int8
	genBound  uint8 // generation (high 5 bits) | bound (low 3 bits)
}

type cluster struct {
	entries [entriesPerCluster]entry
	_       [2]byte
}

// Table is the shared transposition table. The zero Table is usable
// once Resize has been called at least once.
type Table struct {
	clusters   []cluster
	mask       uint64
	generation uint32 // atomic; strides of 8 so low 3 bits stay free for Bound
}

// New creates a Table sized to hold roughly hashMB megabytes of
// clusters, rounded down to the nearest power of two cluster count.
func New(hashMB int) *Table {
	t := &Table{}
	t.Resize(hashMB)
	return t
}

// Resize reallocates the table for a new hash-size budget, discarding
// all prior entries.
func (t *Table) Resize(hashMB int) {
	const clusterSize = entriesPerCluster*10 + 2 // bytes/cluster: 10-byte entries plus the 2-byte pad

	bytes := hashMB * 1024 * 1024
	count := bytes / clusterSize
	if count < 1 {
		count = 1
	}

	// round down to a power of two so index = hash & mask
	pow := 1
	for pow*2 <= count {
		pow *= 2
	}

	t.clusters = make([]cluster, pow)
	t.mask = uint64(pow - 1)
}

// Clear resets every entry without changing the table's size.
func (t *Table) Clear() {
	for i := range t.clusters {
		t.clusters[i] = cluster{}
	}
	atomic.StoreUint32(&t.generation, 0)
}

// NewSearch bumps the table's generation, used to age out entries from
// previous searches during replacement.
func (t *Table) NewSearch() {
	atomic.AddUint32(&t.generation, 8)
}

func (t *Table) generationNow() uint8 {
	return uint8(atomic.LoadUint32(&t.generation))
}

func partialKey(hash uint64) uint16 {
	return uint16(hash >> 48)
}

func (t *Table) index(hash uint64) uint64 {
	return hash & t.mask
}

// Hit is a successful Probe result.
type Hit struct {
	Move  move.Move
	Score int16
	Eval  int16
	Depth int8
	Bound Bound
}

// Probe looks up hash's cluster and returns (Hit, true) if an entry
// with a matching partial key is present.
func (t *Table) Probe(hash uint64) (Hit, bool) {
	c := &t.clusters[t.index(hash)]
	key := partialKey(hash)

	for i := range c.entries {
		e := &c.entries[i]
		if e.key == key && key != 0 {
			return Hit{
				Move:  e.move,
				Score: e.score,
				Eval:  e.eval,
				Depth: e.depth,
				Bound: Bound(e.genBound & 0x7),
			}, true
		}
	}

	return Hit{}, false
}

// agePenalty makes older generations look shallower for replacement
// purposes, so a deep entry from several searches ago still eventually
// loses to a shallow entry from the current one.
func agePenalty(generation, current uint8) int {
	diff := int(current) - int(generation)
	if diff < 0 {
		diff += 256
	}
	return diff / 8 * 2
}

// Place writes a search result into hash's cluster, picking the
// existing entry with a matching key if present, else the entry with
// the lowest depth-minus-age-penalty as the replacement target. The
// prior best move is preserved when the key matches, m is move.Null and
// the new bound is not Exact; a previously recorded static eval is never
// overwritten.
func (t *Table) Place(hash uint64, m move.Move, score, eval int16, depth int8, bound Bound) {
	c := &t.clusters[t.index(hash)]
	key := partialKey(hash)
	gen := t.generationNow()

	var target *entry
	worstScore := int(1<<31 - 1)

	for i := range c.entries {
		e := &c.entries[i]
		if e.key == key {
			target = e
			break
		}
		replaceScore := int(e.depth) - agePenalty(e.genBound>>3, gen)
		if replaceScore < worstScore {
			worstScore = replaceScore
			target = e
		}
	}

	sameKey := target.key == key
	if sameKey && m == move.Null && bound != BoundExact {
		m = target.move // preserve prior best move across a non-exact update
	}
	keepEval := sameKey && target.eval != 0

	target.key = key
	target.move = m
	target.score = score
	if !keepEval {
		target.eval = eval
	}
	target.depth = depth
	target.genBound = gen | uint8(bound)
}

// Prefetch is a non-binding hint that hash's cluster will likely be
// probed soon. Go has no portable software-prefetch intrinsic, so this
// is a documented no-op kept only so call sites read the same as the
// contract describes; a future cgo or assembly prefetch could slot in
// here without changing any caller.
func (t *Table) Prefetch(hash uint64) {
	_ = hash
}

// Len returns the number of clusters in the table.
func (t *Table) Len() int { return len(t.clusters) }
