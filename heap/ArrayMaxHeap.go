/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package heap implements a binary max-heap over array indices whose
// priority lives in a caller-owned intvector.Vector rather than inside
// the heap node itself. This is the shape the LCP factorizer needs:
// the same index can be decreased many times as repeats it participates
// in get consumed by earlier, longer factors, and each time the heap
// must locate it in O(1) rather than scan for it.
package heap

import (
	"github.com/pkg/errors"

	"github.com/tudocomp-go/lcpcomp/intvector"
)

// ArrayMaxHeap is a max-heap of indices in [0,n) ordered by the value
// the caller holds at keys.Get(i). It never copies or owns keys: it
// only reads it to compare priorities. heap and pos are its own
// packed bookkeeping vectors, sized like keys so UNDEF (n) always
// fits in their bit width.
type ArrayMaxHeap struct {
	keys *intvector.Vector
	heap *intvector.Vector // slot -> index
	pos  *intvector.Vector // index -> slot, or undef
	size int
	undef uint64
}

// New creates an empty heap over an index range [0, keys.Len()).
// keys is borrowed, not copied: its values may be mutated by the
// caller (via DecreaseKey, or directly) between operations, and the
// heap always reads the current value.
func New(keys *intvector.Vector) (*ArrayMaxHeap, error) {
	n := keys.Len()

	if n == 0 {
		return nil, errors.New("heap: keys vector must have positive length")
	}

	width := intvector.WidthFor(uint64(n))

	heapVec, err := intvector.New(n, width)
	if err != nil {
		return nil, errors.Wrap(err, "heap: allocating heap vector")
	}

	posVec, err := intvector.New(n, width)
	if err != nil {
		return nil, errors.Wrap(err, "heap: allocating pos vector")
	}

	undef := uint64(n)

	for i := 0; i < n; i++ {
		posVec.Set(i, undef)
	}

	return &ArrayMaxHeap{keys: keys, heap: heapVec, pos: posVec, size: 0, undef: undef}, nil
}

// Len returns the number of indices currently held by the heap.
func (this *ArrayMaxHeap) Len() int {
	return this.size
}

// Contains reports whether index i is currently in the heap.
func (this *ArrayMaxHeap) Contains(i int) bool {
	return this.pos.Get(i) != this.undef
}

func (this *ArrayMaxHeap) key(i int) uint64 {
	return this.keys.Get(i)
}

func (this *ArrayMaxHeap) slotKey(slot int) uint64 {
	return this.key(int(this.heap.Get(slot)))
}

func parent(slot int) int { return (slot - 1) / 2 }
func left(slot int) int   { return 2*slot + 1 }
func right(slot int) int  { return 2*slot + 2 }

func (this *ArrayMaxHeap) setSlot(slot int, idx int) {
	this.heap.Set(slot, uint64(idx))
	this.pos.Set(idx, uint64(slot))
}

func (this *ArrayMaxHeap) siftUp(slot int) {
	for slot > 0 {
		p := parent(slot)

		if this.slotKey(p) >= this.slotKey(slot) {
			break
		}

		pIdx := int(this.heap.Get(p))
		sIdx := int(this.heap.Get(slot))
		this.setSlot(p, sIdx)
		this.setSlot(slot, pIdx)
		slot = p
	}
}

func (this *ArrayMaxHeap) siftDown(slot int) {
	for {
		l, r := left(slot), right(slot)
		largest := slot

		if l < this.size && this.slotKey(l) > this.slotKey(largest) {
			largest = l
		}

		if r < this.size && this.slotKey(r) > this.slotKey(largest) {
			largest = r
		}

		if largest == slot {
			return
		}

		lIdx := int(this.heap.Get(largest))
		sIdx := int(this.heap.Get(slot))
		this.setSlot(largest, sIdx)
		this.setSlot(slot, lIdx)
		slot = largest
	}
}

// Insert adds index i to the heap. i must not already be present.
func (this *ArrayMaxHeap) Insert(i int) {
	if this.Contains(i) {
		panic(errors.Errorf("heap: index %d already present", i))
	}

	slot := this.size
	this.size++
	this.setSlot(slot, i)
	this.siftUp(slot)
}

// Max returns the index with the largest key currently in the heap.
// ok is false if the heap is empty.
func (this *ArrayMaxHeap) Max() (idx int, ok bool) {
	if this.size == 0 {
		return 0, false
	}

	return int(this.heap.Get(0)), true
}

// Remove evicts index i from the heap, wherever its current slot is.
// It does not touch keys.Get(i): the caller still owns that value.
func (this *ArrayMaxHeap) Remove(i int) {
	slot := int(this.pos.Get(i))

	if this.pos.Get(i) == this.undef {
		panic(errors.Errorf("heap: index %d not present", i))
	}

	this.pos.Set(i, this.undef)
	this.size--
	last := this.size

	if slot == last {
		return
	}

	lastIdx := int(this.heap.Get(last))
	this.setSlot(slot, lastIdx)

	// The moved element may need to go either up or down depending on
	// whether its key is larger or smaller than its new parent's.
	if slot > 0 && this.slotKey(slot) > this.slotKey(parent(slot)) {
		this.siftUp(slot)
	} else {
		this.siftDown(slot)
	}
}

// DecreaseKey sets keys[i] = v (v must not exceed the current value)
// and re-heapifies downward from i's slot. i must be present.
func (this *ArrayMaxHeap) DecreaseKey(i int, v uint64) {
	old := this.key(i)

	if v > old {
		panic(errors.Errorf("heap: DecreaseKey(%d, %d) increases key from %d", i, v, old))
	}

	if !this.Contains(i) {
		panic(errors.Errorf("heap: index %d not present", i))
	}

	this.keys.Set(i, v)
	this.siftDown(int(this.pos.Get(i)))
}
