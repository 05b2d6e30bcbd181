package search

import (
	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
)

// Entry is a transposition table value: the result of searching a position to some
// depth, with the move that achieved it.
type Entry struct {
	Score eval.Score
	Move  board.Move
	Depth int
}

// node is an intrusive doubly-linked-list element. prev/next are both nil iff the node
// has been evicted (or never linked); every live node sits between the table's two
// sentinels, so real nodes always have non-nil neighbours.
type node struct {
	key        uint64
	value      Entry
	prev, next *node
}

// TranspositionTable is a bounded-capacity u64->Entry cache with LRU replacement. Get
// moves a hit to most-recently-used; Add evicts the least-recently-used entry when the
// table is at capacity. Not safe for concurrent use: the table has a single owner, the
// search driver running against it.
type TranspositionTable struct {
	capacity   int
	index      map[uint64]*node
	head, tail *node // sentinels; head.next is MRU, tail.prev is LRU.
}

// NewTranspositionTable builds an empty table holding up to capacity entries.
func NewTranspositionTable(capacity int) *TranspositionTable {
	t := &TranspositionTable{
		capacity: capacity,
		index:    make(map[uint64]*node, capacity),
		head:     &node{},
		tail:     &node{},
	}
	t.head.next = t.tail
	t.tail.prev = t.head
	return t
}

// Len returns the number of entries currently held.
func (t *TranspositionTable) Len() int {
	return len(t.index)
}

// Get returns the entry for key, if present, and moves it to most-recently-used.
func (t *TranspositionTable) Get(key uint64) (Entry, bool) {
	n, ok := t.index[key]
	if !ok {
		return Entry{}, false
	}
	t.unlink(n)
	t.linkFront(n)
	return n.value, true
}

// Add inserts or replaces the entry for key, making it most-recently-used. On a
// collision with an existing key, the new value always wins: a freshly computed entry
// generally reflects a deeper search than whatever it replaces. If the table is at
// capacity and key is new, the least-recently-used entry is evicted first.
func (t *TranspositionTable) Add(key uint64, value Entry) {
	if n, ok := t.index[key]; ok {
		n.value = value
		t.unlink(n)
		t.linkFront(n)
		return
	}

	if t.capacity > 0 && len(t.index) >= t.capacity {
		t.evictLRU()
	}

	n := &node{key: key, value: value}
	t.index[key] = n
	t.linkFront(n)
}

func (t *TranspositionTable) evictLRU() {
	lru := t.tail.prev
	if lru == t.head {
		return // empty.
	}
	t.unlink(lru)
	delete(t.index, lru.key)
}

func (t *TranspositionTable) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
}

func (t *TranspositionTable) linkFront(n *node) {
	n.next = t.head.next
	n.prev = t.head
	t.head.next.prev = n
	t.head.next = n
}
