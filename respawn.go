package main

import (
	"container/heap"
	"time"
)

// RespawnDelay is how long a defeated player waits before reviving
const RespawnDelay = 3000 * time.Millisecond

type respawnEntry struct {
	playerID string
	at       time.Time
	seq      uint64
}

type respawnHeap []respawnEntry

func (h respawnHeap) Len() int { return len(h) }
func (h respawnHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h respawnHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *respawnHeap) Push(x any)   { *h = append(*h, x.(respawnEntry)) }
func (h *respawnHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// RespawnQueue holds pending revives keyed by fire time. Entries are
// never cancelled; the consumer checks that the player still exists.
type RespawnQueue struct {
	h   respawnHeap
	seq uint64
}

// Schedule queues a revive of playerID at the given time
func (q *RespawnQueue) Schedule(playerID string, at time.Time) {
	q.seq++
	heap.Push(&q.h, respawnEntry{playerID: playerID, at: at, seq: q.seq})
}

// Due pops every entry whose fire time is not after now, earliest first
func (q *RespawnQueue) Due(now time.Time) []string {
	var ids []string
	for q.h.Len() > 0 && !q.h[0].at.After(now) {
		e := heap.Pop(&q.h).(respawnEntry)
		ids = append(ids, e.playerID)
	}
	return ids
}

// Len returns the number of pending revives
func (q *RespawnQueue) Len() int {
	return q.h.Len()
}
