package app

import (
	"sort"
	"sync"
)

// RoomLocks serializes bookings and assignments per room id. The
// overlap check and the insert that follows it are only safe when no
// other request can slip between them for the same room.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *RoomLocks) get(id int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// Lock acquires the room's mutex and returns its unlock func.
func (l *RoomLocks) Lock(id int64) func() {
	m := l.get(id)
	m.Lock()
	return m.Unlock
}

// LockAll acquires every listed room's mutex in ascending id order, so
// two concurrent multi-room operations can never deadlock each other.
// Duplicate ids are collapsed.
func (l *RoomLocks) LockAll(ids []int64) func() {
	uniq := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	ordered := make([]int64, 0, len(uniq))
	for id := range uniq {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, id := range ordered {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
