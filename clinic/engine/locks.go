package engine

import "sync"

// chatLocks serializes engine turns per chat identifier so that a
// double-sent message cannot read the same empty field twice and
// overwrite the first write. Entries are never reclaimed; the set of
// active chats is small.
type chatLocks struct {
	mu    sync.Mutex
	chats map[int64]*sync.Mutex
}

func (l *chatLocks) lock(chatID int64) func() {
	l.mu.Lock()
	if l.chats == nil {
		l.chats = make(map[int64]*sync.Mutex)
	}
	m, ok := l.chats[chatID]
	if !ok {
		m = &sync.Mutex{}
		l.chats[chatID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
