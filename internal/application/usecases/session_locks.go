package usecases

import (
	"sync"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
)

// sessionLocks hands out one mutex per session and forgets it once no
// request holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[entities.SessionID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[entities.SessionID]*sessionLock)}
}

func (l *sessionLocks) lock(id entities.SessionID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sessionLock{}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
