package service

import (
	"sync"
	"time"
)

// turnTimers keeps at most one pending timer per game. A fired timer only
// carries the round it was armed for.
type turnTimers struct {
	sync.Mutex
	timeout time.Duration
	timers  map[string]*time.Timer
	expire  func(gameID string, round int)
}

func newTurnTimers(timeout time.Duration, expire func(gameID string, round int)) *turnTimers {
	return &turnTimers{
		timeout: timeout,
		timers:  map[string]*time.Timer{},
		expire:  expire,
	}
}

func (t *turnTimers) schedule(gameID string, round int) {
	if t.timeout <= 0 {
		return
	}
	t.Lock()
	defer t.Unlock()
	if timer, ok := t.timers[gameID]; ok {
		timer.Stop()
	}
	t.timers[gameID] = time.AfterFunc(t.timeout, func() {
		t.expire(gameID, round)
	})
}

func (t *turnTimers) stop(gameID string) {
	t.Lock()
	defer t.Unlock()
	if timer, ok := t.timers[gameID]; ok {
		timer.Stop()
		delete(t.timers, gameID)
	}
}

func (t *turnTimers) stopAll() {
	t.Lock()
	defer t.Unlock()
	for gameID, timer := range t.timers {
		timer.Stop()
		delete(t.timers, gameID)
	}
}

func (t *turnTimers) pending(gameID string) bool {
	t.Lock()
	defer t.Unlock()
	_, ok := t.timers[gameID]
	return ok
}
