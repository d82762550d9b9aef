package database

import (
	"sync"
	"time"

	"github.com/ratel-online/uno-server/uno/game"
)

// Room owns one game. The embedded mutex serializes every action on the
// game; snapshot guards the stored value for lock-free readers.
type Room struct {
	sync.Mutex

	ID         string
	CreatedAt  time.Time
	ActiveTime time.Time

	seq      int64
	snapshot sync.RWMutex
	game     *game.Game
}

func (r *Room) load() *game.Game {
	r.snapshot.RLock()
	defer r.snapshot.RUnlock()
	return r.game.Clone()
}

func (r *Room) store(g *game.Game) *game.Game {
	stored := g.Clone()
	r.snapshot.Lock()
	r.game = stored
	r.ActiveTime = time.Now()
	r.snapshot.Unlock()
	return stored.Clone()
}

func (r *Room) inspect() (*game.Game, time.Time) {
	r.snapshot.RLock()
	defer r.snapshot.RUnlock()
	return r.game, r.ActiveTime
}
