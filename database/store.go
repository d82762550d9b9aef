package database

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
)

// Store maps game ids to rooms. Set is the only way to change a stored game
// and always publishes GameStateChanged with the new snapshot.
type Store struct {
	mutex     sync.Mutex
	seq       int64
	rooms     concurrentMap
	publisher event.Publisher
}

func NewStore(publisher event.Publisher) *Store {
	return &Store{
		rooms:     newConcurrentMap(),
		publisher: publisher,
	}
}

func (s *Store) Create(gameID string, g *game.Game) error {
	s.mutex.Lock()
	if _, ok := s.rooms.get(gameID); ok {
		s.mutex.Unlock()
		return fmt.Errorf("game %s: %w", gameID, consts.ErrorsGameExists)
	}
	s.seq++
	room := &Room{
		ID:        gameID,
		CreatedAt: time.Now(),
		seq:       s.seq,
	}
	snapshot := room.store(g)
	s.rooms.set(gameID, room)
	s.mutex.Unlock()

	log.Infof("game %s created\n", gameID)
	s.publisher.Emit(gameID, event.GameStateChanged, snapshot)
	return nil
}

func (s *Store) Get(gameID string) (*game.Game, error) {
	room, err := s.room(gameID)
	if err != nil {
		return nil, err
	}
	return room.load(), nil
}

func (s *Store) Set(gameID string, g *game.Game) error {
	room, err := s.room(gameID)
	if err != nil {
		return err
	}
	snapshot := room.store(g)
	s.publisher.Emit(gameID, event.GameStateChanged, snapshot)
	return nil
}

// List returns every game in creation order.
func (s *Store) List() []*game.Game {
	rooms := s.Rooms()
	games := make([]*game.Game, 0, len(rooms))
	for _, room := range rooms {
		games = append(games, room.load())
	}
	return games
}

func (s *Store) Rooms() []*Room {
	rooms := make([]*Room, 0)
	s.rooms.foreach(func(value interface{}) {
		rooms = append(rooms, value.(*Room))
	})
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].seq < rooms[j].seq
	})
	return rooms
}

// Lock acquires the room's action lock; call the returned func to release it.
func (s *Store) Lock(gameID string) (func(), error) {
	room, err := s.room(gameID)
	if err != nil {
		return nil, err
	}
	room.Lock()
	return room.Unlock, nil
}

// Delete drops a room. Cleanup of ended games is left to callers.
func (s *Store) Delete(gameID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.rooms.get(gameID); !ok {
		return fmt.Errorf("game %s: %w", gameID, consts.ErrorsGameNotFound)
	}
	s.rooms.del(gameID)
	log.Infof("game %s removed\n", gameID)
	return nil
}

func (s *Store) room(gameID string) (*Room, error) {
	if v, ok := s.rooms.get(gameID); ok {
		return v.(*Room), nil
	}
	return nil, fmt.Errorf("game %s: %w", gameID, consts.ErrorsGameNotFound)
}

// Sweep removes ended games, and waiting games everybody left, once they have
// not changed for ttl. It returns the removed ids.
func (s *Store) Sweep(ttl time.Duration) []string {
	var removed []string
	for _, room := range s.Rooms() {
		g, active := room.inspect()
		abandoned := g.Status == game.StatusEnded || (g.Status == game.StatusWaiting && len(g.Players) == 0)
		if !abandoned || active.Add(ttl).After(time.Now()) {
			continue
		}
		if err := s.Delete(room.ID); err == nil {
			removed = append(removed, room.ID)
		}
	}
	return removed
}
