package database

import (
	"fmt"
	"sync"

	"github.com/ratel-online/uno-server/consts"
)

type PlayerData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Players is an in-memory player registry. Identity is owned by whoever
// registers players; the engine only reads display names.
type Players struct {
	players concurrentMap

	mutex sync.Mutex
	live  map[string]int
}

func NewPlayers() *Players {
	return &Players{players: newConcurrentMap(), live: map[string]int{}}
}

// Register records one more live connection of the player.
func (p *Players) Register(id, name string) PlayerData {
	data := PlayerData{ID: id, Name: name}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.players.set(id, data)
	p.live[id]++
	return data
}

// Unregister drops one live connection and reports whether it was the last.
// The player data stays so seated offline players keep their names.
func (p *Players) Unregister(id string) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.live[id] <= 1 {
		delete(p.live, id)
		return true
	}
	p.live[id]--
	return false
}

func (p *Players) GetPlayerData(id string) (PlayerData, error) {
	if v, ok := p.players.get(id); ok {
		return v.(PlayerData), nil
	}
	return PlayerData{}, fmt.Errorf("player %s: %w", id, consts.ErrorsPlayerNotFound)
}
