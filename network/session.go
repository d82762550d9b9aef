package network

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/render"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
)

const outboxSize = 64

// session serves one authenticated connection. Responses and room events are
// queued to a single writer; events are dropped when a client falls behind.
type session struct {
	conn    *network.Conn
	player  database.PlayerData
	handler *Handler

	out      chan model.Resp
	done     chan struct{}
	doneOnce sync.Once

	mutex         sync.Mutex
	subscriptions map[string]func()
}

func newSession(conn *network.Conn, player database.PlayerData, handler *Handler) *session {
	return &session{
		conn:          conn,
		player:        player,
		handler:       handler,
		out:           make(chan model.Resp, outboxSize),
		done:          make(chan struct{}),
		subscriptions: map[string]func(){},
	}
}

func (s *session) listen() error {
	for {
		packet, err := s.conn.Read()
		if err != nil {
			return err
		}
		req := model.Request{}
		if err := packet.Unmarshal(&req); err != nil {
			s.push(model.ErrResp("", "", consts.ErrorsInputInvalid))
			continue
		}
		s.serve(req)
	}
}

func (s *session) serve(req model.Request) {
	subscribed := false
	switch req.Action {
	case consts.ActionCreate:
		if req.GameID == "" {
			req.GameID = uuid.NewString()
		}
		subscribed = s.subscribe(req.GameID)
	case consts.ActionJoin, consts.ActionObserve:
		subscribed = s.subscribe(req.GameID)
	}
	resp := s.handler.engine.Handle(s.player.ID, req)
	if !resp.Success() && subscribed {
		s.unsubscribe(req.GameID)
	}
	if games, ok := resp.Data.([]*game.Game); ok && resp.Success() {
		resp.Msg = render.RoomList(games)
	}
	s.push(resp)
}

// subscribe reports whether a new subscription was made.
func (s *session) subscribe(gameID string) bool {
	if gameID == "" {
		return false
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.subscriptions[gameID]; ok {
		return false
	}
	s.subscriptions[gameID] = s.handler.subscriber.Subscribe(gameID, event.ListenerFunc(s.broadcast))
	return true
}

func (s *session) unsubscribe(gameID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if cancel, ok := s.subscriptions[gameID]; ok {
		cancel()
		delete(s.subscriptions, gameID)
	}
}

func (s *session) broadcast(ev event.Event) {
	select {
	case s.out <- model.SucBroadcast(ev, render.Event(s.handler.players, ev)):
	case <-s.done:
	default:
		log.Infof("player %s is behind, dropped %s for game %s\n", s.player.ID, ev.Kind, ev.GameID)
	}
}

func (s *session) push(resp model.Resp) {
	select {
	case s.out <- resp:
	case <-s.done:
	}
}

func (s *session) flush() {
	for {
		select {
		case resp := <-s.out:
			if err := s.conn.Write(protocol.Packet{Body: json.Marshal(resp)}); err != nil {
				log.Error(err)
				s.stop()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *session) stop() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// close drops every subscription. The player leaves its rooms once its last
// connection is gone.
func (s *session) close() {
	s.mutex.Lock()
	for gameID, cancel := range s.subscriptions {
		cancel()
		delete(s.subscriptions, gameID)
	}
	s.mutex.Unlock()
	s.stop()
	if s.handler.players.Unregister(s.player.ID) {
		s.handler.engine.PurgePlayer(s.player.ID)
	}
	log.Infof("player %s:%s disconnected\n", s.player.ID, s.player.Name)
}
