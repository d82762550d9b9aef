package network

import (
	"strconv"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/render"
	"github.com/ratel-online/uno-server/service"
	"github.com/ratel-online/uno-server/uno/event"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Subscriber hands room events to a session.
type Subscriber interface {
	Subscribe(gameID string, listener event.Listener) func()
}

// Handler owns what every connection needs, whatever transport it came from.
type Handler struct {
	engine      *service.Engine
	players     *database.Players
	subscriber  Subscriber
	authTimeout time.Duration
}

func NewHandler(engine *service.Engine, players *database.Players, subscriber Subscriber, authTimeout time.Duration) *Handler {
	if authTimeout <= 0 {
		authTimeout = consts.AuthTimeout
	}
	return &Handler{
		engine:      engine,
		players:     players,
		subscriber:  subscriber,
		authTimeout: authTimeout,
	}
}

func (h *Handler) handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c, h.authTimeout)
	if err == nil && authInfo.ID == 0 {
		err = consts.ErrorsAuthFail
	}
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	player := h.players.Register(strconv.FormatInt(authInfo.ID, 10), authInfo.Name)
	log.Infof("player auth accessed, %s:%s\n", player.ID, player.Name)

	s := newSession(c, player, h)
	async.Async(s.flush)
	s.push(render.Welcome(player))
	defer s.close()
	return s.listen()
}

func loginAuth(c *network.Conn, timeout time.Duration) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(timeout):
		return nil, consts.ErrorsAuthFail
	}
}
