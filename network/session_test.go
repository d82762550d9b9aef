package network

import (
	"testing"
	"time"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/service"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	emitter := event.NewEmitter()
	players := database.NewPlayers()
	engine := service.NewEngine(database.NewStore(emitter), players, emitter, service.Options{})
	t.Cleanup(func() {
		engine.Close()
		emitter.Close()
	})
	return NewHandler(engine, players, emitter, time.Second)
}

func newTestSession(h *Handler, id string) *session {
	return newSession(nil, h.players.Register(id, "name-"+id), h)
}

// next waits for the first queued frame matching accept.
func next(t *testing.T, s *session, accept func(model.Resp) bool) model.Resp {
	deadline := time.After(time.Second)
	for {
		select {
		case resp := <-s.out:
			if accept(resp) {
				return resp
			}
		case <-deadline:
			t.Fatal("no matching frame")
		}
	}
}

func isAction(action string) func(model.Resp) bool {
	return func(resp model.Resp) bool {
		return resp.Action == action
	}
}

func isEvent(kind event.Kind) func(model.Resp) bool {
	return func(resp model.Resp) bool {
		return resp.Action == model.ActionEvent && resp.Kind == kind
	}
}

func TestSessionCreate(t *testing.T) {
	h := newTestHandler(t)
	s := newTestSession(h, "1")
	s.serve(model.Request{Action: consts.ActionCreate})

	resp := next(t, s, isAction(consts.ActionCreate))
	require.True(t, resp.Success())
	require.NotEmpty(t, resp.GameID)
	require.Contains(t, s.subscriptions, resp.GameID)

	created := next(t, s, isEvent(event.GameCreated))
	require.Equal(t, consts.CodeEvent, created.Code)
	require.Equal(t, resp.GameID, created.GameID)
	require.Equal(t, "name-1 created room "+resp.GameID+"\n", created.Msg)
}

func TestSessionJoinEvents(t *testing.T) {
	h := newTestHandler(t)
	owner := newTestSession(h, "1")
	guest := newTestSession(h, "2")
	owner.serve(model.Request{Action: consts.ActionCreate, GameID: "g1"})
	guest.serve(model.Request{Action: consts.ActionJoin, GameID: "g1"})

	require.True(t, next(t, guest, isAction(consts.ActionJoin)).Success())
	joined := next(t, owner, isEvent(event.PlayerJoined))
	require.Len(t, joined.Data.(*game.Game).Players, 2)
}

func TestSessionFailedJoinUnsubscribes(t *testing.T) {
	h := newTestHandler(t)
	s := newTestSession(h, "1")
	s.serve(model.Request{Action: consts.ActionJoin, GameID: "missing"})

	resp := next(t, s, isAction(consts.ActionJoin))
	require.Equal(t, consts.ErrorsGameNotFound.Code, resp.Code)
	require.Empty(t, s.subscriptions)
}

func TestSessionClosePurgesPlayer(t *testing.T) {
	h := newTestHandler(t)
	owner := newTestSession(h, "1")
	guest := newTestSession(h, "2")
	owner.serve(model.Request{Action: consts.ActionCreate, GameID: "g1"})
	guest.serve(model.Request{Action: consts.ActionJoin, GameID: "g1"})
	guest.close()

	g, err := h.engine.GetGame("g1")
	require.NoError(t, err)
	require.False(t, g.HasPlayer("2"))
	require.Empty(t, guest.subscriptions)
}

func TestSessionCloseKeepsPlayerWithAnotherConnection(t *testing.T) {
	h := newTestHandler(t)
	owner := newTestSession(h, "1")
	guest := newTestSession(h, "2")
	reconnected := newTestSession(h, "2")
	owner.serve(model.Request{Action: consts.ActionCreate, GameID: "g1"})
	guest.serve(model.Request{Action: consts.ActionJoin, GameID: "g1"})
	guest.close()

	g, err := h.engine.GetGame("g1")
	require.NoError(t, err)
	require.True(t, g.HasPlayer("2"))

	reconnected.close()
	g, err = h.engine.GetGame("g1")
	require.NoError(t, err)
	require.False(t, g.HasPlayer("2"))
}

func TestSessionListRendersRooms(t *testing.T) {
	h := newTestHandler(t)
	s := newTestSession(h, "1")
	s.serve(model.Request{Action: consts.ActionCreate, GameID: "g1"})
	s.serve(model.Request{Action: consts.ActionList})

	resp := next(t, s, isAction(consts.ActionList))
	require.True(t, resp.Success())
	require.Contains(t, resp.Msg, "g1")
}

func TestSessionDropsEventsWhenBehind(t *testing.T) {
	h := newTestHandler(t)
	s := newTestSession(h, "1")
	for i := 0; i < outboxSize; i++ {
		s.out <- model.Resp{}
	}
	done := make(chan struct{})
	go func() {
		s.broadcast(event.Event{GameID: "g1", Kind: event.GameStateChanged})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked")
	}
	require.Len(t, s.out, outboxSize)
}
