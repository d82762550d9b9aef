package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
)

type Websocket struct {
	addr    string
	handler *Handler
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, handler *Handler) Websocket {
	return Websocket{addr: addr, handler: handler}
}

func (w Websocket) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, mux)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	if err := w.handler.handle(protocol.NewWebsocketReadWriteCloser(conn)); err != nil {
		log.Error(err)
	}
}
