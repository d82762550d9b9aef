package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/config"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/network"
	"github.com/ratel-online/uno-server/service"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/player"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	envFile := flag.String("env", ".env", "dotenv file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Error(err)
		return
	}

	autoplay, err := player.ByName(cfg.Autoplay)
	if err != nil {
		log.Error(err)
		return
	}

	emitter := event.NewEmitter()
	defer emitter.Close()
	store := database.NewStore(emitter)
	players := database.NewPlayers()
	engine := service.NewEngine(store, players, emitter, service.Options{
		MinPlayers:  cfg.MinPlayers,
		MaxPlayers:  cfg.MaxPlayers,
		HandSize:    cfg.HandSize,
		TurnTimeout: cfg.TurnTimeout,
		Seed:        cfg.Seed,
		Autoplay:    autoplay,
	})
	defer engine.Close()

	if cfg.RoomTTL > 0 {
		async.Async(func() {
			sweep(store, cfg.RoomTTL)
		})
	}

	handler := network.NewHandler(engine, players, emitter, cfg.AuthTimeout)
	async.Async(func() {
		log.Error(network.NewWebsocketServer(cfg.WsAddr, handler).Serve())
	})
	log.Error(network.NewTcpServer(cfg.TcpAddr, handler).Serve())
}

func sweep(store *database.Store, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for range ticker.C {
		if removed := store.Sweep(ttl); len(removed) > 0 {
			log.Infof("swept %d idle game(s)\n", len(removed))
		}
	}
}
