package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
	"github.com/ratel-online/uno-server/uno/player"
)

// PlayerRegistry resolves display names for player ids.
type PlayerRegistry interface {
	GetPlayerData(playerID string) (database.PlayerData, error)
}

type Options struct {
	MinPlayers  int
	MaxPlayers  int
	HandSize    int
	TurnTimeout time.Duration
	// Seed makes every new deck reproducible when non-zero.
	Seed int64
	// NewDeck overrides the deck built for each game.
	NewDeck func() game.Pile
	// Autoplay plays timed out turns. Nil only skips them.
	Autoplay player.Strategy
}

// Engine runs the rules for every room. Exported methods lock the room they
// act on; unexported ones expect the lock to be held.
type Engine struct {
	store   *database.Store
	players PlayerRegistry
	emitter event.Publisher
	options Options
	timers  *turnTimers

	rngMutex sync.Mutex
	rng      *rand.Rand
}

func NewEngine(store *database.Store, players PlayerRegistry, emitter event.Publisher, options Options) *Engine {
	if options.MinPlayers <= 0 {
		options.MinPlayers = consts.MinPlayers
	}
	if options.MaxPlayers <= 0 {
		options.MaxPlayers = consts.MaxPlayers
	}
	if options.HandSize <= 0 {
		options.HandSize = consts.HandSize
	}
	e := &Engine{
		store:   store,
		players: players,
		emitter: emitter,
		options: options,
	}
	if options.Seed != 0 {
		e.rng = rand.New(rand.NewSource(options.Seed))
	}
	e.timers = newTurnTimers(options.TurnTimeout, e.skipExpiredTurn)
	return e
}

// Close stops pending round timers.
func (e *Engine) Close() {
	e.timers.stopAll()
}

func (e *Engine) setupInitialCards() game.Pile {
	if e.options.NewDeck != nil {
		return e.options.NewDeck()
	}
	e.rngMutex.Lock()
	defer e.rngMutex.Unlock()
	return game.SetupInitialCards(e.rng)
}

// withGame runs fn on a working copy of the game while holding its room lock.
func (e *Engine) withGame(gameID string, fn func(g *game.Game) error) error {
	unlock, err := e.store.Lock(gameID)
	if err != nil {
		return err
	}
	defer unlock()
	g, err := e.store.Get(gameID)
	if err != nil {
		return err
	}
	return fn(g)
}

func (e *Engine) CreateGame(playerID string) (string, error) {
	gameID := uuid.NewString()
	if err := e.SetupGame(playerID, gameID); err != nil {
		return "", err
	}
	return gameID, nil
}

func (e *Engine) SetupGame(playerID, gameID string) error {
	playerData, err := e.players.GetPlayerData(playerID)
	if err != nil {
		return err
	}
	g := game.New(gameID, playerData.Name, e.options.MaxPlayers, e.setupInitialCards(), game.NewPlayer(playerID, playerData.Name))
	if err := e.store.Create(gameID, g); err != nil {
		return err
	}
	log.Infof("game %s set up by %s\n", gameID, playerData.Name)
	e.emitter.Emit(gameID, event.GameCreated, g)
	return nil
}

func (e *Engine) JoinGame(gameID, playerID string) error {
	return e.withGame(gameID, func(g *game.Game) error {
		index := g.PlayerIndex(playerID)
		if index >= 0 && g.Status == game.StatusPlaying && g.Players[index].Status == game.PlayerOffline {
			g.Players[index].Status = game.PlayerOnline
			if err := e.store.Set(gameID, g); err != nil {
				return err
			}
			log.Infof("game %s: player %s reconnected\n", gameID, playerID)
			e.emitter.Emit(gameID, event.PlayerJoined, g)
			return nil
		}
		if err := canJoin(g, index); err != nil {
			log.Infof("game %s: player %s join failed, %v\n", gameID, playerID, err)
			e.emitter.Emit(gameID, event.PlayerJoinFailed)
			return err
		}
		return e.addPlayer(g, playerID)
	})
}

func canJoin(g *game.Game, index int) error {
	switch {
	case index >= 0:
		return consts.ErrorsPlayerAlreadyJoined
	case g.Status != game.StatusWaiting:
		return consts.ErrorsJoinFailForRoomRunning
	case g.Full():
		return consts.ErrorsRoomPlayersIsFull
	}
	return nil
}

func (e *Engine) addPlayer(g *game.Game, playerID string) error {
	playerData, err := e.players.GetPlayerData(playerID)
	if err != nil {
		e.emitter.Emit(g.ID, event.PlayerJoinFailed)
		return err
	}
	g.Players = append(g.Players, game.NewPlayer(playerID, playerData.Name))
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	log.Infof("game %s: %s joined, %d/%d players\n", g.ID, playerData.Name, len(g.Players), g.MaxPlayers)
	e.emitter.Emit(g.ID, event.PlayerJoined, g)
	return nil
}

func (e *Engine) StartObservingGame(gameID string) error {
	g, err := e.store.Get(gameID)
	if err != nil {
		return err
	}
	e.emitter.Emit(gameID, event.StartedObservingGame, g)
	return nil
}

func (e *Engine) ToggleReady(playerID, gameID string) error {
	return e.withGame(gameID, func(g *game.Game) error {
		if g.Status != game.StatusWaiting {
			return consts.ErrorsGameStarted
		}
		index := g.PlayerIndex(playerID)
		if index < 0 {
			return fmt.Errorf("player %s in game %s: %w", playerID, gameID, consts.ErrorsPlayerNotFound)
		}
		g.Players[index].Ready = !g.Players[index].Ready
		if err := e.store.Set(gameID, g); err != nil {
			return err
		}
		if g.AllReady() && len(g.Players) >= e.options.MinPlayers {
			return e.startGame(g)
		}
		return nil
	})
}

func (e *Engine) BuyCard(playerID, gameID string) error {
	return e.withGame(gameID, func(g *game.Game) error {
		current, err := currentPlayer(g, playerID)
		if err != nil {
			return err
		}
		if g.AvailableCards.Size() == 0 {
			log.Info(msg.Message.PlayerPassed(current.Name))
			return e.nextTurn(g)
		}
		drawCards(g, current, 1)
		current.MarkPlayableCards(g.UsedCards, g.CurrentGameColor)
		return e.store.Set(gameID, g)
	})
}

// PutCard plays cardID from the current player's hand. A wild card takes an
// optional picked color.
func (e *Engine) PutCard(playerID, cardID, gameID string, pickedColor ...color.Color) error {
	return e.withGame(gameID, func(g *game.Game) error {
		current, err := currentPlayer(g, playerID)
		if err != nil {
			return err
		}
		return e.putCard(g, current, cardID, pickedColor...)
	})
}

func (e *Engine) putCard(g *game.Game, current *game.Player, cardID string, pickedColor ...color.Color) error {
	playedCard, ok := current.Card(cardID)
	if !ok {
		return fmt.Errorf("card %s: %w", cardID, consts.ErrorsCardNotInHand)
	}
	top, hasTop := g.UsedCards.Top()
	if !game.Playable(playedCard, top, hasTop, g.CurrentGameColor) {
		return fmt.Errorf("card %s: %w", playedCard.Name, consts.ErrorsCardNotPlayable)
	}
	gameColor := playedCard.Color
	if playedCard.Wild() && len(pickedColor) > 0 && pickedColor[0] != "" {
		if !pickedColor[0].Pickable() {
			return fmt.Errorf("color %s: %w", pickedColor[0], consts.ErrorsInvalidColor)
		}
		gameColor = pickedColor[0]
	}

	playedCard, _ = current.RemoveCard(cardID)
	playedCard.CanBeUsed = false
	current.UsedCards = append([]string{playedCard.ID}, current.UsedCards...)
	g.UsedCards = g.UsedCards.Push(playedCard)
	g.CurrentGameColor = gameColor
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	log.Info(msg.Message.PlayerPlayedCard(current.Name, playedCard))
	if playedCard.Wild() && gameColor != color.Wild {
		log.Info(msg.Message.PlayerPickedColor(current.Name, gameColor))
	}

	if err := e.applyCardEffect(g, playedCard); err != nil {
		return err
	}
	if err := e.store.Set(g.ID, g); err != nil {
		return err
	}
	return e.nextTurn(g)
}

// drawCards moves up to amount cards from the draw pile into target's hand.
func drawCards(g *game.Game, target *game.Player, amount int) []card.Card {
	drawn, rest := g.AvailableCards.Draw(amount)
	target.AddCards(drawn)
	g.AvailableCards = rest
	if len(drawn) > 0 {
		log.Info(msg.Message.PlayerDrewCards(target.Name, drawn))
	}
	return drawn
}

// PurgePlayer disconnects playerID from every room it sits in.
func (e *Engine) PurgePlayer(playerID string) {
	for _, snapshot := range e.store.List() {
		if !snapshot.HasPlayer(playerID) {
			continue
		}
		err := e.withGame(snapshot.ID, func(g *game.Game) error {
			if !g.HasPlayer(playerID) {
				return nil
			}
			return e.disconnectPlayer(g, playerID)
		})
		if err != nil {
			log.Errorf("game %s: disconnect %s failed, %v\n", snapshot.ID, playerID, err)
		}
	}
}

func (e *Engine) disconnectPlayer(g *game.Game, playerID string) error {
	switch g.Status {
	case game.StatusWaiting:
		players := make([]game.Player, 0, len(g.Players))
		for _, seated := range g.Players {
			if seated.ID != playerID {
				players = append(players, seated)
			}
		}
		g.Players = players
		log.Infof("game %s: %s left the room\n", g.ID, playerID)
	case game.StatusPlaying:
		g.Players[g.PlayerIndex(playerID)].Status = game.PlayerOffline
		log.Infof("game %s: %s lost connection\n", g.ID, playerID)
	default:
		return nil
	}
	return e.store.Set(g.ID, g)
}

// SkipTurn ends the given round of a game on behalf of its current player.
// Calls for a round that is already over are ignored.
func (e *Engine) SkipTurn(gameID string, round int) error {
	return e.withGame(gameID, func(g *game.Game) error {
		if g.Status != game.StatusPlaying || g.Round != round {
			return nil
		}
		current := g.CurrentPlayer()
		log.Info(msg.Message.PlayerTimedOut(current.Name))
		if e.options.Autoplay == nil {
			return e.nextTurn(g)
		}
		return e.autoplay(g, current)
	})
}

// autoplay plays the current turn with the configured strategy: put a card
// if one fits, otherwise draw once and put the drawn card if it fits.
func (e *Engine) autoplay(g *game.Game, current *game.Player) error {
	strategy := e.options.Autoplay
	playableCards := current.PlayableCards()
	if len(playableCards) == 0 {
		drawn := drawCards(g, current, 1)
		if len(drawn) == 0 {
			log.Info(msg.Message.PlayerPassed(current.Name))
			return e.nextTurn(g)
		}
		current.MarkPlayableCards(g.UsedCards, g.CurrentGameColor)
		if !current.HandCards[0].CanBeUsed {
			return e.nextTurn(g)
		}
		log.Info(msg.Message.PlayerDrewAndPlayedCard(current.Name, current.HandCards[0]))
		playableCards = current.HandCards[:1]
	}
	chosen := strategy.Play(playableCards, current.HandCards)
	return e.putCard(g, current, chosen.ID, strategy.PickColor(current.HandCards))
}

func (e *Engine) skipExpiredTurn(gameID string, round int) {
	if err := e.SkipTurn(gameID, round); err != nil {
		log.Errorf("game %s: skip round %d failed, %v\n", gameID, round, err)
	}
}

func (e *Engine) ListGames() []*game.Game {
	return e.store.List()
}

func (e *Engine) GetGame(gameID string) (*game.Game, error) {
	return e.store.Get(gameID)
}

// currentPlayer returns the acting player if it is playerID.
func currentPlayer(g *game.Game, playerID string) (*game.Player, error) {
	switch g.Status {
	case game.StatusWaiting:
		return nil, consts.ErrorsGameNotPlaying
	case game.StatusEnded:
		return nil, consts.ErrorsGameEnded
	}
	if !g.HasPlayer(playerID) {
		return nil, fmt.Errorf("player %s in game %s: %w", playerID, g.ID, consts.ErrorsPlayerNotFound)
	}
	current := g.CurrentPlayer()
	if current.ID != playerID {
		return nil, consts.ErrorsNotYourTurn
	}
	return current, nil
}
