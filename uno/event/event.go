package event

type Kind string

const (
	GameCreated          Kind = "GameCreated"
	GameStateChanged     Kind = "GameStateChanged"
	GameStarted          Kind = "GameStarted"
	GameEnded            Kind = "GameEnded"
	PlayerJoined         Kind = "PlayerJoined"
	PlayerJoinFailed     Kind = "PlayerJoinFailed"
	PlayerWon            Kind = "PlayerWon"
	PlayerUno            Kind = "PlayerUno"
	StartedObservingGame Kind = "StartedObservingGame"
)

type Event struct {
	GameID  string      `json:"gameId"`
	Kind    Kind        `json:"kind"`
	Payload interface{} `json:"data,omitempty"`
}

type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Publisher is the write side of an Emitter.
type Publisher interface {
	Emit(gameID string, kind Kind, payload ...interface{})
}
