package event

import (
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

type subscription struct {
	id       int64
	listener Listener
}

// Emitter delivers events to listeners on its own goroutine, in emit order.
// Emit never blocks on listeners.
type Emitter struct {
	mutex   sync.Mutex
	cond    *sync.Cond
	queue   []Event
	closed  bool
	done    chan struct{}
	nextID  int64
	rooms   map[string][]subscription
	globals []subscription
}

func NewEmitter() *Emitter {
	e := &Emitter{
		done:  make(chan struct{}),
		rooms: map[string][]subscription{},
	}
	e.cond = sync.NewCond(&e.mutex)
	async.Async(e.dispatch)
	return e
}

func (e *Emitter) Emit(gameID string, kind Kind, payload ...interface{}) {
	ev := Event{GameID: gameID, Kind: kind}
	if len(payload) > 0 {
		ev.Payload = payload[0]
	}
	e.mutex.Lock()
	if e.closed {
		e.mutex.Unlock()
		log.Infof("emitter closed, dropped %s for game %s\n", kind, gameID)
		return
	}
	e.queue = append(e.queue, ev)
	e.mutex.Unlock()
	e.cond.Signal()
}

// Subscribe registers listener for one room. The returned func removes it.
func (e *Emitter) Subscribe(gameID string, listener Listener) func() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.nextID++
	id := e.nextID
	e.rooms[gameID] = append(e.rooms[gameID], subscription{id: id, listener: listener})
	return func() {
		e.mutex.Lock()
		defer e.mutex.Unlock()
		e.rooms[gameID] = remove(e.rooms[gameID], id)
		if len(e.rooms[gameID]) == 0 {
			delete(e.rooms, gameID)
		}
	}
}

// SubscribeAll registers listener for every room.
func (e *Emitter) SubscribeAll(listener Listener) func() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.nextID++
	id := e.nextID
	e.globals = append(e.globals, subscription{id: id, listener: listener})
	return func() {
		e.mutex.Lock()
		defer e.mutex.Unlock()
		e.globals = remove(e.globals, id)
	}
}

// Close delivers what is already queued and stops the dispatcher.
func (e *Emitter) Close() {
	e.mutex.Lock()
	if e.closed {
		e.mutex.Unlock()
		<-e.done
		return
	}
	e.closed = true
	e.mutex.Unlock()
	e.cond.Broadcast()
	<-e.done
}

func (e *Emitter) dispatch() {
	defer close(e.done)
	for {
		e.mutex.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 && e.closed {
			e.mutex.Unlock()
			return
		}
		events := e.queue
		e.queue = nil
		e.mutex.Unlock()

		for _, ev := range events {
			e.deliver(ev)
		}
	}
}

func (e *Emitter) deliver(ev Event) {
	e.mutex.Lock()
	listeners := make([]Listener, 0, len(e.rooms[ev.GameID])+len(e.globals))
	for _, s := range e.rooms[ev.GameID] {
		listeners = append(listeners, s.listener)
	}
	for _, s := range e.globals {
		listeners = append(listeners, s.listener)
	}
	e.mutex.Unlock()

	for _, listener := range listeners {
		notify(listener, ev)
	}
}

func notify(listener Listener, ev Event) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("listener panic on %s for game %s: %v\n", ev.Kind, ev.GameID, err)
		}
	}()
	listener.OnEvent(ev)
}

func remove(subscriptions []subscription, id int64) []subscription {
	kept := make([]subscription, 0, len(subscriptions))
	for _, s := range subscriptions {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	return kept
}
