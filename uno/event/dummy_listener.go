package event

import "sync"

// DummyListener records every event it receives.
type DummyListener struct {
	sync.Mutex
	received []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{received: make([]Event, 0)}
}

func (l *DummyListener) OnEvent(e Event) {
	l.Lock()
	defer l.Unlock()
	l.received = append(l.received, e)
}

func (l *DummyListener) Received() []Event {
	l.Lock()
	defer l.Unlock()
	events := make([]Event, len(l.received))
	copy(events, l.received)
	return events
}

func (l *DummyListener) Kinds() []Kind {
	var kinds []Kind
	for _, e := range l.Received() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (l *DummyListener) Count(kind Kind) int {
	count := 0
	for _, e := range l.Received() {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

// Last returns the most recent event of kind.
func (l *DummyListener) Last(kind Kind) (Event, bool) {
	events := l.Received()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i], true
		}
	}
	return Event{}, false
}
