package event

// Emit pushes a typed event stamped with the tick number
func Emit(q *EventQueue, et EventType, payload any, tick int64) {
	q.Push(GameEvent{
		Type:    et,
		Payload: payload,
		Tick:    tick,
	})
}

// Sink consumes drained events outside the simulation
type Sink interface {
	Handle(ev GameEvent)
}

// Fanout delivers every event to each sink in order
type Fanout []Sink

func (f Fanout) Handle(ev GameEvent) {
	for _, s := range f {
		s.Handle(ev)
	}
}
