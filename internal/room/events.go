package room

type EventType int

const (
	EventStep           EventType = iota // travelled StepSoundDistance
	EventBoundary                        // walked into an end wall
	EventSampleRejected                  // head sample was not finite
	EventTargetPicked
)

type Event struct {
	Type     EventType
	Position float64 // eye offset when the event fired
	Target   int     // index into Session.Targets, EventTargetPicked only
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
