package dtn

// EventType distinguishes relay events.
type EventType string

const (
	// EventPass means a message was handed from one node to another in contact.
	EventPass EventType = "pass"

	// EventDelivered means a message reached its destination.
	EventDelivered EventType = "delivered"
)

// RelayEvent records one relay decision taken during a tick.
type RelayEvent struct {
	Type      EventType `json:"type"`
	MessageID int       `json:"messageId"`

	// From and To are set on pass events.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// At is set on delivered events.
	At string `json:"at,omitempty"`
}

// Contact is a pair of node names in contact during a tick.
type Contact struct {
	A string `json:"a"`
	B string `json:"b"`
}

// TickEvent is everything observable about one tick.
type TickEvent struct {
	Tick   int          `json:"tick"`
	Relays []RelayEvent `json:"relays"`

	// Positions is a snapshot of every node after movement.
	Positions []Node `json:"positions"`

	// Contacts lists the pairs in contact this tick, in insertion order.
	Contacts []Contact `json:"contacts"`
}

// Deliveries returns the delivered events of the tick.
func (e TickEvent) Deliveries() []RelayEvent {
	var out []RelayEvent
	for _, r := range e.Relays {
		if r.Type == EventDelivered {
			out = append(out, r)
		}
	}
	return out
}
