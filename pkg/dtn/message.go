package dtn

import "fmt"

// Message is a bundle travelling from Source to Destination.
// Source and Destination refer to nodes by name.
type Message struct {
	ID          int    `json:"id" yaml:"id"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Payload     string `json:"payload" yaml:"payload"`

	// Delivered flips to true once and never reverts.
	Delivered bool `json:"delivered" yaml:"-"`

	// DeliveredAt is the tick of delivery, or -1 while in flight.
	DeliveredAt int `json:"deliveredAt" yaml:"-"`

	// Hops is the number of passes on the path that reached Destination.
	Hops int `json:"hops" yaml:"-"`
}

// NewMessage creates an undelivered message.
func NewMessage(id int, source, destination, payload string) Message {
	return Message{
		ID:          id,
		Source:      source,
		Destination: destination,
		Payload:     payload,
		DeliveredAt: -1,
	}
}

// MessageStore holds the in-flight messages of one run in insertion order,
// along with which nodes carry a copy of each message.
type MessageStore struct {
	messages []*Message
	byID     map[int]*Message

	// copies maps a message ID to the nodes holding it and the hop count
	// at which each of them received it.
	copies map[int]map[int]int
}

// NewMessageStore validates messages against the node index and takes
// ownership of copies of them.
func NewMessageStore(messages []Message, nodes map[string]int) (*MessageStore, error) {
	s := &MessageStore{
		messages: make([]*Message, 0, len(messages)),
		byID:     make(map[int]*Message, len(messages)),
		copies:   make(map[int]map[int]int, len(messages)),
	}

	for _, m := range messages {
		if _, exists := s.byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateMessage, m.ID)
		}
		src, ok := nodes[m.Source]
		if !ok {
			return nil, fmt.Errorf("%w: message %d source %q", ErrUnknownNode, m.ID, m.Source)
		}
		if _, ok := nodes[m.Destination]; !ok {
			return nil, fmt.Errorf("%w: message %d destination %q", ErrUnknownNode, m.ID, m.Destination)
		}

		msg := m
		if !msg.Delivered {
			msg.DeliveredAt = -1
			msg.Hops = 0
		}
		s.messages = append(s.messages, &msg)
		s.byID[msg.ID] = &msg
		s.copies[msg.ID] = map[int]int{src: 0}
	}

	return s, nil
}

// Len returns the number of messages.
func (s *MessageStore) Len() int {
	return len(s.messages)
}

// Get returns a copy of the message with the given ID.
func (s *MessageStore) Get(id int) (Message, bool) {
	m, ok := s.byID[id]
	if !ok {
		return Message{}, false
	}
	return *m, true
}

// Messages returns copies of all messages in insertion order.
func (s *MessageStore) Messages() []Message {
	out := make([]Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = *m
	}
	return out
}

// Holds reports whether the node at index node carries a copy of message id.
func (s *MessageStore) Holds(id, node int) bool {
	_, ok := s.copies[id][node]
	return ok
}

// Carriers returns how many nodes hold a copy of message id.
func (s *MessageStore) Carriers(id int) int {
	return len(s.copies[id])
}

// DeliveredCount returns how many messages have reached their destination.
func (s *MessageStore) DeliveredCount() int {
	n := 0
	for _, m := range s.messages {
		if m.Delivered {
			n++
		}
	}
	return n
}

// hand records that to received message id from the node at index from.
func (s *MessageStore) hand(id, from, to int) int {
	hops := s.copies[id][from] + 1
	if _, ok := s.copies[id][to]; !ok {
		s.copies[id][to] = hops
	}
	return hops
}

// markDelivered sets the delivery fields once.
func (m *Message) markDelivered(tick, hops int) bool {
	if m.Delivered {
		return false
	}
	m.Delivered = true
	m.DeliveredAt = tick
	m.Hops = hops
	return true
}
