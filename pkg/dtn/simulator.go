package dtn

import (
	"iter"

	"github.com/nikitakosatka/dtnsim/pkg/clock"
	"github.com/nikitakosatka/dtnsim/pkg/contact"
)

// Simulator drives one run of the contact-based relay engine.
// It owns its nodes and messages exclusively and is not safe for
// concurrent use.
type Simulator struct {
	config *Config
	clock  *clock.Clock
	relay  *RelayEngine

	nodes     []Node
	positions []int
	store     *MessageStore

	counters counters
	started  bool
}

// NewSimulator validates the initial state and returns a simulator ready to run.
// Precondition violations are reported here, before any tick executes.
func NewSimulator(nodes []Node, messages []Message, opts ...Option) (*Simulator, error) {
	config := NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	index, err := indexNodes(nodes)
	if err != nil {
		return nil, err
	}

	store, err := NewMessageStore(messages, index)
	if err != nil {
		return nil, err
	}

	sim := &Simulator{
		config:    config,
		clock:     clock.New(config.Ticks),
		relay:     NewRelayEngine(config.Policy),
		nodes:     append([]Node(nil), nodes...),
		positions: make([]int, len(nodes)),
		store:     store,
	}

	return sim, nil
}

// Run returns the tick sequence. Each tick is computed when the consumer
// pulls it: mobility, then contact detection, then relay. The sequence
// always spans the full tick budget. A simulator runs once; later calls
// yield nothing.
func (s *Simulator) Run() iter.Seq[TickEvent] {
	return func(yield func(TickEvent) bool) {
		if s.started {
			return
		}
		s.started = true

		for {
			tick, ok := s.clock.Next()
			if !ok {
				return
			}
			if !yield(s.step(tick)) {
				return
			}
		}
	}
}

// RunAll runs every remaining tick and returns the events.
func (s *Simulator) RunAll() []TickEvent {
	events := make([]TickEvent, 0, s.clock.Remaining())
	for ev := range s.Run() {
		events = append(events, ev)
	}
	return events
}

func (s *Simulator) step(tick int) TickEvent {
	for i, n := range s.nodes {
		s.positions[i] = n.Position
	}
	s.config.Mobility.Advance(s.positions, s.config.Rand)
	for i := range s.nodes {
		s.nodes[i].Position = s.positions[i]
	}

	pairs := s.config.Contact.Detect(s.positions)
	relays := s.relay.RelayTick(tick, s.nodes, contact.NewSet(pairs), s.store)

	ev := TickEvent{
		Tick:      tick,
		Relays:    relays,
		Positions: s.Nodes(),
		Contacts:  make([]Contact, len(pairs)),
	}
	for i, p := range pairs {
		ev.Contacts[i] = Contact{A: s.nodes[p.A].Name, B: s.nodes[p.B].Name}
	}

	s.counters.observe(ev)
	return ev
}

// Nodes returns a snapshot of the nodes in insertion order.
func (s *Simulator) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Messages returns a snapshot of the messages in insertion order.
func (s *Simulator) Messages() []Message {
	return s.store.Messages()
}

// Message returns a snapshot of the message with the given ID.
func (s *Simulator) Message(id int) (Message, bool) {
	return s.store.Get(id)
}

// Policy returns the relay policy in effect.
func (s *Simulator) Policy() Policy {
	return s.relay.Policy()
}

// Elapsed returns the number of ticks executed.
func (s *Simulator) Elapsed() int {
	return s.clock.Current()
}

// TotalTicks returns the tick budget.
func (s *Simulator) TotalTicks() int {
	return s.clock.Total()
}

// Stats summarizes the ticks executed so far.
func (s *Simulator) Stats() Stats {
	return computeStats(s.clock.Current(), s.store, s.counters)
}
