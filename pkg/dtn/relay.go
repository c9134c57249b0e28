package dtn

import (
	"fmt"

	"github.com/nikitakosatka/dtnsim/pkg/contact"
)

// Policy decides which node may hand a message to a node it is in contact with.
type Policy string

const (
	// SourceOnly lets only a message's original source pass it on.
	// Intermediate receivers never forward, so a message travels at most
	// one hop. This matches the reference rescue scenario.
	SourceOnly Policy = "source-only"

	// Epidemic lets any node holding a copy pass it to a node without one.
	Epidemic Policy = "epidemic"
)

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case SourceOnly, "":
		return SourceOnly, nil
	case Epidemic:
		return Epidemic, nil
	default:
		return "", fmt.Errorf("%w: unknown relay policy %q", ErrInvalidConfig, name)
	}
}

// RelayEngine turns contacts into pass and delivery decisions.
type RelayEngine struct {
	policy Policy
}

// NewRelayEngine creates a relay engine with the given policy.
func NewRelayEngine(policy Policy) *RelayEngine {
	if policy == "" {
		policy = SourceOnly
	}
	return &RelayEngine{policy: policy}
}

// Policy returns the engine's relay policy.
func (r *RelayEngine) Policy() Policy {
	return r.policy
}

// RelayTick evaluates every ordered pair of nodes in contact, outer and inner
// loops in insertion order, against every undelivered message. It mutates
// the store and returns the resulting events in decision order.
func (r *RelayEngine) RelayTick(tick int, nodes []Node, contacts *contact.Set, store *MessageStore) []RelayEvent {
	events := make([]RelayEvent, 0)
	for i, n1 := range nodes {
		for j, n2 := range nodes {
			if !contacts.Has(i, j) {
				continue
			}
			for _, m := range store.messages {
				if m.Delivered || !r.eligible(m, i, j, n1, store) {
					continue
				}

				hops := store.hand(m.ID, i, j)
				events = append(events, RelayEvent{
					Type:      EventPass,
					MessageID: m.ID,
					From:      n1.Name,
					To:        n2.Name,
				})

				if n2.Name == m.Destination && m.markDelivered(tick, hops) {
					events = append(events, RelayEvent{
						Type:      EventDelivered,
						MessageID: m.ID,
						At:        n2.Name,
					})
				}
			}
		}
	}
	return events
}

func (r *RelayEngine) eligible(m *Message, from, to int, n1 Node, store *MessageStore) bool {
	switch r.policy {
	case Epidemic:
		return store.Holds(m.ID, from) && !store.Holds(m.ID, to)
	default:
		return m.Source == n1.Name
	}
}
