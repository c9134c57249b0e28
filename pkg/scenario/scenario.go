// Package scenario loads simulation setups from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nikitakosatka/dtnsim/pkg/clock"
	"github.com/nikitakosatka/dtnsim/pkg/contact"
	"github.com/nikitakosatka/dtnsim/pkg/dtn"
	"github.com/nikitakosatka/dtnsim/pkg/mobility"
)

// Scenario describes the initial state and parameters of one run.
type Scenario struct {
	Name         string        `yaml:"name"`
	Ticks        int           `yaml:"ticks"`
	Seed         int64         `yaml:"seed"`
	ContactRange int           `yaml:"contact_range"`
	MaxStep      *int          `yaml:"max_step"`
	Policy       string        `yaml:"policy"`
	Nodes        []dtn.Node    `yaml:"nodes"`
	Messages     []dtn.Message `yaml:"messages"`
}

// Default returns the rescue scenario: two rescuers and a command center,
// with one report travelling from the first rescuer to the command center.
func Default() *Scenario {
	step := mobility.DefaultMaxStep
	return &Scenario{
		Name:         "rescue",
		Ticks:        clock.DefaultTicks,
		ContactRange: contact.DefaultRange,
		MaxStep:      &step,
		Policy:       string(dtn.SourceOnly),
		Nodes: []dtn.Node{
			dtn.NewNode("RescuerA", 0),
			dtn.NewNode("RescuerB", 40),
			dtn.NewNode("CommandCenter", 100),
		},
		Messages: []dtn.Message{
			dtn.NewMessage(1, "RescuerA", "CommandCenter", "Found 3 survivors"),
		},
	}
}

// Parse decodes a scenario and fills unset parameters with defaults.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Ticks == 0 {
		s.Ticks = clock.DefaultTicks
	}
	if s.ContactRange == 0 {
		s.ContactRange = contact.DefaultRange
	}
	if s.MaxStep == nil {
		step := mobility.DefaultMaxStep
		s.MaxStep = &step
	}
	if s.Policy == "" {
		s.Policy = string(dtn.SourceOnly)
	}
	for i := range s.Messages {
		s.Messages[i].DeliveredAt = -1
	}
}

// Validate checks the parameters that do not depend on node state.
// Node and message consistency is checked when the simulator is built.
func (s *Scenario) Validate() error {
	var errs []error
	if s.Ticks < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", dtn.ErrNegativeTicks, s.Ticks))
	}
	if s.ContactRange < 0 {
		errs = append(errs, fmt.Errorf("%w: contact_range %d", dtn.ErrInvalidConfig, s.ContactRange))
	}
	if s.MaxStep != nil && *s.MaxStep < 0 {
		errs = append(errs, fmt.Errorf("%w: max_step %d", dtn.ErrInvalidConfig, *s.MaxStep))
	}
	if _, err := dtn.ParsePolicy(s.Policy); err != nil {
		errs = append(errs, err)
	}
	if len(s.Nodes) == 0 {
		errs = append(errs, dtn.ErrNoNodes)
	}
	return errors.Join(errs...)
}

// Options converts the scenario parameters into simulator options.
func (s *Scenario) Options() ([]dtn.Option, error) {
	policy, err := dtn.ParsePolicy(s.Policy)
	if err != nil {
		return nil, err
	}
	step := mobility.DefaultMaxStep
	if s.MaxStep != nil {
		step = *s.MaxStep
	}
	return []dtn.Option{
		dtn.WithTicks(s.Ticks),
		dtn.WithContactRange(s.ContactRange),
		dtn.WithMobility(mobility.NewRandomWalk(step)),
		dtn.WithPolicy(policy),
		dtn.WithSeed(s.Seed),
	}, nil
}

// Simulator builds a simulator for the scenario. Extra options are applied last.
func (s *Scenario) Simulator(extra ...dtn.Option) (*dtn.Simulator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	return dtn.NewSimulator(s.Nodes, s.Messages, append(opts, extra...)...)
}
