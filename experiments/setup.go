package experiments

import (
	"fmt"
	"os"

	"connect4/experiments/metrics"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"

	"gopkg.in/yaml.v3"
)

const (
	KindSearch = "search"
	KindGreedy = "greedy"
	KindRandom = "random"
)

// Setup is the YAML description of an experiment.
type Setup struct {
	Name     string                `yaml:"name"`
	Output   string                `yaml:"output"`   // Root directory of the CSV files, none are written if empty
	NumGames int                   `yaml:"games"`    // Per matchup
	Openings int                   `yaml:"openings"` // Random plies played before the agents take over
	Seed     uint64                `yaml:"seed"`     // Seed of the random openings
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"` // Pairs of AgentConfig.ID
}

// LoadSetup reads and validates a setup file.
func LoadSetup(path string) (*Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup: %w", err)
	}
	return ParseSetup(data)
}

// ParseSetup decodes a YAML setup. Omitted game and opening counts fall back
// to the meta defaults.
func ParseSetup(data []byte) (*Setup, error) {
	setup := Setup{
		NumGames: meta.NUM_GAMES,
		Openings: meta.OPENING_PLIES,
	}
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return nil, fmt.Errorf("failed to parse setup: %w", err)
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return &setup, nil
}

func (s *Setup) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("setup has no name")
	}
	if s.NumGames <= 0 {
		return fmt.Errorf("setup %s: games must be positive, got %d", s.Name, s.NumGames)
	}
	if s.Openings < 0 {
		return fmt.Errorf("setup %s: openings must not be negative", s.Name)
	}

	ids := make(map[int]bool, len(s.Agents))
	for _, config := range s.Agents {
		if ids[config.ID] {
			return fmt.Errorf("setup %s: duplicate agent id %d", s.Name, config.ID)
		}
		ids[config.ID] = true
		switch config.Kind {
		case KindSearch, KindGreedy, KindRandom:
		default:
			return fmt.Errorf("setup %s: agent %d has unknown kind %q", s.Name, config.ID, config.Kind)
		}
	}

	if len(s.Matchups) == 0 {
		return fmt.Errorf("setup %s: no matchups", s.Name)
	}
	for _, matchup := range s.Matchups {
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("setup %s: matchup references unknown agent %d", s.Name, id)
			}
		}
	}
	return nil
}

func (s *Setup) agentConfig(id int) metrics.AgentConfig {
	for _, config := range s.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}

// NewAgent builds the agent described by the config.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case KindSearch:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithMaxDepth(config.Depth))
		}
		if !config.UsesPruning() {
			options = append(options, searcher.WithoutPruning())
		}
		return agent.NewSearchAgent(searcher.New(options...)), nil
	case KindGreedy:
		return agent.NewGreedyAgent(), nil
	case KindRandom:
		return agent.NewRandomAgent(config.Seed), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
