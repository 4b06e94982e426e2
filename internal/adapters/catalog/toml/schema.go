package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Maps    []mapSchema   `toml:"maps"`
	Agents  []agentSchema `toml:"agents"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type mapSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name,omitempty"`
}

type agentSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name,omitempty"`
	Role string `toml:"role"`
	Icon string `toml:"icon,omitempty"`
}
