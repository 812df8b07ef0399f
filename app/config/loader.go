package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yml
var defaultRegistry []byte

// Load reads the source registry from the given YAML file. An empty path
// falls back to the built-in registry embedded at build time.
func Load(path string) ([]Source, error) {
	data := defaultRegistry
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if err := validate(registry.Sources); err != nil {
		return nil, err
	}

	return registry.Sources, nil
}

func validate(sources []Source) error {
	if len(sources) == 0 {
		return fmt.Errorf("source registry is empty")
	}

	seen := make(map[string]bool, len(sources))
	for i, source := range sources {
		if source.Name == "" {
			return fmt.Errorf("source at index %d has no name", i)
		}
		if source.URL == "" {
			return fmt.Errorf("source %q has no url", source.Name)
		}
		if seen[source.Name] {
			return fmt.Errorf("duplicate source name: %q", source.Name)
		}
		seen[source.Name] = true
	}

	return nil
}
