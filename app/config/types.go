package config

// Source describes one entry of the feed source registry.
type Source struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Group string `yaml:"group"`
}

// Registry is the on-disk shape of the source registry file.
type Registry struct {
	Sources []Source `yaml:"sources"`
}
