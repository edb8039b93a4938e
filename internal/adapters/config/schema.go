package config

// settingsFile is the structure of jsproj.yaml.
type settingsFile struct {
	// Debounce is a Go duration string such as "100ms".
	Debounce       string   `yaml:"debounce"`
	Ignore         []string `yaml:"ignore"`
	ProjectMarkers []string `yaml:"projectMarkers"`
	LogFormat      string   `yaml:"logFormat"`
}
