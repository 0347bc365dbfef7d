package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/altinukshini/fieldops/internal/page"
	"github.com/altinukshini/fieldops/internal/viewmode"
)

type Config struct {
	DataPath  string `yaml:"data"`
	StartPage string `yaml:"start_page"`
	LogFile   string `yaml:"log_file"`
	Verbose   bool   `yaml:"verbose"`
	// Views maps a page name to its initial view mode.
	Views map[string]string `yaml:"views"`
}

// Load reads a YAML config file. A missing path yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.StartPage != "" && c.StartPage != "overview" && !slices.Contains(page.Names, c.StartPage) {
		return fmt.Errorf("unknown start page %q", c.StartPage)
	}
	for name, mode := range c.Views {
		def, ok := page.DefinitionOf(name)
		if !ok {
			return fmt.Errorf("views: unknown page %q", name)
		}
		m, err := viewmode.Parse(mode)
		if err != nil {
			return fmt.Errorf("views: %s: %w", name, err)
		}
		if !def.Supports(m) {
			return fmt.Errorf("views: %s does not support %s view (want %s or %s)", name, m, def.Modes[0], def.Modes[1])
		}
	}
	return nil
}

// ViewMode returns the configured initial mode for a page.
func (c Config) ViewMode(name string) (viewmode.Mode, bool) {
	s, ok := c.Views[name]
	if !ok {
		return 0, false
	}
	m, err := viewmode.Parse(s)
	if err != nil {
		return 0, false
	}
	return m, true
}
