package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the checker settings that can live in a file. Command-line flags
// override whatever is loaded here.
type Config struct {
	Format      string        `yaml:"format"`
	Explain     bool          `yaml:"explain"`
	Summary     bool          `yaml:"summary"`
	Workers     int           `yaml:"workers"`
	DenyOverlap bool          `yaml:"deny_overlap"`
	Debounce    time.Duration `yaml:"debounce"`
}

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

func Default() *Config {
	return &Config{
		Format:   FormatText,
		Workers:  1,
		Debounce: 100 * time.Millisecond,
	}
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer file.Close()

	cfg, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "config %v", path)
	}
	return cfg, nil
}

// Read decodes a config on top of the defaults. Unknown keys are rejected.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Debounce < 0 {
		return errors.Errorf("negative debounce %v", c.Debounce)
	}
	return nil
}
