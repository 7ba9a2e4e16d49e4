package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortlab/internal/compare"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultPattern   = "random"
	DefaultTheme     = "classic"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Size      int             `yaml:"size"`
	Speed     int             `yaml:"speed"`
	Algorithm string          `yaml:"algorithm"`
	Pattern   string          `yaml:"pattern"`
	Seed      int64           `yaml:"seed"`
	Theme     string          `yaml:"theme"`
	Compare   CompareConfig   `yaml:"compare"`
	Scoring   compare.Scoring `yaml:"scoring"`
}

type CompareConfig struct {
	Algorithms []string `yaml:"algorithms"`
	Size       int      `yaml:"size"`
}

func DefaultConfig() *Config {
	algs := make([]string, 0, 6)
	for _, a := range sorting.Algorithms() {
		algs = append(algs, a.String())
	}
	return &Config{
		Size:      experiment.DefaultSize,
		Speed:     experiment.DefaultSpeed,
		Algorithm: DefaultAlgorithm,
		Pattern:   DefaultPattern,
		Theme:     DefaultTheme,
		Compare: CompareConfig{
			Algorithms: algs,
			Size:       experiment.DefaultCompareSize,
		},
		Scoring: compare.DefaultScoring(),
	}
}

// Load decodes the file at path over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver is Load with base in place of the defaults, so a file only needs
// the keys it changes. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Compare.Algorithms = append([]string(nil), c.Compare.Algorithms...)
	return &cp
}

func (c *Config) Validate() error {
	var errs []error
	if c.Size < experiment.MinSize || c.Size > experiment.MaxSize {
		errs = append(errs, fmt.Errorf("size %d not in %d..%d", c.Size, experiment.MinSize, experiment.MaxSize))
	}
	if c.Speed < experiment.MinSpeed || c.Speed > experiment.MaxSpeed {
		errs = append(errs, fmt.Errorf("speed %d not in %d..%d", c.Speed, experiment.MinSpeed, experiment.MaxSpeed))
	}
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		errs = append(errs, err)
	}
	if _, err := experiment.ParsePattern(c.Pattern); err != nil {
		errs = append(errs, err)
	}
	if c.Compare.Size < experiment.MinCompareSize || c.Compare.Size > experiment.MaxCompareSize {
		errs = append(errs, fmt.Errorf("compare.size %d not in %d..%d", c.Compare.Size, experiment.MinCompareSize, experiment.MaxCompareSize))
	}
	for _, name := range c.Compare.Algorithms {
		if _, err := sorting.ParseAlgorithm(name); err != nil {
			errs = append(errs, fmt.Errorf("compare.algorithms: %w", err))
		}
	}

	w, th := c.Scoring.Weights, c.Scoring.Thresholds
	if w.Numerator <= 0 {
		errs = append(errs, fmt.Errorf("scoring.numerator must be positive"))
	}
	if w.Time < 0 || w.Comparison < 0 || w.Swap < 0 {
		errs = append(errs, fmt.Errorf("scoring weights must not be negative"))
	}
	if !(th.Excellent >= th.Good && th.Good >= th.Average) {
		errs = append(errs, fmt.Errorf("scoring thresholds must be descending (excellent >= good >= average)"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Settings converts c into session settings.
func (c *Config) Settings() (experiment.Settings, error) {
	alg, err := sorting.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return experiment.Settings{}, err
	}
	pattern, err := experiment.ParsePattern(c.Pattern)
	if err != nil {
		return experiment.Settings{}, err
	}
	return experiment.Settings{
		Size:        c.Size,
		Speed:       c.Speed,
		Algorithm:   alg,
		Pattern:     pattern,
		Seed:        c.Seed,
		CompareSize: c.Compare.Size,
		Scoring:     c.Scoring,
	}, nil
}

// CompareAlgorithms resolves the compare.algorithms list.
func (c *Config) CompareAlgorithms() ([]sorting.Algorithm, error) {
	out := make([]sorting.Algorithm, 0, len(c.Compare.Algorithms))
	for _, name := range c.Compare.Algorithms {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
