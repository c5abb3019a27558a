package locomotion

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Comfort defaults.
const (
	DefaultThresholdAngle = 30.0 // degrees of head tilt before walking starts
	DefaultOrientLimit    = 0.25 // |forward.z| below this faces a side wall
	DefaultStride         = 0.25
	DefaultSpeed          = 0.03 // per-frame stride growth
	DefaultCompensation   = 0.7
)

// Room bounds along the movement axis.
const (
	DefaultBoundAhead  = -0.9
	DefaultBoundBehind = 5.5
)

var ErrInvalidConfig = errors.New("invalid locomotion config")

// Config holds the tunable comfort parameters of a Controller.
type Config struct {
	ThresholdAngle float64 `yaml:"threshold_angle"`
	OrientLimit    float64 `yaml:"orient_limit"`
	Stride         float64 `yaml:"stride"`
	Speed          float64 `yaml:"speed"`
	Compensation   float64 `yaml:"compensation"`
	BoundAhead     float64 `yaml:"bound_ahead"`
	BoundBehind    float64 `yaml:"bound_behind"`
}

func DefaultConfig() Config {
	return Config{
		ThresholdAngle: DefaultThresholdAngle,
		OrientLimit:    DefaultOrientLimit,
		Stride:         DefaultStride,
		Speed:          DefaultSpeed,
		Compensation:   DefaultCompensation,
		BoundAhead:     DefaultBoundAhead,
		BoundBehind:    DefaultBoundBehind,
	}
}

// Validate reports the first parameter that would make the controller
// misbehave.
func (c Config) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"threshold angle", c.ThresholdAngle},
		{"orient limit", c.OrientLimit},
		{"stride", c.Stride},
		{"speed", c.Speed},
		{"compensation", c.Compensation},
		{"bound ahead", c.BoundAhead},
		{"bound behind", c.BoundBehind},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v is not finite", ErrInvalidConfig, f.name, f.v)
		}
	}
	switch {
	case c.ThresholdAngle <= 0 || c.ThresholdAngle >= 90:
		return fmt.Errorf("%w: threshold angle %v outside (0, 90)", ErrInvalidConfig, c.ThresholdAngle)
	case c.OrientLimit <= 0 || c.OrientLimit >= 1:
		return fmt.Errorf("%w: orient limit %v outside (0, 1)", ErrInvalidConfig, c.OrientLimit)
	case c.Stride <= 0:
		return fmt.Errorf("%w: stride %v must be positive", ErrInvalidConfig, c.Stride)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed %v must not be negative", ErrInvalidConfig, c.Speed)
	case c.Compensation <= 0:
		return fmt.Errorf("%w: compensation %v must be positive", ErrInvalidConfig, c.Compensation)
	case c.BoundAhead > 0 || c.BoundBehind < 0:
		return fmt.Errorf("%w: bounds [%v, %v] must contain the origin", ErrInvalidConfig, c.BoundAhead, c.BoundBehind)
	case c.BoundAhead >= c.BoundBehind:
		return fmt.Errorf("%w: bound ahead %v not below bound behind %v", ErrInvalidConfig, c.BoundAhead, c.BoundBehind)
	}
	return nil
}

// LoadConfig reads a YAML comfort profile. Keys missing from the document
// keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode comfort profile: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
