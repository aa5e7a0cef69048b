package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the settings for a simulation run.
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	TickRate            time.Duration `json:"tick_rate"`
	AliveProbability    float64       `json:"alive_probability"`
	Seed                int64         `json:"seed"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AliveGlyph          string        `json:"alive_glyph"`
	DeadGlyph           string        `json:"dead_glyph"`
}

// DefaultConfig returns sensible defaults. Seed 0 means "derive a seed from
// the clock at startup".
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		TickRate:            150 * time.Millisecond,
		AliveProbability:    0.5,
		Seed:                0,
		StagnationThreshold: 5,
		AliveGlyph:          "X",
		DeadGlyph:           " ",
	}
}

// LoadConfig loads configuration from a JSON file, layered over the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so command-line
// flags override whatever the file provided.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.TickRate, "tick", c.TickRate, "delay between generations")
	fs.Float64Var(&c.AliveProbability, "p", c.AliveProbability, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = derive from clock)")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "stagnant generations before status flips")
}

// Validate reports the first invalid setting, if any.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("[Validate] invalid grid dimensions %dx%d: width and height must be positive", c.Width, c.Height)
	}
	if c.AliveProbability < 0 || c.AliveProbability > 1 {
		return errors.Errorf("[Validate] alive probability %v out of range [0,1]", c.AliveProbability)
	}
	if c.TickRate <= 0 {
		return errors.Errorf("[Validate] tick rate %v must be positive", c.TickRate)
	}
	return nil
}

// Glyphs returns the configured alive and dead glyphs, falling back to the
// defaults when a value is empty.
func (c Config) Glyphs() (alive, dead rune) {
	alive, dead = 'X', ' '
	if c.AliveGlyph != "" {
		alive = []rune(c.AliveGlyph)[0]
	}
	if c.DeadGlyph != "" {
		dead = []rune(c.DeadGlyph)[0]
	}
	return alive, dead
}
