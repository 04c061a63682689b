package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rocketsim/internal/env"
	"github.com/san-kum/rocketsim/internal/rocket"
)

const (
	DefaultDt      = 0.1
	DefaultMaxTime = 200.0
	DefaultPolicy  = "descent"
	DefaultWindMax = 5.0
	DefaultGust    = 0.5
	DefaultPad     = 50.0
)

// Config is the YAML-facing run configuration. It exposes the knobs a
// user tunes between runs; the remaining physical constants stay at
// their rocket.DefaultParams values.
type Config struct {
	Dt           float64 `yaml:"dt"`
	MaxTime      float64 `yaml:"max_time"`
	Seed         int64   `yaml:"seed"`
	Policy       string  `yaml:"policy"`
	Gravity      float64 `yaml:"gravity"`
	SeaLevelRho  float64 `yaml:"sea_level_rho"`
	WindMax      float64 `yaml:"wind_max"`
	GustSigma    float64 `yaml:"gust_sigma"`
	PadHalfWidth float64 `yaml:"pad_half_width"`

	InitState InitStateConfig  `yaml:"init_state"`
	Reward    env.RewardConfig `yaml:"reward"`
}

type InitStateConfig struct {
	Altitude float64 `yaml:"altitude"`
	X        float64 `yaml:"x"`
	Fuel     float64 `yaml:"fuel"`
}

func DefaultConfig() *Config {
	p := rocket.DefaultParams()
	return &Config{
		Dt:           DefaultDt,
		MaxTime:      DefaultMaxTime,
		Seed:         1,
		Policy:       DefaultPolicy,
		Gravity:      p.Gravity,
		SeaLevelRho:  p.SeaLevelRho,
		WindMax:      DefaultWindMax,
		GustSigma:    DefaultGust,
		PadHalfWidth: DefaultPad,
		InitState: InitStateConfig{
			Fuel: p.FuelCapacity,
		},
		Reward: env.DefaultRewardConfig(),
	}
}

// Load reads a YAML config over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// EnvConfig translates the file config into a validated env.Config.
func (c *Config) EnvConfig() (env.Config, error) {
	ec := env.DefaultConfig()
	ec.Params.Gravity = c.Gravity
	ec.Params.SeaLevelRho = c.SeaLevelRho
	ec.Dt = c.Dt
	ec.MaxEpisodeTime = c.MaxTime
	ec.Seed = c.Seed
	ec.WindMax = c.WindMax
	ec.GustSigma = c.GustSigma
	ec.PadHalfWidth = c.PadHalfWidth
	ec.StartAltitude = c.InitState.Altitude
	ec.StartX = c.InitState.X
	ec.StartFuel = c.InitState.Fuel
	ec.Reward = c.Reward
	if err := ec.Validate(); err != nil {
		return env.Config{}, err
	}
	return ec, nil
}
