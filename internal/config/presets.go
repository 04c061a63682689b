package config

import "sort"

var Presets = map[string]*Config{
	"earth": {
		Dt: 0.1, MaxTime: 200, Policy: "descent",
		Gravity: 9.81, SeaLevelRho: 1.225,
		WindMax: 5, GustSigma: 0.5, PadHalfWidth: 50,
		InitState: InitStateConfig{Fuel: 15000},
	},
	"moon": {
		Dt: 0.1, MaxTime: 200, Policy: "descent",
		Gravity: 1.62, SeaLevelRho: 0,
		WindMax: 0, GustSigma: 0, PadHalfWidth: 50,
		InitState: InitStateConfig{Fuel: 15000},
	},
	"windy": {
		Dt: 0.1, MaxTime: 200, Policy: "descent",
		Gravity: 9.81, SeaLevelRho: 1.225,
		WindMax: 15, GustSigma: 2.0, PadHalfWidth: 50,
		InitState: InitStateConfig{Fuel: 15000},
	},
	"vacuum": {
		Dt: 0.1, MaxTime: 200, Policy: "descent",
		Gravity: 9.81, SeaLevelRho: 0,
		WindMax: 0, GustSigma: 0, PadHalfWidth: 50,
		InitState: InitStateConfig{Fuel: 15000},
	},
	"hop": {
		Dt: 0.05, MaxTime: 120, Policy: "descent",
		Gravity: 9.81, SeaLevelRho: 1.225,
		WindMax: 3, GustSigma: 0.3, PadHalfWidth: 20,
		InitState: InitStateConfig{Fuel: 6000},
	},
}

func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *base
	cfg.Reward = DefaultConfig().Reward
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
