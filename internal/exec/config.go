package exec

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml.
type Config struct {
	TickMS            int        `yaml:"tick_ms"`            // 800 (by default)
	Cycles            int        `yaml:"cycles"`             // 15 (by default)
	CriticalPriority  int        `yaml:"critical_priority"`  // 2 (by default)
	OverloadThreshold float64    `yaml:"overload_threshold"` // 1.0 (by default)
	LoadLevels        []float64  `yaml:"load_levels"`
	Tasks             []TaskSpec `yaml:"tasks"`
}

// defaultConfig carries the reference roster: four tasks where the two most
// critical survive any overload.
func defaultConfig() Config {
	return Config{
		TickMS:            800,
		Cycles:            15,
		CriticalPriority:  2,
		OverloadThreshold: 1.0,
		LoadLevels:        []float64{0.6, 0.8, 1.0, 1.2, 1.5, 1.8, 2.0},
		Tasks: []TaskSpec{
			{Name: "landing_guidance", Priority: 1},
			{Name: "radar_tracking", Priority: 2},
			{Name: "telemetry", Priority: 3},
			{Name: "camera_recording", Priority: 4},
		},
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.TickMS <= 0 {
		cfg.TickMS = 800
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = 15
	}
	if cfg.CriticalPriority < MinPriority {
		cfg.CriticalPriority = 2
	}
	if cfg.OverloadThreshold <= 0 {
		cfg.OverloadThreshold = 1.0
	}
	if len(cfg.LoadLevels) == 0 {
		cfg.LoadLevels = defaultConfig().LoadLevels
	}
	if len(cfg.Tasks) == 0 {
		cfg.Tasks = defaultConfig().Tasks
	}

	return cfg
}
