// Package config holds the daemon's runtime settings: a YAML file
// loader for startup and mutex-guarded accessors for the values that
// can change at runtime.
package config

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk daemon configuration.
type Settings struct {
	ListenAddr    string  `yaml:"listen_addr"`
	TickRate      int     `yaml:"tick_rate"`
	TimeStep      float64 `yaml:"time_step"`
	MonitorWindow int     `yaml:"monitor_window"`
}

// Default returns the built-in settings: 20 ticks per second on the
// standard 60Hz physics step.
func Default() Settings {
	return Settings{
		ListenAddr:    ":8750",
		TickRate:      20,
		TimeStep:      1.0 / 60.0,
		MonitorWindow: 120,
	}
}

// Load reads settings from a YAML file. A missing or unreadable file
// yields Default() without error; a malformed file is reported.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	return s, nil
}

type runtimeSettings struct {
	mu       sync.RWMutex
	tickRate int
}

var global = &runtimeSettings{tickRate: 20}

// GetTickRate returns the current tick rate in Hz.
func GetTickRate() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.tickRate
}

// SetTickRate sets the tick rate, clamped to a sane range.
func SetTickRate(rate int) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if rate < 1 {
		rate = 1
	}
	if rate > 240 {
		rate = 240
	}
	global.tickRate = rate
}
