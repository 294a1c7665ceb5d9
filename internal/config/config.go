package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrDuplicateMenuTarget is returned when two menu entries show the same view.
var ErrDuplicateMenuTarget = errors.New("duplicate menu target")

// MenuEntry is one sidebar entry and the view container it shows.
type MenuEntry struct {
	Label  string
	Target string
}

// Telemetry tunes the simulated plant feeds.
type Telemetry struct {
	ClockEvery       time.Duration
	WIPEvery         time.Duration
	AmbientMin       time.Duration
	AmbientMax       time.Duration
	ProductionChance float64
	Seed             uint64 // zero seeds from the clock
}

// Config captures floorboard's settings.
type Config struct {
	LogDir    string
	LogLevel  string
	Refresh   time.Duration
	Telemetry Telemetry
	Menu      []MenuEntry
}

const (
	defaultConfigPath       = "~/.config/floorboard/config.toml"
	defaultLogDir           = "~/.local/share/floorboard"
	defaultLogLevel         = "info"
	defaultRefresh          = time.Second
	defaultClockEvery       = time.Second
	defaultWIPEvery         = 4 * time.Second
	defaultAmbientMin       = 2 * time.Second
	defaultAmbientMax       = 3 * time.Second
	defaultProductionChance = 0.3
	logFileName             = "floorboard.log"
)

// DefaultMenu returns the stock sidebar.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{Label: "Dashboard", Target: "view-dashboard"},
		{Label: "Production Plans", Target: "view-plans"},
		{Label: "Process Status", Target: "view-process"},
		{Label: "System Log", Target: "view-logs"},
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogDir:   mustExpand(defaultLogDir),
		LogLevel: defaultLogLevel,
		Refresh:  defaultRefresh,
		Telemetry: Telemetry{
			ClockEvery:       defaultClockEvery,
			WIPEvery:         defaultWIPEvery,
			AmbientMin:       defaultAmbientMin,
			AmbientMax:       defaultAmbientMax,
			ProductionChance: defaultProductionChance,
		},
		Menu: DefaultMenu(),
	}
}

// Load locates and parses the floorboard config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogDir    string `toml:"log_dir"`
		LogLevel  string `toml:"log_level"`
		RefreshMS int64  `toml:"refresh_ms"`
		Telemetry struct {
			ClockMS          int64    `toml:"clock_ms"`
			WIPMS            int64    `toml:"wip_ms"`
			AmbientMinMS     int64    `toml:"ambient_min_ms"`
			AmbientMaxMS     int64    `toml:"ambient_max_ms"`
			ProductionChance *float64 `toml:"production_chance"`
			Seed             uint64   `toml:"seed"`
		} `toml:"telemetry"`
		Menu []struct {
			Label  string `toml:"label"`
			Target string `toml:"target"`
		} `toml:"menu"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if lvl := strings.ToLower(strings.TrimSpace(raw.LogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}
	cfg.Refresh = millis(raw.RefreshMS, defaultRefresh)

	tel := &cfg.Telemetry
	tel.ClockEvery = millis(raw.Telemetry.ClockMS, defaultClockEvery)
	tel.WIPEvery = millis(raw.Telemetry.WIPMS, defaultWIPEvery)
	tel.AmbientMin = millis(raw.Telemetry.AmbientMinMS, defaultAmbientMin)
	tel.AmbientMax = millis(raw.Telemetry.AmbientMaxMS, max(defaultAmbientMax, tel.AmbientMin))
	if tel.AmbientMax < tel.AmbientMin {
		return Config{}, fmt.Errorf("telemetry: ambient_max_ms %d below ambient_min_ms %d",
			tel.AmbientMax.Milliseconds(), tel.AmbientMin.Milliseconds())
	}
	if p := raw.Telemetry.ProductionChance; p != nil {
		if *p < 0 || *p > 1 {
			return Config{}, fmt.Errorf("telemetry: production_chance %v outside [0, 1]", *p)
		}
		tel.ProductionChance = *p
	}
	tel.Seed = raw.Telemetry.Seed

	if len(raw.Menu) > 0 {
		cfg.Menu = nil
		seen := make(map[string]bool, len(raw.Menu))
		for _, m := range raw.Menu {
			target := strings.TrimSpace(m.Target)
			if target == "" {
				continue
			}
			if seen[target] {
				return Config{}, fmt.Errorf("menu: target %q: %w", target, ErrDuplicateMenuTarget)
			}
			seen[target] = true
			label := strings.TrimSpace(m.Label)
			if label == "" {
				label = target
			}
			cfg.Menu = append(cfg.Menu, MenuEntry{Label: label, Target: target})
		}
		if len(cfg.Menu) == 0 {
			return Config{}, fmt.Errorf("menu: no entry has a target")
		}
	}

	return cfg, nil
}

// LogPath returns the path to the diagnostic log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func millis(ms int64, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
