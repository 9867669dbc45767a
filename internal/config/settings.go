// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// EnemySettings describes one autonomous cannon.
type EnemySettings struct {
	X         float64    `json:"x"`
	Threshold int        `json:"threshold"` // ticks between patrol steps
	Step      float64    `json:"step"`      // patrol step in pixels
	Color     color.RGBA `json:"color"`
}

// Settings holds the tunables of a session. Fields missing from a settings
// file keep their defaults.
type Settings struct {
	Seed             int64           `json:"seed"` // 0 picks a time-based seed
	Targets          int             `json:"targets"`
	Gravity          float64         `json:"gravity"`
	ReflOrt          float64         `json:"refl_ort"`
	ReflPar          float64         `json:"refl_par"`
	MinPower         float64         `json:"min_power"`
	MaxPower         float64         `json:"max_power"`
	ChargeStep       float64         `json:"charge_step"`
	PlayerStep       float64         `json:"player_step"`
	ShellRadius      float64         `json:"shell_radius"`
	TargetBaseRadius int             `json:"target_base_radius"`
	TargetSpeed      float64         `json:"target_speed"`
	EnemyFirePercent int             `json:"enemy_fire_percent"`
	Enemies          []EnemySettings `json:"enemies"`
	AssetsDir        string          `json:"assets_dir"`
}

func DefaultSettings() Settings {
	return Settings{
		Targets:          TargetsPerKind,
		Gravity:          Gravity,
		ReflOrt:          0.8,
		ReflPar:          0.9,
		MinPower:         MinPower,
		MaxPower:         MaxPower,
		ChargeStep:       ChargeStep,
		PlayerStep:       PlayerStep,
		ShellRadius:      ShellRadius,
		TargetBaseRadius: TargetBaseRadius,
		TargetSpeed:      TargetSpeed,
		EnemyFirePercent: EnemyFirePercent,
		Enemies: []EnemySettings{
			{X: 200, Threshold: 50, Step: 15, Color: Blue},
			{X: 500, Threshold: 60, Step: 20, Color: White},
		},
		AssetsDir: AssetsDir,
	}
}

// LoadSettings reads a JSON settings file on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	log.Printf("Loaded settings from %s", path)
	return s, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Targets < 1:
		return fmt.Errorf("%w: need at least one target group, got %d", ErrInvalidSettings, s.Targets)
	case s.MinPower <= 0 || s.MaxPower < s.MinPower:
		return fmt.Errorf("%w: power range [%v, %v]", ErrInvalidSettings, s.MinPower, s.MaxPower)
	case s.ChargeStep <= 0:
		return fmt.Errorf("%w: charge step must be positive, got %v", ErrInvalidSettings, s.ChargeStep)
	case s.ReflOrt < 0 || s.ReflOrt > 1 || s.ReflPar < 0 || s.ReflPar > 1:
		return fmt.Errorf("%w: reflection factors must lie in [0, 1]", ErrInvalidSettings)
	case s.ShellRadius <= 0 || 2*s.ShellRadius >= ScreenHeight:
		return fmt.Errorf("%w: shell radius %v", ErrInvalidSettings, s.ShellRadius)
	case s.TargetBaseRadius < 1 || 2*s.TargetBaseRadius >= ScreenHeight:
		return fmt.Errorf("%w: target base radius %d", ErrInvalidSettings, s.TargetBaseRadius)
	case s.EnemyFirePercent < 0 || s.EnemyFirePercent > 100:
		return fmt.Errorf("%w: enemy fire percent %d", ErrInvalidSettings, s.EnemyFirePercent)
	}
	for i, e := range s.Enemies {
		if e.Threshold <= 0 {
			return fmt.Errorf("%w: enemy %d threshold must be positive", ErrInvalidSettings, i)
		}
	}
	return nil
}
