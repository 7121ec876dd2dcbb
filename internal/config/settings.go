package config

import (
	"errors"
	"fmt"
)

// Environment keys shared by the front ends.
const (
	EnvWidth    = "SHIELDROIDS_WIDTH"
	EnvHeight   = "SHIELDROIDS_HEIGHT"
	EnvFPS      = "SHIELDROIDS_FPS"
	EnvLogLevel = "SHIELDROIDS_LOG_LEVEL"
)

// Defaults
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFPS      = 60
	DefaultLogLevel = "info"
)

// Settings is the front-end configuration read from the environment.
//
// Game physics advance a fixed step per tick, so FPS sets the pace of the
// game and not only its smoothness: 30 plays at half speed, 120 at double.
// Width and Height resize the playfield while wave sizes stay the same, so a
// larger screen means sparser asteroids. The defaults give the intended game.
type Settings struct {
	Width    float64 // Logical screen width; changes asteroid density
	Height   float64 // Logical screen height; changes asteroid density
	FPS      int     // Ticks per second; changes game speed
	LogLevel string
}

// ErrInvalidSetting is wrapped by every validation failure of LoadSettings.
var ErrInvalidSetting = errors.New("invalid setting")

// LoadSettings reads Settings from the environment, applying defaults for unset keys.
func LoadSettings() (Settings, error) {
	var s Settings
	var err error

	if s.Width, err = GetEnvFloat(EnvWidth, DefaultWidth); err != nil {
		return Settings{}, err
	}
	if s.Height, err = GetEnvFloat(EnvHeight, DefaultHeight); err != nil {
		return Settings{}, err
	}
	if s.FPS, err = GetEnvInt(EnvFPS, DefaultFPS); err != nil {
		return Settings{}, err
	}
	if s.LogLevel = GetEnv(EnvLogLevel, ""); s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}

	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, fmt.Errorf("%w: screen %gx%g must be positive", ErrInvalidSetting, s.Width, s.Height)
	}
	if s.FPS <= 0 || s.FPS > 240 {
		return Settings{}, fmt.Errorf("%w: %s=%d out of range 1..240", ErrInvalidSetting, EnvFPS, s.FPS)
	}
	return s, nil
}
