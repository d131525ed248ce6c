// Package config provides YAML-based arena configuration loading for the
// simulation and the platform layers.
package config

import "fmt"

// ArenaConfig contains all tuning values for the arena game.
type ArenaConfig struct {
	Arena     ArenaLayout     `yaml:"arena"`
	Player    PlayerConfig    `yaml:"player"`
	Powerups  PowerupConfig   `yaml:"powerups"`
	Round     RoundConfig     `yaml:"round"`
	Placement PlacementConfig `yaml:"placement"`
	Target    TargetConfig    `yaml:"target"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// ArenaLayout defines the window and the HUD panels that bound the playable area.
type ArenaLayout struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TopHUD    float64 `yaml:"top_hud"`    // Height of the top panel (lives, score, time)
	BottomHUD float64 `yaml:"bottom_hud"` // Height of the bottom panel (palette)
}

// MinY returns the lowest playable y coordinate.
func (a ArenaLayout) MinY() float64 {
	return a.BottomHUD
}

// MaxY returns the highest playable y coordinate.
func (a ArenaLayout) MaxY() float64 {
	return a.Height - a.TopHUD
}

// PlayerConfig defines ship movement and damage parameters.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Units per second
	BoostSpeed  float64 `yaml:"boost_speed"`  // Units per second while boosted
	MaxLives    int     `yaml:"max_lives"`    // Lives at round start
	HitCooldown float64 `yaml:"hit_cooldown"` // Seconds of invincibility after a hit
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance above the bottom edge of the arena
}

// PowerupConfig defines timed effect durations in seconds.
type PowerupConfig struct {
	SpeedDuration  float64 `yaml:"speed_duration"`
	ShieldDuration float64 `yaml:"shield_duration"`
}

// RoundConfig defines the countdown.
type RoundConfig struct {
	TimeSeconds float64 `yaml:"time_seconds"`
}

// PlacementConfig defines object sizes and the edit-phase separation rule.
type PlacementConfig struct {
	MinSeparation  float64 `yaml:"min_separation"`
	ObstacleRadius float64 `yaml:"obstacle_radius"`
	ItemRadius     float64 `yaml:"item_radius"` // Collectibles and power-ups
}

// TargetConfig defines the moving goal.
type TargetConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`  // Bezier parameter units per second
	Inset  float64 `yaml:"inset"`  // Distance of the path below the top panel
	Sway   float64 `yaml:"sway"`   // Vertical offset of the inner control points
	Margin float64 `yaml:"margin"` // Horizontal distance of the endpoints from the walls
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	CollectiblePoints int `yaml:"collectible_points"`
}

// ValidationError contains details about a configuration that cannot be used.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable arena.
func (c ArenaConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return ValidationError{Code: "BAD_ARENA", Message: "arena width and height must be positive"}
	}
	if c.Arena.MaxY()-c.Arena.MinY() <= 2*c.Player.Radius {
		return ValidationError{Code: "BAD_ARENA", Message: "HUD panels leave no room for the player"}
	}
	if c.Player.Radius <= 0 || c.Target.Radius <= 0 {
		return ValidationError{Code: "BAD_RADIUS", Message: "player and target radius must be positive"}
	}
	if c.Placement.ObstacleRadius <= 0 || c.Placement.ItemRadius <= 0 {
		return ValidationError{Code: "BAD_RADIUS", Message: "object radius must be positive"}
	}
	if c.Player.Speed <= 0 || c.Player.BoostSpeed <= 0 {
		return ValidationError{Code: "BAD_SPEED", Message: "player speeds must be positive"}
	}
	if c.Player.MaxLives <= 0 {
		return ValidationError{Code: "BAD_LIVES", Message: fmt.Sprintf("max_lives must be positive, got %d", c.Player.MaxLives)}
	}
	if c.Round.TimeSeconds <= 0 {
		return ValidationError{Code: "BAD_DURATION", Message: "round time must be positive"}
	}
	if c.Powerups.SpeedDuration < 0 || c.Powerups.ShieldDuration < 0 || c.Player.HitCooldown < 0 {
		return ValidationError{Code: "BAD_DURATION", Message: "durations must not be negative"}
	}
	if c.Placement.MinSeparation < 0 {
		return ValidationError{Code: "BAD_SEPARATION", Message: "min_separation must not be negative"}
	}
	return nil
}
