package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// Compile-time defaults.
const (
	DefaultWidth             = 1000.0
	DefaultHeight            = 700.0
	DefaultTopHUD            = 90.0
	DefaultBottomHUD         = 120.0
	DefaultMaxLives          = 5
	DefaultPlayerSpeed       = 240.0
	DefaultBoostSpeed        = 420.0
	DefaultPowerupDuration   = 4.0
	DefaultShieldDuration    = 4.0
	DefaultRoundTimeSeconds  = 60.0
	DefaultMinSeparation     = 26.0
	DefaultHitCooldown       = 0.5
	DefaultPlayerRadius      = 14.0
	DefaultObstacleRadius    = 18.0
	DefaultItemRadius        = 14.0
	DefaultTargetRadius      = 16.0
	DefaultTargetSpeed       = 0.35
	DefaultCollectiblePoints = 5
)

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Arena: ArenaLayout{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			TopHUD:    DefaultTopHUD,
			BottomHUD: DefaultBottomHUD,
		},
		Player: PlayerConfig{
			Radius:      DefaultPlayerRadius,
			Speed:       DefaultPlayerSpeed,
			BoostSpeed:  DefaultBoostSpeed,
			MaxLives:    DefaultMaxLives,
			HitCooldown: DefaultHitCooldown,
			SpawnOffset: 40,
		},
		Powerups: PowerupConfig{
			SpeedDuration:  DefaultPowerupDuration,
			ShieldDuration: DefaultShieldDuration,
		},
		Round: RoundConfig{
			TimeSeconds: DefaultRoundTimeSeconds,
		},
		Placement: PlacementConfig{
			MinSeparation:  DefaultMinSeparation,
			ObstacleRadius: DefaultObstacleRadius,
			ItemRadius:     DefaultItemRadius,
		},
		Target: TargetConfig{
			Radius: DefaultTargetRadius,
			Speed:  DefaultTargetSpeed,
			Inset:  60,
			Sway:   80,
			Margin: 100,
		},
		Scoring: ScoringConfig{
			CollectiblePoints: DefaultCollectiblePoints,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
