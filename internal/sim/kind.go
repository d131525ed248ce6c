package sim

import (
	"strings"

	"github.com/vovakirdan/arena-dash/internal/config"
)

// Kind identifies the type of a placeable object.
type Kind int

const (
	KindObstacle    Kind = iota // Blocks movement and costs a life on contact
	KindCollectible             // Grants points when picked up
	KindSpeed                   // Temporary speed boost
	KindShield                  // Temporary immunity to obstacle damage
	KindCount                   // Sentinel for counting kinds
)

// bucket names the collection that owns objects of a kind.
type bucket int

const (
	bucketObstacles bucket = iota
	bucketCollectibles
	bucketPowerups
)

// kindRule holds everything kind-specific. Adding a kind means adding a row.
type kindRule struct {
	name     string
	glyph    rune
	bucket   bucket
	radius   func(cfg config.ArenaConfig) float64
	onPickup func(s *State, cfg config.ArenaConfig) // nil: never consumed
}

var kindRules = [KindCount]kindRule{
	KindObstacle: {
		name:   "obstacle",
		glyph:  '■',
		bucket: bucketObstacles,
		radius: func(cfg config.ArenaConfig) float64 { return cfg.Placement.ObstacleRadius },
	},
	KindCollectible: {
		name:   "collectible",
		glyph:  '◆',
		bucket: bucketCollectibles,
		radius: func(cfg config.ArenaConfig) float64 { return cfg.Placement.ItemRadius },
		onPickup: func(s *State, cfg config.ArenaConfig) {
			s.Player.Score += cfg.Scoring.CollectiblePoints
		},
	},
	KindSpeed: {
		name:   "speed",
		glyph:  '»',
		bucket: bucketPowerups,
		radius: func(cfg config.ArenaConfig) float64 { return cfg.Placement.ItemRadius },
		onPickup: func(s *State, cfg config.ArenaConfig) {
			s.Player.SpeedUntil = s.Now + cfg.Powerups.SpeedDuration
		},
	},
	KindShield: {
		name:   "shield",
		glyph:  '◎',
		bucket: bucketPowerups,
		radius: func(cfg config.ArenaConfig) float64 { return cfg.Placement.ItemRadius },
		onPickup: func(s *State, cfg config.ArenaConfig) {
			s.Player.Shielded = true
			s.Player.ShieldUntil = s.Now + cfg.Powerups.ShieldDuration
		},
	},
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindRules[k].name
}

// Glyph returns the display character for the kind.
func (k Kind) Glyph() rune {
	if !k.Valid() {
		return '?'
	}
	return kindRules[k].glyph
}

// Radius returns the collision radius of objects of this kind.
func (k Kind) Radius(cfg config.ArenaConfig) float64 {
	if !k.Valid() {
		return 0
	}
	return kindRules[k].radius(cfg)
}

// ParseKind converts a name such as "obstacle" or "shield" into a Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := range KindCount {
		if kindRules[k].name == name {
			return k, true
		}
	}
	return 0, false
}
