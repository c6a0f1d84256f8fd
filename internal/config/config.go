// Package config provides YAML-based tuning for the world, the player and the
// terminal front-ends. Every constant the simulation depends on lives here so
// that tests and custom config files can override it.
package config

import "time"

// GameConfig contains all configuration for a play or edit session.
type GameConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Stages    []StageConfig   `yaml:"stages"`
	Animation AnimationConfig `yaml:"animation"`
	Zones     ZoneConfig      `yaml:"zones"`
	Sight     SightConfig     `yaml:"sight"`
	Camera    CameraConfig    `yaml:"camera"`
	Editor    EditorConfig    `yaml:"editor"`
	Input     InputConfig     `yaml:"input"`
}

// GridConfig defines the bounded tile grid.
type GridConfig struct {
	Width    int    `yaml:"width"`     // Cells per row
	Height   int    `yaml:"height"`    // Rows
	TileSize int    `yaml:"tile_size"` // World units per cell edge
	MapPath  string `yaml:"map_path"`  // Default map file
}

// BaseWidth returns the width of the base viewport in world units.
func (g GridConfig) BaseWidth() float64 {
	return float64(g.Width * g.TileSize)
}

// BaseHeight returns the height of the base viewport in world units.
func (g GridConfig) BaseHeight() float64 {
	return float64(g.Height * g.TileSize)
}

// PhysicsConfig defines per-tick motion parameters. Velocities are world units
// per tick and gravity is world units per tick squared.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	BaseSpeed    float64 `yaml:"base_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the body rectangle and the collision box inset.
type PlayerConfig struct {
	BodySize   float64 `yaml:"body_size"`    // Square sprite body edge
	BoxOffsetX float64 `yaml:"box_offset_x"` // Collision box inset from body left
	BoxOffsetY float64 `yaml:"box_offset_y"` // Collision box inset from body top
	BoxWidth   float64 `yaml:"box_width"`
}

// StageConfig defines one life stage. Stages are listed in life order.
type StageConfig struct {
	Name         string        `yaml:"name"`
	Duration     time.Duration `yaml:"duration"`
	Sight        float64       `yaml:"sight"`
	JumpStrength float64       `yaml:"jump_strength"`
	Speed        float64       `yaml:"speed"`
	JumpCooldown time.Duration `yaml:"jump_cooldown"`
	BoxHeight    float64       `yaml:"box_height"`
}

// AnimationConfig defines sprite frame pacing.
type AnimationConfig struct {
	FrameDuration      time.Duration `yaml:"frame_duration"` // Walk/jump frame pacing
	WalkStart          int           `yaml:"walk_start"`     // First frame of the walk cycle
	WalkEnd            int           `yaml:"walk_end"`       // Last frame before wrapping
	DeathFinalFrame    int           `yaml:"death_final_frame"`
	DeathFrameDuration time.Duration `yaml:"death_frame_duration"`
	DeathDuration      time.Duration `yaml:"death_duration"`
}

// ZoneConfig defines special-zone geometry in tiles.
type ZoneConfig struct {
	EndProximityTiles float64 `yaml:"end_proximity_tiles"`
	EndHitboxTiles    float64 `yaml:"end_hitbox_tiles"` // Height of the End tile hit-box
}

// SightConfig defines the sight multiplier easing.
type SightConfig struct {
	Rate        float64 `yaml:"rate"`         // Blend rate per second
	EndRate     float64 `yaml:"end_rate"`     // Blend rate during the end sequence
	Epsilon     float64 `yaml:"epsilon"`      // Snap threshold
	EndScene    float64 `yaml:"end_scene"`    // Target once the end sequence triggers
	DeathDecay  float64 `yaml:"death_decay"`  // Exponent scale while dying
	LightRadius float64 `yaml:"light_radius"` // World units lit at sight 1.0
}

// CameraConfig defines camera follow smoothing.
type CameraConfig struct {
	Speed       float64 `yaml:"speed"`
	OffsetSpeed float64 `yaml:"offset_speed"`
	OffsetSnap  float64 `yaml:"offset_snap"`
	EndOffsetY  float64 `yaml:"end_offset_y"`
}

// EditorConfig defines map editor behavior.
type EditorConfig struct {
	BrushSize int `yaml:"brush_size"` // Odd square brush edge
}

// InputConfig defines how key presses become held input in a terminal.
type InputConfig struct {
	HoldWindow time.Duration `yaml:"hold_window"`
}
