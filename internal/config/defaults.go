package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:    100,
			Height:   52,
			TileSize: 8,
			MapPath:  "map.json",
		},
		Physics: PhysicsConfig{
			Gravity:      0.15,
			BaseSpeed:    1.0,
			JumpSpeed:    3.0,
			MaxFallSpeed: 4.0,
		},
		Player: PlayerConfig{
			BodySize:   16,
			BoxOffsetX: 5,
			BoxOffsetY: 4,
			BoxWidth:   6,
		},
		Stages: []StageConfig{
			{Name: "baby", Duration: 20 * time.Second, Sight: 0.5, JumpStrength: 0.6, Speed: 0.6, JumpCooldown: 600 * time.Millisecond, BoxHeight: 6},
			{Name: "child", Duration: 30 * time.Second, Sight: 0.8, JumpStrength: 0.9, Speed: 0.9, JumpCooldown: 400 * time.Millisecond, BoxHeight: 8},
			{Name: "teenager", Duration: 40 * time.Second, Sight: 1.0, JumpStrength: 1.1, Speed: 1.1, JumpCooldown: 250 * time.Millisecond, BoxHeight: 10},
			{Name: "adult", Duration: 60 * time.Second, Sight: 1.1, JumpStrength: 1.0, Speed: 1.0, JumpCooldown: 300 * time.Millisecond, BoxHeight: 11},
			{Name: "elder", Duration: 40 * time.Second, Sight: 0.7, JumpStrength: 0.6, Speed: 0.6, JumpCooldown: 900 * time.Millisecond, BoxHeight: 10},
		},
		Animation: AnimationConfig{
			FrameDuration:      100 * time.Millisecond,
			WalkStart:          1,
			WalkEnd:            4,
			DeathFinalFrame:    5,
			DeathFrameDuration: 150 * time.Millisecond,
			DeathDuration:      2500 * time.Millisecond,
		},
		Zones: ZoneConfig{
			EndProximityTiles: 6,
			EndHitboxTiles:    3,
		},
		Sight: SightConfig{
			Rate:        2.0,
			EndRate:     0.4,
			Epsilon:     0.01,
			EndScene:    2.5,
			DeathDecay:  4.0,
			LightRadius: 120,
		},
		Camera: CameraConfig{
			Speed:       0.1,
			OffsetSpeed: 0.02,
			OffsetSnap:  0.1,
			EndOffsetY:  -40,
		},
		Editor: EditorConfig{
			BrushSize: 3,
		},
		Input: InputConfig{
			HoldWindow: 150 * time.Millisecond,
		},
	}
}
