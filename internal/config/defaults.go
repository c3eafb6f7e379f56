package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// Values mirror defaults/invaders.yaml so the game works even if the
// embedded YAML fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:   800,
			Height:  600,
			GroundY: 520,
		},
		Player: PlayerConfig{
			StartX:         400,
			StartY:         560,
			Speed:          5,
			MinX:           30,
			MaxX:           700,
			Width:          30,
			Height:         20,
			Lives:          3,
			ExplosionTicks: 13,
		},
		Formation: FormationConfig{
			Rows:           5,
			Cols:           11,
			OriginX:        150,
			OriginY:        100,
			SpacingX:       50,
			SpacingY:       40,
			StartSpeed:     2.0,
			SpeedRamp:      0.1,
			MaxSpeed:       8.0,
			Descend:        20,
			LeftWall:       20,
			RightWall:      780,
			FireEveryTicks: 30,
			AlienWidth:     25,
			AlienHeight:    20,
			KillPoints:     10,
		},
		Bullets: BulletsConfig{
			PlayerVelY: -8,
			AlienVelY:  5,
			MaxPlayer:  3,
			Width:      3,
			Height:     15,
		},
	}
}
