// Package config provides YAML-based tuning configuration for the
// invaders simulation. Defaults reproduce the classic arcade constants;
// a custom file can override them for experimentation.
package config

// InvadersConfig contains all tuning parameters for the invaders game.
type InvadersConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Formation FormationConfig `yaml:"formation"`
	Bullets   BulletsConfig   `yaml:"bullets"`
}

// PlayfieldConfig defines the logical coordinate space of the simulation.
// The renderer scales these units to screen cells.
type PlayfieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Aliens past this line end the game
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	Speed          float64 `yaml:"speed"`           // Units moved per command
	MinX           float64 `yaml:"min_x"`           // Movement keeps x strictly above this
	MaxX           float64 `yaml:"max_x"`           // Movement keeps x strictly below this
	Width          float64 `yaml:"width"`           // Hitbox width
	Height         float64 `yaml:"height"`          // Hitbox height
	Lives          int     `yaml:"lives"`
	ExplosionTicks int     `yaml:"explosion_ticks"` // Flash duration after a hit
}

// FormationConfig defines the alien grid and its marching behavior.
type FormationConfig struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	OriginX        float64 `yaml:"origin_x"` // Top-left alien start position
	OriginY        float64 `yaml:"origin_y"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	StartSpeed     float64 `yaml:"start_speed"`
	SpeedRamp      float64 `yaml:"speed_ramp"` // Added on every wall bounce
	MaxSpeed       float64 `yaml:"max_speed"`
	Descend        float64 `yaml:"descend"` // Vertical drop on bounce
	LeftWall       float64 `yaml:"left_wall"`
	RightWall      float64 `yaml:"right_wall"`
	FireEveryTicks int     `yaml:"fire_every_ticks"`
	AlienWidth     float64 `yaml:"alien_width"`
	AlienHeight    float64 `yaml:"alien_height"`
	KillPoints     int     `yaml:"kill_points"`
}

// BulletsConfig defines bullet parameters for both factions.
type BulletsConfig struct {
	PlayerVelY float64 `yaml:"player_vel_y"` // Negative = upward
	AlienVelY  float64 `yaml:"alien_vel_y"`  // Positive = downward
	MaxPlayer  int     `yaml:"max_player"`   // Live player bullet cap
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}
