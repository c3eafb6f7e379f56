package invaders

import "github.com/ametov/tui-invaders/internal/core"

// Faction identifies the owner of a bullet. It determines the bullet's
// fixed velocity and which collision pass applies to it.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionAlien
)

// Player is the ship at the bottom of the playfield. Exactly one instance
// exists for the simulation's lifetime; it is mutated in place and never
// destroyed.
type Player struct {
	Pos          core.Vec
	Exploding    bool
	ExplodeTicks int // Remaining flash duration; > 0 implies Exploding
}

// Alien is one member of the marching formation. IDs are assigned
// monotonically and never reused within a session, so renderers can diff
// the collection between steps.
type Alien struct {
	ID  uint64
	Pos core.Vec
}

// Bullet is a projectile moving with a fixed velocity. Player bullets
// travel upward, alien bullets downward.
type Bullet struct {
	ID      uint64
	Pos     core.Vec
	Vel     core.Vec
	Faction Faction
}
