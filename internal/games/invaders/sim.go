// Package invaders implements a Space Invaders-style game: a player ship,
// a marching grid of aliens, and two bullet streams, advanced one discrete
// tick at a time. The Simulation type is the pure state-transition engine;
// Game adapts it to the platform's registry interface.
package invaders

import (
	"math/rand"

	"github.com/ametov/tui-invaders/internal/config"
	"github.com/ametov/tui-invaders/internal/core"
)

// End-of-game messages.
const (
	MessageWin       = "You saved the Earth!"
	MessageInvasion  = "The aliens reached the ground."
	MessageShipsLost = "Your last ship was destroyed."
)

// Simulation owns all game entities and scalar state and advances them one
// tick at a time. It has exactly one writer: Step plus the three commands
// (MoveLeft, MoveRight, Fire), all invoked from the same logical thread.
// Renderers observe it between steps through the read accessors only.
type Simulation struct {
	cfg config.InvadersConfig
	rng *rand.Rand // Sole source of nondeterminism (alien fire selection)

	player        Player
	aliens        []*Alien
	playerBullets []*Bullet // Insertion order, capped
	alienBullets  []*Bullet // Insertion order, uncapped

	score    int
	lives    int
	gameOver bool
	endMsg   string

	dir        float64 // Formation direction, ±1
	speed      float64 // Formation speed, rises on each bounce
	fireTicker int     // Gates alien auto-fire
	tick       uint64
	nextID     uint64
}

// NewSimulation creates a simulation with the full alien grid in place.
// The seed drives the injectable RNG, so identical seeds and identical
// command sequences reproduce identical games.
func NewSimulation(cfg config.InvadersConfig, seed int64) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		lives: cfg.Player.Lives,
		dir:   1,
		speed: cfg.Formation.StartSpeed,
	}

	s.player = Player{
		Pos: core.Vec{X: cfg.Player.StartX, Y: cfg.Player.StartY},
	}

	f := cfg.Formation
	s.aliens = make([]*Alien, 0, f.Rows*f.Cols)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			s.aliens = append(s.aliens, &Alien{
				ID: s.allocID(),
				Pos: core.Vec{
					X: f.OriginX + float64(col)*f.SpacingX,
					Y: f.OriginY + float64(row)*f.SpacingY,
				},
			})
		}
	}

	return s
}

func (s *Simulation) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// Step advances the simulation by one tick. Once the game is over it is
// inert: no field mutates. Phase order is load-bearing; later phases
// observe the results of earlier ones.
func (s *Simulation) Step() {
	if s.gameOver {
		return
	}
	s.tick++

	s.advanceExplosion()
	if s.gameOver { // loseLife can end the game mid-step
		return
	}

	s.playerBullets = s.moveAndCull(s.playerBullets)
	s.alienBullets = s.moveAndCull(s.alienBullets)
	s.moveFormation()

	s.collideBulletsAliens()
	if s.gameOver { // last alien killed resolves as a win
		return
	}
	s.collideAlienBulletsPlayer()
	s.collideAliensGround()
	if s.gameOver {
		return
	}

	s.advanceFireGate()
}

// advanceExplosion runs the player's flash countdown. Reaching zero flips
// the ship back to normal and costs a life in the same tick.
func (s *Simulation) advanceExplosion() {
	if !s.player.Exploding {
		return
	}
	s.player.ExplodeTicks--
	if s.player.ExplodeTicks <= 0 {
		s.player.Exploding = false
		s.player.ExplodeTicks = 0
		s.loseLife()
	}
}

// moveAndCull advances each bullet by its velocity and drops any that left
// the vertical play bounds. Pure filter, no collision side effects.
func (s *Simulation) moveAndCull(bullets []*Bullet) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Pos = b.Pos.Add(b.Vel)
		if b.Pos.Y < 0 || b.Pos.Y > s.cfg.Playfield.Height {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// moveFormation translates every alien horizontally, then bounces the
// whole formation as one unit if any alien crossed a wall: reverse
// direction, descend, and ramp up speed (capped).
func (s *Simulation) moveFormation() {
	f := s.cfg.Formation

	for _, a := range s.aliens {
		a.Pos.X += s.dir * s.speed
	}

	bounce := false
	for _, a := range s.aliens {
		if a.Pos.X > f.RightWall || a.Pos.X < f.LeftWall {
			bounce = true
			break
		}
	}
	if !bounce {
		return
	}

	s.dir = -s.dir
	for _, a := range s.aliens {
		a.Pos.Y += f.Descend
	}
	s.speed = core.ClampF(s.speed+f.SpeedRamp, f.StartSpeed, f.MaxSpeed)
}

// advanceFireGate counts ticks and, every FireEveryTicks, has one alien
// chosen uniformly at random fire a bullet. Skipped silently when no
// aliens remain.
func (s *Simulation) advanceFireGate() {
	s.fireTicker++
	if s.fireTicker < s.cfg.Formation.FireEveryTicks {
		return
	}
	s.fireTicker = 0

	if len(s.aliens) == 0 {
		return
	}
	shooter := s.aliens[s.rng.Intn(len(s.aliens))]
	s.alienBullets = append(s.alienBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     shooter.Pos,
		Vel:     core.Vec{Y: s.cfg.Bullets.AlienVelY},
		Faction: FactionAlien,
	})
}

// playerHit starts the explosion flash. A hit while already exploding is
// silently ignored so overlapping alien fire cannot cost more than one
// life per flash.
func (s *Simulation) playerHit() {
	if s.player.Exploding {
		return
	}
	s.player.Exploding = true
	s.player.ExplodeTicks = s.cfg.Player.ExplosionTicks
}

func (s *Simulation) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.endGame(MessageShipsLost)
	}
}

// endGame is the one-way transition to the terminal state. The message is
// stored exactly once; Step becomes inert afterwards.
func (s *Simulation) endGame(msg string) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.endMsg = msg
}

// MoveLeft shifts the ship left by its speed, refusing moves that would
// leave the left boundary.
func (s *Simulation) MoveLeft() {
	if s.gameOver {
		return
	}
	if s.player.Pos.X-s.cfg.Player.Speed > s.cfg.Player.MinX {
		s.player.Pos.X -= s.cfg.Player.Speed
	}
}

// MoveRight shifts the ship right by its speed, refusing moves that would
// leave the right boundary.
func (s *Simulation) MoveRight() {
	if s.gameOver {
		return
	}
	if s.player.Pos.X+s.cfg.Player.Speed < s.cfg.Player.MaxX {
		s.player.Pos.X += s.cfg.Player.Speed
	}
}

// Fire spawns a player bullet at the ship's position. Silently ignored
// when the live-bullet cap is reached.
func (s *Simulation) Fire() {
	if s.gameOver {
		return
	}
	if len(s.playerBullets) >= s.cfg.Bullets.MaxPlayer {
		return
	}
	s.playerBullets = append(s.playerBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     s.player.Pos,
		Vel:     core.Vec{Y: s.cfg.Bullets.PlayerVelY},
		Faction: FactionPlayer,
	})
}

// Player returns a copy of the player ship state.
func (s *Simulation) Player() Player {
	return s.player
}

// Aliens returns the live alien collection. Callers must treat it as
// read-only; identity is stable across steps for diffing.
func (s *Simulation) Aliens() []*Alien {
	return s.aliens
}

// PlayerBullets returns the live player bullets in insertion order.
func (s *Simulation) PlayerBullets() []*Bullet {
	return s.playerBullets
}

// AlienBullets returns the live alien bullets in insertion order.
func (s *Simulation) AlienBullets() []*Bullet {
	return s.alienBullets
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Simulation) Lives() int {
	return s.lives
}

// GameOver reports whether the terminal state has been reached.
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// EndMessage returns the end-of-game message. Valid only once GameOver
// reports true.
func (s *Simulation) EndMessage() string {
	return s.endMsg
}

// FormationSpeed returns the current formation speed.
func (s *Simulation) FormationSpeed() float64 {
	return s.speed
}

// FormationDir returns the current formation direction (±1).
func (s *Simulation) FormationDir() float64 {
	return s.dir
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}
