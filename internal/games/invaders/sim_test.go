package invaders

import (
	"testing"

	"github.com/ametov/tui-invaders/internal/config"
	"github.com/ametov/tui-invaders/internal/core"
)

func newTestSim(seed int64) *Simulation {
	return NewSimulation(config.DefaultInvadersConfig(), seed)
}

func TestInitialState(t *testing.T) {
	s := newTestSim(1)

	if s.Score() != 0 {
		t.Errorf("Initial score = %d, expected 0", s.Score())
	}
	if s.Lives() != 3 {
		t.Errorf("Initial lives = %d, expected 3", s.Lives())
	}
	if s.GameOver() {
		t.Error("Game should not start over")
	}
	if len(s.Aliens()) != 55 {
		t.Fatalf("Initial alien count = %d, expected 55 (5x11 grid)", len(s.Aliens()))
	}

	// Grid corners
	first := s.Aliens()[0]
	if first.Pos.X != 150 || first.Pos.Y != 100 {
		t.Errorf("First alien at %v, expected (150, 100)", first.Pos)
	}
	last := s.Aliens()[54]
	if last.Pos.X != 150+10*50 || last.Pos.Y != 100+4*40 {
		t.Errorf("Last alien at %v, expected (650, 260)", last.Pos)
	}

	// Identities are distinct
	seen := make(map[uint64]bool)
	for _, a := range s.Aliens() {
		if seen[a.ID] {
			t.Errorf("Duplicate alien ID %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestPlayerMovementClamps(t *testing.T) {
	s := newTestSim(1)

	// Sustained left: x must stay strictly above 30
	for i := 0; i < 200; i++ {
		s.MoveLeft()
		if x := s.Player().Pos.X; x <= 30 {
			t.Fatalf("Player x = %v after %d left moves, must stay > 30", x, i+1)
		}
	}
	if x := s.Player().Pos.X; x != 35 {
		t.Errorf("Player x after sustained left = %v, expected to settle at 35", x)
	}

	// Sustained right: x must stay strictly below 700
	for i := 0; i < 400; i++ {
		s.MoveRight()
		if x := s.Player().Pos.X; x >= 700 {
			t.Fatalf("Player x = %v after %d right moves, must stay < 700", x, i+1)
		}
	}
	if x := s.Player().Pos.X; x != 695 {
		t.Errorf("Player x after sustained right = %v, expected to settle at 695", x)
	}
}

func TestPlayerBulletCap(t *testing.T) {
	s := newTestSim(1)

	for i := 0; i < 4; i++ {
		s.Fire()
	}
	if got := len(s.PlayerBullets()); got != 3 {
		t.Errorf("Live player bullets after 4 fires = %d, expected 3", got)
	}
}

func TestBulletVelocities(t *testing.T) {
	s := newTestSim(1)

	s.Fire()
	startY := s.PlayerBullets()[0].Pos.Y
	s.Step()
	if got := s.PlayerBullets()[0].Pos.Y; got != startY-8 {
		t.Errorf("Player bullet y after one step = %v, expected %v", got, startY-8)
	}

	s.alienBullets = append(s.alienBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     core.Vec{X: 100, Y: 300},
		Vel:     core.Vec{Y: 5},
		Faction: FactionAlien,
	})
	s.Step()
	if got := s.alienBullets[len(s.alienBullets)-1].Pos.Y; got != 305 {
		t.Errorf("Alien bullet y after one step = %v, expected 305", got)
	}
}

func TestBulletCulledAtBounds(t *testing.T) {
	s := newTestSim(1)

	// Park a single alien far right so the bullet column stays clear.
	s.aliens = s.aliens[:1]
	s.aliens[0].Pos = core.Vec{X: 700, Y: 100}

	s.Fire() // From (400, 560), rising 8 per step
	for i := 0; i < 70; i++ {
		s.Step()
	}
	// y = 560 - 8*70 = 0: still inside [0, 600]
	if got := len(s.PlayerBullets()); got != 1 {
		t.Fatalf("Player bullet at y=0 should survive, have %d bullets", got)
	}
	s.Step()
	if got := len(s.PlayerBullets()); got != 0 {
		t.Errorf("Player bullet below y=0 should be culled, have %d bullets", got)
	}

	// Alien bullet past the bottom bound
	s.alienBullets = nil // Drop any auto-fired shots from the run above
	s.alienBullets = append(s.alienBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     core.Vec{X: 100, Y: 598},
		Vel:     core.Vec{Y: 5},
		Faction: FactionAlien,
	})
	s.Step()
	if got := len(s.AlienBullets()); got != 0 {
		t.Errorf("Alien bullet past y=600 should be culled, have %d bullets", got)
	}
}

func TestFormationBounce(t *testing.T) {
	s := newTestSim(1)

	// Push one alien next to the right wall and march once.
	s.aliens[10].Pos.X = 779
	startDir := s.dir
	startSpeed := s.speed
	rowY := s.aliens[0].Pos.Y

	s.moveFormation()

	if s.dir != -startDir {
		t.Errorf("Direction after bounce = %v, expected %v", s.dir, -startDir)
	}
	if got := s.speed - startSpeed; got < 0.0999 || got > 0.1001 {
		t.Errorf("Speed increase after bounce = %v, expected 0.1", got)
	}
	if got := s.aliens[0].Pos.Y; got != rowY+20 {
		t.Errorf("Alien y after bounce = %v, expected %v (descend 20)", got, rowY+20)
	}
}

func TestFormationSpeedCap(t *testing.T) {
	s := newTestSim(1)

	for i := 0; i < 100; i++ {
		// Force a wall crossing every march
		if s.dir > 0 {
			s.aliens[0].Pos.X = 779
		} else {
			s.aliens[0].Pos.X = 21
		}
		s.moveFormation()

		if s.speed > 8.0 {
			t.Fatalf("Formation speed = %v after %d bounces, cap is 8.0", s.speed, i+1)
		}
	}
	if s.speed < 7.99 {
		t.Errorf("Formation speed = %v after 100 bounces, expected to reach the 8.0 cap", s.speed)
	}
}

func TestBounceIsAtomic(t *testing.T) {
	s := newTestSim(1)
	s.aliens[0].Pos.X = 779

	s.moveFormation()

	// Every alien descends together on a bounce
	for i, a := range s.aliens {
		row := i / 11
		want := 100 + float64(row)*40 + 20
		if a.Pos.Y != want {
			t.Fatalf("Alien %d y = %v after bounce, expected %v", i, a.Pos.Y, want)
		}
	}
}

func TestBulletKillsAlien(t *testing.T) {
	s := newTestSim(1)

	target := s.aliens[0]
	targetID := target.ID
	s.playerBullets = append(s.playerBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     target.Pos, // Exact center of the alien's box
		Vel:     core.Vec{Y: -8},
		Faction: FactionPlayer,
	})

	s.Step()

	if got := len(s.Aliens()); got != 54 {
		t.Errorf("Alien count after kill = %d, expected 54", got)
	}
	for _, a := range s.Aliens() {
		if a.ID == targetID {
			t.Error("Struck alien still present")
		}
	}
	if got := len(s.PlayerBullets()); got != 0 {
		t.Errorf("Bullet should vanish with the alien, have %d", got)
	}
	if s.Score() != 10 {
		t.Errorf("Score after kill = %d, expected 10", s.Score())
	}
}

func TestLastAlienKillWins(t *testing.T) {
	s := newTestSim(1)

	s.aliens = s.aliens[:1]
	s.playerBullets = append(s.playerBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     s.aliens[0].Pos,
		Vel:     core.Vec{Y: -8},
		Faction: FactionPlayer,
	})

	s.Step()

	if !s.GameOver() {
		t.Fatal("Killing the last alien should end the game")
	}
	if s.EndMessage() != MessageWin {
		t.Errorf("End message = %q, expected win message %q", s.EndMessage(), MessageWin)
	}
}

// injectAlienBulletAtPlayer drops an alien bullet right on the ship so the
// next step registers a hit.
func injectAlienBulletAtPlayer(s *Simulation) {
	s.alienBullets = append(s.alienBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     s.player.Pos,
		Vel:     core.Vec{Y: 5},
		Faction: FactionAlien,
	})
}

func TestPlayerHitStartsExplosion(t *testing.T) {
	s := newTestSim(1)

	injectAlienBulletAtPlayer(s)
	s.Step()

	p := s.Player()
	if !p.Exploding {
		t.Fatal("Alien bullet hit should set the exploding flag")
	}
	if p.ExplodeTicks != 13 {
		t.Errorf("Explosion countdown = %d, expected 13", p.ExplodeTicks)
	}
	if got := len(s.AlienBullets()); got != 0 {
		t.Errorf("Hitting bullet should be removed, have %d", got)
	}
	if s.Lives() != 3 {
		t.Errorf("Lives = %d immediately after hit, expected 3 (loss comes at countdown end)", s.Lives())
	}
}

func TestExplosionReentrancyGuard(t *testing.T) {
	s := newTestSim(1)

	injectAlienBulletAtPlayer(s)
	s.Step()

	// Second hit mid-countdown must not retrigger or extend
	s.Step()
	s.Step()
	ticksBefore := s.Player().ExplodeTicks
	injectAlienBulletAtPlayer(s)
	s.Step()
	if got := s.Player().ExplodeTicks; got != ticksBefore-1 {
		t.Errorf("Countdown = %d after overlapping hit, expected %d (no retrigger)", got, ticksBefore-1)
	}

	// Run out the countdown: exactly one life lost in total
	for s.Player().Exploding {
		s.Step()
	}
	if s.Lives() != 2 {
		t.Errorf("Lives = %d after overlapping hits, expected 2 (single loss)", s.Lives())
	}
}

func TestExplosionCountdownLength(t *testing.T) {
	s := newTestSim(1)

	injectAlienBulletAtPlayer(s)
	s.Step() // Hit lands here

	for i := 0; i < 12; i++ {
		s.Step()
		if !s.Player().Exploding {
			t.Fatalf("Exploding flag cleared after %d steps, expected to last 13", i+1)
		}
		if s.Lives() != 3 {
			t.Fatalf("Life lost after %d steps, expected loss on step 13", i+1)
		}
	}

	// The 13th step clears the flag and costs the life together
	s.Step()
	if s.Player().Exploding {
		t.Error("Exploding flag should clear on the 13th step")
	}
	if s.Lives() != 2 {
		t.Errorf("Lives = %d on the 13th step, expected 2", s.Lives())
	}
}

func TestLastLifeLossEndsGame(t *testing.T) {
	s := newTestSim(1)
	s.lives = 1

	injectAlienBulletAtPlayer(s)
	s.Step()
	for i := 0; i < 13; i++ {
		s.Step()
	}

	if !s.GameOver() {
		t.Fatal("Running out of lives should end the game")
	}
	if s.EndMessage() != MessageShipsLost {
		t.Errorf("End message = %q, expected %q", s.EndMessage(), MessageShipsLost)
	}
}

func TestAlienReachingGroundEndsGame(t *testing.T) {
	s := newTestSim(1)

	s.aliens[0].Pos.Y = 525
	s.Step()

	if !s.GameOver() {
		t.Fatal("Alien past the ground line should end the game")
	}
	if s.EndMessage() != MessageInvasion {
		t.Errorf("End message = %q, expected %q", s.EndMessage(), MessageInvasion)
	}
}

func TestAlienOverlappingPlayerEndsGame(t *testing.T) {
	s := newTestSim(1)

	s.aliens[0].Pos = s.player.Pos
	s.Step()

	if !s.GameOver() {
		t.Fatal("Alien overlapping the ship should end the game")
	}
	if s.EndMessage() != MessageInvasion {
		t.Errorf("End message = %q, expected %q", s.EndMessage(), MessageInvasion)
	}
}

func TestSimultaneousLastKillAndGroundResolvesAsWin(t *testing.T) {
	s := newTestSim(1)

	// One alien, both struck by a bullet and past the ground this step.
	s.aliens = s.aliens[:1]
	s.aliens[0].Pos = core.Vec{X: 400, Y: 530}
	s.playerBullets = append(s.playerBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     s.aliens[0].Pos,
		Vel:     core.Vec{Y: -8},
		Faction: FactionPlayer,
	})

	s.Step()

	if !s.GameOver() {
		t.Fatal("Game should be over")
	}
	if s.EndMessage() != MessageWin {
		t.Errorf("End message = %q, expected the kill pass to win before the ground pass", s.EndMessage())
	}
}

func TestGameOverIsInert(t *testing.T) {
	s := newTestSim(1)

	s.aliens[0].Pos.Y = 525
	s.Step()
	if !s.GameOver() {
		t.Fatal("Expected game over")
	}

	snap := s.Snapshot()
	before := snap.Hash()

	for i := 0; i < 10; i++ {
		s.MoveLeft()
		s.MoveRight()
		s.Fire()
		s.Step()
	}

	after := s.Snapshot()
	if after.Hash() != before {
		t.Error("State changed after game over; step and commands must be inert")
	}
}

func TestAlienAutoFireGate(t *testing.T) {
	s := newTestSim(7)

	for i := 0; i < 29; i++ {
		s.Step()
	}
	if got := len(s.AlienBullets()); got != 0 {
		t.Fatalf("Alien bullets after 29 steps = %d, expected 0", got)
	}

	s.Step()
	if got := len(s.AlienBullets()); got != 1 {
		t.Errorf("Alien bullets after 30 steps = %d, expected 1", got)
	}

	// The shot originates from a live alien's position
	b := s.AlienBullets()[0]
	if b.Vel.Y != 5 {
		t.Errorf("Alien bullet velocity = %v, expected +5", b.Vel.Y)
	}
	if b.Faction != FactionAlien {
		t.Error("Auto-fire bullet should belong to the alien faction")
	}
}

func TestAutoFireSkipsEmptyFormation(t *testing.T) {
	s := newTestSim(1)

	s.aliens = nil
	s.fireTicker = 29
	s.advanceFireGate()

	if got := len(s.alienBullets); got != 0 {
		t.Errorf("Auto-fire against empty formation spawned %d bullets, expected 0", got)
	}
}

func TestAutoFireIsSeeded(t *testing.T) {
	shooterFor := func(seed int64) float64 {
		s := newTestSim(seed)
		for i := 0; i < 30; i++ {
			s.Step()
		}
		if len(s.AlienBullets()) != 1 {
			t.Fatalf("Expected one alien bullet after 30 steps")
		}
		return s.AlienBullets()[0].Pos.X
	}

	if shooterFor(42) != shooterFor(42) {
		t.Error("Same seed must pick the same shooter")
	}
}

func TestEntityIdentityNeverReused(t *testing.T) {
	s := newTestSim(1)

	ids := make(map[uint64]bool)
	record := func(id uint64) {
		if ids[id] {
			t.Fatalf("ID %d reused", id)
		}
		ids[id] = true
	}

	for _, a := range s.Aliens() {
		record(a.ID)
	}

	// Kill an alien, then fire: new bullets must not reuse the dead ID
	s.playerBullets = append(s.playerBullets, &Bullet{
		ID:      s.allocID(),
		Pos:     s.aliens[0].Pos,
		Vel:     core.Vec{Y: -8},
		Faction: FactionPlayer,
	})
	record(s.playerBullets[0].ID)
	s.Step()

	s.Fire()
	record(s.PlayerBullets()[len(s.PlayerBullets())-1].ID)
}

func TestScoreMonotonicLivesDecreasing(t *testing.T) {
	s := newTestSim(3)

	prevScore := s.Score()
	prevLives := s.Lives()
	for i := 0; i < 500 && !s.GameOver(); i++ {
		if i%3 == 0 {
			s.Fire()
		}
		s.Step()

		if s.Score() < prevScore {
			t.Fatalf("Score decreased from %d to %d", prevScore, s.Score())
		}
		if s.Lives() > prevLives {
			t.Fatalf("Lives increased from %d to %d", prevLives, s.Lives())
		}
		if s.Lives() < 0 {
			t.Fatalf("Lives went negative: %d", s.Lives())
		}
		if got := len(s.PlayerBullets()); got > 3 {
			t.Fatalf("Player bullet cap violated: %d live", got)
		}
		if s.FormationSpeed() < 2.0 || s.FormationSpeed() > 8.0 {
			t.Fatalf("Formation speed %v outside [2.0, 8.0]", s.FormationSpeed())
		}
		prevScore = s.Score()
		prevLives = s.Lives()
	}
}
