package invaders

import "github.com/ametov/tui-invaders/internal/core"

// Hitboxes are centered on entity positions with fixed per-type sizes.
// Intersection uses closed intervals (core.Box): touching edges collide.

func (s *Simulation) playerBox() core.Box {
	return core.BoxAround(s.player.Pos, s.cfg.Player.Width, s.cfg.Player.Height)
}

func (s *Simulation) alienBox(a *Alien) core.Box {
	return core.BoxAround(a.Pos, s.cfg.Formation.AlienWidth, s.cfg.Formation.AlienHeight)
}

func (s *Simulation) bulletBox(b *Bullet) core.Box {
	return core.BoxAround(b.Pos, s.cfg.Bullets.Width, s.cfg.Bullets.Height)
}

// collideBulletsAliens is the first collision pass: each player bullet is
// tested against the formation. A hit removes both the bullet and the
// alien and scores points. Clearing the formation wins the game.
func (s *Simulation) collideBulletsAliens() {
	kept := s.playerBullets[:0]
	for _, b := range s.playerBullets {
		bb := s.bulletBox(b)
		hit := false
		for i, a := range s.aliens {
			if bb.Intersects(s.alienBox(a)) {
				s.aliens = append(s.aliens[:i], s.aliens[i+1:]...)
				s.score += s.cfg.Formation.KillPoints
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	s.playerBullets = kept

	if len(s.aliens) == 0 {
		s.endGame(MessageWin)
	}
}

// collideAlienBulletsPlayer is the second collision pass: every alien
// bullet touching the ship attempts a hit and is removed. The re-entrancy
// guard in playerHit ensures at most one explosion trigger per step.
func (s *Simulation) collideAlienBulletsPlayer() {
	pb := s.playerBox()
	kept := s.alienBullets[:0]
	for _, b := range s.alienBullets {
		if s.bulletBox(b).Intersects(pb) {
			s.playerHit()
			continue
		}
		kept = append(kept, b)
	}
	s.alienBullets = kept
}

// collideAliensGround is the third collision pass: any alien past the
// ground line, or overlapping the ship directly, ends the game as a loss.
// Running after the bullet pass means a simultaneous last-alien kill
// resolves as a win, not a loss.
func (s *Simulation) collideAliensGround() {
	pb := s.playerBox()
	for _, a := range s.aliens {
		if a.Pos.Y > s.cfg.Playfield.GroundY || s.alienBox(a).Intersects(pb) {
			s.endGame(MessageInvasion)
			return
		}
	}
}
