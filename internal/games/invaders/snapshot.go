package invaders

import "math"

// Snapshot captures the complete simulation state for determinism testing
// and replay. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	GameOver bool
	EndMsg   string

	PlayerX      float64
	PlayerY      float64
	Exploding    bool
	ExplodeTicks int

	Dir        float64
	Speed      float64
	FireTicker int

	AlienCount        int
	PlayerBulletCount int
	AlienBulletCount  int

	// Aliens flattened as (id, x, y) triples in iteration order
	AlienData []float64
	// Bullets flattened as (id, x, y, vy) quads, player stream then alien stream
	BulletData []float64
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	alienData := make([]float64, 0, len(s.aliens)*3)
	for _, a := range s.aliens {
		alienData = append(alienData, float64(a.ID), a.Pos.X, a.Pos.Y)
	}

	bulletData := make([]float64, 0, (len(s.playerBullets)+len(s.alienBullets))*4)
	for _, b := range s.playerBullets {
		bulletData = append(bulletData, float64(b.ID), b.Pos.X, b.Pos.Y, b.Vel.Y)
	}
	for _, b := range s.alienBullets {
		bulletData = append(bulletData, float64(b.ID), b.Pos.X, b.Pos.Y, b.Vel.Y)
	}

	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		Lives:    s.lives,
		GameOver: s.gameOver,
		EndMsg:   s.endMsg,

		PlayerX:      s.player.Pos.X,
		PlayerY:      s.player.Pos.Y,
		Exploding:    s.player.Exploding,
		ExplodeTicks: s.player.ExplodeTicks,

		Dir:        s.dir,
		Speed:      s.speed,
		FireTicker: s.fireTicker,

		AlienCount:        len(s.aliens),
		PlayerBulletCount: len(s.playerBullets),
		AlienBulletCount:  len(s.alienBullets),

		AlienData:  alienData,
		BulletData: bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + boolBit(snap.Exploding)
	h = h*31 + uint64(snap.ExplodeTicks)
	h = h*31 + math.Float64bits(snap.Dir)
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + uint64(snap.FireTicker)
	h = h*31 + uint64(snap.AlienCount)
	h = h*31 + uint64(snap.PlayerBulletCount)
	h = h*31 + uint64(snap.AlienBulletCount)

	for _, v := range snap.AlienData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	for _, c := range snap.EndMsg {
		h = h*31 + uint64(c)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
