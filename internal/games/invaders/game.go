package invaders

import (
	"github.com/ametov/tui-invaders/internal/config"
	"github.com/ametov/tui-invaders/internal/core"
	"github.com/ametov/tui-invaders/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Simulation to the platform's registry interface.
// Pause and restart are driver concerns and live here, not in the
// simulation: a paused game simply does not step.
type Game struct {
	sim     *Simulation
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg

	g.sim = NewSimulation(cfg, runtime.Seed)
}

// Step advances the game by one tick. Held movement actions become the
// simulation's move commands, a fire action becomes a single fire pulse,
// and then the simulation steps once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.sim.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.sim.MoveRight()
	}
	if in.Has(core.ActionFire) {
		g.sim.Fire()
	}

	g.sim.Step()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		GameOver: g.sim.GameOver(),
		Won:      g.sim.EndMessage() == MessageWin,
		Paused:   g.paused,
		Message:  g.sim.EndMessage(),
		Tick:     g.sim.Tick(),
	}
}

// Simulation exposes the underlying engine for tests and tooling.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Register the game with the registry.
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
