package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ametov/tui-invaders/internal/core"
	"github.com/ametov/tui-invaders/internal/registry"
	"github.com/ametov/tui-invaders/internal/storage"
)

// sessionMode tracks which screen the session is showing.
type sessionMode int

const (
	modeTitle sessionMode = iota
	modeGame
	modeScores
)

// Title screen entries, in display order.
var titleItems = []string{"Play", "High Scores", "Quit"}

// SessionModel manages the full session flow: title -> game <-> scoreboard.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	gameID     string
	mode       sessionMode
	cursor     int
	keys       *KeyMapper
	game       registry.Game
	screen     *core.Screen
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard ScoreboardModel
	scoreSaved bool
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameID, username string) SessionModel {
	return SessionModel{
		store:      store,
		config:     cfg,
		username:   username,
		gameID:     gameID,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateTitle(msg)
	}
}

// updateTitle handles the title screen.
func (m SessionModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.MapKeyToMenuAction(keyMsg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(titleItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch titleItems[m.cursor] {
		case "Play":
			return m.startGame()
		case "High Scores":
			title := m.gameID
			for _, info := range registry.List() {
				if info.ID == m.gameID {
					title = info.Title
					break
				}
			}
			m.scoreboard = NewScoreboardModel(m.store, m.gameID, title,
				m.config.ScreenW, m.config.ScreenH, m.config.TickRate)
			m.mode = modeScores
		case "Quit":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// startGame creates and resets the game and switches to game mode.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		// Shouldn't happen since the ID comes from the registry
		return m, nil
	}

	m.config.Seed = time.Now().UnixNano()
	game.Reset(m.config)

	m.game = game
	m.gameState = game.State()
	m.inputFrame.Clear()
	m.scoreSaved = false
	m.mode = modeGame

	return m, tickCmd(m.config.TickRate)
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}

		// Back to title when paused or finished
		if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.mode = modeTitle
			m.game = nil
			return m, nil
		}

		if action == core.ActionRestart && !m.gameState.GameOver {
			return m, nil
		}
		if action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case TickMsg:
		return m.handleGameTick()
	}

	return m, nil
}

// handleGameTick advances the simulation one tick.
func (m SessionModel) handleGameTick() (tea.Model, tea.Cmd) {
	if m.game == nil {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			outcome := storage.OutcomeLoss
			if m.gameState.Won {
				outcome = storage.OutcomeWin
			}
			//nolint:errcheck // Best-effort save
			m.store.SaveScore(m.game.ID(), m.gameState.Score, outcome, int64(m.gameState.Tick))
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// updateScores handles the scoreboard screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.mode = modeTitle
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		if m.game != nil {
			m.game.Render(m.screen)
			return RenderScreen(m.screen)
		}
		return ""
	case modeScores:
		return m.scoreboard.View()
	default:
		return m.viewTitle()
	}
}

// viewTitle renders the title screen.
func (m SessionModel) viewTitle() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(centerText("S P A C E   I N V A D E R S", m.config.ScreenW)))
	b.WriteString("\n\n")

	greeting := "Defend the Earth"
	if m.username != "" {
		greeting = "Defend the Earth, " + m.username
	}
	b.WriteString(centerText(greeting, m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range titleItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item, m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
