package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flytype/internal/arena"
	"github.com/vovakirdan/flytype/internal/audio"
	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
	"github.com/vovakirdan/flytype/internal/textgen"
	"github.com/vovakirdan/flytype/internal/typing"
)

// maxFrameGap caps the simulated time of one frame so a stalled terminal
// does not teleport the bird.
const maxFrameGap = 100 * time.Millisecond

type view int

const (
	viewHome view = iota
	viewFlight
	viewResults
)

// Options holds everything a Model is built from.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Player  audio.Player
}

// sessionState is the part of the model written from arena and
// orchestrator callbacks, so it lives behind a pointer.
type sessionState struct {
	settings typing.Settings
	launch   bool
	stats    typing.Stats
	done     bool
	history  []typing.Results
}

// Model is the Bubble Tea model for a flytype session: option menu,
// flight rounds and results.
type Model struct {
	cfg    config.Config
	rt     core.RuntimeConfig
	logger *log.Logger

	arena *arena.Arena
	orch  *typing.Orchestrator
	state *sessionState

	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	hold      *HoldTracker
	table     table.Model
	view      view
	cursor    int
	lastFrame time.Time
	lastRound int
	width     int
	height    int
	quitting  bool
}

// NewModel creates a session model.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = audio.NopPlayer{}
	}

	rng := core.NewRand(rt.Seed)
	st := &sessionState{settings: typing.DefaultSettings(opts.Config.Run)}
	ar := arena.New(opts.Config, rng)
	orch := typing.New(ar, textgen.New(rng, opts.Config.Run), rng,
		typing.WithLogger(logger),
		typing.WithHooks(typing.Hooks{
			OnStats: func(s typing.Stats) { st.stats = s },
			OnResults: func(r typing.Results) {
				st.done = true
				st.history = append(st.history, r)
			},
			OnEvent: func(e typing.Event) { player.Play(audio.CueFor(e)) },
		}),
	)

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		cfg:    opts.Config,
		rt:     rt,
		logger: logger,
		arena:  ar,
		orch:   orch,
		state:  st,
		screen: core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   h,
		hold:   NewHoldTracker(opts.Config.Input),
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}
	m.table = newResultsTable(m.width, m.height)
	return m
}

// Init starts the frame and check timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.rt.TickRate), checkCmd(m.cfg.Run.CheckInterval()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		m.table = newResultsTable(m.width, m.height)
		m.table.SetRows(historyRows(m.state.history))
		return m, nil

	case TickMsg:
		m.handleFrame(time.Time(msg))
		return m, tickCmd(m.rt.TickRate)

	case CheckMsg:
		m.orch.Check()
		m = m.syncView()
		return m, checkCmd(m.cfg.Run.CheckInterval())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.orch.Finish()
		m.arena.Cancel()
		return m, tea.Quit
	}

	switch m.view {
	case viewHome:
		m = m.handleHomeKey(action, now)
	case viewFlight:
		m = m.handleFlightKey(action, now)
	case viewResults:
		var cmd tea.Cmd
		m, cmd = m.handleResultsKey(msg, action)
		return m, cmd
	}

	return m.syncView(), nil
}

func (m Model) handleHomeKey(action core.Action, now time.Time) Model {
	switch action {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(typing.OptionKeys)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		if m.hold.Press(action, now) {
			m.openOption(typing.OptionKeys[m.cursor])
			m.view = viewFlight
		}
	}
	return m
}

func (m Model) handleFlightKey(action core.Action, now time.Time) Model {
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.hold.Press(action, now)

	case core.ActionConfirm:
		if m.hold.Press(action, now) {
			m.arena.Confirm()
		}
		if m.state.launch {
			m.state.launch = false
			m.startRun()
		}

	case core.ActionBack:
		if m.orch.Phase() == typing.PhaseRunning {
			m.orch.Finish()
		} else {
			m.arena.Cancel()
		}
	}
	return m
}

func (m Model) handleResultsKey(msg tea.KeyMsg, action core.Action) (Model, tea.Cmd) {
	switch action {
	case core.ActionRestart:
		m.startRun()
		return m.syncView(), nil
	case core.ActionBack:
		m.view = viewHome
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openOption starts an arena round for choosing option k.
func (m Model) openOption(k typing.OptionKey) {
	title, items := typing.OptionRound(k, m.state.settings, m.cfg.Run)
	st, rc, logger := m.state, m.cfg.Run, m.logger
	m.arena.Start(items, title, func(value string) {
		st.launch = typing.ApplyOption(k, value, &st.settings, rc)
		logger.Debug("option chosen", "option", k.Label(), "value", value)
	})
}

// startRun begins a typing run with the current settings.
func (m Model) startRun() {
	m.hold.ReleaseDirections()
	m.orch.Start(m.state.settings)
}

// syncView moves between screens after the arena or the run changed state.
func (m Model) syncView() Model {
	switch {
	case m.state.done:
		m.state.done = false
		m.view = viewResults
		m.table.SetRows(historyRows(m.state.history))
		m.table.GotoBottom()
	case m.orch.Phase() == typing.PhaseRunning:
		m.view = viewFlight
	case m.view == viewFlight && !m.arena.Active():
		m.view = viewHome
	}
	return m
}

// handleFrame advances the arena to frame time t.
func (m *Model) handleFrame(t time.Time) {
	dt := time.Second / time.Duration(m.rt.TickRate)
	if !m.lastFrame.IsZero() {
		if gap := t.Sub(m.lastFrame); gap > 0 {
			dt = min(gap, maxFrameGap)
		}
	}
	m.lastFrame = t

	// Directions held for the previous round do not carry into the next one
	if r := m.arena.Round(); r != m.lastRound {
		m.hold.ReleaseDirections()
		m.lastRound = r
	}
	if !m.hold.Held(core.ActionConfirm, t) {
		m.arena.ReleaseConfirm()
	}

	m.arena.SetControls(m.hold.Controls(t))
	m.arena.Advance(dt)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewFlight:
		return m.flightView()
	case viewResults:
		return m.resultsView()
	default:
		return m.homeView()
	}
}

// flightView renders the HUD and the arena.
func (m Model) flightView() string {
	m.screen.Clear()

	if m.orch.Phase() == typing.PhaseRunning {
		drawStats(m.screen, 0, m.state.stats, m.orch.Expected())
		drawSnippet(m.screen, 1, m.orch.Target(), m.orch.Judgements(), m.orch.Cursor())
	} else {
		m.screen.DrawTextCentered(0, "Options", core.ColorWhite)
		m.screen.DrawTextCentered(1, m.settingsSummary(), core.ColorPending)
	}
	drawRule(m.screen, hudHeight-1)

	area := core.NewRect(0, hudHeight, m.screen.Width(), m.screen.Height()-hudHeight)
	m.arena.Render(m.screen, area)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local session on the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
