// Package tui hosts the toast world in a terminal frame loop. It is a demo
// and development surface: a real product would embed the toast plugin in
// its own render loop the same way.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/toastbox/internal/config"
	"github.com/jmylchreest/toastbox/internal/ecs"
	"github.com/jmylchreest/toastbox/internal/scenario"
	"github.com/jmylchreest/toastbox/internal/timer"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// demoState is the host state the toast systems are gated on.
type demoState int

const (
	statePlaying demoState = iota
	statePaused
)

// tickMsg drives the frame loop.
type tickMsg time.Time

// maxFrameDelta caps dt after a stall so animations skip, not explode.
const maxFrameDelta = 250 * time.Millisecond

// Options configures the demo model.
type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// Player optionally replays a compiled scenario into the world.
	Player *scenario.Player

	// ConfigReloads optionally delivers hot-reloaded configs from a watcher.
	ConfigReloads <-chan *config.Config
}

// Model is the demo host's bubbletea model.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	world  *ecs.World
	toasts *toast.Systems
	state  *demoState

	base    toast.Request
	anchor  toast.Anchor
	spawned int

	// spam auto-spawns a toast every wrap while enabled.
	spam   *timer.Timer
	spamOn bool

	reloads <-chan *config.Config

	keys     KeyMap
	help     help.Model
	showHelp bool

	width    int
	height   int
	started  time.Time
	lastTick time.Time
}

// NewModel builds the demo world and registers the toast plugin gated on
// the play/pause state.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base, err := cfg.BaseRequest()
	if err != nil {
		return nil, err
	}
	fade, err := cfg.FadeDuration()
	if err != nil {
		return nil, err
	}

	state := statePlaying
	w := ecs.NewWorld()
	toasts := toast.PluginInStates[demoState]{
		Plugin:  toast.Plugin{Logger: logger, Fade: fade},
		Current: func() demoState { return state },
		States:  []demoState{statePlaying},
	}.Register(w)

	m := &Model{
		cfg:     cfg,
		logger:  logger,
		world:   w,
		toasts:  toasts,
		state:   &state,
		base:    base,
		anchor:  base.Anchor,
		reloads: opts.ConfigReloads,
		spam:    timer.FromSeconds(1, timer.Repeating),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}

	if opts.Player != nil {
		sys := opts.Player.System(toasts.Send)
		w.AddSystem(ecs.RunIf(sys, func() bool { return state == statePlaying }))
	}

	return m, nil
}

// Send enqueues a toast request. Safe to call from other goroutines, so a
// notification monitor can feed the world directly.
func (m *Model) Send(req toast.Request) {
	m.toasts.Send(req)
}

func (m *Model) frameInterval() time.Duration {
	fps := m.cfg.Demo.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.drainReloads()
		now := time.Time(msg)
		dt := m.frameInterval()
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
			if dt < 0 {
				dt = 0
			}
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
		}
		m.lastTick = now
		if m.spamOn && *m.state == statePlaying {
			m.spam.Tick(dt)
			if m.spam.JustFinished() {
				m.spawnToast(false)
			}
		}
		m.world.Step(dt)
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Pause):
		if *m.state == statePlaying {
			*m.state = statePaused
		} else {
			*m.state = statePlaying
		}

	case key.Matches(msg, m.keys.NextAnchor):
		m.anchor = toast.Anchors[(int(m.anchor)+1)%len(toast.Anchors)]

	case key.Matches(msg, m.keys.Spawn):
		m.spawnToast(false)

	case key.Matches(msg, m.keys.Sticky):
		m.spawnToast(true)

	case key.Matches(msg, m.keys.Spam):
		m.spamOn = !m.spamOn
		m.spam.Reset()

	case key.Matches(msg, m.keys.Hover):
		m.hoverNext()

	case key.Matches(msg, m.keys.Press):
		if e, ok := m.hovered(); ok {
			m.toasts.SetInteraction(e, toast.InteractionPressed)
		}
	}
	return m, nil
}

// spawnToast sends one request at the current anchor. Sticky toasts get a
// zero show time, so only a press removes them.
func (m *Model) spawnToast(sticky bool) {
	m.spawned++
	req := m.base
	req.Anchor = m.anchor
	text := fmt.Sprintf("toast #%d", m.spawned)
	if sticky {
		req.ShowTime = 0
		text = fmt.Sprintf("sticky #%d (press to dismiss)", m.spawned)
	}
	req.Sections = []toast.TextSection{{
		Text:     text,
		FontSize: toast.DefaultFontSize,
		Color:    toast.White,
	}}
	m.toasts.Send(req)
}

// hovered finds the toast the simulated pointer sits on. The pointer state
// lives on the interaction component itself, so despawn clears it for free.
func (m *Model) hovered() (ecs.Entity, bool) {
	for _, v := range liveToasts(m.toasts) {
		if st, ok := m.toasts.InteractionState(v.entity); ok && st != toast.InteractionNone {
			return v.entity, true
		}
	}
	return ecs.Entity{}, false
}

// hoverNext moves the simulated pointer to the next toast in spawn order.
func (m *Model) hoverNext() {
	views := liveToasts(m.toasts)
	if len(views) == 0 {
		return
	}

	current := -1
	for i, v := range views {
		if st, ok := m.toasts.InteractionState(v.entity); ok && st != toast.InteractionNone {
			current = i
			break
		}
	}

	if current >= 0 {
		m.toasts.SetInteraction(views[current].entity, toast.InteractionNone)
	}
	next := views[(current+1)%len(views)]
	m.toasts.SetInteraction(next.entity, toast.InteractionHovered)
}

// drainReloads applies any hot-reloaded configs delivered since last frame.
func (m *Model) drainReloads() {
	if m.reloads == nil {
		return
	}
	for {
		select {
		case cfg := <-m.reloads:
			base, err := cfg.BaseRequest()
			if err != nil {
				m.logger.Warn("ignoring reloaded config", "error", err)
				continue
			}
			m.cfg = cfg
			m.base = base
			m.logger.Info("applied reloaded config")
		default:
			return
		}
	}
}

var footerStyle = lipgloss.NewStyle().Faint(true)

// View renders the blank canvas, overlays each live toast at its anchor,
// and appends a status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	footer := m.footer()
	footerHeight := lipgloss.Height(footer)
	canvasHeight := m.height - footerHeight
	if canvasHeight < 1 {
		canvasHeight = 1
	}

	canvas := lipgloss.Place(m.width, canvasHeight, lipgloss.Left, lipgloss.Top, "")
	for _, v := range liveToasts(m.toasts) {
		hovered := false
		if st, ok := m.toasts.InteractionState(v.entity); ok && st != toast.InteractionNone {
			hovered = true
		}
		layer := renderToast(v, hovered, m.width, canvasHeight)
		canvas = compose(canvas, layer, m.width)
	}

	return canvas + "\n" + footer
}

func (m *Model) footer() string {
	status := fmt.Sprintf("%d live | anchor %s | up %s",
		m.toasts.Count(),
		m.anchor,
		humanize.Time(m.started))
	if m.spamOn {
		status += " | auto-spawn"
	}
	if *m.state == statePaused {
		status += " | PAUSED"
	}
	return footerStyle.Render(status) + "\n" + m.help.View(m.keys)
}
