package wheelterm

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/flipclock/pkg/animation"
	"github.com/go-drift/flipclock/pkg/wheel"
)

// framesPerSecond is the display cadence the model requests from Bubble
// Tea. The scheduler throttles its own work ticks below this rate.
const framesPerSecond = 30

// frameMsg signals one display frame.
type frameMsg time.Time

type keyMap struct {
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea program driving a wheel display. Each frame
// message steps the animation frame loop, which advances the scheduler
// and every in-flight digit roll.
type Model struct {
	surface   *Surface
	scheduler *wheel.Scheduler
	keys      keyMap
	help      help.Model
	complete  bool
	width     int
}

// New builds the surface and scheduler for the given engine config.
func New(cfg wheel.Config) *Model {
	m := &Model{
		surface: NewSurface(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	done := cfg.OnComplete
	cfg.OnComplete = func() {
		m.complete = true
		if done != nil {
			done()
		}
	}
	m.scheduler = wheel.NewScheduler(m.surface, cfg)
	return m
}

func (m *Model) Init() tea.Cmd {
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		animation.StepTickers()
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.scheduler.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) View() string {
	body := m.surface.View()
	if m.complete {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			lipgloss.NewStyle().Bold(true).Render("Time's up!"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}
