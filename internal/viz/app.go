package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algodyssey/internal/config"
	"github.com/san-kum/algodyssey/internal/experiment"
	"github.com/san-kum/algodyssey/internal/player"
	"github.com/san-kum/algodyssey/internal/trace"
	"go.uber.org/zap"
)

// StepMsg delivers one played step to its card. Gen ties it to the run that
// produced it so steps from a cancelled run are dropped.
type StepMsg struct {
	Card int
	Gen  int
	Step trace.Step
}

type DoneMsg struct {
	Card int
	Gen  int
}

// ConfigMsg carries a reloaded config file.
type ConfigMsg struct {
	Config *config.Config
}

// cardState is everything one card owns. Each card has its own player, so
// runs on different cards never share a guard or a timer.
type cardState struct {
	card   experiment.Card
	player *player.Player
	cancel context.CancelFunc
	steps  <-chan trace.Step
	gen    int

	run    *trace.Run
	index  int
	cur    *trace.Step
	values trace.Sequence
	sums   []float64
	done   bool
	err    error
}

func (c *cardState) running() bool { return c.player.Running() }

func (c *cardState) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

type App struct {
	registry *experiment.Registry
	cards    []*cardState
	focus    int
	theme    Theme
	styles   styles
	delay    time.Duration
	target   int
	input    textinput.Model
	editing  bool
	status   string
	width    int
	ctx      context.Context
	cancel   context.CancelFunc
	log      *zap.Logger
}

func NewApp(registry *experiment.Registry, cfg *config.Config, log *zap.Logger) App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprint(config.DefaultTarget)
	ti.CharLimit = 8
	ti.Width = 10
	ti.Prompt = "target> "

	ctx, cancel := context.WithCancel(context.Background())
	theme := GetTheme(cfg.Theme)
	app := App{
		registry: registry,
		theme:    theme,
		styles:   newStyles(theme),
		delay:    cfg.Delay,
		target:   cfg.Target,
		input:    ti,
		width:    3 * (cardWidth + 2),
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
	}

	for _, card := range registry.Cards() {
		if data := cfg.Dataset(card.Key); data != nil {
			card.Data = data
		}
		if card.Searches {
			card.Target = cfg.Target
		}
		app.cards = append(app.cards, &cardState{
			card:   card,
			player: player.New(cfg.Delay, log.Named(card.Key)),
			index:  -1,
			values: card.Data.Clone(),
		})
	}

	return app
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case StepMsg:
		return m.onStep(msg)
	case DoneMsg:
		return m.onDone(msg)
	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.shutdown()
		return m, tea.Quit
	case "left", "h", "shift+tab":
		m.focus = (m.focus + len(m.cards) - 1) % len(m.cards)
	case "right", "l", "tab":
		m.focus = (m.focus + 1) % len(m.cards)
	case "enter", " ":
		return m.start(m.focus)
	case "d":
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)
	case "/":
		m.editing = true
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m App) editKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.setTarget(config.ParseTarget(m.input.Value(), config.DefaultTarget))
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc", "ctrl+c":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *App) setTarget(t int) {
	m.target = t
	for _, c := range m.cards {
		if c.card.Searches {
			c.card.Target = t
		}
	}
	m.status = fmt.Sprintf("target set to %d", t)
}

// start plays the card's trace. A card that is already animating ignores
// the request.
func (m App) start(i int) (App, tea.Cmd) {
	c := m.cards[i]
	if c.running() {
		m.status = c.card.Name + " is already running"
		return m, nil
	}

	target := c.card.Target
	run, err := experiment.RunCard(m.ctx, m.registry, c.card.Key, c.card.Data, &target, m.log)
	if err != nil {
		c.err = err
		m.status = err.Error()
		return m, nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	steps, err := c.player.Stream(ctx, run.Trace)
	if err != nil {
		cancel()
		if errors.Is(err, player.ErrBusy) {
			m.status = c.card.Name + " is already running"
		} else {
			m.status = err.Error()
		}
		return m, nil
	}

	c.stop()
	c.cancel = cancel
	c.steps = steps
	c.gen++
	c.run = run
	c.index = -1
	c.cur = nil
	c.values = run.Input.Clone()
	c.sums = nil
	c.done = false
	c.err = nil
	m.status = ""

	return m, waitForStep(i, c.gen, steps)
}

func waitForStep(card, gen int, steps <-chan trace.Step) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-steps
		if !ok {
			return DoneMsg{Card: card, Gen: gen}
		}
		return StepMsg{Card: card, Gen: gen, Step: s}
	}
}

func (m App) onStep(msg StepMsg) (App, tea.Cmd) {
	if msg.Card < 0 || msg.Card >= len(m.cards) {
		return m, nil
	}
	c := m.cards[msg.Card]
	if msg.Gen != c.gen {
		return m, nil
	}

	s := msg.Step
	c.index++
	c.cur = &s
	if s.Values != nil {
		c.values = s.Values.Clone()
	}
	if s.Kind == trace.KindScan {
		c.sums = append(c.sums, float64(s.Sum))
	}
	return m, waitForStep(msg.Card, msg.Gen, c.steps)
}

func (m App) onDone(msg DoneMsg) (App, tea.Cmd) {
	if msg.Card < 0 || msg.Card >= len(m.cards) {
		return m, nil
	}
	c := m.cards[msg.Card]
	if msg.Gen != c.gen {
		return m, nil
	}

	c.done = c.run != nil && c.index+1 == len(c.run.Trace)
	c.stop()
	c.steps = nil
	if c.player.Delay() != m.delay && !c.running() {
		c.player = player.New(m.delay, m.log.Named(c.card.Key))
	}
	return m, nil
}

// applyConfig swaps delay and theme. Running cards keep their player until
// they finish so the guard is never bypassed.
func (m *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = GetTheme(cfg.Theme)
	m.styles = newStyles(m.theme)
	m.delay = cfg.Delay
	for _, c := range m.cards {
		if !c.running() && c.player.Delay() != cfg.Delay {
			c.player = player.New(cfg.Delay, m.log.Named(c.card.Key))
		}
	}
	m.status = "config reloaded"
	m.log.Info("config reloaded", zap.Duration("delay", cfg.Delay), zap.String("theme", cfg.Theme))
}

// shutdown cancels every card's run, the terminal analogue of unmounting.
func (m *App) shutdown() {
	for _, c := range m.cards {
		c.stop()
	}
	m.cancel()
}

func (m App) View() string {
	var s strings.Builder

	s.WriteString(GradientText("ALGODYSSEY", m.theme.Primary, m.theme.Secondary))
	s.WriteString("  " + m.styles.muted.Render(m.theme.Name+" mode") + "\n")
	s.WriteString(Separator(min(m.width, 3*(cardWidth+2)), m.styles.muted) + "\n\n")

	views := make([]string, len(m.cards))
	for i, c := range m.cards {
		views[i] = m.cardView(c, i == m.focus)
	}
	if m.width >= 3*(cardWidth+2) {
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
	} else {
		s.WriteString(lipgloss.JoinVertical(lipgloss.Left, views...))
	}
	s.WriteString("\n")

	if m.editing {
		s.WriteString(m.input.View() + "\n")
	} else if m.status != "" {
		s.WriteString(m.styles.status.Render(m.status) + "\n")
	}
	s.WriteString(m.styles.keyHint.Render("←/→ focus · enter run · / target · d theme · q quit"))
	return s.String()
}

func (m App) cardView(c *cardState, focused bool) string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render(c.card.Name) + "  " + m.styles.badge.Render(c.card.Complexity) + "\n")
	s.WriteString(m.styles.text.Render(c.card.Description) + "\n\n")
	if c.card.Searches {
		s.WriteString(m.styles.muted.Render(fmt.Sprintf("target %d", c.card.Target)) + "\n")
	}
	s.WriteString(m.cells(c.values, m.highlight(c, focused)) + "\n\n")

	switch {
	case c.err != nil:
		s.WriteString(m.styles.errText.Render(c.err.Error()) + "\n")
	case c.cur != nil:
		s.WriteString(m.styles.muted.Render(fmt.Sprintf("step %d/%d", c.index+1, len(c.run.Trace))) + "\n")
		s.WriteString(c.cur.String() + "\n")
		if c.done {
			s.WriteString(m.styles.status.Render(c.run.Summary()) + "\n")
		}
	case c.done:
		s.WriteString(m.styles.status.Render(c.run.Summary()) + "\n")
	}

	if len(c.sums) > 1 {
		graph := asciigraph.Plot(c.sums,
			asciigraph.Height(4),
			asciigraph.Width(cardWidth-12),
			asciigraph.Caption("running sum"),
		)
		s.WriteString(m.styles.graph.Render(graph) + "\n")
	}

	if focused && !c.running() {
		s.WriteString("\n" + m.styles.code.Render(c.card.Pseudocode) + "\n")
	}

	if focused {
		return m.styles.glow.Render(s.String())
	}
	return m.styles.card.Render(s.String())
}

// highlight picks the lit cells: the current step while a run is shown,
// otherwise the card's hover highlight when focused.
func (m App) highlight(c *cardState, focused bool) []int {
	if c.cur != nil {
		return c.cur.Highlight()
	}
	if focused {
		return c.card.HoverHighlight()
	}
	return nil
}

func (m App) cells(values trace.Sequence, lit []int) string {
	on := make(map[int]bool, len(lit))
	for _, i := range lit {
		on[i] = true
	}
	parts := make([]string, len(values))
	for i, v := range values {
		if on[i] {
			parts[i] = m.styles.lit.Render(fmt.Sprint(v))
		} else {
			parts[i] = m.styles.cell.Render(fmt.Sprint(v))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the card UI and, when configPath is set, reloads it on change.
func Run(app App, configPath string) error {
	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath,
				func(cfg *config.Config) { p.Send(ConfigMsg{Config: cfg}) },
				func(err error) { app.log.Warn("config reload failed", zap.Error(err)) },
			)
			if err != nil && !errors.Is(err, context.Canceled) {
				app.log.Warn("config watch stopped", zap.Error(err))
			}
		}()
	}

	_, err := p.Run()
	app.shutdown()
	return err
}
