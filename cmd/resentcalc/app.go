package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/resentcalc/internal/engine"
	"github.com/jwebster45206/resentcalc/internal/events"
	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/internal/storage"
	"github.com/jwebster45206/resentcalc/pkg/minesweeper"
	"github.com/jwebster45206/resentcalc/pkg/sound"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

const (
	PlaceHolderText = "Type an expression and press Enter..."
	oracleTimeout   = 30 * time.Second
	publishTimeout  = 5 * time.Second
)

// AppDeps wires the runtime to the engine and its collaborators.
type AppDeps struct {
	Engine      *engine.Engine
	Model       engine.Model
	Oracle      oracle.Oracle
	Persistence *storage.Persistence
	Broadcaster *events.Broadcaster // nil when not broadcasting
	Player      sound.Player
	Logger      *slog.Logger
}

// App is the BubbleTea model. It owns nothing narrative: every decision is
// made by engine.Update and App only carries out the returned effects.
// https://github.com/charmbracelet/bubbletea
type App struct {
	deps  AppDeps
	model engine.Model

	input    textinput.Model
	history  viewport.Model
	board    *minesweeper.Board
	row, col int

	width, height int
	ready         bool
	showHelp      bool
	showHistory   bool
	notice        string
}

type tickMsg struct{}

// noticeMsg surfaces a runtime message (clipboard, bad command) in the status line.
type noticeMsg string

func NewApp(deps AppDeps) App {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	if deps.Player == nil {
		deps.Player = sound.Muted{}
	}

	return App{
		deps:    deps,
		model:   deps.Model,
		input:   ti,
		history: viewport.New(60, 12),
		board:   minesweeper.New(minesweeper.DefaultSize, minesweeper.DefaultMines, nil),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tick(),
		func() tea.Msg { return engine.Start{} },
	)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.input.Width = max(20, a.width-10)
		a.history.Width = max(20, a.width-8)
		a.history.Height = max(5, a.height-10)
		a.ready = true
		return a, nil

	case tickMsg:
		next, cmd := a.dispatch(engine.Tick{})
		return next, tea.Batch(cmd, tick())

	case noticeMsg:
		a.notice = string(msg)
		return a, nil

	case engine.Command:
		return a.dispatch(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// dispatch runs one command through the engine and turns its effects into
// BubbleTea commands.
func (a App) dispatch(cmd engine.Command) (App, tea.Cmd) {
	var effects []engine.Effect
	a.model, effects = a.deps.Engine.Update(a.model, cmd)
	return a, a.perform(effects)
}

func (a App) perform(effects []engine.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case engine.PlayCue:
			cmds = append(cmds, a.play(e.Cue))
		case engine.Schedule:
			cmds = append(cmds, schedule(e))
		case engine.CallOracle:
			cmds = append(cmds, a.calculate(e))
		case engine.FetchGreeting:
			cmds = append(cmds, a.greet(e))
		case engine.Save:
			// Persistence runs inline so saves and clears keep their order.
			if _, err := a.deps.Persistence.Save(context.Background(), e.Snapshot, e.Epoch); err != nil {
				a.deps.Logger.Error("Failed to save snapshot", "error", err, "epoch", e.Epoch)
			}
		case engine.ClearSave:
			if err := a.deps.Persistence.Clear(context.Background(), e.Epoch); err != nil {
				a.deps.Logger.Error("Failed to clear snapshot", "error", err, "epoch", e.Epoch)
			}
		case engine.Notify:
			cmds = append(cmds, a.publish(e.Event))
		}
	}
	return tea.Batch(cmds...)
}

func (a App) play(c sound.Cue) tea.Cmd {
	player := a.deps.Player
	return func() tea.Msg {
		player.Play(c)
		return nil
	}
}

func schedule(e engine.Schedule) tea.Cmd {
	return tea.Tick(e.After, func(time.Time) tea.Msg {
		return engine.TimerFired{Timer: e.Timer, Gen: e.Gen}
	})
}

func (a App) calculate(e engine.CallOracle) tea.Cmd {
	o := a.deps.Oracle
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), oracleTimeout)
		defer cancel()
		resp, err := o.Calculate(ctx, e.Request)
		return engine.OracleResult{Token: e.Token, Response: resp, Err: err}
	}
}

func (a App) greet(e engine.FetchGreeting) tea.Cmd {
	o := a.deps.Oracle
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), oracleTimeout)
		defer cancel()
		resp, err := o.Greeting(ctx, e.Hostility, e.Day)
		return engine.GreetingResult{Token: e.Token, Response: resp, Err: err}
	}
}

func (a App) publish(ev engine.Event) tea.Cmd {
	b := a.deps.Broadcaster
	if b == nil {
		return nil
	}
	log := a.deps.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := publishEvent(ctx, b, ev); err != nil {
			log.Warn("Milestone not broadcast", "error", err, "kind", ev.Kind)
		}
		return nil
	}
}

func publishEvent(ctx context.Context, b *events.Broadcaster, ev engine.Event) error {
	switch ev.Kind {
	case engine.EventDayLanded:
		return b.PublishDayLanded(ctx, ev.Day)
	case engine.EventMoodDiscovered:
		return b.PublishMoodDiscovered(ctx, ev.Day, ev.Mood)
	case engine.EventEndingUnlocked:
		return b.PublishEndingUnlocked(ctx, ev.Day, ev.Ending)
	case engine.EventReboot:
		return b.PublishReboot(ctx, ev.Day)
	case engine.EventWipe:
		return b.PublishWipe(ctx, ev.Day)
	}
	return nil
}

func (a App) state() *state.NarrativeState {
	return a.model.State
}

// minigame reports whether keys drive the minesweeper board.
func (a App) minigame() bool {
	s := a.state()
	return s.Day.IsInterlude() && s.Phase == state.PhaseNone && !s.Transitioning && !a.model.Sequencing()
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.showHelp, a.showHistory, a.notice = false, false, ""
		return a.dispatch(engine.CloseOverlays{})
	}

	if a.showHistory {
		var cmd tea.Cmd
		a.history, cmd = a.history.Update(msg)
		return a, cmd
	}

	s := a.state()
	if node := a.model.Node(); node != nil && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			return a.dispatch(engine.Choose{Index: int(r - '1')})
		}
	}
	if a.minigame() && !s.CheatConsole && a.input.Value() == "" {
		if next, cmd, ok := a.handleBoardKey(msg); ok {
			return next, cmd
		}
	}

	if msg.Type == tea.KeyEnter {
		return a.submit()
	}

	var cmds []tea.Cmd
	if msg.Type == tea.KeyRunes {
		var cmd tea.Cmd
		a, cmd = a.dispatch(engine.Keystroke{Key: string(msg.Runes)})
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a App) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.input.Value())
	a.input.Reset()
	a.notice = ""

	if a.state().CheatConsole && !strings.HasPrefix(text, "/") {
		return a.dispatch(engine.Cheat{Text: text})
	}
	if strings.HasPrefix(text, "/") {
		return a.handleSlash(text)
	}
	return a.dispatch(engine.Submit{Expression: text})
}

func (a App) handleBoardKey(msg tea.KeyMsg) (App, tea.Cmd, bool) {
	b := a.board
	switch msg.String() {
	case "up", "k":
		a.row = max(0, a.row-1)
	case "down", "j":
		a.row = min(b.Size-1, a.row+1)
	case "left", "h":
		a.col = max(0, a.col-1)
	case "right", "l":
		a.col = min(b.Size-1, a.col+1)
	case "f":
		if err := b.ToggleFlag(a.row, a.col); err != nil {
			return a, nil, true
		}
		return a, a.play(sound.Click), true
	case " ", "enter":
		if b.Status == minesweeper.Lost {
			b.Reset()
			return a, nil, true
		}
		status, err := b.Reveal(a.row, a.col)
		if err != nil {
			return a, nil, true
		}
		switch status {
		case minesweeper.Lost:
			a.notice = "BOOM. Press space to try again."
			return a, a.play(sound.Explode), true
		case minesweeper.Won:
			a.board = minesweeper.New(b.Size, b.Mines, nil)
			a.row, a.col = 0, 0
			next, cmd := a.dispatch(engine.MinigameComplete{})
			return next, cmd, true
		}
		return a, a.play(sound.Click), true
	default:
		return a, nil, false
	}
	return a, nil, true
}
