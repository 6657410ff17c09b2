package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/resentcalc/internal/engine"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

const helpText = `Commands:
• /help              Show this help
• /history           Browse past calculations (Esc to close)
• /copy              Copy the last answer to the clipboard
• /clear             AC
• /skip              Skip to the end of the day
• /sound             Toggle sound
• /force <MOOD>      Force a discovered mood for the next calculation
• /sandbox           Enter sandbox mode (once unlocked)
• /hostility <n>     Set hostility (sandbox)
• /unlockall         Unlock every standard mood and ending (sandbox)
• /cycle             Cycle through discovered moods (sandbox)
• /mines             Peek at the minesweeper board
• /reboot            Start the week over, keeping discoveries
• /wipe              Forget everything
• /quit              Quit
Finale: press 1-9 to choose. Minesweeper: arrows move, space reveals, f flags.`

// slash is a parsed "/command arg".
type slash struct {
	name string
	arg  string
}

func parseSlash(input string) slash {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	name, arg, _ := strings.Cut(input, " ")
	return slash{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}
}

// toCommand maps slash commands that are plain engine commands.
func (s slash) toCommand() (engine.Command, error) {
	switch s.name {
	case "clear", "ac":
		return engine.Clear{}, nil
	case "skip":
		return engine.Skip{}, nil
	case "sound":
		return engine.ToggleSound{}, nil
	case "sandbox":
		return engine.EnterSandbox{}, nil
	case "unlockall":
		return engine.UnlockAll{}, nil
	case "cycle":
		return engine.ToggleCycle{}, nil
	case "reboot":
		return engine.Reboot{}, nil
	case "wipe":
		return engine.Wipe{}, nil
	case "force":
		m, ok := mood.Parse(s.arg)
		if !ok {
			return nil, fmt.Errorf("unknown mood %q", s.arg)
		}
		return engine.ForceMood{Mood: m}, nil
	case "hostility":
		v, err := strconv.Atoi(s.arg)
		if err != nil {
			return nil, fmt.Errorf("hostility must be a number: %w", err)
		}
		return engine.SetHostility{Value: v}, nil
	}
	return nil, fmt.Errorf("unknown command /%s", s.name)
}

func (a App) handleSlash(input string) (tea.Model, tea.Cmd) {
	s := parseSlash(input)

	switch s.name {
	case "quit", "exit":
		return a, tea.Quit
	case "help":
		a.showHelp = !a.showHelp
		return a, nil
	case "history":
		a.showHistory = true
		a.history.SetContent(renderHistory(a.state().History, a.history.Width))
		a.history.GotoBottom()
		return a, nil
	case "copy":
		return a, copyAnswer(a.state().Result, a.state().Comment)
	case "mines":
		a.board.Cheating = !a.board.Cheating
		return a, nil
	}

	cmd, err := s.toCommand()
	if err != nil {
		a.notice = err.Error()
		return a, nil
	}
	return a.dispatch(cmd)
}

func copyAnswer(result, comment string) tea.Cmd {
	return func() tea.Msg {
		text := strings.TrimSpace(result + " " + comment)
		if text == "" {
			return noticeMsg("Nothing to copy.")
		}
		if err := clipboard.WriteAll(text); err != nil {
			return noticeMsg("Clipboard unavailable: " + err.Error())
		}
		return noticeMsg("Copied.")
	}
}
