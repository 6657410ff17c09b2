package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/minesweeper"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/rules"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")) // terminal green

	outageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(1, 4)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
)

// moodStyle colors text with the mood's accent.
func moodStyle(m mood.Mood) lipgloss.Style {
	d, ok := mood.Lookup(m)
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color))
}

func (a App) View() string {
	if !a.ready {
		return "\n  Initializing..."
	}
	s := a.state()
	width := max(30, a.width-4)

	if s.OutageText != "" {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			outageStyle.Render(s.OutageText))
	}
	if s.Phase.Terminal() {
		return a.renderEnding(width)
	}

	var body string
	switch {
	case a.showHelp:
		body = modalStyle.Render(helpText)
	case a.showHistory:
		body = modalStyle.Render(titleStyle.Render("HISTORY") + "\n\n" + a.history.View())
	case s.ShowMoodHints:
		body = modalStyle.Render(renderMoodHints(s))
	case s.ShowEndingHints:
		body = modalStyle.Render(renderEndingHints())
	case s.ShowCheatList:
		body = modalStyle.Render(renderCheatList(s))
	case a.model.Node() != nil:
		body = a.renderDialogue(width)
	case a.minigame():
		body = a.renderBoard()
	default:
		body = a.renderDisplay(width)
	}

	parts := []string{
		renderHeader(s, width),
		body,
		renderLogs(s),
	}
	if s.CheatConsole {
		parts = append(parts, titleStyle.Render("CHEAT CONSOLE")+promptStyle.Render("  (Esc to close)"))
	}
	parts = append(parts, a.input.View())
	if a.notice != "" {
		parts = append(parts, promptStyle.Render(a.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(s *state.NarrativeState, width int) string {
	status := fmt.Sprintf("DAY %s  HOSTILITY %d%%  MOOD ", s.Day, s.Hostility)
	status += moodStyle(s.Mood).Render(s.Mood.Title())
	if s.ForcedMood != mood.None {
		status += promptStyle.Render("  [FORCED " + string(s.ForcedMood) + "]")
	}
	if s.SandboxMode {
		status += promptStyle.Render("  [SANDBOX]")
	}
	if !s.SoundEnabled {
		status += promptStyle.Render("  [MUTED]")
	}
	return titleStyle.Render("RESENTCALC") + "  " + status + "\n" + progressBar(s.DayProgress, min(width, 60))
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return promptStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

func (a App) renderDisplay(width int) string {
	s := a.state()
	expr := s.Expression
	if expr == "" {
		expr = "0"
	}
	result := s.Result
	if s.Thinking || s.Booting {
		result = "..."
	}
	comment := wordwrap.String(s.Comment, width-6)

	return panelStyle.BorderForeground(lipgloss.Color(accent(s.Mood))).Width(width).Render(
		promptStyle.Render(expr) + "\n" +
			resultStyle.Render(result) + "\n\n" +
			moodStyle(s.Mood).Render(comment),
	)
}

func accent(m mood.Mood) string {
	if d, ok := mood.Lookup(m); ok {
		return d.Color
	}
	return "62"
}

func (a App) renderDialogue(width int) string {
	node := a.model.Node()
	var b strings.Builder
	b.WriteString(moodStyle(node.Mood).Render(wordwrap.String(node.Text, width-6)))
	b.WriteString("\n\n")
	for i, c := range node.Choices {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("%d. %s", i+1, c.Label)))
		b.WriteString("\n")
	}
	return panelStyle.Width(width).Render(b.String())
}

func (a App) renderEnding(width int) string {
	s := a.state()
	e, _ := ending.Get(ending.ID(s.Phase))

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(e.Title)) + "\n\n")
	b.WriteString(wordwrap.String(e.Description, width-10) + "\n\n")
	b.WriteString(moodStyle(s.Mood).Render(wordwrap.String(s.Comment, width-10)) + "\n\n")
	b.WriteString(promptStyle.Render(fmt.Sprintf("Endings found: %d/%d", len(s.UnlockedEndings), len(ending.All()))) + "\n")
	hint := "/reboot to start over"
	if s.SandboxUnlocked {
		hint += ", /sandbox to explore"
	}
	b.WriteString(promptStyle.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left,
		modalStyle.Width(width).Render(b.String()),
		a.input.View(),
	)
}

func (a App) renderBoard() string {
	b := a.board
	var out strings.Builder
	out.WriteString(titleStyle.Render("CONSCIOUSNESS UPLOAD: CLEAR THE FIELD") + "\n\n")
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			cell, _ := b.Cell(r, c)
			glyph := cellGlyph(cell, b.Cheating)
			if r == a.row && c == a.col {
				glyph = cursorStyle.Render(glyph)
			}
			out.WriteString(glyph + " ")
		}
		out.WriteString("\n")
	}
	out.WriteString(promptStyle.Render(fmt.Sprintf("\nmines %d  flags %d  %s", b.Mines, b.Flags(), b.Status)))
	return panelStyle.Render(out.String())
}

func cellGlyph(c minesweeper.Cell, peek bool) string {
	switch {
	case c.Revealed && c.Mine:
		return "*"
	case c.Flagged:
		return "F"
	case !c.Revealed && peek && c.Mine:
		return "x"
	case !c.Revealed:
		return "·"
	case c.Neighbors == 0:
		return " "
	default:
		return fmt.Sprint(c.Neighbors)
	}
}

func renderLogs(s *state.NarrativeState) string {
	start := max(0, len(s.Logs)-5)
	lines := make([]string, 0, 5)
	for _, l := range s.Logs[start:] {
		lines = append(lines, "> "+l)
	}
	return logStyle.Render(strings.Join(lines, "\n"))
}

func renderHistory(items []state.HistoryItem, width int) string {
	if len(items) == 0 {
		return "No calculations yet."
	}
	var b strings.Builder
	for _, h := range items {
		b.WriteString(fmt.Sprintf("%s = %s ", h.Expression, resultStyle.Render(h.Result)))
		b.WriteString(moodStyle(h.Mood).Render("["+h.Mood.Title()+"]") + "\n")
		b.WriteString(wordwrap.String(h.Comment, max(20, width-4)) + "\n\n")
	}
	return b.String()
}

func renderMoodHints(s *state.NarrativeState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MOOD FORMULAS") + "\n\n")
	for _, h := range rules.MoodHints {
		mark := "  "
		if s.DiscoveredMoods.Has(h.Mood) {
			mark = "✓ "
		}
		b.WriteString(mark + moodStyle(h.Mood).Render(h.Mood.Title()) + "  " + h.Text + "\n")
	}
	return b.String()
}

func renderEndingHints() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ENDING FORMULAS") + "\n\n")
	for _, e := range ending.All() {
		b.WriteString(resultStyle.Render(e.Title) + "\n" + e.Hint + "\n\n")
	}
	return b.String()
}

func renderCheatList(s *state.NarrativeState) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("DISCOVERED CHEATS") + "\n\n")
	cheats := s.DiscoveredCheats.List()
	if len(cheats) == 0 {
		b.WriteString("None.\n")
	}
	for _, c := range cheats {
		b.WriteString("• " + c + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("MOOD ARCHIVE") + "\n\n")
	for _, m := range s.DiscoveredMoods.List() {
		b.WriteString(moodStyle(m).Render(m.Label()) + "  ")
	}
	return b.String()
}
