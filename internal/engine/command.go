package engine

import (
	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

// Command is an input to Update: something the player did or something the
// runtime observed (a timer, a finished oracle call).
type Command interface {
	isCommand()
}

// Start runs once after the model is loaded.
type Start struct{}

// Submit is the "=" key: calculate the expression on the display.
type Submit struct {
	Expression string
}

// Keystroke feeds the hidden cheat detector.
type Keystroke struct {
	Key string
}

// Clear is the AC key.
type Clear struct{}

// Tick is one second of wall time.
type Tick struct{}

// Skip jumps straight to the end of the current day.
type Skip struct{}

// TimerFired reports that a previously scheduled timer elapsed.
type TimerFired struct {
	Timer Timer
	Gen   uint64
}

// OracleResult carries the answer to a CallOracle effect.
type OracleResult struct {
	Token    uint64
	Response *oracle.Response
	Err      error
}

// GreetingResult carries the answer to a FetchGreeting effect.
type GreetingResult struct {
	Token    uint64
	Response *oracle.Response
	Err      error
}

// MinigameComplete reports a won minesweeper board.
type MinigameComplete struct{}

// Choose picks a choice at the current dialogue node.
type Choose struct {
	Index int
}

// Cheat is a line entered in the cheat console.
type Cheat struct {
	Text string
}

// ForceMood toggles m as the forced mood for the next calculation.
type ForceMood struct {
	Mood mood.Mood
}

type ToggleSound struct{}

type EnterSandbox struct{}

// SetHostility sets hostility directly. Sandbox only.
type SetHostility struct {
	Value int
}

// UnlockAll discovers every standard mood and every ending. Sandbox only.
type UnlockAll struct{}

// ToggleCycle starts or stops the sandbox mood cycler.
type ToggleCycle struct{}

// CloseOverlays dismisses the cheat console, the cheat list and both hint tables.
type CloseOverlays struct{}

// Reboot starts a new run at day 1, keeping discoveries.
type Reboot struct{}

// Wipe forgets everything.
type Wipe struct{}

func (Start) isCommand()            {}
func (Submit) isCommand()           {}
func (Keystroke) isCommand()        {}
func (Clear) isCommand()            {}
func (Tick) isCommand()             {}
func (Skip) isCommand()             {}
func (TimerFired) isCommand()       {}
func (OracleResult) isCommand()     {}
func (GreetingResult) isCommand()   {}
func (MinigameComplete) isCommand() {}
func (Choose) isCommand()           {}
func (Cheat) isCommand()            {}
func (ForceMood) isCommand()        {}
func (ToggleSound) isCommand()      {}
func (EnterSandbox) isCommand()     {}
func (SetHostility) isCommand()     {}
func (UnlockAll) isCommand()        {}
func (ToggleCycle) isCommand()      {}
func (CloseOverlays) isCommand()    {}
func (Reboot) isCommand()           {}
func (Wipe) isCommand()             {}

// userInput reports whether cmd came from the player. Player input resets
// the idle stare.
func userInput(cmd Command) bool {
	switch cmd.(type) {
	case Submit, Keystroke, Clear, Skip, Choose, Cheat, ForceMood, SetHostility:
		return true
	}
	return false
}
