// Package sound names the audible cues the engine requests and plays them on
// a terminal.
package sound

import (
	"io"
	"strings"
	"sync"

	"github.com/jwebster45206/resentcalc/pkg/mood"
)

// Cue is a notification sound category.
type Cue string

const (
	None      Cue = ""
	Click     Cue = "click"
	Delete    Cue = "delete"
	Calculate Cue = "calculate"
	Success   Cue = "success"
	Error     Cue = "error"
	Force     Cue = "force"
	Glitch    Cue = "glitch"
	Reveal    Cue = "reveal"
	Explode   Cue = "explode"
	Win       Cue = "win"
	OrbSelect Cue = "orb_select"
	Startup   Cue = "startup"
)

// ForMood returns the cue played when the calculator switches into m.
func ForMood(m mood.Mood) Cue {
	switch m {
	case mood.Furious, mood.Vile, mood.PureHatred:
		return Force
	case mood.Manic, mood.Glitched:
		return Glitch
	case mood.Intrigued, mood.Joy, mood.Enouement, mood.Peace:
		return Reveal
	case mood.Insecurity:
		return Error
	default:
		return None
	}
}

// Player renders cues.
type Player interface {
	Play(c Cue)
}

// Muted discards every cue.
type Muted struct{}

func (Muted) Play(Cue) {}

// bells is how many terminal bells each cue rings. Quiet cues ring none.
var bells = map[Cue]int{
	Error:   1,
	Force:   1,
	Glitch:  2,
	Reveal:  1,
	Explode: 3,
	Win:     1,
	Startup: 1,
}

// BellPlayer rings the terminal bell on w.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (p *BellPlayer) Play(c Cue) {
	n := bells[c]
	if n == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.w, strings.Repeat("\a", n))
}
