package sound

import (
	"bytes"
	"testing"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/stretchr/testify/assert"
)

func TestForMood(t *testing.T) {
	tests := []struct {
		mood mood.Mood
		want Cue
	}{
		{mood.Furious, Force},
		{mood.Vile, Force},
		{mood.PureHatred, Force},
		{mood.Manic, Glitch},
		{mood.Glitched, Glitch},
		{mood.Intrigued, Reveal},
		{mood.Joy, Reveal},
		{mood.Enouement, Reveal},
		{mood.Peace, Reveal},
		{mood.Insecurity, Error},
		{mood.Bored, None},
		{mood.Scared, None},
	}
	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			assert.Equal(t, tt.want, ForMood(tt.mood))
		})
	}
}

func TestBellPlayer(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf)
	p.Play(Click)
	assert.Empty(t, buf.String())
	p.Play(Explode)
	assert.Equal(t, "\a\a\a", buf.String())
}
