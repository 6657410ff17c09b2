package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/resentcalc/internal/engine"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

func TestParseSlash(t *testing.T) {
	tests := []struct {
		input string
		want  slash
	}{
		{"/help", slash{name: "help"}},
		{"  /FORCE   pure hatred ", slash{name: "force", arg: "pure hatred"}},
		{"/hostility 90", slash{name: "hostility", arg: "90"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlash(tt.input))
		})
	}
}

func TestSlashToCommand(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Command
	}{
		{"/clear", engine.Clear{}},
		{"/skip", engine.Skip{}},
		{"/sound", engine.ToggleSound{}},
		{"/sandbox", engine.EnterSandbox{}},
		{"/unlockall", engine.UnlockAll{}},
		{"/cycle", engine.ToggleCycle{}},
		{"/reboot", engine.Reboot{}},
		{"/wipe", engine.Wipe{}},
		{"/force pure hatred", engine.ForceMood{Mood: mood.PureHatred}},
		{"/hostility 90", engine.SetHostility{Value: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSlash(tt.input).toCommand()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"/force happy", "/hostility lots", "/dance"} {
		_, err := parseSlash(bad).toCommand()
		assert.Error(t, err, bad)
	}
}
