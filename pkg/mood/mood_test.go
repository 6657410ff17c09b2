package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIsClosed(t *testing.T) {
	assert.Len(t, All(), 18)
	for _, m := range All() {
		d, ok := Lookup(m)
		assert.True(t, ok, "missing details for %s", m)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Description)
	}
	assert.False(t, Mood("HAPPY").Valid())
}

func TestSecretMoods(t *testing.T) {
	secret := map[Mood]bool{Joy: true, Vile: true, Enouement: true, PureHatred: true, Insecurity: true, Peace: true}
	for _, m := range All() {
		assert.Equal(t, secret[m], m.IsSecret(), m)
	}
	assert.Len(t, Standard(), 12)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
		ok   bool
	}{
		{"bored", Bored, true},
		{" PURE_HATRED ", PureHatred, true},
		{"pure hatred", PureHatred, true},
		{"ennui", None, false},
		{"", None, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelAndTitle(t *testing.T) {
	assert.Equal(t, "Pure Hatred", PureHatred.Label())
	assert.Equal(t, "PURE HATRED", PureHatred.Title())
	assert.Equal(t, "Condescending", Condescending.Label())
	assert.Equal(t, "NOPE", Mood("NOPE").Title())
}
