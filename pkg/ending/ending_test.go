package ending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	seen := map[ID]bool{}
	for _, e := range all {
		assert.False(t, seen[e.ID], "duplicate %s", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Description)
		assert.NotEmpty(t, e.Category)
	}

	e, ok := Get(Peace)
	assert.True(t, ok)
	assert.Equal(t, "The Equilibrium", e.Title)
	_, ok = Get("good_final")
	assert.False(t, ok)
}

func TestSequences(t *testing.T) {
	for _, e := range All() {
		t.Run(string(e.ID), func(t *testing.T) {
			beats := Sequence(e.ID)
			require.NotEmpty(t, beats)
			recorded := 0
			for _, b := range beats {
				assert.Positive(t, b.Hold)
				if b.Record {
					recorded++
				}
			}
			assert.Equal(t, 1, recorded)
			assert.NotEmpty(t, beats[0].Mood)
		})
	}
	assert.True(t, Sequence(Peace)[0].UnlockSandbox)
	assert.Nil(t, Sequence("nope"))
}
