package minesweeper

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		b := New(DefaultSize, DefaultMines, rand.New(rand.NewPCG(seed, seed)))
		status, err := b.Reveal(3, 3)
		require.NoError(t, err)
		assert.NotEqual(t, Lost, status, "seed %d", seed)

		mines := 0
		for _, c := range b.Cells {
			if c.Mine {
				mines++
			}
		}
		assert.Equal(t, DefaultMines, mines)
	}
}

func TestFloodFill(t *testing.T) {
	b := New(4, 1, nil)
	require.NoError(t, b.PlaceMines([][2]int{{3, 3}}))

	status, err := b.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Won, status)

	c, _ := b.Cell(2, 2)
	assert.True(t, c.Revealed)
	assert.Equal(t, 1, c.Neighbors)
	mine, _ := b.Cell(3, 3)
	assert.False(t, mine.Revealed)
}

func TestFlagsBlockReveal(t *testing.T) {
	b := New(3, 1, nil)
	require.NoError(t, b.PlaceMines([][2]int{{0, 0}}))

	require.NoError(t, b.ToggleFlag(2, 2))
	status, err := b.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Playing, status)
	c, _ := b.Cell(2, 2)
	assert.False(t, c.Revealed)
	assert.Equal(t, 1, b.Flags())
}

func TestLoseAndReset(t *testing.T) {
	b := New(3, 1, nil)
	require.NoError(t, b.PlaceMines([][2]int{{1, 1}}))

	status, err := b.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Lost, status)
	assert.Equal(t, 4, b.Exploded)

	status, _ = b.Reveal(0, 0)
	assert.Equal(t, Lost, status)

	b.Reset()
	assert.Equal(t, Playing, b.Status)
	assert.Equal(t, -1, b.Exploded)
}

func TestOutOfBounds(t *testing.T) {
	b := New(DefaultSize, DefaultMines, nil)
	_, err := b.Reveal(8, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, b.ToggleFlag(-1, 0), ErrOutOfBounds)
}
