package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleBoardKey_Flag(t *testing.T) {
	a := NewApp(AppDeps{})
	flag := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}

	next, cmd, ok := a.handleBoardKey(flag)
	require.True(t, ok)
	assert.NotNil(t, cmd, "click on flag")
	assert.True(t, next.board.Cells[0].Flagged)
	assert.Equal(t, 1, next.board.Flags())

	next, _, _ = next.handleBoardKey(flag)
	assert.Zero(t, next.board.Flags())
}

func TestHandleBoardKey_FlagOffBoard(t *testing.T) {
	a := NewApp(AppDeps{})
	a.row = a.board.Size

	next, cmd, ok := a.handleBoardKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	require.True(t, ok)
	assert.Nil(t, cmd)
	assert.Zero(t, next.board.Flags())
}
