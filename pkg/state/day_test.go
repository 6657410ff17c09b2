package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_Sequence(t *testing.T) {
	var seen []string
	for d := Day1; ; d = d.Next() {
		seen = append(seen, d.String())
		if d == Day6 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "3.5", "4", "5", "6"}, seen)
	assert.Equal(t, Day6, Day6.Next())
}

func TestDay_Number(t *testing.T) {
	assert.Equal(t, 3, DayInterlude.Number())
	assert.Equal(t, 4, Day4.Number())
	assert.Equal(t, 6, Day6.Number())
	assert.True(t, Day3 < DayInterlude && DayInterlude < Day4)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("3.5")
	require.NoError(t, err)
	assert.Equal(t, DayInterlude, d)

	_, err = ParseDay("2.5")
	assert.Error(t, err)
	_, err = ParseDay("soon")
	assert.Error(t, err)
}

func TestDay_JSON(t *testing.T) {
	data, err := json.Marshal(DayInterlude)
	require.NoError(t, err)
	assert.Equal(t, "3.5", string(data))

	var d Day
	require.NoError(t, json.Unmarshal([]byte("5"), &d))
	assert.Equal(t, Day5, d)

	_, err = json.Marshal(Day(0))
	assert.Error(t, err)
}
