package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var primaryTones = []string{"#82b6d4", "#71acce", "#5fa1c8", "#4d97c2", "#3c8dbc", "#3781ab", "#32749a", "#2c6789", "#275a78"}

func TestColorSetOffsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		count   int
		middle  int
		lowest  int
		highest int
	}{
		{name: "single", count: 1, middle: 0, lowest: 0, highest: 0},
		{name: "pair", count: 2, middle: 0, lowest: -1, highest: 1},
		{name: "three", count: 3, middle: 1, lowest: -1, highest: 1},
		{name: "four", count: 4, middle: 1, lowest: -2, highest: 2},
		{name: "nine", count: 9, middle: 4, lowest: -4, highest: 4},
		{name: "ten", count: 10, middle: 4, lowest: -5, highest: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tones := make([]string, tt.count)
			for i := range tones {
				tones[i] = string(rune('a' + i))
			}
			set, err := NewColorSet("c", tones)
			require.NoError(t, err)
			require.Equal(t, tt.middle, set.MiddleIndex())
			require.Equal(t, tt.lowest, set.LowestOffset())
			require.Equal(t, tt.highest, set.HighestOffset())
		})
	}
}

func TestColorSetToneClamps(t *testing.T) {
	t.Parallel()

	set, err := NewColorSet("primary", primaryTones)
	require.NoError(t, err)

	require.Equal(t, "#3c8dbc", set.Tone(0))
	require.Equal(t, "#3c8dbc", set.Base())
	require.Equal(t, "#3781ab", set.Tone(1))
	require.Equal(t, "#82b6d4", set.Tone(-4))
	require.Equal(t, "#275a78", set.Tone(4))

	for _, k := range []int{-5, -10, -1000} {
		require.Equal(t, primaryTones[0], set.Tone(k), "offset %d", k)
	}
	for _, k := range []int{5, 10, 1000} {
		require.Equal(t, primaryTones[len(primaryTones)-1], set.Tone(k), "offset %d", k)
	}
}

func TestColorSetEvenCountBiasesLow(t *testing.T) {
	t.Parallel()

	set, err := NewColorSet("even", []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Equal(t, 1, set.MiddleIndex())
	require.Equal(t, "b", set.Tone(0))
	require.Equal(t, "a", set.Tone(-1))
	require.Equal(t, "d", set.Tone(2))
	require.Equal(t, "a", set.Tone(-2))
}

func TestColorSetToneOrFirst(t *testing.T) {
	t.Parallel()

	set, err := NewColorSet("primary", primaryTones)
	require.NoError(t, err)

	one := 1
	require.Equal(t, primaryTones[0], set.ToneOrFirst(nil))
	require.Equal(t, "#3781ab", set.ToneOrFirst(&one))
}

func TestColorSetRejectsEmptyTones(t *testing.T) {
	t.Parallel()

	_, err := NewColorSet("empty", nil)
	var cfgErr *tonalerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, cfgErr.Subject, "empty")
}

func TestColorSetTonesIsCopy(t *testing.T) {
	t.Parallel()

	input := []string{"a", "b", "c"}
	set, err := NewColorSet("c", input)
	require.NoError(t, err)

	input[1] = "z"
	tones := set.Tones()
	tones[0] = "y"

	require.Equal(t, "b", set.Tone(0))
	require.Equal(t, "a", set.Tone(-1))
	require.Equal(t, 3, set.Len())
	require.Equal(t, "c", set.Name())
}
