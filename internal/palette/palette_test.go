package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

func TestScaleKeepsBaseAtMiddle(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 2, 4, 5, 9, 10} {
		tones, err := Scale("#3c8dbc", count)
		require.NoError(t, err)
		require.Len(t, tones, count)

		set, err := theme.NewColorSet("primary", tones)
		require.NoError(t, err)
		require.Equal(t, "#3c8dbc", set.Base(), "count %d", count)
	}
}

func TestScaleOrdersLightToDark(t *testing.T) {
	t.Parallel()

	tones, err := Scale("#3c8dbc", 9)
	require.NoError(t, err)

	previous := 2.0
	for _, tone := range tones {
		l, err := Lightness(tone)
		require.NoError(t, err)
		require.Less(t, l, previous, "tone %s", tone)
		previous = l
	}
}

func TestScaleNormalizesHex(t *testing.T) {
	t.Parallel()

	tones, err := Scale("#3C8DBC", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"#3c8dbc"}, tones)
}

func TestScaleRejectsBadInput(t *testing.T) {
	t.Parallel()

	var cfgErr *tonalerrors.ConfigurationError

	_, err := Scale("#3c8dbc", 0)
	require.ErrorAs(t, err, &cfgErr)

	_, err = Scale("blue", 5)
	require.ErrorAs(t, err, &cfgErr)

	_, err = Lightness("nope")
	require.ErrorAs(t, err, &cfgErr)
}
