package theme

import (
	"math"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// ColorSet is one named color's tone ladder.
//
// Offset 0 is the base tone at index round(n/2)-1. With an even number of
// tones the base sits in the lower half, so [a b c d] has base b.
type ColorSet struct {
	name    string
	tones   []string
	middle  int
	lowest  int
	highest int
}

// NewColorSet builds a ColorSet. An empty ladder is a configuration error.
func NewColorSet(name string, tones []string) (*ColorSet, error) {
	if len(tones) == 0 {
		return nil, tonalerrors.NewConfigurationError("color set "+name, "tones must be a non-empty list", nil)
	}

	count := len(tones)
	middle := int(math.Floor(float64(count)/2+0.5)) - 1
	copied := make([]string, count)
	copy(copied, tones)

	return &ColorSet{
		name:    name,
		tones:   copied,
		middle:  middle,
		lowest:  middle - count + 1,
		highest: count - 1 - middle,
	}, nil
}

// Name returns the color name the set was registered under.
func (c *ColorSet) Name() string { return c.name }

// Len returns the number of tones.
func (c *ColorSet) Len() int { return len(c.tones) }

// Tones returns a copy of the ladder.
func (c *ColorSet) Tones() []string {
	out := make([]string, len(c.tones))
	copy(out, c.tones)
	return out
}

// MiddleIndex returns the index of the base tone.
func (c *ColorSet) MiddleIndex() int { return c.middle }

// LowestOffset returns the smallest offset that is not clamped.
func (c *ColorSet) LowestOffset() int { return c.lowest }

// HighestOffset returns the largest offset that is not clamped.
func (c *ColorSet) HighestOffset() int { return c.highest }

// Base returns the tone at offset 0.
func (c *ColorSet) Base() string { return c.Tone(0) }

// Tone returns the tone at a signed offset from the base. Offsets outside the
// ladder clamp to the first or last tone.
func (c *ColorSet) Tone(offset int) string {
	switch {
	case offset < c.lowest:
		return c.tones[0]
	case offset > c.highest:
		return c.tones[len(c.tones)-1]
	}
	// With an even count LowestOffset is one past the first tone.
	if idx := c.middle + offset; idx > 0 {
		return c.tones[idx]
	}
	return c.tones[0]
}

// ToneOrFirst is Tone for an optional offset; a nil offset yields the first tone.
func (c *ColorSet) ToneOrFirst(offset *int) string {
	if offset == nil {
		return c.tones[0]
	}
	return c.Tone(*offset)
}
