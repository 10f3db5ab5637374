// Package palette derives tone ladders for theme documents from a single base color.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// Spread is how far the outermost tones travel toward white or black, as a
// Lab blend fraction.
const Spread = 0.8

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// Scale returns count tones ordered lightest to darkest with base at index
// round(count/2)-1, the index a theme ColorSet treats as offset 0.
func Scale(base string, count int) ([]string, error) {
	if count < 1 {
		return nil, tonalerrors.NewConfigurationError("palette", fmt.Sprintf("tone count must be at least 1, got %d", count), nil)
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return nil, tonalerrors.NewConfigurationError("palette", fmt.Sprintf("invalid base color %q", base), err)
	}

	middle := int(math.Floor(float64(count)/2+0.5)) - 1
	lighter := middle
	darker := count - 1 - middle

	tones := make([]string, count)
	for i := range tones {
		offset := i - middle
		switch {
		case offset < 0:
			t := Spread * float64(-offset) / float64(lighter)
			tones[i] = c.BlendLab(white, t).Clamped().Hex()
		case offset > 0:
			t := Spread * float64(offset) / float64(darker)
			tones[i] = c.BlendLab(black, t).Clamped().Hex()
		default:
			tones[i] = c.Hex()
		}
	}
	return tones, nil
}

// Lightness returns the Lab lightness of a hex color in the range [0, 1].
func Lightness(hex string) (float64, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, tonalerrors.NewConfigurationError("palette", fmt.Sprintf("invalid color %q", hex), err)
	}
	l, _, _ := c.Lab()
	return l, nil
}
