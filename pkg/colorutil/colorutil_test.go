package colorutil_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microflow-designer/pkg/colorutil"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	t.Run("six digit hex", func(t *testing.T) {
		t.Parallel()
		c, err := colorutil.ParseColor("#3674d9")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0x36, G: 0x74, B: 0xd9, A: 255}, c)
	})

	t.Run("three digit hex expands", func(t *testing.T) {
		t.Parallel()
		c, err := colorutil.ParseColor("#f80")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 255}, c)
	})

	t.Run("named color", func(t *testing.T) {
		t.Parallel()
		c, err := colorutil.ParseColor("steelblue")
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 255}, c)
	})

	t.Run("names are case insensitive", func(t *testing.T) {
		t.Parallel()
		upper, err := colorutil.ParseColor("Coral")
		require.NoError(t, err)
		lower, err := colorutil.ParseColor("coral")
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "   ", "#12", "#12345", "#zzzzzz", "notacolor"} {
			_, err := colorutil.ParseColor(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestFormatColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#3674d9", colorutil.FormatColor(colorutil.FlowBlue))
	assert.Equal(t, "#000000", colorutil.FormatColor(colorutil.Black))

	// Parse/format round-trips for full hex strings.
	c, err := colorutil.ParseColor("#d93636")
	require.NoError(t, err)
	assert.Equal(t, "#d93636", colorutil.FormatColor(c))
}
