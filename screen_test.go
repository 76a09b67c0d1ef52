package inquire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermScreenRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 80)

	require.NoError(t, s.Render("hello"))
	out := buf.String()
	assert.Contains(t, out, "\r\x1b[K", "line is cleared before drawing")
	assert.Contains(t, out, "hello")
	assert.Equal(t, 1, s.lastLines)
}

func TestTermScreenRenderMultiline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 80)

	require.NoError(t, s.Render("question\n>> error"))
	assert.Equal(t, 2, s.lastLines)

	// The next render moves back up over the previous block.
	buf.Reset()
	require.NoError(t, s.Render("question"))
	out := buf.String()
	assert.Contains(t, out, "\x1b[1A", "redraw returns to the top of the previous block")
	assert.Equal(t, 1, s.lastLines)
}

func TestTermScreenTruncatesToWidth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 10)

	require.NoError(t, s.Render(strings.Repeat("x", 40)))
	assert.NotContains(t, buf.String(), strings.Repeat("x", 11),
		"content wider than the terminal is cut to one row")
}

func TestTermScreenSpinnerAdvances(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 80)

	require.NoError(t, s.RenderWithSpinner("q ", "checking"))
	first := buf.String()
	assert.Contains(t, first, spinnerFrames[0])
	assert.Contains(t, first, "checking")

	buf.Reset()
	require.NoError(t, s.RenderWithSpinner("q ", "checking"))
	assert.Contains(t, buf.String(), spinnerFrames[1], "each call advances one frame")
}

func TestTermScreenSpinnerCaptionBudget(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 12)

	require.NoError(t, s.RenderWithSpinner("question ", "a very long caption"))
	assert.NotContains(t, buf.String(), "a very long caption",
		"caption is trimmed to the remaining columns")
}

func TestTermScreenReleaseCursor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := newTermScreen(&buf, 80)

	require.NoError(t, s.ReleaseCursor())
	assert.Contains(t, buf.String(), "\x1b[?25h", "cursor visibility is restored")
}

func TestTermScreenZeroWidthFallsBack(t *testing.T) {
	t.Parallel()

	s := newTermScreen(&bytes.Buffer{}, 0)
	assert.Equal(t, 80, s.width)
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	styled := ThemeDefault.Message.ToANSI() + "hi" + Reset()
	assert.Equal(t, "hi", stripANSI(styled))
	assert.Equal(t, "plain", stripANSI("plain"))
}

func TestLineWidthMeasuresLastLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, lineWidth("first\nhi"))
	assert.Equal(t, 2, lineWidth(ThemeDefault.Prefix.ToANSI()+"hi"+Reset()))
	assert.Equal(t, 4, lineWidth("日本"), "wide runes count double")
}
