package inquire

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Screen is the rendering boundary between the prompt core and the
// terminal. The pipeline calls RenderWithSpinner twice per attempt (once
// per phase) and the lifecycle controller calls Render and ReleaseCursor;
// nothing else in the core touches output.
type Screen interface {
	// Render redraws the prompt area with content.
	Render(content string) error
	// RenderWithSpinner redraws content with a busy indicator and a short
	// status caption, advancing the spinner one frame per call.
	RenderWithSpinner(content, status string) error
	// ReleaseCursor restores cursor visibility at teardown. Safe to call
	// even if nothing was ever rendered.
	ReleaseCursor() error
}

// spinnerFrames are the braille frames cycled by RenderWithSpinner.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// termScreen renders to a terminal writer. It tracks how many lines the
// previous render produced so each redraw can clear them first, keeping the
// prompt anchored in place while input, errors, and spinner states replace
// one another.
type termScreen struct {
	output    io.Writer
	width     int // terminal columns, for display-width truncation
	lastLines int
	frame     int
}

// newTermScreen creates a screen for output. width <= 0 falls back to 80
// columns.
func newTermScreen(output io.Writer, width int) *termScreen {
	if width <= 0 {
		width = 80
	}
	return &termScreen{output: output, width: width}
}

// Render redraws the prompt area with content, clearing whatever the
// previous call drew.
func (s *termScreen) Render(content string) error {
	s.clearPreviousLines()

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if _, err := fmt.Fprint(s.output, "\r\x1b[K"); err != nil {
			return err
		}
		// ANSI-aware truncation so wrapped lines never break the clearing
		// arithmetic.
		if _, err := fmt.Fprint(s.output, truncate.String(line, uint(s.width))); err != nil {
			return err
		}
		if i < len(lines)-1 {
			if _, err := fmt.Fprint(s.output, "\r\n"); err != nil {
				return err
			}
		}
	}
	s.lastLines = len(lines)
	return nil
}

// RenderWithSpinner redraws content followed by the next spinner frame and
// the status caption.
func (s *termScreen) RenderWithSpinner(content, status string) error {
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	s.frame++

	if status != "" {
		// Keep the caption within the remaining columns.
		budget := s.width - lineWidth(content) - runewidth.StringWidth(frame) - 1
		if budget > 0 {
			status = runewidth.Truncate(status, budget, "…")
		} else {
			status = ""
		}
	}

	line := content + frame
	if status != "" {
		line += " " + status
	}
	return s.Render(line)
}

// ReleaseCursor restores cursor visibility and moves to a fresh line.
func (s *termScreen) ReleaseCursor() error {
	if _, err := fmt.Fprint(s.output, "\x1b[?25h"); err != nil {
		return err
	}
	_, err := fmt.Fprint(s.output, "\r\n")
	return err
}

// clearPreviousLines erases the lines drawn by the previous render and
// parks the cursor at the start of the prompt area.
func (s *termScreen) clearPreviousLines() {
	if s.lastLines <= 1 {
		fmt.Fprint(s.output, "\r\x1b[K")
		return
	}
	for i := 0; i < s.lastLines-1; i++ {
		fmt.Fprint(s.output, "\x1b[E") // beginning of next line
		fmt.Fprint(s.output, "\x1b[K") // clear line
	}
	fmt.Fprintf(s.output, "\x1b[%dA", s.lastLines-1)
	fmt.Fprint(s.output, "\r")
}

// lineWidth returns the display width of the last line of content,
// ignoring ANSI escape sequences.
func lineWidth(content string) int {
	if i := strings.LastIndexByte(content, '\n'); i >= 0 {
		content = content[i+1:]
	}
	return runewidth.StringWidth(stripANSI(content))
}

// stripANSI removes CSI escape sequences for width measurement.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
