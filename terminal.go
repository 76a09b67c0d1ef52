package inquire

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts raw keystroke input so drivers can be exercised
// against a scripted terminal in tests. The real implementation reads from
// the controlling TTY; raw mode is entered for the duration of input
// collection and restored afterwards.
type Terminal interface {
	SetRaw() error                        // enter raw mode for immediate key processing
	Restore() error                       // restore the previous terminal settings
	Size() (width, height int, err error) // terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // read a single character from input
	Close() error                         // release the TTY
}

// realTerminal reads from the controlling TTY via go-tty and manages raw
// mode through golang.org/x/term. The closed flag guards against the
// double-close panic go-tty exhibits on Windows.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

// consoleOutput returns a color-capable writer for the platform.
func consoleOutput() io.Writer {
	if runtime.GOOS == "windows" {
		// go-colorable translates ANSI sequences for the Windows console.
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state each time so restoration works no matter
	// how many raw-mode round trips happen.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Drop the state so the next SetRaw captures a fresh baseline.
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so layout arithmetic never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
