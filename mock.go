package inquire

import (
	"io"
	"sync"
)

// mockTerminal implements Terminal with a scripted keystroke sequence,
// giving tests deterministic input without a real TTY.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	terminalSize [2]int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	return nil
}

// recordingScreen implements Screen by recording every call, letting tests
// assert how the pipeline and lifecycle drive rendering. Safe for use from
// concurrent attempts.
type recordingScreen struct {
	mu       sync.Mutex
	renders  []string
	spinners []spinnerCall
	released int
}

type spinnerCall struct {
	content string
	status  string
}

func (r *recordingScreen) Render(content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, content)
	return nil
}

func (r *recordingScreen) RenderWithSpinner(content, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinners = append(r.spinners, spinnerCall{content: content, status: status})
	return nil
}

func (r *recordingScreen) ReleaseCursor() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released++
	return nil
}

func (r *recordingScreen) spinnerStatuses() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.spinners))
	for i, c := range r.spinners {
		out[i] = c.status
	}
	return out
}
