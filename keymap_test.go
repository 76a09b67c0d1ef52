package inquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMapBindings(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	assert.Equal(t, ActionSubmit, km.GetAction('\r'))
	assert.Equal(t, ActionCancel, km.GetAction('\x03'))
	assert.Equal(t, ActionDeleteChar, km.GetAction('\x7f'))
	assert.Equal(t, ActionNone, km.GetAction('a'), "printable keys are unbound")

	assert.Equal(t, ActionMoveUp, km.GetSequenceAction("[A"))
	assert.Equal(t, ActionMoveWordLeft, km.GetSequenceAction("[1;5D"))
	assert.Equal(t, ActionNone, km.GetSequenceAction("[Z"))
}

func TestKeyMapBindOverrides(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	km.Bind('\x0C', ActionDeleteLine)
	km.BindSequence("[Z", ActionMoveHome)

	assert.Equal(t, ActionDeleteLine, km.GetAction('\x0C'))
	assert.Equal(t, ActionMoveHome, km.GetSequenceAction("[Z"))
}

func TestNilKeyMapIsInert(t *testing.T) {
	t.Parallel()

	var km *KeyMap
	assert.Equal(t, ActionNone, km.GetAction('\r'))
	assert.Equal(t, ActionNone, km.GetSequenceAction("[A"))
}

func TestReadEscapeSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "arrow", input: "[A", want: "[A"},
		{name: "delete key", input: "[3~", want: "[3~"},
		{name: "ctrl arrow", input: "[1;5C", want: "[1;5C"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readEscapeSequence(newMockTerminal(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
