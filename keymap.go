package inquire

// KeyAction represents the action to perform when a key is pressed
type KeyAction int

// Key action constants define the editing actions of the built-in drivers
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionDeleteChar
	ActionDeleteLine
	ActionDeleteToEnd
	ActionDeleteWordBack
)

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default key bindings for the built-in
// drivers.
//
// Default key bindings:
//   - Enter/Return: Submit input
//   - Ctrl+C: Cancel (interrupt)
//   - Ctrl+A/Home: Move to beginning of line
//   - Ctrl+E/End: Move to end of line
//   - Ctrl+K: Delete from cursor to end of line
//   - Ctrl+U: Delete entire line
//   - Ctrl+W: Delete word backwards
//   - Backspace/Delete: Delete character
//   - Arrow keys: Move cursor (and navigate choices in list prompts)
//   - Ctrl+Left/Right: Move by word
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	// Default key bindings
	km.bindings['\r'] = ActionSubmit
	km.bindings['\n'] = ActionSubmit
	km.bindings['\x03'] = ActionCancel         // Ctrl+C
	km.bindings['\x01'] = ActionMoveHome       // Ctrl+A
	km.bindings['\x05'] = ActionMoveEnd        // Ctrl+E
	km.bindings['\x0B'] = ActionDeleteToEnd    // Ctrl+K
	km.bindings['\x15'] = ActionDeleteLine     // Ctrl+U
	km.bindings['\x17'] = ActionDeleteWordBack // Ctrl+W
	km.bindings['\x7f'] = ActionDeleteChar     // Backspace
	km.bindings['\b'] = ActionDeleteChar       // Backspace

	// Escape sequences
	km.sequences["[A"] = ActionMoveUp
	km.sequences["[B"] = ActionMoveDown
	km.sequences["[C"] = ActionMoveRight
	km.sequences["[D"] = ActionMoveLeft
	km.sequences["[H"] = ActionMoveHome
	km.sequences["[F"] = ActionMoveEnd
	km.sequences["[1;5C"] = ActionMoveWordRight // Ctrl+Right
	km.sequences["[1;5D"] = ActionMoveWordLeft  // Ctrl+Left
	km.sequences["[3~"] = ActionDeleteChar      // Delete

	return km
}

// Bind adds or updates a key binding for a single character.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding. The sequence
// should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// GetAction returns the action for a key, or ActionNone if not bound
func (km *KeyMap) GetAction(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[key]; exists {
		return action
	}
	return ActionNone
}

// GetSequenceAction returns the action for an escape sequence, or
// ActionNone if not bound
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[seq]; exists {
		return action
	}
	return ActionNone
}

// readEscapeSequence reads the remainder of an escape sequence after ESC.
// CSI sequences ("[" then parameter bytes) end at the first final byte in
// the 0x40-0x7e range, which covers arrows ("[A"), Delete ("[3~"), and
// modified arrows ("[1;5C") alike.
func readEscapeSequence(t Terminal) (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ { // limit to prevent infinite loop
		r, _, err := t.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		if seq[0] == '[' {
			if len(seq) >= 2 && r >= 0x40 && r <= 0x7e {
				return string(seq), nil
			}
			continue
		}
		// Non-CSI sequences (e.g. "OP" for F1) are two runes long.
		if len(seq) >= 2 {
			return string(seq), nil
		}
	}
	return string(seq), nil
}
