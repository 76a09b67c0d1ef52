package inquire

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Input creates a prompt that collects a line of text.
func Input(q Question, opts ...Option) (*Prompt, error) {
	q.Type = TypeInput
	return New(q, opts...)
}

// InputDriver is the line-editor driver behind text and password
// questions. It reads keys in raw mode, maintains an edit buffer with
// cursor movement and word operations, and submits the buffer on Enter.
// After a submit it blocks until the attempt is rejected (redisplay and
// keep editing) or the run ends.
type InputDriver struct {
	KeyMap *KeyMap // nil for the default bindings
	Masked bool    // echo the question's Mask rune instead of the input

	buffer []rune
	cursor int
}

// CollectInput implements Driver.
func (d *InputDriver) CollectInput(ctx context.Context, c *Collector) error {
	if d.KeyMap == nil {
		d.KeyMap = NewDefaultKeyMap()
	}
	d.buffer = d.buffer[:0]
	d.cursor = 0

	t := c.Terminal()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		r, _, err := t.ReadRune()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return ErrEOF
			}
			return err
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := readEscapeSequence(t)
			if err != nil {
				continue
			}
			action = d.KeyMap.GetSequenceAction(seq)
		} else {
			action = d.KeyMap.GetAction(r)
		}

		switch action {
		case ActionSubmit:
			c.Submit(d.submitValue(c.Question()))
			select {
			case o, ok := <-c.Rejected():
				if !ok {
					return nil
				}
				// Keep the buffer so the rejected input can be edited.
				d.render(c, o)
				continue
			case <-ctx.Done():
				return nil
			}

		case ActionCancel:
			return ErrInterrupted

		case ActionMoveLeft:
			if d.cursor > 0 {
				d.cursor--
			}

		case ActionMoveRight:
			if d.cursor < len(d.buffer) {
				d.cursor++
			}

		case ActionMoveHome:
			d.cursor = 0

		case ActionMoveEnd:
			d.cursor = len(d.buffer)

		case ActionMoveWordLeft:
			d.cursor = d.findWordBoundary(-1)

		case ActionMoveWordRight:
			d.cursor = d.findWordBoundary(1)

		case ActionDeleteChar:
			if r == '\x7f' || r == '\b' {
				// Backspace
				if d.cursor > 0 {
					d.buffer = append(d.buffer[:d.cursor-1], d.buffer[d.cursor:]...)
					d.cursor--
				}
			} else if d.cursor < len(d.buffer) {
				// Delete key
				d.buffer = append(d.buffer[:d.cursor], d.buffer[d.cursor+1:]...)
			}

		case ActionDeleteLine:
			d.buffer = d.buffer[:0]
			d.cursor = 0

		case ActionDeleteToEnd:
			d.buffer = d.buffer[:d.cursor]

		case ActionDeleteWordBack:
			if d.cursor > 0 {
				pos := d.findWordBoundary(-1)
				d.buffer = append(d.buffer[:pos], d.buffer[d.cursor:]...)
				d.cursor = pos
			}

		default:
			if r >= 32 && r < 127 || r > 127 { // printable characters
				d.insertRune(r)
			} else if r == '\x04' { // Ctrl+D (EOF)
				if len(d.buffer) == 0 {
					return ErrEOF
				}
			}
		}

		d.render(c, Outcome{Valid: true})
	}
}

// submitValue returns the buffer as the attempt value, falling back to the
// question default when the buffer is empty.
func (d *InputDriver) submitValue(q Question) any {
	s := string(d.buffer)
	if s == "" && q.Default != nil {
		return q.Default
	}
	return s
}

// render redraws the question line with the echoed buffer, and the
// rejection message beneath it when o is invalid.
func (d *InputDriver) render(c *Collector, o Outcome) {
	content := c.Line() + d.echo(c.Question())
	if !o.Valid && o.Err != nil {
		content += "\n" + c.Scheme().Error.ToANSI() + ">> " + o.Err.Error() + Reset()
	}
	_ = c.Screen().Render(content)
}

// echo returns the display form of the buffer, masked for password input.
func (d *InputDriver) echo(q Question) string {
	if d.Masked {
		return strings.Repeat(string(q.Mask), len(d.buffer))
	}
	return string(d.buffer)
}

func (d *InputDriver) insertRune(r rune) {
	d.buffer = append(d.buffer[:d.cursor], append([]rune{r}, d.buffer[d.cursor:]...)...)
	d.cursor++
}

// findWordBoundary finds the next word boundary in the given direction.
// Word characters are letters, digits, and underscore; everything else is
// a separator.
func (d *InputDriver) findWordBoundary(direction int) int {
	if direction > 0 {
		pos := d.cursor
		for pos < len(d.buffer) && !isWordChar(d.buffer[pos]) {
			pos++
		}
		for pos < len(d.buffer) && isWordChar(d.buffer[pos]) {
			pos++
		}
		return pos
	}
	pos := d.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(d.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(d.buffer[pos-1]) {
		pos--
	}
	return pos
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
