package inquire

import (
	"context"
	"errors"
	"io"
)

// Confirm creates a yes/no prompt resolving to a bool. Enter takes the
// question default.
func Confirm(q Question, opts ...Option) (*Prompt, error) {
	q.Type = TypeConfirm
	if q.Default == nil {
		q.Default = false
	}
	return New(q, opts...)
}

// ConfirmDriver reads a single y/n keystroke. Enter submits the question
// default.
type ConfirmDriver struct{}

// CollectInput implements Driver.
func (d *ConfirmDriver) CollectInput(ctx context.Context, c *Collector) error {
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

		var value any
		switch r {
		case 'y', 'Y':
			value = true
		case 'n', 'N':
			value = false
		case '\r', '\n':
			b, _ := c.Question().Default.(bool)
			value = b
		case '\x03': // Ctrl+C
			return ErrInterrupted
		case '\x04': // Ctrl+D
			return ErrEOF
		default:
			continue
		}

		c.Submit(value)
		select {
		case o, ok := <-c.Rejected():
			if !ok {
				return nil
			}
			c.RenderRejection(o)
		case <-ctx.Done():
			return nil
		}
	}
}
