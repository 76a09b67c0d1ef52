package inquire

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
)

// List creates a prompt that picks one value from the question's choices.
func List(q Question, opts ...Option) (*Prompt, error) {
	q.Type = TypeList
	if len(q.Choices) == 0 {
		return nil, &ConfigError{Param: "choices", Reason: "is required for list questions"}
	}
	return New(q, opts...)
}

// ListDriver navigates the question's choices with the arrow keys. Typing
// narrows the visible choices by fuzzy match; Escape clears the filter;
// Enter submits the highlighted choice's value.
type ListDriver struct {
	selected int
	query    []rune
}

// CollectInput implements Driver.
func (d *ListDriver) CollectInput(ctx context.Context, c *Collector) error {
	choices := c.Question().choiceList()
	if choices.Len() == 0 {
		return &ConfigError{Param: "choices", Reason: "is required for list questions"}
	}
	d.selected = 0
	d.query = d.query[:0]

	t := c.Terminal()
	km := NewDefaultKeyMap()
	d.render(c, Outcome{Valid: true})
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

		visible := d.visible(choices)

		switch {
		case r == '\x1b':
			seq, err := readEscapeSequence(t)
			if err != nil {
				continue
			}
			switch km.GetSequenceAction(seq) {
			case ActionMoveUp:
				if d.selected > 0 {
					d.selected--
				}
			case ActionMoveDown:
				if d.selected < len(visible)-1 {
					d.selected++
				}
			default:
				// Escape clears the filter
				d.query = d.query[:0]
				d.selected = 0
			}

		case r == '\r' || r == '\n':
			if len(visible) == 0 {
				continue
			}
			c.Submit(visible[d.selected].value())
			select {
			case o, ok := <-c.Rejected():
				if !ok {
					return nil
				}
				d.renderRejected(c, o)
				continue
			case <-ctx.Done():
				return nil
			}

		case r == '\x03': // Ctrl+C
			return ErrInterrupted

		case r == '\x04': // Ctrl+D
			return ErrEOF

		case r == '\x7f' || r == '\b':
			if len(d.query) > 0 {
				d.query = d.query[:len(d.query)-1]
				d.selected = 0
			}

		case r >= 32 && r < 127 || r > 127:
			d.query = append(d.query, r)
			d.selected = 0
		}

		d.render(c, Outcome{Valid: true})
	}
}

// visible returns the choices matching the current filter, best match
// first, or all choices in order when the filter is empty.
func (d *ListDriver) visible(choices *Choices) []Choice {
	all := make([]Choice, 0, choices.Len())
	for i := 0; i < choices.Len(); i++ {
		all = append(all, choices.At(i))
	}
	if len(d.query) == 0 {
		return all
	}

	type scored struct {
		choice Choice
		score  int
	}
	matches := make([]scored, 0, len(all))
	for _, ch := range all {
		if s := fuzzyScore(string(d.query), ch.Name); s > 0 {
			matches = append(matches, scored{choice: ch, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]Choice, len(matches))
	for i, m := range matches {
		out[i] = m.choice
	}
	return out
}

// render draws the question line, the filter query, and the choice rows
// with the selection marked.
func (d *ListDriver) render(c *Collector, o Outcome) {
	scheme := c.Scheme()
	choices := c.Question().choiceList()

	var b strings.Builder
	b.WriteString(c.Line())
	b.WriteString(string(d.query))

	for i, ch := range d.visible(choices) {
		b.WriteString("\n")
		if i == d.selected {
			b.WriteString(scheme.Answer.ToANSI())
			b.WriteString("▶ ")
			b.WriteString(ch.Name)
			b.WriteString(Reset())
		} else {
			b.WriteString("  ")
			b.WriteString(ch.Name)
		}
	}
	if !o.Valid && o.Err != nil {
		b.WriteString("\n")
		b.WriteString(scheme.Error.ToANSI())
		b.WriteString(">> ")
		b.WriteString(o.Err.Error())
		b.WriteString(Reset())
	}
	_ = c.Screen().Render(b.String())
}

func (d *ListDriver) renderRejected(c *Collector, o Outcome) {
	d.render(c, o)
}
