package inquire

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty buffer
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrAnswered is returned when Run is called on an answered prompt
	ErrAnswered = errors.New("inquire: prompt already answered")
)

// Status is the lifecycle state of a prompt. It starts pending and becomes
// answered exactly once, when the submission pipeline accepts a value.
// The transition is terminal.
type Status int

// Lifecycle states.
const (
	StatusPending Status = iota
	StatusAnswered
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusAnswered {
		return "answered"
	}
	return "pending"
}

// Driver supplies the input-collection behavior of a prompt variant. It
// reads raw input, pushes submit attempts through the collector, and
// redisplays rejections. CollectInput returns a non-nil error only for
// fatal conditions (interrupt, EOF, terminal failure); validation failures
// are not fatal and must keep the driver collecting. It returns nil once
// ctx ends, which happens as soon as a value is accepted.
type Driver interface {
	CollectInput(ctx context.Context, c *Collector) error
}

// Collector is the surface a Driver works against during one run: the
// resolved question, the terminal and screen, the submit channel into the
// pipeline, and the stream of rejected outcomes to redisplay.
type Collector struct {
	ctx      context.Context
	prompt   *Prompt
	submits  chan<- any
	rejected <-chan Outcome
}

// Question returns the resolved question configuration.
func (c *Collector) Question() Question { return c.prompt.question }

// Answers returns the read-only answer set for cross-field logic.
func (c *Collector) Answers() Answers { return c.prompt.answers }

// Terminal returns the raw input source.
func (c *Collector) Terminal() Terminal { return c.prompt.terminal }

// Screen returns the render adapter.
func (c *Collector) Screen() Screen { return c.prompt.screen }

// Scheme returns the active color scheme.
func (c *Collector) Scheme() *ColorScheme { return c.prompt.scheme }

// Line returns the rendered question line for the current status.
func (c *Collector) Line() string { return c.prompt.Line() }

// Submit pushes one raw attempt into the submission pipeline. Attempts
// submitted after the run has ended are dropped.
func (c *Collector) Submit(v any) {
	select {
	case c.submits <- v:
	case <-c.ctx.Done():
	}
}

// Rejected returns the stream of invalid outcomes for redisplay. It stops
// delivering the instant a value is accepted.
func (c *Collector) Rejected() <-chan Outcome { return c.rejected }

// RenderRejection redraws the question line with the rejection message
// beneath it.
func (c *Collector) RenderRejection(o Outcome) {
	msg := "invalid input"
	if o.Err != nil {
		msg = o.Err.Error()
	}
	scheme := c.prompt.scheme
	content := c.Line() + "\n" + scheme.Error.ToANSI() + ">> " + msg + Reset()
	_ = c.prompt.screen.Render(content)
}

// Prompt asks a single question and resolves to its accepted answer. It
// owns the prompt lifecycle: it wires the variant driver to the submission
// pipeline, turns the pipeline's single success into lifecycle completion,
// and surfaces rejections back to the driver for re-prompting.
type Prompt struct {
	question  Question
	answers   Answers
	status    Status
	scheme    *ColorScheme
	terminal  Terminal
	screen    Screen
	driver    Driver
	driverSet bool
	closed    bool
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithAnswers binds previously collected answers so Filter, Validate, and
// When can implement cross-field logic.
func WithAnswers(answers Answers) Option {
	return func(p *Prompt) {
		if answers != nil {
			p.answers = answers
		}
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(scheme *ColorScheme) Option {
	return func(p *Prompt) {
		if scheme != nil {
			p.scheme = scheme
		}
	}
}

// WithTerminal replaces the raw input source, typically with a scripted
// terminal in tests.
func WithTerminal(t Terminal) Option {
	return func(p *Prompt) { p.terminal = t }
}

// WithScreen replaces the render adapter.
func WithScreen(s Screen) Option {
	return func(p *Prompt) { p.screen = s }
}

// WithDriver overrides the input-collection driver chosen from the question
// type. Passing nil makes Run resolve immediately with the question
// default, without collecting input.
func WithDriver(d Driver) Option {
	return func(p *Prompt) {
		p.driver = d
		p.driverSet = true
	}
}

// New creates a prompt for q. The configuration is resolved against the
// bound answer set; a missing Name fails here with a *ConfigError, before
// any channel or goroutine exists.
func New(q Question, opts ...Option) (*Prompt, error) {
	p := &Prompt{
		answers: Answers{},
		scheme:  ThemeDefault,
	}
	for _, opt := range opts {
		opt(p)
	}

	resolved, err := resolveQuestion(q, p.answers)
	if err != nil {
		return nil, err
	}
	p.question = resolved

	if p.terminal == nil {
		t, err := newRealTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to create terminal: %w", err)
		}
		p.terminal = t
	}
	if p.screen == nil {
		w, _, _ := p.terminal.Size()
		p.screen = newTermScreen(consoleOutput(), w)
	}
	if !p.driverSet {
		p.driver = driverFor(p.question)
	}
	return p, nil
}

// driverFor picks the built-in driver for a question type.
func driverFor(q Question) Driver {
	switch q.Type {
	case TypePassword:
		return &InputDriver{Masked: true}
	case TypeConfirm:
		return &ConfirmDriver{}
	case TypeList:
		return &ListDriver{}
	default:
		return &InputDriver{}
	}
}

// Status returns the current lifecycle state.
func (p *Prompt) Status() Status { return p.status }

// Line returns the question line for the current status.
func (p *Prompt) Line() string {
	return QuestionLine(p.question, p.status, p.scheme)
}

// Run collects input until a value passes the question's filter and
// validator, then returns that value. Validation failures never end the
// run; they are redisplayed and the user is re-prompted. Run rejects only
// on driver-fatal conditions (ErrInterrupted, ErrEOF, terminal failure) or
// context cancellation, and never resolves twice.
//
// A question whose When returns false, or a prompt with a nil driver,
// resolves immediately with the question default.
func (p *Prompt) Run(ctx context.Context) (any, error) {
	if p.status == StatusAnswered {
		return nil, ErrAnswered
	}
	if !p.question.When(p.answers) || p.driver == nil {
		p.status = StatusAnswered
		return p.question.Default, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	submits := make(chan any)
	pipe := newSubmissionPipeline(p.question, p.answers, p.screen, p.Line())
	success, rejected := pipe.handleSubmits(runCtx, submits)

	if err := p.terminal.SetRaw(); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := p.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
		}
	}()

	_ = p.screen.Render(p.Line())

	c := &Collector{
		ctx:      runCtx,
		prompt:   p,
		submits:  submits,
		rejected: rejected,
	}
	fatal := make(chan error, 1)
	go func() {
		fatal <- p.driver.CollectInput(runCtx, c)
	}()

	select {
	case o, ok := <-success:
		if !ok {
			// Closed without an emission: the run was cancelled.
			return nil, runCtx.Err()
		}
		return p.finish(o)
	case err := <-fatal:
		if err != nil {
			return nil, err
		}
		// The driver stopped without a fatal error; the accepted value, if
		// one made it through, is already on the success stream.
		select {
		case o, ok := <-success:
			if ok {
				return p.finish(o)
			}
		default:
		}
		if err := runCtx.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("inquire: driver stopped without submitting input")
	case <-runCtx.Done():
		return nil, runCtx.Err()
	}
}

// finish marks the prompt answered and redraws the line with the accepted
// value echoed.
func (p *Prompt) finish(o Outcome) (any, error) {
	p.status = StatusAnswered
	_ = p.screen.Render(answeredLine(p.question, o.Value, p.scheme))
	return o.Value, nil
}

// Close releases the terminal cursor and the TTY. It is idempotent and
// safe to call even if the prompt was never run or never answered.
func (p *Prompt) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.screen != nil {
		_ = p.screen.ReleaseCursor()
	}
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}
