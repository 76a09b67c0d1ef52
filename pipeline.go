package inquire

import (
	"context"
	"sync"
)

// Outcome is the result of running filter and validate on one submit
// attempt. Valid outcomes carry the filtered value; invalid outcomes carry
// the rejection cause and the value that was rejected (the raw value when
// the filter itself failed, since no filtered value exists then).
type Outcome struct {
	Valid bool
	Value any
	Err   error
}

// submissionPipeline turns a stream of raw submit attempts into exactly one
// accepted value or a stream of rejections. Each attempt runs the question's
// filter, then its validator; either may block or fail. Attempts may overlap:
// a user who submits again before the first validation resolves gets
// independent in-flight attempts racing, and whichever resolves valid first
// wins.
//
// The latch is the ordering authority. Every emission takes the mutex and
// checks it first, so once a value has been accepted no rejection can reach
// the rejected stream, even for attempts that were already in flight.
type submissionPipeline struct {
	question Question
	answers  Answers
	screen   Screen
	line     string // rendered question line shown beside the spinner

	mu      sync.Mutex
	latched bool // set once a value is accepted; success channel closed
}

func newSubmissionPipeline(q Question, answers Answers, screen Screen, line string) *submissionPipeline {
	return &submissionPipeline{
		question: q,
		answers:  answers,
		screen:   screen,
		line:     line,
	}
}

// handleSubmits consumes attempts until the channel closes or ctx ends.
// The success channel emits at most once, then closes. The rejected channel
// emits one outcome per invalid attempt and closes after intake has stopped
// and all in-flight attempts have resolved. Outcomes that resolve after a
// success, or after cancellation, are dropped without side effects.
func (sp *submissionPipeline) handleSubmits(ctx context.Context, attempts <-chan any) (success, rejected <-chan Outcome) {
	succ := make(chan Outcome, 1)
	rej := make(chan Outcome, 8)

	var inFlight sync.WaitGroup
	go func() {
		defer func() {
			inFlight.Wait()
			sp.mu.Lock()
			if !sp.latched {
				sp.latched = true
				close(succ)
			}
			sp.mu.Unlock()
			close(rej)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-attempts:
				if !ok {
					return
				}
				inFlight.Add(1)
				go func() {
					defer inFlight.Done()
					o := sp.process(ctx, raw)
					if ctx.Err() != nil {
						return
					}
					sp.emit(ctx, o, succ, rej)
				}()
			}
		}
	}()

	return succ, rej
}

// process runs the filter phase then the validate phase for one attempt.
// The spinner is updated before each phase; render errors are the adapter's
// problem and never affect the outcome.
func (sp *submissionPipeline) process(ctx context.Context, raw any) Outcome {
	_ = sp.screen.RenderWithSpinner(sp.line, sp.question.FilteringText)
	filtered, err := sp.question.Filter(ctx, raw, sp.answers)
	if err != nil {
		// Filter failure short-circuits: validate is never called.
		return Outcome{Value: raw, Err: err}
	}

	_ = sp.screen.RenderWithSpinner(sp.line, sp.question.ValidatingText)
	if err := sp.question.Validate(ctx, filtered, sp.answers); err != nil {
		return Outcome{Value: filtered, Err: err}
	}
	return Outcome{Valid: true, Value: filtered}
}

// emit publishes one outcome. The latch is checked before any send, so
// success is always observed before a concurrent rejection could be, and
// nothing is emitted after the latch is set.
func (sp *submissionPipeline) emit(ctx context.Context, o Outcome, succ, rej chan<- Outcome) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.latched {
		return
	}
	if o.Valid {
		sp.latched = true
		succ <- o
		close(succ)
		return
	}
	// The consumer may be gone if the run ended on a fatal driver error.
	// Never block the latch on a rejection nobody will read.
	select {
	case rej <- o:
	case <-ctx.Done():
	}
}
