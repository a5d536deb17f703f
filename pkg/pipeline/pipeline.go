// Package pipeline writes completed submissions to the row sink and
// fans out the outcome to the user and the operator chat.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"orderbot/pkg/sink"
	"orderbot/pkg/submission"
)

// User-facing outcome messages.
const (
	ConfirmText = "Спасибо, заявка принята ✅\nЯ свяжусь с тобой в ближайшее время."
	ApologyText = "⚠️ Не удалось сохранить заявку. Попробуй позже."
)

// Kind classifies a submission failure.
type Kind int

const (
	// SinkUnavailable - the factory failed or returned no handle.
	SinkUnavailable Kind = iota
	// SinkWriteFailed - the append itself failed.
	SinkWriteFailed
)

// Error is a failed submission. Err carries the raw underlying failure
// so the operator notification stays diagnosable.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case SinkUnavailable:
		return fmt.Sprintf("sink unavailable: %v", e.Err)
	default:
		return fmt.Sprintf("sink write failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Notifier delivers outcome messages. The bot package implements it
// over the Telegram API.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, text string) error
	NotifyOperator(ctx context.Context, text string) error
}

// Pipeline performs one best-effort write per submission. No retries:
// a failure is terminal and the user restarts the flow from the trigger.
type Pipeline struct {
	factory  sink.Factory
	notifier Notifier
	timeout  time.Duration
}

// New creates a pipeline. A timeout of 0 leaves the sink call unbounded,
// matching the historical behavior; a stall blocks only that user's flow.
func New(factory sink.Factory, notifier Notifier, timeout time.Duration) *Pipeline {
	return &Pipeline{factory: factory, notifier: notifier, timeout: timeout}
}

// Submit appends the submission's row to the sink, then reports the
// outcome. The user message is only sent after the sink operation
// resolves, never optimistically before.
func (p *Pipeline) Submit(ctx context.Context, sub submission.Submission) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	s, err := p.factory(ctx)
	if err != nil {
		return p.fail(ctx, sub, &Error{Kind: SinkUnavailable, Err: err})
	}
	if s == nil {
		return p.fail(ctx, sub, &Error{Kind: SinkUnavailable, Err: errors.New("sink factory returned no handle")})
	}

	if err := s.AppendRow(ctx, sub.Row()); err != nil {
		return p.fail(ctx, sub, &Error{Kind: SinkWriteFailed, Err: err})
	}

	logrus.Infof("Chat %d: submission saved for @%s", sub.UserID, sub.Username)

	if err := p.notifier.NotifyOperator(ctx, sub.OperatorText()); err != nil {
		logrus.Errorf("Chat %d: error notifying operator: %v", sub.UserID, err)
	}
	if err := p.notifier.NotifyUser(ctx, sub.UserID, ConfirmText); err != nil {
		logrus.Errorf("Chat %d: error sending confirmation: %v", sub.UserID, err)
	}

	return nil
}

func (p *Pipeline) fail(ctx context.Context, sub submission.Submission, perr *Error) error {
	logrus.Errorf("Chat %d: submission failed: %v", sub.UserID, perr)

	if err := p.notifier.NotifyUser(ctx, sub.UserID, ApologyText); err != nil {
		logrus.Errorf("Chat %d: error sending apology: %v", sub.UserID, err)
	}

	operatorText := fmt.Sprintf("❌ Ошибка записи в таблицу:\n%v", perr.Err)
	if err := p.notifier.NotifyOperator(ctx, operatorText); err != nil {
		logrus.Errorf("Chat %d: error notifying operator of failure: %v", sub.UserID, err)
	}

	return perr
}
