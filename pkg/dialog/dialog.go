// Package dialog holds the order-form state machine as a pure
// transition function, independent of the Telegram transport.
package dialog

import (
	"strings"

	"orderbot/pkg/session"
)

// Prompts for the three intake questions.
const (
	PromptName  = "Как тебя зовут?"
	PromptNiche = "Из какой ты ниши?"
	PromptTask  = "Опиши задачу, с которой тебе нужна помощь"

	retryPrefix = "Сообщение выглядит пустым. Напиши, пожалуйста, текстом 🙏"
)

// Action tells the caller what to do with a transition result.
type Action int

const (
	// ActionNone - no flow in progress, the text is not ours to handle.
	ActionNone Action = iota
	// ActionAsk - store Next and send Reply (the next question).
	ActionAsk
	// ActionRetry - send Reply, session unchanged.
	ActionRetry
	// ActionSubmit - the form is complete: build a submission from the
	// previous session's collected fields plus Task, then clear.
	ActionSubmit
)

// Result of one transition.
type Result struct {
	Next   session.Session
	Action Action
	Reply  string
	Task   string
}

// StartOrder begins (or restarts) the intake flow. Any in-progress
// answers are discarded without warning; the trigger always lands the
// user on the first question.
func StartOrder() (session.Session, string) {
	return session.Session{Step: session.StepAwaitingName}, PromptName
}

// Advance applies one user message to the session and returns the new
// session plus the action the transport should take. Input is trimmed;
// empty input re-asks the current question without advancing.
func Advance(s session.Session, text string) Result {
	text = strings.TrimSpace(text)

	switch s.Step {
	case session.StepAwaitingName:
		if text == "" {
			return retry(s, PromptName)
		}
		next := s.WithField(session.FieldName, text)
		next.Step = session.StepAwaitingNiche
		return Result{Next: next, Action: ActionAsk, Reply: PromptNiche}

	case session.StepAwaitingNiche:
		if text == "" {
			return retry(s, PromptNiche)
		}
		next := s.WithField(session.FieldNiche, text)
		next.Step = session.StepAwaitingTask
		return Result{Next: next, Action: ActionAsk, Reply: PromptTask}

	case session.StepAwaitingTask:
		if text == "" {
			return retry(s, PromptTask)
		}
		// The task answer is not collected; it goes straight into the
		// submission and the session ends either way.
		return Result{Next: session.New(), Action: ActionSubmit, Task: text}

	default:
		return Result{Next: s, Action: ActionNone}
	}
}

func retry(s session.Session, prompt string) Result {
	return Result{Next: s, Action: ActionRetry, Reply: retryPrefix + "\n\n" + prompt}
}
