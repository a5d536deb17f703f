package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbot/pkg/session"
)

func TestStartOrderResetsAndAsksName(t *testing.T) {
	sess, prompt := StartOrder()

	assert.Equal(t, session.StepAwaitingName, sess.Step)
	assert.Empty(t, sess.Collected)
	assert.Equal(t, PromptName, prompt)
}

func TestFullWalkThroughAllSteps(t *testing.T) {
	sess, _ := StartOrder()

	res := Advance(sess, "Anna")
	require.Equal(t, ActionAsk, res.Action)
	assert.Equal(t, session.StepAwaitingNiche, res.Next.Step)
	assert.Equal(t, "Anna", res.Next.Field(session.FieldName))
	assert.Equal(t, PromptNiche, res.Reply)

	res = Advance(res.Next, "skincare")
	require.Equal(t, ActionAsk, res.Action)
	assert.Equal(t, session.StepAwaitingTask, res.Next.Step)
	assert.Equal(t, "skincare", res.Next.Field(session.FieldNiche))
	assert.Equal(t, PromptTask, res.Reply)

	res = Advance(res.Next, "need landing page copy")
	require.Equal(t, ActionSubmit, res.Action)
	assert.Equal(t, "need landing page copy", res.Task)
	assert.Equal(t, session.StepNone, res.Next.Step)
}

func TestInputIsTrimmed(t *testing.T) {
	sess, _ := StartOrder()

	res := Advance(sess, "  Anna \n")
	require.Equal(t, ActionAsk, res.Action)
	assert.Equal(t, "Anna", res.Next.Field(session.FieldName))
}

func TestEmptyInputRepromptsWithoutAdvancing(t *testing.T) {
	tests := []struct {
		name   string
		step   session.Step
		prompt string
	}{
		{"awaiting name", session.StepAwaitingName, PromptName},
		{"awaiting niche", session.StepAwaitingNiche, PromptNiche},
		{"awaiting task", session.StepAwaitingTask, PromptTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, input := range []string{"", "   ", "\n\t "} {
				sess := session.Session{Step: tt.step}
				res := Advance(sess, input)

				assert.Equal(t, ActionRetry, res.Action)
				assert.Equal(t, tt.step, res.Next.Step)
				assert.Contains(t, res.Reply, tt.prompt)
			}
		})
	}
}

func TestIdleSessionIsNotHandled(t *testing.T) {
	res := Advance(session.New(), "hello there")

	assert.Equal(t, ActionNone, res.Action)
	assert.Equal(t, session.StepNone, res.Next.Step)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	sess, _ := StartOrder()

	res := Advance(sess, "Anna")
	_ = Advance(res.Next, "skincare")

	// The first result must not pick up fields from later transitions.
	assert.Equal(t, "", res.Next.Field(session.FieldNiche))
	assert.Empty(t, sess.Collected)
}
