package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbot/pkg/dialog"
	"orderbot/pkg/pipeline"
	"orderbot/pkg/session"
	"orderbot/pkg/sink"
)

const (
	testChatID  = int64(42)
	testAdminID = int64(-100500)
)

// fakeSender captures every outbound message.
type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) textsTo(chatID int64) []string {
	var out []string
	for _, m := range f.sent {
		if m.ChatID == chatID {
			out = append(out, m.Text)
		}
	}
	return out
}

type recordingSink struct {
	rows [][]string
	err  error
}

func (r *recordingSink) AppendRow(_ context.Context, row []string) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, row)
	return nil
}

func newTestBot(rowSink sink.RowSink, factoryErr error) (*Bot, *fakeSender, *recordingSink) {
	sender := &fakeSender{}
	rec, _ := rowSink.(*recordingSink)

	factory := func(context.Context) (sink.RowSink, error) {
		if factoryErr != nil {
			return nil, factoryErr
		}
		if rec == nil {
			return nil, nil
		}
		return rec, nil
	}

	b := &Bot{
		sender:   sender,
		store:    session.NewStore(),
		pipeline: pipeline.New(factory, NewNotifier(sender, testAdminID), 0),
	}
	return b, sender, rec
}

func incoming(text, userName string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: testChatID, UserName: userName},
	}
}

func send(t *testing.T, b *Bot, text string) {
	t.Helper()
	require.NoError(t, b.handleTextMessage(context.Background(), incoming(text, "anna_b")))
}

func TestOrderFlowEndToEnd(t *testing.T) {
	b, sender, rec := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, "Anna")
	send(t, b, "skincare")
	send(t, b, "need landing page copy")

	require.Len(t, rec.rows, 1)
	row := rec.rows[0]
	require.Len(t, row, 6)
	assert.Equal(t, []string{"Anna", "skincare", "need landing page copy", "42", "anna_b"}, row[1:])

	userTexts := sender.textsTo(testChatID)
	require.Len(t, userTexts, 4)
	assert.Equal(t, dialog.PromptName, userTexts[0])
	assert.Equal(t, dialog.PromptNiche, userTexts[1])
	assert.Equal(t, dialog.PromptTask, userTexts[2])
	assert.Equal(t, pipeline.ConfirmText, userTexts[3])

	operatorTexts := sender.textsTo(testAdminID)
	require.Len(t, operatorTexts, 1)
	assert.Contains(t, operatorTexts[0], "📩 Новая заявка!")

	assert.False(t, b.store.Get(testChatID).InProgress())
}

func TestAbsentUsernameBecomesPlaceholder(t *testing.T) {
	b, _, rec := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, "Anna")
	send(t, b, "skincare")
	require.NoError(t, b.handleTextMessage(context.Background(), incoming("need landing page copy", "")))

	require.Len(t, rec.rows, 1)
	assert.Equal(t, "—", rec.rows[0][5])
}

func TestEmptyAnswerRepromptsAndSkipsSink(t *testing.T) {
	b, sender, rec := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, "   ")

	assert.Equal(t, session.StepAwaitingName, b.store.Get(testChatID).Step)
	assert.Empty(t, rec.rows)

	userTexts := sender.textsTo(testChatID)
	require.Len(t, userTexts, 2)
	assert.Contains(t, userTexts[1], dialog.PromptName)
}

func TestRestartMidFlowDiscardsCollected(t *testing.T) {
	b, _, rec := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, "Boris")
	send(t, b, orderButton)
	send(t, b, "Anna")
	send(t, b, "skincare")
	send(t, b, "task")

	require.Len(t, rec.rows, 1)
	assert.Equal(t, "Anna", rec.rows[0][1])
	assert.NotContains(t, rec.rows[0], "Boris")
}

func TestMenuTriggersDoNotTouchSessionMidFlow(t *testing.T) {
	b, sender, _ := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, "Anna")

	before := b.store.Get(testChatID)
	send(t, b, servicesButton)
	send(t, b, portfolioButton)
	after := b.store.Get(testChatID)

	assert.Equal(t, before, after)

	userTexts := sender.textsTo(testChatID)
	require.Len(t, userTexts, 4)
	assert.Contains(t, userTexts[2], "📋 Услуги:")
	assert.Contains(t, userTexts[3], "💼 Примеры работ:")
}

func TestSinkUnavailableApologizesAndClearsSession(t *testing.T) {
	b, sender, _ := newTestBot(nil, nil) // factory returns a nil handle

	send(t, b, orderButton)
	send(t, b, "Anna")
	send(t, b, "skincare")

	err := b.handleTextMessage(context.Background(), incoming("task", "anna_b"))
	require.Error(t, err)

	userTexts := sender.textsTo(testChatID)
	assert.Equal(t, pipeline.ApologyText, userTexts[len(userTexts)-1])

	operatorTexts := sender.textsTo(testAdminID)
	require.Len(t, operatorTexts, 1)
	assert.Contains(t, operatorTexts[0], "❌ Ошибка записи в таблицу:")

	// A failed submission is not resumable.
	assert.False(t, b.store.Get(testChatID).InProgress())
}

func TestIdleFreeTextIsIgnored(t *testing.T) {
	b, sender, rec := newTestBot(&recordingSink{}, nil)

	send(t, b, "random message")

	assert.Empty(t, sender.sent)
	assert.Empty(t, rec.rows)
	assert.False(t, b.store.Get(testChatID).InProgress())
}

func TestStartCommandGreetsWithoutTouchingSession(t *testing.T) {
	b, sender, _ := newTestBot(&recordingSink{}, nil)

	send(t, b, orderButton)
	send(t, b, startCommand)

	assert.Equal(t, session.StepAwaitingName, b.store.Get(testChatID).Step)

	userTexts := sender.textsTo(testChatID)
	require.Len(t, userTexts, 2)
	assert.Equal(t, greetingText, userTexts[1])
}
