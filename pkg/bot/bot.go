package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"orderbot/pkg/dialog"
	"orderbot/pkg/pipeline"
	"orderbot/pkg/session"
	"orderbot/pkg/submission"
)

// Sender is the outbound half of the Telegram API the handlers need.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot represents the Telegram bot.
type Bot struct {
	api      *tgbotapi.BotAPI
	sender   Sender
	store    *session.Store
	pipeline *pipeline.Pipeline
}

// NewBot creates a new bot instance. The pipeline is attached with
// SetPipeline once its notifier has been built over the same client.
func NewBot(token string, store *session.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{api: api, sender: api, store: store}, nil
}

// API exposes the underlying client so the notifier can share it.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// SetPipeline attaches the submission pipeline. Must be called before
// StartListening.
func (b *Bot) SetPipeline(pl *pipeline.Pipeline) {
	b.pipeline = pl
}

// StartListening starts listening for updates.
func (b *Bot) StartListening() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		if err := b.handleTextMessage(context.Background(), update.Message); err != nil {
			logrus.Errorf("Chat %d: %v", update.Message.Chat.ID, err)
		}
	}
}

// handleTextMessage routes one inbound message. Menu triggers win over
// the intake flow: the services and portfolio responders answer at any
// time without touching session state, and the order button restarts
// the flow from any state.
func (b *Bot) handleTextMessage(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch message.Text {
	case startCommand:
		logrus.Infof("Chat %d: received %s command", chatID, startCommand)
		msg := tgbotapi.NewMessage(chatID, greetingText)
		msg.ReplyMarkup = mainMenu
		_, err := b.sender.Send(msg)
		return err

	case orderButton:
		logrus.Infof("Chat %d: starting order flow", chatID)
		sess, prompt := dialog.StartOrder()
		b.store.Set(chatID, sess)
		_, err := b.sender.Send(tgbotapi.NewMessage(chatID, prompt))
		return err

	case servicesButton:
		return b.sendMarkdown(chatID, servicesText)

	case portfolioButton:
		return b.sendMarkdown(chatID, portfolioText)

	default:
		return b.handleAnswer(ctx, message)
	}
}

// handleAnswer feeds free text into the intake flow, if one is open.
func (b *Bot) handleAnswer(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	sess := b.store.Get(chatID)

	res := dialog.Advance(sess, message.Text)
	switch res.Action {
	case dialog.ActionAsk:
		b.store.Set(chatID, res.Next)
		_, err := b.sender.Send(tgbotapi.NewMessage(chatID, res.Reply))
		return err

	case dialog.ActionRetry:
		_, err := b.sender.Send(tgbotapi.NewMessage(chatID, res.Reply))
		return err

	case dialog.ActionSubmit:
		return b.completeOrder(ctx, sess, res.Task, message)

	default:
		// No flow in progress and no trigger matched.
		logrus.Debugf("Chat %d: ignoring unhandled text", chatID)
		return nil
	}
}

// completeOrder builds the submission and runs the pipeline. The
// session is cleared whatever the outcome: a failed submission is not
// resumable, the user restarts from the trigger.
func (b *Bot) completeOrder(ctx context.Context, sess session.Session, task string, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	sub := submission.New(
		sess.Field(session.FieldName),
		sess.Field(session.FieldNiche),
		task,
		chatID,
		username(message),
	)

	err := b.pipeline.Submit(ctx, sub)
	b.store.Clear(chatID)
	return err
}

func (b *Bot) sendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := b.sender.Send(msg)
	return err
}

func username(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	return message.From.UserName
}
