package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "wiring-inspector/internal/application"
	"wiring-inspector/internal/container"
	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/logger"
)

const (
	msgStart = `👋 Hi! I check the wiring of four-terminal connectors.

📸 Send me a photo of the connector and I will mark the contact points and tell you whether the strands look correctly wired.

📋 Commands:
/check - start a check
/status - result of your last check
/help - help
/cancel - cancel the current operation`

	msgHelp = `ℹ️ How to use the bot:

1️⃣ Send /check
2️⃣ Send a photo of the connector, strands visible from top to bottom
3️⃣ You get the photo back with contact points: magenta on top, blue at the bottom

💡 Tips:
• Shoot straight at the connector
• Keep all four strands in the frame
• Use even lighting without glare`

	msgAwaitingPhoto  = "📸 Send a photo of the connector."
	msgCancelled      = "❌ Cancelled. Send /check to start a new check."
	msgSendPhoto      = "📸 Please send a photo of the connector."
	msgUnknownCommand = "❓ Unknown command. Use /help."
	msgProcessing     = "⏳ Inspecting the photo..."
	msgProcessingErr  = "⚠️ The photo could not be processed. Please try another one."
	msgNoInspections  = "No checks yet. Send /check to start."
	msgCheckFirst     = "Send /check first, then the photo."
)

// Bot is the Telegram front end of the inspector.
type Bot struct {
	api         *tgbotapi.BotAPI
	users       *app.UserService
	inspections *app.InspectionService
	httpClient  *http.Client
}

// NewBot connects to Telegram.
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.WithField("account", api.Self.UserName).Info("Authorized on Telegram")

	return &Bot{
		api:         api,
		users:       c.UserService,
		inspections: c.InspectionService,
		httpClient:  http.DefaultClient,
	}, nil
}

// Run processes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		logger.WithError(err).Error("Failed to load user")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if fileID := photoFileID(msg); fileID != "" {
		if user.State != entity.StateAwaitingPhoto {
			b.sendMessage(msg.Chat.ID, msgCheckFirst)
			return
		}
		b.handlePhoto(ctx, msg, fileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	var err error

	switch msg.Command() {
	case "start":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		_, err = b.users.BeginCheck(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		_, err = b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	case "status":
		b.sendMessage(msg.Chat.ID, statusText(user))

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}

	if err != nil {
		logger.WithError(err).WithField("user_id", user.ID).Error("Failed to update user state")
	}
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	log := logger.WithFields(logrus.Fields{"user_id": msg.From.ID, "chat_id": msg.Chat.ID})

	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.WithError(err).Error("Failed to download photo")
		b.sendMessage(msg.Chat.ID, msgProcessingErr)
		return
	}

	out, err := b.inspections.InspectForUser(ctx, msg.From.ID, msg.Chat.ID, imageData)
	if err != nil {
		log.WithError(err).Error("Inspection failed")
		b.sendMessage(msg.Chat.ID, msgProcessingErr)
		return
	}

	text := caption(out)
	if len(out.Image) == 0 {
		b.sendMessage(msg.Chat.ID, text)
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "inspection.jpg", Bytes: out.Image})
	photo.Caption = text
	if _, err := b.api.Send(photo); err != nil {
		log.WithError(err).Error("Failed to send photo")
		b.sendMessage(msg.Chat.ID, text)
	}
}

// photoFileID returns the largest photo, or an image sent as a file.
func photoFileID(msg *tgbotapi.Message) string {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID
	}
	return ""
}

// caption formats the inspection result for the operator.
func caption(out *app.InspectionOutput) string {
	var sb strings.Builder
	if out.Description != nil {
		sb.WriteString(out.Description.Text)
	}
	if out.Report != nil {
		fmt.Fprintf(&sb, "\n\nStrands detected: %d", out.Report.Detected)
		if out.Report.Inferred {
			sb.WriteString(" (+1 estimated)")
		}
		fmt.Fprintf(&sb, "\nID: %s", out.Report.ID)
	}
	return sb.String()
}

func statusText(user *entity.User) string {
	if user.Inspections == 0 {
		return msgNoInspections
	}
	return fmt.Sprintf("Checks done: %d\nLast result: %s", user.Inspections, user.LastVerdict)
}

// downloadFile fetches a file from Telegram.
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}
