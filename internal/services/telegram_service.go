package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jewelcms/internal/models"
)

type TelegramService struct {
	bot    *tgbotapi.BotAPI
	dryRun bool
}

// NewTelegramService returns a nil-safe sender; without a token every send
// is a logged no-op.
func NewTelegramService(botToken string, dryRun bool) *TelegramService {
	if botToken == "" {
		return &TelegramService{dryRun: dryRun}
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init][err] %v", err)
		return &TelegramService{dryRun: dryRun}
	}
	return &TelegramService{bot: bot, dryRun: dryRun}
}

func (t *TelegramService) SendLeadAlert(chatID int64, lead *models.Lead) error {
	text := fmt.Sprintf("💎 <b>New %s lead</b>\n%s (%s)\nScore: %d/100\nSource: %s",
		lead.Category, lead.Name, lead.Email, lead.Score, lead.Source)

	if t.bot == nil || chatID == 0 {
		log.Printf("[tg][skip] bot or chatID not configured (chatID=%d)", chatID)
		return nil
	}
	if t.dryRun {
		log.Printf("[tg][dry-run] chatID=%d text=%q", chatID, text)
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
