package services

import (
	"log"
	"strconv"

	"jewelcms/internal/models"
)

// NotifyService fans a captured lead out to the channels enabled in the
// store settings. Channel failures are logged and swallowed: alerts are
// best-effort.
type NotifyService struct {
	Settings *SettingsService
	Email    EmailService
	Telegram *TelegramService
}

func NewNotifyService(settings *SettingsService, email EmailService, telegram *TelegramService) *NotifyService {
	return &NotifyService{Settings: settings, Email: email, Telegram: telegram}
}

func (s *NotifyService) LeadCaptured(lead *models.Lead) {
	if s.Settings.Bool(models.SettingEmailNotifications) && s.Email != nil {
		to, ok, err := s.Settings.Get(models.SettingLeadNotificationEmail)
		if err == nil && ok && to != "" {
			if err := s.Email.SendLeadAlert(to, lead); err != nil {
				log.Printf("[notify][email][err] lead=%s: %v", lead.ID, err)
			}
		}
	}

	if s.Settings.Bool(models.SettingTelegramNotifications) && s.Telegram != nil {
		raw, ok, err := s.Settings.Get(models.SettingLeadNotificationChat)
		if err == nil && ok && raw != "" {
			chatID, convErr := strconv.ParseInt(raw, 10, 64)
			if convErr != nil {
				log.Printf("[notify][tg][err] bad chat id %q", raw)
				return
			}
			if err := s.Telegram.SendLeadAlert(chatID, lead); err != nil {
				log.Printf("[notify][tg][err] lead=%s: %v", lead.ID, err)
			}
		}
	}
}
