package models

import "time"

// Setting is one key of the store configuration (store info, SEO defaults,
// notification switches, social links). Values are stored as plain strings;
// boolean switches use "true"/"false".
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Known notification keys consumed by the lead notifier.
const (
	SettingEmailNotifications    = "enableEmailNotifications"
	SettingLeadNotificationEmail = "leadNotificationEmail"
	SettingTelegramNotifications = "enableTelegramNotifications"
	SettingLeadNotificationChat  = "leadNotificationChatId"
)
