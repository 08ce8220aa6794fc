package services

import (
	"errors"
	"strings"

	"jewelcms/internal/repositories"
)

var ErrSettingKeyRequired = errors.New("setting key is required")

type SettingsService struct {
	Repo *repositories.SettingRepository
}

func NewSettingsService(repo *repositories.SettingRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) All() (map[string]string, error) {
	return s.Repo.All()
}

func (s *SettingsService) Get(key string) (string, bool, error) {
	return s.Repo.Get(key)
}

// Put accepts any key: the admin UI saves store info, SEO templates,
// notification switches and social links one key at a time.
func (s *SettingsService) Put(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrSettingKeyRequired
	}
	return s.Repo.Upsert(key, value)
}

// Bool reads a switch-style setting; absent keys are off.
func (s *SettingsService) Bool(key string) bool {
	v, ok, err := s.Repo.Get(key)
	if err != nil || !ok {
		return false
	}
	return v == "true" || v == "1"
}
