package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/stridehq/stride/internal/models"
)

const (
	maxProfileNameLength = 60
	defaultProfileName   = "User"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type SettingsStore interface {
	All() ([]models.AppSettings, error)
	Upsert(settings *models.AppSettings) error
}

type SettingsService struct {
	settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// Settings returns the singleton record, creating it with defaults on first
// access.
func (service *SettingsService) Settings() (models.AppSettings, error) {
	all, err := service.settings.All()
	if err != nil {
		return models.AppSettings{}, err
	}
	for _, record := range all {
		if record.ID == models.SettingsID {
			return record, nil
		}
	}

	created := models.AppSettings{
		Meta: models.Meta{
			ID:        models.SettingsID,
			CreatedAt: time.Now().UTC(),
		},
		ThemeMode:   models.ThemeLight,
		ProfileName: defaultProfileName,
	}
	if err := service.settings.Upsert(&created); err != nil {
		return models.AppSettings{}, err
	}
	return created, nil
}

func (service *SettingsService) SaveProfile(name string, email string) error {
	if err := validateRequiredText("profileName", name, maxProfileNameLength); err != nil {
		return err
	}
	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail != "" && !emailPattern.MatchString(trimmedEmail) {
		return newValidationError("profileEmail", "format is invalid")
	}

	settings, err := service.Settings()
	if err != nil {
		return err
	}
	settings.ProfileName = strings.TrimSpace(name)
	settings.ProfileEmail = trimmedEmail
	return service.settings.Upsert(&settings)
}

func (service *SettingsService) SaveTheme(mode string) error {
	if !models.IsThemeMode(mode) {
		return newValidationError("themeMode", "must be light, dark or custom")
	}

	settings, err := service.Settings()
	if err != nil {
		return err
	}
	settings.ThemeMode = mode
	return service.settings.Upsert(&settings)
}
