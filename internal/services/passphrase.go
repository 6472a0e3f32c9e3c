package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// The passphrase is stored as a deterministic hex digest inside the settings
// record so it survives export/import round-trips unchanged.
const (
	DefaultPassphrase   = "let me in"
	maxPassphraseLength = 120
)

func HashPassphrase(text string) string {
	digest := sha256.Sum256([]byte(text))
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// EnsurePassphrase seeds the default passphrase on first run.
func (service *SettingsService) EnsurePassphrase() error {
	settings, err := service.Settings()
	if err != nil {
		return err
	}
	if strings.TrimSpace(settings.PassphraseHash) != "" {
		return nil
	}
	settings.PassphraseHash = HashPassphrase(DefaultPassphrase)
	return service.settings.Upsert(&settings)
}

func (service *SettingsService) ValidatePassphrase(passphrase string) (bool, error) {
	if strings.TrimSpace(passphrase) == "" {
		return false, nil
	}
	settings, err := service.Settings()
	if err != nil {
		return false, err
	}
	return settings.PassphraseHash == HashPassphrase(passphrase), nil
}

func (service *SettingsService) SetPassphrase(passphrase string) error {
	if strings.TrimSpace(passphrase) == "" {
		return newValidationError("passphrase", "must not be empty")
	}
	if len([]rune(passphrase)) > maxPassphraseLength {
		return newValidationError("passphrase", "must be 120 characters or less")
	}

	settings, err := service.Settings()
	if err != nil {
		return err
	}
	settings.PassphraseHash = HashPassphrase(passphrase)
	return service.settings.Upsert(&settings)
}
