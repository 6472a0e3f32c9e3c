package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/stridehq/stride/internal/security"
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
)

const temporaryPassphraseAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// RunResetPassphrase replaces the stored passphrase with a freshly generated
// temporary one and prints it. This is the recovery path when the owner is
// locked out; it needs filesystem access to the database, not a session.
func RunResetPassphrase(dbPath string) error {
	recordStore, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := recordStore.Initialize(); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	temporary, err := security.RandomString(12, temporaryPassphraseAlphabet)
	if err != nil {
		return fmt.Errorf("generate temporary passphrase: %w", err)
	}

	settings := services.NewSettingsService(store.NewCollections(recordStore).Settings)
	if err := settings.SetPassphrase(temporary); err != nil {
		return fmt.Errorf("store temporary passphrase: %w", err)
	}

	color.Green("Passphrase reset successful")
	fmt.Printf("Temporary passphrase: %s\n", color.New(color.Bold).Sprint(temporary))
	color.Yellow("Change it from the settings page after signing in.")

	return nil
}
