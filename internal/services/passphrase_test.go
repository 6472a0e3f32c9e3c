package services

import (
	"strings"
	"testing"
)

func TestHashPassphraseIsDeterministicUppercaseHex(t *testing.T) {
	first := HashPassphrase("let me in")
	second := HashPassphrase("let me in")
	if first != second {
		t.Fatal("hash must be deterministic")
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(first))
	}
	if first != strings.ToUpper(first) {
		t.Fatal("hash must be uppercase hex")
	}
	if HashPassphrase("something else") == first {
		t.Fatal("different inputs must not collide")
	}
}

func TestEnsurePassphraseSeedsDefaultOnce(t *testing.T) {
	settingsStore := &stubSettingsStore{}
	service := NewSettingsService(settingsStore)

	if err := service.EnsurePassphrase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	settings, err := service.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.PassphraseHash != HashPassphrase(DefaultPassphrase) {
		t.Fatal("expected the default passphrase hash")
	}

	// A custom passphrase must survive later seeding calls.
	if err := service.SetPassphrase("my own secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.EnsurePassphrase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings, err = service.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.PassphraseHash != HashPassphrase("my own secret") {
		t.Fatal("seeding must not overwrite an existing passphrase")
	}
}

func TestValidatePassphrase(t *testing.T) {
	service := NewSettingsService(&stubSettingsStore{})
	if err := service.EnsurePassphrase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := service.ValidatePassphrase(DefaultPassphrase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("default passphrase must validate")
	}

	valid, err = service.ValidatePassphrase("wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("wrong passphrase must not validate")
	}

	valid, err = service.ValidatePassphrase("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("blank passphrase must not validate")
	}
}

func TestSetPassphraseValidation(t *testing.T) {
	service := NewSettingsService(&stubSettingsStore{})

	for _, passphrase := range []string{"", "   ", strings.Repeat("x", 121)} {
		err := service.SetPassphrase(passphrase)
		if err == nil {
			t.Fatalf("expected validation error for %q", passphrase)
		}
		if checkErr := assertValidationField(err, "passphrase"); checkErr != nil {
			t.Fatal(checkErr)
		}
	}
}
