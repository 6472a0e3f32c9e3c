package api

import (
	"github.com/gofiber/fiber/v2"
)

// settingsView is what the client sees; the passphrase hash never leaves the
// server through this endpoint.
type settingsView struct {
	ThemeMode    string `json:"themeMode"`
	ProfileName  string `json:"profileName"`
	ProfileEmail string `json:"profileEmail"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.Settings()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(settingsView{
		ThemeMode:    settings.ThemeMode,
		ProfileName:  settings.ProfileName,
		ProfileEmail: settings.ProfileEmail,
	})
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.settings.SaveProfile(input.Name, input.Email); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SaveTheme(c *fiber.Ctx) error {
	input := themeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.settings.SaveTheme(input.Mode); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassphrase(c *fiber.Ctx) error {
	input := changePassphraseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	valid, err := handler.settings.ValidatePassphrase(input.CurrentPassphrase)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !valid {
		return apiError(c, fiber.StatusForbidden, "current passphrase is incorrect")
	}

	if err := handler.settings.SetPassphrase(input.NewPassphrase); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ClearData wipes every collection and reseeds the defaults the app cannot
// run without: the settings singleton and its passphrase.
func (handler *Handler) ClearData(c *fiber.Ctx) error {
	if err := handler.store.ClearAll(); err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.settings.EnsurePassphrase(); err != nil {
		return respondServiceError(c, err)
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
