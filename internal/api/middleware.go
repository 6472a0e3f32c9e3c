package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if err := handler.validateSessionToken(token); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}
