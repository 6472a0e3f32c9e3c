package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookieName = "stride_session"
	sessionTokenTTL   = 7 * 24 * time.Hour
	sessionSubject    = "owner"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := passphraseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	valid, err := handler.settings.ValidatePassphrase(input.Passphrase)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to validate passphrase")
	}
	if !valid {
		return apiError(c, fiber.StatusUnauthorized, "invalid passphrase")
	}

	if err := handler.setSessionCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  now.Add(sessionTokenTTL),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (handler *Handler) validateSessionToken(tokenValue string) error {
	token, err := jwt.ParseWithClaims(tokenValue, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.secretKey, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid session token")
	}
	return nil
}
