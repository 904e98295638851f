package api

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	return credentials, nil
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Email, credentials.Password, credentials.Name)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "missing email or password")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, services.PasswordRequirements)
	case errors.Is(err, services.ErrEmailExists):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case err != nil:
		return handler.internalError(c, "failed to create account", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":     "User created successfully",
		"user_id": user.ID,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := clientKey(c)
	now := time.Now()
	if wait, blocked := handler.loginLimiter.retryAfter(limiterKey, now); blocked {
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		handler.loginLimiter.fail(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return handler.internalError(c, "failed to sign in", err)
	}
	handler.loginLimiter.clear(limiterKey)

	token, expiresAt, err := handler.startSession(c, user)
	if err != nil {
		return handler.internalError(c, "failed to create session", err)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"expires_at":   expiresAt.UTC().Format(time.RFC3339),
		"name":         user.Name,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.endSession(c)
	if acceptsJSON(c) || isJSONBody(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
