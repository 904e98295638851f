package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/wellnest/internal/models"
)

const (
	sessionCookieName = "wellnest_auth"
	sessionIssuer     = "wellnest"

	contextUserKey = "current_user"
	// contextUserIDKey is read by the request logger.
	contextUserIDKey = "user_id"
)

var errNoSession = errors.New("no session")

type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// sessions issues and verifies HS256 tokens carried in a bearer header or
// the session cookie.
type sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func newSessions(secret string, ttl time.Duration, secure bool) sessions {
	return sessions{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (s sessions) issue(userID uint) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s sessions) verify(raw string) (uint, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, err
	}
	if claims.UserID == 0 {
		return 0, errNoSession
	}
	return claims.UserID, nil
}

func (s sessions) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  expires,
	}
}

// sessionToken prefers an Authorization bearer header over the cookie.
func sessionToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	return strings.TrimSpace(c.Cookies(sessionCookieName))
}

func (handler *Handler) sessionUser(c *fiber.Ctx) (*models.User, error) {
	raw := sessionToken(c)
	if raw == "" {
		return nil, errNoSession
	}
	userID, err := handler.sessions.verify(raw)
	if err != nil {
		return nil, err
	}
	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// optionalSessionUser binds the signed-in user to the request when there is
// one and returns nil otherwise.
func (handler *Handler) optionalSessionUser(c *fiber.Ctx) *models.User {
	user, err := handler.sessionUser(c)
	if err != nil {
		return nil
	}
	bindUser(c, user)
	return user
}

func (handler *Handler) startSession(c *fiber.Ctx, user models.User) (string, time.Time, error) {
	token, expiresAt, err := handler.sessions.issue(user.ID)
	if err != nil {
		return "", time.Time{}, err
	}
	c.Cookie(handler.sessions.cookie(token, expiresAt))
	return token, expiresAt, nil
}

func (handler *Handler) endSession(c *fiber.Ctx) {
	c.Cookie(handler.sessions.cookie("", handler.sessions.now().Add(-time.Hour)))
}

// AuthRequired answers API calls with 401 and sends page requests to /login.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.sessionUser(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	bindUser(c, user)
	return c.Next()
}

func bindUser(c *fiber.Ctx, user *models.User) {
	c.Locals(contextUserKey, user)
	c.Locals(contextUserIDKey, user.ID)
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok && user != nil
}

func currentUserID(c *fiber.Ctx) uint {
	if user, ok := currentUser(c); ok {
		return user.ID
	}
	return 0
}
