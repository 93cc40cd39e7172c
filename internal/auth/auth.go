package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/badgeboard/badgeboard-api/internal/config"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenDuration = 24 * time.Hour
	CookieName    = "auth_token"
)

// AuthInput carries the session cookie into authenticated huma operations.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Session cookie"`
}

type AuthHandler struct {
	store *store.Store
	cfg   *config.Config
}

func NewAuthHandler(cfg *config.Config, s *store.Store) *AuthHandler {
	return &AuthHandler{store: s, cfg: cfg}
}

// Authenticate verifies a username/password pair against the users table.
// Passwords are compared as bcrypt hashes only; a nil user with nil error
// means the credentials did not match.
func (h *AuthHandler) Authenticate(username, password string) (*models.User, error) {
	users, err := store.FilterBy[models.User](h.store, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	user := users[0]
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return &user, nil
}

func (h *AuthHandler) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize extracts and validates the session token from a raw Cookie
// header and returns the authenticated user id.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (string, error) {
	if cookieHeader == "" {
		return "", huma.Error401Unauthorized("No token found")
	}

	req := http.Request{Header: http.Header{"Cookie": []string{cookieHeader}}}
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", huma.Error401Unauthorized("No token found")
		}
		return "", huma.Error400BadRequest("Malformed cookie header")
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", huma.Error401Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", huma.Error401Unauthorized("Invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", huma.Error401Unauthorized("Invalid token claims")
	}
	return userID, nil
}

// CurrentUser resolves the session cookie to a full user record. There is
// no ambient session global; every handler resolves identity per request.
func (h *AuthHandler) CurrentUser(ctx context.Context, cookieHeader string) (*models.User, error) {
	userID, err := h.Authorize(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}
	user, err := store.GetByID[models.User](h.store, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load user: " + err.Error())
	}
	if user == nil {
		return nil, huma.Error401Unauthorized("User no longer exists")
	}
	return user, nil
}

// RequireFeature resolves the current user and checks the feature access
// table; unknown features deny everyone.
func (h *AuthHandler) RequireFeature(ctx context.Context, cookieHeader, feature string) (*models.User, error) {
	user, err := h.CurrentUser(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}
	if !HasPermission(user.Role, feature) {
		return nil, huma.Error403Forbidden(fmt.Sprintf("Access denied: %s requires a permitted role", feature))
	}
	return user, nil
}
