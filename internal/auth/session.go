package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
)

type LoginInput struct {
	Body struct {
		Username string `json:"username" doc:"Login username" required:"true"`
		Password string `json:"password" doc:"Login password" required:"true"`
	}
}

type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      UserInfo
}

// UserInfo is the public shape of an authenticated user; the password
// hash never leaves the server.
type UserInfo struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	TeamID   string      `json:"team_id,omitempty"`
	IsLead   bool        `json:"is_lead"`
}

func userInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		TeamID:   u.TeamID,
		IsLead:   u.IsLead,
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := h.Authenticate(input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to verify credentials: " + err.Error())
	}
	if user == nil {
		return nil, huma.Error401Unauthorized("Invalid username or password")
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	return &LoginOutput{
		SetCookie: http.Cookie{
			Name:     CookieName,
			Value:    token,
			Expires:  time.Now().Add(TokenDuration),
			HttpOnly: true,
			Path:     "/",
		},
		Body: userInfo(user),
	}, nil
}

type MeInput struct {
	AuthInput
}

type MeOutput struct {
	Body UserInfo
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *MeInput) (*MeOutput, error) {
	user, err := h.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	return &MeOutput{Body: userInfo(user)}, nil
}

type LogoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Message string `json:"message"`
	}
}

// HandleLogout expires the session cookie. Tokens are stateless, so this
// is purely a client-side clear.
func (h *AuthHandler) HandleLogout(ctx context.Context, input *struct{}) (*LogoutOutput, error) {
	out := &LogoutOutput{
		SetCookie: http.Cookie{
			Name:     CookieName,
			Value:    "",
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Path:     "/",
		},
	}
	out.Body.Message = "Logged out"
	return out, nil
}
