package handlers

import (
	"context"
	"fmt"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewUserHandler(s *store.Store, authHandler *auth.AuthHandler) *UserHandler {
	return &UserHandler{store: s, authHandler: authHandler}
}

type ListUsersInput struct {
	auth.AuthInput
}

type ListUsersOutput struct {
	Body []auth.UserInfo
}

func (h *UserHandler) HandleList(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	users, err := store.GetAll[models.User](h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}
	out := &ListUsersOutput{Body: make([]auth.UserInfo, 0, len(users))}
	for i := range users {
		out.Body = append(out.Body, userView(&users[i]))
	}
	return out, nil
}

type GetUserInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type GetUserOutput struct {
	Body auth.UserInfo
}

func (h *UserHandler) HandleGet(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	user, err := store.GetByID[models.User](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load user: " + err.Error())
	}
	if user == nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &GetUserOutput{Body: userView(user)}, nil
}

type CreateUserInput struct {
	auth.AuthInput
	Body struct {
		Name     string `json:"name" required:"true"`
		Username string `json:"username" required:"true"`
		Password string `json:"password" required:"true" minLength:"8"`
		Email    string `json:"email,omitempty"`
		Role     string `json:"role,omitempty" enum:"Dev,QA,RMO,TL,Manager"`
		TeamID   string `json:"team_id,omitempty"`
		IsLead   bool   `json:"is_lead,omitempty"`
	}
}

type CreateUserOutput struct {
	Body auth.UserInfo
}

// HandleCreate enforces username uniqueness at the application layer in
// addition to the column's unique index.
func (h *UserHandler) HandleCreate(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureManageUsers); err != nil {
		return nil, err
	}

	existing, err := store.FilterBy[models.User](h.store, map[string]any{"username": input.Body.Username})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to check username: " + err.Error())
	}
	if len(existing) > 0 {
		return nil, huma.Error409Conflict(fmt.Sprintf("Username %q is already taken", input.Body.Username))
	}

	if input.Body.TeamID != "" {
		team, err := store.GetByID[models.Team](h.store, input.Body.TeamID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to check team: " + err.Error())
		}
		if team == nil {
			return nil, huma.Error400BadRequest("Team not found")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := models.UserFromMap(map[string]any{
		"id":       store.NewID("user"),
		"name":     input.Body.Name,
		"username": input.Body.Username,
		"email":    input.Body.Email,
		"role":     emptyAsAbsent(input.Body.Role),
		"team_id":  input.Body.TeamID,
		"is_lead":  input.Body.IsLead,
	})
	user.Password = string(hash)
	if !user.Role.Valid() {
		return nil, huma.Error400BadRequest(fmt.Sprintf("Unknown role %q", input.Body.Role))
	}

	if err := store.Create(h.store, &user); err != nil {
		return nil, huma.Error409Conflict("Failed to create user: " + err.Error())
	}
	return &CreateUserOutput{Body: userView(&user)}, nil
}

type UpdateUserInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body map[string]any
}

type UpdateUserOutput struct {
	Body auth.UserInfo
}

func (h *UserHandler) HandleUpdate(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureManageUsers); err != nil {
		return nil, err
	}

	fields := allowFields(input.Body, "name", "email", "role", "team_id", "is_lead")
	if role, ok := fields["role"].(string); ok && !models.Role(role).Valid() {
		return nil, huma.Error400BadRequest(fmt.Sprintf("Unknown role %q", role))
	}
	if password, ok := input.Body["password"].(string); ok && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to hash password")
		}
		fields["password"] = string(hash)
	}

	user, err := store.Update[models.User](h.store, input.ID, fields)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update user: " + err.Error())
	}
	if user == nil {
		return nil, huma.Error404NotFound("User not found")
	}
	return &UpdateUserOutput{Body: userView(user)}, nil
}

type DeleteUserInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

// HandleDelete blocks deletion while awards reference the user, either as
// recipient or as granter.
func (h *UserHandler) HandleDelete(ctx context.Context, input *DeleteUserInput) (*struct{}, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureManageUsers); err != nil {
		return nil, err
	}

	awards, err := store.GetAll[models.BadgeAward](h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to check awards: " + err.Error())
	}
	for _, award := range awards {
		if award.UserID == input.ID || award.AwardedBy == input.ID {
			return nil, huma.Error409Conflict("User has existing badge awards; delete those first")
		}
	}

	removed, err := store.Delete[models.User](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete user: " + err.Error())
	}
	if !removed {
		return nil, huma.Error404NotFound("User not found")
	}
	return nil, nil
}
