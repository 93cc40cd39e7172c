package handlers

import (
	"context"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/queries"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type TeamHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewTeamHandler(s *store.Store, authHandler *auth.AuthHandler) *TeamHandler {
	return &TeamHandler{store: s, authHandler: authHandler}
}

type ListTeamsInput struct {
	auth.AuthInput
}

type ListTeamsOutput struct {
	Body []models.Team
}

func (h *TeamHandler) HandleList(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	teams, err := store.GetAll[models.Team](h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list teams: " + err.Error())
	}
	return &ListTeamsOutput{Body: teams}, nil
}

type GetTeamInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type GetTeamOutput struct {
	Body models.Team
}

func (h *TeamHandler) HandleGet(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	team, err := store.GetByID[models.Team](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load team: " + err.Error())
	}
	if team == nil {
		return nil, huma.Error404NotFound("Team not found")
	}
	return &GetTeamOutput{Body: *team}, nil
}

type CreateTeamInput struct {
	auth.AuthInput
	Body struct {
		Name        string `json:"name" doc:"Team name" required:"true"`
		Description string `json:"description,omitempty"`
		Department  string `json:"department,omitempty"`
	}
}

type CreateTeamOutput struct {
	Body models.Team
}

func (h *TeamHandler) HandleCreate(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureEditTeams); err != nil {
		return nil, err
	}

	team := models.Team{
		ID:          store.NewID("team"),
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Department:  input.Body.Department,
	}
	if err := store.Create(h.store, &team); err != nil {
		return nil, huma.Error409Conflict("Failed to create team: " + err.Error())
	}
	return &CreateTeamOutput{Body: team}, nil
}

type UpdateTeamInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body map[string]any
}

type UpdateTeamOutput struct {
	Body models.Team
}

func (h *TeamHandler) HandleUpdate(ctx context.Context, input *UpdateTeamInput) (*UpdateTeamOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureEditTeams); err != nil {
		return nil, err
	}

	fields := allowFields(input.Body, "name", "description", "department")
	team, err := store.Update[models.Team](h.store, input.ID, fields)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update team: " + err.Error())
	}
	if team == nil {
		return nil, huma.Error404NotFound("Team not found")
	}
	return &UpdateTeamOutput{Body: *team}, nil
}

type TeamMembersInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type TeamMembersOutput struct {
	Body []auth.UserInfo
}

func (h *TeamHandler) HandleMembers(ctx context.Context, input *TeamMembersInput) (*TeamMembersOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	members, err := queries.TeamMembers(h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list members: " + err.Error())
	}
	out := &TeamMembersOutput{Body: make([]auth.UserInfo, 0, len(members))}
	for i := range members {
		out.Body = append(out.Body, userView(&members[i]))
	}
	return out, nil
}
