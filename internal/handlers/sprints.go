package handlers

import (
	"context"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/queries"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type SprintHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewSprintHandler(s *store.Store, authHandler *auth.AuthHandler) *SprintHandler {
	return &SprintHandler{store: s, authHandler: authHandler}
}

type ListSprintsInput struct {
	auth.AuthInput
	TeamID string `query:"team_id" doc:"Filter by team"`
}

type ListSprintsOutput struct {
	Body []models.Sprint
}

func (h *SprintHandler) HandleList(ctx context.Context, input *ListSprintsInput) (*ListSprintsOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	var sprints []models.Sprint
	var err error
	if input.TeamID != "" {
		sprints, err = store.FilterBy[models.Sprint](h.store, map[string]any{"team_id": input.TeamID})
	} else {
		sprints, err = store.GetAll[models.Sprint](h.store)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list sprints: " + err.Error())
	}
	return &ListSprintsOutput{Body: sprints}, nil
}

type GetSprintInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type GetSprintOutput struct {
	Body models.Sprint
}

func (h *SprintHandler) HandleGet(ctx context.Context, input *GetSprintInput) (*GetSprintOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	sprint, err := store.GetByID[models.Sprint](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load sprint: " + err.Error())
	}
	if sprint == nil {
		return nil, huma.Error404NotFound("Sprint not found")
	}
	return &GetSprintOutput{Body: *sprint}, nil
}

type CreateSprintInput struct {
	auth.AuthInput
	Body struct {
		Name        string   `json:"name" required:"true"`
		Description string   `json:"description,omitempty"`
		StartDate   string   `json:"start_date" required:"true" format:"date"`
		EndDate     string   `json:"end_date" required:"true" format:"date"`
		TeamID      string   `json:"team_id,omitempty"`
		Goals       []string `json:"goals,omitempty" doc:"Ordered sprint goals"`
	}
}

type CreateSprintOutput struct {
	Body models.Sprint
}

func (h *SprintHandler) HandleCreate(ctx context.Context, input *CreateSprintInput) (*CreateSprintOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateSprints); err != nil {
		return nil, err
	}

	if input.Body.EndDate < input.Body.StartDate {
		return nil, huma.Error400BadRequest("End date cannot be before start date")
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

	sprint := models.SprintFromMap(map[string]any{
		"id":          store.NewID("sprint"),
		"name":        input.Body.Name,
		"description": input.Body.Description,
		"start_date":  input.Body.StartDate,
		"end_date":    input.Body.EndDate,
		"team_id":     input.Body.TeamID,
		"goals":       input.Body.Goals,
	})
	if err := store.Create(h.store, &sprint); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create sprint: " + err.Error())
	}
	return &CreateSprintOutput{Body: sprint}, nil
}

type UpdateSprintInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body map[string]any
}

type UpdateSprintOutput struct {
	Body models.Sprint
}

func (h *SprintHandler) HandleUpdate(ctx context.Context, input *UpdateSprintInput) (*UpdateSprintOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateSprints); err != nil {
		return nil, err
	}

	fields := allowFields(input.Body, "name", "description", "start_date", "end_date", "team_id", "goals")

	existing, err := store.GetByID[models.Sprint](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load sprint: " + err.Error())
	}
	if existing == nil {
		return nil, huma.Error404NotFound("Sprint not found")
	}

	// Validate the window the merge would produce, not just the supplied
	// fields; a single patched date can invert an otherwise valid range.
	start, end := existing.StartDate, existing.EndDate
	if v, ok := fields["start_date"].(string); ok {
		start = v
	}
	if v, ok := fields["end_date"].(string); ok {
		end = v
	}
	if end < start {
		return nil, huma.Error400BadRequest("End date cannot be before start date")
	}
	if teamID, ok := fields["team_id"].(string); ok && teamID != "" {
		team, err := store.GetByID[models.Team](h.store, teamID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to check team: " + err.Error())
		}
		if team == nil {
			return nil, huma.Error400BadRequest("Team not found")
		}
	}

	sprint, err := store.Update[models.Sprint](h.store, input.ID, fields)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update sprint: " + err.Error())
	}
	if sprint == nil {
		return nil, huma.Error404NotFound("Sprint not found")
	}
	return &UpdateSprintOutput{Body: *sprint}, nil
}

type SprintActionInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type SprintActionOutput struct {
	Body models.Sprint
}

// HandleStart is the only way a sprint becomes active; dates never flip
// status on their own.
func (h *SprintHandler) HandleStart(ctx context.Context, input *SprintActionInput) (*SprintActionOutput, error) {
	return h.transition(ctx, input, models.SprintUpcoming, models.SprintActive)
}

func (h *SprintHandler) HandleComplete(ctx context.Context, input *SprintActionInput) (*SprintActionOutput, error) {
	return h.transition(ctx, input, models.SprintActive, models.SprintCompleted)
}

func (h *SprintHandler) transition(ctx context.Context, input *SprintActionInput, from, to models.SprintStatus) (*SprintActionOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateSprints); err != nil {
		return nil, err
	}

	sprint, err := store.GetByID[models.Sprint](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load sprint: " + err.Error())
	}
	if sprint == nil {
		return nil, huma.Error404NotFound("Sprint not found")
	}
	if sprint.Status != from {
		return nil, huma.Error409Conflict("Sprint is " + string(sprint.Status) + ", expected " + string(from))
	}

	updated, err := store.Update[models.Sprint](h.store, input.ID, map[string]any{"status": string(to)})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update sprint: " + err.Error())
	}
	return &SprintActionOutput{Body: *updated}, nil
}

type CurrentSprintInput struct {
	auth.AuthInput
}

type CurrentSprintOutput struct {
	Body models.Sprint
}

func (h *SprintHandler) HandleCurrent(ctx context.Context, input *CurrentSprintInput) (*CurrentSprintOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	sprint, err := queries.CurrentSprint(h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to find current sprint: " + err.Error())
	}
	if sprint == nil {
		return nil, huma.Error404NotFound("No sprints exist")
	}
	return &CurrentSprintOutput{Body: *sprint}, nil
}
