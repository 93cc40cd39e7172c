package handlers

import (
	"context"
	"fmt"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/queries"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type BadgeHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewBadgeHandler(s *store.Store, authHandler *auth.AuthHandler) *BadgeHandler {
	return &BadgeHandler{store: s, authHandler: authHandler}
}

type ListBadgesInput struct {
	auth.AuthInput
	Role string `query:"role" doc:"Filter by eligible role, or All"`
}

type ListBadgesOutput struct {
	Body []models.Badge
}

func (h *BadgeHandler) HandleList(ctx context.Context, input *ListBadgesInput) (*ListBadgesOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	badges, err := store.GetAll[models.Badge](h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list badges: " + err.Error())
	}
	if input.Role != "" {
		badges = queries.FilterBadgesByRole(badges, input.Role)
	}
	return &ListBadgesOutput{Body: badges}, nil
}

type GetBadgeInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type GetBadgeOutput struct {
	Body models.Badge
}

func (h *BadgeHandler) HandleGet(ctx context.Context, input *GetBadgeInput) (*GetBadgeOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	badge, err := store.GetByID[models.Badge](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load badge: " + err.Error())
	}
	if badge == nil {
		return nil, huma.Error404NotFound("Badge not found")
	}
	return &GetBadgeOutput{Body: *badge}, nil
}

type BadgeFields struct {
	Name             string   `json:"name" doc:"Badge name" required:"true"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category,omitempty" doc:"Free-text classification"`
	HowToAchieve     string   `json:"how_to_achieve,omitempty"`
	EligibleRoles    []string `json:"eligible_roles,omitempty" doc:"Roles that can earn the badge"`
	ExpectedTimeDays int      `json:"expected_time_days,omitempty" minimum:"1"`
	Validity         string   `json:"validity,omitempty" doc:"Expiry label, defaults to Permanent"`
	BadgeType        string   `json:"badge_type,omitempty" enum:"work,objective"`
}

type CreateBadgeInput struct {
	auth.AuthInput
	Body BadgeFields
}

type CreateBadgeOutput struct {
	Body models.Badge
}

func (h *BadgeHandler) HandleCreate(ctx context.Context, input *CreateBadgeInput) (*CreateBadgeOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateBadges); err != nil {
		return nil, err
	}

	for _, r := range input.Body.EligibleRoles {
		if !models.Role(r).Valid() {
			return nil, huma.Error400BadRequest(fmt.Sprintf("Unknown role %q", r))
		}
	}

	badge := models.BadgeFromMap(map[string]any{
		"id":                 store.NewID("badge"),
		"name":               input.Body.Name,
		"description":        input.Body.Description,
		"category":           input.Body.Category,
		"how_to_achieve":     input.Body.HowToAchieve,
		"eligible_roles":     input.Body.EligibleRoles,
		"expected_time_days": zeroAsAbsent(input.Body.ExpectedTimeDays),
		"validity":           emptyAsAbsent(input.Body.Validity),
		"badge_type":         emptyAsAbsent(input.Body.BadgeType),
	})
	if !badge.BadgeType.Valid() {
		return nil, huma.Error400BadRequest("badge_type must be work or objective")
	}

	if err := store.Create(h.store, &badge); err != nil {
		return nil, huma.Error409Conflict("Failed to create badge: " + err.Error())
	}
	return &CreateBadgeOutput{Body: badge}, nil
}

type UpdateBadgeInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body map[string]any
}

type UpdateBadgeOutput struct {
	Body models.Badge
}

func (h *BadgeHandler) HandleUpdate(ctx context.Context, input *UpdateBadgeInput) (*UpdateBadgeOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateBadges); err != nil {
		return nil, err
	}

	fields := allowFields(input.Body, "name", "description", "category", "how_to_achieve",
		"eligible_roles", "expected_time_days", "validity", "badge_type")
	if err := validateBadgeFields(fields); err != nil {
		return nil, err
	}
	badge, err := store.Update[models.Badge](h.store, input.ID, fields)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update badge: " + err.Error())
	}
	if badge == nil {
		return nil, huma.Error404NotFound("Badge not found")
	}
	return &UpdateBadgeOutput{Body: *badge}, nil
}

// validateBadgeFields applies the create-path enum and range checks to a
// partial-update field set. Values may come straight from JSON decoding,
// so lists arrive as []any and numbers as float64.
func validateBadgeFields(fields map[string]any) error {
	if v, ok := fields["eligible_roles"]; ok {
		var roles []string
		switch list := v.(type) {
		case []string:
			roles = list
		case []any:
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return huma.Error400BadRequest("eligible_roles must be a list of roles")
				}
				roles = append(roles, s)
			}
		default:
			return huma.Error400BadRequest("eligible_roles must be a list of roles")
		}
		for _, r := range roles {
			if !models.Role(r).Valid() {
				return huma.Error400BadRequest(fmt.Sprintf("Unknown role %q", r))
			}
		}
	}
	if v, ok := fields["badge_type"]; ok {
		s, ok := v.(string)
		if !ok || !models.BadgeType(s).Valid() {
			return huma.Error400BadRequest("badge_type must be work or objective")
		}
	}
	if v, ok := fields["expected_time_days"]; ok {
		days := -1
		switch n := v.(type) {
		case int:
			days = n
		case float64:
			days = int(n)
		}
		if days < 1 {
			return huma.Error400BadRequest("expected_time_days must be positive")
		}
	}
	return nil
}

type DeleteBadgeInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

// HandleDelete blocks deletion while awards still reference the badge, so
// no award row is ever orphaned.
func (h *BadgeHandler) HandleDelete(ctx context.Context, input *DeleteBadgeInput) (*struct{}, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureCreateBadges); err != nil {
		return nil, err
	}

	awards, err := store.FilterBy[models.BadgeAward](h.store, map[string]any{"badge_id": input.ID})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to check awards: " + err.Error())
	}
	if len(awards) > 0 {
		return nil, huma.Error409Conflict("Badge has existing awards; delete those first")
	}

	removed, err := store.Delete[models.Badge](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete badge: " + err.Error())
	}
	if !removed {
		return nil, huma.Error404NotFound("Badge not found")
	}
	return nil, nil
}

type BadgeProgressInput struct {
	auth.AuthInput
	UserID  string `path:"userID"`
	BadgeID string `path:"badgeID"`
}

type BadgeProgressOutput struct {
	Body struct {
		Progress int `json:"progress" doc:"Percentage progress towards the badge"`
	}
}

func (h *BadgeHandler) HandleProgress(ctx context.Context, input *BadgeProgressInput) (*BadgeProgressOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	badge, err := store.GetByID[models.Badge](h.store, input.BadgeID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load badge: " + err.Error())
	}
	if badge == nil {
		return nil, huma.Error404NotFound("Badge not found")
	}
	progress, err := queries.BadgeProgress(h.store, input.UserID, input.BadgeID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute progress: " + err.Error())
	}
	out := &BadgeProgressOutput{}
	out.Body.Progress = progress
	return out, nil
}
