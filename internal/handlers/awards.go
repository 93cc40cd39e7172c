package handlers

import (
	"context"
	"log"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/notifier"
	"github.com/badgeboard/badgeboard-api/internal/queries"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type AwardHandler struct {
	store       *store.Store
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
}

func NewAwardHandler(s *store.Store, n notifier.Notifier, authHandler *auth.AuthHandler) *AwardHandler {
	return &AwardHandler{store: s, notifier: n, authHandler: authHandler}
}

type AwardBadgeInput struct {
	auth.AuthInput
	Body struct {
		UserID    string `json:"user_id" doc:"Recipient user id" required:"true"`
		BadgeID   string `json:"badge_id" doc:"Badge to award" required:"true"`
		Reason    string `json:"reason,omitempty" doc:"Why the badge was earned"`
		BadgeType string `json:"badge_type,omitempty" enum:"work,objective" doc:"Override of the badge's default type"`
		SprintID  string `json:"sprint_id,omitempty" doc:"Sprint the work happened in"`
		AwardedAt string `json:"awarded_at,omitempty" format:"date" doc:"Award date, defaults to today"`
	}
}

type AwardBadgeOutput struct {
	Body models.BadgeAward
}

// HandleAward grants a badge to a user. A recipient can hold each badge
// only once; a second grant of the same badge id is rejected.
func (h *AwardHandler) HandleAward(ctx context.Context, input *AwardBadgeInput) (*AwardBadgeOutput, error) {
	grantor, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureAwardBadges)
	if err != nil {
		return nil, err
	}

	recipient, err := store.GetByID[models.User](h.store, input.Body.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load recipient: " + err.Error())
	}
	if recipient == nil {
		return nil, huma.Error404NotFound("Recipient not found")
	}

	badge, err := store.GetByID[models.Badge](h.store, input.Body.BadgeID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load badge: " + err.Error())
	}
	if badge == nil {
		return nil, huma.Error404NotFound("Badge not found")
	}

	if input.Body.SprintID != "" {
		sprint, err := store.GetByID[models.Sprint](h.store, input.Body.SprintID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to load sprint: " + err.Error())
		}
		if sprint == nil {
			return nil, huma.Error404NotFound("Sprint not found")
		}
	}

	existing, err := store.FilterBy[models.BadgeAward](h.store, map[string]any{
		"user_id":  input.Body.UserID,
		"badge_id": input.Body.BadgeID,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to check existing awards: " + err.Error())
	}
	if len(existing) > 0 {
		return nil, huma.Error409Conflict("Badge already awarded to this user")
	}

	award := models.BadgeAwardFromMap(map[string]any{
		"id":         store.NewID("award"),
		"user_id":    input.Body.UserID,
		"badge_id":   input.Body.BadgeID,
		"awarded_by": grantor.ID,
		"awarded_at": emptyAsAbsent(input.Body.AwardedAt),
		"reason":     input.Body.Reason,
		"badge_type": firstNonEmpty(input.Body.BadgeType, string(badge.BadgeType)),
		"sprint_id":  input.Body.SprintID,
	})

	if err := store.Create(h.store, &award); err != nil {
		return nil, huma.Error500InternalServerError("Failed to record award: " + err.Error())
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyAward(*recipient, *badge, *grantor, award); err != nil {
			// The award is already recorded; notification failures must
			// not undo it.
			log.Printf("Failed to send award notification: %v", err)
		}
	}

	return &AwardBadgeOutput{Body: award}, nil
}

type UserBadgesInput struct {
	auth.AuthInput
	UserID string `path:"userID"`
}

type UserBadgesOutput struct {
	Body []queries.AwardedBadge
}

func (h *AwardHandler) HandleUserBadges(ctx context.Context, input *UserBadgesInput) (*UserBadgesOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	badges, err := queries.UserBadges(h.store, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load user badges: " + err.Error())
	}
	return &UserBadgesOutput{Body: badges}, nil
}

type ListAwardsInput struct {
	auth.AuthInput
	SprintID string `query:"sprint_id" doc:"Filter by sprint"`
}

type ListAwardsOutput struct {
	Body []models.BadgeAward
}

func (h *AwardHandler) HandleList(ctx context.Context, input *ListAwardsInput) (*ListAwardsOutput, error) {
	if _, err := h.authHandler.CurrentUser(ctx, input.Cookie); err != nil {
		return nil, err
	}
	var awards []models.BadgeAward
	var err error
	if input.SprintID != "" {
		awards, err = store.FilterBy[models.BadgeAward](h.store, map[string]any{"sprint_id": input.SprintID})
	} else {
		awards, err = store.GetAll[models.BadgeAward](h.store)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list awards: " + err.Error())
	}
	return &ListAwardsOutput{Body: awards}, nil
}

type DeleteAwardInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *AwardHandler) HandleDelete(ctx context.Context, input *DeleteAwardInput) (*struct{}, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureAwardBadges); err != nil {
		return nil, err
	}
	removed, err := store.Delete[models.BadgeAward](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete award: " + err.Error())
	}
	if !removed {
		return nil, huma.Error404NotFound("Award not found")
	}
	return nil, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
