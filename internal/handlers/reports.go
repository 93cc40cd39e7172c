package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/queries"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
)

type ReportHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewReportHandler(s *store.Store, authHandler *auth.AuthHandler) *ReportHandler {
	return &ReportHandler{store: s, authHandler: authHandler}
}

type TeamStatsInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type TeamStatsOutput struct {
	Body queries.TeamStats
}

func (h *ReportHandler) HandleTeamStats(ctx context.Context, input *TeamStatsInput) (*TeamStatsOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureViewReports); err != nil {
		return nil, err
	}
	team, err := store.GetByID[models.Team](h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load team: " + err.Error())
	}
	if team == nil {
		return nil, huma.Error404NotFound("Team not found")
	}
	stats, err := queries.CalculateTeamStats(h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute team stats: " + err.Error())
	}
	return &TeamStatsOutput{Body: stats}, nil
}

type BalanceInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

type BalanceOutput struct {
	Body []queries.MemberBalance
}

func (h *ReportHandler) HandleBalance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureViewReports); err != nil {
		return nil, err
	}
	balance, err := queries.WorkObjectiveBalance(h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute balance: " + err.Error())
	}
	return &BalanceOutput{Body: balance}, nil
}

type LeaderboardInput struct {
	auth.AuthInput
}

type LeaderboardOutput struct {
	Body []queries.LeaderboardEntry
}

func (h *ReportHandler) HandleLeaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureViewReports); err != nil {
		return nil, err
	}
	entries, err := queries.Leaderboard(h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute leaderboard: " + err.Error())
	}
	return &LeaderboardOutput{Body: entries}, nil
}

type CSVOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type ExportAwardsInput struct {
	auth.AuthInput
}

// HandleExportAwards renders the full award log as CSV.
func (h *ReportHandler) HandleExportAwards(ctx context.Context, input *ExportAwardsInput) (*CSVOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureExportData); err != nil {
		return nil, err
	}
	awards, err := store.GetAll[models.BadgeAward](h.store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list awards: " + err.Error())
	}

	rows := [][]string{{"id", "user_id", "badge_id", "awarded_by", "awarded_at", "badge_type", "sprint_id", "reason"}}
	for _, a := range awards {
		rows = append(rows, []string{a.ID, a.UserID, a.BadgeID, a.AwardedBy, a.AwardedAt, string(a.BadgeType), a.SprintID, a.Reason})
	}
	return writeCSV(rows)
}

type ExportBalanceInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *ReportHandler) HandleExportBalance(ctx context.Context, input *ExportBalanceInput) (*CSVOutput, error) {
	if _, err := h.authHandler.RequireFeature(ctx, input.Cookie, auth.FeatureExportData); err != nil {
		return nil, err
	}
	balance, err := queries.WorkObjectiveBalance(h.store, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute balance: " + err.Error())
	}

	rows := [][]string{{"user_id", "name", "role", "work_badges", "objective_badges", "total_badges", "work_pct", "objective_pct", "balance_status"}}
	for _, b := range balance {
		rows = append(rows, []string{
			b.UserID, b.Name, b.Role,
			strconv.Itoa(b.WorkBadges), strconv.Itoa(b.ObjectiveBadges), strconv.Itoa(b.TotalBadges),
			fmt.Sprintf("%.1f", b.WorkPct), fmt.Sprintf("%.1f", b.ObjectivePct),
			b.BalanceStatus,
		})
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) (*CSVOutput, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, huma.Error500InternalServerError("Failed to encode CSV: " + err.Error())
	}
	return &CSVOutput{ContentType: "text/csv", Body: buf.Bytes()}, nil
}
