package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
)

func TestHandleTeamStats(t *testing.T) {
	s, authHandler := newTestEnv(t)

	team := models.Team{ID: "team_001", Name: "Blue Team"}
	if err := store.Create(s, &team); err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	createTestUser(t, s, "user_001", "johnsmith", models.RoleManager, "team_001")
	createTestUser(t, s, "user_003", "mikel", models.RoleDev, "team_001")
	createTestUser(t, s, "user_004", "emilyc", models.RoleQA, "team_001")
	createTestUser(t, s, "user_005", "davidw", models.RoleDev, "team_001")

	awards := []models.BadgeAward{
		{ID: "award_001", UserID: "user_001", BadgeID: "badge_001", AwardedBy: "user_001", AwardedAt: "2023-06-15", BadgeType: models.BadgeTypeWork},
		{ID: "award_002", UserID: "user_004", BadgeID: "badge_002", AwardedBy: "user_001", AwardedAt: "2023-07-20", BadgeType: models.BadgeTypeWork},
		{ID: "award_003", UserID: "user_004", BadgeID: "badge_008", AwardedBy: "user_001", AwardedAt: "2023-12-01", BadgeType: models.BadgeTypeWork},
		{ID: "award_004", UserID: "user_005", BadgeID: "badge_004", AwardedBy: "user_001", AwardedAt: "2023-08-15", BadgeType: models.BadgeTypeObjective},
	}
	for i := range awards {
		if err := store.Create(s, &awards[i]); err != nil {
			t.Fatalf("failed to create award: %v", err)
		}
	}

	handler := NewReportHandler(s, authHandler)

	// view_reports is open to every role, including Dev.
	req := &TeamStatsInput{ID: "team_001"}
	req.Cookie = cookieFor(t, authHandler, "user_003")
	resp, err := handler.HandleTeamStats(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleTeamStats returned error: %v", err)
	}

	if resp.Body.TotalBadges != 4 {
		t.Errorf("expected total 4, got %d", resp.Body.TotalBadges)
	}
	if resp.Body.AvgBadges != 1.0 {
		t.Errorf("expected avg 1.0, got %f", resp.Body.AvgBadges)
	}
	if resp.Body.TopPerformerID != "user_004" {
		t.Errorf("expected user_004 as top performer, got %s", resp.Body.TopPerformerID)
	}
}

func TestHandleTeamStatsUnknownTeam(t *testing.T) {
	s, authHandler := newTestEnv(t)
	createTestUser(t, s, "user_001", "johnsmith", models.RoleManager, "team_001")

	handler := NewReportHandler(s, authHandler)
	req := &TeamStatsInput{ID: "team_404"}
	req.Cookie = cookieFor(t, authHandler, "user_001")
	if _, err := handler.HandleTeamStats(context.Background(), req); err == nil {
		t.Fatal("expected 404 for unknown team")
	}
}

func TestHandleExportAwardsCSV(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_001", "johnsmith", models.RoleManager, "team_001")
	award := models.BadgeAward{ID: "award_001", UserID: "user_003", BadgeID: "badge_001", AwardedBy: "user_001", AwardedAt: "2023-06-15", Reason: "Great, consistent work", BadgeType: models.BadgeTypeWork, SprintID: "sprint_002"}
	if err := store.Create(s, &award); err != nil {
		t.Fatalf("failed to create award: %v", err)
	}

	handler := NewReportHandler(s, authHandler)

	req := &ExportAwardsInput{}
	req.Cookie = cookieFor(t, authHandler, "user_001")
	resp, err := handler.HandleExportAwards(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleExportAwards returned error: %v", err)
	}
	if resp.ContentType != "text/csv" {
		t.Errorf("expected text/csv, got %s", resp.ContentType)
	}

	lines := strings.Split(strings.TrimSpace(string(resp.Body)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,user_id,badge_id") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "award_001") || !strings.Contains(lines[1], "2023-06-15") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestHandleExportDeniedForDev(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_003", "mikel", models.RoleDev, "team_001")
	handler := NewReportHandler(s, authHandler)

	req := &ExportAwardsInput{}
	req.Cookie = cookieFor(t, authHandler, "user_003")
	if _, err := handler.HandleExportAwards(context.Background(), req); err == nil {
		t.Fatal("expected Dev role to be denied export_data")
	}
}
