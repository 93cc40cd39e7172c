package store

import (
	"testing"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Team{}, &models.User{}, &models.Badge{}, &models.Sprint{}, &models.BadgeAward{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return New(db, TierMemory, false)
}

func TestCRUDLifecycle(t *testing.T) {
	s := newTestStore(t)

	badge := models.Badge{
		ID:            "badge_001",
		Name:          "Bug Hunter",
		Category:      "Technical",
		EligibleRoles: models.StringList{"QA", "Dev"},
		BadgeType:     models.BadgeTypeWork,
	}
	if err := Create(s, &badge); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := GetByID[models.Badge](s, "badge_001")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got == nil || got.Name != "Bug Hunter" {
		t.Fatalf("expected Bug Hunter, got %+v", got)
	}
	if len(got.EligibleRoles) != 2 || got.EligibleRoles[0] != "QA" {
		t.Errorf("eligible roles did not survive storage: %v", got.EligibleRoles)
	}

	all, err := GetAll[models.Badge](s)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 badge, got %d", len(all))
	}

	removed, err := Delete[models.Badge](s, "badge_001")
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !removed {
		t.Error("expected Delete to report a removed row")
	}
	removed, err = Delete[models.Badge](s, "badge_001")
	if err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if removed {
		t.Error("expected Delete of a missing row to report false")
	}
}

func TestGetByIDAbsent(t *testing.T) {
	s := newTestStore(t)
	got, err := GetByID[models.User](s, "nope")
	if err != nil {
		t.Fatalf("expected nil error for missing row, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	s := newTestStore(t)

	badge := models.Badge{
		ID:               "badge_002",
		Name:             "Mentor",
		Description:      "original",
		EligibleRoles:    models.StringList{"Dev"},
		ExpectedTimeDays: 30,
		Validity:         "Permanent",
		BadgeType:        models.BadgeTypeObjective,
	}
	if err := Create(s, &badge); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := Update[models.Badge](s, "badge_002", map[string]any{
		"description":    "updated",
		"eligible_roles": []string{"Dev", "TL"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated record, got nil")
	}
	if updated.Description != "updated" {
		t.Errorf("expected merged description, got %q", updated.Description)
	}
	if len(updated.EligibleRoles) != 2 {
		t.Errorf("expected list field update to apply, got %v", updated.EligibleRoles)
	}
	// Untouched fields keep their values.
	if updated.Name != "Mentor" || updated.ExpectedTimeDays != 30 || updated.BadgeType != models.BadgeTypeObjective {
		t.Errorf("partial update clobbered other fields: %+v", updated)
	}
}

func TestUpdateAbsent(t *testing.T) {
	s := newTestStore(t)
	updated, err := Update[models.Badge](s, "missing", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing id, got %+v", updated)
	}
}

func TestFilterBy(t *testing.T) {
	s := newTestStore(t)

	users := []models.User{
		{ID: "user_001", Name: "A", Username: "a", Password: "x", Role: models.RoleDev, TeamID: "team_001"},
		{ID: "user_002", Name: "B", Username: "b", Password: "x", Role: models.RoleQA, TeamID: "team_001"},
		{ID: "user_003", Name: "C", Username: "c", Password: "x", Role: models.RoleTL, TeamID: "team_002"},
	}
	for i := range users {
		if err := Create(s, &users[i]); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	byTeam, err := FilterBy[models.User](s, map[string]any{"team_id": "team_001"})
	if err != nil {
		t.Fatalf("FilterBy returned error: %v", err)
	}
	if len(byTeam) != 2 {
		t.Errorf("expected 2 team_001 members, got %d", len(byTeam))
	}

	byRoles, err := FilterBy[models.User](s, map[string]any{"role": []string{"Dev", "TL"}})
	if err != nil {
		t.Fatalf("FilterBy returned error: %v", err)
	}
	if len(byRoles) != 2 {
		t.Errorf("expected 2 users with role in {Dev,TL}, got %d", len(byRoles))
	}

	both, err := FilterBy[models.User](s, map[string]any{"team_id": "team_001", "role": "QA"})
	if err != nil {
		t.Fatalf("FilterBy returned error: %v", err)
	}
	if len(both) != 1 || both[0].ID != "user_002" {
		t.Errorf("expected only user_002, got %+v", both)
	}

	none, err := FilterBy[models.User](s, map[string]any{"team_id": "team_009"})
	if err != nil {
		t.Fatalf("FilterBy returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestUsernameUniqueIndex(t *testing.T) {
	s := newTestStore(t)

	first := models.User{ID: "user_001", Name: "A", Username: "dup", Password: "x", Role: models.RoleDev}
	if err := Create(s, &first); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second := models.User{ID: "user_002", Name: "B", Username: "dup", Password: "x", Role: models.RoleDev}
	if err := Create(s, &second); err == nil {
		t.Error("expected unique index violation for duplicate username")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("badge")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
