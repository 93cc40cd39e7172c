package models

import (
	"reflect"
	"testing"
)

func TestUserRoundTrip(t *testing.T) {
	user := User{
		ID:       "user_001",
		Name:     "John Smith",
		Username: "johnsmith",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Email:    "john.smith@example.com",
		Role:     RoleManager,
		TeamID:   "team_001",
		IsLead:   true,
	}
	got := UserFromMap(user.ToMap())
	if !reflect.DeepEqual(got, user) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, user)
	}
}

func TestUserFromMapDefaults(t *testing.T) {
	user := UserFromMap(map[string]any{"id": "user_002", "username": "sarahj"})
	if user.Role != RoleDev {
		t.Errorf("expected default role Dev, got %s", user.Role)
	}
	if user.IsLead {
		t.Error("expected is_lead to default to false")
	}
}

func TestTeamRoundTrip(t *testing.T) {
	team := Team{ID: "team_001", Name: "Blue Team", Description: "Core platform", Department: "Engineering"}
	got := TeamFromMap(team.ToMap())
	if !reflect.DeepEqual(got, team) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, team)
	}
}

func TestBadgeRoundTrip(t *testing.T) {
	badge := Badge{
		ID:               "badge_001",
		Name:             "Code Quality Champion",
		Description:      "Consistently delivers high-quality code",
		Category:         "Technical",
		HowToAchieve:     "Maintain a code quality score above 95%",
		EligibleRoles:    StringList{"Dev", "QA"},
		ExpectedTimeDays: 60,
		Validity:         "Permanent",
		BadgeType:        BadgeTypeWork,
	}
	got := BadgeFromMap(badge.ToMap())
	if !reflect.DeepEqual(got, badge) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, badge)
	}
}

func TestBadgeFromMapDefaults(t *testing.T) {
	badge := BadgeFromMap(map[string]any{"id": "badge_x", "name": "Minimal"})
	if badge.BadgeType != BadgeTypeWork {
		t.Errorf("expected default badge_type work, got %s", badge.BadgeType)
	}
	if badge.Validity != DefaultValidity {
		t.Errorf("expected default validity %q, got %q", DefaultValidity, badge.Validity)
	}
	if badge.ExpectedTimeDays != DefaultExpectedTimeDays {
		t.Errorf("expected default expected_time_days %d, got %d", DefaultExpectedTimeDays, badge.ExpectedTimeDays)
	}
}

func TestBadgeAwardRoundTrip(t *testing.T) {
	award := BadgeAward{
		ID:        "award_001",
		UserID:    "user_003",
		BadgeID:   "badge_001",
		AwardedBy: "user_001",
		AwardedAt: "2023-06-15",
		Reason:    "Maintained code quality score of 98%",
		BadgeType: BadgeTypeWork,
		SprintID:  "sprint_002",
	}
	got := BadgeAwardFromMap(award.ToMap())
	if !reflect.DeepEqual(got, award) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, award)
	}
}

func TestBadgeAwardFromMapDefaults(t *testing.T) {
	award := BadgeAwardFromMap(map[string]any{"id": "a", "user_id": "u", "badge_id": "b"})
	if award.AwardedAt != Today() {
		t.Errorf("expected awarded_at to default to today, got %s", award.AwardedAt)
	}
	if award.BadgeType != BadgeTypeWork {
		t.Errorf("expected default badge_type work, got %s", award.BadgeType)
	}
}

func TestSprintRoundTrip(t *testing.T) {
	sprint := Sprint{
		ID:          "sprint_001",
		Name:        "Sprint 23.1",
		Description: "Initial platform architecture sprint",
		StartDate:   "2023-05-01",
		EndDate:     "2023-05-14",
		TeamID:      "team_001",
		Goals:       StringList{"Finalize architecture design", "Set up development environments"},
		Status:      SprintCompleted,
	}
	got := SprintFromMap(sprint.ToMap())
	if !reflect.DeepEqual(got, sprint) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, sprint)
	}
}

func TestSprintFromMapDefaults(t *testing.T) {
	sprint := SprintFromMap(map[string]any{"id": "s", "name": "Bare"})
	if sprint.Status != SprintUpcoming {
		t.Errorf("expected default status upcoming, got %s", sprint.Status)
	}
}

func TestSprintContains(t *testing.T) {
	sprint := Sprint{StartDate: "2024-01-08", EndDate: "2024-01-21"}
	if !sprint.Contains("2024-01-08") || !sprint.Contains("2024-01-21") || !sprint.Contains("2024-01-15") {
		t.Error("expected window boundaries and interior to be contained")
	}
	if sprint.Contains("2024-01-07") || sprint.Contains("2024-01-22") {
		t.Error("expected dates outside the window to be excluded")
	}
}

func TestStringListScanValue(t *testing.T) {
	list := StringList{"Dev", "QA"}
	v, err := list.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	var scanned StringList
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if !reflect.DeepEqual(scanned, list) {
		t.Errorf("expected %v, got %v", list, scanned)
	}

	var empty StringList
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if empty != nil {
		t.Errorf("expected nil list from nil column, got %v", empty)
	}
}
