package handlers

import (
	"context"
	"testing"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
)

func TestSprintLifecycle(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_002", "sarahj", models.RoleTL, "team_002")
	team := models.Team{ID: "team_002", Name: "Jinan Team"}
	if err := store.Create(s, &team); err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	handler := NewSprintHandler(s, authHandler)
	cookie := cookieFor(t, authHandler, "user_002")

	create := &CreateSprintInput{}
	create.Cookie = cookie
	create.Body.Name = "Release Sprint"
	create.Body.StartDate = "2024-02-05"
	create.Body.EndDate = "2024-02-18"
	create.Body.TeamID = "team_002"
	create.Body.Goals = []string{"Stabilize for release", "Prepare launch materials"}

	created, err := handler.HandleCreate(context.Background(), create)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if created.Body.Status != models.SprintUpcoming {
		t.Errorf("new sprints start upcoming, got %s", created.Body.Status)
	}
	if len(created.Body.Goals) != 2 {
		t.Errorf("expected goals to persist, got %v", created.Body.Goals)
	}

	action := &SprintActionInput{ID: created.Body.ID}
	action.Cookie = cookie

	started, err := handler.HandleStart(context.Background(), action)
	if err != nil {
		t.Fatalf("HandleStart returned error: %v", err)
	}
	if started.Body.Status != models.SprintActive {
		t.Errorf("expected active after start, got %s", started.Body.Status)
	}

	// Starting twice is a conflict.
	if _, err := handler.HandleStart(context.Background(), action); err == nil {
		t.Error("expected second start to fail")
	}

	completed, err := handler.HandleComplete(context.Background(), action)
	if err != nil {
		t.Fatalf("HandleComplete returned error: %v", err)
	}
	if completed.Body.Status != models.SprintCompleted {
		t.Errorf("expected completed, got %s", completed.Body.Status)
	}
}

func TestSprintCreateRejectsInvertedDates(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_002", "sarahj", models.RoleTL, "team_002")
	handler := NewSprintHandler(s, authHandler)

	create := &CreateSprintInput{}
	create.Cookie = cookieFor(t, authHandler, "user_002")
	create.Body.Name = "Backwards"
	create.Body.StartDate = "2024-02-18"
	create.Body.EndDate = "2024-02-05"
	if _, err := handler.HandleCreate(context.Background(), create); err == nil {
		t.Fatal("expected end before start to be rejected")
	}
}

func TestSprintUpdateKeepsWindowValid(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_002", "sarahj", models.RoleTL, "team_002")
	sprint := models.Sprint{ID: "sprint_009", Name: "Current Sprint", StartDate: "2024-01-08", EndDate: "2024-01-21", Status: models.SprintActive}
	if err := store.Create(s, &sprint); err != nil {
		t.Fatalf("failed to create sprint: %v", err)
	}

	handler := NewSprintHandler(s, authHandler)
	cookie := cookieFor(t, authHandler, "user_002")

	// Patching one date must not invert the stored window.
	update := &UpdateSprintInput{ID: "sprint_009", Body: map[string]any{"end_date": "2024-01-01"}}
	update.Cookie = cookie
	if _, err := handler.HandleUpdate(context.Background(), update); err == nil {
		t.Fatal("expected end date before existing start date to be rejected")
	}

	update = &UpdateSprintInput{ID: "sprint_009", Body: map[string]any{"start_date": "2024-01-25"}}
	update.Cookie = cookie
	if _, err := handler.HandleUpdate(context.Background(), update); err == nil {
		t.Fatal("expected start date after existing end date to be rejected")
	}

	update = &UpdateSprintInput{ID: "sprint_009", Body: map[string]any{"team_id": "team_404"}}
	update.Cookie = cookie
	if _, err := handler.HandleUpdate(context.Background(), update); err == nil {
		t.Fatal("expected unknown team to be rejected")
	}

	stored, err := store.GetByID[models.Sprint](s, "sprint_009")
	if err != nil || stored == nil {
		t.Fatalf("failed to reload sprint: %v", err)
	}
	if stored.StartDate != "2024-01-08" || stored.EndDate != "2024-01-21" {
		t.Errorf("rejected updates must not change the window, got %s..%s", stored.StartDate, stored.EndDate)
	}

	// Moving both dates together stays valid.
	update = &UpdateSprintInput{ID: "sprint_009", Body: map[string]any{"start_date": "2024-01-22", "end_date": "2024-02-04"}}
	update.Cookie = cookie
	resp, err := handler.HandleUpdate(context.Background(), update)
	if err != nil {
		t.Fatalf("HandleUpdate returned error: %v", err)
	}
	if resp.Body.StartDate != "2024-01-22" || resp.Body.EndDate != "2024-02-04" {
		t.Errorf("expected shifted window, got %s..%s", resp.Body.StartDate, resp.Body.EndDate)
	}
}

func TestSprintCreateDeniedForDev(t *testing.T) {
	s, authHandler := newTestEnv(t)

	createTestUser(t, s, "user_003", "mikel", models.RoleDev, "team_001")
	handler := NewSprintHandler(s, authHandler)

	create := &CreateSprintInput{}
	create.Cookie = cookieFor(t, authHandler, "user_003")
	create.Body.Name = "Nope"
	create.Body.StartDate = "2024-02-05"
	create.Body.EndDate = "2024-02-18"
	if _, err := handler.HandleCreate(context.Background(), create); err == nil {
		t.Fatal("expected Dev role to be denied create_sprints")
	}
}
