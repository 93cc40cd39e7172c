package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth    *auth.AuthHandler
	Badges  *BadgeHandler
	Teams   *TeamHandler
	Users   *UserHandler
	Sprints *SprintHandler
	Awards  *AwardHandler
	Reports *ReportHandler
}

func RegisterRoutes(r *chi.Mux, s *store.Store, h Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Badgeboard API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	// Liveness plus the storage tier actually reached; degraded means the
	// configured target was unreachable and data visibility is reduced.
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"storage":  s.Tier(),
			"degraded": s.Degraded(),
		})
	})

	// Session
	huma.Post(api, "/auth/login", h.Auth.HandleLogin)
	huma.Post(api, "/auth/logout", h.Auth.HandleLogout)
	huma.Get(api, "/me", h.Auth.HandleMe, secured)

	// Badges
	huma.Get(api, "/badges", h.Badges.HandleList, secured)
	huma.Get(api, "/badges/{id}", h.Badges.HandleGet, secured)
	huma.Post(api, "/badges", h.Badges.HandleCreate, secured)
	huma.Patch(api, "/badges/{id}", h.Badges.HandleUpdate, secured)
	huma.Delete(api, "/badges/{id}", h.Badges.HandleDelete, secured)

	// Teams
	huma.Get(api, "/teams", h.Teams.HandleList, secured)
	huma.Get(api, "/teams/{id}", h.Teams.HandleGet, secured)
	huma.Post(api, "/teams", h.Teams.HandleCreate, secured)
	huma.Patch(api, "/teams/{id}", h.Teams.HandleUpdate, secured)
	huma.Get(api, "/teams/{id}/members", h.Teams.HandleMembers, secured)

	// Users
	huma.Get(api, "/users", h.Users.HandleList, secured)
	huma.Get(api, "/users/{id}", h.Users.HandleGet, secured)
	huma.Post(api, "/users", h.Users.HandleCreate, secured)
	huma.Patch(api, "/users/{id}", h.Users.HandleUpdate, secured)
	huma.Delete(api, "/users/{id}", h.Users.HandleDelete, secured)

	// Sprints
	huma.Get(api, "/sprints", h.Sprints.HandleList, secured)
	huma.Get(api, "/sprints/current", h.Sprints.HandleCurrent, secured)
	huma.Get(api, "/sprints/{id}", h.Sprints.HandleGet, secured)
	huma.Post(api, "/sprints", h.Sprints.HandleCreate, secured)
	huma.Patch(api, "/sprints/{id}", h.Sprints.HandleUpdate, secured)
	huma.Post(api, "/sprints/{id}/start", h.Sprints.HandleStart, secured)
	huma.Post(api, "/sprints/{id}/complete", h.Sprints.HandleComplete, secured)

	// Awards
	huma.Post(api, "/awards", h.Awards.HandleAward, secured)
	huma.Get(api, "/awards", h.Awards.HandleList, secured)
	huma.Delete(api, "/awards/{id}", h.Awards.HandleDelete, secured)
	huma.Get(api, "/users/{userID}/badges", h.Awards.HandleUserBadges, secured)
	huma.Get(api, "/users/{userID}/badges/{badgeID}/progress", h.Badges.HandleProgress, secured)

	// Reports
	huma.Get(api, "/reports/teams/{id}/stats", h.Reports.HandleTeamStats, secured)
	huma.Get(api, "/reports/teams/{id}/balance", h.Reports.HandleBalance, secured)
	huma.Get(api, "/reports/leaderboard", h.Reports.HandleLeaderboard, secured)
	huma.Get(api, "/reports/export/awards", h.Reports.HandleExportAwards, secured)
	huma.Get(api, "/reports/export/teams/{id}/balance", h.Reports.HandleExportBalance, secured)
}

func secured(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}
