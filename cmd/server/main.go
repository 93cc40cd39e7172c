package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/config"
	"github.com/badgeboard/badgeboard-api/internal/database"
	"github.com/badgeboard/badgeboard-api/internal/handlers"
	"github.com/badgeboard/badgeboard-api/internal/notifier"
	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	s := database.Connect(cfg)
	if s.Degraded() {
		log.Printf("WARNING: storage degraded to %s tier; previously persisted data is not visible", s.Tier())
	}
	if cfg.SeedData {
		if err := database.Seed(s); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize Notifier
	var awardNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			awardNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, s)
	h := handlers.Handlers{
		Auth:    authHandler,
		Badges:  handlers.NewBadgeHandler(s, authHandler),
		Teams:   handlers.NewTeamHandler(s, authHandler),
		Users:   handlers.NewUserHandler(s, authHandler),
		Sprints: handlers.NewSprintHandler(s, authHandler),
		Awards:  handlers.NewAwardHandler(s, awardNotifier, authHandler),
		Reports: handlers.NewReportHandler(s, authHandler),
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, s, h)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
