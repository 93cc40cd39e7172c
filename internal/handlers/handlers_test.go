package handlers

import (
	"testing"

	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/config"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (*store.Store, *auth.AuthHandler) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Team{}, &models.User{}, &models.Badge{}, &models.Sprint{}, &models.BadgeAward{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	s := store.New(db, store.TierMemory, false)
	cfg := &config.Config{JWTSecret: "test-secret"}
	return s, auth.NewAuthHandler(cfg, s)
}

func createTestUser(t *testing.T, s *store.Store, id, username string, role models.Role, teamID string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{ID: id, Name: "User " + id, Username: username, Password: string(hash), Role: role, TeamID: teamID}
	if err := store.Create(s, &user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func cookieFor(t *testing.T, authHandler *auth.AuthHandler, userID string) string {
	t.Helper()
	token, err := authHandler.GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return auth.CookieName + "=" + token
}
