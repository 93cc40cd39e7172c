package database

import (
	"log"

	"github.com/badgeboard/badgeboard-api/internal/config"
	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const connectAttempts = 3

// Connect walks the storage fallback chain: configured postgres DSN, then
// the local sqlite file, then a transient in-memory sqlite database. Every
// tier below the configured one marks the store as degraded so callers can
// surface it instead of silently serving an empty dataset.
func Connect(cfg *config.Config) *store.Store {
	if cfg.DatabaseURL != "" {
		if db, ok := open(postgres.Open(cfg.DatabaseURL), "postgres"); ok {
			return store.New(db, store.TierPostgres, false)
		}
		log.Printf("Primary database unreachable, falling back to sqlite file %s", cfg.DatabasePath)
	}

	degraded := cfg.DatabaseURL != ""
	if cfg.DatabasePath != "" {
		if db, ok := open(sqlite.Open(cfg.DatabasePath), "sqlite"); ok {
			return store.New(db, store.TierSQLite, degraded)
		}
		log.Printf("SQLite file unavailable, falling back to in-memory store; data will not persist")
	}

	db, ok := open(sqlite.Open(":memory:"), "memory")
	if !ok {
		log.Fatalf("Failed to open in-memory database")
	}
	return store.New(db, store.TierMemory, degraded || cfg.DatabasePath != "")
}

func open(dialector gorm.Dialector, name string) (*gorm.DB, bool) {
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			if err := migrate(db); err != nil {
				log.Printf("Failed to migrate %s database: %v", name, err)
				return nil, false
			}
			return db, true
		}
		log.Printf("Failed to connect to %s database (attempt %d/%d): %v", name, attempt, connectAttempts, err)
	}
	return nil, false
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Badge{},
		&models.Sprint{},
		&models.BadgeAward{},
	)
}
