package store

import (
	"errors"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"gorm.io/gorm"
)

// Tier identifies which storage target the connection chain reached.
type Tier string

const (
	TierPostgres Tier = "postgres"
	TierSQLite   Tier = "sqlite"
	TierMemory   Tier = "memory"
)

// Store wraps the database handle together with the degradation state of
// the connection chain. Falling back past the configured target is a data
// visibility hazard, so it is carried as an explicit signal instead of
// being swallowed.
type Store struct {
	db       *gorm.DB
	tier     Tier
	degraded bool
}

func New(db *gorm.DB, tier Tier, degraded bool) *Store {
	return &Store{db: db, tier: tier, degraded: degraded}
}

func (s *Store) DB() *gorm.DB   { return s.db }
func (s *Store) Tier() Tier     { return s.tier }
func (s *Store) Degraded() bool { return s.degraded }

// GetAll returns every row of the entity type. The domain tops out at low
// hundreds of rows, so there is no pagination.
func GetAll[T any](s *Store) ([]T, error) {
	var out []T
	if err := s.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns nil without error when no row matches.
func GetByID[T any](s *Store, id string) (*T, error) {
	var rec T
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts the record as supplied; ids come from the caller.
func Create[T any](s *Store, rec *T) error {
	return s.db.Create(rec).Error
}

// Update merges the given fields into an existing row and returns the
// refreshed record, or nil when the id does not exist. List-valued fields
// are normalized so they hit their JSON text columns.
func Update[T any](s *Store, id string, fields map[string]any) (*T, error) {
	existing, err := GetByID[T](s, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if len(fields) > 0 {
		if err := s.db.Model(new(T)).Where("id = ?", id).Updates(normalize(fields)).Error; err != nil {
			return nil, err
		}
	}
	return GetByID[T](s, id)
}

// Delete reports whether a row was actually removed.
func Delete[T any](s *Store, id string) (bool, error) {
	res := s.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FilterBy filters GetAll results in memory over the mapping
// representation: equality per field, or membership when the predicate
// value is itself a list.
func FilterBy[T models.Mapper](s *Store, predicates map[string]any) ([]T, error) {
	all, err := GetAll[T](s)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range all {
		if matches(item.ToMap(), predicates) {
			out = append(out, item)
		}
	}
	return out, nil
}

func matches(record map[string]any, predicates map[string]any) bool {
	for key, want := range predicates {
		got := record[key]
		switch allowed := want.(type) {
		case []string:
			if !containsValue(toAnySlice(allowed), got) {
				return false
			}
		case []any:
			if !containsValue(allowed, got) {
				return false
			}
		default:
			if !equalValue(got, want) {
				return false
			}
		}
	}
	return true
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func containsValue(allowed []any, got any) bool {
	for _, v := range allowed {
		if equalValue(got, v) {
			return true
		}
	}
	return false
}

func equalValue(got, want any) bool {
	if got == want {
		return true
	}
	// Typed enum values compare equal to their string spellings.
	gs, gok := stringValue(got)
	ws, wok := stringValue(want)
	return gok && wok && gs == ws
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case models.Role:
		return string(s), true
	case models.BadgeType:
		return string(s), true
	case models.SprintStatus:
		return string(s), true
	}
	return "", false
}

func normalize(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch list := v.(type) {
		case []string:
			out[k] = models.StringList(list)
		case []any:
			converted := make(models.StringList, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					converted = append(converted, s)
				}
			}
			out[k] = converted
		default:
			out[k] = v
		}
	}
	return out
}
