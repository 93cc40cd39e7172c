package models

// Badge defaults applied when absent from an input mapping.
const (
	DefaultValidity         = "Permanent"
	DefaultExpectedTimeDays = 30
)

type Badge struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Name             string     `gorm:"uniqueIndex;not null" json:"name"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	HowToAchieve     string     `json:"how_to_achieve"`
	EligibleRoles    StringList `gorm:"type:text" json:"eligible_roles"`
	ExpectedTimeDays int        `json:"expected_time_days"`
	Validity         string     `json:"validity"`
	BadgeType        BadgeType  `json:"badge_type"`
}

func (Badge) TableName() string { return "badges" }

func (b Badge) ToMap() map[string]any {
	return map[string]any{
		"id":                 b.ID,
		"name":               b.Name,
		"description":        b.Description,
		"category":           b.Category,
		"how_to_achieve":     b.HowToAchieve,
		"eligible_roles":     append(StringList(nil), b.EligibleRoles...),
		"expected_time_days": b.ExpectedTimeDays,
		"validity":           b.Validity,
		"badge_type":         string(b.BadgeType),
	}
}

func BadgeFromMap(m map[string]any) Badge {
	return Badge{
		ID:               mapString(m, "id", ""),
		Name:             mapString(m, "name", ""),
		Description:      mapString(m, "description", ""),
		Category:         mapString(m, "category", ""),
		HowToAchieve:     mapString(m, "how_to_achieve", ""),
		EligibleRoles:    mapStrings(m, "eligible_roles"),
		ExpectedTimeDays: mapInt(m, "expected_time_days", DefaultExpectedTimeDays),
		Validity:         mapString(m, "validity", DefaultValidity),
		BadgeType:        BadgeType(mapString(m, "badge_type", string(BadgeTypeWork))),
	}
}

// EligibleFor reports whether the badge can be earned by the given role.
func (b Badge) EligibleFor(role Role) bool {
	for _, r := range b.EligibleRoles {
		if Role(r) == role {
			return true
		}
	}
	return false
}
