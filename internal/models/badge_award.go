package models

// BadgeAward is one badge granted to one user at one point in time.
// AwardedBy is the granting user; BadgeType may override the badge's own
// type for this particular award.
type BadgeAward struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	BadgeID   string    `gorm:"index;not null" json:"badge_id"`
	AwardedBy string    `gorm:"not null" json:"awarded_by"`
	AwardedAt string    `gorm:"not null" json:"awarded_at"`
	Reason    string    `json:"reason"`
	BadgeType BadgeType `json:"badge_type"`
	SprintID  string    `gorm:"index" json:"sprint_id"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Badge *Badge `gorm:"foreignKey:BadgeID" json:"-"`
}

func (BadgeAward) TableName() string { return "badge_awards" }

func (a BadgeAward) ToMap() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"user_id":    a.UserID,
		"badge_id":   a.BadgeID,
		"awarded_by": a.AwardedBy,
		"awarded_at": a.AwardedAt,
		"reason":     a.Reason,
		"badge_type": string(a.BadgeType),
		"sprint_id":  a.SprintID,
	}
}

func BadgeAwardFromMap(m map[string]any) BadgeAward {
	return BadgeAward{
		ID:        mapString(m, "id", ""),
		UserID:    mapString(m, "user_id", ""),
		BadgeID:   mapString(m, "badge_id", ""),
		AwardedBy: mapString(m, "awarded_by", ""),
		AwardedAt: mapString(m, "awarded_at", Today()),
		Reason:    mapString(m, "reason", ""),
		BadgeType: BadgeType(mapString(m, "badge_type", string(BadgeTypeWork))),
		SprintID:  mapString(m, "sprint_id", ""),
	}
}
