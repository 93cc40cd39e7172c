package models

// Sprint is a fixed-duration work period. Status transitions only through
// explicit start/complete actions; date comparisons never mutate it.
type Sprint struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	StartDate   string       `gorm:"not null" json:"start_date"`
	EndDate     string       `gorm:"not null" json:"end_date"`
	TeamID      string       `gorm:"index" json:"team_id"`
	Goals       StringList   `gorm:"type:text" json:"goals"`
	Status      SprintStatus `json:"status"`
}

func (Sprint) TableName() string { return "sprints" }

func (s Sprint) ToMap() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"name":        s.Name,
		"description": s.Description,
		"start_date":  s.StartDate,
		"end_date":    s.EndDate,
		"team_id":     s.TeamID,
		"goals":       append(StringList(nil), s.Goals...),
		"status":      string(s.Status),
	}
}

func SprintFromMap(m map[string]any) Sprint {
	return Sprint{
		ID:          mapString(m, "id", ""),
		Name:        mapString(m, "name", ""),
		Description: mapString(m, "description", ""),
		StartDate:   mapString(m, "start_date", ""),
		EndDate:     mapString(m, "end_date", ""),
		TeamID:      mapString(m, "team_id", ""),
		Goals:       mapStrings(m, "goals"),
		Status:      SprintStatus(mapString(m, "status", string(SprintUpcoming))),
	}
}

// Contains reports whether the sprint's date window includes the given
// ISO date.
func (s Sprint) Contains(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}
