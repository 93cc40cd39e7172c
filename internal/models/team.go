package models

type Team struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

func (Team) TableName() string { return "teams" }

func (t Team) ToMap() map[string]any {
	return map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"department":  t.Department,
	}
}

func TeamFromMap(m map[string]any) Team {
	return Team{
		ID:          mapString(m, "id", ""),
		Name:        mapString(m, "name", ""),
		Description: mapString(m, "description", ""),
		Department:  mapString(m, "department", ""),
	}
}
