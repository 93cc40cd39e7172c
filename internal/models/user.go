package models

// User is an employee account. Password always holds a bcrypt hash, never
// plaintext.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `json:"email"`
	Role     Role   `gorm:"not null" json:"role"`
	TeamID   string `gorm:"index" json:"team_id"`
	IsLead   bool   `json:"is_lead"`
}

func (User) TableName() string { return "users" }

func (u User) ToMap() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"name":     u.Name,
		"username": u.Username,
		"password": u.Password,
		"email":    u.Email,
		"role":     string(u.Role),
		"team_id":  u.TeamID,
		"is_lead":  u.IsLead,
	}
}

func UserFromMap(m map[string]any) User {
	return User{
		ID:       mapString(m, "id", ""),
		Name:     mapString(m, "name", ""),
		Username: mapString(m, "username", ""),
		Password: mapString(m, "password", ""),
		Email:    mapString(m, "email", ""),
		Role:     Role(mapString(m, "role", string(RoleDev))),
		TeamID:   mapString(m, "team_id", ""),
		IsLead:   mapBool(m, "is_lead", false),
	}
}
