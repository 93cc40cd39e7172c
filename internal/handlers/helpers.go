package handlers

import (
	"github.com/badgeboard/badgeboard-api/internal/auth"
	"github.com/badgeboard/badgeboard-api/internal/models"
)

func userView(u *models.User) auth.UserInfo {
	return auth.UserInfo{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		TeamID:   u.TeamID,
		IsLead:   u.IsLead,
	}
}

// Request bodies model "absent" as the zero value; the FromMap defaults
// only apply to keys that are missing entirely, so zero values are
// stripped before building the mapping.

func emptyAsAbsent(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func zeroAsAbsent(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// allowFields keeps only updatable keys from a partial-update body.
func allowFields(body map[string]any, allowed ...string) map[string]any {
	out := make(map[string]any, len(body))
	for _, key := range allowed {
		if v, ok := body[key]; ok {
			out[key] = v
		}
	}
	return out
}
