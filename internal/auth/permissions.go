package auth

import "github.com/badgeboard/badgeboard-api/internal/models"

// Feature names used by the access table and handlers.
const (
	FeatureAwardBadges   = "award_badges"
	FeatureCreateBadges  = "create_badges"
	FeatureEditTeams     = "edit_teams"
	FeatureManageUsers   = "manage_users"
	FeatureCreateSprints = "create_sprints"
	FeatureViewReports   = "view_reports"
	FeatureExportData    = "export_data"
)

var featureRoles = map[string][]models.Role{
	FeatureAwardBadges:   {models.RoleTL, models.RoleManager},
	FeatureCreateBadges:  {models.RoleTL, models.RoleManager},
	FeatureEditTeams:     {models.RoleTL, models.RoleManager},
	FeatureManageUsers:   {models.RoleTL, models.RoleManager},
	FeatureCreateSprints: {models.RoleTL, models.RoleManager},
	FeatureViewReports:   {models.RoleTL, models.RoleManager, models.RoleDev, models.RoleQA, models.RoleRMO},
	FeatureExportData:    {models.RoleTL, models.RoleManager},
}

// HasPermission checks the static feature access table. Features not in
// the table deny all roles.
func HasPermission(role models.Role, feature string) bool {
	allowed, ok := featureRoles[feature]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
