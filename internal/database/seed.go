package database

import (
	"log"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the sample dataset into an empty store so the system can be
// exercised without manual setup. A store with existing users is left
// untouched.
func Seed(s *store.Store) error {
	var count int64
	if err := s.DB().Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Printf("Empty store detected, loading sample data")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, team := range seedTeams() {
		if err := store.Create(s, &team); err != nil {
			return err
		}
	}
	for _, user := range seedUsers(string(hash)) {
		if err := store.Create(s, &user); err != nil {
			return err
		}
	}
	for _, badge := range seedBadges() {
		if err := store.Create(s, &badge); err != nil {
			return err
		}
	}
	for _, sprint := range seedSprints() {
		if err := store.Create(s, &sprint); err != nil {
			return err
		}
	}
	for _, award := range seedAwards() {
		if err := store.Create(s, &award); err != nil {
			return err
		}
	}
	return nil
}

// Every sample account shares one password; real deployments replace the
// seed set on first use.
const seedPassword = "password123"

func seedTeams() []models.Team {
	return []models.Team{
		{ID: "team_001", Name: "Blue Team", Description: "Core platform development team", Department: "Engineering"},
		{ID: "team_002", Name: "Jinan Team", Description: "Customer-facing applications team", Department: "Product"},
		{ID: "team_003", Name: "Red Team", Description: "Security and infrastructure team", Department: "Operations"},
	}
}

func seedUsers(passwordHash string) []models.User {
	return []models.User{
		{ID: "user_001", Name: "John Smith", Username: "johnsmith", Password: passwordHash, Email: "john.smith@example.com", Role: models.RoleManager, TeamID: "team_001", IsLead: true},
		{ID: "user_002", Name: "Sarah Johnson", Username: "sarahj", Password: passwordHash, Email: "sarah.johnson@example.com", Role: models.RoleTL, TeamID: "team_002", IsLead: true},
		{ID: "user_003", Name: "Michael Lee", Username: "mikel", Password: passwordHash, Email: "michael.lee@example.com", Role: models.RoleDev, TeamID: "team_001"},
		{ID: "user_004", Name: "Emily Chen", Username: "emilyc", Password: passwordHash, Email: "emily.chen@example.com", Role: models.RoleQA, TeamID: "team_001"},
		{ID: "user_005", Name: "David Wilson", Username: "davidw", Password: passwordHash, Email: "david.wilson@example.com", Role: models.RoleDev, TeamID: "team_001"},
		{ID: "user_006", Name: "Jessica Brown", Username: "jessb", Password: passwordHash, Email: "jessica.brown@example.com", Role: models.RoleRMO, TeamID: "team_002"},
		{ID: "user_007", Name: "Ryan Garcia", Username: "ryang", Password: passwordHash, Email: "ryan.garcia@example.com", Role: models.RoleDev, TeamID: "team_002"},
		{ID: "user_008", Name: "Lisa Wang", Username: "lisaw", Password: passwordHash, Email: "lisa.wang@example.com", Role: models.RoleTL, TeamID: "team_003", IsLead: true},
		{ID: "user_009", Name: "Robert Kim", Username: "robertk", Password: passwordHash, Email: "robert.kim@example.com", Role: models.RoleDev, TeamID: "team_003"},
		{ID: "user_010", Name: "Amanda Singh", Username: "amandas", Password: passwordHash, Email: "amanda.singh@example.com", Role: models.RoleQA, TeamID: "team_003"},
	}
}

func seedBadges() []models.Badge {
	all := models.StringList{"Dev", "QA", "RMO", "TL"}
	allWithManager := models.StringList{"Dev", "QA", "RMO", "TL", "Manager"}
	return []models.Badge{
		{ID: "badge_001", Name: "Code Quality Champion", Description: "Consistently delivers high-quality code with minimal defects", Category: "Technical", HowToAchieve: "Maintain a code quality score above 95% for at least 3 consecutive sprints", EligibleRoles: models.StringList{"Dev", "QA"}, ExpectedTimeDays: 60, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_002", Name: "Bug Hunter", Description: "Exceptional at finding and documenting critical bugs", Category: "Technical", HowToAchieve: "Find and document 10 critical bugs that could have caused major issues", EligibleRoles: models.StringList{"QA", "Dev"}, ExpectedTimeDays: 90, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_003", Name: "Mentorship Excellence", Description: "Demonstrated exceptional mentoring skills for new team members", Category: "Leadership", HowToAchieve: "Successfully mentor at least 2 new team members and receive positive feedback", EligibleRoles: all, ExpectedTimeDays: 120, Validity: "Permanent", BadgeType: models.BadgeTypeObjective},
		{ID: "badge_004", Name: "Innovation Star", Description: "Created an innovative solution that significantly improved team productivity", Category: "Innovation", HowToAchieve: "Implement a new tool, process, or approach that measurably improves team efficiency", EligibleRoles: all, ExpectedTimeDays: 90, Validity: "Permanent", BadgeType: models.BadgeTypeObjective},
		{ID: "badge_005", Name: "Sprint MVP", Description: "Most valuable player for a sprint", Category: "Teamwork", HowToAchieve: "Make exceptional contributions during a sprint and be nominated by the team", EligibleRoles: models.StringList{"Dev", "QA", "RMO"}, ExpectedTimeDays: 30, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_006", Name: "Technical Presenter", Description: "Effectively presented a technical topic to the team", Category: "Technical", HowToAchieve: "Prepare and deliver a well-received technical presentation", EligibleRoles: all, ExpectedTimeDays: 45, Validity: "Permanent", BadgeType: models.BadgeTypeObjective},
		{ID: "badge_007", Name: "Process Improver", Description: "Implemented a significant process improvement", Category: "Process", HowToAchieve: "Identify a process bottleneck and implement an improvement that saves time", EligibleRoles: allWithManager, ExpectedTimeDays: 60, Validity: "Permanent", BadgeType: models.BadgeTypeObjective},
		{ID: "badge_008", Name: "Knowledge Sharer", Description: "Actively contributes to knowledge sharing in the team", Category: "Teamwork", HowToAchieve: "Document at least 5 valuable knowledge articles in the team wiki", EligibleRoles: all, ExpectedTimeDays: 30, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_009", Name: "Sprint Leader", Description: "Successfully led a sprint to completion", Category: "Leadership", HowToAchieve: "Lead a sprint that meets all commitments and receives positive team feedback", EligibleRoles: models.StringList{"TL", "Manager"}, ExpectedTimeDays: 15, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_010", Name: "Team Builder", Description: "Contributed significantly to team cohesion and morale", Category: "Leadership", HowToAchieve: "Organize team building activities and receive positive feedback", EligibleRoles: allWithManager, ExpectedTimeDays: 90, Validity: "Permanent", BadgeType: models.BadgeTypeObjective},
		{ID: "badge_011", Name: "Security Champion", Description: "Demonstrated exceptional awareness of security best practices", Category: "Technical", HowToAchieve: "Identify and fix at least 3 significant security vulnerabilities", EligibleRoles: models.StringList{"Dev", "QA"}, ExpectedTimeDays: 60, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
		{ID: "badge_012", Name: "Customer Advocate", Description: "Consistently considers and advocates for the customer perspective", Category: "Teamwork", HowToAchieve: "Bring customer-focused insights that improve product decisions", EligibleRoles: all, ExpectedTimeDays: 60, Validity: "Permanent", BadgeType: models.BadgeTypeWork},
	}
}

func seedSprints() []models.Sprint {
	return []models.Sprint{
		{ID: "sprint_001", Name: "Sprint 23.1", Description: "Initial platform architecture sprint", StartDate: "2023-05-01", EndDate: "2023-05-14", TeamID: "team_001", Goals: models.StringList{"Finalize architecture design", "Set up development environments", "Complete initial infrastructure setup"}, Status: models.SprintCompleted},
		{ID: "sprint_002", Name: "Sprint 23.2", Description: "Core platform development", StartDate: "2023-05-15", EndDate: "2023-05-28", TeamID: "team_001", Goals: models.StringList{"Implement authentication system", "Create database schema", "Build API foundation"}, Status: models.SprintCompleted},
		{ID: "sprint_003", Name: "Sprint 23.3", Description: "Feature development", StartDate: "2023-05-29", EndDate: "2023-06-11", TeamID: "team_001", Goals: models.StringList{"Implement user management", "Build notification system", "Create initial dashboard"}, Status: models.SprintCompleted},
		{ID: "sprint_004", Name: "Q2 Planning", Description: "Q2 Planning and Sprint 1", StartDate: "2023-07-03", EndDate: "2023-07-16", TeamID: "team_002", Goals: models.StringList{"Plan Q2 objectives", "Define sprint cadence", "Allocate resources"}, Status: models.SprintCompleted},
		{ID: "sprint_005", Name: "Release Sprint", Description: "Final preparations for initial release", StartDate: "2023-08-14", EndDate: "2023-08-27", TeamID: "team_002", Goals: models.StringList{"Complete all critical features", "Stabilize for release", "Prepare launch materials"}, Status: models.SprintCompleted},
		{ID: "sprint_006", Name: "Security Sprint", Description: "Focus on security enhancements", StartDate: "2023-09-25", EndDate: "2023-10-08", TeamID: "team_003", Goals: models.StringList{"Complete security audit", "Address critical vulnerabilities", "Implement enhanced authentication"}, Status: models.SprintCompleted},
		{ID: "sprint_007", Name: "Feature Sprint", Description: "New feature development", StartDate: "2023-10-23", EndDate: "2023-11-05", TeamID: "team_001", Goals: models.StringList{"Implement analytics dashboard", "Build reporting system", "Enhance user profiles"}, Status: models.SprintCompleted},
		{ID: "sprint_008", Name: "Integration Sprint", Description: "Integration with external systems", StartDate: "2023-11-20", EndDate: "2023-12-03", TeamID: "team_002", Goals: models.StringList{"Implement API integrations", "Build data connectors", "Create documentation"}, Status: models.SprintCompleted},
		{ID: "sprint_009", Name: "Current Sprint", Description: "Ongoing development sprint", StartDate: "2024-01-08", EndDate: "2024-01-21", TeamID: "team_001", Goals: models.StringList{"Implement user feedback features", "Enhance performance", "Fix priority bugs"}, Status: models.SprintActive},
		{ID: "sprint_010", Name: "Next Sprint", Description: "Upcoming development sprint", StartDate: "2024-01-22", EndDate: "2024-02-04", TeamID: "team_001", Goals: models.StringList{"Launch new dashboard features", "Implement advanced reporting", "Prepare for scale testing"}, Status: models.SprintUpcoming},
	}
}

func seedAwards() []models.BadgeAward {
	return []models.BadgeAward{
		{ID: "award_001", UserID: "user_003", BadgeID: "badge_001", AwardedBy: "user_001", AwardedAt: "2023-06-15", Reason: "Maintained code quality score of 98% for the last 4 sprints", BadgeType: models.BadgeTypeWork, SprintID: "sprint_002"},
		{ID: "award_002", UserID: "user_004", BadgeID: "badge_002", AwardedBy: "user_001", AwardedAt: "2023-07-20", Reason: "Discovered a critical security vulnerability in the authentication module", BadgeType: models.BadgeTypeWork, SprintID: "sprint_003"},
		{ID: "award_003", UserID: "user_002", BadgeID: "badge_009", AwardedBy: "user_001", AwardedAt: "2023-08-05", Reason: "Successfully led the Q2 planning sprint with excellent team feedback", BadgeType: models.BadgeTypeWork, SprintID: "sprint_004"},
		{ID: "award_004", UserID: "user_005", BadgeID: "badge_004", AwardedBy: "user_001", AwardedAt: "2023-08-15", Reason: "Created an automated deployment pipeline that reduced deployment time by 60%", BadgeType: models.BadgeTypeObjective, SprintID: "sprint_004"},
		{ID: "award_005", UserID: "user_006", BadgeID: "badge_008", AwardedBy: "user_002", AwardedAt: "2023-09-01", Reason: "Created comprehensive documentation for the new customer portal", BadgeType: models.BadgeTypeWork, SprintID: "sprint_005"},
		{ID: "award_006", UserID: "user_007", BadgeID: "badge_005", AwardedBy: "user_002", AwardedAt: "2023-09-15", Reason: "Stepped up to solve critical issues during the release sprint", BadgeType: models.BadgeTypeWork, SprintID: "sprint_005"},
		{ID: "award_007", UserID: "user_008", BadgeID: "badge_010", AwardedBy: "user_001", AwardedAt: "2023-10-01", Reason: "Organized team building activities that significantly improved team morale", BadgeType: models.BadgeTypeObjective},
		{ID: "award_008", UserID: "user_009", BadgeID: "badge_006", AwardedBy: "user_008", AwardedAt: "2023-10-15", Reason: "Delivered an excellent presentation on the new security framework", BadgeType: models.BadgeTypeObjective, SprintID: "sprint_006"},
		{ID: "award_009", UserID: "user_010", BadgeID: "badge_012", AwardedBy: "user_008", AwardedAt: "2023-11-01", Reason: "Consistently advocated for customer needs in feature planning", BadgeType: models.BadgeTypeWork, SprintID: "sprint_007"},
		{ID: "award_010", UserID: "user_003", BadgeID: "badge_005", AwardedBy: "user_001", AwardedAt: "2023-11-15", Reason: "Exceptional contributions during the feature development sprint", BadgeType: models.BadgeTypeWork, SprintID: "sprint_007"},
		{ID: "award_011", UserID: "user_004", BadgeID: "badge_008", AwardedBy: "user_001", AwardedAt: "2023-12-01", Reason: "Created detailed knowledge base articles for testing procedures", BadgeType: models.BadgeTypeWork, SprintID: "sprint_008"},
		{ID: "award_012", UserID: "user_005", BadgeID: "badge_003", AwardedBy: "user_001", AwardedAt: "2023-12-15", Reason: "Successfully mentored two new team members who are now productive contributors", BadgeType: models.BadgeTypeObjective},
		{ID: "award_013", UserID: "user_002", BadgeID: "badge_007", AwardedBy: "user_001", AwardedAt: "2024-01-05", Reason: "Implemented a new code review process that improved quality and reduced rework", BadgeType: models.BadgeTypeObjective, SprintID: "sprint_009"},
		{ID: "award_014", UserID: "user_001", BadgeID: "badge_010", AwardedBy: "user_001", AwardedAt: "2024-01-15", Reason: "Led successful team integration activities after reorganization", BadgeType: models.BadgeTypeObjective},
	}
}
