package queries

import (
	"hash/fnv"
	"math"
	"sort"
	"time"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/badgeboard/badgeboard-api/internal/store"
)

// TeamMembers returns every user assigned to the team.
func TeamMembers(s *store.Store, teamID string) ([]models.User, error) {
	return store.FilterBy[models.User](s, map[string]any{"team_id": teamID})
}

// AwardedBadge joins an award to its badge record, the shape report views
// consume.
type AwardedBadge struct {
	Award models.BadgeAward `json:"award"`
	Badge models.Badge      `json:"badge"`
}

// UserBadges returns the user's awards joined with badge details. Awards
// whose badge has since been deleted are skipped.
func UserBadges(s *store.Store, userID string) ([]AwardedBadge, error) {
	awards, err := store.FilterBy[models.BadgeAward](s, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var out []AwardedBadge
	for _, award := range awards {
		badge, err := store.GetByID[models.Badge](s, award.BadgeID)
		if err != nil {
			return nil, err
		}
		if badge == nil {
			continue
		}
		out = append(out, AwardedBadge{Award: award, Badge: *badge})
	}
	return out, nil
}

// ActiveSprints returns sprints whose date window contains today and whose
// status is active, optionally restricted to a team.
func ActiveSprints(s *store.Store, teamID string) ([]models.Sprint, error) {
	sprints, err := store.GetAll[models.Sprint](s)
	if err != nil {
		return nil, err
	}
	today := models.Today()
	var out []models.Sprint
	for _, sprint := range sprints {
		if sprint.Status != models.SprintActive || !sprint.Contains(today) {
			continue
		}
		if teamID != "" && sprint.TeamID != teamID {
			continue
		}
		out = append(out, sprint)
	}
	return out, nil
}

// CurrentSprint prefers an active sprint whose window contains today; when
// none exists it falls back to the sprint with the latest end date. Nil
// when there are no sprints at all.
func CurrentSprint(s *store.Store) (*models.Sprint, error) {
	active, err := ActiveSprints(s, "")
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return &active[0], nil
	}

	all, err := store.GetAll[models.Sprint](s)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	latest := all[0]
	for _, sprint := range all[1:] {
		if sprint.EndDate > latest.EndDate {
			latest = sprint
		}
	}
	return &latest, nil
}

// TeamStats aggregates badge counts for one team.
type TeamStats struct {
	TotalBadges    int     `json:"total_badges"`
	RecentBadges   int     `json:"recent_badges"`
	AvgBadges      float64 `json:"avg_badges"`
	TopPerformer   string  `json:"top_performer"`
	TopPerformerID string  `json:"top_performer_id,omitempty"`
	MemberCount    int     `json:"member_count"`
}

// CalculateTeamStats computes totals, the 30-day recent count, the average
// per member, and the top performer. Ties on badge count break to the
// lexically smallest user id so the result is deterministic.
func CalculateTeamStats(s *store.Store, teamID string) (TeamStats, error) {
	members, err := TeamMembers(s, teamID)
	if err != nil {
		return TeamStats{}, err
	}
	awards, err := store.GetAll[models.BadgeAward](s)
	if err != nil {
		return TeamStats{}, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30).Format(models.DateFormat)

	stats := TeamStats{MemberCount: len(members)}
	counts := make(map[string]int, len(members))
	for _, member := range members {
		counts[member.ID] = 0
	}
	for _, award := range awards {
		if _, ok := counts[award.UserID]; !ok {
			continue
		}
		counts[award.UserID]++
		stats.TotalBadges++
		if award.AwardedAt >= thirtyDaysAgo {
			stats.RecentBadges++
		}
	}

	if len(members) > 0 {
		stats.AvgBadges = round2(float64(stats.TotalBadges) / float64(len(members)))
	}

	best := -1
	for _, member := range members {
		n := counts[member.ID]
		if n > best || (n == best && member.ID < stats.TopPerformerID) {
			best = n
			stats.TopPerformer = member.Name
			stats.TopPerformerID = member.ID
		}
	}
	return stats, nil
}

// FilterBadgesByRole returns the badges whose eligible roles include the
// given role; "All" passes everything through.
func FilterBadgesByRole(badges []models.Badge, role string) []models.Badge {
	if role == "All" {
		return badges
	}
	var out []models.Badge
	for _, badge := range badges {
		if badge.EligibleFor(models.Role(role)) {
			out = append(out, badge)
		}
	}
	return out
}

// BadgeProgress reports a user's progress towards a badge as a percentage.
// A held badge is 100. Otherwise progress is a deterministic stand-in
// derived from the id pair, pending real per-criteria tracking.
func BadgeProgress(s *store.Store, userID, badgeID string) (int, error) {
	awards, err := store.FilterBy[models.BadgeAward](s, map[string]any{"user_id": userID, "badge_id": badgeID})
	if err != nil {
		return 0, err
	}
	if len(awards) > 0 {
		return 100, nil
	}
	h := fnv.New32a()
	h.Write([]byte(userID + ":" + badgeID))
	return int(h.Sum32() % 100), nil
}

// MemberBalance captures a member's split between routine work badges and
// stretch objective badges, measured against the 80/20 target.
type MemberBalance struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	WorkBadges      int     `json:"work_badges"`
	ObjectiveBadges int     `json:"objective_badges"`
	TotalBadges     int     `json:"total_badges"`
	WorkPct         float64 `json:"work_pct"`
	ObjectivePct    float64 `json:"objective_pct"`
	BalanceStatus   string  `json:"balance_status"`
}

// WorkObjectiveBalance computes the per-member work/objective split for a
// team, with a status label against the 80/20 target.
func WorkObjectiveBalance(s *store.Store, teamID string) ([]MemberBalance, error) {
	members, err := TeamMembers(s, teamID)
	if err != nil {
		return nil, err
	}
	awards, err := store.GetAll[models.BadgeAward](s)
	if err != nil {
		return nil, err
	}

	out := make([]MemberBalance, 0, len(members))
	for _, member := range members {
		balance := MemberBalance{UserID: member.ID, Name: member.Name, Role: string(member.Role)}
		for _, award := range awards {
			if award.UserID != member.ID {
				continue
			}
			switch award.BadgeType {
			case models.BadgeTypeObjective:
				balance.ObjectiveBadges++
			default:
				balance.WorkBadges++
			}
		}
		balance.TotalBadges = balance.WorkBadges + balance.ObjectiveBadges
		if balance.TotalBadges > 0 {
			balance.WorkPct = round1(float64(balance.WorkBadges) / float64(balance.TotalBadges) * 100)
			balance.ObjectivePct = round1(float64(balance.ObjectiveBadges) / float64(balance.TotalBadges) * 100)
		}
		balance.BalanceStatus = balanceStatus(balance)
		out = append(out, balance)
	}
	return out, nil
}

func balanceStatus(b MemberBalance) string {
	switch {
	case b.TotalBadges < 3:
		return "Insufficient Data"
	case b.WorkPct >= 75 && b.WorkPct <= 85 && b.ObjectivePct >= 15 && b.ObjectivePct <= 25:
		return "Optimal Balance"
	case b.WorkPct > 90:
		return "Work Heavy"
	case b.ObjectivePct > 30:
		return "Objective Heavy"
	default:
		return "Reasonable Balance"
	}
}

// LeaderboardEntry is one user's standing in the organization-wide badge
// count ranking.
type LeaderboardEntry struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	TeamID          string `json:"team_id,omitempty"`
	TotalBadges     int    `json:"total_badges"`
	WorkBadges      int    `json:"work_badges"`
	ObjectiveBadges int    `json:"objective_badges"`
}

// Leaderboard ranks all users by badge count, descending, ties broken by
// user id.
func Leaderboard(s *store.Store) ([]LeaderboardEntry, error) {
	users, err := store.GetAll[models.User](s)
	if err != nil {
		return nil, err
	}
	awards, err := store.GetAll[models.BadgeAward](s)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entry := LeaderboardEntry{UserID: user.ID, Name: user.Name, TeamID: user.TeamID}
		for _, award := range awards {
			if award.UserID != user.ID {
				continue
			}
			entry.TotalBadges++
			if award.BadgeType == models.BadgeTypeObjective {
				entry.ObjectiveBadges++
			} else {
				entry.WorkBadges++
			}
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalBadges != entries[j].TotalBadges {
			return entries[i].TotalBadges > entries[j].TotalBadges
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
