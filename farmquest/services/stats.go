package services

import (
	"sort"
	"time"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

// StatsService aggregates platform-wide numbers for the admin dashboard.
type StatsService struct {
	store *store.Store
	now   func() time.Time
}

func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st, now: time.Now}
}

// AdminStats computes the dashboard aggregates from the current snapshot.
func (s *StatsService) AdminStats() models.AdminStats {
	state := s.store.State()
	now := s.now()

	stats := models.AdminStats{
		TotalFarmers: len(state.Users),
	}

	for _, q := range state.Quests {
		switch {
		case q.IsCompleted:
			stats.CompletedQuests++
		case q.IsActive:
			stats.ActiveQuests++
		}
	}
	if len(state.Quests) > 0 {
		stats.QuestCompletionRate = float64(stats.CompletedQuests) / float64(len(state.Quests))
	}

	pointsByDistrict := make(map[string]int)
	for _, u := range state.Users {
		stats.TotalSustainabilityScore += u.SustainabilityScore
		pointsByDistrict[u.District] += u.TotalPoints
		if u.JoinedDate.Year() == now.Year() && u.JoinedDate.Month() == now.Month() {
			stats.NewUsersThisMonth++
		}
	}

	stats.TopPerformingDistricts = topDistricts(pointsByDistrict, config.TopDistrictCount)
	return stats
}

func topDistricts(points map[string]int, n int) []string {
	districts := make([]string, 0, len(points))
	for d := range points {
		districts = append(districts, d)
	}
	sort.Slice(districts, func(i, j int) bool {
		if points[districts[i]] != points[districts[j]] {
			return points[districts[i]] > points[districts[j]]
		}
		return districts[i] < districts[j]
	})
	if len(districts) > n {
		districts = districts[:n]
	}
	return districts
}
