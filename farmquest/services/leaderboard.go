package services

import (
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

// LeaderboardService ranks farmers by total points. Rankings are cached per
// store version, so repeated reads between mutations hit the cache.
type LeaderboardService struct {
	store *store.Store
	cache *lru.Cache
}

type leaderboardKey struct {
	version  uint64
	district string
	limit    int
}

func NewLeaderboardService(st *store.Store) *LeaderboardService {
	cache, err := lru.New(config.LeaderboardCacheSize)
	if err != nil {
		panic(err)
	}
	return &LeaderboardService{store: st, cache: cache}
}

// Top returns the highest ranked farmers, optionally restricted to one
// district. Ranks are positions within the returned scope, starting at 1.
func (l *LeaderboardService) Top(district string, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = config.DefaultLeaderboardSize
	}
	if limit > config.MaxLeaderboardSize {
		limit = config.MaxLeaderboardSize
	}

	key := leaderboardKey{version: l.store.Version(), district: district, limit: limit}
	if cached, ok := l.cache.Get(key); ok {
		return cached.([]models.LeaderboardEntry)
	}

	entries := l.rank(district)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	l.cache.Add(key, entries)
	return entries
}

// RankOf returns a user's global rank, or 0 when the user is unknown.
func (l *LeaderboardService) RankOf(userID string) int {
	for _, entry := range l.rank("") {
		if entry.UserID == userID {
			return entry.Rank
		}
	}
	return 0
}

// rank orders users by points, breaking ties by quests completed and then by
// sustainability score.
func (l *LeaderboardService) rank(district string) []models.LeaderboardEntry {
	state := l.store.State()

	entries := make([]models.LeaderboardEntry, 0, len(state.Users))
	for _, u := range state.Users {
		if district != "" && u.District != district {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:              u.ID,
			Name:                u.Name,
			Avatar:              u.Avatar,
			District:            u.District,
			Village:             u.Village,
			Level:               u.Level,
			Points:              u.TotalPoints,
			QuestsCompleted:     u.QuestsCompleted,
			SustainabilityScore: u.SustainabilityScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if entries[i].QuestsCompleted != entries[j].QuestsCompleted {
			return entries[i].QuestsCompleted > entries[j].QuestsCompleted
		}
		return entries[i].SustainabilityScore > entries[j].SustainabilityScore
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
