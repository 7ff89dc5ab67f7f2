package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

func leaderboardState() store.State {
	return store.State{
		Users: []models.User{
			{ID: "user_1", Name: "Rajesh", District: "Ernakulam", TotalPoints: 2450, QuestsCompleted: 12, SustainabilityScore: 85},
			{ID: "user_2", Name: "Priya", District: "Bangalore", TotalPoints: 3120, QuestsCompleted: 18, SustainabilityScore: 92},
			{ID: "user_3", Name: "Mohammed", District: "Hyderabad", TotalPoints: 1890, QuestsCompleted: 8, SustainabilityScore: 78},
			{ID: "user_4", Name: "Anita", District: "Ernakulam", TotalPoints: 2450, QuestsCompleted: 12, SustainabilityScore: 90},
		},
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	st := store.New(leaderboardState())
	l := NewLeaderboardService(st)

	entries := l.Top("", 10)
	require.Len(t, entries, 4)

	assert.Equal(t, "user_2", entries[0].UserID)
	// user_1 and user_4 tie on points and quests; higher score wins.
	assert.Equal(t, "user_4", entries[1].UserID)
	assert.Equal(t, "user_1", entries[2].UserID)
	assert.Equal(t, "user_3", entries[3].UserID)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestLeaderboardDistrictFilter(t *testing.T) {
	st := store.New(leaderboardState())
	l := NewLeaderboardService(st)

	entries := l.Top("Ernakulam", 10)
	require.Len(t, entries, 2)
	assert.Equal(t, "user_4", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank, "ranks restart within the district scope")
}

func TestLeaderboardLimit(t *testing.T) {
	st := store.New(leaderboardState())
	l := NewLeaderboardService(st)

	entries := l.Top("", 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "user_2", entries[0].UserID)
}

func TestLeaderboardRankOf(t *testing.T) {
	st := store.New(leaderboardState())
	l := NewLeaderboardService(st)

	assert.Equal(t, 1, l.RankOf("user_2"))
	assert.Equal(t, 4, l.RankOf("user_3"))
	assert.Zero(t, l.RankOf("ghost"))
}

func TestLeaderboardRefreshesAfterMutation(t *testing.T) {
	st := store.New(leaderboardState())
	l := NewLeaderboardService(st)

	require.Equal(t, "user_2", l.Top("", 10)[0].UserID)

	boosted := st.State().UserByID("user_3")
	boosted.TotalPoints = 9000
	st.Dispatch(store.UpsertUser{User: *boosted})

	entries := l.Top("", 10)
	assert.Equal(t, "user_3", entries[0].UserID, "a new store version invalidates the cached ranking")
}
