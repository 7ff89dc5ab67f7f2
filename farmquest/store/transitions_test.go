package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmquest-india/farmquest/farmquest/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testState() State {
	return State{
		Users: []models.User{
			{
				ID:                  "user_1",
				Name:                "Rajesh Kumar",
				Email:               "rajesh@example.com",
				SustainabilityScore: 85,
				TotalPoints:         100,
				Level:               models.LevelSeedling,
			},
		},
		Quests: []models.Quest{
			{ID: "quest_1", Title: "Drip irrigation", Category: models.QuestCategoryWater, Points: 250},
			{ID: "quest_2", Title: "Pesticide-free month", Category: models.QuestCategoryOrganic, Points: 300},
		},
		Achievements: []models.Achievement{
			{ID: "first_quest", Title: "First Steps"},
		},
		Articles: []models.Article{
			{ID: "article_1", Title: "Water management"},
		},
	}
}

func TestApplyStartQuest(t *testing.T) {
	s := testState()

	next, result := Apply(s, StartQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)

	quest := next.QuestByID("quest_1")
	assert.True(t, quest.IsActive)
	require.NotNil(t, quest.StartDate)
	assert.Equal(t, testNow, *quest.StartDate)
	assert.True(t, next.Users[0].HasActiveQuest("quest_1"))

	// Input snapshot untouched
	assert.False(t, s.Quests[0].IsActive)
	assert.Empty(t, s.Users[0].ActiveQuests)
}

func TestApplyStartQuestAtomicOnMissingUser(t *testing.T) {
	s := testState()

	next, result := Apply(s, StartQuest{QuestID: "quest_1", UserID: "ghost"}, testNow)
	assert.Equal(t, ResultUserNotFound, result)
	assert.False(t, next.Quests[0].IsActive, "quest must not activate when the user lookup fails")
}

func TestApplyStartQuestAlreadyActive(t *testing.T) {
	s := testState()
	s, _ = Apply(s, StartQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)

	_, result := Apply(s, StartQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	assert.Equal(t, ResultQuestAlreadyActive, result)
}

func TestApplyCompleteQuestEffects(t *testing.T) {
	s := testState()
	s, _ = Apply(s, StartQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)

	next, result := Apply(s, CompleteQuest{
		QuestID: "quest_1",
		UserID:  "user_1",
		Photos:  []string{"https://cdn.example.com/p1.jpg"},
	}, testNow)
	require.Equal(t, ResultApplied, result)

	quest := next.QuestByID("quest_1")
	assert.True(t, quest.IsCompleted)
	assert.False(t, quest.IsActive)
	assert.Equal(t, 100, quest.Progress)
	require.NotNil(t, quest.CompletedDate)
	assert.Equal(t, []string{"https://cdn.example.com/p1.jpg"}, quest.Photos)

	user := next.UserByID("user_1")
	assert.Equal(t, 350, user.TotalPoints, "100 existing + 250 quest points")
	assert.Equal(t, 1, user.QuestsCompleted)
	assert.False(t, user.HasActiveQuest("quest_1"))
	// 85 + floor(250/10) = 110, clamped to 100
	assert.Equal(t, 100, user.SustainabilityScore)
}

func TestApplyCompleteQuestWithoutStarting(t *testing.T) {
	s := testState()

	direct, result := Apply(s, CompleteQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)

	started, _ := Apply(s, StartQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	viaStart, result := Apply(started, CompleteQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)

	// Completing directly credits the user the same as start-then-complete.
	assert.Equal(t, viaStart.UserByID("user_1").TotalPoints, direct.UserByID("user_1").TotalPoints)
	assert.Equal(t, viaStart.UserByID("user_1").QuestsCompleted, direct.UserByID("user_1").QuestsCompleted)
	assert.Equal(t, viaStart.UserByID("user_1").SustainabilityScore, direct.UserByID("user_1").SustainabilityScore)
}

func TestApplyCompleteQuestIdempotent(t *testing.T) {
	s := testState()
	s, _ = Apply(s, CompleteQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	before := s.UserByID("user_1")

	next, result := Apply(s, CompleteQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	assert.Equal(t, ResultQuestAlreadyCompleted, result)
	assert.Equal(t, before.TotalPoints, next.UserByID("user_1").TotalPoints, "re-completion must not credit twice")
}

func TestScoreClampConvergesToCeiling(t *testing.T) {
	s := testState()
	s.Users[0].SustainabilityScore = 95

	s, _ = Apply(s, CompleteQuest{QuestID: "quest_1", UserID: "user_1"}, testNow)
	assert.Equal(t, 100, s.UserByID("user_1").SustainabilityScore)

	s, _ = Apply(s, CompleteQuest{QuestID: "quest_2", UserID: "user_1"}, testNow)
	assert.Equal(t, 100, s.UserByID("user_1").SustainabilityScore, "score stays pinned at the ceiling")
}

func TestApplyUnlockAchievementIdempotent(t *testing.T) {
	s := testState()

	s, result := Apply(s, UnlockAchievement{AchievementID: "first_quest", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.True(t, s.AchievementByID("first_quest").IsUnlocked)
	assert.True(t, s.UserByID("user_1").HasAchievement("first_quest"))

	next, result := Apply(s, UnlockAchievement{AchievementID: "first_quest", UserID: "user_1"}, testNow)
	assert.Equal(t, ResultAchievementAlreadyUnlocked, result)
	assert.Len(t, next.UserByID("user_1").Achievements, 1, "no duplicate badge entry")
}

func TestApplyBookmarkToggle(t *testing.T) {
	s := testState()

	s, result := Apply(s, BookmarkArticle{ArticleID: "article_1", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.True(t, s.UserByID("user_1").HasBookmarked("article_1"))

	s, result = Apply(s, BookmarkArticle{ArticleID: "article_1", UserID: "user_1"}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.False(t, s.UserByID("user_1").HasBookmarked("article_1"))
}

func TestApplyNotifications(t *testing.T) {
	s := testState()

	s, _ = Apply(s, AddNotification{Notification: models.Notification{ID: "n1", Title: "first"}}, testNow)
	s, _ = Apply(s, AddNotification{Notification: models.Notification{ID: "n2", Title: "second"}}, testNow)
	require.Len(t, s.Notifications, 2)
	assert.Equal(t, "n2", s.Notifications[0].ID, "newest first")

	s, result := Apply(s, MarkNotificationRead{NotificationID: "n1"}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.True(t, s.Notifications[1].IsRead)
	assert.False(t, s.Notifications[0].IsRead)

	_, result = Apply(s, MarkNotificationRead{NotificationID: "missing"}, testNow)
	assert.Equal(t, ResultNotificationNotFound, result)
}

func TestApplyNotFoundResults(t *testing.T) {
	s := testState()

	tests := []struct {
		name   string
		action Action
		want   Result
	}{
		{"unknown quest", StartQuest{QuestID: "nope", UserID: "user_1"}, ResultQuestNotFound},
		{"unknown user", CompleteQuest{QuestID: "quest_1", UserID: "nope"}, ResultUserNotFound},
		{"unknown achievement", UnlockAchievement{AchievementID: "nope", UserID: "user_1"}, ResultAchievementNotFound},
		{"unknown article", BookmarkArticle{ArticleID: "nope", UserID: "user_1"}, ResultArticleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, result := Apply(s, tt.action, testNow)
			assert.Equal(t, tt.want, result)
			assert.Equal(t, s.Users[0], next.Users[0], "failed transitions leave state unchanged")
		})
	}
}

func TestApplyUpsertUserRefreshesSession(t *testing.T) {
	s := testState()
	u := s.Users[0].Clone()
	s.CurrentUser = &u

	updated := s.Users[0].Clone()
	updated.TotalPoints = 999
	next, result := Apply(s, UpsertUser{User: updated}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.Equal(t, 999, next.CurrentUser.TotalPoints)

	// Appending a new user leaves the session pointer alone.
	next, result = Apply(next, UpsertUser{User: models.User{ID: "user_9", Name: "New"}}, testNow)
	require.Equal(t, ResultApplied, result)
	assert.Equal(t, "user_1", next.CurrentUser.ID)
	assert.Len(t, next.Users, 2)
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, models.LevelSeedling, models.LevelForPoints(0))
	assert.Equal(t, models.LevelSeedling, models.LevelForPoints(999))
	assert.Equal(t, models.LevelGreen, models.LevelForPoints(1000))
	assert.Equal(t, models.LevelEcoWarrior, models.LevelForPoints(2000))
	assert.Equal(t, models.LevelChampion, models.LevelForPoints(3000))
}
