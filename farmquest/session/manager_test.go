package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmquest-india/farmquest/farmquest/localstore"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

type recordingEvaluator struct {
	evaluated []string
}

func (r *recordingEvaluator) EvaluateUser(userID string) {
	r.evaluated = append(r.evaluated, userID)
}

func testState() store.State {
	return store.State{
		Users: []models.User{
			{
				ID:                  "user_1",
				Name:                "Rajesh Kumar",
				Email:               "rajesh@example.com",
				SustainabilityScore: 50,
				TotalPoints:         900,
				Level:               models.LevelSeedling,
			},
		},
		Quests: []models.Quest{
			{ID: "quest_1", Title: "Drip irrigation", Category: models.QuestCategoryWater, Points: 250},
		},
		Achievements: []models.Achievement{
			{ID: "first_quest", Title: "First Steps"},
		},
		Articles: []models.Article{
			{ID: "article_1", Title: "Water management"},
		},
	}
}

func testManager(t *testing.T, opts ...Option) (*Manager, *store.Store, *localstore.Store) {
	t.Helper()
	st := store.New(testState())
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	seq := 0
	base := []Option{
		WithAuthDelays(0, 0),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("%d", seq)
		}),
	}
	m := NewManager(st, local, append(base, opts...)...)
	return m, st, local
}

func TestLoginUnknownEmail(t *testing.T) {
	m, st, _ := testManager(t)

	user, err := m.Login(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.Nil(t, user)

	state := st.State()
	assert.Nil(t, state.CurrentUser)
	assert.Equal(t, ErrUnknownUser.Error(), state.Err)
	assert.False(t, state.Loading, "loading flag is cleared after the attempt")
}

func TestLoginSuccess(t *testing.T) {
	m, st, local := testManager(t)

	user, err := m.Login(context.Background(), "RAJESH@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", user.ID)

	state := st.State()
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "user_1", state.CurrentUser.ID)
	assert.Empty(t, state.Err)
	require.NotEmpty(t, state.Notifications, "login adds a welcome notification")

	mirrored, err := local.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, mirrored)
	assert.Equal(t, "user_1", mirrored.ID)
}

func TestLoginCancelled(t *testing.T) {
	m, _, _ := testManager(t, WithAuthDelays(time.Second, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Login(ctx, "rajesh@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogoutClearsSessionAndMirror(t *testing.T) {
	m, st, local := testManager(t)
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Nil(t, st.CurrentUser())

	mirrored, err := local.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, mirrored)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m, _, _ := testManager(t)

	_, err := m.Register(context.Background(), RegisterInput{
		Name:  "Imposter",
		Email: "rajesh@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterCreatesAndLogsIn(t *testing.T) {
	m, st, local := testManager(t)

	user, err := m.Register(context.Background(), RegisterInput{
		Name:            "Anita Devi",
		Email:           "anita@example.com",
		District:        "Pune",
		Village:         "Baramati",
		FarmSize:        2.8,
		PrimaryCrops:    []string{"Grapes"},
		ExperienceLevel: models.ExperienceBeginner,
		Language:        models.LanguageHindi,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "user_1", user.ID)
	assert.Equal(t, models.LevelSeedling, user.Level)
	assert.Zero(t, user.TotalPoints)
	assert.Zero(t, user.SustainabilityScore)
	assert.Equal(t, 2, user.Rank, "new user ranks after the existing collection")

	state := st.State()
	assert.Len(t, state.Users, 2, "registration merges the new record into the collection")
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, user.ID, state.CurrentUser.ID)

	mirrored, err := local.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, mirrored)
	assert.Equal(t, user.ID, mirrored.ID)
}

func TestRestoreMergesMirroredUser(t *testing.T) {
	st := store.New(testState())
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	// A registered-then-restarted user not present in the seed collection.
	require.NoError(t, local.SaveSession(models.User{
		ID:    "user_42",
		Name:  "Suresh Reddy",
		Email: "suresh@example.com",
	}))

	m := NewManager(st, local, WithAuthDelays(0, 0))
	require.NoError(t, m.Restore())

	state := st.State()
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "user_42", state.CurrentUser.ID)
	assert.NotNil(t, state.UserByID("user_42"))
}

func TestActionsRequireSession(t *testing.T) {
	m, _, _ := testManager(t)

	assert.ErrorIs(t, m.StartQuest("quest_1"), ErrNoActiveSession)
	assert.ErrorIs(t, m.CompleteQuest("quest_1", nil), ErrNoActiveSession)
	assert.ErrorIs(t, m.UpdateQuestProgress("quest_1", 10), ErrNoActiveSession)
	assert.ErrorIs(t, m.UnlockAchievement("first_quest"), ErrNoActiveSession)
	assert.ErrorIs(t, m.ToggleBookmark("article_1"), ErrNoActiveSession)
	assert.ErrorIs(t, m.MarkNotificationRead("n1"), ErrNoActiveSession)
}

func TestCompleteQuestFlow(t *testing.T) {
	eval := &recordingEvaluator{}
	m, st, local := testManager(t, WithEvaluator(eval))
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	require.NoError(t, m.StartQuest("quest_1"))
	require.NoError(t, m.CompleteQuest("quest_1", []string{"https://cdn.example.com/p.jpg"}))

	user := st.State().UserByID("user_1")
	assert.Equal(t, 1150, user.TotalPoints, "900 + 250")
	assert.Equal(t, 1, user.QuestsCompleted)
	// 900 + 250 crosses the 1000 point threshold
	assert.Equal(t, models.LevelGreen, user.Level)

	assert.Equal(t, []string{"user_1"}, eval.evaluated)

	mirrored, err := local.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, 1150, mirrored.TotalPoints, "mirror reflects the credited user")

	// Re-completing is a no-op, not an error.
	require.NoError(t, m.CompleteQuest("quest_1", nil))
	assert.Equal(t, 1150, st.State().UserByID("user_1").TotalPoints)
}

func TestUpdateQuestProgressValidation(t *testing.T) {
	m, st, _ := testManager(t)
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, m.UpdateQuestProgress("quest_1", -1), ErrInvalidProgress)
	assert.ErrorIs(t, m.UpdateQuestProgress("quest_1", 101), ErrInvalidProgress)

	require.NoError(t, m.UpdateQuestProgress("quest_1", 60))
	assert.Equal(t, 60, st.State().QuestByID("quest_1").Progress)
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	m, st, _ := testManager(t)
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	require.NoError(t, m.UnlockAchievement("first_quest"))
	require.NoError(t, m.UnlockAchievement("first_quest"))

	user := st.State().UserByID("user_1")
	assert.Len(t, user.Achievements, 1)
}

func TestToggleBookmarkMirrors(t *testing.T) {
	m, st, local := testManager(t)
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	require.NoError(t, m.ToggleBookmark("article_1"))
	assert.True(t, st.State().UserByID("user_1").HasBookmarked("article_1"))

	mirrored, err := local.LoadSession()
	require.NoError(t, err)
	assert.True(t, mirrored.HasBookmarked("article_1"))

	require.NoError(t, m.ToggleBookmark("article_1"))
	assert.False(t, st.State().UserByID("user_1").HasBookmarked("article_1"))
}

func TestMarkNotificationRead(t *testing.T) {
	m, st, _ := testManager(t)
	_, err := m.Login(context.Background(), "rajesh@example.com")
	require.NoError(t, err)

	// Login produced the welcome notification.
	notifications := st.State().Notifications
	require.NotEmpty(t, notifications)

	require.NoError(t, m.MarkNotificationRead(notifications[0].ID))
	assert.True(t, st.State().Notifications[0].IsRead)

	assert.ErrorIs(t, m.MarkNotificationRead("missing"), ErrNotificationNotFound)
}
