// Package services holds the read-model and integration services layered on
// top of the store: leaderboards, search, photo storage, platform stats and
// the achievement rule engine.
package services

import (
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

// achievementRule decides whether a user has earned a badge, given the
// current snapshot.
type achievementRule struct {
	AchievementID string
	Satisfied     func(s store.State, u models.User) bool
}

// AchievementEngine evaluates unlock rules after progress events. Rules are
// monotone: once satisfied they stay satisfied, so the engine never needs to
// re-lock anything.
type AchievementEngine struct {
	store *store.Store
	rules []achievementRule
	newID func() string
}

func NewAchievementEngine(st *store.Store) *AchievementEngine {
	return &AchievementEngine{
		store: st,
		rules: defaultRules(),
		newID: func() string { return snowflake.New(time.Now()).String() },
	}
}

func defaultRules() []achievementRule {
	return []achievementRule{
		{"first_quest", func(_ store.State, u models.User) bool {
			return u.QuestsCompleted >= 1
		}},
		{"quest_master", func(_ store.State, u models.User) bool {
			return u.QuestsCompleted >= 25
		}},
		{"water_saver", categoryRule(models.QuestCategoryWater, 3)},
		{"organic_pioneer", categoryRule(models.QuestCategoryOrganic, 1)},
		{"soil_doctor", categoryRule(models.QuestCategorySoil, 5)},
		{"carbon_saver", categoryRule(models.QuestCategoryCarbon, 1)},
		{"biodiversity_booster", categoryRule(models.QuestCategoryBiodiversity, 3)},
	}
}

func categoryRule(category models.QuestCategory, needed int) func(store.State, models.User) bool {
	return func(s store.State, _ models.User) bool {
		return completedInCategory(s, category) >= needed
	}
}

func completedInCategory(s store.State, category models.QuestCategory) int {
	n := 0
	for i := range s.Quests {
		if s.Quests[i].Category == category && s.Quests[i].IsCompleted {
			n++
		}
	}
	return n
}

// EvaluateUser checks every rule against the current snapshot and unlocks the
// badges the user newly qualifies for, each with a notification.
func (e *AchievementEngine) EvaluateUser(userID string) {
	state := e.store.State()
	user := state.UserByID(userID)
	if user == nil {
		return
	}

	for _, rule := range e.rules {
		if user.HasAchievement(rule.AchievementID) {
			continue
		}
		if !rule.Satisfied(state, *user) {
			continue
		}
		result := e.store.Dispatch(store.UnlockAchievement{
			AchievementID: rule.AchievementID,
			UserID:        userID,
		})
		if result != store.ResultApplied {
			continue
		}
		if a := state.AchievementByID(rule.AchievementID); a != nil {
			e.store.Dispatch(store.AddNotification{Notification: models.Notification{
				ID:        "notification_" + e.newID(),
				Title:     "Achievement unlocked!",
				Message:   fmt.Sprintf("%s: %s", a.Title, a.Description),
				Type:      models.NotificationSuccess,
				Timestamp: time.Now(),
				ActionURL: "/achievements",
			}})
		}
	}
}
