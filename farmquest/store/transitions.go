package store

import (
	"time"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// Apply runs a single transition against a snapshot and returns the next
// snapshot. The input state is never mutated; timestamps come from now so the
// function stays deterministic under test.
func Apply(s State, a Action, now time.Time) (State, Result) {
	switch act := a.(type) {
	case SetLoading:
		next := s.Clone()
		next.Loading = act.Loading
		return next, ResultApplied

	case SetError:
		next := s.Clone()
		next.Err = act.Err
		return next, ResultApplied

	case SetCurrentUser:
		next := s.Clone()
		if act.User == nil {
			next.CurrentUser = nil
		} else {
			u := act.User.Clone()
			next.CurrentUser = &u
		}
		return next, ResultApplied

	case UpsertUser:
		next := s.Clone()
		if i := next.userIndex(act.User.ID); i >= 0 {
			next.Users[i] = act.User.Clone()
			next.syncCurrentUser(i)
		} else {
			next.Users = append(next.Users, act.User.Clone())
			next.syncCurrentUser(len(next.Users) - 1)
		}
		return next, ResultApplied

	case StartQuest:
		qi := s.questIndex(act.QuestID)
		if qi < 0 {
			return s, ResultQuestNotFound
		}
		ui := s.userIndex(act.UserID)
		if ui < 0 {
			return s, ResultUserNotFound
		}
		if s.Quests[qi].IsCompleted {
			return s, ResultQuestAlreadyCompleted
		}
		if s.Quests[qi].IsActive {
			return s, ResultQuestAlreadyActive
		}
		next := s.Clone()
		start := now
		next.Quests[qi].IsActive = true
		next.Quests[qi].StartDate = &start
		if !next.Users[ui].HasActiveQuest(act.QuestID) {
			next.Users[ui].ActiveQuests = append(next.Users[ui].ActiveQuests, act.QuestID)
		}
		next.syncCurrentUser(ui)
		return next, ResultApplied

	case CompleteQuest:
		qi := s.questIndex(act.QuestID)
		if qi < 0 {
			return s, ResultQuestNotFound
		}
		ui := s.userIndex(act.UserID)
		if ui < 0 {
			return s, ResultUserNotFound
		}
		if s.Quests[qi].IsCompleted {
			return s, ResultQuestAlreadyCompleted
		}
		next := s.Clone()
		quest := &next.Quests[qi]
		done := now
		quest.IsCompleted = true
		quest.IsActive = false
		quest.CompletedDate = &done
		quest.Progress = 100
		quest.Photos = append([]string(nil), act.Photos...)

		user := &next.Users[ui]
		user.TotalPoints += quest.Points
		user.QuestsCompleted++
		user.ActiveQuests = removeID(user.ActiveQuests, act.QuestID)
		user.SustainabilityScore = clampScore(user.SustainabilityScore + quest.Points/config.ScorePointsDivisor)
		next.syncCurrentUser(ui)
		return next, ResultApplied

	case UpdateQuestProgress:
		qi := s.questIndex(act.QuestID)
		if qi < 0 {
			return s, ResultQuestNotFound
		}
		next := s.Clone()
		next.Quests[qi].Progress = act.Progress
		return next, ResultApplied

	case UnlockAchievement:
		ai := s.achievementIndex(act.AchievementID)
		if ai < 0 {
			return s, ResultAchievementNotFound
		}
		ui := s.userIndex(act.UserID)
		if ui < 0 {
			return s, ResultUserNotFound
		}
		if s.Achievements[ai].IsUnlocked && s.Users[ui].HasAchievement(act.AchievementID) {
			return s, ResultAchievementAlreadyUnlocked
		}
		next := s.Clone()
		if !next.Achievements[ai].IsUnlocked {
			unlocked := now
			next.Achievements[ai].IsUnlocked = true
			next.Achievements[ai].UnlockedDate = &unlocked
		}
		if !next.Users[ui].HasAchievement(act.AchievementID) {
			next.Users[ui].Achievements = append(next.Users[ui].Achievements, act.AchievementID)
		}
		next.syncCurrentUser(ui)
		return next, ResultApplied

	case AddNotification:
		next := s.Clone()
		next.Notifications = append([]models.Notification{act.Notification}, next.Notifications...)
		return next, ResultApplied

	case MarkNotificationRead:
		idx := -1
		for i := range s.Notifications {
			if s.Notifications[i].ID == act.NotificationID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s, ResultNotificationNotFound
		}
		next := s.Clone()
		next.Notifications[idx].IsRead = true
		return next, ResultApplied

	case BookmarkArticle:
		if s.articleIndex(act.ArticleID) < 0 {
			return s, ResultArticleNotFound
		}
		ui := s.userIndex(act.UserID)
		if ui < 0 {
			return s, ResultUserNotFound
		}
		next := s.Clone()
		user := &next.Users[ui]
		if user.HasBookmarked(act.ArticleID) {
			user.BookmarkedArticles = removeID(user.BookmarkedArticles, act.ArticleID)
		} else {
			user.BookmarkedArticles = append(user.BookmarkedArticles, act.ArticleID)
		}
		next.syncCurrentUser(ui)
		return next, ResultApplied
	}
	return s, ResultUnknownAction
}

func clampScore(score int) int {
	if score > config.MaxSustainabilityScore {
		return config.MaxSustainabilityScore
	}
	if score < 0 {
		return 0
	}
	return score
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
