package store

import "github.com/farmquest-india/farmquest/farmquest/models"

// Action is the closed set of state transitions. Every variant is handled by
// Apply's type switch; adding a variant without extending the switch makes
// Apply return ResultUnknownAction, which the Store treats as a bug and logs.
type Action interface {
	isAction()
}

// SetLoading toggles the facade's in-flight indicator.
type SetLoading struct {
	Loading bool
}

// SetError replaces the store-level error string; empty clears it.
type SetError struct {
	Err string
}

// SetCurrentUser replaces the session pointer. A nil User clears the session.
type SetCurrentUser struct {
	User *models.User
}

// UpsertUser replaces a user record by id, or appends it when no record with
// that id exists. If it is the session user the pointer is refreshed too.
type UpsertUser struct {
	User models.User
}

// StartQuest marks the quest active with a start timestamp and adds it to the
// user's active list. Atomic: if either lookup fails, nothing changes.
type StartQuest struct {
	QuestID string
	UserID  string
}

// CompleteQuest finishes a quest and credits the user: points, completion
// count, score raise of floor(points/10) clamped at 100.
type CompleteQuest struct {
	QuestID string
	UserID  string
	Photos  []string
}

// UpdateQuestProgress sets the quest's progress field verbatim; range
// validation is the caller's responsibility.
type UpdateQuestProgress struct {
	QuestID  string
	UserID   string
	Progress int
}

// UnlockAchievement unlocks the achievement and records it on the user.
// Idempotent: a second unlock is reported, not re-applied.
type UnlockAchievement struct {
	AchievementID string
	UserID        string
}

// AddNotification prepends a fully stamped notification (newest first).
type AddNotification struct {
	Notification models.Notification
}

// MarkNotificationRead flips the matching notification's read flag.
type MarkNotificationRead struct {
	NotificationID string
}

// BookmarkArticle toggles the article in the user's bookmark set.
type BookmarkArticle struct {
	ArticleID string
	UserID    string
}

func (SetLoading) isAction()           {}
func (SetError) isAction()             {}
func (SetCurrentUser) isAction()       {}
func (UpsertUser) isAction()           {}
func (StartQuest) isAction()           {}
func (CompleteQuest) isAction()        {}
func (UpdateQuestProgress) isAction()  {}
func (UnlockAchievement) isAction()    {}
func (AddNotification) isAction()      {}
func (MarkNotificationRead) isAction() {}
func (BookmarkArticle) isAction()      {}

// Result reports what a transition did, so callers can tell "nothing happened
// because of bad input" apart from "succeeded".
type Result int

const (
	ResultApplied Result = iota
	ResultUserNotFound
	ResultQuestNotFound
	ResultAchievementNotFound
	ResultArticleNotFound
	ResultNotificationNotFound
	ResultQuestAlreadyActive
	ResultQuestAlreadyCompleted
	ResultAchievementAlreadyUnlocked
	ResultUnknownAction
)

func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultUserNotFound:
		return "user_not_found"
	case ResultQuestNotFound:
		return "quest_not_found"
	case ResultAchievementNotFound:
		return "achievement_not_found"
	case ResultArticleNotFound:
		return "article_not_found"
	case ResultNotificationNotFound:
		return "notification_not_found"
	case ResultQuestAlreadyActive:
		return "quest_already_active"
	case ResultQuestAlreadyCompleted:
		return "quest_already_completed"
	case ResultAchievementAlreadyUnlocked:
		return "achievement_already_unlocked"
	default:
		return "unknown_action"
	}
}

// OK reports whether the state advanced. Idempotent re-unlocks count as OK
// because the invariant the caller wanted already holds.
func (r Result) OK() bool {
	return r == ResultApplied || r == ResultAchievementAlreadyUnlocked
}
