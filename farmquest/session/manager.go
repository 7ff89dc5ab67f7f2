// Package session is the facade the transports talk to. It owns the login
// lifecycle, stamps ids and timestamps onto new records, funnels every
// mutation through the store as a single dispatched action, and mirrors the
// session user to the local record after each change.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/localstore"
	"github.com/farmquest-india/farmquest/farmquest/logger"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

var (
	ErrNoActiveSession  = errors.New("no active session")
	ErrUnknownUser      = errors.New("no account found with this email")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrQuestNotFound    = errors.New("quest not found")
	ErrQuestActive      = errors.New("quest is already active")
	ErrQuestCompleted   = errors.New("quest is already completed")
	ErrArticleNotFound  = errors.New("article not found")
	ErrAchievementNotFound  = errors.New("achievement not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
)

// Evaluator is run after a quest completes, so achievement rules can react to
// the new state. Wired from the services package.
type Evaluator interface {
	EvaluateUser(userID string)
}

type Manager struct {
	store *store.Store
	local *localstore.Store

	loginDelay    time.Duration
	registerDelay time.Duration

	evaluator Evaluator
	newID     func() string
}

type Option func(*Manager)

// WithAuthDelays overrides the simulated auth latency, for tests.
func WithAuthDelays(login, register time.Duration) Option {
	return func(m *Manager) {
		m.loginDelay = login
		m.registerDelay = register
	}
}

// WithIDGenerator overrides record id generation, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) { m.newID = gen }
}

// WithEvaluator wires the achievement rule engine.
func WithEvaluator(e Evaluator) Option {
	return func(m *Manager) { m.evaluator = e }
}

func NewManager(st *store.Store, local *localstore.Store, opts ...Option) *Manager {
	m := &Manager{
		store:         st,
		local:         local,
		loginDelay:    config.DefaultLoginDelay,
		registerDelay: config.DefaultRegisterDelay,
		newID:         func() string { return snowflake.New(time.Now()).String() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the mirrored session user at startup. The mirrored record is
// merged back into the user collection so edits made while logged in survive
// a restart.
func (m *Manager) Restore() error {
	user, err := m.local.LoadSession()
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		return nil
	}
	m.store.Dispatch(store.UpsertUser{User: *user})
	m.store.Dispatch(store.SetCurrentUser{User: user})
	logger.LogSystem("Session restored", "user_id", user.ID)
	return nil
}

// Login authenticates by email lookup. The artificial delay mimics a remote
// auth round trip; cancelling the context aborts it.
func (m *Manager) Login(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	m.store.Dispatch(store.SetLoading{Loading: true})
	defer m.store.Dispatch(store.SetLoading{Loading: false})

	if err := sleep(ctx, m.loginDelay); err != nil {
		return nil, err
	}

	user := m.store.State().UserByEmail(email)
	if user == nil {
		m.store.Dispatch(store.SetError{Err: ErrUnknownUser.Error()})
		logger.LogAction("login", time.Since(start), ErrUnknownUser)
		return nil, ErrUnknownUser
	}

	m.store.Dispatch(store.SetError{})
	m.store.Dispatch(store.SetCurrentUser{User: user})
	m.notify(models.NotificationSuccess, "Welcome back!",
		fmt.Sprintf("Good to see you again, %s.", user.Name), "")

	if err := m.local.SaveSession(*user); err != nil {
		logger.LogError("Failed to mirror session", err, "user_id", user.ID)
	}
	logger.LogAction("login", time.Since(start), nil)
	return user, nil
}

// Logout clears the session and removes the mirrored record.
func (m *Manager) Logout() error {
	m.store.Dispatch(store.SetCurrentUser{User: nil})
	if err := m.local.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.LogAction("logout", 0, nil)
	return nil
}

// RegisterInput carries the fields a new farmer fills in.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	District        string
	Village         string
	FarmSize        float64
	PrimaryCrops    []string
	ExperienceLevel models.ExperienceLevel
	Language        models.Language
}

// Register creates a fresh account, logs it in and mirrors it. New accounts
// start at the bottom of the ladder.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	start := time.Now()
	m.store.Dispatch(store.SetLoading{Loading: true})
	defer m.store.Dispatch(store.SetLoading{Loading: false})

	if err := sleep(ctx, m.registerDelay); err != nil {
		return nil, err
	}

	state := m.store.State()
	if state.UserByEmail(in.Email) != nil {
		m.store.Dispatch(store.SetError{Err: ErrEmailTaken.Error()})
		logger.LogAction("register", time.Since(start), ErrEmailTaken)
		return nil, ErrEmailTaken
	}

	user := models.User{
		ID:              "user_" + m.newID(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		District:        in.District,
		Village:         in.Village,
		FarmSize:        in.FarmSize,
		PrimaryCrops:    append([]string(nil), in.PrimaryCrops...),
		ExperienceLevel: in.ExperienceLevel,
		Language:        in.Language,
		Level:           models.LevelSeedling,
		Rank:            len(state.Users) + 1,
		JoinedDate:      time.Now(),
	}

	m.store.Dispatch(store.SetError{})
	m.store.Dispatch(store.UpsertUser{User: user})
	m.store.Dispatch(store.SetCurrentUser{User: &user})
	m.notify(models.NotificationSuccess, "Welcome to FarmQuest!",
		"Your sustainability journey starts here. Pick your first quest to earn points.", "/quests")

	if err := m.local.SaveSession(user); err != nil {
		logger.LogError("Failed to mirror session", err, "user_id", user.ID)
	}
	logger.LogAction("register", time.Since(start), nil)
	return &user, nil
}

// CurrentUser returns a copy of the session user, or nil.
func (m *Manager) CurrentUser() *models.User {
	return m.store.CurrentUser()
}

// StartQuest marks a quest active for the session user.
func (m *Manager) StartQuest(questID string) error {
	user, err := m.requireSession()
	if err != nil {
		return err
	}
	result := m.store.Dispatch(store.StartQuest{QuestID: questID, UserID: user.ID})
	if err := resultError(result); err != nil {
		return err
	}
	if quest := m.store.State().QuestByID(questID); quest != nil {
		m.notify(models.NotificationInfo, "Quest started",
			fmt.Sprintf("You started %q. Good luck!", quest.Title), "/quests/"+questID)
	}
	m.mirror()
	return nil
}

// CompleteQuest finishes a quest, credits the user and re-evaluates level and
// achievements. Completing an already finished quest is a no-op.
func (m *Manager) CompleteQuest(questID string, photos []string) error {
	user, err := m.requireSession()
	if err != nil {
		return err
	}
	quest := m.store.State().QuestByID(questID)
	if quest == nil {
		return ErrQuestNotFound
	}

	result := m.store.Dispatch(store.CompleteQuest{QuestID: questID, UserID: user.ID, Photos: photos})
	if result == store.ResultQuestAlreadyCompleted {
		return nil
	}
	if err := resultError(result); err != nil {
		return err
	}

	m.notify(models.NotificationSuccess, "Quest completed!",
		fmt.Sprintf("You earned %d points for %q.", quest.Points, quest.Title), "/profile")

	m.refreshLevel(user.ID)
	if m.evaluator != nil {
		m.evaluator.EvaluateUser(user.ID)
	}
	m.mirror()
	return nil
}

// UpdateQuestProgress sets a quest's progress. Range is validated here so the
// store only ever sees legal values.
func (m *Manager) UpdateQuestProgress(questID string, progress int) error {
	if _, err := m.requireSession(); err != nil {
		return err
	}
	if progress < config.MinQuestProgress || progress > config.MaxQuestProgress {
		return ErrInvalidProgress
	}
	user := m.store.CurrentUser()
	result := m.store.Dispatch(store.UpdateQuestProgress{QuestID: questID, UserID: user.ID, Progress: progress})
	return resultError(result)
}

// UnlockAchievement unlocks an achievement for the session user. Unlocking an
// already held achievement succeeds without side effects.
func (m *Manager) UnlockAchievement(achievementID string) error {
	user, err := m.requireSession()
	if err != nil {
		return err
	}
	result := m.store.Dispatch(store.UnlockAchievement{AchievementID: achievementID, UserID: user.ID})
	if result == store.ResultAchievementAlreadyUnlocked {
		return nil
	}
	if err := resultError(result); err != nil {
		return err
	}
	if a := m.store.State().AchievementByID(achievementID); a != nil {
		m.notify(models.NotificationSuccess, "Achievement unlocked!",
			fmt.Sprintf("%s: %s", a.Title, a.Description), "/achievements")
	}
	m.mirror()
	return nil
}

// ToggleBookmark flips an article in the session user's bookmark set.
func (m *Manager) ToggleBookmark(articleID string) error {
	user, err := m.requireSession()
	if err != nil {
		return err
	}
	result := m.store.Dispatch(store.BookmarkArticle{ArticleID: articleID, UserID: user.ID})
	if err := resultError(result); err != nil {
		return err
	}
	m.mirror()
	return nil
}

// AddNotification stamps and stores a notification for the session user.
func (m *Manager) AddNotification(title, message string, typ models.NotificationType, actionURL string) error {
	if _, err := m.requireSession(); err != nil {
		return err
	}
	m.notify(typ, title, message, actionURL)
	return nil
}

// MarkNotificationRead flips a notification's read flag.
func (m *Manager) MarkNotificationRead(notificationID string) error {
	if _, err := m.requireSession(); err != nil {
		return err
	}
	result := m.store.Dispatch(store.MarkNotificationRead{NotificationID: notificationID})
	return resultError(result)
}

func (m *Manager) requireSession() (*models.User, error) {
	user := m.store.CurrentUser()
	if user == nil {
		return nil, ErrNoActiveSession
	}
	return user, nil
}

// refreshLevel recomputes the ladder label after a points change.
func (m *Manager) refreshLevel(userID string) {
	user := m.store.State().UserByID(userID)
	if user == nil {
		return
	}
	level := models.LevelForPoints(user.TotalPoints)
	if level == user.Level {
		return
	}
	user.Level = level
	m.store.Dispatch(store.UpsertUser{User: *user})
	m.notify(models.NotificationSuccess, "Level up!",
		fmt.Sprintf("You are now a %s.", level), "/profile")
}

// mirror re-writes the session record after a mutation touched the user.
func (m *Manager) mirror() {
	user := m.store.CurrentUser()
	if user == nil {
		return
	}
	if err := m.local.SaveSession(*user); err != nil {
		logger.LogError("Failed to mirror session", err, "user_id", user.ID)
	}
}

func (m *Manager) notify(typ models.NotificationType, title, message, actionURL string) {
	m.store.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:        "notification_" + m.newID(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now(),
		ActionURL: actionURL,
	}})
}

func resultError(r store.Result) error {
	switch r {
	case store.ResultApplied, store.ResultAchievementAlreadyUnlocked:
		return nil
	case store.ResultUserNotFound:
		return ErrNoActiveSession
	case store.ResultQuestNotFound:
		return ErrQuestNotFound
	case store.ResultQuestAlreadyActive:
		return ErrQuestActive
	case store.ResultQuestAlreadyCompleted:
		return ErrQuestCompleted
	case store.ResultAchievementNotFound:
		return ErrAchievementNotFound
	case store.ResultArticleNotFound:
		return ErrArticleNotFound
	case store.ResultNotificationNotFound:
		return ErrNotificationNotFound
	default:
		return fmt.Errorf("transition rejected: %s", r)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
