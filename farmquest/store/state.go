// Package store holds the canonical in-memory collections and applies every
// mutation as a pure (state, action) -> (state, result) transition. One
// transition per dispatched action, applied atomically under a single writer.
package store

import "github.com/farmquest-india/farmquest/farmquest/models"

// State is an immutable snapshot of everything the application knows.
// CurrentUser is a copy of the session user's record; transitions that change
// that user's record refresh the copy so the pointer never goes stale.
type State struct {
	CurrentUser   *models.User
	Users         []models.User
	Quests        []models.Quest
	Achievements  []models.Achievement
	Articles      []models.Article
	Notifications []models.Notification
	Loading       bool
	Err           string
}

// Clone deep-copies the snapshot. Transitions mutate only clones, so a State
// handed out earlier is never written through.
func (s State) Clone() State {
	c := s
	if s.CurrentUser != nil {
		u := s.CurrentUser.Clone()
		c.CurrentUser = &u
	}
	c.Users = make([]models.User, len(s.Users))
	for i, u := range s.Users {
		c.Users[i] = u.Clone()
	}
	c.Quests = make([]models.Quest, len(s.Quests))
	for i, q := range s.Quests {
		c.Quests[i] = q.Clone()
	}
	c.Achievements = make([]models.Achievement, len(s.Achievements))
	for i, a := range s.Achievements {
		c.Achievements[i] = a.Clone()
	}
	c.Articles = make([]models.Article, len(s.Articles))
	for i, a := range s.Articles {
		c.Articles[i] = a.Clone()
	}
	c.Notifications = append([]models.Notification(nil), s.Notifications...)
	return c
}

func (s State) userIndex(userID string) int {
	for i := range s.Users {
		if s.Users[i].ID == userID {
			return i
		}
	}
	return -1
}

func (s State) questIndex(questID string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == questID {
			return i
		}
	}
	return -1
}

func (s State) achievementIndex(achievementID string) int {
	for i := range s.Achievements {
		if s.Achievements[i].ID == achievementID {
			return i
		}
	}
	return -1
}

func (s State) articleIndex(articleID string) int {
	for i := range s.Articles {
		if s.Articles[i].ID == articleID {
			return i
		}
	}
	return -1
}

// UserByID returns a copy of the user record, or nil.
func (s State) UserByID(userID string) *models.User {
	if i := s.userIndex(userID); i >= 0 {
		u := s.Users[i].Clone()
		return &u
	}
	return nil
}

// UserByEmail returns a copy of the first user matching the email
// (case-insensitive), or nil.
func (s State) UserByEmail(email string) *models.User {
	for i := range s.Users {
		if s.Users[i].EmailMatches(email) {
			u := s.Users[i].Clone()
			return &u
		}
	}
	return nil
}

// QuestByID returns a copy of the quest, or nil.
func (s State) QuestByID(questID string) *models.Quest {
	if i := s.questIndex(questID); i >= 0 {
		q := s.Quests[i].Clone()
		return &q
	}
	return nil
}

// AchievementByID returns a copy of the achievement, or nil.
func (s State) AchievementByID(achievementID string) *models.Achievement {
	if i := s.achievementIndex(achievementID); i >= 0 {
		a := s.Achievements[i].Clone()
		return &a
	}
	return nil
}

// ArticleByID returns a copy of the article, or nil.
func (s State) ArticleByID(articleID string) *models.Article {
	if i := s.articleIndex(articleID); i >= 0 {
		a := s.Articles[i].Clone()
		return &a
	}
	return nil
}

// syncCurrentUser refreshes the session pointer after the user at index i
// changed. Call on the clone that was just mutated.
func (s *State) syncCurrentUser(i int) {
	if s.CurrentUser != nil && s.CurrentUser.ID == s.Users[i].ID {
		u := s.Users[i].Clone()
		s.CurrentUser = &u
	}
}
