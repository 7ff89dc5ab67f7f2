package models

import (
	"strings"
	"time"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceAdvanced     ExperienceLevel = "Advanced"
)

type Language string

const (
	LanguageEnglish   Language = "English"
	LanguageHindi     Language = "Hindi"
	LanguageMalayalam Language = "Malayalam"
	LanguageTamil     Language = "Tamil"
	LanguageTelugu    Language = "Telugu"
)

// Level ladder labels, ordered by the total points needed to reach them.
const (
	LevelSeedling  = "Seedling Farmer"
	LevelGreen     = "Green Farmer"
	LevelEcoWarrior = "Eco Warrior"
	LevelChampion  = "Sustainability Champion"
)

// User is a registered farmer: identity, farm profile and progress aggregates.
// BookmarkedArticles and ActiveQuests hold entity ids, not embedded records.
type User struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Avatar              string          `json:"avatar,omitempty"`
	District            string          `json:"district"`
	Village             string          `json:"village"`
	FarmSize            float64         `json:"farm_size"` // acres
	PrimaryCrops        []string        `json:"primary_crops"`
	ExperienceLevel     ExperienceLevel `json:"experience_level"`
	Language            Language        `json:"language"`
	SustainabilityScore int             `json:"sustainability_score"` // 0-100
	TotalPoints         int             `json:"total_points"`
	Level               string          `json:"level"`
	Rank                int             `json:"rank"`
	JoinedDate          time.Time       `json:"joined_date"`
	Achievements        []string        `json:"achievements"`
	QuestsCompleted     int             `json:"quests_completed"`
	ActiveQuests        []string        `json:"active_quests"`
	BookmarkedArticles  []string        `json:"bookmarked_articles"`
	IsAdmin             bool            `json:"is_admin,omitempty"`
}

// LevelForPoints maps a running points total onto the level ladder.
func LevelForPoints(points int) string {
	switch {
	case points >= 3000:
		return LevelChampion
	case points >= 2000:
		return LevelEcoWarrior
	case points >= 1000:
		return LevelGreen
	default:
		return LevelSeedling
	}
}

func (u User) HasActiveQuest(questID string) bool {
	for _, id := range u.ActiveQuests {
		if id == questID {
			return true
		}
	}
	return false
}

func (u User) HasAchievement(achievementID string) bool {
	for _, id := range u.Achievements {
		if id == achievementID {
			return true
		}
	}
	return false
}

func (u User) HasBookmarked(articleID string) bool {
	for _, id := range u.BookmarkedArticles {
		if id == articleID {
			return true
		}
	}
	return false
}

// EmailMatches compares emails case-insensitively.
func (u User) EmailMatches(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// Clone returns a deep copy so snapshots never alias store-owned slices.
func (u User) Clone() User {
	c := u
	c.PrimaryCrops = append([]string(nil), u.PrimaryCrops...)
	c.Achievements = append([]string(nil), u.Achievements...)
	c.ActiveQuests = append([]string(nil), u.ActiveQuests...)
	c.BookmarkedArticles = append([]string(nil), u.BookmarkedArticles...)
	return c
}
