package models

import "time"

type QuestCategory string

const (
	QuestCategoryWater        QuestCategory = "Water Conservation"
	QuestCategoryOrganic      QuestCategory = "Organic Farming"
	QuestCategorySoil         QuestCategory = "Soil Health"
	QuestCategoryCropRotation QuestCategory = "Crop Rotation"
	QuestCategoryWaste        QuestCategory = "Waste Management"
	QuestCategoryBiodiversity QuestCategory = "Biodiversity"
	QuestCategoryCarbon       QuestCategory = "Carbon Reduction"
)

type QuestDifficulty string

const (
	QuestDifficultyEasy   QuestDifficulty = "Easy"
	QuestDifficultyMedium QuestDifficulty = "Medium"
	QuestDifficultyHard   QuestDifficulty = "Hard"
)

type QuestStatus string

const (
	QuestStatusAvailable QuestStatus = "available"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

type QuestStep struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	IsCompleted          bool   `json:"is_completed"`
	VerificationRequired bool   `json:"verification_required,omitempty"`
}

// Quest is a static definition plus per-quest runtime state. The lifecycle is
// available -> active -> completed and never reverses; Progress is only
// meaningful while the quest is active.
type Quest struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      QuestCategory   `json:"category"`
	Difficulty    QuestDifficulty `json:"difficulty"`
	Points        int             `json:"points"`
	EstimatedTime string          `json:"estimated_time"`
	Steps         []QuestStep     `json:"steps"`
	Requirements  []string        `json:"requirements"`
	Tips          []string        `json:"tips"`
	Image         string          `json:"image,omitempty"`
	Icon          string          `json:"icon"`

	IsActive      bool       `json:"is_active"`
	IsCompleted   bool       `json:"is_completed"`
	Progress      int        `json:"progress"` // 0-100
	StartDate     *time.Time `json:"start_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Photos        []string   `json:"photos,omitempty"`
}

func (q Quest) Status() QuestStatus {
	switch {
	case q.IsCompleted:
		return QuestStatusCompleted
	case q.IsActive:
		return QuestStatusActive
	default:
		return QuestStatusAvailable
	}
}

func (q Quest) Clone() Quest {
	c := q
	c.Steps = append([]QuestStep(nil), q.Steps...)
	c.Requirements = append([]string(nil), q.Requirements...)
	c.Tips = append([]string(nil), q.Tips...)
	c.Photos = append([]string(nil), q.Photos...)
	if q.StartDate != nil {
		t := *q.StartDate
		c.StartDate = &t
	}
	if q.CompletedDate != nil {
		t := *q.CompletedDate
		c.CompletedDate = &t
	}
	return c
}
