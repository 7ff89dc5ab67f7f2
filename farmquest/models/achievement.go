package models

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Achievement is a one-time unlockable badge. Once unlocked it never re-locks.
type Achievement struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Category     string     `json:"category"`
	Requirements string     `json:"requirements"`
	Rarity       Rarity     `json:"rarity"`
	IsUnlocked   bool       `json:"is_unlocked"`
	UnlockedDate *time.Time `json:"unlocked_date,omitempty"`
}

func (a Achievement) Clone() Achievement {
	c := a
	if a.UnlockedDate != nil {
		t := *a.UnlockedDate
		c.UnlockedDate = &t
	}
	return c
}
