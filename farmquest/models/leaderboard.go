package models

// LeaderboardEntry is a user's row on the points leaderboard.
type LeaderboardEntry struct {
	Rank                int    `json:"rank"`
	UserID              string `json:"user_id"`
	Name                string `json:"name"`
	Avatar              string `json:"avatar,omitempty"`
	District            string `json:"district"`
	Village             string `json:"village"`
	Level               string `json:"level"`
	Points              int    `json:"points"`
	QuestsCompleted     int    `json:"quests_completed"`
	SustainabilityScore int    `json:"sustainability_score"`
}

// AdminStats aggregates platform-wide engagement numbers.
type AdminStats struct {
	TotalFarmers            int      `json:"total_farmers"`
	ActiveQuests            int      `json:"active_quests"`
	CompletedQuests         int      `json:"completed_quests"`
	TotalSustainabilityScore int     `json:"total_sustainability_score"`
	NewUsersThisMonth       int      `json:"new_users_this_month"`
	QuestCompletionRate     float64  `json:"quest_completion_rate"`
	TopPerformingDistricts  []string `json:"top_performing_districts"`
}
