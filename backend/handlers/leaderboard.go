package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/utils"
)

// LeaderboardTop returns the ranked farmers, optionally scoped to a district.
func LeaderboardTop(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		district := c.Query("district")
		limit, _ := strconv.Atoi(c.Query("limit", "0"))

		entries := webApp.Leaderboard.Top(district, limit)
		return utils.SendSuccess(c, entries, "")
	}
}

// LeaderboardRank returns one user's global rank.
func LeaderboardRank(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		rank := webApp.Leaderboard.RankOf(userID)
		if rank == 0 {
			return utils.SendNotFound(c, "User not found")
		}
		return utils.SendSuccess(c, fiber.Map{
			"user_id": userID,
			"rank":    rank,
		}, "")
	}
}
