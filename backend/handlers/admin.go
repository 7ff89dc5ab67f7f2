package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/utils"
)

// AdminStats returns the platform-wide dashboard aggregates.
func AdminStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, webApp.Stats.AdminStats(), "")
	}
}

// AdminUsersList returns every registered farmer.
func AdminUsersList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := webApp.Store.State().Users
		page, limit := parsePagination(c)
		items, pagination := paginate(users, page, limit)
		return utils.SendPaginated(c, items, pagination, "")
	}
}

// AdminUsersDetail returns one farmer's record by id.
func AdminUsersDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := webApp.Store.State().UserByID(c.Params("id"))
		if user == nil {
			return utils.SendNotFound(c, "User not found")
		}
		user.Rank = webApp.Leaderboard.RankOf(user.ID)
		return utils.SendSuccess(c, user, "")
	}
}
