package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/utils"
)

// SearchAll fuzzy-searches quests and articles in one call.
func SearchAll(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return utils.SendBadRequest(c, "Query parameter 'q' is required", nil)
		}
		results := webApp.Search.Search(query)
		return utils.SendSuccess(c, results, "")
	}
}
