package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/models"
	"github.com/farmquest-india/farmquest/backend/utils"
)

// HealthCheck reports service health and store statistics.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(webApp.Version)

		state := webApp.Store.State()
		health.AddComponent("store", "healthy", "", map[string]interface{}{
			"users":         len(state.Users),
			"quests":        len(state.Quests),
			"achievements":  len(state.Achievements),
			"articles":      len(state.Articles),
			"notifications": len(state.Notifications),
			"version":       webApp.Store.Version(),
		})

		photoMessage := "not configured"
		if webApp.Photos != nil {
			photoMessage = ""
		}
		health.AddComponent("photo_storage", "healthy", photoMessage, nil)

		return utils.SendJSON(c, fiber.StatusOK, health)
	}
}
