package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/utils"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// AchievementsList returns all achievements, optionally only unlocked ones.
func AchievementsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unlockedOnly := c.QueryBool("unlocked")

		achievements := webApp.Store.State().Achievements
		if !unlockedOnly {
			return utils.SendSuccess(c, achievements, "")
		}

		filtered := make([]models.Achievement, 0, len(achievements))
		for _, a := range achievements {
			if a.IsUnlocked {
				filtered = append(filtered, a)
			}
		}
		return utils.SendSuccess(c, filtered, "")
	}
}

// AchievementsDetail returns a single achievement by id.
func AchievementsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		achievement := webApp.Store.State().AchievementByID(c.Params("id"))
		if achievement == nil {
			return utils.SendNotFound(c, "Achievement not found")
		}
		return utils.SendSuccess(c, achievement, "")
	}
}

// AchievementsUnlock unlocks an achievement for the authenticated user.
// Unlocking one already held succeeds without changing anything.
func AchievementsUnlock(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		achievementID := c.Params("id")
		if err := webApp.Session.UnlockAchievement(achievementID); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, webApp.Store.State().AchievementByID(achievementID), "Achievement unlocked")
	}
}
