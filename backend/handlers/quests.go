package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/farmquest-india/farmquest/backend/models"
	"github.com/farmquest-india/farmquest/backend/utils"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/services"
)

// QuestsList returns quests, optionally filtered by category, difficulty or
// lifecycle status.
func QuestsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		difficulty := c.Query("difficulty")
		status := c.Query("status")

		quests := webApp.Store.State().Quests
		filtered := make([]models.Quest, 0, len(quests))
		for _, q := range quests {
			if category != "" && string(q.Category) != category {
				continue
			}
			if difficulty != "" && string(q.Difficulty) != difficulty {
				continue
			}
			if status != "" && string(q.Status()) != status {
				continue
			}
			filtered = append(filtered, q)
		}

		page, limit := parsePagination(c)
		items, pagination := paginate(filtered, page, limit)
		return utils.SendPaginated(c, items, pagination, "")
	}
}

// QuestsDetail returns a single quest by id.
func QuestsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quest := webApp.Store.State().QuestByID(c.Params("id"))
		if quest == nil {
			return utils.SendNotFound(c, "Quest not found")
		}
		return utils.SendSuccess(c, quest, "")
	}
}

// QuestsStart marks a quest active for the authenticated user.
func QuestsStart(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		questID := c.Params("id")
		if err := webApp.Session.StartQuest(questID); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, webApp.Store.State().QuestByID(questID), "Quest started")
	}
}

// QuestsComplete finishes a quest with optional verification photo URLs.
func QuestsComplete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		questID := c.Params("id")

		var req webmodels.CompleteQuestRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return utils.SendBadRequest(c, "Invalid request body", nil)
			}
		}

		if err := webApp.Session.CompleteQuest(questID, req.Photos); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, webApp.Store.State().QuestByID(questID), "Quest completed")
	}
}

// QuestsProgress updates an active quest's progress percentage.
func QuestsProgress(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		var req webmodels.ProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		questID := c.Params("id")
		if err := webApp.Session.UpdateQuestProgress(questID, req.Progress); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, webApp.Store.State().QuestByID(questID), "Progress updated")
	}
}

// QuestsUploadPhotos accepts multipart verification photos, stores them in
// the photo bucket and completes the quest with the resulting URLs.
func QuestsUploadPhotos(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userSession, err := webApp.requireFacadeSession(c)
		if err != nil {
			return err
		}
		if webApp.Photos == nil {
			return utils.SendError(c, fiber.StatusServiceUnavailable, "PHOTOS_DISABLED",
				"Photo storage is not configured", nil)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.SendBadRequest(c, "Expected multipart form upload", nil)
		}
		files := form.File["photos"]
		if len(files) == 0 {
			return utils.SendBadRequest(c, "No photos attached", nil)
		}

		photos := make([]services.Photo, 0, len(files))
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return utils.SendBadRequest(c, "Failed to read uploaded file", nil)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return utils.SendBadRequest(c, "Failed to read uploaded file", nil)
			}
			photos = append(photos, services.Photo{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}

		questID := c.Params("id")
		urls, err := webApp.Photos.UploadQuestPhotos(c.Context(), questID, userSession.UserID, photos)
		if err != nil {
			slog.Error("Photo upload failed",
				slog.String("quest_id", questID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Photo upload failed")
		}

		if err := webApp.Session.CompleteQuest(questID, urls); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{
			"quest":  webApp.Store.State().QuestByID(questID),
			"photos": urls,
		}, "Quest completed with photos")
	}
}
