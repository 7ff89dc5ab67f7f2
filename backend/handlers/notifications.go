package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/farmquest-india/farmquest/backend/models"
	"github.com/farmquest-india/farmquest/backend/utils"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// NotificationsList returns notifications newest first, optionally only
// unread ones.
func NotificationsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		unreadOnly := c.QueryBool("unread")

		notifications := webApp.Store.State().Notifications
		if unreadOnly {
			filtered := make([]models.Notification, 0, len(notifications))
			for _, n := range notifications {
				if !n.IsRead {
					filtered = append(filtered, n)
				}
			}
			notifications = filtered
		}

		page, limit := parsePagination(c)
		items, pagination := paginate(notifications, page, limit)
		return utils.SendPaginated(c, items, pagination, "")
	}
}

// NotificationsCreate adds a custom notification for the session user.
func NotificationsCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		var req webmodels.NotificationRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if errs := utils.ValidateNotificationRequest(&req); len(errs) > 0 {
			return utils.HandleValidationErrors(c, errs)
		}

		typ := models.NotificationType(req.Type)
		if req.Type == "" {
			typ = models.NotificationInfo
		}
		if err := webApp.Session.AddNotification(req.Title, req.Message, typ, req.ActionURL); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendCreated(c, nil, "Notification created")
	}
}

// NotificationsMarkRead flips a notification's read flag.
func NotificationsMarkRead(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := webApp.requireFacadeSession(c); err != nil {
			return err
		}
		if err := webApp.Session.MarkNotificationRead(c.Params("id")); err != nil {
			return sendActionError(c, err)
		}
		return utils.SendSuccess(c, nil, "Notification marked as read")
	}
}
