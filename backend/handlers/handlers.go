// Package handlers exposes the HTTP surface of the application: auth, quests,
// achievements, articles, notifications, leaderboard, search and the admin
// dashboard. Handlers are thin; every mutation goes through the session
// facade and every read through the store snapshot or a service.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/config"
	webmodels "github.com/farmquest-india/farmquest/backend/models"
	webservices "github.com/farmquest-india/farmquest/backend/services"
	"github.com/farmquest-india/farmquest/backend/utils"
	fqconfig "github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/services"
	"github.com/farmquest-india/farmquest/farmquest/session"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config         *config.WebAppConfig
	Store          *store.Store
	Session        *session.Manager
	SessionService *webservices.SessionService
	Leaderboard    *services.LeaderboardService
	Search         *services.SearchService
	Photos         *services.PhotoService
	Stats          *services.StatsService
	Version        string
	Commit         string
}

// GetSession retrieves the signed cookie session for the request.
func (w *WebApp) GetSession(c *fiber.Ctx) (*webmodels.UserSession, error) {
	return w.SessionService.GetSession(c)
}

// syncFacadeSession points the store's session at the cookie's user. The
// facade tracks one current user; a request carrying a different valid cookie
// switches the facade over before acting.
func (w *WebApp) syncFacadeSession(userSession *webmodels.UserSession) error {
	current := w.Store.CurrentUser()
	if current != nil && current.ID == userSession.UserID {
		return nil
	}
	user := w.Store.State().UserByID(userSession.UserID)
	if user == nil {
		return session.ErrNoActiveSession
	}
	w.Store.Dispatch(store.SetCurrentUser{User: user})
	return nil
}

// requireFacadeSession resolves the cookie session and aligns the facade with
// it. Returns a ready-to-send error response when either step fails.
func (w *WebApp) requireFacadeSession(c *fiber.Ctx) (*webmodels.UserSession, error) {
	userSession, ok := utils.ExtractUserSession(c)
	if !ok {
		return nil, utils.SendUnauthorized(c, "Authentication required")
	}
	if err := w.syncFacadeSession(userSession); err != nil {
		w.SessionService.DestroySession(c)
		return nil, utils.SendUnauthorized(c, "Session user no longer exists")
	}
	return userSession, nil
}

// parsePagination reads page/limit query params with sane bounds.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(fqconfig.DefaultPageSize)))
	if limit < 1 {
		limit = fqconfig.DefaultPageSize
	}
	if limit > fqconfig.MaxPageSize {
		limit = fqconfig.MaxPageSize
	}
	return page, limit
}

// paginate slices one page out of a list and builds pagination metadata.
func paginate[T any](items []T, page, limit int) ([]T, *webmodels.PaginationInfo) {
	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], webmodels.NewPaginationInfo(page, limit, int64(total))
}

// sendActionError maps facade errors onto HTTP error responses.
func sendActionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNoActiveSession):
		return utils.SendUnauthorized(c, err.Error())
	case errors.Is(err, session.ErrUnknownUser):
		return utils.SendUnauthorized(c, err.Error())
	case errors.Is(err, session.ErrEmailTaken):
		return utils.SendConflict(c, err.Error(), nil)
	case errors.Is(err, session.ErrQuestNotFound),
		errors.Is(err, session.ErrArticleNotFound),
		errors.Is(err, session.ErrAchievementNotFound),
		errors.Is(err, session.ErrNotificationNotFound):
		return utils.SendNotFound(c, err.Error())
	case errors.Is(err, session.ErrQuestActive),
		errors.Is(err, session.ErrQuestCompleted):
		return utils.SendConflict(c, err.Error(), nil)
	case errors.Is(err, session.ErrInvalidProgress):
		return utils.SendBadRequest(c, err.Error(), nil)
	default:
		return utils.SendInternalServerError(c, "Something went wrong")
	}
}
