package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmquest-india/farmquest/backend/utils"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// ArticlesList returns learning articles, optionally filtered by category or
// tag.
func ArticlesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		tag := c.Query("tag")

		articles := webApp.Store.State().Articles
		filtered := make([]models.Article, 0, len(articles))
		for _, a := range articles {
			if category != "" && a.Category != category {
				continue
			}
			if tag != "" && !hasTag(a, tag) {
				continue
			}
			filtered = append(filtered, a)
		}

		page, limit := parsePagination(c)
		items, pagination := paginate(filtered, page, limit)
		return utils.SendPaginated(c, items, pagination, "")
	}
}

// ArticlesDetail returns a single article by id.
func ArticlesDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		article := webApp.Store.State().ArticleByID(c.Params("id"))
		if article == nil {
			return utils.SendNotFound(c, "Article not found")
		}
		return utils.SendSuccess(c, article, "")
	}
}

// ArticlesBookmark toggles the article in the authenticated user's bookmarks.
func ArticlesBookmark(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userSession, err := webApp.requireFacadeSession(c)
		if err != nil {
			return err
		}
		articleID := c.Params("id")
		if err := webApp.Session.ToggleBookmark(articleID); err != nil {
			return sendActionError(c, err)
		}

		user := webApp.Store.State().UserByID(userSession.UserID)
		bookmarked := user != nil && user.HasBookmarked(articleID)
		return utils.SendSuccess(c, fiber.Map{
			"article_id": articleID,
			"bookmarked": bookmarked,
		}, "Bookmark updated")
	}
}

// ArticlesBookmarked returns the authenticated user's bookmarked articles.
func ArticlesBookmarked(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userSession, err := webApp.requireFacadeSession(c)
		if err != nil {
			return err
		}
		state := webApp.Store.State()
		user := state.UserByID(userSession.UserID)
		if user == nil {
			return utils.SendNotFound(c, "User not found")
		}

		articles := make([]models.Article, 0, len(user.BookmarkedArticles))
		for _, id := range user.BookmarkedArticles {
			if a := state.ArticleByID(id); a != nil {
				articles = append(articles, *a)
			}
		}
		return utils.SendSuccess(c, articles, "")
	}
}

func hasTag(a models.Article, tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
