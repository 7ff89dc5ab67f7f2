package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/farmquest-india/farmquest/backend/models"
	"github.com/farmquest-india/farmquest/backend/utils"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/session"
)

// Login authenticates by email and issues the signed session cookie.
func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if errs := utils.ValidateLoginRequest(&req); len(errs) > 0 {
			return utils.HandleValidationErrors(c, errs)
		}

		user, err := webApp.Session.Login(c.Context(), req.Email)
		if err != nil {
			return sendActionError(c, err)
		}

		userSession := webmodels.NewUserSession(*user, webApp.Config.SessionTTL())
		if err := webApp.SessionService.CreateSession(c, userSession); err != nil {
			slog.Error("Failed to create session cookie", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create session")
		}

		return utils.SendSuccess(c, webmodels.SessionResponse{
			User:      user,
			ExpiresAt: userSession.ExpiresAt,
		}, "Logged in")
	}
}

// Register creates a new account and logs it in.
func Register(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if errs := utils.ValidateRegisterRequest(&req); len(errs) > 0 {
			return utils.HandleValidationErrors(c, errs)
		}

		experience := models.ExperienceLevel(req.ExperienceLevel)
		if req.ExperienceLevel == "" {
			experience = models.ExperienceBeginner
		}
		language := models.Language(req.Language)
		if req.Language == "" {
			language = models.LanguageEnglish
		}

		user, err := webApp.Session.Register(c.Context(), session.RegisterInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			District:        req.District,
			Village:         req.Village,
			FarmSize:        req.FarmSize,
			PrimaryCrops:    req.PrimaryCrops,
			ExperienceLevel: experience,
			Language:        language,
		})
		if err != nil {
			return sendActionError(c, err)
		}

		userSession := webmodels.NewUserSession(*user, webApp.Config.SessionTTL())
		if err := webApp.SessionService.CreateSession(c, userSession); err != nil {
			slog.Error("Failed to create session cookie", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create session")
		}

		return utils.SendCreated(c, webmodels.SessionResponse{
			User:      user,
			ExpiresAt: userSession.ExpiresAt,
		}, "Account created")
	}
}

// Logout clears the facade session and the cookie.
func Logout(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := webApp.Session.Logout(); err != nil {
			slog.Error("Logout failed", slog.String("error", err.Error()))
		}
		webApp.SessionService.DestroySession(c)
		return utils.SendSuccess(c, nil, "Logged out")
	}
}

// ValidateSession returns the current session user for the frontend.
func ValidateSession(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userSession, err := webApp.GetSession(c)
		if err != nil {
			return utils.SendUnauthorized(c, "No valid session")
		}
		user := webApp.Store.State().UserByID(userSession.UserID)
		if user == nil {
			webApp.SessionService.DestroySession(c)
			return utils.SendUnauthorized(c, "Session user no longer exists")
		}
		return utils.SendSuccess(c, webmodels.SessionResponse{
			User:      user,
			ExpiresAt: userSession.ExpiresAt,
		}, "")
	}
}

// Profile returns the full record of the authenticated user.
func Profile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userSession, err := webApp.requireFacadeSession(c)
		if err != nil {
			return err
		}
		user := webApp.Store.State().UserByID(userSession.UserID)
		if user == nil {
			return utils.SendNotFound(c, "User not found")
		}
		user.Rank = webApp.Leaderboard.RankOf(user.ID)
		return utils.SendSuccess(c, user, "")
	}
}
