package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webconfig "github.com/farmquest-india/farmquest/backend/config"
	"github.com/farmquest-india/farmquest/backend/handlers"
	"github.com/farmquest-india/farmquest/backend/middleware"
	webservices "github.com/farmquest-india/farmquest/backend/services"
	"github.com/farmquest-india/farmquest/farmquest"
	"github.com/farmquest-india/farmquest/farmquest/localstore"
	"github.com/farmquest-india/farmquest/farmquest/seed"
	"github.com/farmquest-india/farmquest/farmquest/services"
	"github.com/farmquest-india/farmquest/farmquest/session"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &farmquest.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLHours = 24
	webCfg := webconfig.NewWebAppConfig(cfg, true)

	st := store.New(store.State{
		Users:        seed.Users(),
		Quests:       seed.Quests(),
		Achievements: seed.Achievements(),
		Articles:     seed.Articles(),
	})
	local, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	engine := services.NewAchievementEngine(st)
	manager := session.NewManager(st, local,
		session.WithAuthDelays(0, 0),
		session.WithEvaluator(engine),
	)

	webApp := &handlers.WebApp{
		Config:         webCfg,
		Store:          st,
		Session:        manager,
		SessionService: webservices.NewSessionService(webCfg),
		Leaderboard:    services.NewLeaderboardService(st),
		Search:         services.NewSearchService(st),
		Stats:          services.NewStatsService(st),
		Version:        "test",
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	app.Get("/health", handlers.HealthCheck(webApp))
	app.Post("/auth/login", handlers.Login(webApp))
	app.Post("/auth/register", handlers.Register(webApp))
	app.Post("/auth/logout", handlers.Logout(webApp))
	app.Get("/api/quests", handlers.QuestsList(webApp))
	app.Get("/api/quests/:id", handlers.QuestsDetail(webApp))
	app.Get("/api/leaderboard", handlers.LeaderboardTop(webApp))
	app.Get("/api/search", handlers.SearchAll(webApp))

	me := app.Group("/api", middleware.AuthRequired(webApp))
	me.Get("/profile", handlers.Profile(webApp))
	me.Post("/quests/:id/start", handlers.QuestsStart(webApp))
	me.Post("/quests/:id/complete", handlers.QuestsComplete(webApp))
	me.Patch("/quests/:id/progress", handlers.QuestsProgress(webApp))

	admin := app.Group("/admin", middleware.AuthRequired(webApp), middleware.AdminRequired(webApp))
	admin.Get("/stats", handlers.AdminStats(webApp))

	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func login(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", fiber.Map{"email": email}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == webservices.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func TestLoginAndProfile(t *testing.T) {
	app := testApp(t)
	cookie := login(t, app, "rajesh.kumar@email.com")

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		ID          string `json:"id"`
		TotalPoints int    `json:"total_points"`
		Rank        int    `json:"rank"`
	}
	decodeData(t, resp, &user)
	assert.Equal(t, "user_1", user.ID)
	assert.Equal(t, 2450, user.TotalPoints)
	assert.NotZero(t, user.Rank)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login", fiber.Map{"email": "ghost@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresAuth(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQuestLifecycleOverHTTP(t *testing.T) {
	app := testApp(t)
	cookie := login(t, app, "anita.devi@email.com")

	// quest_4 is not active for anyone in the seed data
	start := jsonRequest(http.MethodPost, "/api/quests/quest_4/start", nil)
	start.AddCookie(cookie)
	resp, err := app.Test(start)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Starting again conflicts.
	again := jsonRequest(http.MethodPost, "/api/quests/quest_4/start", nil)
	again.AddCookie(cookie)
	resp, err = app.Test(again)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	progress := jsonRequest(http.MethodPatch, "/api/quests/quest_4/progress", fiber.Map{"progress": 50})
	progress.AddCookie(cookie)
	resp, err = app.Test(progress)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	complete := jsonRequest(http.MethodPost, "/api/quests/quest_4/complete", nil)
	complete.AddCookie(cookie)
	resp, err = app.Test(complete)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var quest struct {
		IsCompleted bool `json:"is_completed"`
		Progress    int  `json:"progress"`
	}
	decodeData(t, resp, &quest)
	assert.True(t, quest.IsCompleted)
	assert.Equal(t, 100, quest.Progress)
}

func TestQuestProgressValidation(t *testing.T) {
	app := testApp(t)
	cookie := login(t, app, "anita.devi@email.com")

	req := jsonRequest(http.MethodPatch, "/api/quests/quest_4/progress", fiber.Map{"progress": 150})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterOverHTTP(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", fiber.Map{
		"name":     "New Farmer",
		"email":    "new.farmer@example.com",
		"district": "Pune",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate registration conflicts.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/auth/register", fiber.Map{
		"name":     "New Farmer",
		"email":    "new.farmer@example.com",
		"district": "Pune",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The new account shows up on the leaderboard.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=100", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []struct {
		Name string `json:"name"`
	}
	decodeData(t, resp, &entries)
	found := false
	for _, e := range entries {
		if e.Name == "New Farmer" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRegisterValidation(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", fiber.Map{
		"name":  "",
		"email": "bad",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminStatsRequiresAdmin(t *testing.T) {
	app := testApp(t)

	// user_1 is not an admin.
	cookie := login(t, app, "rajesh.kumar@email.com")
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// user_2 is.
	cookie = login(t, app, "priya.sharma@email.com")
	req = httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalFarmers int `json:"total_farmers"`
	}
	decodeData(t, resp, &stats)
	assert.Equal(t, 5, stats.TotalFarmers)
}

func TestQuestsListFiltering(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/quests?category=Water%20Conservation", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var quests []struct {
		Category string `json:"category"`
	}
	decodeData(t, resp, &quests)
	require.NotEmpty(t, quests)
	for _, q := range quests {
		assert.Equal(t, "Water Conservation", q.Category)
	}
}

func TestSearchEndpoint(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?q=water", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results struct {
		Quests   []struct{ ID string } `json:"quests"`
		Articles []struct{ ID string } `json:"articles"`
	}
	decodeData(t, resp, &results)
	assert.NotEmpty(t, results.Quests)
	assert.NotEmpty(t, results.Articles)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/search", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
}
