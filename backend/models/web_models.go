package models

import (
	"time"

	"github.com/farmquest-india/farmquest/farmquest/models"
)

// UserSession represents a user session for web authentication
type UserSession struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	District  string    `json:"district"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewUserSession builds a session record from a user, valid for ttl.
func NewUserSession(u models.User, ttl time.Duration) *UserSession {
	now := time.Now()
	return &UserSession{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		District:  u.District,
		IsAdmin:   u.IsAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email string `json:"email"`
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	District        string   `json:"district"`
	Village         string   `json:"village"`
	FarmSize        float64  `json:"farm_size"`
	PrimaryCrops    []string `json:"primary_crops"`
	ExperienceLevel string   `json:"experience_level"`
	Language        string   `json:"language"`
}

// CompleteQuestRequest carries verification photo URLs collected client-side.
// Direct uploads go through the multipart photos endpoint instead.
type CompleteQuestRequest struct {
	Photos []string `json:"photos"`
}

// ProgressRequest updates an active quest's progress percentage.
type ProgressRequest struct {
	Progress int `json:"progress"`
}

// NotificationRequest creates a custom notification.
type NotificationRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	ActionURL string `json:"action_url"`
}

// SessionResponse is returned by auth endpoints.
type SessionResponse struct {
	User      *models.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}
