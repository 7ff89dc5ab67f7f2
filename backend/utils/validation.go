package utils

import (
	"net/mail"
	"strings"

	webmodels "github.com/farmquest-india/farmquest/backend/models"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

// ValidateLoginRequest checks the login payload.
func ValidateLoginRequest(req *webmodels.LoginRequest) []webmodels.FieldValidationError {
	var errs []webmodels.FieldValidationError
	if !validEmail(req.Email) {
		errs = append(errs, fieldError("email", "A valid email address is required", req.Email))
	}
	return errs
}

// ValidateRegisterRequest checks the registration payload.
func ValidateRegisterRequest(req *webmodels.RegisterRequest) []webmodels.FieldValidationError {
	var errs []webmodels.FieldValidationError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, fieldError("name", "Name is required", req.Name))
	}
	if !validEmail(req.Email) {
		errs = append(errs, fieldError("email", "A valid email address is required", req.Email))
	}
	if strings.TrimSpace(req.District) == "" {
		errs = append(errs, fieldError("district", "District is required", req.District))
	}
	if req.FarmSize < 0 {
		errs = append(errs, fieldError("farm_size", "Farm size cannot be negative", req.FarmSize))
	}
	if req.ExperienceLevel != "" && !validExperienceLevel(req.ExperienceLevel) {
		errs = append(errs, fieldError("experience_level", "Unknown experience level", req.ExperienceLevel))
	}
	if req.Language != "" && !validLanguage(req.Language) {
		errs = append(errs, fieldError("language", "Unsupported language", req.Language))
	}
	return errs
}

// ValidateNotificationRequest checks the custom notification payload.
func ValidateNotificationRequest(req *webmodels.NotificationRequest) []webmodels.FieldValidationError {
	var errs []webmodels.FieldValidationError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, fieldError("title", "Title is required", req.Title))
	}
	if req.Type != "" {
		switch models.NotificationType(req.Type) {
		case models.NotificationInfo, models.NotificationSuccess, models.NotificationWarning, models.NotificationError:
		default:
			errs = append(errs, fieldError("type", "Unknown notification type", req.Type))
		}
	}
	return errs
}

func validEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

func validExperienceLevel(level string) bool {
	switch models.ExperienceLevel(level) {
	case models.ExperienceBeginner, models.ExperienceIntermediate, models.ExperienceAdvanced:
		return true
	}
	return false
}

func validLanguage(language string) bool {
	switch models.Language(language) {
	case models.LanguageEnglish, models.LanguageHindi, models.LanguageMalayalam,
		models.LanguageTamil, models.LanguageTelugu:
		return true
	}
	return false
}

func fieldError(field, message string, value interface{}) webmodels.FieldValidationError {
	return webmodels.FieldValidationError{Field: field, Message: message, Value: value}
}
