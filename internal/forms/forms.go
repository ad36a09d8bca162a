// Package forms validates the newsletter and account forms and builds the
// feedback shown to the visitor.
package forms

import (
	"regexp"
	"strings"

	"showcase/internal/models"
)

const (
	ToastDelayMs      = 10000
	MinPasswordLength = 8
	// bcrypt rejects longer passwords.
	MaxPasswordLength = 72

	MsgEmpty             = "All inputs must not be empty."
	MsgInvalidEmail      = "Email is invalid. Please check."
	MsgSubscribed        = "Subscription successful!"
	MsgAlreadySubscribed = "You are already subscribed."
	MsgShortPassword     = "Password must be at least 8 characters."
	MsgLongPassword      = "Password must be at most 72 bytes."
	MsgPasswordMismatch  = "Passwords do not match."
	MsgLoggedIn          = "Welcome back!"
	MsgSignedUp          = "Your account has been created."
	MsgBadCredentials    = "Email or password is incorrect."
	MsgAccountExists     = "An account with this email already exists."
	MsgTooManyRequests   = "Too many attempts. Please try again later."
	MsgServerError       = "Something went wrong. Please try again."
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// ValidationError carries the message shown for a rejected form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NormalizeEmail trims and lower-cases an address for storage lookups.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ValidateSubscribe(req *models.SubscribeRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return invalid(MsgEmpty)
	}
	if !ValidEmail(email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

func ValidateLogin(req *models.LoginRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return invalid(MsgEmpty)
	}
	if !ValidEmail(email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

func ValidateSignup(req *models.SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		req.Password == "" || req.ConfirmPassword == "" {
		return invalid(MsgEmpty)
	}
	if !ValidEmail(strings.TrimSpace(req.Email)) {
		return invalid(MsgInvalidEmail)
	}
	if len(req.Password) < MinPasswordLength {
		return invalid(MsgShortPassword)
	}
	if len(req.Password) > MaxPasswordLength {
		return invalid(MsgLongPassword)
	}
	if req.Password != req.ConfirmPassword {
		return invalid(MsgPasswordMismatch)
	}
	return nil
}

func SuccessToast(msg string) models.Toast {
	return models.Toast{BgColor: "success", Msg: msg, DelayMs: ToastDelayMs}
}

func DangerToast(msg string) models.Toast {
	return models.Toast{BgColor: "danger", Msg: msg, DelayMs: ToastDelayMs}
}

func InfoToast(msg string) models.Toast {
	return models.Toast{BgColor: "info", Msg: msg, DelayMs: ToastDelayMs}
}

func SuccessAlert(msg string) models.Alert {
	return models.Alert{Variant: "success", Message: msg}
}

func DangerAlert(msg string) models.Alert {
	return models.Alert{Variant: "danger", Message: msg}
}
