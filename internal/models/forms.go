// internal/models/forms.go
package models

import "time"

type SubscribeRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Toast is the feedback shown after the newsletter form.
type Toast struct {
	BgColor string `json:"bgColor"`
	Msg     string `json:"msg"`
	DelayMs int    `json:"delayMs"`
}

// Alert is the feedback shown inside the login/signup modal.
type Alert struct {
	Variant string `json:"variant"`
	Message string `json:"message"`
}

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
