// internal/api/handlers/submissions/submissions_handlers.go
package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"showcase/internal/forms"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/lib/response"
	"showcase/internal/models"
	"showcase/internal/service"
	"showcase/internal/storage"
)

type FormHandlers struct {
	newsletterService *service.NewsletterService
	authService       *service.AuthService
}

func NewFormHandlers(newsletterService *service.NewsletterService, authService *service.AuthService) *FormHandlers {
	return &FormHandlers{
		newsletterService: newsletterService,
		authService:       authService,
	}
}

// @Summary Subscribe to the newsletter
// @Tags forms
// @Accept json
// @Produce json
// @Param body body models.SubscribeRequest true "Email address"
// @Success 201 {object} map[string]models.Toast
// @Failure 400 {object} map[string]models.Toast
// @Failure 429 {object} map[string]models.Toast
// @Router /api/newsletter [post]
func (h *FormHandlers) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("SubscribeHandler - invalid request body", zap.Error(err))
		response.Toast(w, http.StatusBadRequest, forms.DangerToast(forms.MsgEmpty))
		return
	}

	_, err := h.newsletterService.Subscribe(r.Context(), &req)
	if err != nil {
		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Toast(w, http.StatusBadRequest, forms.DangerToast(verr.Message))
		case errors.Is(err, storage.ErrAlreadySubscribed):
			response.Toast(w, http.StatusOK, forms.InfoToast(forms.MsgAlreadySubscribed))
		default:
			utils.Logger.Error("SubscribeHandler - newsletterService.Subscribe failed", zap.Error(err))
			response.Toast(w, http.StatusInternalServerError, forms.DangerToast(forms.MsgServerError))
		}
		return
	}

	response.Toast(w, http.StatusCreated, forms.SuccessToast(forms.MsgSubscribed))
}

// @Summary Log in
// @Tags forms
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]models.Alert
// @Failure 400 {object} map[string]models.Alert
// @Failure 401 {object} map[string]models.Alert
// @Router /api/auth/login [post]
func (h *FormHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("LoginHandler - invalid request body", zap.Error(err))
		response.Alert(w, http.StatusBadRequest, forms.DangerAlert(forms.MsgEmpty))
		return
	}

	_, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Alert(w, http.StatusBadRequest, forms.DangerAlert(verr.Message))
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Alert(w, http.StatusUnauthorized, forms.DangerAlert(forms.MsgBadCredentials))
		default:
			utils.Logger.Error("LoginHandler - authService.Login failed", zap.Error(err))
			response.Alert(w, http.StatusInternalServerError, forms.DangerAlert(forms.MsgServerError))
		}
		return
	}

	response.Alert(w, http.StatusOK, forms.SuccessAlert(forms.MsgLoggedIn))
}

// @Summary Sign up
// @Tags forms
// @Accept json
// @Produce json
// @Param body body models.SignupRequest true "New account"
// @Success 201 {object} map[string]models.Alert
// @Failure 400 {object} map[string]models.Alert
// @Failure 409 {object} map[string]models.Alert
// @Router /api/auth/signup [post]
func (h *FormHandlers) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("SignupHandler - invalid request body", zap.Error(err))
		response.Alert(w, http.StatusBadRequest, forms.DangerAlert(forms.MsgEmpty))
		return
	}

	account, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Alert(w, http.StatusBadRequest, forms.DangerAlert(verr.Message))
		case errors.Is(err, storage.ErrAccountExists):
			response.Alert(w, http.StatusConflict, forms.DangerAlert(forms.MsgAccountExists))
		default:
			utils.Logger.Error("SignupHandler - authService.Signup failed", zap.Error(err))
			response.Alert(w, http.StatusInternalServerError, forms.DangerAlert(forms.MsgServerError))
		}
		return
	}

	response.Alert(w, http.StatusCreated, forms.SuccessAlert(forms.MsgSignedUp))
	utils.Logger.Info("SignupHandler - account created", zap.String("account_id", account.ID))
}
