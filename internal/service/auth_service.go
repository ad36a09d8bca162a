package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"showcase/internal/forms"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	storage    storage.AccountStorage
	bcryptCost int
}

// NewAuthService hashes passwords with bcryptCost; zero selects
// bcrypt.DefaultCost.
func NewAuthService(storage storage.AccountStorage, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{storage: storage, bcryptCost: bcryptCost}
}

func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.Account, error) {
	if err := forms.ValidateSignup(req); err != nil {
		return nil, err
	}

	email := forms.NormalizeEmail(req.Email)
	utils.Logger.Debug("AuthService.Signup", zap.String("email", email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		utils.Logger.Error("AuthService.Signup - GenerateFromPassword failed", zap.Error(err))
		return nil, fmt.Errorf("AuthService.Signup - GenerateFromPassword failed: %w", err)
	}

	account, err := s.storage.CreateAccount(ctx, &models.Account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			return nil, storage.ErrAccountExists
		}
		utils.Logger.Error("AuthService.Signup - storage.CreateAccount failed", zap.Error(err))
		return nil, fmt.Errorf("AuthService.Signup - storage.CreateAccount failed: %w", err)
	}

	utils.Logger.Info("AuthService.Signup - account created", zap.String("account_id", account.ID))
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Account, error) {
	if err := forms.ValidateLogin(req); err != nil {
		return nil, err
	}

	email := forms.NormalizeEmail(req.Email)
	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.Logger.Error("AuthService.Login - storage.GetAccountByEmail failed", zap.Error(err))
		return nil, fmt.Errorf("AuthService.Login - storage.GetAccountByEmail failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		utils.Logger.Info("AuthService.Login - password mismatch", zap.String("account_id", account.ID))
		return nil, ErrInvalidCredentials
	}

	utils.Logger.Info("AuthService.Login - logged in", zap.String("account_id", account.ID))
	return account, nil
}
