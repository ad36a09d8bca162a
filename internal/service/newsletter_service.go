package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"showcase/internal/forms"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

type NewsletterService struct {
	storage storage.SubscriberStorage
}

func NewNewsletterService(storage storage.SubscriberStorage) *NewsletterService {
	return &NewsletterService{storage: storage}
}

// Subscribe validates the form and stores the address. Validation failures
// are *forms.ValidationError; a known address is storage.ErrAlreadySubscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	if err := forms.ValidateSubscribe(req); err != nil {
		return nil, err
	}

	email := forms.NormalizeEmail(req.Email)
	utils.Logger.Debug("NewsletterService.Subscribe", zap.String("email", email))

	subscriber, err := s.storage.Subscribe(ctx, &models.Subscriber{ID: uuid.NewString(), Email: email})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadySubscribed) {
			return nil, storage.ErrAlreadySubscribed
		}
		utils.Logger.Error("NewsletterService.Subscribe - storage.Subscribe failed", zap.Error(err))
		return nil, fmt.Errorf("NewsletterService.Subscribe - storage.Subscribe failed: %w", err)
	}

	utils.Logger.Info("NewsletterService.Subscribe - subscriber added", zap.String("subscriber_id", subscriber.ID))
	return subscriber, nil
}
