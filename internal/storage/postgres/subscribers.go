package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

func (s *PgStorage) Subscribe(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, error) {
	query := `
        INSERT INTO subscribers (id, email)
        VALUES ($1::text::uuid, $2)
        RETURNING id::text, email, created_at
    `
	var added models.Subscriber
	err := s.pool.QueryRow(ctx, query, subscriber.ID, subscriber.Email).Scan(&added.ID, &added.Email, &added.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadySubscribed
		}
		utils.Logger.Error("PgStorage.Subscribe - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.Subscribe - queryRow failed: %w", err)
	}
	return &added, nil
}
