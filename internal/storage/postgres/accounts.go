package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"showcase/internal/lib/logger/utils"
	"showcase/internal/models"
	"showcase/internal/storage"
)

func (s *PgStorage) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
        INSERT INTO accounts (id, name, email, password_hash)
        VALUES ($1::text::uuid, $2, $3, $4)
        RETURNING id::text, name, email, password_hash, created_at
    `
	var added models.Account
	err := s.pool.QueryRow(ctx, query, account.ID, account.Name, account.Email, account.PasswordHash).Scan(
		&added.ID, &added.Name, &added.Email, &added.PasswordHash, &added.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAccountExists
		}
		utils.Logger.Error("PgStorage.CreateAccount - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.CreateAccount - queryRow failed: %w", err)
	}
	return &added, nil
}

func (s *PgStorage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id::text, name, email, password_hash, created_at FROM accounts WHERE email = $1`
	var account models.Account
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		utils.Logger.Error("PgStorage.GetAccountByEmail - queryRow failed", zap.Error(err))
		return nil, fmt.Errorf("PgStorage.GetAccountByEmail - queryRow failed: %w", err)
	}
	return &account, nil
}
