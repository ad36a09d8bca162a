package storage

import (
	"context"
	"errors"

	"showcase/internal/models"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mock_storage

type ProjectStorage interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
}

type SubscriberStorage interface {
	Subscribe(ctx context.Context, subscriber *models.Subscriber) (*models.Subscriber, error)
}

type AccountStorage interface {
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}
