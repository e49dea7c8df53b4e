package repository

import (
	"context"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	"github.com/google/uuid"
)

// IUserRepo профили пользователей с данными рождения и картой
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetNatalChart(ctx context.Context, userID uuid.UUID) (*domain.NatalChartData, error)
	UpdateBirthData(ctx context.Context, user *domain.User) error

	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	// Транзакционные методы
	GetByIDTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID) (*domain.User, error)
	UpdateBirthDataTx(ctx context.Context, tx persistence.Transaction, user *domain.User) error
}
