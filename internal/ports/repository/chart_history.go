package repository

import (
	"context"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	"github.com/google/uuid"
)

// IChartHistoryRepo архив расчётов карт, только добавление
type IChartHistoryRepo interface {
	CreateTx(ctx context.Context, tx persistence.Transaction, h *domain.ChartHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChartHistory, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
