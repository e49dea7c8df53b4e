package astro

import (
	"context"
	"fmt"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GetChartHistory архив расчётов пользователя, новые первыми. limit 0 значит по умолчанию.
func (s *Service) GetChartHistory(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChartHistoryPage, error) {
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 0 || limit > maxHistoryLimit {
		err := fmt.Errorf("limit must be between 1 and %d: %w", maxHistoryLimit, domain.ErrInvalidInput)
		return nil, s.business(err, "chart history limit rejected", "user_id", userID, "limit", limit)
	}

	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.HistoryRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chart history: %w", err)
	}
	total, err := s.HistoryRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count chart history: %w", err)
	}

	if items == nil {
		items = []domain.ChartHistory{}
	}
	return &domain.ChartHistoryPage{Total: total, Items: items}, nil
}
