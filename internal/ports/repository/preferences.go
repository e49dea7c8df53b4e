package repository

import (
	"context"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

// IPreferencesRepo пользовательские настройки
type IPreferencesRepo interface {
	// Get возвращает настройки по умолчанию, если записи ещё нет
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	Upsert(ctx context.Context, prefs *domain.Preferences) error
	// IncrementComparisons атомарно увеличивает счётчик сравнений, если не превышен лимит
	// (премиум без лимита). Возвращает domain.ErrComparisonLimit.
	IncrementComparisons(ctx context.Context, userID uuid.UUID, limit int) (int, error)
}
