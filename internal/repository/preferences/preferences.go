package preferencesRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	ports "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/repository"
	"github.com/google/uuid"
)

type Repository struct {
	db  persistence.Database
	Log *slog.Logger
}

// New создаёт репозиторий настроек
func New(db persistence.Database, log *slog.Logger) ports.IPreferencesRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Get получает настройки пользователя, при отсутствии записи возвращает значения по умолчанию
func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	var prefs domain.Preferences
	query := `SELECT user_id, remembered_email, is_premium, comparison_count, updated_at
		FROM user_preferences WHERE user_id = $1`
	err := r.db.Get(ctx, &prefs, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Debug("preferences not found, using defaults", "user_id", userID)
			return domain.DefaultPreferences(userID), nil
		}
		r.Log.Error("failed to get preferences", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &prefs, nil
}

// Upsert сохраняет настройки, счётчик сравнений не трогает
func (r *Repository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	prefs.UpdatedAt = time.Now()
	query := `INSERT INTO user_preferences (user_id, remembered_email, is_premium, comparison_count, updated_at)
		VALUES (:user_id, :remembered_email, :is_premium, :comparison_count, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			remembered_email = EXCLUDED.remembered_email,
			is_premium = EXCLUDED.is_premium,
			updated_at = EXCLUDED.updated_at`
	if err := r.db.NamedExec(ctx, query, prefs); err != nil {
		r.Log.Error("failed to upsert preferences", "error", err, "user_id", prefs.UserID)
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	r.Log.Debug("preferences saved", "user_id", prefs.UserID, "is_premium", prefs.IsPremium)
	return nil
}

// IncrementComparisons увеличивает счётчик: для бесплатных только пока count < limit,
// премиум считается всегда. Сначала гарантирует строку, чтобы лимит проверялся одним UPDATE.
func (r *Repository) IncrementComparisons(ctx context.Context, userID uuid.UUID, limit int) (int, error) {
	ensure := `INSERT INTO user_preferences (user_id, comparison_count, updated_at)
		VALUES ($1, 0, NOW())
		ON CONFLICT (user_id) DO NOTHING`
	if err := r.db.Exec(ctx, ensure, userID); err != nil {
		r.Log.Error("failed to ensure preferences row", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to increment comparisons: %w", err)
	}

	query := `UPDATE user_preferences SET
			comparison_count = comparison_count + 1,
			updated_at = NOW()
		WHERE user_id = $1 AND (is_premium OR comparison_count < $2)
		RETURNING comparison_count`

	var count int
	err := r.db.QueryRow(ctx, query, userID, limit).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Info("comparison limit reached", "user_id", userID, "limit", limit)
			return 0, domain.ErrComparisonLimit
		}
		r.Log.Error("failed to increment comparisons", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to increment comparisons: %w", err)
	}
	return count, nil
}
