package chartHistoryRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	ports "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/repository"
	"github.com/google/uuid"
)

const defaultListLimit = 20

type Repository struct {
	db  persistence.Database
	Log *slog.Logger
}

func New(db persistence.Database, log *slog.Logger) ports.IChartHistoryRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// CreateTx архивирует расчёт в транзакции сохранения профиля
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, h *domain.ChartHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	query := `INSERT INTO chart_history (id, user_id, chart, source, created_at)
		VALUES (:id, :user_id, :chart, :source, :created_at)`
	if err := tx.NamedExec(ctx, query, h); err != nil {
		r.Log.Error("failed to archive chart", "error", err, "user_id", h.UserID)
		return fmt.Errorf("failed to archive chart: %w", err)
	}
	r.Log.Debug("chart archived", "id", h.ID, "user_id", h.UserID, "source", h.Source)
	return nil
}

// ListByUser последние расчёты пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ChartHistory, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var history []domain.ChartHistory
	query := `SELECT id, user_id, chart, source, created_at
		FROM chart_history WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`
	if err := r.db.Select(ctx, &history, query, userID, limit); err != nil {
		r.Log.Error("failed to list chart history", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list chart history: %w", err)
	}
	return history, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.Get(ctx, &count, `SELECT COUNT(*) FROM chart_history WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to count chart history: %w", err)
	}
	return count, nil
}
