package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	ports "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type userColumns struct {
	TableName              string
	ID                     string
	Email                  string
	DisplayName            string
	BirthDate              string
	BirthTime              string
	BirthPlace             string
	NatalChart             string
	NatalChartCalculatedAt string
	CreatedAt              string
	UpdatedAt              string
}

type Repository struct {
	db      persistence.Database
	Log     *slog.Logger
	columns userColumns
}

// New создаёт репозиторий пользователей
func New(db persistence.Database, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName:              "users",
		ID:                     "id",
		Email:                  "email",
		DisplayName:            "display_name",
		BirthDate:              "birth_date",
		BirthTime:              "birth_time",
		BirthPlace:             "birth_place",
		NatalChart:             "natal_chart",
		NatalChartCalculatedAt: "natal_chart_calculated_at",
		CreatedAt:              "created_at",
		UpdatedAt:              "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns все колонки (10)
func (r *Repository) allColumns() string {
	return strings.Join([]string{
		r.columns.ID,
		r.columns.Email,
		r.columns.DisplayName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthPlace,
		r.columns.NatalChart,
		r.columns.NatalChartCalculatedAt,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
	}, ", ")
}

// profileColumns все колонки кроме natal_chart, карта грузится отдельно
func (r *Repository) profileColumns() string {
	return strings.Join([]string{
		r.columns.ID,
		r.columns.Email,
		r.columns.DisplayName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthPlace,
		r.columns.NatalChartCalculatedAt,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
	}, ", ")
}

// Create создаёт нового пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.BirthDate,
		user.BirthTime,
		user.BirthPlace,
		user.NatalChart,
		user.NatalChartCalculatedAt,
		user.CreatedAt,
		user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.Log.Warn("email already registered", "user_id", user.ID)
			return fmt.Errorf("email %q: %w", user.Email, domain.ErrEmailTaken)
		}
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.Log.Debug("user created successfully", "user_id", user.ID)
	return nil
}

// GetByID получает пользователя по ID (без natal_chart)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getByID(ctx, r.db, id)
}

// GetByIDTx получает пользователя в транзакции с блокировкой строки
func (r *Repository) GetByIDTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID) (*domain.User, error) {
	return r.getByID(ctx, tx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, db persistence.Persistence, id uuid.UUID, suffix ...string) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 %s`,
		r.profileColumns(),
		r.columns.TableName,
		r.columns.ID,
		strings.Join(suffix, " "))
	err := db.Get(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found", "user_id", id)
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
		}
		r.Log.Error("failed to get user by id",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	r.Log.Debug("user retrieved successfully", "user_id", id)
	return &user, nil
}

// GetNatalChart загружает только карту пользователя
func (r *Repository) GetNatalChart(ctx context.Context, userID uuid.UUID) (*domain.NatalChartData, error) {
	var chart *domain.NatalChartData
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.columns.NatalChart,
		r.columns.TableName,
		r.columns.ID)
	err := r.db.QueryRow(ctx, query, userID).Scan(&chart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found", "user_id", userID)
			return nil, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
		}
		r.Log.Error("failed to get natal chart",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to get natal chart: %w", err)
	}
	if chart == nil {
		return nil, domain.ErrChartNotFound
	}
	return chart, nil
}

// UpdateBirthData перезаписывает данные рождения и карту целиком
func (r *Repository) UpdateBirthData(ctx context.Context, user *domain.User) error {
	return r.updateBirthData(ctx, r.db, user)
}

// UpdateBirthDataTx то же в транзакции
func (r *Repository) UpdateBirthDataTx(ctx context.Context, tx persistence.Transaction, user *domain.User) error {
	return r.updateBirthData(ctx, tx, user)
}

func (r *Repository) updateBirthData(ctx context.Context, db persistence.Persistence, user *domain.User) error {
	query := fmt.Sprintf(`UPDATE %s SET
		%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1`,
		r.columns.TableName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthPlace,
		r.columns.NatalChart,
		r.columns.NatalChartCalculatedAt,
		r.columns.UpdatedAt,
		r.columns.ID)
	rowsAffected, err := db.ExecWithResult(ctx, query,
		user.ID,
		user.BirthDate,
		user.BirthTime,
		user.BirthPlace,
		user.NatalChart,
		user.NatalChartCalculatedAt,
		user.UpdatedAt)
	if err != nil {
		r.Log.Error("failed to update birth data",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to update birth data: %w", err)
	}
	if rowsAffected == 0 {
		r.Log.Warn("user not found for birth data update", "user_id", user.ID)
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrUserNotFound)
	}
	r.Log.Debug("birth data updated successfully", "user_id", user.ID)
	return nil
}

// WithTransaction выполняет функцию в транзакции с автоматическим commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}
