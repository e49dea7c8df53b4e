package astro

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/persistence"
	"github.com/google/uuid"
)

const (
	natalCacheKeyPrefix = "astro:natal:"
	chartArchivePrefix  = "charts/"
)

func natalCacheKey(userID uuid.UUID) string {
	return natalCacheKeyPrefix + userID.String()
}

func chartArchivePath(userID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("%s%s/%d.json", chartArchivePrefix, userID, at.Unix())
}

// CalculateChart расчёт без сохранения
func (s *Service) CalculateChart(ctx context.Context, input domain.NatalChartInput) (*domain.NatalChartData, error) {
	chart, err := s.Calculator.Calculate(input)
	if err != nil {
		return nil, s.business(err, "natal chart not calculated")
	}
	return chart, nil
}

// SaveBirthData считает карту и в одной транзакции архивирует её и перезаписывает профиль
func (s *Service) SaveBirthData(ctx context.Context, userID uuid.UUID, input domain.NatalChartInput, source domain.ChartSource) (*domain.NatalChartData, error) {
	chart, err := s.Calculator.Calculate(input)
	if err != nil {
		return nil, s.business(err, "birth data rejected", "user_id", userID)
	}

	if err := s.storeChart(ctx, userID, input, chart, source); err != nil {
		return nil, err
	}
	return chart, nil
}

// RecalculateChart пересчитывает карту по сохранённым данным рождения
func (s *Service) RecalculateChart(ctx context.Context, userID uuid.UUID, source domain.ChartSource) (*domain.NatalChartData, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		if isBusiness(err) {
			return nil, s.business(err, "recalculation for unknown user", "user_id", userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	input, err := user.BirthInput()
	if err != nil {
		return nil, s.business(err, "recalculation without birth data", "user_id", userID)
	}

	chart, err := s.Calculator.Calculate(input)
	if err != nil {
		return nil, s.business(err, "stored birth data is invalid", "user_id", userID)
	}

	if err := s.storeChart(ctx, userID, input, chart, source); err != nil {
		return nil, err
	}
	return chart, nil
}

// GetChart сначала из кэша, потом из профиля
func (s *Service) GetChart(ctx context.Context, userID uuid.UUID) (*domain.NatalChartData, error) {
	if chart, ok := s.cachedChart(ctx, natalCacheKey(userID)); ok {
		return chart, nil
	}

	chart, err := s.UserRepo.GetNatalChart(ctx, userID)
	if err != nil {
		if isBusiness(err) {
			return nil, s.business(err, "natal chart not found", "user_id", userID)
		}
		return nil, fmt.Errorf("failed to get natal chart: %w", err)
	}

	s.cacheChart(ctx, natalCacheKey(userID), chart, s.Config.ChartCacheTTL)
	return chart, nil
}

func (s *Service) storeChart(ctx context.Context, userID uuid.UUID, input domain.NatalChartInput, chart *domain.NatalChartData, source domain.ChartSource) error {
	if !source.IsValid() {
		source = domain.ChartSourceAPI
	}
	now := s.now()

	err := s.UserRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		user, err := s.UserRepo.GetByIDTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		if err := s.HistoryRepo.CreateTx(ctx, tx, &domain.ChartHistory{
			ID:        uuid.New(),
			UserID:    userID,
			Chart:     *chart,
			Source:    source,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to archive chart: %w", err)
		}

		birthDate := input.BirthDate
		birthTime := input.BirthTime
		place := input.Birthplace
		user.BirthDate = &birthDate
		user.BirthTime = &birthTime
		user.BirthPlace = &place
		user.NatalChart = chart
		user.NatalChartCalculatedAt = &now
		user.UpdatedAt = now

		return s.UserRepo.UpdateBirthDataTx(ctx, tx, user)
	})
	if err != nil {
		if isBusiness(err) {
			return s.business(err, "natal chart not saved", "user_id", userID)
		}
		return fmt.Errorf("failed to save natal chart: %w", err)
	}

	s.Log.Info("natal chart saved", "user_id", userID, "source", source, "sun", chart.Sun.Sign)

	s.cacheChart(ctx, natalCacheKey(userID), chart, s.Config.ChartCacheTTL)
	s.archiveChart(ctx, userID, chart, now)
	s.publishChart(ctx, userID, source, chart)
	return nil
}

func (s *Service) archiveChart(ctx context.Context, userID uuid.UUID, chart *domain.NatalChartData, at time.Time) {
	if s.Storage == nil {
		return
	}
	data, err := json.Marshal(chart)
	if err != nil {
		s.Log.Error("failed to marshal chart for archive", "user_id", userID, "error", err)
		return
	}
	path := chartArchivePath(userID, at)
	if err := s.Storage.PutFile(ctx, path, data, "application/json"); err != nil {
		s.Log.Error("failed to archive chart", "user_id", userID, "path", path, "error", err)
	}
}

func (s *Service) publishChart(ctx context.Context, userID uuid.UUID, source domain.ChartSource, chart *domain.NatalChartData) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishChartCalculated(ctx, userID, source, chart); err != nil {
		s.Log.Error("failed to publish chart event", "user_id", userID, "error", err)
	}
}
