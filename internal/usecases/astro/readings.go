package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/usecases/astro/texts"
	"github.com/google/uuid"
)

// GetHoroscope гороскоп на день по карте пользователя
func (s *Service) GetHoroscope(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.Horoscope, error) {
	chart, err := s.GetChart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if day.IsZero() {
		day = s.now()
	}

	return &domain.Horoscope{
		Date: day.Format(domain.BirthDateLayout),
		Sign: chart.Sun.Sign,
		Text: texts.Horoscope(chart, day),
	}, nil
}

// GetWealthMap только для премиум
func (s *Service) GetWealthMap(ctx context.Context, userID uuid.UUID) (*domain.WealthMap, error) {
	// без записи настроек репозиторий отдаёт значения по умолчанию, поэтому сначала пользователь
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	prefs, err := s.PreferencesRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if !prefs.IsPremium {
		return nil, s.business(domain.ErrPremiumRequired, "wealth map requested without premium", "user_id", userID)
	}

	chart, err := s.GetChart(ctx, userID)
	if err != nil {
		return nil, err
	}

	wealth := texts.WealthMap(chart)
	return &wealth, nil
}

// CompareCharts сравнивает карту пользователя с картой по введённым данным.
// Бесплатным пользователям доступно FreeComparisonsLimit сравнений.
func (s *Service) CompareCharts(ctx context.Context, userID uuid.UUID, other domain.NatalChartInput) (*domain.Compatibility, error) {
	chart, err := s.GetChart(ctx, userID)
	if err != nil {
		return nil, err
	}

	otherChart, err := s.Calculator.Calculate(other)
	if err != nil {
		return nil, s.business(err, "comparison input rejected", "user_id", userID)
	}

	count, err := s.PreferencesRepo.IncrementComparisons(ctx, userID, s.Config.FreeComparisonsLimit)
	if err != nil {
		if isBusiness(err) {
			return nil, s.business(err, "comparison limit reached", "user_id", userID, "limit", s.Config.FreeComparisonsLimit)
		}
		return nil, fmt.Errorf("failed to count comparison: %w", err)
	}

	result := texts.Compatibility(chart, otherChart)
	s.Log.Info("charts compared", "user_id", userID, "total", result.Total, "comparisons", count)
	return &result, nil
}
