package astro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/locations"
)

const positionsCacheKey = "astro:positions:current"

// UpdateCachedPositions считает небо на момент at для опорного места и кладёт в кэш
func (s *Service) UpdateCachedPositions(ctx context.Context, at time.Time) error {
	chart, err := s.skyChart(at)
	if err != nil {
		return err
	}

	if s.Cache == nil {
		s.Log.Warn("cache is not configured, positions are not stored")
		return nil
	}

	data, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal positions: %w", err)
	}
	if err := s.Cache.Set(ctx, positionsCacheKey, string(data), s.Config.PositionsCacheTTL); err != nil {
		return fmt.Errorf("failed to cache positions: %w", err)
	}

	s.Log.Info("current positions updated", "at", at.Format(time.RFC3339), "sun", chart.Sun.Sign, "moon", chart.Moon.Sign)
	return nil
}

// GetCurrentPositions значение из кэша или расчёт на текущий момент
func (s *Service) GetCurrentPositions(ctx context.Context) (*domain.NatalChartData, error) {
	if chart, ok := s.cachedChart(ctx, positionsCacheKey); ok {
		return chart, nil
	}
	return s.skyChart(s.now())
}

// skyChart карта "на сейчас": местное среднее время опорного места
func (s *Service) skyChart(at time.Time) (*domain.NatalChartData, error) {
	place, err := locations.ByID(s.Config.ReferenceLocationID)
	if err != nil {
		return nil, fmt.Errorf("reference location %q: %w", s.Config.ReferenceLocationID, err)
	}

	local := at.UTC().Add(time.Duration(place.LongitudeHours() * float64(time.Hour)))
	chart, err := s.Calculator.Calculate(domain.NatalChartInput{
		BirthDate:  time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC),
		BirthTime:  local.Format("15:04"),
		Birthplace: place,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate sky positions: %w", err)
	}
	return chart, nil
}

func (s *Service) cachedChart(ctx context.Context, key string) (*domain.NatalChartData, bool) {
	if s.Cache == nil {
		return nil, false
	}

	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.Log.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var chart domain.NatalChartData
	if err := json.Unmarshal([]byte(raw), &chart); err != nil {
		s.Log.Warn("cached chart is corrupted", "key", key, "error", err)
		_ = s.Cache.Delete(ctx, key)
		return nil, false
	}
	return &chart, true
}

func (s *Service) cacheChart(ctx context.Context, key string, chart *domain.NatalChartData, ttl time.Duration) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(chart)
	if err != nil {
		s.Log.Warn("failed to marshal chart for cache", "key", key, "error", err)
		return
	}
	if err := s.Cache.Set(ctx, key, string(data), ttl); err != nil {
		s.Log.Warn("cache write failed", "key", key, "error", err)
	}
}
