package usecase

import (
	"context"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

// IAstroService операции над профилем и картой, используются HTTP, Kafka и джобами
type IAstroService interface {
	CreateUser(ctx context.Context, email, displayName string) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	CalculateChart(ctx context.Context, input domain.NatalChartInput) (*domain.NatalChartData, error)
	SaveBirthData(ctx context.Context, userID uuid.UUID, input domain.NatalChartInput, source domain.ChartSource) (*domain.NatalChartData, error)
	RecalculateChart(ctx context.Context, userID uuid.UUID, source domain.ChartSource) (*domain.NatalChartData, error)
	GetChart(ctx context.Context, userID uuid.UUID) (*domain.NatalChartData, error)
	GetChartExportURL(ctx context.Context, userID uuid.UUID) (string, error)
	GetChartHistory(ctx context.Context, userID uuid.UUID, limit int) (*domain.ChartHistoryPage, error)

	GetHoroscope(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.Horoscope, error)
	GetWealthMap(ctx context.Context, userID uuid.UUID) (*domain.WealthMap, error)
	CompareCharts(ctx context.Context, userID uuid.UUID, other domain.NatalChartInput) (*domain.Compatibility, error)

	GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, patch domain.PreferencesPatch) (*domain.Preferences, error)

	UpdateCachedPositions(ctx context.Context, at time.Time) error
	GetCurrentPositions(ctx context.Context) (*domain.NatalChartData, error)
}
