package kafka

import (
	"context"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

// IChartEventProducer публикует события о расчёте карт
type IChartEventProducer interface {
	// PublishChartCalculated key = user id, value = карта в JSON
	PublishChartCalculated(ctx context.Context, userID uuid.UUID, source domain.ChartSource, chart *domain.NatalChartData) error
	Close() error
}
