package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	kafkaPorts "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/kafka"
	"github.com/google/uuid"
)

// ChartRecalculator часть astro UseCase, нужная обработчику
type ChartRecalculator interface {
	RecalculateChart(ctx context.Context, userID uuid.UUID, source domain.ChartSource) (*domain.NatalChartData, error)
}

// ChartRequestHandler пересчитывает карту по запросу из топика chart_requests
type ChartRequestHandler struct {
	Charts ChartRecalculator
	Log    *slog.Logger
}

func NewChartRequestHandler(charts ChartRecalculator, log *slog.Logger) kafkaPorts.MessageHandler {
	return &ChartRequestHandler{
		Charts: charts,
		Log:    log,
	}
}

// ChartRequestMessage тело запроса на пересчёт
type ChartRequestMessage struct {
	UserID string `json:"user_id"`
}

// HandleMessage user_id берётся из value, при его отсутствии из ключа сообщения.
// Невалидные сообщения возвращаются как BusinessError: повторять их бессмысленно.
func (h *ChartRequestHandler) HandleMessage(ctx context.Context, key string, value []byte, headers map[string]string) error {
	var req ChartRequestMessage
	if len(value) > 0 {
		if err := json.Unmarshal(value, &req); err != nil {
			h.Log.Warn("invalid chart request", "error", err, "key", key)
			return domain.WrapBusinessError(fmt.Errorf("failed to unmarshal chart request: %w", err))
		}
	}
	if req.UserID == "" {
		req.UserID = key
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.Log.Warn("invalid user_id in chart request", "user_id", req.UserID, "key", key)
		return domain.WrapBusinessError(fmt.Errorf("invalid user_id %q: %w", req.UserID, domain.ErrInvalidInput))
	}

	h.Log.Debug("processing chart request",
		"user_id", userID,
		"requested_by", headers["source"],
	)

	if _, err := h.Charts.RecalculateChart(ctx, userID, domain.ChartSourceKafka); err != nil {
		return fmt.Errorf("failed to recalculate chart: %w", err)
	}
	return nil
}
