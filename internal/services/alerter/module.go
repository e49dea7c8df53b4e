package alerter

import (
	"context"
	"log/slog"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/alerter"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/service"
)

// Service реализует IAlerterService. Без клиента алерты только пишутся в лог.
type Service struct {
	client *alerter.Client
	log    *slog.Logger
}

func New(client *alerter.Client, log *slog.Logger) service.IAlerterService {
	return &Service{
		client: client,
		log:    log,
	}
}

// SendAlert отправляет алерт
func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.client == nil {
		s.log.Warn("alert (alerter disabled)", "message", message)
		return nil
	}
	return s.client.SendAlert(ctx, message)
}
