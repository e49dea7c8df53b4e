package astro

import (
	"context"
	"fmt"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

// GetChartExportURL временная ссылка на последнюю архивную карту
func (s *Service) GetChartExportURL(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.Storage == nil {
		return "", s.business(domain.ErrStorageDisabled, "chart export requested without storage", "user_id", userID)
	}

	files, err := s.Storage.ListFiles(ctx, fmt.Sprintf("%s%s/", chartArchivePrefix, userID))
	if err != nil {
		return "", fmt.Errorf("failed to list archived charts: %w", err)
	}
	if len(files) == 0 {
		return "", s.business(domain.ErrChartNotFound, "no archived charts", "user_id", userID)
	}

	// ListFiles отдаёт пути по возрастанию, имя файла unix-время
	latest := files[len(files)-1]
	url, err := s.Storage.GetPresignedURL(ctx, latest, s.Config.ExportURLTTL)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", latest, err)
	}
	return url, nil
}
