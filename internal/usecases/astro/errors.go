package astro

import (
	"errors"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

var businessErrors = []error{
	domain.ErrInvalidInput,
	domain.ErrUserNotFound,
	domain.ErrEmailTaken,
	domain.ErrChartNotFound,
	domain.ErrBirthDataNotSet,
	domain.ErrPremiumRequired,
	domain.ErrComparisonLimit,
	domain.ErrStorageDisabled,
	domain.ErrLocationNotFound,
}

// isBusiness ошибка ожидаема и отдаётся клиенту как есть
func isBusiness(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
