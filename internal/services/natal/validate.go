package natal

import (
	"fmt"
	"regexp"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

var birthTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateInput проверяет вход расчёта карты
func ValidateInput(input domain.NatalChartInput) error {
	if input.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required: %w", domain.ErrInvalidInput)
	}

	if _, _, err := ParseBirthTime(input.BirthTime); err != nil {
		return err
	}

	if err := input.Birthplace.Validate(); err != nil {
		return err
	}

	return nil
}
