package domain

import (
	"time"

	"github.com/google/uuid"
)

// User профиль пользователя с данными рождения и рассчитанной картой
type User struct {
	ID                     uuid.UUID       `json:"id" db:"id"`
	Email                  string          `json:"email" db:"email"`
	DisplayName            string          `json:"display_name" db:"display_name"`
	BirthDate              *time.Time      `json:"birth_date,omitempty" db:"birth_date"`
	BirthTime              *string         `json:"birth_time,omitempty" db:"birth_time"`
	BirthPlace             *Location       `json:"birth_place,omitempty" db:"birth_place"` // JSONB
	NatalChart             *NatalChartData `json:"natal_chart,omitempty" db:"natal_chart"` // JSONB
	NatalChartCalculatedAt *time.Time      `json:"natal_chart_calculated_at,omitempty" db:"natal_chart_calculated_at"`
	CreatedAt              time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at" db:"updated_at"`
}

// HasBirthData проверяет, что все данные рождения заполнены
func (u *User) HasBirthData() bool {
	return u.BirthDate != nil && u.BirthTime != nil && u.BirthPlace != nil
}

// BirthInput собирает вход для расчёта карты из сохранённых данных
func (u *User) BirthInput() (NatalChartInput, error) {
	if !u.HasBirthData() {
		return NatalChartInput{}, ErrBirthDataNotSet
	}
	return NatalChartInput{
		BirthDate:  *u.BirthDate,
		BirthTime:  *u.BirthTime,
		Birthplace: *u.BirthPlace,
	}, nil
}
