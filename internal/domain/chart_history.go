package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChartSource откуда пришёл запрос на расчёт
type ChartSource string

const (
	ChartSourceAPI   ChartSource = "api"
	ChartSourceKafka ChartSource = "kafka"
)

func (s ChartSource) IsValid() bool {
	switch s {
	case ChartSourceAPI, ChartSourceKafka:
		return true
	default:
		return false
	}
}

// ChartHistory архивная запись каждого расчёта карты
type ChartHistory struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id"`
	Chart     NatalChartData `json:"chart" db:"chart"` // JSONB
	Source    ChartSource    `json:"source" db:"source"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// ChartHistoryPage последние расчёты и общее число записей
type ChartHistoryPage struct {
	Total int            `json:"total"`
	Items []ChartHistory `json:"items"`
}
