package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Location именованное место из встроенного справочника
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`  // градусы, север положительный
	Longitude float64 `json:"longitude"` // градусы, восток положительный
}

// LongitudeHours долгота в часах (15° = 1 час)
func (l Location) LongitudeHours() float64 {
	return l.Longitude / 15
}

// Validate проверяет диапазоны координат
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]: %w", l.Latitude, ErrInvalidInput)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]: %w", l.Longitude, ErrInvalidInput)
	}
	return nil
}

// Scan реализует sql.Scanner для JSONB колонки
func (l *Location) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*l = Location{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported location type %T", value)
	}

	if len(bytes) == 0 {
		*l = Location{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value реализует driver.Valuer
func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}
