package common

import (
	"fmt"
	"strings"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/services/locations"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// customLocationID id для места, введённого координатами
const customLocationID = "custom"

// BirthplaceDTO место рождения вне справочника
type BirthplaceDTO struct {
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// BirthDataRequest тело запроса с данными рождения.
// Место задаётся либо location_id из справочника, либо birthplace.
type BirthDataRequest struct {
	BirthDate  string         `json:"birth_date"`
	BirthTime  string         `json:"birth_time"`
	LocationID string         `json:"location_id,omitempty"`
	Birthplace *BirthplaceDTO `json:"birthplace,omitempty"`
}

// ToInput собирает вход калькулятора, ошибки оборачивают domain.ErrInvalidInput
func (r BirthDataRequest) ToInput() (domain.NatalChartInput, error) {
	date, err := domain.ParseBirthDate(r.BirthDate)
	if err != nil {
		return domain.NatalChartInput{}, err
	}

	place, err := r.place()
	if err != nil {
		return domain.NatalChartInput{}, err
	}

	return domain.NatalChartInput{
		BirthDate:  date,
		BirthTime:  strings.TrimSpace(r.BirthTime),
		Birthplace: place,
	}, nil
}

func (r BirthDataRequest) place() (domain.Location, error) {
	if id := strings.TrimSpace(r.LocationID); id != "" {
		loc, err := locations.ByID(id)
		if err != nil {
			return domain.Location{}, fmt.Errorf("unknown location %q: %w", id, domain.ErrInvalidInput)
		}
		return loc, nil
	}

	if r.Birthplace == nil {
		return domain.Location{}, fmt.Errorf("location_id or birthplace is required: %w", domain.ErrInvalidInput)
	}
	if r.Birthplace.Latitude == nil || r.Birthplace.Longitude == nil {
		return domain.Location{}, fmt.Errorf("birthplace coordinates are required: %w", domain.ErrInvalidInput)
	}

	name := strings.TrimSpace(r.Birthplace.Name)
	if name == "" {
		name = fmt.Sprintf("%.4f, %.4f", *r.Birthplace.Latitude, *r.Birthplace.Longitude)
	}
	return domain.Location{
		ID:        customLocationID,
		Name:      name,
		Country:   strings.TrimSpace(r.Birthplace.Country),
		Latitude:  *r.Birthplace.Latitude,
		Longitude: *r.Birthplace.Longitude,
	}, nil
}

// BindJSON разбирает тело, битый JSON это domain.ErrInvalidInput
func BindJSON(ctx *gin.Context, dst any) error {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("malformed request body: %v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

// UserID параметр :id
func UserID(ctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", ctx.Param("id"), domain.ErrInvalidInput)
	}
	return id, nil
}
