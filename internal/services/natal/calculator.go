package natal

import (
	"fmt"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

// Calculator собирает натальную карту. Без состояния, безопасен для конкурентного использования.
type Calculator struct {
	degrees DegreeSource
}

// NewCalculator создаёт калькулятор, nil источник заменяется на SeededDegrees
func NewCalculator(degrees DegreeSource) *Calculator {
	if degrees == nil {
		degrees = SeededDegrees{}
	}
	return &Calculator{degrees: degrees}
}

// Calculate считает карту целиком: UTC, звёздное время, асцендент, куспиды, тела, дома
func (c *Calculator) Calculate(input domain.NatalChartInput) (*domain.NatalChartData, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	place := input.Birthplace

	// 1. локальное время -> UTC по долготе
	utc, err := ConvertToUTC(input.BirthDate, input.BirthTime, place.LongitudeHours())
	if err != nil {
		return nil, fmt.Errorf("failed to convert birth time: %w", err)
	}

	// 2. звёздное время и асцендент
	gst := SiderealTime(utc)
	lst := AdjustSiderealTimeByLongitude(gst, place.Longitude)
	ascSign, ascDegree := Ascendant(lst, place.Latitude)

	// 3. куспиды домов
	houses := HouseCusps(ascSign, ascDegree)

	chart := &domain.NatalChartData{
		Ascendant: domain.PlanetaryPosition{
			Name:   domain.BodyAscendant,
			Sign:   ascSign,
			Degree: ascDegree,
			Icon:   domain.BodyAscendant.Icon(),
			House:  1,
		},
		Houses:     houses,
		BirthDate:  input.BirthDate.Format(domain.BirthDateLayout),
		BirthTime:  input.BirthTime,
		BirthPlace: place,
	}

	// 4-5. тела и их дома
	key := chartKey(input)
	for _, body := range domain.Planets() {
		pos := planetPosition(body, utc, c.degrees.Degree(key, body))
		pos.House = AssignHouse(pos.AbsoluteDegree(), houses)
		chart.SetPosition(pos)
	}

	return chart, nil
}
