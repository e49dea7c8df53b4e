package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// HouseCount количество домов в карте
const HouseCount = 12

// BirthDateLayout формат даты рождения в API и в карте
const BirthDateLayout = "2006-01-02"

// ParseBirthDate разбирает дату рождения в формате YYYY-MM-DD
func ParseBirthDate(value string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth date %q: %w", value, ErrInvalidInput)
	}
	return t, nil
}

// NatalChartInput входные данные для расчёта карты, сам по себе не сохраняется
type NatalChartInput struct {
	BirthDate  time.Time // календарная дата, время суток игнорируется
	BirthTime  string    // локальное время "HH:MM"
	Birthplace Location
}

// PlanetaryPosition положение тела в карте
type PlanetaryPosition struct {
	Name   Body   `json:"name"`
	Sign   Sign   `json:"sign"`
	Degree int    `json:"degree"` // 0..29 внутри знака
	Icon   string `json:"icon"`
	House  int    `json:"house"` // 1..12
}

// AbsoluteDegree абсолютное положение на эклиптике 0..359
func (p PlanetaryPosition) AbsoluteDegree() int {
	return p.Sign.Index()*DegreesPerSign + p.Degree
}

// HousePosition куспид дома
type HousePosition struct {
	Number int  `json:"number"` // 1..12
	Sign   Sign `json:"sign"`
	Degree int  `json:"degree"`
}

// AbsoluteDegree абсолютное положение куспида 0..359
func (h HousePosition) AbsoluteDegree() int {
	return h.Sign.Index()*DegreesPerSign + h.Degree
}

// NatalChartData рассчитанная натальная карта.
// После расчёта не мутируется, при пересчёте перезаписывается целиком.
type NatalChartData struct {
	Sun       PlanetaryPosition `json:"sun"`
	Moon      PlanetaryPosition `json:"moon"`
	Mercury   PlanetaryPosition `json:"mercury"`
	Venus     PlanetaryPosition `json:"venus"`
	Mars      PlanetaryPosition `json:"mars"`
	Jupiter   PlanetaryPosition `json:"jupiter"`
	Saturn    PlanetaryPosition `json:"saturn"`
	Uranus    PlanetaryPosition `json:"uranus"`
	Neptune   PlanetaryPosition `json:"neptune"`
	Pluto     PlanetaryPosition `json:"pluto"`
	Ascendant PlanetaryPosition `json:"ascendant"`

	Houses [HouseCount]HousePosition `json:"houses"`

	BirthDate  string   `json:"birth_date"` // YYYY-MM-DD
	BirthTime  string   `json:"birth_time"` // HH:MM
	BirthPlace Location `json:"birth_place"`
}

// Position возвращает позицию по телу
func (c *NatalChartData) Position(b Body) PlanetaryPosition {
	switch b {
	case BodySun:
		return c.Sun
	case BodyMoon:
		return c.Moon
	case BodyMercury:
		return c.Mercury
	case BodyVenus:
		return c.Venus
	case BodyMars:
		return c.Mars
	case BodyJupiter:
		return c.Jupiter
	case BodySaturn:
		return c.Saturn
	case BodyUranus:
		return c.Uranus
	case BodyNeptune:
		return c.Neptune
	case BodyPluto:
		return c.Pluto
	case BodyAscendant:
		return c.Ascendant
	default:
		panic(fmt.Sprintf("unknown body %d", int(b)))
	}
}

// SetPosition записывает позицию в поле соответствующего тела
func (c *NatalChartData) SetPosition(p PlanetaryPosition) {
	switch p.Name {
	case BodySun:
		c.Sun = p
	case BodyMoon:
		c.Moon = p
	case BodyMercury:
		c.Mercury = p
	case BodyVenus:
		c.Venus = p
	case BodyMars:
		c.Mars = p
	case BodyJupiter:
		c.Jupiter = p
	case BodySaturn:
		c.Saturn = p
	case BodyUranus:
		c.Uranus = p
	case BodyNeptune:
		c.Neptune = p
	case BodyPluto:
		c.Pluto = p
	case BodyAscendant:
		c.Ascendant = p
	default:
		panic(fmt.Sprintf("unknown body %d", int(p.Name)))
	}
}

// Positions возвращает все одиннадцать позиций, Асцендент последним
func (c *NatalChartData) Positions() []PlanetaryPosition {
	positions := make([]PlanetaryPosition, 0, BodyCount)
	for _, b := range Planets() {
		positions = append(positions, c.Position(b))
	}
	return append(positions, c.Ascendant)
}

// House возвращает куспид дома по номеру 1..12
func (c *NatalChartData) House(number int) (HousePosition, error) {
	if number < 1 || number > HouseCount {
		return HousePosition{}, fmt.Errorf("house %d out of range: %w", number, ErrInvalidInput)
	}
	return c.Houses[number-1], nil
}

// Scan реализует sql.Scanner для JSONB колонки natal_chart
func (c *NatalChartData) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported natal chart type %T", value)
	}
	return json.Unmarshal(bytes, c)
}

// Value реализует driver.Valuer
func (c NatalChartData) Value() (driver.Value, error) {
	return json.Marshal(c)
}
