package natal

import (
	"fmt"
	"math"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

// Формулы упрощённые и воспроизводятся как есть: тексты в UI завязаны на их результат,
// а не на астрономическую точность.

const (
	siderealBaseDegrees   = 280.46061837
	siderealDegreesPerDay = 360.98564736629
	degreesPerHour        = 15.0
	hoursPerDay           = 24.0
	millisPerDay          = 86400000.0
)

// J2000 эпоха J2000.0
var J2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// ConvertToUTC ставит локальное время "HH:MM" на календарную дату и сдвигает на longitudeHours.
// Часовые пояса и летнее время не учитываются: сдвиг считается только по долготе.
func ConvertToUTC(date time.Time, timeStr string, longitudeHours float64) (time.Time, error) {
	hour, minute, err := ParseBirthTime(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
	shift := time.Duration(longitudeHours * float64(time.Hour))

	return local.Add(-shift), nil
}

// SiderealTime гринвичское звёздное время в часах [0, 24) по линейной формуле от J2000
func SiderealTime(utc time.Time) float64 {
	days := float64(utc.UnixMilli()-J2000.UnixMilli()) / millisPerDay

	degrees := math.Mod(siderealBaseDegrees+siderealDegreesPerDay*days, 360)
	if degrees < 0 {
		degrees += 360
	}

	return normalizeHours(degrees / degreesPerHour)
}

// AdjustSiderealTimeByLongitude местное звёздное время: добавляет longitude/15 часов и нормализует в [0, 24)
func AdjustSiderealTimeByLongitude(siderealHours, longitude float64) float64 {
	return normalizeHours(siderealHours + longitude/degreesPerHour)
}

// Ascendant грубая оценка асцендента: RAMC = t·15, плюс широта/2, шаг 30°.
// Возвращает знак и градус внутри знака.
func Ascendant(siderealHours, latitude float64) (domain.Sign, int) {
	angle := normalizeDegrees(siderealHours*degreesPerHour + latitude/2)

	signIndex := int(math.Floor(angle / domain.DegreesPerSign))
	degree := int(math.Floor(angle - float64(signIndex*domain.DegreesPerSign)))
	if degree >= domain.DegreesPerSign {
		degree = domain.DegreesPerSign - 1
	}

	return domain.SignFromIndex(signIndex), degree
}

func normalizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, hoursPerDay)
	if h < 0 {
		h += hoursPerDay
	}
	// -1e-17 + 24 округляется до 24
	if h >= hoursPerDay {
		h = 0
	}
	return h
}

func normalizeDegrees(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// ParseBirthTime разбирает "HH:MM" в диапазоне 00:00..23:59
func ParseBirthTime(timeStr string) (hour, minute int, err error) {
	if !birthTimePattern.MatchString(timeStr) {
		return 0, 0, fmt.Errorf("birth time %q must match HH:MM: %w", timeStr, domain.ErrInvalidInput)
	}

	hour = int(timeStr[0]-'0')*10 + int(timeStr[1]-'0')
	minute = int(timeStr[3]-'0')*10 + int(timeStr[4]-'0')

	return hour, minute, nil
}
