package natal

import (
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

// Положения тел не считаются по орбитам: каждое тело берёт солнечный знак
// даты UTC, сдвинутой на фиксированное число дней.
var bodyDayOffsets = [...]int{
	domain.BodySun:     0,
	domain.BodyMoon:    2,
	domain.BodyMercury: -1,
	domain.BodyVenus:   3,
	domain.BodyMars:    -2,
	domain.BodyJupiter: 4,
	domain.BodySaturn:  -3,
	domain.BodyUranus:  6,
	domain.BodyNeptune: -5,
	domain.BodyPluto:   7,
}

var _ = [1]struct{}{}[len(bodyDayOffsets)-(domain.BodyCount-1)]

// DayOffset сдвиг в днях относительно даты Солнца
func DayOffset(body domain.Body) int {
	if body == domain.BodyAscendant || !body.IsValid() {
		return 0
	}
	return bodyDayOffsets[body]
}

// BodySign знак тела для момента UTC
func BodySign(body domain.Body, utc time.Time) domain.Sign {
	return domain.SignForDate(utc.AddDate(0, 0, DayOffset(body)))
}

// planetPosition позиция тела без дома, дом назначается после расчёта куспидов
func planetPosition(body domain.Body, utc time.Time, degree int) domain.PlanetaryPosition {
	return domain.PlanetaryPosition{
		Name:   body,
		Sign:   BodySign(body, utc),
		Degree: degree,
		Icon:   body.Icon(),
	}
}
