package natal

import (
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

const houseStepDegrees = 360 / domain.HouseCount

// HouseCusps равнодомная система от асцендента: куспид i = ASC + (i-1)·30°.
// Дом 1 всегда совпадает с асцендентом.
func HouseCusps(ascSign domain.Sign, ascDegree int) [domain.HouseCount]domain.HousePosition {
	var houses [domain.HouseCount]domain.HousePosition

	start := ascSign.Index()*domain.DegreesPerSign + ascDegree
	for i := range houses {
		abs := (start + i*houseStepDegrees) % 360
		houses[i] = domain.HousePosition{
			Number: i + 1,
			Sign:   domain.SignFromIndex(abs / domain.DegreesPerSign),
			Degree: abs % domain.DegreesPerSign,
		}
	}

	return houses
}

// AssignHouse находит дом, в интервал куспидов которого попадает абсолютный градус,
// с переходом через 360°
func AssignHouse(absoluteDegree int, cusps [domain.HouseCount]domain.HousePosition) int {
	abs := ((absoluteDegree % 360) + 360) % 360

	for i := range cusps {
		start := cusps[i].AbsoluteDegree()
		end := cusps[(i+1)%domain.HouseCount].AbsoluteDegree()

		if start <= end {
			if abs >= start && abs < end {
				return cusps[i].Number
			}
			continue
		}

		// интервал пересекает 0°
		if abs >= start || abs < end {
			return cusps[i].Number
		}
	}

	return 1
}
