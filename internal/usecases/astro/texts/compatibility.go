package texts

import "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"

const (
	scoreSameSign      = 95
	scoreSameElement   = 85
	scoreComplementary = 70
	scoreDifferent     = 45
)

// Compatibility совместимость двух карт по стихиям Солнца (60%) и Луны (40%)
func Compatibility(a, b *domain.NatalChartData) domain.Compatibility {
	sun := signScore(a.Sun.Sign, b.Sun.Sign)
	moon := signScore(a.Moon.Sign, b.Moon.Sign)
	total := (sun*60 + moon*40) / 100

	return domain.Compatibility{
		SunScore:  sun,
		MoonScore: moon,
		Total:     total,
		Summary:   compatibilitySummary(total),
	}
}

func signScore(a, b domain.Sign) int {
	switch {
	case a == b:
		return scoreSameSign
	case a.Element() == b.Element():
		return scoreSameElement
	case complementary(a.Element(), b.Element()):
		return scoreComplementary
	default:
		return scoreDifferent
	}
}

// огонь с воздухом, земля с водой
func complementary(a, b domain.Element) bool {
	pair := func(x, y domain.Element) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	return pair(domain.ElementFire, domain.ElementAir) || pair(domain.ElementEarth, domain.ElementWater)
}

func compatibilitySummary(total int) string {
	switch {
	case total >= 85:
		return "Conexión excepcional: vuestros astros hablan el mismo idioma."
	case total >= 70:
		return "Muy buena afinidad: os complementáis con naturalidad."
	case total >= 55:
		return "Afinidad moderada: la relación crece con diálogo y paciencia."
	default:
		return "Energías distintas: el reto es aprender el uno del otro."
	}
}
