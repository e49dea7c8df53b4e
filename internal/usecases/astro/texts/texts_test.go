package texts

import (
	"strings"
	"testing"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartWith(sun, moon, asc domain.Sign) *domain.NatalChartData {
	c := &domain.NatalChartData{}
	c.Sun = domain.PlanetaryPosition{Name: domain.BodySun, Sign: sun}
	c.Moon = domain.PlanetaryPosition{Name: domain.BodyMoon, Sign: moon}
	c.Venus = domain.PlanetaryPosition{Name: domain.BodyVenus, Sign: sun}
	c.Jupiter = domain.PlanetaryPosition{Name: domain.BodyJupiter, Sign: moon}
	c.Ascendant = domain.PlanetaryPosition{Name: domain.BodyAscendant, Sign: asc, House: 1}
	for i := range c.Houses {
		c.Houses[i] = domain.HousePosition{Number: i + 1, Sign: domain.SignFromIndex(asc.Index() + i)}
	}
	return c
}

func TestHoroscope_AllSigns(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	for _, s := range domain.AllSigns() {
		text := Horoscope(chartWith(s, domain.SignFromIndex(s.Index()%2), s), day)
		assert.Contains(t, text, s.String())
		assert.NotContains(t, text, "%!")
		assert.True(t, strings.HasSuffix(text, "."), text)
	}
}

func TestHoroscope_RotatesByDay(t *testing.T) {
	chart := chartWith(domain.SignLeo, domain.SignCancer, domain.SignVirgo)
	day := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	for i := 0; i < len(horoscopeTemplates); i++ {
		seen[Horoscope(chart, day.AddDate(0, 0, i))] = struct{}{}
	}
	assert.Len(t, seen, len(horoscopeTemplates))

	// тот же день даёт тот же текст
	assert.Equal(t, Horoscope(chart, day), Horoscope(chart, day))
}

func TestElementAdvice(t *testing.T) {
	for _, e := range domain.AllElements() {
		assert.NotEmpty(t, elementAdvice(e), string(e))
	}
	assert.Empty(t, elementAdvice("éter"))
}

func TestWealthMap(t *testing.T) {
	chart := chartWith(domain.SignTaurus, domain.SignSagittarius, domain.SignAries)

	m := WealthMap(chart)
	assert.Equal(t, domain.SignTaurus, m.Wealth.Sign) // 2-й дом от Овна
	assert.Equal(t, domain.SignCapricorn, m.Career.Sign)
	assert.Equal(t, domain.SignTaurus, m.Love.Sign)
	assert.Equal(t, domain.SignSagittarius, m.Luck.Sign)

	for _, s := range []domain.WealthMapSection{m.Wealth, m.Career, m.Love, m.Luck} {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Text)
	}
}

func TestCompatibility(t *testing.T) {
	tests := []struct {
		name      string
		a, b      *domain.NatalChartData
		sun, moon int
	}{
		{
			name: "same signs",
			a:    chartWith(domain.SignLeo, domain.SignPisces, domain.SignAries),
			b:    chartWith(domain.SignLeo, domain.SignPisces, domain.SignLibra),
			sun:  scoreSameSign, moon: scoreSameSign,
		},
		{
			name: "same element",
			a:    chartWith(domain.SignAries, domain.SignCancer, domain.SignAries),
			b:    chartWith(domain.SignLeo, domain.SignScorpio, domain.SignAries),
			sun:  scoreSameElement, moon: scoreSameElement,
		},
		{
			name: "complementary",
			a:    chartWith(domain.SignAries, domain.SignTaurus, domain.SignAries),
			b:    chartWith(domain.SignGemini, domain.SignPisces, domain.SignAries),
			sun:  scoreComplementary, moon: scoreComplementary,
		},
		{
			name: "different",
			a:    chartWith(domain.SignAries, domain.SignCancer, domain.SignAries),
			b:    chartWith(domain.SignCancer, domain.SignLibra, domain.SignAries),
			sun:  scoreDifferent, moon: scoreDifferent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compatibility(tt.a, tt.b)
			assert.Equal(t, tt.sun, res.SunScore)
			assert.Equal(t, tt.moon, res.MoonScore)
			assert.Equal(t, (tt.sun*60+tt.moon*40)/100, res.Total)
			assert.NotEmpty(t, res.Summary)

			// симметрично
			require.Equal(t, res, Compatibility(tt.b, tt.a))
		})
	}
}
