package natal

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var madrid = domain.Location{ID: "madrid", Name: "Madrid", Country: "España", Latitude: 40.4168, Longitude: -3.7038}

func madridInput() domain.NatalChartInput {
	return domain.NatalChartInput{
		BirthDate:  time.Date(1990, time.July, 15, 0, 0, 0, 0, time.UTC),
		BirthTime:  "14:30",
		Birthplace: madrid,
	}
}

func TestCalculate_Madrid1990(t *testing.T) {
	chart, err := NewCalculator(nil).Calculate(madridInput())
	require.NoError(t, err)

	assert.Equal(t, domain.SignForDate(madridInput().BirthDate), chart.Sun.Sign)
	assert.Equal(t, domain.SignCancer, chart.Sun.Sign)
	assert.Equal(t, "Cáncer", chart.Sun.Sign.String())
	assert.Len(t, chart.Houses, 12)
	assert.Equal(t, 1, chart.Ascendant.House)
	assert.Equal(t, domain.BodyAscendant, chart.Ascendant.Name)

	assert.Equal(t, "1990-07-15", chart.BirthDate)
	assert.Equal(t, "14:30", chart.BirthTime)
	assert.Equal(t, madrid, chart.BirthPlace)
}

func TestCalculate_BodyOffsets(t *testing.T) {
	// 20 июня: Солнце в Близнецах, Луна (+2 дня) уже в Раке, Марс (-2) в Близнецах
	input := madridInput()
	input.BirthDate = time.Date(1990, time.June, 20, 0, 0, 0, 0, time.UTC)
	input.BirthTime = "12:00"

	chart, err := NewCalculator(nil).Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, domain.SignGemini, chart.Sun.Sign)
	assert.Equal(t, domain.SignCancer, chart.Moon.Sign)
	assert.Equal(t, domain.SignCancer, chart.Venus.Sign)
	assert.Equal(t, domain.SignGemini, chart.Mercury.Sign)
	assert.Equal(t, domain.SignGemini, chart.Mars.Sign)
}

func TestCalculate_Invariants(t *testing.T) {
	calc := NewCalculator(nil)
	places := []domain.Location{
		madrid,
		{Name: "Sídney", Latitude: -33.8688, Longitude: 151.2093},
		{Name: "Anchorage", Latitude: 61.2181, Longitude: -149.9003},
		{Name: "Polo", Latitude: 90, Longitude: 180},
		{Name: "Sur", Latitude: -90, Longitude: -180},
	}

	start := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, place := range places {
		for day := 0; day < 366*3; day += 11 {
			input := domain.NatalChartInput{
				BirthDate:  start.AddDate(0, 0, day),
				BirthTime:  "23:59",
				Birthplace: place,
			}

			chart, err := calc.Calculate(input)
			require.NoError(t, err)

			for i, h := range chart.Houses {
				assert.Equal(t, i+1, h.Number)
				assert.True(t, h.Sign.IsValid())
			}
			assert.Equal(t, chart.Ascendant.Sign, chart.Houses[0].Sign)
			assert.Equal(t, chart.Ascendant.Degree, chart.Houses[0].Degree)

			for _, p := range chart.Positions() {
				assert.True(t, p.Sign.IsValid())
				assert.GreaterOrEqual(t, p.Degree, 0)
				assert.Less(t, p.Degree, 30)
				assert.GreaterOrEqual(t, p.House, 1)
				assert.LessOrEqual(t, p.House, 12)
				assert.Equal(t, AssignHouse(p.AbsoluteDegree(), chart.Houses), p.House)
				assert.Equal(t, p.Name.Icon(), p.Icon)
			}
		}
	}
}

func TestCalculate_SeededIsIdempotent(t *testing.T) {
	calc := NewCalculator(SeededDegrees{})

	first, err := calc.Calculate(madridInput())
	require.NoError(t, err)
	second, err := calc.Calculate(madridInput())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("charts differ (-first +second):\n%s", diff)
	}

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculate_RandomKeepsSigns(t *testing.T) {
	calc := NewCalculator(RandomDegrees{})

	first, err := calc.Calculate(madridInput())
	require.NoError(t, err)
	second, err := calc.Calculate(madridInput())
	require.NoError(t, err)

	for _, b := range domain.Planets() {
		assert.Equal(t, first.Position(b).Sign, second.Position(b).Sign)
	}
	assert.Equal(t, first.Ascendant, second.Ascendant)
	assert.Equal(t, first.Houses, second.Houses)
}

func TestCalculate_InvalidInput(t *testing.T) {
	calc := NewCalculator(nil)

	tests := []struct {
		name   string
		mutate func(*domain.NatalChartInput)
	}{
		{"zero date", func(in *domain.NatalChartInput) { in.BirthDate = time.Time{} }},
		{"bad time", func(in *domain.NatalChartInput) { in.BirthTime = "25:00" }},
		{"empty time", func(in *domain.NatalChartInput) { in.BirthTime = "" }},
		{"latitude", func(in *domain.NatalChartInput) { in.Birthplace.Latitude = 91 }},
		{"longitude", func(in *domain.NatalChartInput) { in.Birthplace.Longitude = -180.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := madridInput()
			tt.mutate(&input)

			chart, err := calc.Calculate(input)
			assert.Nil(t, chart)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestCalculate_JSONRoundTrip(t *testing.T) {
	chart, err := NewCalculator(nil).Calculate(madridInput())
	require.NoError(t, err)

	data, err := json.Marshal(chart)
	require.NoError(t, err)

	var decoded domain.NatalChartData
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(*chart, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDegreeSource(t *testing.T) {
	src, err := NewDegreeSource("")
	require.NoError(t, err)
	assert.IsType(t, SeededDegrees{}, src)

	src, err = NewDegreeSource("RANDOM")
	require.NoError(t, err)
	assert.IsType(t, RandomDegrees{}, src)

	_, err = NewDegreeSource("ephemeris")
	assert.Error(t, err)
}

func TestSeededDegrees_InRangeAndStable(t *testing.T) {
	src := SeededDegrees{}
	for _, b := range domain.Planets() {
		d := src.Degree("1990-07-15 14:30 40.4168 -3.7038", b)
		assert.GreaterOrEqual(t, d, 0)
		assert.Less(t, d, 30)
		assert.Equal(t, d, src.Degree("1990-07-15 14:30 40.4168 -3.7038", b))
	}
}
