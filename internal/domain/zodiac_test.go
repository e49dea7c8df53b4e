package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignForDate_Boundaries(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  Sign
	}{
		{time.March, 20, SignPisces},
		{time.March, 21, SignAries},
		{time.April, 19, SignAries},
		{time.April, 20, SignTaurus},
		{time.June, 20, SignGemini},
		{time.June, 21, SignCancer},
		{time.July, 22, SignCancer},
		{time.July, 23, SignLeo},
		{time.November, 21, SignScorpio},
		{time.November, 22, SignSagittarius},
		{time.December, 21, SignSagittarius},
		{time.December, 22, SignCapricorn},
		{time.December, 31, SignCapricorn},
		{time.January, 1, SignCapricorn},
		{time.January, 19, SignCapricorn},
		{time.January, 20, SignAquarius},
		{time.February, 18, SignAquarius},
		{time.February, 19, SignPisces},
		{time.February, 29, SignPisces},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			d := time.Date(2024, tt.month, tt.day, 12, 0, 0, 0, time.UTC)
			assert.Equal(t, tt.want, SignForDate(d), "%s %d", tt.month, tt.day)
		})
	}
}

func TestSignForDate_EveryDayIsCovered(t *testing.T) {
	counts := make(map[Sign]int)

	// високосный год, чтобы попал 29 февраля
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	prev := SignForDate(day.AddDate(0, 0, -1))
	changes := 0
	for day.Year() == 2024 {
		s := SignForDate(day)
		require.True(t, s.IsValid())
		counts[s]++
		if s != prev {
			// знаки идут строго по кругу
			assert.Equal(t, SignFromIndex(prev.Index()+1), s, day.Format(BirthDateLayout))
			changes++
		}
		prev = s
		day = day.AddDate(0, 0, 1)
	}

	assert.Len(t, counts, SignCount)
	assert.Equal(t, SignCount, changes)
}

func TestSignFromIndex(t *testing.T) {
	assert.Equal(t, SignAries, SignFromIndex(0))
	assert.Equal(t, SignPisces, SignFromIndex(11))
	assert.Equal(t, SignAries, SignFromIndex(12))
	assert.Equal(t, SignPisces, SignFromIndex(-1))
	assert.Equal(t, SignTaurus, SignFromIndex(-23))
}

func TestSign_Names(t *testing.T) {
	assert.Equal(t, "Géminis", SignGemini.String())
	assert.Equal(t, "♑", SignCapricorn.Icon())
	assert.Equal(t, ElementWater, SignScorpio.Element())
	assert.Equal(t, "Sign(12)", Sign(12).String())
	assert.False(t, Sign(-1).IsValid())

	for _, s := range AllSigns() {
		parsed, err := ParseSign(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSign("Ofiuco")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestSign_JSON(t *testing.T) {
	data, err := json.Marshal(SignCancer)
	require.NoError(t, err)
	assert.JSONEq(t, `"Cáncer"`, string(data))

	var s Sign
	require.NoError(t, json.Unmarshal([]byte(`"Piscis"`), &s))
	assert.Equal(t, SignPisces, s)

	assert.Error(t, json.Unmarshal([]byte(`"Pisces"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`3`), &s))

	_, err = json.Marshal(Sign(40))
	assert.Error(t, err)
}

func TestElements(t *testing.T) {
	perElement := make(map[Element]int)
	for _, s := range AllSigns() {
		perElement[s.Element()]++
	}

	assert.Len(t, perElement, len(AllElements()))
	for _, e := range AllElements() {
		assert.Equal(t, 3, perElement[e], string(e))
	}
}
