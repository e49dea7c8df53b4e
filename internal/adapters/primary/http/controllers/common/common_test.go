package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.WrapBusinessError(fmt.Errorf("bad time: %w", domain.ErrInvalidInput)), http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrChartNotFound, http.StatusNotFound},
		{domain.ErrBirthDataNotSet, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.WrapBusinessError(domain.ErrPremiumRequired), http.StatusPaymentRequired},
		{domain.ErrComparisonLimit, http.StatusTooManyRequests},
		{domain.ErrStorageDisabled, http.StatusServiceUnavailable},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, message := StatusFor(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.NotEmpty(t, message)
	}
}

func ptr(f float64) *float64 { return &f }

func TestBirthDataRequest_ToInput(t *testing.T) {
	t.Run("directory location", func(t *testing.T) {
		input, err := BirthDataRequest{BirthDate: "1990-07-15", BirthTime: " 14:30 ", LocationID: "madrid"}.ToInput()
		require.NoError(t, err)
		assert.Equal(t, "1990-07-15", input.BirthDate.Format(domain.BirthDateLayout))
		assert.Equal(t, "14:30", input.BirthTime)
		assert.Equal(t, "Madrid", input.Birthplace.Name)
	})

	t.Run("custom birthplace", func(t *testing.T) {
		input, err := BirthDataRequest{
			BirthDate:  "2001-02-03",
			BirthTime:  "08:05",
			Birthplace: &BirthplaceDTO{Latitude: ptr(-33.45), Longitude: ptr(-70.66)},
		}.ToInput()
		require.NoError(t, err)
		assert.Equal(t, "custom", input.Birthplace.ID)
		assert.Equal(t, "-33.4500, -70.6600", input.Birthplace.Name)
	})

	for name, req := range map[string]BirthDataRequest{
		"bad date":         {BirthDate: "15/07/1990", BirthTime: "14:30", LocationID: "madrid"},
		"unknown location": {BirthDate: "1990-07-15", BirthTime: "14:30", LocationID: "atlantis"},
		"no place":         {BirthDate: "1990-07-15", BirthTime: "14:30"},
		"no coordinates":   {BirthDate: "1990-07-15", BirthTime: "14:30", Birthplace: &BirthplaceDTO{Name: "X", Latitude: ptr(1)}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := req.ToInput()
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
