package astro

import (
	"context"
	"fmt"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

func (s *Service) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	prefs, err := s.PreferencesRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences применяет патч, счётчик сравнений не трогается
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, patch domain.PreferencesPatch) (*domain.Preferences, error) {
	if patch.RememberedEmail != nil && *patch.RememberedEmail != "" {
		email, err := normalizeEmail(*patch.RememberedEmail)
		if err != nil {
			return nil, s.business(err, "invalid remembered email", "user_id", userID)
		}
		patch.RememberedEmail = &email
	}

	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(prefs)
	prefs.UpdatedAt = s.now()

	if err := s.PreferencesRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.Log.Info("preferences updated", "user_id", userID, "is_premium", prefs.IsPremium)
	return prefs, nil
}
