package astro

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/google/uuid"
)

const maxDisplayNameLength = 64

// CreateUser создаёт профиль без данных рождения
func (s *Service) CreateUser(ctx context.Context, email, displayName string) (*domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, s.business(err, "invalid email on user creation")
	}

	displayName = strings.TrimSpace(displayName)
	if len([]rune(displayName)) > maxDisplayNameLength {
		return nil, s.business(fmt.Errorf("display name longer than %d: %w", maxDisplayNameLength, domain.ErrInvalidInput), "invalid display name")
	}

	now := s.now()
	user := &domain.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		if isBusiness(err) {
			return nil, s.business(err, "user not created", "email", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Log.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUser профиль без карты, карта отдаётся через GetChart
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		if isBusiness(err) {
			return nil, s.business(err, "user not found", "user_id", userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email %q: %w", email, domain.ErrInvalidInput)
	}
	return email, nil
}
