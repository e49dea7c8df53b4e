package domain

import (
	"time"

	"github.com/google/uuid"
)

// Preferences пользовательские настройки сессии.
// Читаются и пишутся только через astro UseCase, глобального состояния нет.
type Preferences struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	RememberedEmail *string   `json:"remembered_email,omitempty" db:"remembered_email"`
	IsPremium       bool      `json:"is_premium" db:"is_premium"`
	ComparisonCount int       `json:"comparison_count" db:"comparison_count"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// PreferencesPatch частичное обновление настроек, nil поля не меняются
type PreferencesPatch struct {
	RememberedEmail *string `json:"remembered_email,omitempty"`
	IsPremium       *bool   `json:"is_premium,omitempty"`
}

// Apply применяет патч к настройкам
func (p PreferencesPatch) Apply(prefs *Preferences) {
	if p.RememberedEmail != nil {
		if *p.RememberedEmail == "" {
			prefs.RememberedEmail = nil
		} else {
			email := *p.RememberedEmail
			prefs.RememberedEmail = &email
		}
	}
	if p.IsPremium != nil {
		prefs.IsPremium = *p.IsPremium
	}
}

// DefaultPreferences настройки нового пользователя
func DefaultPreferences(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
}
