package natal

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

// DegreeSource даёт градус внутри знака для тел, у которых нет формулы.
// Исходное приложение брало случайное число, см. DESIGN.md.
type DegreeSource interface {
	Degree(key string, body domain.Body) int
}

// DegreeMode режим выбора градусов
type DegreeMode string

const (
	DegreeModeSeeded DegreeMode = "seeded"
	DegreeModeRandom DegreeMode = "random"
)

// NewDegreeSource создаёт источник градусов по режиму из конфига
func NewDegreeSource(mode string) (DegreeSource, error) {
	switch DegreeMode(strings.ToLower(strings.TrimSpace(mode))) {
	case DegreeModeSeeded, "":
		return SeededDegrees{}, nil
	case DegreeModeRandom:
		return RandomDegrees{}, nil
	default:
		return nil, fmt.Errorf("unknown chart degree mode %q", mode)
	}
}

// SeededDegrees детерминированный источник: PCG, засеянный FNV-хэшем входа и тела.
// Одинаковый вход всегда даёт одинаковую карту.
type SeededDegrees struct{}

func (SeededDegrees) Degree(key string, body domain.Body) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	seed := h.Sum64()

	rng := rand.New(rand.NewPCG(seed, uint64(body)+1))
	return rng.IntN(domain.DegreesPerSign)
}

// RandomDegrees поведение исходного приложения: новый градус на каждый вызов
type RandomDegrees struct{}

func (RandomDegrees) Degree(string, domain.Body) int {
	return rand.IntN(domain.DegreesPerSign)
}

// chartKey нормализованный ключ входа для SeededDegrees
func chartKey(input domain.NatalChartInput) string {
	return fmt.Sprintf("%s %s %.4f %.4f",
		input.BirthDate.Format(domain.BirthDateLayout),
		input.BirthTime,
		input.Birthplace.Latitude,
		input.Birthplace.Longitude,
	)
}
