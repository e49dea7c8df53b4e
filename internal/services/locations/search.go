package locations

import (
	"strings"
	"unicode/utf8"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"golang.org/x/text/cases"
)

const (
	// MinSearchLength минимальная длина запроса после trim (в символах)
	MinSearchLength = 2
	// MaxSearchResults максимум результатов поиска
	MaxSearchResults = 5
)

// Search ищет места, у которых название или страна содержит term без учёта регистра.
// Возвращает первые MaxSearchResults совпадений в порядке справочника.
func Search(term string) []domain.Location {
	return search(directory, term)
}

func search(locations []domain.Location, term string) []domain.Location {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchLength {
		return []domain.Location{}
	}

	// cases.Caser хранит состояние, поэтому создаём на каждый вызов
	fold := cases.Fold()
	needle := fold.String(term)

	results := make([]domain.Location, 0, MaxSearchResults)
	for _, loc := range locations {
		if strings.Contains(fold.String(loc.Name), needle) || strings.Contains(fold.String(loc.Country), needle) {
			results = append(results, loc)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}

	return results
}
