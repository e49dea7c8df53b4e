package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sign знак зодиака (тропический зодиак), всегда одно из двенадцати значений
type Sign int8

const (
	SignAries Sign = iota
	SignTaurus
	SignGemini
	SignCancer
	SignLeo
	SignVirgo
	SignLibra
	SignScorpio
	SignSagittarius
	SignCapricorn
	SignAquarius
	SignPisces
)

// SignCount количество знаков зодиака
const SignCount = 12

// DegreesPerSign ширина знака в градусах
const DegreesPerSign = 30

var signNames = [...]string{
	SignAries:       "Aries",
	SignTaurus:      "Tauro",
	SignGemini:      "Géminis",
	SignCancer:      "Cáncer",
	SignLeo:         "Leo",
	SignVirgo:       "Virgo",
	SignLibra:       "Libra",
	SignScorpio:     "Escorpio",
	SignSagittarius: "Sagitario",
	SignCapricorn:   "Capricornio",
	SignAquarius:    "Acuario",
	SignPisces:      "Piscis",
}

var signIcons = [...]string{
	SignAries:       "♈",
	SignTaurus:      "♉",
	SignGemini:      "♊",
	SignCancer:      "♋",
	SignLeo:         "♌",
	SignVirgo:       "♍",
	SignLibra:       "♎",
	SignScorpio:     "♏",
	SignSagittarius: "♐",
	SignCapricorn:   "♑",
	SignAquarius:    "♒",
	SignPisces:      "♓",
}

var signElements = [...]Element{
	SignAries:       ElementFire,
	SignTaurus:      ElementEarth,
	SignGemini:      ElementAir,
	SignCancer:      ElementWater,
	SignLeo:         ElementFire,
	SignVirgo:       ElementEarth,
	SignLibra:       ElementAir,
	SignScorpio:     ElementWater,
	SignSagittarius: ElementFire,
	SignCapricorn:   ElementEarth,
	SignAquarius:    ElementAir,
	SignPisces:      ElementWater,
}

// Таблицы по знакам обязаны иметь ровно SignCount элементов, иначе не скомпилируется
var (
	_ = [1]struct{}{}[len(signNames)-SignCount]
	_ = [1]struct{}{}[len(signIcons)-SignCount]
	_ = [1]struct{}{}[len(signElements)-SignCount]
)

// AllSigns возвращает все знаки в порядке зодиака, начиная с Овна
func AllSigns() []Sign {
	signs := make([]Sign, SignCount)
	for i := range signs {
		signs[i] = Sign(i)
	}
	return signs
}

// SignFromIndex возвращает знак по индексу, индекс нормализуется по модулю 12 (в том числе отрицательный)
func SignFromIndex(index int) Sign {
	return Sign(((index % SignCount) + SignCount) % SignCount)
}

// IsValid проверяет, что знак входит в двенадцать канонических
func (s Sign) IsValid() bool {
	return s >= SignAries && s <= SignPisces
}

// Index порядковый номер знака 0..11
func (s Sign) Index() int {
	return int(s)
}

// String возвращает отображаемое имя знака
func (s Sign) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Icon возвращает символ знака
func (s Sign) Icon() string {
	if !s.IsValid() {
		return ""
	}
	return signIcons[s]
}

// Element стихия знака
func (s Sign) Element() Element {
	if !s.IsValid() {
		return ""
	}
	return signElements[s]
}

// ParseSign находит знак по отображаемому имени
func ParseSign(name string) (Sign, error) {
	for _, s := range AllSigns() {
		if signNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown zodiac sign %q: %w", name, ErrInvalidInput)
}

func (s Sign) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid zodiac sign %d", int(s))
	}
	return json.Marshal(signNames[s])
}

func (s *Sign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("zodiac sign must be a string: %w", err)
	}
	parsed, err := ParseSign(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// signRange диапазон дат знака, границы включительно
type signRange struct {
	sign       Sign
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

// Козерог пересекает границу года и обрабатывается отдельно в SignForDate
var signRanges = [...]signRange{
	{SignAries, time.March, 21, time.April, 19},
	{SignTaurus, time.April, 20, time.May, 20},
	{SignGemini, time.May, 21, time.June, 20},
	{SignCancer, time.June, 21, time.July, 22},
	{SignLeo, time.July, 23, time.August, 22},
	{SignVirgo, time.August, 23, time.September, 22},
	{SignLibra, time.September, 23, time.October, 22},
	{SignScorpio, time.October, 23, time.November, 21},
	{SignSagittarius, time.November, 22, time.December, 21},
	{SignAquarius, time.January, 20, time.February, 18},
	{SignPisces, time.February, 19, time.March, 20},
}

// SignForDate определяет солнечный знак по календарной дате (месяц и день в локации t)
func SignForDate(t time.Time) Sign {
	month, day := t.Month(), t.Day()

	if (month == time.December && day >= 22) || (month == time.January && day <= 19) {
		return SignCapricorn
	}

	for _, r := range signRanges {
		if month == r.startMonth && day >= r.startDay {
			return r.sign
		}
		if month == r.endMonth && day <= r.endDay {
			return r.sign
		}
	}

	// недостижимо при полном покрытии диапазонов
	return SignCapricorn
}
