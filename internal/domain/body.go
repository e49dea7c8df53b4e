package domain

import (
	"encoding/json"
	"fmt"
)

// Body отслеживаемое небесное тело (или точка карты, как Асцендент)
type Body int8

const (
	BodySun Body = iota
	BodyMoon
	BodyMercury
	BodyVenus
	BodyMars
	BodyJupiter
	BodySaturn
	BodyUranus
	BodyNeptune
	BodyPluto
	BodyAscendant
)

// BodyCount количество позиций в карте (десять тел + Асцендент)
const BodyCount = 11

var bodyNames = [...]string{
	BodySun:       "Sol",
	BodyMoon:      "Luna",
	BodyMercury:   "Mercurio",
	BodyVenus:     "Venus",
	BodyMars:      "Marte",
	BodyJupiter:   "Júpiter",
	BodySaturn:    "Saturno",
	BodyUranus:    "Urano",
	BodyNeptune:   "Neptuno",
	BodyPluto:     "Plutón",
	BodyAscendant: "Ascendente",
}

var bodyIcons = [...]string{
	BodySun:       "☉",
	BodyMoon:      "☽",
	BodyMercury:   "☿",
	BodyVenus:     "♀",
	BodyMars:      "♂",
	BodyJupiter:   "♃",
	BodySaturn:    "♄",
	BodyUranus:    "♅",
	BodyNeptune:   "♆",
	BodyPluto:     "♇",
	BodyAscendant: "AC",
}

var (
	_ = [1]struct{}{}[len(bodyNames)-BodyCount]
	_ = [1]struct{}{}[len(bodyIcons)-BodyCount]
)

// Planets возвращает десять тел без Асцендента в порядке карты
func Planets() []Body {
	return []Body{
		BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
		BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
	}
}

func (b Body) IsValid() bool {
	return b >= BodySun && b <= BodyAscendant
}

func (b Body) String() string {
	if !b.IsValid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Icon символ для отображения
func (b Body) Icon() string {
	if !b.IsValid() {
		return ""
	}
	return bodyIcons[b]
}

// ParseBody находит тело по отображаемому имени
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body %q: %w", name, ErrInvalidInput)
}

func (b Body) MarshalJSON() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("invalid body %d", int(b))
	}
	return json.Marshal(bodyNames[b])
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("body must be a string: %w", err)
	}
	parsed, err := ParseBody(name)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
