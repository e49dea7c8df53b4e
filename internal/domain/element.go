package domain

// Element стихия знака
type Element string

const (
	ElementFire  Element = "fuego"
	ElementEarth Element = "tierra"
	ElementAir   Element = "aire"
	ElementWater Element = "agua"
)

// AllElements возвращает все стихии
func AllElements() []Element {
	return []Element{ElementFire, ElementEarth, ElementAir, ElementWater}
}
