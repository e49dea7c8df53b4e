package texts

import (
	"fmt"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
)

var sunTraits = [...]string{
	domain.SignAries:       "tu impulso natural te empuja a abrir caminos",
	domain.SignTaurus:      "tu constancia convierte lo pequeño en algo sólido",
	domain.SignGemini:      "tu curiosidad encuentra respuestas donde otros ven dudas",
	domain.SignCancer:      "tu sensibilidad te permite cuidar lo que más importa",
	domain.SignLeo:         "tu brillo personal atrae miradas y oportunidades",
	domain.SignVirgo:       "tu sentido del detalle pone orden en el caos",
	domain.SignLibra:       "tu búsqueda de equilibrio suaviza cualquier tensión",
	domain.SignScorpio:     "tu intensidad te lleva al fondo de cada asunto",
	domain.SignSagittarius: "tu optimismo abre horizontes nuevos",
	domain.SignCapricorn:   "tu disciplina sostiene los proyectos a largo plazo",
	domain.SignAquarius:    "tu originalidad propone soluciones que nadie esperaba",
	domain.SignPisces:      "tu intuición capta lo que no se dice en voz alta",
}

var moonMoods = [...]string{
	domain.SignAries:       "Emocionalmente necesitarás acción y algo de movimiento.",
	domain.SignTaurus:      "Emocionalmente buscarás calma, buena comida y rutinas conocidas.",
	domain.SignGemini:      "Emocionalmente te hará bien conversar y compartir ideas.",
	domain.SignCancer:      "Emocionalmente el hogar será tu mejor refugio.",
	domain.SignLeo:         "Emocionalmente agradecerás un reconocimiento sincero.",
	domain.SignVirgo:       "Emocionalmente ordenar tu espacio te dará paz.",
	domain.SignLibra:       "Emocionalmente la compañía adecuada marcará la diferencia.",
	domain.SignScorpio:     "Emocionalmente conviene soltar lo que ya no te pertenece.",
	domain.SignSagittarius: "Emocionalmente un plan distinto te devolverá la ilusión.",
	domain.SignCapricorn:   "Emocionalmente te sentirás mejor si cumples tus objetivos.",
	domain.SignAquarius:    "Emocionalmente necesitarás espacio propio y libertad.",
	domain.SignPisces:      "Emocionalmente la música o el arte te ayudarán a recargarte.",
}

var ascendantStyles = [...]string{
	domain.SignAries:       "con decisión",
	domain.SignTaurus:      "con paciencia",
	domain.SignGemini:      "con ingenio",
	domain.SignCancer:      "con ternura",
	domain.SignLeo:         "con generosidad",
	domain.SignVirgo:       "con precisión",
	domain.SignLibra:       "con diplomacia",
	domain.SignScorpio:     "con determinación",
	domain.SignSagittarius: "con entusiasmo",
	domain.SignCapricorn:   "con responsabilidad",
	domain.SignAquarius:    "con independencia",
	domain.SignPisces:      "con empatía",
}

var (
	_ = [1]struct{}{}[len(sunTraits)-domain.SignCount]
	_ = [1]struct{}{}[len(moonMoods)-domain.SignCount]
	_ = [1]struct{}{}[len(ascendantStyles)-domain.SignCount]
)

func elementAdvice(e domain.Element) string {
	switch e {
	case domain.ElementFire:
		return "Canaliza tu energía de fuego en una sola meta."
	case domain.ElementEarth:
		return "Tu elemento tierra pide pasos concretos y medibles."
	case domain.ElementAir:
		return "El aire de tu signo favorece los acuerdos y las palabras."
	case domain.ElementWater:
		return "El agua de tu signo te invita a escuchar tus emociones."
	default:
		return ""
	}
}

// шаблоны меняются по дню года: %[1]s знак Солнца, %[2]s черта, %[3]s стиль Асцендента
var horoscopeTemplates = [...]string{
	"Hoy, como %[1]s, %[2]s. Actúa %[3]s y el día jugará a tu favor.",
	"La jornada pide que tu lado %[1]s se exprese: %[2]s. Muéstralo %[3]s.",
	"Para %[1]s es un buen momento: %[2]s. Afronta los retos %[3]s.",
	"Los astros recuerdan a %[1]s que %[2]s. Responde a los cambios %[3]s.",
}

// Horoscope текст гороскопа на день по знакам Солнца, Луны и Асцендента
func Horoscope(chart *domain.NatalChartData, day time.Time) string {
	sun := chart.Sun.Sign
	tmpl := horoscopeTemplates[day.YearDay()%len(horoscopeTemplates)]

	return fmt.Sprintf(tmpl, sun.String(), sunTraits[sun], ascendantStyles[chart.Ascendant.Sign]) +
		" " + moonMoods[chart.Moon.Sign] +
		" " + elementAdvice(sun.Element())
}
