package texts

import "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"

var wealthTexts = [...]string{
	domain.SignAries:       "El dinero llega cuando te atreves a emprender. Evita las compras impulsivas y apuesta por proyectos propios.",
	domain.SignTaurus:      "Tienes talento para acumular con paciencia. Las inversiones estables y los bienes tangibles son tu fuerte.",
	domain.SignGemini:      "Tus ingresos pueden venir de varias fuentes a la vez. La comunicación y el comercio te abren puertas.",
	domain.SignCancer:      "La seguridad económica es prioridad para ti. El ahorro familiar y la vivienda son buenas apuestas.",
	domain.SignLeo:         "Ganas más cuando eres visible. Los negocios creativos y el liderazgo te traen recompensas.",
	domain.SignVirgo:       "Tu orden financiero es tu mayor activo. Presupuestos claros y servicios bien hechos te dan estabilidad.",
	domain.SignLibra:       "Las asociaciones equilibradas multiplican tus recursos. El arte y el diseño pueden ser rentables.",
	domain.SignScorpio:     "Sabes gestionar recursos compartidos. Las inversiones estratégicas y las herencias marcan tu camino.",
	domain.SignSagittarius: "La abundancia llega con la expansión. Viajes, formación y negocios internacionales te favorecen.",
	domain.SignCapricorn:   "Construyes riqueza a largo plazo. La disciplina y las metas claras te llevan a la cima.",
	domain.SignAquarius:    "La tecnología y las ideas innovadoras son tu fuente de ingresos. Piensa en comunidad.",
	domain.SignPisces:      "Tu intuición financiera es valiosa, pero necesita estructura. Los proyectos con propósito te prosperan.",
}

var careerTexts = [...]string{
	domain.SignAries:       "Destacas en puestos de iniciativa: emprendimiento, deporte o gestión de crisis.",
	domain.SignTaurus:      "Brillas en profesiones estables: finanzas, gastronomía, agricultura o arquitectura.",
	domain.SignGemini:      "Tu vocación está en la palabra: periodismo, docencia, ventas o marketing.",
	domain.SignCancer:      "Te realizas cuidando de otros: salud, educación, hostelería o recursos humanos.",
	domain.SignLeo:         "Naciste para el escenario: dirección, espectáculo, política o diseño.",
	domain.SignVirgo:       "Tu precisión encaja en análisis, medicina, ingeniería o edición.",
	domain.SignLibra:       "Tu diplomacia te lleva al derecho, la mediación, la moda o las relaciones públicas.",
	domain.SignScorpio:     "Te atraen la investigación, la psicología, la cirugía o las finanzas.",
	domain.SignSagittarius: "Te inspiran la enseñanza, el turismo, la edición o el derecho internacional.",
	domain.SignCapricorn:   "Escalas en estructuras: administración, banca, gestión pública o construcción.",
	domain.SignAquarius:    "Tu lugar está en la innovación: tecnología, ciencia, ONG o astrología.",
	domain.SignPisces:      "Tu sensibilidad florece en el arte, la música, la terapia o la espiritualidad.",
}

var loveTexts = [...]string{
	domain.SignAries:       "Amas con pasión y rapidez. Necesitas una pareja que acepte tu independencia.",
	domain.SignTaurus:      "Buscas lealtad y placer sensorial. Tu amor es firme y duradero.",
	domain.SignGemini:      "Te enamora la mente. Una relación sin conversación se te apaga pronto.",
	domain.SignCancer:      "Amas protegiendo. El hogar compartido es tu forma de compromiso.",
	domain.SignLeo:         "Das todo con generosidad y esperas admiración sincera a cambio.",
	domain.SignVirgo:       "Demuestras amor con hechos y cuidados cotidianos.",
	domain.SignLibra:       "El romance y la armonía son esenciales para ti. Huyes del conflicto.",
	domain.SignScorpio:     "Amas con intensidad total. La confianza lo es todo.",
	domain.SignSagittarius: "Necesitas una pareja aventurera que comparta tus ganas de explorar.",
	domain.SignCapricorn:   "Tu amor es serio y comprometido. Construyes relaciones para toda la vida.",
	domain.SignAquarius:    "Valoras la amistad dentro de la pareja y el respeto a tu espacio.",
	domain.SignPisces:      "Eres romántico y entregado. Buscas una conexión casi espiritual.",
}

var luckTexts = [...]string{
	domain.SignAries:       "La suerte te sonríe cuando das el primer paso.",
	domain.SignTaurus:      "Tu fortuna crece despacio pero no se detiene.",
	domain.SignGemini:      "Las oportunidades llegan a través de contactos y mensajes.",
	domain.SignCancer:      "La familia y las raíces son tu amuleto.",
	domain.SignLeo:         "Tu confianza atrae golpes de suerte inesperados.",
	domain.SignVirgo:       "La suerte aparece cuando estás preparado.",
	domain.SignLibra:       "Las alianzas te traen la fortuna.",
	domain.SignScorpio:     "Tras cada transformación te espera una recompensa.",
	domain.SignSagittarius: "Júpiter en tu signo multiplica las oportunidades en el extranjero.",
	domain.SignCapricorn:   "La suerte premia tu esfuerzo sostenido.",
	domain.SignAquarius:    "Lo inesperado juega a tu favor.",
	domain.SignPisces:      "Tus sueños e intuiciones señalan el camino.",
}

var (
	_ = [1]struct{}{}[len(wealthTexts)-domain.SignCount]
	_ = [1]struct{}{}[len(careerTexts)-domain.SignCount]
	_ = [1]struct{}{}[len(loveTexts)-domain.SignCount]
	_ = [1]struct{}{}[len(luckTexts)-domain.SignCount]
)

const (
	wealthHouse = 2
	careerHouse = 10
)

// WealthMap премиальный разбор: 2-й дом (деньги), 10-й дом (карьера), Венера, Юпитер
func WealthMap(chart *domain.NatalChartData) domain.WealthMap {
	// номера домов константы в пределах 1..12, ошибки здесь быть не может
	wealthCusp, _ := chart.House(wealthHouse)
	careerCusp, _ := chart.House(careerHouse)

	wealth := wealthCusp.Sign
	career := careerCusp.Sign
	love := chart.Venus.Sign
	luck := chart.Jupiter.Sign

	return domain.WealthMap{
		Wealth: domain.WealthMapSection{Title: "Riqueza", Sign: wealth, Text: wealthTexts[wealth]},
		Career: domain.WealthMapSection{Title: "Carrera", Sign: career, Text: careerTexts[career]},
		Love:   domain.WealthMapSection{Title: "Amor", Sign: love, Text: loveTexts[love]},
		Luck:   domain.WealthMapSection{Title: "Suerte", Sign: luck, Text: luckTexts[luck]},
	}
}
