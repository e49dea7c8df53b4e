package domain

// WealthMapSection один раздел карты богатства
type WealthMapSection struct {
	Title string `json:"title"`
	Sign  Sign   `json:"sign"`
	Text  string `json:"text"`
}

// WealthMap премиальный разбор: деньги, карьера, любовь, удача
type WealthMap struct {
	Wealth WealthMapSection `json:"wealth"`
	Career WealthMapSection `json:"career"`
	Love   WealthMapSection `json:"love"`
	Luck   WealthMapSection `json:"luck"`
}

// Compatibility результат сравнения двух карт
type Compatibility struct {
	SunScore  int    `json:"sun_score"`  // 0..100
	MoonScore int    `json:"moon_score"` // 0..100
	Total     int    `json:"total"`      // 0..100
	Summary   string `json:"summary"`
}

// Horoscope текст гороскопа на день
type Horoscope struct {
	Date string `json:"date"` // YYYY-MM-DD
	Sign Sign   `json:"sign"`
	Text string `json:"text"`
}
