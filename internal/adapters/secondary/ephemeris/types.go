package ephemeris

// PositionRequest запрос эклиптической долготы тела на момент jd
type PositionRequest struct {
	JulianDay float64 `json:"julian_day"`
	Body      string  `json:"body"`
	Zodiac    string  `json:"zodiac"` // "tropical"
}

// PositionResponse ответ с позицией тела
type PositionResponse struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"` // градусы [0,360)
}

// HousesRequest запрос углов домов
type HousesRequest struct {
	JulianDay   float64 `json:"julian_day"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	HouseSystem string  `json:"house_system"` // "P" - Плацидус
}

// HousesResponse ответ с углами домов
type HousesResponse struct {
	Ascendant float64   `json:"ascendant"`
	Midheaven float64   `json:"midheaven"`
	Cusps     []float64 `json:"cusps,omitempty"`
}
