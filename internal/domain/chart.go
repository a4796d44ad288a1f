package domain

import (
	"math"
	"time"
)

// Body - небесное тело, участвующее в расчёте карты
type Body string

const (
	BodySun     Body = "Sun"
	BodyMoon    Body = "Moon"
	BodyMercury Body = "Mercury"
	BodyVenus   Body = "Venus"
	BodyMars    Body = "Mars"
	BodyJupiter Body = "Jupiter"
	BodySaturn  Body = "Saturn"
	BodyUranus  Body = "Uranus"
	BodyNeptune Body = "Neptune"
	BodyPluto   Body = "Pluto"
)

// Bodies - фиксированный порядок тел для расчёта и вывода
var Bodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

// Chart - рассчитанная натальная карта.
// Значение живёт один раунд, нигде не сохраняется и не мутируется.
type Chart struct {
	UTC       time.Time
	JulianDay float64
	Positions map[Body]float64 // эклиптическая долгота в градусах [0,360)
	Ascendant float64          // долгота асцендента в градусах [0,360)
}

// Houses - углы домов, возвращаемые эфемеридным API (система Плацидуса)
type Houses struct {
	Ascendant float64
	Midheaven float64
}

// Sign - знак зодиака
type Sign string

var signs = []Sign{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignPlacement определяет знак и градус внутри знака по эклиптической долготе.
// Тотальна и периодична: любая долгота сначала нормализуется в [0,360),
// within всегда в [0,30).
func SignPlacement(longitude float64) (Sign, float64) {
	deg := math.Mod(longitude, 360)
	if deg < 0 {
		deg += 360
	}

	idx := int(deg/30) % 12
	within := math.Mod(deg, 30)

	return signs[idx], within
}
