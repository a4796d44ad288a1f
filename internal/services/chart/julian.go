package chart

import "time"

// JulianDayUT переводит момент UTC в юлианский день (UT) с дробной частью.
// Алгоритм Флигеля-Ван Фландерна для номера дня, время суток - дробью.
func JulianDayUT(t time.Time) float64 {
	t = t.UTC()

	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	hours := float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0

	// юлианский день начинается в полдень
	return float64(jdn) + (hours-12.0)/24.0
}
