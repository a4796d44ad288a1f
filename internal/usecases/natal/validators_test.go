package natal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{name: "ISO формат", input: "1992-08-14", want: datePtr(1992, 8, 14)},
		{name: "точечный формат", input: "14.08.1992", want: datePtr(1992, 8, 14)},
		{name: "пробелы по краям", input: "  1990-01-01  ", want: datePtr(1990, 1, 1)},
		{name: "несуществующая дата", input: "2024-13-40", want: nil},
		{name: "31 февраля", input: "31.02.2000", want: nil},
		{name: "свободный текст", input: "четырнадцатое августа", want: nil},
		{name: "смешанный формат", input: "1992.08.14", want: nil},
		{name: "пустая строка", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{name: "обычное время", input: "07:30", wantHour: 7, wantMinute: 30, wantOK: true},
		{name: "полночь", input: "00:00", wantHour: 0, wantMinute: 0, wantOK: true},
		{name: "край диапазона", input: "23:59", wantHour: 23, wantMinute: 59, wantOK: true},
		{name: "час 24", input: "24:00", wantOK: false},
		{name: "минута 60", input: "12:60", wantOK: false},
		{name: "без ведущего нуля", input: "7:30", wantOK: false},
		{name: "с секундами", input: "07:30:15", wantOK: false},
		{name: "мусор", input: "утром", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, ok := parseTime(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHour, hour)
				assert.Equal(t, tt.wantMinute, minute)
			}
		})
	}
}

func TestParsePlace(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCity    string
		wantCountry string
	}{
		{name: "только город", input: "Barcelona", wantCity: "Barcelona", wantCountry: ""},
		{name: "город и страна через запятую", input: "Berlin, Germany", wantCity: "Berlin", wantCountry: "Germany"},
		{name: "город и страна через слэш", input: "Moscow/Russia", wantCity: "Moscow", wantCountry: "Russia"},
		{name: "лишние токены отбрасываются", input: "Paris, France, Europe", wantCity: "Paris", wantCountry: "France"},
		{name: "пустые токены пропускаются", input: " , London , ", wantCity: "London", wantCountry: ""},
		{name: "пусто", input: "   ", wantCity: "", wantCountry: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, country := parsePlace(tt.input)
			assert.Equal(t, tt.wantCity, city)
			assert.Equal(t, tt.wantCountry, country)
		})
	}
}

func TestValidTimezone(t *testing.T) {
	valid := []string{"Europe/Madrid", "Asia/Tokyo", "America/Argentina", "Not/AZone"}
	for _, tz := range valid {
		assert.True(t, validTimezone(tz), tz)
	}

	invalid := []string{"UTC", "Europe", "Europe/Argentina/Buenos_Aires", "Europe/ Madrid", "Europe/Mad rid", ""}
	for _, tz := range invalid {
		assert.False(t, validTimezone(tz), tz)
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
