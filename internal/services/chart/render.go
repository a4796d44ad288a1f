package chart

import (
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// RenderText форматирует карту в компактную текстовую сводку:
// асцендент первой строкой, затем десять тел в фиксированном порядке,
// по строке вида "Sun: Leo 12.3°".
func RenderText(c *domain.Chart) string {
	lines := make([]string, 0, len(domain.Bodies)+1)

	sign, within := domain.SignPlacement(c.Ascendant)
	lines = append(lines, fmt.Sprintf("Ascendant: %s %.1f°", sign, within))

	for _, body := range domain.Bodies {
		sign, within := domain.SignPlacement(c.Positions[body])
		lines = append(lines, fmt.Sprintf("%s: %s %.1f°", body, sign, within))
	}

	return strings.Join(lines, "\n")
}
