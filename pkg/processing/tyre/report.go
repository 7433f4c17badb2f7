package tyre

import (
	"fmt"
	"sort"
	"strings"
)

// HealthBar describes the geometry and colour of a tyre health gauge.
type HealthBar struct {
	Width     int
	Height    int
	FillWidth float64
	Color     [3]uint8
	Health    int
}

// FormatHealthBar converts a health value into gauge geometry with
// colour bands at 75/50/25.
func FormatHealthBar(health, width, height int) HealthBar {
	if health < 0 {
		health = 0
	} else if health > 100 {
		health = 100
	}
	var color [3]uint8
	switch {
	case health >= 75:
		color = [3]uint8{0, 220, 0}
	case health >= 50:
		color = [3]uint8{200, 220, 0}
	case health >= 25:
		color = [3]uint8{220, 180, 0}
	default:
		color = [3]uint8{220, 50, 0}
	}
	return HealthBar{
		Width:     width,
		Height:    height,
		FillWidth: float64(health) / 100 * float64(width),
		Color:     color,
		Health:    health,
	}
}

// Summary returns a one-line description like "MEDIUM (L6): 91%".
func (p *Prediction) Summary() string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s (L%d): %d%%", p.Compound, p.LapsOnTyre, p.Health)
}

// RateReport formats the fitted degradation rates, one compound per
// line, in stable order.
func RateReport(profiles map[string]Profile) string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.WriteString("Degradation rates (seconds/lap):\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %s: %.4f\n", name, profiles[name].DegradationRate)
	}
	return sb.String()
}
