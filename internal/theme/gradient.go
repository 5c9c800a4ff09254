package theme

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// ApplyGradient colors each rune of text with a blend from the start color
// to the end color. Spaces keep their position but carry no styling.
func ApplyGradient(text, start, end string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	var sb strings.Builder
	steps := len(runes) - 1
	for i, r := range runes {
		if r == ' ' {
			sb.WriteRune(r)
			continue
		}
		pos := 0.0
		if steps > 0 {
			pos = float64(i) / float64(steps)
		}
		c := BlendHex(start, end, pos)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return sb.String()
}

// BlendHex linearly interpolates between two #RRGGBB colors. pos is clamped
// to [0, 1].
func BlendHex(start, end string, pos float64) string {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}

	r1, g1, b1 := splitHex(start)
	r2, g2, b2 := splitHex(end)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// splitHex extracts the RGB channels from a #RRGGBB string. Malformed input
// yields black; gradient endpoints are compile-time constants in practice.
func splitHex(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
