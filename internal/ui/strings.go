package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const ellipsis = "…"

// truncate shortens value to at most width terminal cells, ending with an
// ellipsis when cut. Wide runes count as two cells.
func truncate(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(value, width, ellipsis)
}

// fit truncates value and pads it with spaces to exactly width cells.
func fit(value string, width int) string {
	return runewidth.FillRight(truncate(value, width), width)
}

// truncateMiddle keeps the start and end of value, which suits file paths.
func truncateMiddle(value string, width int) string {
	value = strings.TrimSpace(value)
	if width <= 0 || value == "" {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}

	keep := width - runewidth.StringWidth(ellipsis)
	head := runewidth.Truncate(value, keep/2+keep%2, "")
	tail := tailCells(value, keep/2)
	return head + ellipsis + tail
}

// tailCells returns the longest suffix of value that fits in width cells.
func tailCells(value string, width int) string {
	runes := []rune(value)
	used := 0
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if used+w > width {
			break
		}
		used += w
		i--
	}
	return string(runes[i:])
}

// wrap breaks text into lines of at most width cells at word boundaries.
// Paragraph breaks in text are kept.
func wrap(text string, width int) string {
	text = strings.TrimSpace(text)
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// stars renders a 0-5 rating as filled and empty stars, rounded to the
// nearest whole star.
func stars(rating float64) string {
	filled := int(math.Round(rating))
	filled = max(0, min(5, filled))
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// formatRating renders a rating as stars followed by its value.
func formatRating(rating float64) string {
	return fmt.Sprintf("%s %.1f", stars(rating), rating)
}

// formatYear renders a publication year, or a dash when unknown.
func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", year)
}

// plural picks the singular or plural noun for n.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
