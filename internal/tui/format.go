package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/rollcall/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatPct renders a numeric percentage with one decimal and the
// percent sign. The stats engine stays numeric; the sign is applied
// here, at the presentation boundary.
func FormatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatDateRange renders a season's bounds.
func FormatDateRange(start, end string) string {
	return fmt.Sprintf("%s to %s", start, end)
}

// FormatMemberLabel renders a roster entry the way every list shows it.
func FormatMemberLabel(m models.Member) string {
	return fmt.Sprintf("%d. %s", m.ID, m.Name)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
