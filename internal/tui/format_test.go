package tui

import (
	"testing"

	"github.com/akyairhashvil/rollcall/internal/models"
)

func TestFormatPct(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{50, "50.0%"},
		{33.3, "33.3%"},
		{100, "100.0%"},
	}
	for _, c := range cases {
		if got := FormatPct(c.in); got != c.want {
			t.Errorf("FormatPct(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMemberLabel(t *testing.T) {
	got := FormatMemberLabel(models.Member{ID: 7, Name: "Jane"})
	if got != "7. Jane" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	got := FormatDateRange("2024-01-01", "2024-06-30")
	if got != "2024-01-01 to 2024-06-30" {
		t.Fatalf("unexpected range: %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("short labels must pass through, got %q", got)
	}
	if got := truncateLabel("a very long member name", 10); len([]rune(got)) > 10 {
		t.Fatalf("expected truncation to 10 cells, got %q", got)
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Fatalf("zero width must yield empty string, got %q", got)
	}
}
