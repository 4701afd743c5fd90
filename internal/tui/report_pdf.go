package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/rollcall/internal/models"
	"github.com/akyairhashvil/rollcall/internal/stats"
	"github.com/go-pdf/fpdf"
)

// GenerateSeasonReport renders the season summary as a PDF in dir and
// returns the path it was written to. Long rosters flow onto following
// pages via fpdf's page breaks.
func GenerateSeasonReport(roster []models.Member, season models.Season, dir string) (string, error) {
	overall := stats.SeasonOverallStats(roster, season)
	perMember := stats.PerMemberStats(roster, season)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Season Overview")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Start date: %s", season.StartDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("End date: %s", season.EndDate))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Training days: %d", overall.TrainingDays))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Overall present: %s", FormatPct(overall.PresentPct)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Overall absent: %s", FormatPct(overall.AbsentPct)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Per Member")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	for _, ms := range perMember {
		line := fmt.Sprintf("%s: absent %d (%s)", FormatMemberLabel(ms.Member), ms.AbsentCount, FormatPct(ms.AbsentPct))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("season_%s_to_%s.pdf", season.StartDate, season.EndDate))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
