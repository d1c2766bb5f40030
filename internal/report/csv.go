package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the fixed 18-column export layout.
var csvHeader = []string{
	"Rank", "Player", "Draft Score", "Team", "Position", "Price", "Points",
	"PPG", "Selected %", "G+A", "xG+xA", "Minutes", "xDiff", "BPS", "ICT",
	"Bonus", "Clean Sheets", "Insights",
}

// WriteCSV writes the dataset in table order, rank starting at 1. A UTF-8 BOM
// leads the output so spreadsheet apps pick the right encoding. Commas inside
// player names are stripped rather than escaped; the insights column relies
// on regular CSV quoting.
func WriteCSV(w io.Writer, ds Dataset) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, r := range ds {
		row := []string{
			strconv.Itoa(i + 1),
			strings.ReplaceAll(r.Name, ",", ""),
			strconv.Itoa(r.DraftScore),
			r.Team,
			r.Position,
			formatFloat(r.Price),
			strconv.Itoa(r.TotalPoints),
			formatFloat(r.PPG),
			formatFloat(r.SelectedPercent),
			strconv.Itoa(r.Goals + r.Assists),
			strconv.FormatFloat(r.XG+r.XA, 'f', 2, 64),
			strconv.Itoa(r.Minutes),
			strconv.FormatFloat(XDiff(r), 'f', 2, 64),
			strconv.Itoa(r.BPS),
			formatFloat(r.ICTIndex),
			strconv.Itoa(r.Bonus),
			strconv.Itoa(r.CleanSheets),
			InsightsText(r),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
