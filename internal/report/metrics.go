package report

import (
	"math"
	"strings"
)

// XDiff is actual goal involvement (goals + assists) minus expected
// (xG + xA), rounded to 2 decimal places. Positive means the player is
// outperforming the underlying numbers.
func XDiff(r PlayerRecord) float64 {
	diff := float64(r.Goals+r.Assists) - (r.XG + r.XA)
	return math.Round(diff*100) / 100
}

// ValueForMoney flags players returning more than 0.8 points per game per
// million, with enough total points to rule out small samples.
func ValueForMoney(r PlayerRecord) bool {
	return r.Price > 0 && r.PPG/r.Price > 0.8 && r.TotalPoints > 50
}

// Insights returns the verbal tags shown in the report's insights column.
func Insights(r PlayerRecord) []string {
	var tags []string
	if r.PenaltyTaker {
		tags = append(tags, "Penalty taker")
	}
	if r.CornersTaker {
		tags = append(tags, "Corner taker")
	}
	if r.SelectedPercent < 5 {
		tags = append(tags, "Differential")
	}
	if r.RotationRisk {
		tags = append(tags, "Rotation risk")
	}
	if XDiff(r) > 1 {
		tags = append(tags, "Overperforming xG")
	}
	if XDiff(r) < -1 {
		tags = append(tags, "Underperforming, due a correction")
	}
	if ValueForMoney(r) {
		tags = append(tags, "Excellent value")
	}
	if r.BPS > 500 {
		tags = append(tags, "Bonus magnet")
	}
	return tags
}

// InsightsText joins the verbal tags for display and CSV export.
func InsightsText(r PlayerRecord) string {
	return strings.Join(Insights(r), ", ")
}

// QuickFilters holds the named predicates behind the report's quick
// filter buttons. At most one is active at a time; the active one is ANDed
// with the standing field filters.
var QuickFilters = map[string]func(PlayerRecord) bool{
	"differentials":   func(r PlayerRecord) bool { return r.SelectedPercent < 5 && r.TotalPoints > 30 },
	"penalties":       func(r PlayerRecord) bool { return r.PenaltyTaker },
	"corners":         func(r PlayerRecord) bool { return r.CornersTaker },
	"underperforming": func(r PlayerRecord) bool { return XDiff(r) <= -4 },
	"overperforming":  func(r PlayerRecord) bool { return XDiff(r) >= 4 },
	"bonus_magnets":   func(r PlayerRecord) bool { return r.BPS > 20 },
	"value":           ValueForMoney,
	"clean_sheets":    func(r PlayerRecord) bool { return r.CleanSheets > 8 },
}
