package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filters are the standing field filters applied over the dataset. Zero
// values mean "no constraint" (MaxPrice 0 means unbounded). Quick names a
// QuickFilters predicate; empty means none.
type Filters struct {
	Name        string
	Position    string
	Team        string
	MinPrice    float64
	MaxPrice    float64
	MinPoints   int
	MinSelected float64
	XDiffSign   string // "", "positive", "negative"
	Quick       string
}

// Apply returns the records matching every standing filter plus the active
// quick filter, preserving dataset order.
func (f Filters) Apply(ds Dataset) Dataset {
	quick := QuickFilters[f.Quick]
	maxPrice := f.MaxPrice
	if maxPrice == 0 {
		maxPrice = 99
	}

	out := make(Dataset, 0, len(ds))
	for _, r := range ds {
		if f.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Position != "" && r.Position != f.Position {
			continue
		}
		if f.Team != "" && r.Team != f.Team {
			continue
		}
		if r.Price < f.MinPrice || r.Price > maxPrice {
			continue
		}
		if r.TotalPoints < f.MinPoints {
			continue
		}
		if r.SelectedPercent < f.MinSelected {
			continue
		}
		if f.XDiffSign == "positive" && XDiff(r) <= 0 {
			continue
		}
		if f.XDiffSign == "negative" && XDiff(r) >= 0 {
			continue
		}
		if quick != nil && !quick(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sortable columns in table order. Column 0 (rank) is positional and sorting
// by it keeps the current order.
const (
	ColumnRank = iota
	ColumnName
	ColumnDraftScore
	ColumnTeam
	ColumnPosition
	ColumnPrice
	ColumnTotalPoints
	ColumnPPG
	ColumnSelectedPercent
	ColumnGoalsAssists
	ColumnXGXA
	ColumnMinutes
	ColumnXDiff
	ColumnBPS
	ColumnICTIndex
	ColumnBonus
	ColumnCleanSheets
	ColumnInsights
)

var collator = collate.New(language.English)

// SortByColumn sorts the dataset in place by the given table column. String
// columns sort ascending with locale-aware collation; numeric columns always
// sort descending regardless of any requested direction. The sort is stable
// so ties keep roster order.
func SortByColumn(ds Dataset, column int) {
	if key := stringKey(column); key != nil {
		sort.SliceStable(ds, func(i, j int) bool {
			return collator.CompareString(key(ds[i]), key(ds[j])) < 0
		})
		return
	}
	if key := numericKey(column); key != nil {
		sort.SliceStable(ds, func(i, j int) bool {
			return key(ds[i]) > key(ds[j])
		})
	}
	// Rank and unknown columns: leave the current order.
}

func stringKey(column int) func(PlayerRecord) string {
	switch column {
	case ColumnName:
		return func(r PlayerRecord) string { return r.Name }
	case ColumnTeam:
		return func(r PlayerRecord) string { return r.Team }
	case ColumnPosition:
		return func(r PlayerRecord) string { return r.Position }
	case ColumnInsights:
		return InsightsText
	}
	return nil
}

func numericKey(column int) func(PlayerRecord) float64 {
	switch column {
	case ColumnDraftScore:
		return func(r PlayerRecord) float64 { return float64(r.DraftScore) }
	case ColumnPrice:
		return func(r PlayerRecord) float64 { return r.Price }
	case ColumnTotalPoints:
		return func(r PlayerRecord) float64 { return float64(r.TotalPoints) }
	case ColumnPPG:
		return func(r PlayerRecord) float64 { return r.PPG }
	case ColumnSelectedPercent:
		return func(r PlayerRecord) float64 { return r.SelectedPercent }
	case ColumnGoalsAssists:
		return func(r PlayerRecord) float64 { return float64(r.Goals + r.Assists) }
	case ColumnXGXA:
		return func(r PlayerRecord) float64 { return r.XG + r.XA }
	case ColumnMinutes:
		return func(r PlayerRecord) float64 { return float64(r.Minutes) }
	case ColumnXDiff:
		return XDiff
	case ColumnBPS:
		return func(r PlayerRecord) float64 { return float64(r.BPS) }
	case ColumnICTIndex:
		return func(r PlayerRecord) float64 { return r.ICTIndex }
	case ColumnBonus:
		return func(r PlayerRecord) float64 { return float64(r.Bonus) }
	case ColumnCleanSheets:
		return func(r PlayerRecord) float64 { return float64(r.CleanSheets) }
	}
	return nil
}
