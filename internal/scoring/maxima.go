package scoring

import (
	"github.com/fpltools/draftboard/internal/fpl"
)

// StatMaxima holds the per-statistic maxima used as normalization
// denominators. Computed once per roster before any player is scored and
// read-only afterward.
type StatMaxima struct {
	Saves                 float64 // goalkeepers only
	CleanSheets           float64
	BPS                   float64
	PointsPerGame         float64
	Bonus                 float64
	ICTIndex              float64
	ExpectedGoals         float64
	ExpectedAssists       float64
	ExpectedGoalsConceded float64
	XGCDiff               float64 // max of (expected goals conceded - goals conceded)
}

// ComputeMaxima scans the full roster once and returns the normalization
// denominators. A maximum that computes to 0, or any maximum over an empty
// roster, is substituted with 1 so no later division can hit zero.
func ComputeMaxima(elements []fpl.Element) StatMaxima {
	var m StatMaxima

	for _, e := range elements {
		if e.ElementType == fpl.PositionGoalkeeper {
			m.Saves = maxOf(m.Saves, float64(e.Saves))
		}
		m.CleanSheets = maxOf(m.CleanSheets, float64(e.CleanSheets))
		m.BPS = maxOf(m.BPS, float64(e.BPS))
		m.PointsPerGame = maxOf(m.PointsPerGame, e.PointsPerGame.Float())
		m.Bonus = maxOf(m.Bonus, float64(e.Bonus))
		m.ICTIndex = maxOf(m.ICTIndex, e.ICTIndex.Float())
		m.ExpectedGoals = maxOf(m.ExpectedGoals, e.ExpectedGoals.Float())
		m.ExpectedAssists = maxOf(m.ExpectedAssists, e.ExpectedAssists.Float())
		m.ExpectedGoalsConceded = maxOf(m.ExpectedGoalsConceded, e.ExpectedGoalsConceded.Float())
		m.XGCDiff = maxOf(m.XGCDiff, e.ExpectedGoalsConceded.Float()-float64(e.GoalsConceded))
	}

	m.Saves = defaultIfZero(m.Saves)
	m.CleanSheets = defaultIfZero(m.CleanSheets)
	m.BPS = defaultIfZero(m.BPS)
	m.PointsPerGame = defaultIfZero(m.PointsPerGame)
	m.Bonus = defaultIfZero(m.Bonus)
	m.ICTIndex = defaultIfZero(m.ICTIndex)
	m.ExpectedGoals = defaultIfZero(m.ExpectedGoals)
	m.ExpectedAssists = defaultIfZero(m.ExpectedAssists)
	m.ExpectedGoalsConceded = defaultIfZero(m.ExpectedGoalsConceded)
	m.XGCDiff = defaultIfZero(m.XGCDiff)

	return m
}

func maxOf(current, candidate float64) float64 {
	if candidate > current {
		return candidate
	}
	return current
}

func defaultIfZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
