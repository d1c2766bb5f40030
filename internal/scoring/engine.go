package scoring

import (
	"math"

	"github.com/fpltools/draftboard/internal/fpl"
)

// maxPrice is the normalization ceiling for now_cost in the zero-minutes
// formula. FPL prices are tenths of a million, so 130 = £13.0m.
const maxPrice = 130

// GoalkeeperWeights weight saves and shot-stopping overperformance alongside
// the usual contribution metrics.
type GoalkeeperWeights struct {
	Saves         float64
	CleanSheets   float64
	BPS           float64
	PointsPerGame float64
	Bonus         float64
	XGCDiff       float64
}

func (w GoalkeeperWeights) Sum() float64 {
	return w.Saves + w.CleanSheets + w.BPS + w.PointsPerGame + w.Bonus + w.XGCDiff
}

// DefenderWeights let clean sheets dominate; the bonus term is zero on
// purpose.
type DefenderWeights struct {
	ICTIndex    float64
	CleanSheets float64
	XGXA        float64
	BPS         float64
	Bonus       float64
}

func (w DefenderWeights) Sum() float64 {
	return w.ICTIndex + w.CleanSheets + w.XGXA + w.BPS + w.Bonus
}

// MidfielderWeights favor expected goal involvement and per-game consistency.
type MidfielderWeights struct {
	ICTIndex      float64
	XGXA          float64
	BPS           float64
	PointsPerGame float64
	Bonus         float64
}

func (w MidfielderWeights) Sum() float64 {
	return w.ICTIndex + w.XGXA + w.BPS + w.PointsPerGame + w.Bonus
}

// ForwardWeights score forwards purely on goal threat and consistency; there
// is no bonus term.
type ForwardWeights struct {
	ExpectedGoals float64
	ICTIndex      float64
	BPS           float64
	PointsPerGame float64
}

func (w ForwardWeights) Sum() float64 {
	return w.ExpectedGoals + w.ICTIndex + w.BPS + w.PointsPerGame
}

// The fixed per-position weight tables. Each sums to 1.0.
var (
	WeightsGoalkeeper = GoalkeeperWeights{Saves: 0.30, CleanSheets: 0.25, BPS: 0.15, PointsPerGame: 0.10, Bonus: 0.05, XGCDiff: 0.15}
	WeightsDefender   = DefenderWeights{ICTIndex: 0.20, CleanSheets: 0.40, XGXA: 0.30, BPS: 0.10, Bonus: 0}
	WeightsMidfielder = MidfielderWeights{ICTIndex: 0.10, XGXA: 0.40, BPS: 0.15, PointsPerGame: 0.25, Bonus: 0.10}
	WeightsForward    = ForwardWeights{ExpectedGoals: 0.30, ICTIndex: 0.15, BPS: 0.15, PointsPerGame: 0.40}
)

// Zero-minutes scoring: unused players rank on squad value and underlying
// influence only, capped at half the maximum score.
const (
	zeroMinutesPriceWeight = 0.7
	zeroMinutesICTWeight   = 0.3
	zeroMinutesCap         = 50
)

// Normalize scales value into [0,1] relative to max. A zero max yields 0,
// never a division by zero. Values are not clamped: callers keep value <= max
// except for the goalkeeper xGC diff, which may legitimately exceed its max
// or go negative.
func Normalize(value, max float64) float64 {
	if max == 0 {
		return 0
	}
	return value / max
}

// ReverseNormalize inverts Normalize so that smaller raw values score higher.
func ReverseNormalize(value, max float64) float64 {
	return 1 - Normalize(value, max)
}

// Score computes the composite draft score for one player given the roster
// maxima. The result is in [0,100] for recognized positions ([0,50] for
// players with no minutes) and 0 for unknown position codes. It never fails:
// missing stats are zero-valued upstream.
func Score(e fpl.Element, m StatMaxima) int {
	if e.Minutes == 0 {
		priceScore := Normalize(float64(e.NowCost), maxPrice) * zeroMinutesPriceWeight
		ictScore := Normalize(e.ICTIndex.Float(), m.ICTIndex) * zeroMinutesICTWeight
		return int(math.Round((priceScore + ictScore) * zeroMinutesCap))
	}

	var sum float64
	switch e.ElementType {
	case fpl.PositionGoalkeeper:
		w := WeightsGoalkeeper
		xgcDiff := e.ExpectedGoalsConceded.Float() - float64(e.GoalsConceded)
		sum = Normalize(float64(e.Saves), m.Saves)*w.Saves +
			Normalize(float64(e.CleanSheets), m.CleanSheets)*w.CleanSheets +
			Normalize(float64(e.BPS), m.BPS)*w.BPS +
			Normalize(e.PointsPerGame.Float(), m.PointsPerGame)*w.PointsPerGame +
			Normalize(float64(e.Bonus), m.Bonus)*w.Bonus +
			Normalize(xgcDiff, m.XGCDiff)*w.XGCDiff

	case fpl.PositionDefender:
		w := WeightsDefender
		sum = Normalize(e.ICTIndex.Float(), m.ICTIndex)*w.ICTIndex +
			Normalize(float64(e.CleanSheets), m.CleanSheets)*w.CleanSheets +
			Normalize(e.ExpectedGoals.Float()+e.ExpectedAssists.Float(), m.ExpectedGoals+m.ExpectedAssists)*w.XGXA +
			Normalize(float64(e.BPS), m.BPS)*w.BPS

	case fpl.PositionMidfielder:
		w := WeightsMidfielder
		sum = Normalize(e.ICTIndex.Float(), m.ICTIndex)*w.ICTIndex +
			Normalize(e.ExpectedGoals.Float()+e.ExpectedAssists.Float(), m.ExpectedGoals+m.ExpectedAssists)*w.XGXA +
			Normalize(float64(e.BPS), m.BPS)*w.BPS +
			Normalize(e.PointsPerGame.Float(), m.PointsPerGame)*w.PointsPerGame +
			Normalize(float64(e.Bonus), m.Bonus)*w.Bonus

	case fpl.PositionForward:
		w := WeightsForward
		sum = Normalize(e.ExpectedGoals.Float(), m.ExpectedGoals)*w.ExpectedGoals +
			Normalize(e.ICTIndex.Float(), m.ICTIndex)*w.ICTIndex +
			Normalize(float64(e.BPS), m.BPS)*w.BPS +
			Normalize(e.PointsPerGame.Float(), m.PointsPerGame)*w.PointsPerGame

	default:
		// Unrecognized position code: degenerate score, not an error.
		return 0
	}

	return int(math.Round(sum * 100))
}
