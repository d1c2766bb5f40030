package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpltools/draftboard/internal/fpl"
	"github.com/fpltools/draftboard/internal/scoring"
)

func intPtr(v int) *int { return &v }

func TestBuildRecordMapping(t *testing.T) {
	e := fpl.Element{
		ID:                1,
		FirstName:         "Mohamed",
		WebName:           "Salah",
		Team:              12,
		ElementType:       fpl.PositionMidfielder,
		NowCost:           131,
		Minutes:           3042,
		TotalPoints:       211,
		GoalsScored:       18,
		Assists:           10,
		GoalsConceded:     28,
		CleanSheets:       12,
		Bonus:             24,
		BPS:               812,
		PenaltiesOrder:    intPtr(1),
		PointsPerGame:     fpl.FloatString(5.9),
		SelectedByPercent: fpl.FloatString(43.2),
		ICTIndex:          fpl.FloatString(312.4),
		ExpectedGoals:     fpl.FloatString(15.2),
		ExpectedAssists:   fpl.FloatString(8.1),
	}
	teamNames := map[int]string{12: "Liverpool"}
	maxima := scoring.ComputeMaxima([]fpl.Element{e})

	r := BuildRecord(e, teamNames, maxima)

	assert.Equal(t, 1, r.ID)
	assert.Equal(t, "Mohamed Salah", r.Name)
	assert.Equal(t, "Liverpool", r.Team)
	assert.Equal(t, "MID", r.Position)
	assert.InDelta(t, 13.1, r.Price, 1e-9)
	assert.Equal(t, 211, r.TotalPoints)
	assert.InDelta(t, 5.9, r.PPG, 1e-9)
	assert.InDelta(t, 43.2, r.SelectedPercent, 1e-9)
	assert.Equal(t, 18, r.Goals)
	assert.Equal(t, 10, r.Assists)
	assert.Equal(t, 3042, r.Minutes)
	assert.InDelta(t, 15.2, r.XG, 1e-9)
	assert.InDelta(t, 8.1, r.XA, 1e-9)
	assert.Equal(t, 812, r.BPS)
	assert.InDelta(t, 312.4, r.ICTIndex, 1e-9)
	assert.Equal(t, 24, r.Bonus)
	assert.Equal(t, 12, r.CleanSheets)
	assert.Equal(t, scoring.Score(e, maxima), r.DraftScore)
	assert.True(t, r.PenaltyTaker)
	assert.False(t, r.CornersTaker)
	assert.False(t, r.RotationRisk)
}

func TestBuildRecordFallbacks(t *testing.T) {
	e := fpl.Element{ID: 2, WebName: "Mystery", Team: 99, ElementType: 7}

	r := BuildRecord(e, map[int]string{1: "Arsenal"}, scoring.StatMaxima{})

	assert.Equal(t, "Mystery", r.Name, "empty first name uses web name alone")
	assert.Equal(t, "Unknown", r.Team)
	assert.Equal(t, "N/A", r.Position)
}

func TestBuildRecordSetPieceTakers(t *testing.T) {
	tests := []struct {
		name    string
		order   *int
		isTaker bool
	}{
		{"nil order", nil, false},
		{"first choice", intPtr(1), true},
		{"second choice", intPtr(2), true},
		{"third choice", intPtr(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fpl.Element{PenaltiesOrder: tt.order, CornersOrder: tt.order}
			r := BuildRecord(e, nil, scoring.StatMaxima{})
			assert.Equal(t, tt.isTaker, r.PenaltyTaker)
			assert.Equal(t, tt.isTaker, r.CornersTaker)
		})
	}
}

func TestBuildRecordRotationRisk(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		minutes int
		risk    bool
	}{
		{"expensive and little played", 80, 900, true},
		{"expensive but a regular", 80, 2900, false},
		{"cheap and little played", 45, 900, false},
		{"price exactly at the threshold", 50, 900, false},
		{"minutes exactly at the threshold", 80, 1500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fpl.Element{NowCost: tt.cost, Minutes: tt.minutes}
			r := BuildRecord(e, nil, scoring.StatMaxima{})
			assert.Equal(t, tt.risk, r.RotationRisk)
		})
	}
}

func TestBuildDatasetPreservesOrder(t *testing.T) {
	snapshot := &fpl.Bootstrap{
		Teams: []fpl.Team{{ID: 1, Name: "Arsenal"}, {ID: 2, Name: "Brentford"}},
		Elements: []fpl.Element{
			{ID: 30, WebName: "Zed", Team: 2, ElementType: fpl.PositionForward},
			{ID: 10, WebName: "Abe", Team: 1, ElementType: fpl.PositionDefender},
			{ID: 20, WebName: "Mid", Team: 1, ElementType: fpl.PositionMidfielder},
		},
	}

	ds := BuildDataset(snapshot)

	require.Len(t, ds, 3)
	assert.Equal(t, []int{30, 10, 20}, []int{ds[0].ID, ds[1].ID, ds[2].ID})
	assert.Equal(t, "Brentford", ds[0].Team)
	assert.Equal(t, "FWD", ds[0].Position)
	assert.Equal(t, "DEF", ds[1].Position)
}

func TestBuildDatasetEmptyRoster(t *testing.T) {
	ds := BuildDataset(&fpl.Bootstrap{})
	assert.Empty(t, ds)
	assert.NotNil(t, ds)
}
