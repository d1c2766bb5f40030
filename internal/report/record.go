package report

import (
	"github.com/fpltools/draftboard/internal/fpl"
	"github.com/fpltools/draftboard/internal/scoring"
)

// Rotation-risk heuristic: expensive players with low season minutes.
const (
	rotationRiskMinutes = 1500
	rotationRiskPrice   = 5.0
)

// PlayerRecord is one flattened, presentation-ready row of the report
// dataset. Field names are part of the contract with the report's client-side
// filter/sort/export code and must not change.
type PlayerRecord struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	Position        string  `json:"position"`
	Price           float64 `json:"price"`
	TotalPoints     int     `json:"total_points"`
	PPG             float64 `json:"ppg"`
	SelectedPercent float64 `json:"selected_percent"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Minutes         int     `json:"minutes"`
	XG              float64 `json:"xg"`
	XA              float64 `json:"xa"`
	BPS             int     `json:"bps"`
	ICTIndex        float64 `json:"ict_index"`
	Bonus           int     `json:"bonus"`
	CleanSheets     int     `json:"clean_sheets"`
	DraftScore      int     `json:"draft_score"`
	PenaltyTaker    bool    `json:"penalty_taker"`
	CornersTaker    bool    `json:"corners_taker"`
	RotationRisk    bool    `json:"rotation_risk"`
}

// Dataset is the ordered collection of built records handed to the
// presentation layer. Order matches the input roster.
type Dataset []PlayerRecord

// BuildRecord flattens one raw element into a presentation-ready record.
// Pure mapping: unresolvable team ids become "Unknown", unmapped position
// codes become "N/A", and every missing stat has already defaulted to zero.
func BuildRecord(e fpl.Element, teamNames map[int]string, maxima scoring.StatMaxima) PlayerRecord {
	team, ok := teamNames[e.Team]
	if !ok {
		team = "Unknown"
	}

	price := float64(e.NowCost) / 10

	return PlayerRecord{
		ID:              e.ID,
		Name:            e.DisplayName(),
		Team:            team,
		Position:        fpl.PositionLabel(e.ElementType),
		Price:           price,
		TotalPoints:     e.TotalPoints,
		PPG:             e.PointsPerGame.Float(),
		SelectedPercent: e.SelectedByPercent.Float(),
		Goals:           e.GoalsScored,
		Assists:         e.Assists,
		Minutes:         e.Minutes,
		XG:              e.ExpectedGoals.Float(),
		XA:              e.ExpectedAssists.Float(),
		BPS:             e.BPS,
		ICTIndex:        e.ICTIndex.Float(),
		Bonus:           e.Bonus,
		CleanSheets:     e.CleanSheets,
		DraftScore:      scoring.Score(e, maxima),
		PenaltyTaker:    isSetPieceTaker(e.PenaltiesOrder),
		CornersTaker:    isSetPieceTaker(e.CornersOrder),
		RotationRisk:    e.Minutes < rotationRiskMinutes && price > rotationRiskPrice,
	}
}

// BuildDataset computes the roster maxima in one pass, then flattens every
// element in a second order-preserving pass.
func BuildDataset(snapshot *fpl.Bootstrap) Dataset {
	maxima := scoring.ComputeMaxima(snapshot.Elements)
	teamNames := snapshot.TeamNames()

	records := make(Dataset, 0, len(snapshot.Elements))
	for _, e := range snapshot.Elements {
		records = append(records, BuildRecord(e, teamNames, maxima))
	}
	return records
}

// First and second in the pecking order count as takers.
func isSetPieceTaker(order *int) bool {
	return order != nil && (*order == 1 || *order == 2)
}
