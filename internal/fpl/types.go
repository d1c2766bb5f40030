package fpl

import (
	"bytes"
	"strconv"
	"time"
)

// Bootstrap is the season snapshot payload from the FPL bootstrap-static
// endpoint. Only the two collections the draft board consumes are decoded;
// unknown keys are ignored.
type Bootstrap struct {
	Teams    []Team    `json:"teams"`
	Elements []Element `json:"elements"`
}

// Team is an id/name pair used to resolve Element.Team references.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Position codes used by element_type.
const (
	PositionGoalkeeper = 1
	PositionDefender   = 2
	PositionMidfielder = 3
	PositionForward    = 4
)

// positionLabels maps element_type codes to display labels.
var positionLabels = map[int]string{
	PositionGoalkeeper: "GKP",
	PositionDefender:   "DEF",
	PositionMidfielder: "MID",
	PositionForward:    "FWD",
}

// PositionLabel resolves an element_type code to its display label,
// or "N/A" for codes outside 1-4.
func PositionLabel(elementType int) string {
	if label, ok := positionLabels[elementType]; ok {
		return label
	}
	return "N/A"
}

// Element is a single player row from the snapshot. Every field is optional
// upstream; absent fields decode to their zero value so a sparse snapshot
// never fails.
type Element struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`

	NowCost       int `json:"now_cost"`
	Minutes       int `json:"minutes"`
	TotalPoints   int `json:"total_points"`
	GoalsScored   int `json:"goals_scored"`
	Assists       int `json:"assists"`
	GoalsConceded int `json:"goals_conceded"`
	Saves         int `json:"saves"`
	CleanSheets   int `json:"clean_sheets"`
	Bonus         int `json:"bonus"`
	BPS           int `json:"bps"`

	// Set-piece orders are null for players with no duty.
	PenaltiesOrder *int `json:"penalties_order"`
	CornersOrder   *int `json:"corners_and_indirect_freekicks_order"`

	// The FPL API serializes these as strings ("4.5").
	PointsPerGame         FloatString `json:"points_per_game"`
	SelectedByPercent     FloatString `json:"selected_by_percent"`
	ICTIndex              FloatString `json:"ict_index"`
	ExpectedGoals         FloatString `json:"expected_goals"`
	ExpectedAssists       FloatString `json:"expected_assists"`
	ExpectedGoalsConceded FloatString `json:"expected_goals_conceded"`
}

// DisplayName joins first name and web name the way the report shows players.
func (e Element) DisplayName() string {
	if e.FirstName == "" {
		return e.WebName
	}
	return e.FirstName + " " + e.WebName
}

// FloatString is a float64 that tolerates the FPL API's string-typed numbers.
// It decodes from JSON strings, raw numbers, or null; empty or malformed
// input defaults to 0 rather than failing the decode.
type FloatString float64

func (f *FloatString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FloatString(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FloatString(v)
	return nil
}

func (f FloatString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Float returns the value as a plain float64.
func (f FloatString) Float() float64 {
	return float64(f)
}

// TeamNames builds the id -> name lookup used when flattening elements.
func (b *Bootstrap) TeamNames() map[int]string {
	names := make(map[int]string, len(b.Teams))
	for _, t := range b.Teams {
		names[t.ID] = t.Name
	}
	return names
}

// CacheProvider is the minimal cache surface the snapshot client needs.
type CacheProvider interface {
	SetSimple(key string, value interface{}, expiration time.Duration) error
	GetSimple(key string, dest interface{}) error
}
