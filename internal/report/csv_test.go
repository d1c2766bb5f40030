package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	ds := Dataset{
		{
			ID: 1, Name: "Son, Heung-min", Team: "Spurs", Position: "MID",
			Price: 9.8, TotalPoints: 160, PPG: 4.8, SelectedPercent: 25.5,
			Goals: 10, Assists: 6, Minutes: 2700, XG: 8.25, XA: 5.5,
			BPS: 520, ICTIndex: 250.3, Bonus: 18, CleanSheets: 8,
			DraftScore: 74, PenaltyTaker: true,
		},
		{ID: 2, Name: "Backup Keeper", Team: "Burnley", Position: "GKP", Price: 4.0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "output leads with a UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	for _, row := range rows {
		assert.Len(t, row, 18)
	}

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Son Heung-min", first[1], "commas in names are stripped")
	assert.Equal(t, "74", first[2])
	assert.Equal(t, "Spurs", first[3])
	assert.Equal(t, "MID", first[4])
	assert.Equal(t, "9.8", first[5])
	assert.Equal(t, "160", first[6])
	assert.Equal(t, "4.8", first[7])
	assert.Equal(t, "25.5", first[8])
	assert.Equal(t, "16", first[9])
	assert.Equal(t, "13.75", first[10])
	assert.Equal(t, "2700", first[11])
	assert.Equal(t, "2.25", first[12])
	assert.Equal(t, "520", first[13])
	assert.Equal(t, "250.3", first[14])
	assert.Equal(t, "18", first[15])
	assert.Equal(t, "8", first[16])
	assert.Equal(t, "Penalty taker, Overperforming xG, Bonus magnet", first[17])

	second := rows[2]
	assert.Equal(t, "2", second[0])
	assert.Equal(t, "Backup Keeper", second[1])
	assert.Equal(t, "0.00", second[10])
	assert.Equal(t, "Differential", second[17])
}

func TestWriteCSVEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, csvHeader, rows[0])
}
