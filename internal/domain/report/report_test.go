package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

func TestSummarizeEmptyScope(t *testing.T) {
	s := Summarize(map[lead.Status]int64{}, 0, 0)

	assert.Equal(t, int64(0), s.Total)
	assert.Equal(t, 0.0, s.Conversion)
	assert.False(t, math.IsNaN(s.Conversion))
	assert.Equal(t, int64(0), s.AvgTicketCents)
}

func TestSummarize(t *testing.T) {
	s := Summarize(map[lead.Status]int64{
		lead.StatusOpen:   5,
		lead.StatusClosed: 2,
		lead.StatusSold:   3,
	}, 10001, 3)

	assert.Equal(t, int64(10), s.Total)
	assert.Equal(t, int64(5), s.Open)
	assert.Equal(t, int64(2), s.Closed)
	assert.Equal(t, int64(3), s.Sold)
	assert.Equal(t, int64(10001), s.RevenueCents)
	assert.Equal(t, int64(3334), s.AvgTicketCents)
	assert.InDelta(t, 0.3, s.Conversion, 1e-9)
}

func TestSummarizeRoundsHalfUp(t *testing.T) {
	s := Summarize(map[lead.Status]int64{lead.StatusSold: 2}, 301, 2)
	assert.Equal(t, int64(151), s.AvgTicketCents)
}

func TestBuildFunnelKeepsStageOrderAndEmptyStages(t *testing.T) {
	stages := []models.Stage{
		{ID: "c", Name: "Fechados", Order: 5, IsClosed: true},
		{ID: "a", Name: "Novo", Order: 1},
		{ID: "b", Name: "Contato", Order: 2},
	}

	rows := BuildFunnel(stages, map[string]int64{"a": 4, "c": 1})

	assert.Equal(t, []FunnelRow{
		{StageID: "a", Name: "Novo", Order: 1, Count: 4},
		{StageID: "b", Name: "Contato", Order: 2, Count: 0},
		{StageID: "c", Name: "Fechados", Order: 5, IsClosed: true, Count: 1},
	}, rows)
	assert.Equal(t, "c", stages[0].ID, "input must not be reordered")
}

func TestBuildTimeSeriesIsSparseAndSorted(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2024, 5, d, h, 0, 0, 0, time.UTC) }

	series := BuildTimeSeries(
		[]LeadPoint{
			{CreatedAt: day(3, 9), Status: "OPEN"},
			{CreatedAt: day(1, 9), Status: "SOLD"},
			{CreatedAt: day(1, 18), Status: "CLOSED"},
		},
		[]SalePoint{
			// revenue lands on the sale's day, not the lead's
			{CreatedAt: day(5, 12), AmountCents: 15000},
			{CreatedAt: day(1, 20), AmountCents: 500},
		},
	)

	assert.Equal(t, []DayPoint{
		{Day: "2024-05-01", Leads: 2, Sold: 1, RevenueCents: 500},
		{Day: "2024-05-03", Leads: 1},
		{Day: "2024-05-05", RevenueCents: 15000},
	}, series)
}

func TestBuildTimeSeriesEmpty(t *testing.T) {
	series := BuildTimeSeries(nil, nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}
