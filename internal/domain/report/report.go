package report

import (
	"math"
	"sort"
	"time"

	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/models"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

// Filter narrows every aggregate to the caller's visible leads created in
// the range.
type Filter struct {
	ScopeOwnerID string
	Created      timezone.Range
}

type Summary struct {
	Total          int64   `json:"total"`
	Open           int64   `json:"open"`
	Closed         int64   `json:"closed"`
	Sold           int64   `json:"sold"`
	RevenueCents   int64   `json:"revenue_cents"`
	AvgTicketCents int64   `json:"avg_ticket_cents"`
	Conversion     float64 `json:"conversion"`
}

// Summarize builds the KPI block. Conversion is sold/total and 0 when there
// are no leads; the average ticket is rounded to the nearest cent.
func Summarize(byStatus map[lead.Status]int64, revenueCents, saleCount int64) Summary {
	s := Summary{
		Open:         byStatus[lead.StatusOpen],
		Closed:       byStatus[lead.StatusClosed],
		Sold:         byStatus[lead.StatusSold],
		RevenueCents: revenueCents,
	}
	for _, n := range byStatus {
		s.Total += n
	}

	if saleCount > 0 {
		s.AvgTicketCents = int64(math.Round(float64(revenueCents) / float64(saleCount)))
	}
	if s.Total > 0 {
		s.Conversion = float64(s.Sold) / float64(s.Total)
	}
	return s
}

type FunnelRow struct {
	StageID  string `json:"stage_id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
	IsClosed bool   `json:"is_closed"`
	Count    int64  `json:"count"`
}

// BuildFunnel returns one row per stage in pipeline order, including stages
// with no leads.
func BuildFunnel(stages []models.Stage, byStage map[string]int64) []FunnelRow {
	ordered := make([]models.Stage, len(stages))
	copy(ordered, stages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	rows := make([]FunnelRow, 0, len(ordered))
	for _, s := range ordered {
		rows = append(rows, FunnelRow{
			StageID:  s.ID,
			Name:     s.Name,
			Order:    s.Order,
			IsClosed: s.IsClosed,
			Count:    byStage[s.ID],
		})
	}
	return rows
}

type LeadPoint struct {
	CreatedAt time.Time
	Status    string
}

type SalePoint struct {
	CreatedAt   time.Time
	AmountCents int64
}

type DayPoint struct {
	Day          string `json:"day"`
	Leads        int64  `json:"leads"`
	Sold         int64  `json:"sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

// BuildTimeSeries groups leads by their creation day and revenue by the
// sale's own creation day. Days without activity are left out.
func BuildTimeSeries(leads []LeadPoint, sales []SalePoint) []DayPoint {
	byDay := map[string]*DayPoint{}
	get := func(t time.Time) *DayPoint {
		k := timezone.DayKey(t)
		p, ok := byDay[k]
		if !ok {
			p = &DayPoint{Day: k}
			byDay[k] = p
		}
		return p
	}

	for _, l := range leads {
		p := get(l.CreatedAt)
		p.Leads++
		if lead.Status(l.Status) == lead.StatusSold {
			p.Sold++
		}
	}
	for _, s := range sales {
		get(s.CreatedAt).RevenueCents += s.AmountCents
	}

	out := make([]DayPoint, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
