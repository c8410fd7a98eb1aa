package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/lead"
	"github.com/BruksfildServices01/sales-crm/internal/domain/report"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/models"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountLeadsByStatus(ctx context.Context, f report.Filter) (map[lead.Status]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[lead.Status]int64), args.Error(1)
}

func (m *MockReportRepository) SaleTotals(ctx context.Context, f report.Filter) (int64, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) CountLeadsByStage(ctx context.Context, f report.Filter) (map[string]int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockReportRepository) ListStages(ctx context.Context) ([]models.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stage), args.Error(1)
}

func (m *MockReportRepository) LeadPoints(ctx context.Context, f report.Filter) ([]report.LeadPoint, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.LeadPoint), args.Error(1)
}

func (m *MockReportRepository) SalePoints(ctx context.Context, f report.Filter) ([]report.SalePoint, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SalePoint), args.Error(1)
}

var (
	agent = access.Actor{ID: "agent-1", Role: access.RoleAgent, LeadScope: access.ScopeOwn}
	admin = access.Actor{ID: "admin-1", Role: access.RoleAdmin, LeadScope: access.ScopeAll}
)

func TestSummaryScopesToOwner(t *testing.T) {
	repo := new(MockReportRepository)
	ownOnly := mock.MatchedBy(func(f report.Filter) bool {
		return f.ScopeOwnerID == "agent-1" && f.Created.From != nil && f.Created.To == nil
	})

	repo.On("CountLeadsByStatus", mock.Anything, ownOnly).
		Return(map[lead.Status]int64{lead.StatusOpen: 2, lead.StatusClosed: 1, lead.StatusSold: 1}, nil)
	repo.On("SaleTotals", mock.Anything, ownOnly).Return(int64(15000), int64(1), nil)

	s, err := NewSummary(repo).Execute(context.Background(), agent, RangeInput{From: "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), s.Total)
	assert.Equal(t, int64(15000), s.RevenueCents)
	assert.Equal(t, int64(15000), s.AvgTicketCents)
	assert.InDelta(t, 0.25, s.Conversion, 1e-9)
	repo.AssertExpectations(t)
}

func TestSummaryRejectsBadRange(t *testing.T) {
	repo := new(MockReportRepository)

	_, err := NewSummary(repo).Execute(context.Background(), admin, RangeInput{To: "31/12/2024"})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	repo.AssertNotCalled(t, "CountLeadsByStatus", mock.Anything, mock.Anything)
}

func TestSummaryPropagatesErrors(t *testing.T) {
	repo := new(MockReportRepository)
	repo.On("CountLeadsByStatus", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewSummary(repo).Execute(context.Background(), admin, RangeInput{})
	assert.EqualError(t, err, "db down")
}

func TestFunnelOrdersStages(t *testing.T) {
	repo := new(MockReportRepository)
	allLeads := mock.MatchedBy(func(f report.Filter) bool { return f.ScopeOwnerID == "" })

	repo.On("ListStages", mock.Anything).Return([]models.Stage{
		{ID: "s5", Name: "Fechados", Order: 5, IsClosed: true},
		{ID: "s1", Name: "Novo", Order: 1},
	}, nil)
	repo.On("CountLeadsByStage", mock.Anything, allLeads).Return(map[string]int64{"s1": 3}, nil)

	rows, err := NewFunnel(repo).Execute(context.Background(), admin, RangeInput{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[0].StageID)
	assert.Equal(t, int64(3), rows[0].Count)
	assert.Equal(t, int64(0), rows[1].Count)
	assert.True(t, rows[1].IsClosed)
}

func TestTimeSeriesIsSparse(t *testing.T) {
	repo := new(MockReportRepository)
	day1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC)

	repo.On("LeadPoints", mock.Anything, mock.Anything).Return([]report.LeadPoint{
		{CreatedAt: day1, Status: "SOLD"},
		{CreatedAt: day1, Status: "OPEN"},
	}, nil)
	repo.On("SalePoints", mock.Anything, mock.Anything).Return([]report.SalePoint{
		{CreatedAt: day3, AmountCents: 15000},
	}, nil)

	series, err := NewTimeSeries(repo).Execute(context.Background(), agent, RangeInput{})
	require.NoError(t, err)
	assert.Equal(t, []report.DayPoint{
		{Day: "2024-05-01", Leads: 2, Sold: 1},
		{Day: "2024-05-03", RevenueCents: 15000},
	}, series)
}
