package dashboard

import (
	"context"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/domain/report"
	"github.com/BruksfildServices01/sales-crm/internal/timezone"
)

// RangeInput holds the raw from/to query values.
type RangeInput struct {
	From string
	To   string
}

func filterFor(actor access.Actor, in RangeInput) (report.Filter, error) {
	created, err := timezone.ParseRange(in.From, in.To)
	if err != nil {
		return report.Filter{}, err
	}
	return report.Filter{
		ScopeOwnerID: access.ListOwnerFilter(actor),
		Created:      created,
	}, nil
}

// ======================================================
// SUMMARY
// ======================================================

type Summary struct {
	repo report.Repository
}

func NewSummary(repo report.Repository) *Summary {
	return &Summary{repo: repo}
}

func (uc *Summary) Execute(
	ctx context.Context,
	actor access.Actor,
	in RangeInput,
) (report.Summary, error) {

	f, err := filterFor(actor, in)
	if err != nil {
		return report.Summary{}, err
	}

	byStatus, err := uc.repo.CountLeadsByStatus(ctx, f)
	if err != nil {
		return report.Summary{}, err
	}
	revenue, sales, err := uc.repo.SaleTotals(ctx, f)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Summarize(byStatus, revenue, sales), nil
}

// ======================================================
// FUNNEL
// ======================================================

type Funnel struct {
	repo report.Repository
}

func NewFunnel(repo report.Repository) *Funnel {
	return &Funnel{repo: repo}
}

func (uc *Funnel) Execute(
	ctx context.Context,
	actor access.Actor,
	in RangeInput,
) ([]report.FunnelRow, error) {

	f, err := filterFor(actor, in)
	if err != nil {
		return nil, err
	}

	stages, err := uc.repo.ListStages(ctx)
	if err != nil {
		return nil, err
	}
	byStage, err := uc.repo.CountLeadsByStage(ctx, f)
	if err != nil {
		return nil, err
	}

	return report.BuildFunnel(stages, byStage), nil
}

// ======================================================
// TIME SERIES
// ======================================================

type TimeSeries struct {
	repo report.Repository
}

func NewTimeSeries(repo report.Repository) *TimeSeries {
	return &TimeSeries{repo: repo}
}

func (uc *TimeSeries) Execute(
	ctx context.Context,
	actor access.Actor,
	in RangeInput,
) ([]report.DayPoint, error) {

	f, err := filterFor(actor, in)
	if err != nil {
		return nil, err
	}

	leads, err := uc.repo.LeadPoints(ctx, f)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.SalePoints(ctx, f)
	if err != nil {
		return nil, err
	}

	return report.BuildTimeSeries(leads, sales), nil
}
