package domain

import (
	"context"
	"fmt"

	"industry-flow/internal/analytics"
	"industry-flow/internal/entities"
)

// Revenue aggregates project revenue and cost in one currency.
func (u *Usecase) Revenue(ctx context.Context, p entities.Principal, q entities.RevenueQuery) (entities.RevenueReport, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermAnalyticsView); err != nil {
		return entities.RevenueReport{}, err
	}
	if q.GroupBy == "" {
		q.GroupBy = entities.GroupBySector
	}
	if !q.GroupBy.Valid() {
		return entities.RevenueReport{}, fmt.Errorf("%w: unknown group_by %q", entities.ErrInvalidArgument, q.GroupBy)
	}
	if q.Currency == "" {
		q.Currency = u.defaultCurrency
	}
	if u.rates == nil {
		return entities.RevenueReport{}, fmt.Errorf("%w: no exchange rates configured", entities.ErrUnsupportedCurrency)
	}
	if err := validateProjectFilter(q.Filter); err != nil {
		return entities.RevenueReport{}, err
	}

	projects, err := u.repo.ProjectsForRevenue(ctx, q.Filter)
	if err != nil {
		return entities.RevenueReport{}, err
	}

	report, err := analytics.Aggregate(projects, q.GroupBy, q.Currency, u.rates)
	if err != nil {
		return entities.RevenueReport{}, err
	}
	if report.Skipped > 0 {
		u.log.Warnw("projects skipped in revenue report", "skipped", report.Skipped, "currency", report.Currency)
	}
	return report, nil
}

// Summary returns dashboard counters.
func (u *Usecase) Summary(ctx context.Context, p entities.Principal) (entities.DashboardSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := authorize(p, entities.PermProjectView); err != nil {
		return entities.DashboardSummary{}, err
	}
	return u.repo.DashboardSummary(ctx, u.now())
}

// PipelineStages returns the ordered pipeline.
func (u *Usecase) PipelineStages() []entities.PipelineStage {
	return entities.PipelineStages()
}

// Currencies returns the currencies with a known exchange rate.
func (u *Usecase) Currencies() []string {
	if u.rates == nil {
		return []string{}
	}
	return u.rates.Supported()
}
