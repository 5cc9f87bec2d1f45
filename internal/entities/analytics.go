package entities

import "github.com/shopspring/decimal"

// RevenueGroupBy selects the aggregation key of the revenue report.
type RevenueGroupBy string

const (
	GroupBySector  RevenueGroupBy = "sector"
	GroupByClient  RevenueGroupBy = "client"
	GroupByStage   RevenueGroupBy = "stage"
	GroupByStatus  RevenueGroupBy = "status"
	GroupByMonth   RevenueGroupBy = "month"
	GroupByManager RevenueGroupBy = "manager"
)

// Valid reports whether g is a known key.
func (g RevenueGroupBy) Valid() bool {
	switch g {
	case GroupBySector, GroupByClient, GroupByStage, GroupByStatus, GroupByMonth, GroupByManager:
		return true
	}
	return false
}

// RevenueQuery selects the projects and shape of a revenue report.
type RevenueQuery struct {
	GroupBy  RevenueGroupBy
	Currency string
	Filter   ProjectFilter
}

// RevenueBucket holds totals for one group key.
type RevenueBucket struct {
	Key          string          `json:"key"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	Margin       decimal.Decimal `json:"margin"`
	ProjectCount int             `json:"project_count"`
}

// RevenueReport is the result of a revenue aggregation.
type RevenueReport struct {
	Currency string          `json:"currency"`
	GroupBy  RevenueGroupBy  `json:"group_by"`
	Buckets  []RevenueBucket `json:"buckets"`
	Total    RevenueBucket   `json:"total"`
	Skipped  int             `json:"skipped"`
}

// CountStat is a labelled counter.
type CountStat struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DashboardSummary aggregates counters for the dashboard cards.
type DashboardSummary struct {
	ProjectsByStatus []CountStat `json:"projects_by_status"`
	ProjectsByStage  []CountStat `json:"projects_by_stage"`
	TasksByStatus    []CountStat `json:"tasks_by_status"`
	OverdueTasks     int64       `json:"overdue_tasks"`
	ActiveMembers    int64       `json:"active_members"`
}
