package analytics

import (
	"fmt"
	"sort"
	"strings"

	"industry-flow/internal/entities"

	"github.com/shopspring/decimal"
)

const (
	unassignedKey = "unassigned"
	totalKey      = "total"
	moneyPlaces   = 2
)

var hundred = decimal.NewFromInt(100)

// Aggregate groups projects by the requested key and sums revenue and cost in the
// target currency. Projects in a currency without a rate are counted as skipped.
func Aggregate(projects []entities.Project, groupBy entities.RevenueGroupBy, target string, rates *Rates) (entities.RevenueReport, error) {
	if !groupBy.Valid() {
		return entities.RevenueReport{}, fmt.Errorf("%w: group_by %q", entities.ErrInvalidArgument, groupBy)
	}
	target = strings.ToUpper(target)
	if !rates.Has(target) {
		return entities.RevenueReport{}, fmt.Errorf("%w: %q", entities.ErrUnsupportedCurrency, target)
	}

	report := entities.RevenueReport{Currency: target, GroupBy: groupBy}
	buckets := make(map[string]*entities.RevenueBucket)
	order := make([]string, 0)

	for _, p := range projects {
		revenue, err := rates.Convert(p.Revenue, p.Currency, target)
		if err != nil {
			report.Skipped++
			continue
		}
		cost, err := rates.Convert(p.Cost, p.Currency, target)
		if err != nil {
			report.Skipped++
			continue
		}

		key := groupKey(p, groupBy)
		b, ok := buckets[key]
		if !ok {
			b = &entities.RevenueBucket{Key: key, Revenue: decimal.Zero, Cost: decimal.Zero}
			buckets[key] = b
			order = append(order, key)
		}
		b.Revenue = b.Revenue.Add(revenue)
		b.Cost = b.Cost.Add(cost)
		b.ProjectCount++
	}

	total := entities.RevenueBucket{Key: totalKey, Revenue: decimal.Zero, Cost: decimal.Zero}
	report.Buckets = make([]entities.RevenueBucket, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		total.Revenue = total.Revenue.Add(b.Revenue)
		total.Cost = total.Cost.Add(b.Cost)
		total.ProjectCount += b.ProjectCount
		report.Buckets = append(report.Buckets, finish(*b))
	}
	report.Total = finish(total)

	sortBuckets(report.Buckets, groupBy)
	return report, nil
}

func finish(b entities.RevenueBucket) entities.RevenueBucket {
	profit := b.Revenue.Sub(b.Cost)
	margin := decimal.Zero
	if !b.Revenue.IsZero() {
		margin = profit.Div(b.Revenue).Mul(hundred).Round(moneyPlaces)
	}
	b.Revenue = b.Revenue.Round(moneyPlaces)
	b.Cost = b.Cost.Round(moneyPlaces)
	b.Profit = profit.Round(moneyPlaces)
	b.Margin = margin
	return b
}

func sortBuckets(buckets []entities.RevenueBucket, groupBy entities.RevenueGroupBy) {
	if groupBy == entities.GroupByMonth {
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Key < buckets[j].Key
		})
		return
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if c := buckets[i].Revenue.Cmp(buckets[j].Revenue); c != 0 {
			return c > 0
		}
		return buckets[i].Key < buckets[j].Key
	})
}

func groupKey(p entities.Project, groupBy entities.RevenueGroupBy) string {
	var key string
	switch groupBy {
	case entities.GroupBySector:
		key = p.Sector
	case entities.GroupByClient:
		key = p.Client
	case entities.GroupByStage:
		key = string(p.Stage)
	case entities.GroupByStatus:
		key = string(p.Status)
	case entities.GroupByManager:
		if p.ManagerID != nil {
			key = *p.ManagerID
		}
	case entities.GroupByMonth:
		if p.StartDate != nil {
			key = p.StartDate.Format("2006-01")
		} else if !p.CreatedAt.IsZero() {
			key = p.CreatedAt.Format("2006-01")
		}
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return unassignedKey
	}
	return key
}
