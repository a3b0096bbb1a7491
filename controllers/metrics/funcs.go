package metrics

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
)

// Stats - dashboard headline numbers
type Stats struct {
	TotalLeads           int64            `json:"total_leads"`
	StageCounts          map[string]int64 `json:"stage_counts"`
	ClassificationCounts map[string]int64 `json:"classification_counts"`
	RecentInteractions   int64            `json:"recent_interactions"`
	ConversionRate       float64          `json:"conversion_rate"`
	PipelineValue        float64          `json:"pipeline_value"`
}

// Forecast - estimated revenue from open and won pipeline
type Forecast struct {
	EstimatedRevenue float64          `json:"estimated_revenue"`
	BudgetBreakdown  map[string]int64 `json:"budget_breakdown"`
	Currency         string           `json:"currency"`
}

// ParseBudgetCrores - extracts a value in crores from budget copy such as
// "₹2-3 Crores", "₹5+ Crores" or "3 crores". Ranges yield their average.
func ParseBudgetCrores(budget string) (float64, bool) {

	clean := strings.ToLower(strings.ReplaceAll(budget, "₹", ""))

	if !strings.Contains(clean, "crore") {
		return 0, false
	}

	switch {
	case strings.Contains(clean, "+"):

		num, err := strconv.ParseFloat(strings.TrimSpace(strings.Split(clean, "+")[0]), 64)

		if err != nil {
			return 0, false
		}

		return num, true

	case strings.Contains(clean, "-"):

		parts := strings.SplitN(clean, "-", 2)

		start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)

		if err != nil {
			return 0, false
		}

		endFields := strings.Fields(strings.TrimSpace(parts[1]))

		if len(endFields) == 0 {
			return 0, false
		}

		end, err := strconv.ParseFloat(endFields[0], 64)

		if err != nil {
			return 0, false
		}

		return (start + end) / 2, true

	default:

		fields := strings.Fields(clean)

		if len(fields) == 0 {
			return 0, false
		}

		num, err := strconv.ParseFloat(fields[0], 64)

		if err != nil {
			return 0, false
		}

		return num, true
	}
}

// countsByColumn - GROUP BY counts for a leads column
func countsByColumn(tx *gorm.DB, column string) (map[string]int64, error) {

	rows, err := tx.Raw(`SELECT ` + column + `, COUNT(*) FROM leads GROUP BY ` + column + `;`).Rows()

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	counts := make(map[string]int64)

	for rows.Next() {

		var (
			key   string
			count int64
		)

		if err = rows.Scan(&key, &count); err != nil {
			return nil, err
		}

		counts[key] = count
	}

	return counts, nil
}

// DashboardStats - headline dashboard numbers
func DashboardStats(tx *gorm.DB) (*Stats, error) {

	stats := &Stats{}

	// total leads
	if err := tx.Raw(`SELECT COUNT(*) FROM leads;`).Row().Scan(&stats.TotalLeads); err != nil {
		return nil, err
	}

	var err error

	if stats.StageCounts, err = countsByColumn(tx, "stage"); err != nil {
		return nil, err
	}

	if stats.ClassificationCounts, err = countsByColumn(tx, "classification"); err != nil {
		return nil, err
	}

	// interactions in the last 24 hours, UTC like the stored timestamps
	since := time.Now().UTC().Add(-24 * time.Hour)

	if err = tx.Raw(`SELECT COUNT(*) FROM interactions WHERE timestamp > ?;`, since).Row().Scan(&stats.RecentInteractions); err != nil {
		return nil, err
	}

	// conversion rate over closed leads
	won := stats.StageCounts["closed_won"]
	lost := stats.StageCounts["closed_lost"]

	if closed := won + lost; closed > 0 {
		stats.ConversionRate = math.Round(float64(won)/float64(closed)*1000) / 10
	}

	// pipeline value from parseable budget ranges
	rows, err := tx.Raw(`
		SELECT budget_range
		FROM leads
		WHERE stage IN ('qualified', 'opportunity', 'closed_won')
		AND budget_range IS NOT NULL;`,
	).Rows()

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {

		var budget sql.NullString

		if err = rows.Scan(&budget); err != nil {
			return nil, err
		}

		if value, ok := ParseBudgetCrores(budget.String); ok {
			stats.PipelineValue += value
		}
	}

	return stats, nil
}

// PipelineCounts - leads per stage
func PipelineCounts(tx *gorm.DB) (map[string]int64, error) {
	return countsByColumn(tx, "stage")
}

// ForecastRevenue - estimated revenue in crores over the active pipeline
func ForecastRevenue(tx *gorm.DB) (*Forecast, error) {

	rows, err := tx.Raw(`
		SELECT budget_range, COUNT(*)
		FROM leads
		WHERE stage IN ('qualified', 'proposal', 'negotiation', 'closed_won')
		AND budget_range IS NOT NULL
		GROUP BY budget_range;`,
	).Rows()

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	forecast := &Forecast{
		BudgetBreakdown: make(map[string]int64),
		Currency:        "INR Crores",
	}

	for rows.Next() {

		var (
			budget sql.NullString
			count  int64
		)

		if err = rows.Scan(&budget, &count); err != nil {
			return nil, err
		}

		forecast.BudgetBreakdown[budget.String] = count

		if !strings.Contains(strings.ToLower(budget.String), "crore") {
			continue
		}

		value, ok := ParseBudgetCrores(budget.String)

		if !ok {
			// unparseable crore ranges still count at the default average
			value = 5.0
		}

		forecast.EstimatedRevenue += value * float64(count)
	}

	return forecast, nil
}
