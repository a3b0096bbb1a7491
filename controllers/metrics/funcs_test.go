package metrics

import (
	"testing"

	"privacyguard/data"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetCrores(t *testing.T) {

	tests := []struct {
		budget string
		want   float64
		ok     bool
	}{
		{"₹2-3 Crores", 2.5, true},
		{"₹8-10 Crores", 9, true},
		{"₹5+ Crores", 5, true},
		{"3 crores", 3, true},
		{"₹50 Lakhs", 0, false},
		{"undisclosed", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {

			got, ok := ParseBudgetCrores(tt.budget)

			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func newTestDB(t *testing.T) *gorm.DB {

	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")

	require.NoError(t, err)

	db.LogMode(false)

	require.NoError(t, data.InitSchema(db))

	t.Cleanup(func() { db.Close() })

	return db
}

func seedLead(t *testing.T, db *gorm.DB, workflowID, budget, classification, stage string) {

	t.Helper()

	require.NoError(t, db.Exec(`
		INSERT INTO leads (workflow_id, name, phone, email, source, budget_range, classification, stage)
		VALUES (?, 'Test Lead', '+910000000000', 'lead@example.com', 'website_form', ?, ?, ?);`,
		workflowID, budget, classification, stage,
	).Error)
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {

	db := newTestDB(t)

	stats, err := DashboardStats(db)

	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalLeads)
	assert.Empty(t, stats.StageCounts)
	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.PipelineValue)
}

func TestDashboardStats(t *testing.T) {

	db := newTestDB(t)

	seedLead(t, db, "wf_m1", "₹8-10 Crores", "hot_lead", "closed_won")
	seedLead(t, db, "wf_m2", "₹2-3 Crores", "warm_prospect", "qualified")
	seedLead(t, db, "wf_m3", "₹50 Lakhs", "cold_lead", "closed_lost")

	stats, err := DashboardStats(db)

	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalLeads)
	assert.EqualValues(t, 1, stats.StageCounts["closed_won"])
	assert.EqualValues(t, 1, stats.ClassificationCounts["hot_lead"])

	// one of two closed deals won
	assert.InDelta(t, 50.0, stats.ConversionRate, 0.001)

	// 9 from the won deal plus 2.5 from the qualified one, lakhs not counted
	assert.InDelta(t, 11.5, stats.PipelineValue, 0.001)
}

func TestForecastRevenue(t *testing.T) {

	db := newTestDB(t)

	seedLead(t, db, "wf_f1", "₹8-10 Crores", "hot_lead", "negotiation")
	seedLead(t, db, "wf_f2", "₹8-10 Crores", "hot_lead", "closed_won")
	seedLead(t, db, "wf_f3", "₹2-3 Crores", "warm_prospect", "qualified")
	seedLead(t, db, "wf_f4", "₹2-3 Crores", "warm_prospect", "new")

	forecast, err := ForecastRevenue(db)

	require.NoError(t, err)

	assert.Equal(t, "INR Crores", forecast.Currency)
	assert.EqualValues(t, 2, forecast.BudgetBreakdown["₹8-10 Crores"])
	assert.EqualValues(t, 1, forecast.BudgetBreakdown["₹2-3 Crores"])

	// two 9-crore deals plus one 2.5-crore deal, the new lead is out of scope
	assert.InDelta(t, 20.5, forecast.EstimatedRevenue, 0.001)
}
