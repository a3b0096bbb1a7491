package jobs

import (
	"testing"
	"time"

	"privacyguard/data"
	"privacyguard/log"
	"privacyguard/mailer"
	"privacyguard/models"
	"privacyguard/models/constants/pipeline"
	"privacyguard/workflow"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) (*CronJob, *gorm.DB) {

	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")

	require.NoError(t, err)

	db.LogMode(false)

	require.NoError(t, data.InitSchema(db))

	t.Cleanup(func() { db.Close() })

	return &CronJob{DB: db, Logger: log.GetLogger(), Mail: mailer.NewMailer()}, db
}

func seedAction(t *testing.T, db *gorm.DB, action string, when time.Time, status string) int64 {

	t.Helper()

	leadID, err := workflow.InsertLead(db, "wf_job_"+action, models.LeadData{
		Name:        "Test Lead",
		Phone:       "+910000000000",
		Email:       "lead@example.com",
		Source:      "website_form",
		Interest:    "Bentley Continental GT",
		BudgetRange: "₹2-3 Crores",
	}, 60, string(pipeline.WARM))

	require.NoError(t, err)
	require.NoError(t, workflow.ScheduleAction(db, leadID, action, when, status))

	return leadID
}

func actionStatus(t *testing.T, db *gorm.DB, leadID int64) string {

	t.Helper()

	var status string

	require.NoError(t, db.Raw(
		`SELECT status FROM scheduled_actions WHERE lead_id = ?;`, leadID,
	).Row().Scan(&status))

	return status
}

func TestDispatchDueCallAction(t *testing.T) {

	job, db := newTestJob(t)

	leadID := seedAction(t, db, "qualification_call_in_4h", time.Now().Add(-time.Hour), "pending")

	job.DispatchDue()

	// call actions land on the callbacks board
	assert.Equal(t, "due", actionStatus(t, db, leadID))

	var logged int64
	require.NoError(t, db.Raw(
		`SELECT COUNT(*) FROM interactions WHERE lead_id = ? AND status = 'due';`, leadID,
	).Row().Scan(&logged))
	assert.EqualValues(t, 1, logged)
}

func TestDispatchDueHandlesZonedSchedules(t *testing.T) {

	job, db := newTestJob(t)

	// wall-clock ahead of UTC; a naive comparison would sit on this for
	// another five and a half hours
	ist := time.FixedZone("IST", 5*3600+30*60)

	leadID := seedAction(t, db, "qualification_call_in_4h", time.Now().In(ist).Add(-time.Hour), "pending")

	job.DispatchDue()

	assert.Equal(t, "due", actionStatus(t, db, leadID))
}

func TestDispatchDueSkipsFuture(t *testing.T) {

	job, db := newTestJob(t)

	leadID := seedAction(t, db, "qualification_call_in_4h", time.Now().Add(48*time.Hour), "pending")

	job.DispatchDue()

	assert.Equal(t, "pending", actionStatus(t, db, leadID))
}

func TestDispatchDueUnknownAction(t *testing.T) {

	job, db := newTestJob(t)

	leadID := seedAction(t, db, "bespoke_configuration_session", time.Now().Add(-time.Hour), "pending")

	job.DispatchDue()

	assert.Equal(t, "executed", actionStatus(t, db, leadID))
}

func TestDispatchDueEmailFailureReleasesAction(t *testing.T) {

	job, db := newTestJob(t)

	// smtp credentials are absent so the send fails
	leadID := seedAction(t, db, "followup_email_in_1_day", time.Now().Add(-time.Hour), "pending")

	job.DispatchDue()

	assert.Equal(t, "pending", actionStatus(t, db, leadID))
}

func TestExpireStale(t *testing.T) {

	job, db := newTestJob(t)

	stale := seedAction(t, db, "qualification_call_old", time.Now().Add(-10*24*time.Hour), "due")
	fresh := seedAction(t, db, "qualification_call_new", time.Now().Add(-time.Hour), "due")

	job.ExpireStale()

	assert.Equal(t, "expired", actionStatus(t, db, stale))
	assert.Equal(t, "due", actionStatus(t, db, fresh))
}
