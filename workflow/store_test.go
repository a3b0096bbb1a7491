package workflow

import (
	"testing"
	"time"

	"privacyguard/models/constants/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndUpdateLead(t *testing.T) {

	db := newTestDB(t)

	leadID, err := InsertLead(db, "wf_store_1", sampleLead, 85, string(pipeline.HOT))

	require.NoError(t, err)
	assert.Greater(t, leadID, int64(0))

	// duplicate workflow ids are rejected
	_, err = InsertLead(db, "wf_store_1", sampleLead, 85, string(pipeline.HOT))
	assert.Error(t, err)

	require.NoError(t, UpdateLead(db, leadID, map[string]interface{}{
		"stage":          string(pipeline.QUALIFIED),
		"classification": string(pipeline.VIP),
	}))

	var (
		stage          string
		classification string
	)

	require.NoError(t, db.Raw(
		`SELECT stage, classification FROM leads WHERE id = ?;`, leadID,
	).Row().Scan(&stage, &classification))

	assert.Equal(t, string(pipeline.QUALIFIED), stage)
	assert.Equal(t, string(pipeline.VIP), classification)
}

func TestUpdateLeadNoFields(t *testing.T) {

	db := newTestDB(t)

	assert.Error(t, UpdateLead(db, 1, nil))
}

func TestLogInteraction(t *testing.T) {

	db := newTestDB(t)

	leadID, err := InsertLead(db, "wf_store_2", sampleLead, 60, string(pipeline.WARM))
	require.NoError(t, err)

	require.NoError(t, LogInteraction(db, leadID, pipeline.Email, "send_welcome_email", "executed",
		map[string]interface{}{"template": "standard_welcome"}))

	var details string

	require.NoError(t, db.Raw(
		`SELECT details FROM interactions WHERE lead_id = ?;`, leadID,
	).Row().Scan(&details))

	assert.JSONEq(t, `{"template": "standard_welcome"}`, details)
}

func TestScheduleAction(t *testing.T) {

	db := newTestDB(t)

	leadID, err := InsertLead(db, "wf_store_3", sampleLead, 60, string(pipeline.WARM))
	require.NoError(t, err)

	// a zoned wall-clock time must land as the same instant
	ist := time.FixedZone("IST", 5*3600+30*60)

	when := time.Now().In(ist).Add(4 * time.Hour)

	require.NoError(t, ScheduleAction(db, leadID, "qualification_call", when, ""))

	var (
		status string
		stored time.Time
	)

	require.NoError(t, db.Raw(
		`SELECT status, scheduled_for FROM scheduled_actions WHERE lead_id = ?;`, leadID,
	).Row().Scan(&status, &stored))

	// empty status defaults to pending
	assert.Equal(t, "pending", status)
	assert.WithinDuration(t, when, stored, time.Second)
}
