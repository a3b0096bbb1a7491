package workflow

import (
	"errors"
	"testing"

	"privacyguard/data"
	"privacyguard/llm"
	"privacyguard/log"
	"privacyguard/mailer"
	"privacyguard/models"
	"privacyguard/models/constants/pipeline"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScorer struct {
	score int
}

func (f *fakeScorer) ScoreLead(budgetRange, vehicle, source string) int { return f.score }

func (f *fakeScorer) WelcomeEmail(name, vehicle string) string { return "welcome " + name }

func (f *fakeScorer) SuggestFollowups(classification string) []string {
	return llm.DefaultFollowups(classification)
}

type sentMail struct {
	to          string
	subject     string
	attachments []mailer.Attachment
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(to, subject, body, htmlBody string, attachments []mailer.Attachment) error {

	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, sentMail{to: to, subject: subject, attachments: attachments})

	return nil
}

type fakeDialer struct {
	calls []string
}

func (f *fakeDialer) Initiate(provider, toPhone, callerID string, payload map[string]interface{}) (map[string]interface{}, error) {
	f.calls = append(f.calls, toPhone)
	return map[string]interface{}{"id": "call-1"}, nil
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

func newTestEngine(t *testing.T, score int, mail *fakeSender) (*Engine, *gorm.DB) {

	db := newTestDB(t)

	engine := &Engine{
		DB:     db,
		Logger: log.GetLogger(),
		Config: viper.New(),
		LLM:    &fakeScorer{score: score},
		Mail:   mail,
		Dialer: &fakeDialer{},
	}

	return engine, db
}

var sampleLead = models.LeadData{
	Name:        "Rajesh Sharma",
	Phone:       "+919876543210",
	Email:       "rajesh@example.com",
	Source:      "website_form",
	Interest:    "Rolls-Royce Phantom",
	BudgetRange: "₹8-10 Crores",
}

func TestRunHotLead(t *testing.T) {

	mail := &fakeSender{}

	engine, db := newTestEngine(t, 85, mail)

	result := engine.Run("wf_test_hot", "new_lead", sampleLead)

	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, 85, result.LeadScore)
	assert.Equal(t, string(pipeline.HOT), result.Classification)
	assert.Equal(t, string(pipeline.OPPORTUNITY), result.LeadStage)
	assert.Len(t, result.ExecutedAgents, 6)
	// single hot lead pushes the raw estimate past the ceiling
	assert.InDelta(t, 0.95, result.EstimatedConversionProbability, 0.001)

	// hot plan has three follow-ups
	assert.Equal(t, llm.DefaultFollowups(string(pipeline.HOT)), result.NextActions)

	// lead persisted with the final stage
	var stage string
	require.NoError(t, db.Raw(`SELECT stage FROM leads WHERE workflow_id = ?;`, "wf_test_hot").Row().Scan(&stage))
	assert.Equal(t, string(pipeline.OPPORTUNITY), stage)

	// qualification call plus three follow-ups
	var scheduled int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM scheduled_actions;`).Row().Scan(&scheduled))
	assert.EqualValues(t, 4, scheduled)

	// welcome mail and document mail with both pdfs attached
	require.Len(t, mail.sent, 2)
	assert.Len(t, mail.sent[1].attachments, 2)
}

func TestRunColdLead(t *testing.T) {

	mail := &fakeSender{}

	engine, db := newTestEngine(t, 30, mail)

	result := engine.Run("wf_test_cold", "new_lead", sampleLead)

	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, string(pipeline.COLD), result.Classification)
	assert.Equal(t, string(pipeline.QUALIFIED), result.LeadStage)

	// cold plan is the weekly nurture sequence
	assert.Equal(t, llm.DefaultFollowups(string(pipeline.COLD)), result.NextActions)

	// no documents yet, generation deferred
	var deferred int64
	require.NoError(t, db.Raw(
		`SELECT COUNT(*) FROM scheduled_actions WHERE action_name = 'document_generation';`,
	).Row().Scan(&deferred))
	assert.EqualValues(t, 1, deferred)

	// only the welcome mail went out
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "rajesh@example.com", mail.sent[0].to)
}

func TestRunExistingCustomerBecomesVIP(t *testing.T) {

	mail := &fakeSender{}

	engine, db := newTestEngine(t, 60, mail)

	lead := sampleLead
	lead.ExistingCustomer = true

	result := engine.Run("wf_test_vip", "new_lead", lead)

	assert.Equal(t, string(pipeline.VIP), result.Classification)

	var classification string
	require.NoError(t, db.Raw(
		`SELECT classification FROM leads WHERE workflow_id = ?;`, "wf_test_vip",
	).Row().Scan(&classification))
	assert.Equal(t, string(pipeline.VIP), classification)

	// vip leads get documents immediately
	require.Len(t, mail.sent, 2)
}

func TestRunSurvivesMailFailure(t *testing.T) {

	mail := &fakeSender{err: errors.New("smtp unreachable")}

	engine, db := newTestEngine(t, 30, mail)

	result := engine.Run("wf_test_mailfail", "new_lead", sampleLead)

	// one failed agent keeps the workflow going
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, string(pipeline.QUALIFIED), result.LeadStage)

	var failed int64
	require.NoError(t, db.Raw(
		`SELECT COUNT(*) FROM interactions WHERE status = 'failed';`,
	).Row().Scan(&failed))
	assert.EqualValues(t, 1, failed)
}

func TestFollowupHours(t *testing.T) {

	tests := []struct {
		action string
		want   int
	}{
		{"qualification_call_in_4h", 4},
		{"followup_email_in_1_day", 24},
		{"brochure_email_in_2_days", 48},
		{"followup_email_in_3_days", 72},
		{"nurture_email_sequence_weekly", 168},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, FollowupHours(tt.action))
		})
	}
}
