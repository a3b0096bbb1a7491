package workflow

import (
	"fmt"
	"strings"
	"time"

	"privacyguard/config"
	"privacyguard/data"
	"privacyguard/llm"
	"privacyguard/log"
	"privacyguard/mailer"
	"privacyguard/models"
	"privacyguard/models/constants/pipeline"
	"privacyguard/pdfs"
	"privacyguard/telephony"
	"privacyguard/utils"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type (
	// Scorer - the language model operations the pipeline needs
	Scorer interface {
		ScoreLead(budgetRange, vehicle, source string) int
		WelcomeEmail(name, vehicle string) string
		SuggestFollowups(classification string) []string
	}

	// Sender - outbound email
	Sender interface {
		Send(to, subject, body, htmlBody string, attachments []mailer.Attachment) error
	}

	// Dialer - outbound voice calls
	Dialer interface {
		Initiate(provider, toPhone, callerID string, payload map[string]interface{}) (map[string]interface{}, error)
	}

	// Engine - runs the agent pipeline for one lead event
	Engine struct {
		DB     *gorm.DB
		Logger *logrus.Logger
		Config *viper.Viper
		LLM    Scorer
		Mail   Sender
		Dialer Dialer
	}
)

// NewEngine - engine wired with the live services
func NewEngine() *Engine {
	return &Engine{
		DB:     data.GetDB(),
		Logger: log.GetLogger(),
		Config: config.GetConfig(),
		LLM:    llm.NewClient(),
		Mail:   mailer.NewMailer(),
		Dialer: telephony.NewCaller(),
	}
}

// Run - executes the six agents in order. An agent failure is recorded and
// the pipeline continues; three or more failures fail the workflow.
func (e *Engine) Run(workflowID, trigger string, lead models.LeadData) *Result {

	state := &State{
		WorkflowID: workflowID,
		Trigger:    trigger,
		Lead:       lead,
		Stage:      string(pipeline.NEW),
	}

	agents := []struct {
		name string
		run  func(*State)
	}{
		{pipeline.LeadIntelligence, e.agentIntelligence},
		{pipeline.Voice, e.agentVoice},
		{pipeline.Email, e.agentEmail},
		{pipeline.Document, e.agentDocument},
		{pipeline.Analytics, e.agentAnalytics},
		{pipeline.Automation, e.agentAutomation},
	}

	for _, agent := range agents {

		func() {

			defer func() {
				if r := recover(); r != nil {
					e.Logger.Errorf("[WORKFLOW %s] %s panicked. %v", workflowID, agent.name, r)
					state.addExecution(agent.name, "run", "failed", map[string]interface{}{
						"error": fmt.Sprintf("%v", r),
					})
				}
			}()

			agent.run(state)
		}()
	}

	var failures int

	for _, ex := range state.Executions {
		if ex.Status == "failed" {
			failures++
		}
	}

	status := "completed"

	if failures >= 3 {
		status = "failed"
	} else if failures > 0 {
		status = "in_progress"
	}

	var nextActions []string

	for _, a := range state.Scheduled {
		if name, ok := a["action"].(string); ok {
			nextActions = append(nextActions, name)
		}
	}

	return &Result{
		WorkflowID:                     workflowID,
		Status:                         status,
		ExecutedAgents:                 state.Executions,
		LeadStage:                      state.Stage,
		LeadScore:                      state.Score,
		Classification:                 state.Classification,
		NextActions:                    nextActions,
		EstimatedConversionProbability: state.Probability,
	}
}

// fail - records an agent failure on the state and in the interactions log
func (e *Engine) fail(state *State, agent, action string, err error) {

	e.Logger.Errorf("[WORKFLOW %s] %s %s failed. %v", state.WorkflowID, agent, action, err)

	if state.LeadID > 0 {
		if lerr := LogInteraction(e.DB, state.LeadID, agent, action, "failed", map[string]interface{}{
			"error": err.Error(),
		}); lerr != nil {
			e.Logger.Errorf("cannot log %s failure. %v", agent, lerr)
		}
	}

	state.addExecution(agent, action, "failed", map[string]interface{}{"error": err.Error()})
}

// record - logs a successful agent run
func (e *Engine) record(state *State, agent, action, status string, details map[string]interface{}) {

	if err := LogInteraction(e.DB, state.LeadID, agent, action, status, details); err != nil {
		e.Logger.Errorf("cannot log %s interaction. %v", agent, err)
	}

	state.addExecution(agent, action, status, details)
}

// agentIntelligence - scores, classifies and persists the lead
func (e *Engine) agentIntelligence(state *State) {

	const action = "capture_and_score"

	lead := state.Lead

	score := e.LLM.ScoreLead(lead.BudgetRange, lead.Interest, lead.Source)

	classification := pipeline.COLD

	if score >= 75 {
		classification = pipeline.HOT
	} else if score >= 50 {
		classification = pipeline.WARM
	}

	leadID, err := InsertLead(e.DB, state.WorkflowID, lead, score, string(classification))

	if err != nil {
		e.fail(state, pipeline.LeadIntelligence, action, err)
		return
	}

	// returning customers skip the funnel
	if lead.ExistingCustomer {

		classification = pipeline.VIP

		if err = UpdateLead(e.DB, leadID, map[string]interface{}{"classification": string(classification)}); err != nil {
			e.fail(state, pipeline.LeadIntelligence, action, err)
			return
		}
	}

	state.Score = score
	state.Classification = string(classification)
	state.LeadID = leadID
	state.Stage = string(pipeline.NEW)

	e.record(state, pipeline.LeadIntelligence, action, "executed", map[string]interface{}{
		"score":          score,
		"classification": string(classification),
		"trigger":        state.Trigger,
	})
}

// agentVoice - schedules the qualification call, dials when a provider is set
func (e *Engine) agentVoice(state *State) {

	const action = "schedule_and_call"

	hours := 24

	if state.Classification == string(pipeline.HOT) {
		hours = 4
	}

	when := utils.ScheduleInHours(hours)

	if err := ScheduleAction(e.DB, state.LeadID, "qualification_call", when, "pending"); err != nil {
		e.fail(state, pipeline.Voice, action, err)
		return
	}

	if err := UpdateLead(e.DB, state.LeadID, map[string]interface{}{"stage": string(pipeline.CONTACTED)}); err != nil {
		e.fail(state, pipeline.Voice, action, err)
		return
	}

	state.Stage = string(pipeline.CONTACTED)

	details := map[string]interface{}{"scheduled_time": when.Format(time.RFC3339)}

	if provider := e.Config.GetString("voice.provider"); provider != "" {

		info, err := e.Dialer.Initiate(provider, state.Lead.Phone, "", map[string]interface{}{
			"lead_name":     state.Lead.Name,
			"lead_interest": state.Lead.Interest,
			"workflow_id":   state.WorkflowID,
			"lead_id":       state.LeadID,
		})

		details["provider"] = provider
		details["call_initiated"] = err == nil

		if err != nil {
			details["call_error"] = err.Error()
		} else {
			details["call_info"] = info
		}
	}

	e.record(state, pipeline.Voice, action, "scheduled", details)
}

// agentEmail - sends the classified welcome email
func (e *Engine) agentEmail(state *State) {

	const action = "send_welcome_email"

	template := "standard_welcome"

	switch pipeline.Classification(state.Classification) {
	case pipeline.VIP:
		template = "luxury_welcome_vip"
	case pipeline.HOT:
		template = "premium_welcome_hot"
	}

	tpl := mailer.WelcomeTemplate(state.Lead.Name, state.Lead.Interest)

	err := e.Mail.Send(state.Lead.Email, tpl.Subject, tpl.Body, "", nil)

	status := "executed"

	details := map[string]interface{}{
		"template": template,
		"sent":     err == nil,
	}

	if err != nil {
		status = "failed"
		details["error"] = err.Error()
	} else {
		details["email_sent_at"] = utils.Now().Format(time.RFC3339)
	}

	state.EmailStatus = details

	e.record(state, pipeline.Email, action, status, details)
}

// agentDocument - generates and emails quotation/contract PDFs for hot and
// vip leads; anything else is scheduled for a later pass
func (e *Engine) agentDocument(state *State) {

	const action = "generate_documents"

	var (
		lead        = state.Lead
		attachments []mailer.Attachment
		generated   []string
	)

	class := pipeline.Classification(state.Classification)

	if class == pipeline.HOT || class == pipeline.VIP {

		basePrice := e.Config.GetFloat64("documents.base_price")

		if basePrice == 0 {
			basePrice = 100000000.0
		}

		quotation, err := pdfs.GenerateQuotation(lead, basePrice, nil)

		if err != nil {
			e.fail(state, pipeline.Document, action, err)
			return
		}

		contract, err := pdfs.GenerateContract(lead, pdfs.Contract{
			DeliveryLocation: "Mumbai Showroom",
			PaymentTerms:     "50% booking, 50% on delivery",
			Customizations:   []string{"bespoke_interior", "two_tone_paint"},
		})

		if err != nil {
			e.fail(state, pipeline.Document, action, err)
			return
		}

		attachments = append(attachments,
			mailer.Attachment{Filename: "quotation.pdf", Content: quotation, MIME: "application/pdf"},
			mailer.Attachment{Filename: "contract.pdf", Content: contract, MIME: "application/pdf"},
		)

		generated = append(generated, "quotation", "contract")
	}

	details := map[string]interface{}{"generated": generated}

	status := "executed"

	if len(attachments) > 0 {

		tpl := mailer.DocumentTemplate(lead.Name, generated, lead.Interest)

		err := e.Mail.Send(lead.Email, tpl.Subject, tpl.Body, tpl.HTMLBody, attachments)

		details["email_sent"] = err == nil
		details["document_types"] = generated

		if err != nil {
			status = "failed"
			details["error"] = err.Error()
		}

	} else {

		// nothing to generate yet, try again after the qualification call
		eta := utils.ScheduleInHours(6)

		if err := ScheduleAction(e.DB, state.LeadID, "document_generation", eta, "pending"); err != nil {
			e.fail(state, pipeline.Document, action, err)
			return
		}

		details["eta"] = eta.Format(time.RFC3339)
		status = "pending"
	}

	details["status"] = status
	state.DocumentStatus = details

	e.record(state, pipeline.Document, action, status, details)
}

// agentAnalytics - advances the stage and estimates conversion probability
func (e *Engine) agentAnalytics(state *State) {

	const action = "update_metrics"

	nextStage := pipeline.QUALIFIED

	if state.Classification == string(pipeline.HOT) {
		nextStage = pipeline.OPPORTUNITY
	}

	if err := UpdateLead(e.DB, state.LeadID, map[string]interface{}{"stage": string(nextStage)}); err != nil {
		e.fail(state, pipeline.Analytics, action, err)
		return
	}

	state.Stage = string(nextStage)

	var total, hot interface{}

	if err := e.DB.Raw(`SELECT COUNT(*) FROM leads;`).Row().Scan(&total); err != nil {
		e.fail(state, pipeline.Analytics, action, err)
		return
	}

	if err := e.DB.Raw(`SELECT COUNT(*) FROM leads WHERE classification = ?;`, string(pipeline.HOT)).Row().Scan(&hot); err != nil {
		e.fail(state, pipeline.Analytics, action, err)
		return
	}

	var hotRatio float64

	if t, ok := total.(int64); ok && t > 0 {
		if h, ok := hot.(int64); ok {
			hotRatio = float64(h) / float64(t)
		}
	}

	prob := 0.2 + 0.5*hotRatio + float64(state.Score)/200.0

	if prob > 0.95 {
		prob = 0.95
	}

	if prob < 0.05 {
		prob = 0.05
	}

	state.Probability = prob

	e.record(state, pipeline.Analytics, action, "executed", map[string]interface{}{
		"lead_stage":  string(nextStage),
		"probability": prob,
	})
}

// agentAutomation - queues the per-classification follow-up plan
func (e *Engine) agentAutomation(state *State) {

	const action = "schedule_followups"

	actions := llm.DefaultFollowups(state.Classification)

	var scheduled []map[string]interface{}

	for _, name := range actions {

		when := utils.ScheduleInHours(FollowupHours(name))

		if err := ScheduleAction(e.DB, state.LeadID, name, when, "pending"); err != nil {
			e.fail(state, pipeline.Automation, action, err)
			return
		}

		scheduled = append(scheduled, map[string]interface{}{
			"action":         name,
			"scheduled_time": when.Format(time.RFC3339),
		})
	}

	state.Scheduled = scheduled

	e.record(state, pipeline.Automation, action, "scheduled", map[string]interface{}{
		"actions": scheduled,
	})
}

// FollowupHours - delay encoded in a follow-up action name
func FollowupHours(action string) int {

	switch {
	case strings.Contains(action, "4h"):
		return 4
	case strings.Contains(action, "1_day"):
		return 24
	case strings.Contains(action, "2_days"):
		return 48
	case strings.Contains(action, "3_days"):
		return 72
	default:
		return 168
	}
}
