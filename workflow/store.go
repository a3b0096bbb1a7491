package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"privacyguard/models"

	"github.com/jinzhu/gorm"
)

// InsertLead - saves a scored lead, returns the lead ID
func InsertLead(tx *gorm.DB, workflowID string, lead models.LeadData, score int, classification string) (int64, error) {

	err := tx.Exec(`
		INSERT INTO leads (workflow_id, name, phone, email, source, interest, budget_range,
			existing_customer, score, classification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		workflowID, lead.Name, lead.Phone, lead.Email, lead.Source, lead.Interest,
		lead.BudgetRange, lead.ExistingCustomer, score, classification,
	).Error

	if err != nil {
		return 0, fmt.Errorf("cannot insert lead. %v", err)
	}

	var id interface{}

	err = tx.Raw(`SELECT id FROM leads WHERE workflow_id = ?;`, workflowID).Row().Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("cannot read back lead id. %v", err)
	}

	leadID, ok := id.(int64)

	if !ok {
		return 0, fmt.Errorf("unexpected lead id type %T", id)
	}

	return leadID, nil
}

// UpdateLead - updates the given lead fields
func UpdateLead(tx *gorm.DB, leadID int64, fields map[string]interface{}) error {

	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	var (
		clauses []string
		values  []interface{}
	)

	for key, value := range fields {
		clauses = append(clauses, key+" = ?")
		values = append(values, value)
	}

	values = append(values, leadID)

	query := fmt.Sprintf(
		`UPDATE leads SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ?;`,
		strings.Join(clauses, ", "),
	)

	return tx.Exec(query, values...).Error
}

// LogInteraction - appends an interaction record for a lead
func LogInteraction(tx *gorm.DB, leadID int64, agent, action, status string, details interface{}) error {

	var detailsJSON interface{}

	if details != nil {

		raw, err := json.Marshal(details)

		if err != nil {
			return fmt.Errorf("cannot encode interaction details. %v", err)
		}

		detailsJSON = string(raw)
	}

	return tx.Exec(`
		INSERT INTO interactions (lead_id, agent, action, status, details)
		VALUES (?, ?, ?, ?, ?);`,
		leadID, agent, action, status, detailsJSON,
	).Error
}

// ScheduleAction - queues a follow-up for a lead
func ScheduleAction(tx *gorm.DB, leadID int64, actionName string, scheduledFor time.Time, status string) error {

	if status == "" {
		status = "pending"
	}

	// stored in UTC so due checks compare one representation
	return tx.Exec(`
		INSERT INTO scheduled_actions (lead_id, action_name, scheduled_for, status)
		VALUES (?, ?, ?, ?);`,
		leadID, actionName, scheduledFor.UTC(), status,
	).Error
}
