package models

import "time"

// ScheduledAction - a follow-up queued for a lead
type ScheduledAction struct {
	ID           int64     `json:"id"`
	LeadID       int64     `json:"lead_id"`
	ActionName   string    `json:"action_name"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
