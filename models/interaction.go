package models

import "time"

// Interaction - one agent touch on a lead
type Interaction struct {
	ID        int64       `json:"id"`
	LeadID    int64       `json:"lead_id"`
	Agent     string      `json:"agent"`
	Action    string      `json:"action"`
	Status    string      `json:"status"`
	Details   interface{} `json:"details"`
	Timestamp time.Time   `json:"timestamp"`
}
