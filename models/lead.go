package models

import "time"

// Lead struct
type Lead struct {
	ID               int64     `json:"id"`
	WorkflowID       string    `json:"workflow_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Source           string    `json:"source"`
	Interest         string    `json:"interest"`
	BudgetRange      string    `json:"budget_range"`
	ExistingCustomer bool      `json:"existing_customer"`
	Score            float64   `json:"score"`
	Classification   string    `json:"classification"`
	Stage            string    `json:"stage"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LeadData - lead fields accepted by the workflow endpoints
type LeadData struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Source           string `json:"source"`
	Interest         string `json:"interest"`
	BudgetRange      string `json:"budget_range"`
	ExistingCustomer bool   `json:"existing_customer"`
}
