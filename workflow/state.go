package workflow

import (
	"time"

	"privacyguard/models"
	"privacyguard/utils"
)

// Execution - one agent run inside a workflow
type Execution struct {
	Agent     string                 `json:"agent"`
	Action    string                 `json:"action"`
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Details   map[string]interface{} `json:"details"`
}

// State - shared state threaded through the agent pipeline
type State struct {
	WorkflowID     string
	Trigger        string
	Lead           models.LeadData
	LeadID         int64
	Score          int
	Classification string
	Stage          string
	EmailStatus    map[string]interface{}
	DocumentStatus map[string]interface{}
	Scheduled      []map[string]interface{}
	Executions     []Execution
	Probability    float64
}

// Result - the workflow response returned to the caller
type Result struct {
	WorkflowID                     string      `json:"workflow_id"`
	Status                         string      `json:"status"`
	ExecutedAgents                 []Execution `json:"executed_agents"`
	LeadStage                      string      `json:"lead_stage"`
	LeadScore                      int         `json:"lead_score"`
	Classification                 string      `json:"classification"`
	NextActions                    []string    `json:"next_actions"`
	EstimatedConversionProbability float64     `json:"estimated_conversion_probability"`
}

// addExecution - records an agent run on the state
func (s *State) addExecution(agent, action, status string, details map[string]interface{}) {
	s.Executions = append(s.Executions, Execution{
		Agent:     agent,
		Action:    action,
		Status:    status,
		Timestamp: utils.Now().Format(time.RFC3339),
		Details:   details,
	})
}
