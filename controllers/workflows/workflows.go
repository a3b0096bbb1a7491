package workflows

import (
	"fmt"
	"net/http"

	"privacyguard/log"
	"privacyguard/models"
	"privacyguard/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Action -
type Action struct {
	Logger *logrus.Logger
	Engine *workflow.Engine
}

var flow = &Action{
	Logger: log.GetLogger(),
	Engine: workflow.NewEngine(),
}

type runRequest struct {
	Trigger string          `json:"trigger"`
	Lead    models.LeadData `json:"lead_data"`
}

// validTriggers - the events the pipeline knows how to handle
var validTriggers = map[string]bool{
	"new_lead":          true,
	"follow_up":         true,
	"quotation_request": true,
	"deal_closing":      true,
}

// validate - trigger and required lead fields
func validate(params *runRequest) error {

	if !validTriggers[params.Trigger] {
		return fmt.Errorf("invalid trigger: %s", params.Trigger)
	}

	required := map[string]string{
		"name":         params.Lead.Name,
		"phone":        params.Lead.Phone,
		"email":        params.Lead.Email,
		"source":       params.Lead.Source,
		"interest":     params.Lead.Interest,
		"budget_range": params.Lead.BudgetRange,
	}

	for field, value := range required {
		if value == "" {
			return fmt.Errorf("missing required field: %s", field)
		}
	}

	return nil
}

// RunWorkflow - runs the full agent pipeline for an incoming lead event
func RunWorkflow(c *gin.Context) {

	var (
		err    error
		params = new(runRequest)
	)

	// 1. parse request
	if err = c.BindJSON(params); err != nil {
		flow.Logger.Errorf("cannot parse workflow request. %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	// 2. validate trigger and lead payload
	if err = validate(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	workflowID := fmt.Sprintf("wf_%s", uuid.New().String())

	// 3. run the pipeline
	result := flow.Engine.Run(workflowID, params.Trigger, params.Lead)

	if result.Status == "failed" {
		flow.Logger.Errorf("[RUN WORKFLOW] %s failed", workflowID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":      http.StatusText(http.StatusInternalServerError),
			"workflow_id": workflowID,
			"result":      result,
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"result": result,
	})
	c.Abort()
	return
}

// TestWorkflow - runs the pipeline with a sample lead, merged with any
// overrides from the request body
func TestWorkflow(c *gin.Context) {

	sample := models.LeadData{
		Name:        "Rajesh Sharma",
		Phone:       "+919876543210",
		Email:       "rajesh@example.com",
		Source:      "website_form",
		Interest:    "Rolls-Royce Phantom",
		BudgetRange: "₹8-10 Crores",
	}

	var overrides models.LeadData

	// overrides are optional, an empty body runs the stock sample
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&overrides); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": http.StatusText(http.StatusBadRequest),
				"error":  fmt.Sprintf("%v", err),
			})
			c.Abort()
			return
		}
	}

	if overrides.Name != "" {
		sample.Name = overrides.Name
	}

	if overrides.Phone != "" {
		sample.Phone = overrides.Phone
	}

	if overrides.Email != "" {
		sample.Email = overrides.Email
	}

	if overrides.Source != "" {
		sample.Source = overrides.Source
	}

	if overrides.Interest != "" {
		sample.Interest = overrides.Interest
	}

	if overrides.BudgetRange != "" {
		sample.BudgetRange = overrides.BudgetRange
	}

	if overrides.ExistingCustomer {
		sample.ExistingCustomer = true
	}

	workflowID := fmt.Sprintf("wf_%s", uuid.New().String())

	result := flow.Engine.Run(workflowID, "new_lead", sample)

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"test":   true,
		"result": result,
	})
	c.Abort()
	return
}
