package leads

import (
	"fmt"
	"net/http"
	"strconv"

	"privacyguard/models/constants/pipeline"
	"privacyguard/workflow"

	"github.com/gin-gonic/gin"
)

type stageUpdate struct {
	Stage  string `json:"stage"`
	Action string `json:"action"`
}

// validStages - manual updates may only target known stages
var validStages = map[pipeline.Stage]bool{
	pipeline.NEW:         true,
	pipeline.CONTACTED:   true,
	pipeline.QUALIFIED:   true,
	pipeline.OPPORTUNITY: true,
	pipeline.PROPOSAL:    true,
	pipeline.NEGOTIATION: true,
	pipeline.CLOSEDWON:   true,
	pipeline.CLOSEDLOST:  true,
}

// UpdateStage - manual pipeline move by the sales manager
func UpdateStage(c *gin.Context) {

	var (
		err    error
		params = new(stageUpdate)
	)

	leadID, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "invalid lead id",
		})
		c.Abort()
		return
	}

	// 1. parse request
	if err = c.BindJSON(params); err != nil {
		lead.Logger.Errorf("cannot parse stage update request. %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	if !validStages[pipeline.Stage(params.Stage)] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "stage is required",
		})
		c.Abort()
		return
	}

	tx := lead.DB.Begin()

	err = func() error {

		// 2. move the lead
		if err = workflow.UpdateLead(tx, leadID, map[string]interface{}{"stage": params.Stage}); err != nil {
			return err
		}

		// 3. log the stage change
		return workflow.LogInteraction(tx, leadID, pipeline.SalesManager,
			fmt.Sprintf("stage_update_%s", params.Action), "executed", map[string]interface{}{
				"new_stage":  params.Stage,
				"action":     params.Action,
				"updated_by": "sales_manager",
			})
	}()

	if err != nil {
		tx.Rollback()
		lead.Logger.Errorf("[UPDATE STAGE] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{
		"status":    http.StatusText(http.StatusOK),
		"lead_id":   leadID,
		"new_stage": params.Stage,
		"action":    params.Action,
	})
	c.Abort()
	return
}
