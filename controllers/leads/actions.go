package leads

import (
	"fmt"
	"net/http"
	"strconv"

	"privacyguard/models/constants/pipeline"
	"privacyguard/workflow"

	"github.com/gin-gonic/gin"
)

type managerAction struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// actionStages - manager shortcuts to pipeline stages
var actionStages = map[string]pipeline.Stage{
	"hold":        pipeline.CONTACTED,
	"qualify":     pipeline.QUALIFIED,
	"opportunity": pipeline.OPPORTUNITY,
	"close_won":   pipeline.CLOSEDWON,
	"close_lost":  pipeline.CLOSEDLOST,
	"reopen":      pipeline.QUALIFIED,
}

// ManagerAction - applies a sales manager action to a lead
func ManagerAction(c *gin.Context) {

	var (
		err    error
		params = new(managerAction)
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
		lead.Logger.Errorf("cannot parse manager action request. %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	newStage, ok := actionStages[params.Action]

	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "invalid action",
		})
		c.Abort()
		return
	}

	tx := lead.DB.Begin()

	err = func() error {

		// 2. move the lead
		if err = workflow.UpdateLead(tx, leadID, map[string]interface{}{"stage": string(newStage)}); err != nil {
			return err
		}

		// 3. log the action
		return workflow.LogInteraction(tx, leadID, pipeline.SalesManager,
			fmt.Sprintf("action_%s", params.Action), "executed", map[string]interface{}{
				"action":     params.Action,
				"new_stage":  string(newStage),
				"notes":      params.Notes,
				"updated_by": "sales_manager",
			})
	}()

	if err != nil {
		tx.Rollback()
		lead.Logger.Errorf("[MANAGER ACTION] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	tx.Commit()

	// 4. a won deal gets its tax invoice; the stage move already stuck,
	// so a mail failure only gets logged
	if params.Action == "close_won" {
		if err = lead.sendInvoice(leadID); err != nil {
			lead.Logger.Errorf("[MANAGER ACTION] cannot send invoice for lead %d. %v", leadID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    http.StatusText(http.StatusOK),
		"lead_id":   leadID,
		"action":    params.Action,
		"new_stage": string(newStage),
		"notes":     params.Notes,
	})
	c.Abort()
	return
}
