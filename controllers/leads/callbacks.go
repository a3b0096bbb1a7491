package leads

import (
	"fmt"
	"net/http"

	"privacyguard/models"

	"github.com/gin-gonic/gin"
	"github.com/uniplaces/carbon"
)

// GetCallbacks - follow-ups due from the start of this week onwards
func GetCallbacks(c *gin.Context) {

	var (
		err    error
		result []models.ScheduledAction
	)

	err = func() error {

		// window start in UTC, matching the stored timestamps
		rows, err := lead.DB.Raw(`
			SELECT id, lead_id, action_name, scheduled_for, status, created_at
			FROM scheduled_actions
			WHERE
				scheduled_for >= ? AND
				status IN ('pending', 'due')
			ORDER BY scheduled_for ASC
			LIMIT ?;`, carbon.Now().StartOfWeek().Time.UTC(), limitParam(c),
		).Rows()

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {

			var sa models.ScheduledAction

			if err = rows.Scan(&sa.ID, &sa.LeadID, &sa.ActionName, &sa.ScheduledFor, &sa.Status, &sa.CreatedAt); err != nil {
				return err
			}

			result = append(result, sa)
		}

		return nil
	}()

	if err != nil {
		lead.Logger.Errorf("[FETCH CALLBACKS] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    http.StatusText(http.StatusOK),
		"callbacks": result,
	})
	c.Abort()
	return
}
