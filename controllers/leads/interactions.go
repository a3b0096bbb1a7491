package leads

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"privacyguard/models"

	"github.com/gin-gonic/gin"
)

// GetInteractions - interaction history for a lead, newest first
func GetInteractions(c *gin.Context) {

	leadID, err := strconv.ParseInt(c.Param("lead_id"), 10, 64)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "invalid lead id",
		})
		c.Abort()
		return
	}

	var result []models.Interaction

	err = func() error {

		rows, err := lead.DB.Raw(`
			SELECT id, agent, action, status, details, timestamp
			FROM interactions
			WHERE lead_id = ?
			ORDER BY timestamp DESC
			LIMIT ?;`, leadID, limitParam(c),
		).Rows()

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {

			var (
				in      models.Interaction
				details sql.NullString
			)

			if err = rows.Scan(&in.ID, &in.Agent, &in.Action, &in.Status, &details, &in.Timestamp); err != nil {
				return err
			}

			in.LeadID = leadID

			// decoded when valid JSON, raw otherwise
			if details.Valid {

				var decoded interface{}

				if json.Unmarshal([]byte(details.String), &decoded) == nil {
					in.Details = decoded
				} else {
					in.Details = details.String
				}
			}

			result = append(result, in)
		}

		return nil
	}()

	if err != nil {
		lead.Logger.Errorf("[FETCH INTERACTIONS] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       http.StatusText(http.StatusOK),
		"interactions": result,
	})
	c.Abort()
	return
}
