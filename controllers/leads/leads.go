package leads

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"

	"privacyguard/config"
	"privacyguard/data"
	"privacyguard/log"
	"privacyguard/mailer"
	"privacyguard/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Action -
type Action struct {
	DB     *gorm.DB
	Logger *logrus.Logger
	Config *viper.Viper
	Mail   *mailer.Mailer
}

var lead = &Action{
	DB:     data.GetDB(),
	Logger: log.GetLogger(),
	Config: config.GetConfig(),
	Mail:   mailer.NewMailer(),
}

// maxPageSize - hard cap on list endpoints
const maxPageSize = 100

// limitParam - parses ?limit= with the default cap
func limitParam(c *gin.Context) int {

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))

	if err != nil || limit <= 0 || limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

// scanLeads - reads lead rows into models
func scanLeads(rows *sql.Rows, withUpdated bool) ([]models.Lead, error) {

	var result []models.Lead

	for rows.Next() {

		var (
			l        models.Lead
			workflow sql.NullString
			interest sql.NullString
			budget   sql.NullString
		)

		dest := []interface{}{
			&l.ID, &workflow, &l.Name, &l.Phone, &l.Email, &l.Source, &interest,
			&budget, &l.ExistingCustomer, &l.Score, &l.Classification, &l.Stage, &l.CreatedAt,
		}

		if withUpdated {
			dest = append(dest, &l.UpdatedAt)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		l.WorkflowID = workflow.String
		l.Interest = interest.String
		l.BudgetRange = budget.String

		result = append(result, l)
	}

	return result, nil
}

// GetLeads - recent leads, newest first
func GetLeads(c *gin.Context) {

	var (
		err    error
		result []models.Lead
	)

	err = func() error {

		rows, err := lead.DB.Raw(`
			SELECT id, workflow_id, name, phone, email, source, interest, budget_range,
				existing_customer, score, classification, stage, created_at, updated_at
			FROM leads
			ORDER BY created_at DESC
			LIMIT ?;`, limitParam(c),
		).Rows()

		if err != nil {
			return err
		}

		defer rows.Close()

		result, err = scanLeads(rows, true)

		return err
	}()

	if err != nil {
		lead.Logger.Errorf("[FETCH LEADS] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"leads":  result,
	})
	c.Abort()
	return
}

// GetKanban - leads for the pipeline board
func GetKanban(c *gin.Context) {

	var (
		err    error
		result []models.Lead
	)

	err = func() error {

		rows, err := lead.DB.Raw(`
			SELECT id, workflow_id, name, phone, email, source, interest, budget_range,
				existing_customer, score, classification, stage, created_at
			FROM leads
			ORDER BY created_at DESC
			LIMIT 100;`,
		).Rows()

		if err != nil {
			return err
		}

		defer rows.Close()

		result, err = scanLeads(rows, false)

		return err
	}()

	if err != nil {
		lead.Logger.Errorf("[FETCH KANBAN] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"leads":  result,
	})
	c.Abort()
	return
}
