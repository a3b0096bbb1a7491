package jobs

import (
	"fmt"
	"strings"
	"time"

	"privacyguard/data"
	"privacyguard/log"
	"privacyguard/mailer"
	"privacyguard/models/constants/pipeline"
	"privacyguard/workflow"

	"github.com/go-redis/redis"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// CronJob -
type CronJob struct {
	DB     *gorm.DB
	Logger *logrus.Logger
	Mail   *mailer.Mailer
	Redis  *redis.Client
}

// NewCronJob - instantiates CronJob
func NewCronJob() *CronJob {
	return &CronJob{
		DB:     data.GetDB(),
		Logger: log.GetLogger(),
		Mail:   mailer.NewMailer(),
		Redis:  data.GetRedis(),
	}
}

type dueAction struct {
	id       int64
	leadID   int64
	action   string
	name     string
	email    string
	interest string
}

// DispatchDue - claims scheduled actions whose time has come and executes
// them. Email actions go out through the mailer, call actions are flagged
// due for the dashboard.
func (c *CronJob) DispatchDue() {

	var due []dueAction

	err := func() error {

		// 1. collect actions that are due. the cutoff is bound in UTC to
		// match how the actions were stored.
		rows, err := c.DB.Raw(`
			SELECT sa.id, sa.lead_id, sa.action_name, l.name, l.email, l.interest
			FROM scheduled_actions sa
			JOIN leads l ON l.id = sa.lead_id
			WHERE sa.status = 'pending' AND sa.scheduled_for <= ?
			ORDER BY sa.scheduled_for ASC
			LIMIT 50;`, time.Now().UTC(),
		).Rows()

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {

			var d dueAction

			if err = rows.Scan(&d.id, &d.leadID, &d.action, &d.name, &d.email, &d.interest); err != nil {
				return err
			}

			due = append(due, d)
		}

		return nil
	}()

	if err != nil {
		c.Logger.Errorf("[DISPATCH DUE] cannot collect due actions. %v", err)
		return
	}

	for _, d := range due {
		c.dispatch(d)
	}
}

// dispatch - executes one due action inside its own transaction
func (c *CronJob) dispatch(d dueAction) {

	tx := c.DB.Begin()

	err := func() error {

		// 1. claim the action so a second worker skips it
		claim := tx.Exec(`
			UPDATE scheduled_actions SET status = 'processing'
			WHERE id = ? AND status = 'pending';`, d.id,
		)

		if claim.Error != nil {
			return claim.Error
		}

		if claim.RowsAffected == 0 {
			return nil
		}

		// 2. execute by action type
		switch {
		case strings.Contains(d.action, "email") || strings.Contains(d.action, "content"):

			tpl := mailer.FollowupTemplate(d.name, d.interest)

			if err := c.Mail.Send(d.email, tpl.Subject, tpl.Body, tpl.HTMLBody, nil); err != nil {
				return fmt.Errorf("cannot send follow-up to lead %d. %v", d.leadID, err)
			}

			if err := workflow.LogInteraction(tx, d.leadID, pipeline.Automation, d.action, "executed",
				map[string]interface{}{"channel": "email", "to": d.email}); err != nil {
				return err
			}

			return tx.Exec(`UPDATE scheduled_actions SET status = 'executed' WHERE id = ?;`, d.id).Error

		case strings.Contains(d.action, "call") || strings.Contains(d.action, "meeting") || strings.Contains(d.action, "visit"):

			// humans pick these off the callbacks board
			if err := workflow.LogInteraction(tx, d.leadID, pipeline.Automation, d.action, "due",
				map[string]interface{}{"channel": "call"}); err != nil {
				return err
			}

			return tx.Exec(`UPDATE scheduled_actions SET status = 'due' WHERE id = ?;`, d.id).Error

		default:

			if err := workflow.LogInteraction(tx, d.leadID, pipeline.Automation, d.action, "executed",
				map[string]interface{}{"note": "no handler for action type"}); err != nil {
				return err
			}

			return tx.Exec(`UPDATE scheduled_actions SET status = 'executed' WHERE id = ?;`, d.id).Error
		}
	}()

	if err != nil {
		tx.Rollback()
		c.Logger.Errorf("[DISPATCH DUE] action %d failed. %v", d.id, err)

		// failed sends go back to pending for the next pass
		if err = c.DB.Exec(`UPDATE scheduled_actions SET status = 'pending' WHERE id = ? AND status = 'processing';`, d.id).Error; err != nil {
			c.Logger.Errorf("[DISPATCH DUE] cannot release action %d. %v", d.id, err)
		}

		return
	}

	tx.Commit()
}

// ExpireStale - marks call actions that sat on the board for over a week
func (c *CronJob) ExpireStale() {

	result := c.DB.Exec(`
		UPDATE scheduled_actions SET status = 'expired'
		WHERE status = 'due' AND scheduled_for <= ?;`, staleCutoff(),
	)

	if result.Error != nil {
		c.Logger.Errorf("[EXPIRE STALE] %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		c.Logger.Infof("[EXPIRE STALE] expired %d stale actions", result.RowsAffected)
	}
}
