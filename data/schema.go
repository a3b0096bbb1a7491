package data

import (
	"fmt"

	"privacyguard/config"
	"privacyguard/security"

	"github.com/jinzhu/gorm"
)

// InitSchema - creates the CRM tables if missing
func InitSchema(db *gorm.DB) error {

	var pk = "INTEGER PRIMARY KEY AUTOINCREMENT"

	if config.GetConfig().GetString("database.driver") == "mysql" {
		pk = "BIGINT PRIMARY KEY AUTO_INCREMENT"
	}

	var statements = []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS leads (
				id %s,
				workflow_id VARCHAR(64) UNIQUE,
				name VARCHAR(255) NOT NULL,
				phone VARCHAR(32) NOT NULL,
				email VARCHAR(255) NOT NULL,
				source VARCHAR(64) NOT NULL,
				interest VARCHAR(255),
				budget_range VARCHAR(64),
				existing_customer BOOLEAN DEFAULT FALSE,
				score REAL DEFAULT 0.0,
				classification VARCHAR(32) DEFAULT 'cold_lead',
				stage VARCHAR(32) DEFAULT 'new',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);`, pk),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS interactions (
				id %s,
				lead_id INTEGER,
				agent VARCHAR(64) NOT NULL,
				action VARCHAR(64) NOT NULL,
				status VARCHAR(32) NOT NULL,
				details TEXT,
				timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (lead_id) REFERENCES leads (id)
			);`, pk),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS scheduled_actions (
				id %s,
				lead_id INTEGER,
				action_name VARCHAR(128) NOT NULL,
				scheduled_for TIMESTAMP NOT NULL,
				status VARCHAR(32) DEFAULT 'pending',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (lead_id) REFERENCES leads (id)
			);`, pk),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS operators (
				id %s,
				username VARCHAR(64) UNIQUE NOT NULL,
				pass VARCHAR(128) NOT NULL,
				full_name VARCHAR(255),
				failed_login_count INTEGER DEFAULT 0,
				last_login_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				last_ip VARCHAR(64),
				active VARCHAR(1) DEFAULT 'Y'
			);`, pk),
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("cannot create table. %v", err)
		}
	}

	return seedAdmin(db)
}

// seedAdmin - creates the default operator on first boot
func seedAdmin(db *gorm.DB) error {

	var count interface{}

	if err := db.Raw(`SELECT COUNT(*) FROM operators;`).Row().Scan(&count); err != nil {
		return fmt.Errorf("cannot count operators. %v", err)
	}

	if n, ok := count.(int64); ok && n > 0 {
		return nil
	}

	cg := config.GetConfig()

	var (
		user = cg.GetString("app.admin_user")
		pass = cg.GetString("app.admin_pass")
	)

	if user == "" {
		user = "admin"
	}

	if pass == "" {
		pass = "changeme"
	}

	hashed, err := security.Hash(pass)

	if err != nil {
		return fmt.Errorf("cannot hash default operator password. %v", err)
	}

	err = db.Exec(`
		INSERT INTO operators (username, pass, full_name, active)
		VALUES (?, ?, ?, 'Y');`, user, string(hashed), "Default Administrator",
	).Error

	if err != nil {
		return fmt.Errorf("cannot seed default operator. %v", err)
	}

	l.Infof("seeded default operator %q, change its password immediately", user)

	return nil
}
