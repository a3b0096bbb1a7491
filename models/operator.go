package models

import "time"

// Operator struct
type Operator struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Pass             string `json:"-"`
	FullName         string `json:"full_name"`
	FailedLoginCount int
	LastLoginDate    time.Time
	Active           string
}
