package utils

import (
	"time"

	"privacyguard/config"

	"github.com/uniplaces/carbon"
)

// Now - current time in the configured dealership timezone
func Now() time.Time {

	tz := config.GetConfig().GetString("app.timezone")

	if tz == "" {
		tz = "Asia/Kolkata"
	}

	c, err := carbon.NowInLocation(tz)

	if err != nil {
		return carbon.Now().Time
	}

	return c.Time
}

// ScheduleInHours - timestamp for a follow-up n hours from now
func ScheduleInHours(hours int) time.Time {

	tz := config.GetConfig().GetString("app.timezone")

	if tz == "" {
		tz = "Asia/Kolkata"
	}

	c, err := carbon.NowInLocation(tz)

	if err != nil {
		c = carbon.Now()
	}

	return c.AddHours(hours).Time
}
