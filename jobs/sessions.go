package jobs

import (
	"privacyguard/controllers/auth"
)

// PurgeSessions - drops cached operator sessions whose token no longer
// validates. Redis TTL handles normal expiry; this catches tokens orphaned
// by a secret rotation.
func (c *CronJob) PurgeSessions() {

	var (
		cursor uint64
		purged int
	)

	for {

		keys, next, err := c.Redis.Scan(cursor, "session:*", 100).Result()

		if err != nil {
			c.Logger.Errorf("[PURGE SESSIONS] cannot scan session keys. %v", err)
			return
		}

		for _, key := range keys {

			token, err := c.Redis.Get(key).Result()

			if err != nil {
				continue
			}

			if !sessionExpired(token) {
				continue
			}

			if err = c.Redis.Del(key).Err(); err != nil {
				c.Logger.Errorf("[PURGE SESSIONS] cannot drop %s. %v", key, err)
				continue
			}

			purged++
		}

		cursor = next

		if cursor == 0 {
			break
		}
	}

	if purged > 0 {
		c.Logger.Infof("[PURGE SESSIONS] dropped %d invalid sessions", purged)
	}
}

// sessionExpired - true when the cached token no longer validates
func sessionExpired(token string) bool {

	_, err := auth.TokenID(token)

	return err != nil
}
