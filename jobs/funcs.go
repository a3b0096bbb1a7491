package jobs

import "time"

// staleCutoff - call actions older than this are abandoned. UTC, like the
// stored timestamps.
func staleCutoff() time.Time {
	return time.Now().UTC().Add(-7 * 24 * time.Hour)
}
