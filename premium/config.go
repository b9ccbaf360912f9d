package premium

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDurationDays is the grant lifetime applied when no policy is configured.
const DefaultDurationDays = 30

// EnvDurationDays is the environment key read by PolicyFromEnv.
const EnvDurationDays = "PREMIUM_DURATION_DAYS"

// DurationPolicy controls how long a newly created grant lives.
// Days == 0 disables expiration entirely: grants never expire.
type DurationPolicy struct {
	Days int
}

// Enabled reports whether new grants receive an expiration.
func (p DurationPolicy) Enabled() bool { return p.Days > 0 }

// ExpiresAt returns the expiration for a grant created at now,
// or nil when expiration is disabled.
func (p DurationPolicy) ExpiresAt(now time.Time) *time.Time {
	if !p.Enabled() {
		return nil
	}
	t := now.Add(time.Duration(p.Days) * 24 * time.Hour)
	return &t
}

// PolicyFromEnv reads the duration policy from the environment,
// loading a .env file first if one is present. Unset or unparsable
// values fall back to DefaultDurationDays; an explicit "0" disables
// expiration.
func PolicyFromEnv() DurationPolicy {
	_ = godotenv.Load()
	v, ok := os.LookupEnv(EnvDurationDays)
	if !ok {
		return DurationPolicy{Days: DefaultDurationDays}
	}
	days, err := strconv.Atoi(v)
	if err != nil || days < 0 {
		return DurationPolicy{Days: DefaultDurationDays}
	}
	return DurationPolicy{Days: days}
}
