package premium

import "time"

// Scope selects which key domain an entitlement belongs to.
type Scope string

const (
	ScopeAccount   Scope = "account"
	ScopeCharacter Scope = "character"
)

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	return s == ScopeAccount || s == ScopeCharacter
}

// Entitlement is a premium grant attached to one account or one character.
type Entitlement struct {
	SubjectID uint64     `json:"subject_id"`
	Level     int        `json:"level"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the grant's expiration has passed at now.
// A grant with no expiration never expires.
func (e *Entitlement) Expired(now time.Time) bool {
	if e == nil || e.ExpiresAt == nil {
		return false
	}
	return !e.ExpiresAt.After(now)
}
