package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/realmkit/premiumkit/premium"
)

// Resolver maps display names to subject ids for the non-numeric
// :subject form. Provided by the host; may be nil.
type Resolver interface {
	ResolveAccount(ctx context.Context, name string) (uint64, error)
	ResolveCharacter(ctx context.Context, name string) (uint64, error)
}

// parseScope reads and validates the :scope path param.
func parseScope(c *gin.Context) (premium.Scope, bool) {
	scope := premium.Scope(c.Param("scope"))
	return scope, scope.Valid()
}

// parseSubject turns the :subject path param into a subject id,
// resolving display names through r when the value is not numeric.
func parseSubject(c *gin.Context, scope premium.Scope, r Resolver) (uint64, bool) {
	raw := c.Param("subject")
	if raw == "" {
		return 0, false
	}
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return id, id != 0
	}
	if r == nil {
		return 0, false
	}
	var (
		id  uint64
		err error
	)
	ctx := c.Request.Context()
	if scope == premium.ScopeAccount {
		id, err = r.ResolveAccount(ctx, raw)
	} else {
		id, err = r.ResolveCharacter(ctx, raw)
	}
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
