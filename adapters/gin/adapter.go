// Package premiumgin exposes the premium service as admin HTTP routes.
// The host mounts these on whatever router group already carries its
// admin authentication; this package does no permission checks itself.
package premiumgin

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/realmkit/premiumkit/adapters/gin/handlers"
	"github.com/realmkit/premiumkit/adapters/ginutil"
	"github.com/realmkit/premiumkit/premium"
)

// Resolver maps display names to subject ids. Implementations live in
// the host (account manager, character cache); the adapter only
// consumes the lookups.
type Resolver = handlers.Resolver

// Config wires the adapter's collaborators. Resolver may be nil, in
// which case subjects must be passed numerically.
type Config struct {
	Service  *premium.Service
	Resolver Resolver
	Log      logrus.FieldLogger
}

// RegisterRoutes mounts the premium admin routes on r:
//
//	GET    /premium/:scope/:subject
//	POST   /premium/:scope/:subject
//	DELETE /premium/:scope/:subject
//
// :scope is "account" or "character"; :subject is a numeric id or,
// with a Resolver configured, a display name.
func RegisterRoutes(r gin.IRouter, cfg Config) {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	r.Use(ginutil.RequestID())
	r.GET("/premium/:scope/:subject", handlers.HandlePremiumInfoGET(cfg.Service, cfg.Resolver))
	r.POST("/premium/:scope/:subject", handlers.HandlePremiumCreatePOST(cfg.Service, cfg.Resolver, cfg.Log))
	r.DELETE("/premium/:scope/:subject", handlers.HandlePremiumDeleteDELETE(cfg.Service, cfg.Resolver, cfg.Log))
}
