package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/realmkit/premiumkit/adapters/ginutil"
	"github.com/realmkit/premiumkit/premium"
)

func HandlePremiumInfoGET(svc *premium.Service, r Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := parseScope(c)
		if !ok {
			ginutil.BadRequest(c, "invalid_scope")
			return
		}
		subjectID, ok := parseSubject(c, scope, r)
		if !ok {
			ginutil.BadRequest(c, "invalid_subject")
			return
		}
		e, err := svc.GetEntitlement(c.Request.Context(), scope, subjectID)
		if err != nil {
			ginutil.ServerErr(c, "backend_unavailable")
			return
		}
		if e == nil {
			ginutil.NotFound(c, "no_premium_level")
			return
		}
		c.JSON(http.StatusOK, e)
	}
}
