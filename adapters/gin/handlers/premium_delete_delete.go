package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/realmkit/premiumkit/adapters/ginutil"
	"github.com/realmkit/premiumkit/premium"
)

func HandlePremiumDeleteDELETE(svc *premium.Service, r Resolver, log logrus.FieldLogger) gin.HandlerFunc {
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
		deleted, err := svc.DeleteEntitlement(c.Request.Context(), scope, subjectID)
		if err != nil {
			log.WithError(err).WithField("request_id", ginutil.GetRequestID(c)).Error("premium delete failed")
			ginutil.ServerErr(c, "backend_unavailable")
			return
		}
		if !deleted {
			ginutil.NotFound(c, "no_premium_level")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
