package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/realmkit/premiumkit/adapters/ginutil"
	"github.com/realmkit/premiumkit/premium"
)

type createRequest struct {
	Level int `json:"level" binding:"required"`
}

func HandlePremiumCreatePOST(svc *premium.Service, r Resolver, log logrus.FieldLogger) gin.HandlerFunc {
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
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			ginutil.BadRequest(c, "invalid_request")
			return
		}
		created, err := svc.CreateEntitlement(c.Request.Context(), scope, subjectID, req.Level)
		if errors.Is(err, premium.ErrInvalidLevel) {
			ginutil.BadRequest(c, "invalid_level")
			return
		}
		if err != nil {
			log.WithError(err).WithField("request_id", ginutil.GetRequestID(c)).Error("premium create failed")
			ginutil.ServerErr(c, "backend_unavailable")
			return
		}
		if !created {
			// Grant already present; level changes go through delete first.
			ginutil.Conflict(c, "already_has_premium_level")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
