package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-tracker/pkg/utils"
)

// actorID pulls the authenticated user's id set by the auth middleware.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}

	return id, true
}
