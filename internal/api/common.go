package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Notifier publishes dashboard events; *ws.Hub implements it.
type Notifier interface {
	BroadcastEvent(eventType string, data interface{})
}

func notify(n Notifier, eventType string, data interface{}) {
	if n != nil {
		n.BroadcastEvent(eventType, data)
	}
}

// accountParam reads :accountId and writes a 400 when it is not a UUID.
func accountParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return "", false
	}
	return id.String(), true
}
