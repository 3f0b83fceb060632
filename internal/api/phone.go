package api

import (
	"errors"
	"net/http"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/phone"

	"github.com/gin-gonic/gin"
)

type PhoneHandler struct{}

func NewPhoneHandler() *PhoneHandler {
	return &PhoneHandler{}
}

type ValidatePhoneRequest struct {
	Number string `json:"number"`
}

// ValidatePhone backs the WhatsApp number input's live check.
func (h *PhoneHandler) ValidatePhone(c *gin.Context) {
	var req ValidatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := phone.Validate(req.Number)
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "kind": ve.Kind, "error": ve.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "normalized": n, "formatted": phone.Format(n)})
}
