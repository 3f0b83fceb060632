package api

import (
	"errors"
	"net/http"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/models"
	"conectezap-dashboard/internal/phone"
	"conectezap-dashboard/internal/profile"
	"conectezap-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Service  *profile.Service
	Notifier Notifier
}

func NewProfileHandler(svc *profile.Service, notifier Notifier) *ProfileHandler {
	return &ProfileHandler{Service: svc, Notifier: notifier}
}

type ProfileResponse struct {
	models.Profile
	WhatsAppFormatted string `json:"whatsapp_formatted"`
}

func newProfileResponse(p models.Profile) ProfileResponse {
	return ProfileResponse{Profile: p, WhatsAppFormatted: phone.Format(p.WhatsApp)}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	accountID, ok := accountParam(c)
	if !ok {
		return
	}

	p, err := h.Service.Get(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(p))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	accountID, ok := accountParam(c)
	if !ok {
		return
	}

	var req profile.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Service.Update(c.Request.Context(), accountID, req)
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "field": ve.Field, "kind": ve.Kind})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	resp := newProfileResponse(p)
	notify(h.Notifier, ws.EventProfileUpdated, resp)
	c.JSON(http.StatusOK, resp)
}
