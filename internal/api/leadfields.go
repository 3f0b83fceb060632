package api

import (
	"net/http"

	"conectezap-dashboard/internal/apperr"
	"conectezap-dashboard/internal/leadfields"
	"conectezap-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
)

type LeadFieldHandler struct {
	Store    *leadfields.Store
	Notifier Notifier
}

func NewLeadFieldHandler(store *leadfields.Store, notifier Notifier) *LeadFieldHandler {
	return &LeadFieldHandler{Store: store, Notifier: notifier}
}

type LeadFieldsResponse struct {
	AccountID string                 `json:"account_id"`
	Fields    []leadfields.FieldSlot `json:"fields"`
}

func (h *LeadFieldHandler) GetLeadFields(c *gin.Context) {
	accountID, ok := accountParam(c)
	if !ok {
		return
	}

	cfg, err := h.Store.Load(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead fields"})
		return
	}

	c.JSON(http.StatusOK, LeadFieldsResponse{AccountID: accountID, Fields: cfg.Slots()})
}

// SaveLeadFieldsRequest carries the whole form. Slots missing from Fields
// are cleared.
type SaveLeadFieldsRequest struct {
	Fields []leadfields.Edit `json:"fields"`
}

type FieldError struct {
	Key     string      `json:"key"`
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
}

func (h *LeadFieldHandler) SaveLeadFields(c *gin.Context) {
	accountID, ok := accountParam(c)
	if !ok {
		return
	}

	var req SaveLeadFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, errs := leadfields.ApplyLabels(leadfields.NewConfiguration(), req.Fields)
	if len(errs) > 0 {
		out := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			out = append(out, FieldError{Key: e.Field, Kind: e.Kind, Message: e.Message})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid lead fields", "fields": out})
		return
	}

	if err := h.Store.Save(c.Request.Context(), accountID, cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead fields"})
		return
	}

	resp := LeadFieldsResponse{AccountID: accountID, Fields: cfg.Slots()}
	notify(h.Notifier, ws.EventLeadFieldsUpdated, resp)
	c.JSON(http.StatusOK, resp)
}
