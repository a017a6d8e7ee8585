package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-scout/internal/service"
)

const exportFileName = "talentscout_record.json"

// IntakeHandler expone la conversacion activa por HTTP.
type IntakeHandler struct {
	logger     *zap.Logger
	intake     *service.IntakeService
	llmEnabled bool
}

// NewIntakeHandler crea una instancia de IntakeHandler con dependencias necesarias.
func NewIntakeHandler(logger *zap.Logger, intake *service.IntakeService, llmEnabled bool) *IntakeHandler {
	return &IntakeHandler{
		logger:     logger,
		intake:     intake,
		llmEnabled: llmEnabled,
	}
}

// Health maneja GET /healthz.
func (h *IntakeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "llm_enabled": h.llmEnabled})
}

// GetSession maneja GET /session.
func (h *IntakeHandler) GetSession(c *gin.Context) {
	session, err := h.intake.Start(c.Request.Context())
	if err != nil {
		h.logger.Error("load session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PostMessage maneja POST /session/message.
func (h *IntakeHandler) PostMessage(c *gin.Context) {
	// Content en blanco es valido: el reductor repregunta el campo pendiente.
	var req struct {
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session, replies, err := h.intake.Submit(c.Request.Context(), *req.Content)
	if err != nil {
		h.logger.Error("submit message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"replies": replies,
	})
}

// Reset maneja POST /session/reset.
func (h *IntakeHandler) Reset(c *gin.Context) {
	session, err := h.intake.Reset(c.Request.Context())
	if err != nil {
		h.logger.Error("reset session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Export maneja GET /session/export.
func (h *IntakeHandler) Export(c *gin.Context) {
	bundle, err := h.intake.Export(c.Request.Context())
	if errors.Is(err, service.ErrNothingToExport) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing to export"})
		return
	}
	if err != nil {
		h.logger.Error("export session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not export session"})
		return
	}

	body, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		h.logger.Error("marshal export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not export session"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, "application/json", body)
}
