package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/metrics"
	"github.com/japb1998/outreach-crm/internal/service"
)

// GenerateMessage draft a message with AI.
// @Tags AI
// @Summary generate a message draft.
// @Schemes
// @Description draft an outreach message for a client using the configured
// @Description model. Answers 503 when no model is configured.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.GenerateMessageInput true "generate message dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.GeneratedMessageDto
// @Router /api/ai/generate-message [post]
func GenerateMessage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GenerateMessage")
	defer span.End()

	var input dto.GenerateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, aiLogger)
		return
	}

	generated, err := assistantService.GenerateMessage(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Client not found",
			})
		case errors.Is(err, service.ErrGeneratorUnavailable):
			metrics.RecordGeneration("generate", "unavailable")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message": "Message generation is not configured",
			})
		default:
			metrics.RecordGeneration("generate", "error")
			aiLogger.Error("GenerateMessage", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": err.Error(),
			})
		}
		return
	}

	metrics.RecordGeneration("generate", "ok")
	c.JSON(http.StatusOK, generated)
}

// OptimizeMessage rewrite a draft with AI.
// @Tags AI
// @Summary optimize a message draft.
// @Schemes
// @Description rewrite an existing draft for the given channel and tone.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.OptimizeMessageInput true "optimize message dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.OptimizedMessageDto
// @Router /api/ai/optimize-message [post]
func OptimizeMessage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "OptimizeMessage")
	defer span.End()

	var input dto.OptimizeMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, aiLogger)
		return
	}

	optimized, err := assistantService.OptimizeMessage(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrGeneratorUnavailable) {
			metrics.RecordGeneration("optimize", "unavailable")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"message": "Message generation is not configured",
			})
			return
		}
		metrics.RecordGeneration("optimize", "error")
		aiLogger.Error("OptimizeMessage", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	metrics.RecordGeneration("optimize", "ok")
	c.JSON(http.StatusOK, optimized)
}
