package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/service"
)

// GetFollowUps list follow-ups.
// @Tags FOLLOW-UP
// @Summary list follow-ups.
// @Schemes
// @Description list all follow-ups owned by the current user.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/follow-ups [get]
func GetFollowUps(c *gin.Context) {
	followUpDtoList, err := followUpService.GetFollowUpsByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		followUpLogger.Error("GetFollowUps", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving follow-ups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": followUpDtoList,
		"count":   len(followUpDtoList),
	})
}

// GetUpcomingFollowUps list upcoming follow-ups.
// @Tags FOLLOW-UP
// @Summary list upcoming follow-ups.
// @Schemes
// @Description pending follow-ups due now or later, soonest first, each
// @Description enriched with its client record (null if the client is gone).
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/follow-ups/upcoming [get]
func GetUpcomingFollowUps(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GetUpcomingFollowUps")
	defer span.End()

	followUpDtoList, err := followUpService.GetUpcomingFollowUps(ctx, ownerID(c))
	if err != nil {
		followUpLogger.Error("GetUpcomingFollowUps", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving upcoming follow-ups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": followUpDtoList,
		"count":   len(followUpDtoList),
	})
}

// GetOverdueFollowUps list overdue follow-ups.
// @Tags FOLLOW-UP
// @Summary list overdue follow-ups.
// @Schemes
// @Description pending follow-ups whose scheduled time has passed.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/follow-ups/overdue [get]
func GetOverdueFollowUps(c *gin.Context) {
	followUpDtoList, err := followUpService.GetOverdueFollowUps(c.Request.Context(), ownerID(c))
	if err != nil {
		followUpLogger.Error("GetOverdueFollowUps", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving overdue follow-ups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": followUpDtoList,
		"count":   len(followUpDtoList),
	})
}

// CreateFollowUp create follow-up.
// @Tags FOLLOW-UP
// @Summary create follow-up.
// @Schemes
// @Description schedule a follow-up for a client. Always created pending.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.CreateFollowUpInput true "create follow-up dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.FollowUpDto
// @Router /api/follow-ups [post]
func CreateFollowUp(c *gin.Context) {
	var input dto.CreateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, followUpLogger)
		return
	}

	followUp, err := followUpService.CreateFollowUp(c.Request.Context(), ownerID(c), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []ErrMsg{{Field: "scheduledFor", Message: "field should be an RFC3339 date"}},
			})
			return
		}
		followUpLogger.Error("CreateFollowUp", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while creating follow-up",
		})
		return
	}

	c.JSON(http.StatusCreated, followUp)
}

// UpdateFollowUp update follow-up.
// @Tags FOLLOW-UP
// @Summary update follow-up.
// @Schemes
// @Description partially update a follow-up. Status is not editable here;
// @Description it only advances when a linked message is sent.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "follow-up id"
// @Param request body dto.PatchFollowUpInput true "update follow-up dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.FollowUpDto
// @Router /api/follow-ups/{id} [patch]
func UpdateFollowUp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input dto.PatchFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, followUpLogger)
		return
	}

	followUp, err := followUpService.UpdateFollowUp(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Follow-up not found",
			})
			return
		}
		if errors.Is(err, service.ErrInvalidDate) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []ErrMsg{{Field: "scheduledFor", Message: "field should be an RFC3339 date"}},
			})
			return
		}
		followUpLogger.Error("UpdateFollowUp", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while updating follow-up",
		})
		return
	}

	c.JSON(http.StatusOK, followUp)
}

// DeleteFollowUp delete follow-up.
// @Tags FOLLOW-UP
// @Summary delete follow-up.
// @Schemes
// @Description delete a follow-up regardless of status.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "follow-up id"
// @Produce json
// @Success 204
// @Router /api/follow-ups/{id} [delete]
func DeleteFollowUp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := followUpService.DeleteFollowUp(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFollowUpNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Follow-up not found",
			})
			return
		}
		followUpLogger.Error("DeleteFollowUp", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while deleting follow-up",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
