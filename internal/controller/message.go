package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/metrics"
	"github.com/japb1998/outreach-crm/internal/model"
	"github.com/japb1998/outreach-crm/internal/service"
)

// GetMessages list messages.
// @Tags MESSAGE
// @Summary list messages.
// @Schemes
// @Description list the current user's send history, oldest first.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/messages [get]
func GetMessages(c *gin.Context) {
	messageDtoList, err := messengerService.GetMessagesByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		messageLogger.Error("GetMessages", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": messageDtoList,
		"count":   len(messageDtoList),
	})
}

// SendMessage send a message.
// @Tags MESSAGE
// @Summary send a message.
// @Schemes
// @Description send a message to a client over email or LinkedIn. A channel
// @Description failure still records the message and answers 200 with
// @Description success=false.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.SendMessageInput true "send message dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.SendMessageResult
// @Router /api/messages/send [post]
func SendMessage(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SendMessage")
	defer span.End()

	var input dto.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, messageLogger)
		return
	}

	result, err := messengerService.SendMessage(ctx, ownerID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Client not found",
			})
		case errors.Is(err, service.ErrMissingChannelAddress):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []ErrMsg{{Field: "channel", Message: "client has no LinkedIn URL"}},
			})
		case errors.Is(err, service.ErrInvalidChannel):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []ErrMsg{{Field: "channel", Message: "should be one of: email linkedin"}},
			})
		default:
			messageLogger.Error("SendMessage", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Error while sending message",
			})
		}
		return
	}

	status := model.MessageStatusSent
	if !result.Success {
		status = model.MessageStatusFailed
	}
	metrics.RecordMessageSent(input.Channel, status)

	c.JSON(http.StatusOK, result)
}

// GetEmailStatus report email configuration health.
// @Tags MESSAGE
// @Summary email capability status.
// @Schemes
// @Description report whether the outbound email provider is configured and
// @Description reachable.
// @Produce json
// @Success 200 {object} dto.EmailStatus
// @Router /api/email/status [get]
func GetEmailStatus(c *gin.Context) {
	status := messengerService.EmailStatus(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
