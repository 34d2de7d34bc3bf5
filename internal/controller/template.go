package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/service"
)

// GetTemplates list templates.
// @Tags TEMPLATE
// @Summary list templates.
// @Schemes
// @Description list message templates owned by the current user.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/templates [get]
func GetTemplates(c *gin.Context) {
	templateDtoList, err := templateService.GetTemplatesByOwner(c.Request.Context(), ownerID(c))
	if err != nil {
		templateLogger.Error("GetTemplates", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving templates",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": templateDtoList,
		"count":   len(templateDtoList),
	})
}

// CreateTemplate create template.
// @Tags TEMPLATE
// @Summary create template.
// @Schemes
// @Description create a message template. Templates are immutable; replace
// @Description one by deleting and recreating it.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.CreateTemplateInput true "create template dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.TemplateDto
// @Router /api/templates [post]
func CreateTemplate(c *gin.Context) {
	var input dto.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, templateLogger)
		return
	}

	template, err := templateService.CreateTemplate(c.Request.Context(), ownerID(c), input)
	if err != nil {
		templateLogger.Error("CreateTemplate", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while creating template",
		})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// DeleteTemplate delete template.
// @Tags TEMPLATE
// @Summary delete template.
// @Schemes
// @Description delete a message template. Follow-ups referencing it keep
// @Description their template id.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "template id"
// @Produce json
// @Success 204
// @Router /api/templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Template not found",
			})
			return
		}
		templateLogger.Error("DeleteTemplate", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while deleting template",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
