package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/service"
)

// GetClients list clients for the current user.
// @Tags CLIENT
// @Summary list clients.
// @Schemes
// @Description list clients owned by the current user.
// @Param Authorization header string false "Bearer token"
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/clients [get]
func GetClients(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "GetClients")
	defer span.End()

	clientDtoList, err := clientService.GetClientsByOwner(ctx, ownerID(c))
	if err != nil {
		clientLogger.Error("GetClients", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving clients",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": clientDtoList,
		"count":   len(clientDtoList),
	})
}

// GetClientByID get a single client.
// @Tags CLIENT
// @Summary get client by id.
// @Schemes
// @Description get a single client by id.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "client id"
// @Produce json
// @Success 200 {object} dto.ClientDto
// @Router /api/clients/{id} [get]
func GetClientByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	client, err := clientService.GetClientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Client not found",
			})
			return
		}
		clientLogger.Error("GetClientByID", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while retrieving client",
		})
		return
	}

	c.JSON(http.StatusOK, client)
}

// CreateClient create client.
// @Tags CLIENT
// @Summary create client.
// @Schemes
// @Description create a client owned by the current user.
// @Param Authorization header string false "Bearer token"
// @Param request body dto.CreateClientInput true "create client dto"
// @Accept json
// @Produce json
// @Success 201 {object} dto.ClientDto
// @Router /api/clients [post]
func CreateClient(c *gin.Context) {
	var input dto.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, clientLogger)
		return
	}

	client, err := clientService.CreateClient(c.Request.Context(), ownerID(c), input)
	if err != nil {
		clientLogger.Error("CreateClient", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while creating client",
		})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClient update client.
// @Tags CLIENT
// @Summary update client.
// @Schemes
// @Description partially update a client; omitted fields keep their value.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "client id"
// @Param request body dto.PatchClientInput true "update client dto"
// @Accept json
// @Produce json
// @Success 200 {object} dto.ClientDto
// @Router /api/clients/{id} [put]
func UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input dto.PatchClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithBindError(c, err, clientLogger)
		return
	}

	client, err := clientService.UpdateClient(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Client not found",
			})
			return
		}
		clientLogger.Error("UpdateClient", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while updating client",
		})
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient delete client.
// @Tags CLIENT
// @Summary delete client.
// @Schemes
// @Description delete a client. Follow-ups and messages that reference it
// @Description are kept and keep their client id.
// @Param Authorization header string false "Bearer token"
// @Param id path int true "client id"
// @Produce json
// @Success 204
// @Router /api/clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := clientService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Client not found",
			})
			return
		}
		clientLogger.Error("DeleteClient", slog.Int("id", id), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Error while deleting client",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
