package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/middleware"
)

// catalogHandler handles the service catalog routes.
type catalogHandler struct {
	catalogService ports.CatalogService
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService ports.CatalogService) {
	h := &catalogHandler{catalogService: catalogService}

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.DELETE("/:id", h.deleteService)
	}
}

// createService godoc
// @Summary Add a catalog entry
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *catalogHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", service.ServiceID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List the service catalog
// @Tags services
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Security BearerAuth
// @Router /services [get]
func (h *catalogHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServiceResponse(services))
}

// deleteService godoc
// @Summary Delete a catalog entry
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *catalogHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
