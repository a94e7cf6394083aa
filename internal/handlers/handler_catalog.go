package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/salonsync/salon_management_app/internal/apperrors"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for the service and product catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers catalog routes. Reads are open to all
// roles; writes require manager or admin.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, anyRole, managerUp gin.HandlerFunc) {
	h := newCatalogHandler(catalogService)

	servicesGroup := rg.Group("/services")
	{
		servicesGroup.GET("", anyRole, h.listServices)
		servicesGroup.POST("", managerUp, h.createService)
		servicesGroup.PUT("/:id", managerUp, h.updateService)
		servicesGroup.DELETE("/:id", managerUp, h.deleteService)
	}

	products := rg.Group("/products")
	{
		products.GET("", anyRole, h.listProducts)
		products.POST("", managerUp, h.createProduct)
		products.PUT("/:id", managerUp, h.updateProduct)
		products.DELETE("/:id", managerUp, h.deleteProduct)
	}
}

// createService godoc
// @Summary Add a catalog service
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create service"
// @Security BearerAuth
// @Router /services [post]
func (h *catalogHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List catalog services
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.ServiceResponse
// @Failure 500 {object} ErrorResponse "Failed to list services"
// @Security BearerAuth
// @Router /services [get]
func (h *catalogHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list services"})
		return
	}

	resp := make([]dto.ServiceResponse, len(services))
	for i := range services {
		resp[i] = dto.ToServiceResponse(&services[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateService godoc
// @Summary Update a catalog service
// @Description Updates a service's name or price. Past sales keep their frozen sale price.
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID"
// @Param   service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Failed to update service"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *catalogHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), serviceID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update service", slog.String("service_id", serviceID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update service"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// deleteService godoc
// @Summary Delete a catalog service
// @Tags catalog
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 500 {object} ErrorResponse "Failed to delete service"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *catalogHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	serviceID := c.Param("id")

	if err := h.catalogService.DeleteService(c.Request.Context(), serviceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service not found"})
			return
		}
		logger.Error("Failed to delete service", slog.String("service_id", serviceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete service"})
		return
	}

	c.Status(http.StatusNoContent)
}

// createProduct godoc
// @Summary Add a catalog product
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List catalog products
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} ErrorResponse "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = dto.ToProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateProduct godoc
// @Summary Update a catalog product
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Failed to update product"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), productID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a catalog product
// @Tags catalog
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Failed to delete product"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *catalogHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to delete product", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}
