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

// saleHandler handles HTTP requests for POS sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers sale routes, open to all authenticated roles.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, anyRole gin.HandlerFunc) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales", anyRole)
	{
		sales.GET("", h.listSales)
		sales.POST("", h.createSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a POS sale. The commission is computed from the professional's current rate and frozen; cash sales mirror into the ledger; product sales decrement stock.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Professional or catalog item not found"
// @Failure 500 {object} ErrorResponse "Failed to create sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves all sales, newest first, with professional names joined.
// @Tags sales
// @Produce  json
// @Success 200 {object} dto.ListSalesResponse
// @Failure 500 {object} ErrorResponse "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}
