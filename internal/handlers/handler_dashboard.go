package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the reporting aggregates.
type dashboardHandler struct {
	saleService   portssvc.SaleSvcFacade
	clientService portssvc.ClientSvcFacade
}

func newDashboardHandler(ss portssvc.SaleSvcFacade, cs portssvc.ClientSvcFacade) *dashboardHandler {
	return &dashboardHandler{saleService: ss, clientService: cs}
}

// registerDashboardRoutes registers reporting routes, restricted to manager
// and admin roles.
func registerDashboardRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, clientService portssvc.ClientSvcFacade, managerUp gin.HandlerFunc) {
	h := newDashboardHandler(saleService, clientService)

	rg.GET("/dashboard/commissions", managerUp, h.commissionTotals)
	rg.GET("/clients", managerUp, h.clientSummaries)
}

// commissionTotals godoc
// @Summary Commission totals per professional
// @Description Aggregates frozen commission amounts and sale counts per professional over all sales.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.CommissionTotalsResponse
// @Failure 500 {object} ErrorResponse "Failed to compute commission totals"
// @Security BearerAuth
// @Router /dashboard/commissions [get]
func (h *dashboardHandler) commissionTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.saleService.CommissionTotals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute commission totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute commission totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionTotalsResponse(totals))
}

// clientSummaries godoc
// @Summary Client analytics
// @Description Groups sales by normalized client name into per-client visit counts, totals and most-frequent origin and professional.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.ClientSummariesResponse
// @Failure 500 {object} ErrorResponse "Failed to compute client summaries"
// @Security BearerAuth
// @Router /clients [get]
func (h *dashboardHandler) clientSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.clientService.ClientSummaries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute client summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute client summaries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientSummariesResponse(summaries))
}
