package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cashFlowHandler handles HTTP requests for drawer reconciliation.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

func newCashFlowHandler(cs portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{cashFlowService: cs}
}

// registerCashFlowRoutes registers the drawer balance route.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade, anyRole gin.HandlerFunc) {
	h := newCashFlowHandler(cashFlowService)

	rg.GET("/cash-flow/balance", anyRole, h.drawerBalance)
}

// drawerBalance godoc
// @Summary Drawer balance
// @Description Computes the physical cash-on-hand estimate from ledger entries dated at or after the configured cutover.
// @Tags cash-flow
// @Produce  json
// @Success 200 {object} dto.DrawerBalanceResponse
// @Failure 500 {object} ErrorResponse "Failed to compute balance"
// @Security BearerAuth
// @Router /cash-flow/balance [get]
func (h *cashFlowHandler) drawerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.cashFlowService.DrawerBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute drawer balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDrawerBalanceResponse(balance))
}
