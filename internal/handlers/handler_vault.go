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

// vaultHandler handles HTTP requests for the reserve fund.
type vaultHandler struct {
	vaultService portssvc.VaultSvcFacade
}

func newVaultHandler(vs portssvc.VaultSvcFacade) *vaultHandler {
	return &vaultHandler{vaultService: vs}
}

// registerVaultRoutes registers vault routes, restricted to manager and
// admin roles.
func registerVaultRoutes(rg *gin.RouterGroup, vaultService portssvc.VaultSvcFacade, managerUp gin.HandlerFunc) {
	h := newVaultHandler(vaultService)

	vault := rg.Group("/vault", managerUp)
	{
		vault.GET("", h.getVault)
		vault.POST("", h.createVaultTransaction)
	}
}

// getVault godoc
// @Summary Vault balance and history
// @Description Returns the reserve fund balance (deposits minus withdrawals) and its full movement history.
// @Tags vault
// @Produce  json
// @Success 200 {object} dto.VaultReportResponse
// @Failure 500 {object} ErrorResponse "Failed to retrieve vault"
// @Security BearerAuth
// @Router /vault [get]
func (h *vaultHandler) getVault(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.vaultService.GetVault(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve vault", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve vault"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVaultReportResponse(report))
}

// createVaultTransaction godoc
// @Summary Record a vault movement
// @Description Records a vault DEPOSIT or WITHDRAW and atomically mirrors it into the drawer ledger as an OUT or IN entry.
// @Tags vault
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateVaultTransactionRequest true "Vault movement"
// @Success 201 {object} dto.VaultTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to record vault transaction"
// @Security BearerAuth
// @Router /vault [post]
func (h *vaultHandler) createVaultTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVaultTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vaultTxn, err := h.vaultService.CreateVaultTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record vault transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record vault transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToVaultTransactionResponse(vaultTxn))
}
