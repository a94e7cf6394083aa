package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	portssvc "github.com/salonsync/salon_management_app/internal/core/ports/services"
	"github.com/salonsync/salon_management_app/internal/dto"
	"github.com/salonsync/salon_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests for commission payroll.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// RegisterPayrollRoutes registers payroll routes, restricted to manager and
// admin roles.
func RegisterPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade, managerUp gin.HandlerFunc) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll", managerUp)
	{
		payroll.GET("/summary", h.summary)
		payroll.POST("/pay", h.pay)
		payroll.POST("/advance", h.advance)
	}
}

// summary godoc
// @Summary Payroll summary
// @Description Computes the commission payable for a professional over a fortnight. Sales are bucketed by fortnight; payments and advances count against the whole month.
// @Tags payroll
// @Produce  json
// @Param   professional_id query string false "Professional ID (all when omitted)"
// @Param   month query string true "Reference month, YYYY-MM"
// @Param   fortnight query int true "1 for days 1-15, 2 for days 16 to month end"
// @Success 200 {object} dto.PayrollSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /payroll/summary [get]
func (h *payrollHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.PayrollQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.payrollService.Summary(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute payroll summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollSummaryResponse(summary))
}

// pay godoc
// @Summary Record a commission payment
// @Description Records a completed OUT ledger entry paying a professional's commission.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   payment body dto.PayrollPaymentRequest true "Payment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /payroll/pay [post]
func (h *payrollHandler) pay(c *gin.Context) {
	h.recordPayment(c, h.payrollService.Pay)
}

// advance godoc
// @Summary Record an advance
// @Description Records a completed OUT ledger entry advancing money against future commissions.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   advance body dto.PayrollPaymentRequest true "Advance details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to record advance"
// @Security BearerAuth
// @Router /payroll/advance [post]
func (h *payrollHandler) advance(c *gin.Context) {
	h.recordPayment(c, h.payrollService.Advance)
}

func (h *payrollHandler) recordPayment(c *gin.Context, record func(ctx context.Context, req dto.PayrollPaymentRequest, creatorUserID string) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayrollPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	transaction, err := record(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record payroll payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}
