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

// professionalHandler handles HTTP requests related to professionals.
type professionalHandler struct {
	professionalService portssvc.ProfessionalSvcFacade
}

func newProfessionalHandler(ps portssvc.ProfessionalSvcFacade) *professionalHandler {
	return &professionalHandler{professionalService: ps}
}

// registerProfessionalRoutes registers all professional-related routes.
// Reads are open to all roles; writes require manager or admin.
func registerProfessionalRoutes(rg *gin.RouterGroup, professionalService portssvc.ProfessionalSvcFacade, anyRole, managerUp gin.HandlerFunc) {
	h := newProfessionalHandler(professionalService)

	professionals := rg.Group("/professionals")
	{
		professionals.GET("", anyRole, h.listProfessionals)
		professionals.GET("/:id", anyRole, h.getProfessional)
		professionals.POST("", managerUp, h.createProfessional)
		professionals.PUT("/:id", managerUp, h.updateProfessional)
		professionals.DELETE("/:id", managerUp, h.deleteProfessional)
	}
}

// createProfessional godoc
// @Summary Register a professional
// @Description Registers a professional with service and product commission rates (fractions in [0,1])
// @Tags professionals
// @Accept  json
// @Produce  json
// @Param   professional body dto.CreateProfessionalRequest true "Professional details"
// @Success 201 {object} dto.ProfessionalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to create professional"
// @Security BearerAuth
// @Router /professionals [post]
func (h *professionalHandler) createProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	professional, err := h.professionalService.CreateProfessional(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create professional", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create professional"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// listProfessionals godoc
// @Summary List professionals
// @Description Retrieves all professionals ordered by name
// @Tags professionals
// @Produce  json
// @Success 200 {object} dto.ListProfessionalsResponse
// @Failure 500 {object} ErrorResponse "Failed to list professionals"
// @Security BearerAuth
// @Router /professionals [get]
func (h *professionalHandler) listProfessionals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	professionals, err := h.professionalService.ListProfessionals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list professionals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list professionals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfessionalsResponse(professionals))
}

// getProfessional godoc
// @Summary Get a professional by ID
// @Tags professionals
// @Produce  json
// @Param   id path string true "Professional ID"
// @Success 200 {object} dto.ProfessionalResponse
// @Failure 404 {object} ErrorResponse "Professional not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve professional"
// @Security BearerAuth
// @Router /professionals/{id} [get]
func (h *professionalHandler) getProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	professionalID := c.Param("id")

	professional, err := h.professionalService.GetProfessionalByID(c.Request.Context(), professionalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
			return
		}
		logger.Error("Failed to get professional", slog.String("professional_id", professionalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve professional"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// updateProfessional godoc
// @Summary Update a professional
// @Description Updates name, commission rates or active flag. Historical sale commissions are never recalculated.
// @Tags professionals
// @Accept  json
// @Produce  json
// @Param   id path string true "Professional ID"
// @Param   professional body dto.UpdateProfessionalRequest true "Fields to update"
// @Success 200 {object} dto.ProfessionalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Professional not found"
// @Failure 500 {object} ErrorResponse "Failed to update professional"
// @Security BearerAuth
// @Router /professionals/{id} [put]
func (h *professionalHandler) updateProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	professionalID := c.Param("id")

	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	professional, err := h.professionalService.UpdateProfessional(c.Request.Context(), professionalID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update professional", slog.String("professional_id", professionalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update professional"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// deleteProfessional godoc
// @Summary Delete a professional
// @Description Removes a professional. Sales referencing them keep their frozen commission amounts.
// @Tags professionals
// @Produce  json
// @Param   id path string true "Professional ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Professional not found"
// @Failure 500 {object} ErrorResponse "Failed to delete professional"
// @Security BearerAuth
// @Router /professionals/{id} [delete]
func (h *professionalHandler) deleteProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	professionalID := c.Param("id")

	if err := h.professionalService.DeleteProfessional(c.Request.Context(), professionalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
			return
		}
		logger.Error("Failed to delete professional", slog.String("professional_id", professionalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete professional"})
		return
	}

	c.Status(http.StatusNoContent)
}
