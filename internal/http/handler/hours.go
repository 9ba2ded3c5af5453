package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/service"
	"github.com/roguepikachu/smileline/pkg"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// HoursService defines what the hours handler needs from the service layer.
type HoursService interface {
	Week(ctx context.Context) (domain.WeeklyHours, error)
	Status(ctx context.Context) (domain.HoursStatus, error)
	UpdateSchedule(ctx context.Context, week []domain.ScheduleEntry) error
}

// HoursHandler serves the office hours table and open status.
type HoursHandler struct {
	svc HoursService
}

// NewHoursHandler constructs an HoursHandler.
func NewHoursHandler(svc HoursService) *HoursHandler {
	return &HoursHandler{svc: svc}
}

// Week returns all seven entries plus today's status.
func (h *HoursHandler) Week(c *gin.Context) {
	ctx := c.Request.Context()
	week, err := h.svc.Week(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load office hours: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	c.JSON(http.StatusOK, week)
}

// Status returns only today's entry and status.
func (h *HoursHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.svc.Status(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load office hours: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	c.JSON(http.StatusOK, st)
}

// Update replaces the weekly table. Every entry must parse.
func (h *HoursHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.UpdateHoursRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, pkg.NewErrorWithDetails("bad_request", "invalid request", err.Error()))
		return
	}
	if err := h.svc.UpdateSchedule(ctx, req.Entries); err != nil {
		if errors.Is(err, service.ErrInvalidSchedule) {
			c.JSON(http.StatusUnprocessableEntity, pkg.NewErrorWithDetails("invalid_schedule", "schedule rejected", err.Error()))
			return
		}
		logger.Error(ctx, "failed to save office hours: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	logger.Info(ctx, "office hours updated")
	week, err := h.svc.Week(ctx)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, week)
}
