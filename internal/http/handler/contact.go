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

const (
	// TimeFormat is the standard format for time serialization.
	TimeFormat = "2006-01-02T15:04:05Z"

	// ContactThanks is returned to the visitor once a submission is stored.
	ContactThanks = "Thanks for reaching out. We will get back to you within one business day."
)

// ContactService defines the contact handler's dependency contract.
type ContactService interface {
	Submit(ctx context.Context, req domain.ContactRequestDTO, meta domain.ClientMeta) (domain.ContactSubmission, error)
	List(ctx context.Context, page, limit int) ([]domain.ContactSubmission, error)
	Get(ctx context.Context, id string) (domain.ContactSubmission, error)
}

// ContactHandler handles the contact form and its admin listing.
type ContactHandler struct {
	svc ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit accepts a contact form post.
func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.ContactRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug(ctx, "failed to bind JSON: %s", err.Error())
		c.JSON(http.StatusBadRequest, pkg.NewErrorWithDetails("bad_request", "invalid request", err.Error()))
		return
	}
	meta := domain.ClientMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	sub, err := h.svc.Submit(ctx, req, meta)
	if err != nil {
		if errors.Is(err, domain.ErrSpamDetected) {
			c.JSON(http.StatusUnprocessableEntity, pkg.NewError("rejected", "message could not be accepted"))
			return
		}
		logger.Error(ctx, "failed to store contact submission: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	c.JSON(http.StatusCreated, domain.ContactResponseDTO{
		ID:         sub.ID,
		ReceivedAt: sub.ReceivedAt.UTC().Format(TimeFormat),
		Message:    ContactThanks,
	})
}

// List returns stored submissions, newest first.
func (h *ContactHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	type queryParams struct {
		Page  int `form:"page,default=1" binding:"gte=1,lte=10000"`
		Limit int `form:"limit,default=20" binding:"gte=1,lte=100"`
	}
	var q queryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Debug(ctx, "invalid query params: %s", err.Error())
		c.JSON(http.StatusBadRequest, pkg.NewErrorWithDetails("bad_request", "invalid query parameters", err.Error()))
		return
	}
	items, err := h.svc.List(ctx, q.Page, q.Limit)
	if err != nil {
		logger.Error(ctx, "failed to list contact submissions: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	if items == nil {
		items = []domain.ContactSubmission{}
	}
	c.JSON(http.StatusOK, domain.ListContactResponseDTO{Page: q.Page, Limit: q.Limit, Items: items})
}

// Get returns one submission by ID.
func (h *ContactHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sub, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, pkg.NewError("not_found", "not found"))
			return
		}
		logger.Error(ctx, "failed to get contact submission: %s", err.Error())
		c.JSON(http.StatusInternalServerError, pkg.NewError("internal_error", "internal server error"))
		return
	}
	c.JSON(http.StatusOK, sub)
}
