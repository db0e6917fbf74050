package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"simplexdss/internal/module/history/dto"
	"simplexdss/internal/module/history/repository"
	"simplexdss/internal/module/history/service"
	"simplexdss/internal/shared"
)

// Handler handles solve-history HTTP requests.
type Handler struct {
	service service.Service
	logger  *zap.Logger
}

// NewHandler creates a new history handler.
func NewHandler(service service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers history routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	history := router.Group("/simplex/history")
	{
		history.GET("", h.List)
		history.GET("/:id", h.Get)
		history.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List archived solves, newest first
// @Tags history
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Items per page"
// @Success 200 {object} shared.Page[dto.RecordSummary]
// @Router /simplex/history [get]
func (h *Handler) List(c *gin.Context) {
	var pageReq shared.PageRequest
	if err := c.ShouldBindQuery(&pageReq); err != nil {
		shared.RespondWithError(c, http.StatusBadRequest, "invalid pagination parameters")
		return
	}
	if pageReq.Page < 1 {
		pageReq.Page = shared.DefaultPage
	}
	if pageReq.PageSize < 1 {
		pageReq.PageSize = shared.DefaultPageSize
	}

	summaries, total, err := h.service.List(c.Request.Context(), pageReq.Page, pageReq.PageSize)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	page := shared.NewPagination[dto.RecordSummary](total, pageReq.Page, pageReq.PageSize)
	shared.RespondWithPagination(c, http.StatusOK, summaries, page)
}

// Get godoc
// @Summary Fetch one archived solve including its full tableau trace
// @Tags history
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} dto.RecordDetail
// @Failure 404 {object} shared.ErrorResponse
// @Router /simplex/history/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			shared.RespondWithError(c, http.StatusNotFound, "solve record not found")
			return
		}
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Solve record retrieved", detail)
}

// Delete godoc
// @Summary Delete one archived solve
// @Tags history
// @Param id path string true "Record id"
// @Success 204
// @Failure 404 {object} shared.ErrorResponse
// @Router /simplex/history/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			shared.RespondWithError(c, http.StatusNotFound, "solve record not found")
			return
		}
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithNoContent(c)
}

func (h *Handler) recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.logger.Debug("Invalid record id", zap.String("id", c.Param("id")))
		shared.RespondWithError(c, http.StatusBadRequest, "invalid record id")
		return uuid.Nil, false
	}
	return id, true
}
