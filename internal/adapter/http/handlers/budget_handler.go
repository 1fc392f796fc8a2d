package handlers

import (
	"errors"
	"net/http"

	request "buildsite/internal/adapter/http/dto/request"
	response "buildsite/internal/adapter/http/dto/response"
	"buildsite/internal/usecase"
	"buildsite/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBOQItemPayload = pkg.NewDomainErrorSimple("INVALID_BOQ_ITEM_INPUT", "Invalid BOQ item payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for the bill of quantities and the
// derived budget distribution of a milestone.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBOQItem(c *gin.Context) {
	var payload request.BOQItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBOQItemPayload.HTTPStatus, errInvalidBOQItemPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateItem(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBOQItem(created))
}

func (h *BudgetHandler) UpdateBOQItem(c *gin.Context) {
	var payload request.BOQItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBOQItemPayload.HTTPStatus, errInvalidBOQItemPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("item_id"), payload.ToEntity())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBOQItem(updated))
}

func (h *BudgetHandler) GetBOQItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBOQItem(item))
}

func (h *BudgetHandler) ListBOQItemsByMilestone(c *gin.Context) {
	items, err := h.usecase.ListByMilestone(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBOQItems(items))
}

// GetBudgetDistribution returns the aggregated MTO/LTO/ETO totals of a
// milestone, computed on read.
func (h *BudgetHandler) GetBudgetDistribution(c *gin.Context) {
	dist, err := h.usecase.Aggregate(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetDistribution(dist))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBOQItemID), errors.Is(err, usecase.ErrInvalidBOQItem),
		errors.Is(err, usecase.ErrInvalidMilestoneID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBOQItemNotFound):
		return pkg.NewDomainErrorSimple("BOQ_ITEM_NOT_FOUND", "BOQ item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBOQMilestoneNotFound), errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
