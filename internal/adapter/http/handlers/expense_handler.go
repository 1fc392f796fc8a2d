package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "buildsite/internal/adapter/http/dto/request"
	response "buildsite/internal/adapter/http/dto/response"
	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase"
	"buildsite/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles HTTP requests for field expenses and their
// dual-stage approval.

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

func (h *ExpenseHandler) SubmitExpense(c *gin.Context) {
	var payload request.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExpense(created))
}

func (h *ExpenseHandler) ApproveByEngineer(c *gin.Context) {
	h.patchExpenseStatus(c, h.usecase.ApproveByEngineer)
}

func (h *ExpenseHandler) ApproveByFinance(c *gin.Context) {
	h.patchExpenseStatus(c, h.usecase.ApproveByFinance)
}

func (h *ExpenseHandler) patchExpenseStatus(
	c *gin.Context,
	updater func(ctx context.Context, expenseID string) (entities.Expense, error),
) {
	expenseID := c.Param("expense_id")
	log.Printf("[expense][handler] approval start expense_id=%s", expenseID)

	e, err := updater(c.Request.Context(), expenseID)
	if err != nil {
		log.Printf("[expense][handler] approval failed expense_id=%s err=%v", expenseID, err)
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(e))
}

func (h *ExpenseHandler) RejectExpense(c *gin.Context) {
	expenseID := c.Param("expense_id")

	var payload request.ExpenseRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Reject(c.Request.Context(), expenseID, payload.Note)
	if err != nil {
		log.Printf("[expense][handler] reject failed expense_id=%s err=%v", expenseID, err)
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpense(e))
}

// ListExpensesByMilestone supports an optional ?type=supply|labor filter.
func (h *ExpenseHandler) ListExpensesByMilestone(c *gin.Context) {
	typ := entities.ExpenseType(c.Query("type"))

	es, err := h.usecase.ListByMilestone(c.Request.Context(), c.Param("milestone_id"), typ)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenses(es))
}

func (h *ExpenseHandler) GetExpenseTotals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpenseTotals(totals))
}

func mapExpenseError(err error) *pkg.AppError {
	var tErr *usecase.InvalidTransitionError
	switch {
	case errors.As(err, &tErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested transition is not allowed", http.StatusConflict).
			WithDetails(map[string]string{
				"entity":    tErr.EntityKind,
				"id":        tErr.EntityID,
				"current":   tErr.Current,
				"requested": tErr.Requested,
			})
	case errors.Is(err, usecase.ErrEmptyRejectNote):
		return pkg.NewDomainErrorSimple("EMPTY_REJECT_NOTE", "A rejection note is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidExpenseID), errors.Is(err, usecase.ErrInvalidExpenseType),
		errors.Is(err, usecase.ErrInvalidExpenseAmount), errors.Is(err, usecase.ErrInvalidMilestoneID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseNotFound):
		return pkg.NewDomainErrorSimple("EXPENSE_NOT_FOUND", "Expense not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExpenseMilestoneMissing), errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
