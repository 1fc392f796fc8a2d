package handlers

import (
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

var errInvalidMilestonePayload = pkg.NewDomainErrorSimple("INVALID_MILESTONE_INPUT", "Invalid milestone payload", http.StatusBadRequest)

// MilestoneHandler handles HTTP requests for project milestones. Every write
// after creation goes through TransitionMilestone.

type MilestoneHandler struct {
	usecase usecase.IMilestoneUseCase
}

func NewMilestoneHandler(uc usecase.IMilestoneUseCase) *MilestoneHandler {
	return &MilestoneHandler{usecase: uc}
}

func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var payload request.MilestoneCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMilestonePayload.HTTPStatus, errInvalidMilestonePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMilestone(created))
}

func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestone(m))
}

func (h *MilestoneHandler) ListMilestonesByProject(c *gin.Context) {
	ms, err := h.usecase.ListByProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(ms))
}

// TransitionMilestone moves a milestone through its lifecycle. The target
// status comes from the body, never from the route, so one endpoint covers
// confirmation, start, completion and cancellation.
func (h *MilestoneHandler) TransitionMilestone(c *gin.Context) {
	milestoneID := c.Param("milestone_id")

	var payload request.MilestoneTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMilestonePayload.HTTPStatus, errInvalidMilestonePayload.ToHTTPError())
		return
	}
	log.Printf("[milestone][handler] transition start milestone_id=%s target=%s", milestoneID, payload.Status)

	m, err := h.usecase.Transition(c.Request.Context(), milestoneID, entities.MilestoneStatus(payload.Status), payload.CompletionPhoto)
	if err != nil {
		log.Printf("[milestone][handler] transition failed milestone_id=%s target=%s err=%v", milestoneID, payload.Status, err)
		appErr := mapMilestoneError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestone(m))
}

func mapMilestoneError(err error) *pkg.AppError {
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
	case errors.Is(err, usecase.ErrMissingEvidence):
		return pkg.NewDomainErrorSimple("MISSING_EVIDENCE", "Completion photo evidence is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInitialPaymentNotSettled):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_SETTLED", "A settled schedule entry is required before confirmation", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidMilestoneID), errors.Is(err, usecase.ErrInvalidMilestoneTitle),
		errors.Is(err, usecase.ErrInvalidTargetStatus), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
