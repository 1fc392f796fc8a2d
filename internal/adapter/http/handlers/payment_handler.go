package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	request "buildsite/internal/adapter/http/dto/request"
	response "buildsite/internal/adapter/http/dto/response"
	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase"
	"buildsite/internal/usecase/interfaces"
	"buildsite/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

var errArtifactStoreUnavailable = errors.New("artifact store not configured")

// PaymentHandler handles HTTP requests for payment schedules and their
// settlement. Proof files are persisted through the artifact store before
// the settlement is recorded; only the returned references enter the core.

type PaymentHandler struct {
	usecase   usecase.IPaymentUseCase
	artifacts interfaces.IArtifactStore
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, artifacts interfaces.IArtifactStore) *PaymentHandler {
	return &PaymentHandler{usecase: uc, artifacts: artifacts}
}

func (h *PaymentHandler) CreateScheduleEntry(c *gin.Context) {
	var payload request.ScheduleEntryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Schedule(c.Request.Context(), payload.MilestoneID, payload.PaymentName, payload.Amount, payload.DueDate)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromScheduleEntry(entry))
}

func (h *PaymentHandler) GetScheduleEntry(c *gin.Context) {
	entry, err := h.usecase.GetEntry(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScheduleEntry(entry))
}

func (h *PaymentHandler) ListScheduleByMilestone(c *gin.Context) {
	entries, err := h.usecase.ListByMilestone(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScheduleEntries(entries))
}

func (h *PaymentHandler) ListPaymentsByEntry(c *gin.Context) {
	payments, err := h.usecase.ListPaymentsByEntry(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// RecordPayment settles a schedule entry from a multipart form. Cash
// settlements attach `proof_photo` and `signature` file parts; gateway
// settlements send `gateway_payload` instead.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	entryID := c.Param("entry_id")

	var form request.PaymentRecordForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[payment][handler] record invalid form entry_id=%s err=%v", entryID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record start entry_id=%s method=%s amount=%.2f", entryID, form.Method, form.AmountPaid)

	in := usecase.RecordPaymentInput{
		ScheduleEntryID: entryID,
		AmountPaid:      form.AmountPaid,
		Method:          entities.PaymentMethod(form.Method),
		ReferenceNumber: form.ReferenceNumber,
		ProcessedBy:     form.ProcessedBy,
	}

	if in.Method == entities.PaymentMethodCash {
		proofRef, err := h.storeFilePart(c, "proof_photo", "proof")
		if err != nil {
			appErr := pkg.NewDomainError("ARTIFACT_STORE_FAILED", "Could not store proof photo", err, http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		signatureRef, err := h.storeFilePart(c, "signature", "signature")
		if err != nil {
			appErr := pkg.NewDomainError("ARTIFACT_STORE_FAILED", "Could not store signature", err, http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		in.ProofPhoto = proofRef
		in.Signature = signatureRef
	}

	if in.Method == entities.PaymentMethodGateway {
		payload := strings.TrimSpace(form.GatewayPayload)
		if payload == "" || !json.Valid([]byte(payload)) {
			if payload != "" && !isPaymentGatewayMockEnabled() {
				c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
				return
			}
			payload = "{}"
		}
		in.GatewayPayload = json.RawMessage(payload)
	}

	p, entry, err := h.usecase.RecordPayment(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] record failed entry_id=%s err=%v", entryID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if p.ID == "" {
		// Gateway checkout initiated but not yet approved.
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromSettlement(p, entry))
}

// ConfirmGatewayPayment is the provider webhook target. The external
// reference of the checkout carries the schedule entry id.
func (h *PaymentHandler) ConfirmGatewayPayment(c *gin.Context) {
	var payload request.GatewayConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] gateway confirm entry_id=%s provider_payment_id=%s", payload.ExternalReference, payload.ProviderPaymentID)

	p, err := h.usecase.ConfirmGatewayPayment(c.Request.Context(), payload.ExternalReference, payload.ProviderPaymentID, payload.Payload)
	if err != nil {
		log.Printf("[payment][handler] gateway confirm failed entry_id=%s err=%v", payload.ExternalReference, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// storeFilePart uploads one multipart file to the artifact store and returns
// its reference. A missing part is not an error here; the use case decides
// whether the method requires it.
func (h *PaymentHandler) storeFilePart(c *gin.Context, field, kind string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	data, err := readFilePart(fh)
	if err != nil {
		return "", err
	}
	if h.artifacts == nil {
		return "", errArtifactStoreUnavailable
	}
	return h.artifacts.Store(c.Request.Context(), kind, fh.Filename, data)
}

func readFilePart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingProof):
		return pkg.NewDomainErrorSimple("MISSING_PROOF", "Cash payments require a proof photo and a signature", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEntryAlreadySettled):
		return pkg.NewDomainErrorSimple("ENTRY_ALREADY_SETTLED", "Schedule entry is already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidScheduleEntryID), errors.Is(err, usecase.ErrInvalidPaymentName),
		errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidMilestoneID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrScheduleEntryNotFound):
		return pkg.NewDomainErrorSimple("SCHEDULE_ENTRY_NOT_FOUND", "Schedule entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
