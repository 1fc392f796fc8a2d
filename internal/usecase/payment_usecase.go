package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrScheduleEntryNotFound      = errors.New("schedule entry not found")
	ErrInvalidScheduleEntryID     = errors.New("invalid schedule entry id")
	ErrInvalidPaymentName         = errors.New("invalid payment name")
	ErrInvalidPaymentAmount       = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrMissingProof               = errors.New("proof photo and signature required for cash payment")
	ErrEntryAlreadySettled        = errors.New("schedule entry already settled")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// RecordPaymentInput carries one settlement attempt against a schedule
// entry. ProofPhoto and Signature are artifact references handed back by the
// media service, never bytes.
type RecordPaymentInput struct {
	ScheduleEntryID string
	AmountPaid      float64
	Method          entities.PaymentMethod
	ProofPhoto      string
	Signature       string
	ReferenceNumber string
	ProcessedBy     string
	GatewayPayload  json.RawMessage
}

// IPaymentUseCase defines what is owed per milestone and records how it is
// satisfied.
//
// Settlement is all-or-nothing per entry: no partial payments. A cash
// payment settles synchronously; a gateway payment initiates a checkout and
// settles either synchronously (provider approved inline, e.g. mock mode) or
// through ConfirmGatewayPayment when the provider webhook fires.

type IPaymentUseCase interface {
	Schedule(ctx context.Context, milestoneID, paymentName string, amount float64, dueDate time.Time) (entities.PaymentScheduleEntry, error)
	GetEntry(ctx context.Context, entryID string) (entities.PaymentScheduleEntry, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]entities.PaymentScheduleEntry, error)
	RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, entities.PaymentScheduleEntry, error)
	ConfirmGatewayPayment(ctx context.Context, entryID, providerPaymentID string, payload json.RawMessage) (entities.Payment, error)
	ListPaymentsByEntry(ctx context.Context, entryID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	scheduleRepo  interfaces.IPaymentScheduleRepository
	paymentRepo   interfaces.IPaymentRepository
	milestoneRepo interfaces.IMilestoneRepository
	gateway       interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)
var _ interfaces.IMilestoneStatusListener = (*PaymentUseCase)(nil)

func NewPaymentUseCase(scheduleRepo interfaces.IPaymentScheduleRepository, paymentRepo interfaces.IPaymentRepository, milestoneRepo interfaces.IMilestoneRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{scheduleRepo: scheduleRepo, paymentRepo: paymentRepo, milestoneRepo: milestoneRepo, gateway: gateway}
}

func (u *PaymentUseCase) Schedule(ctx context.Context, milestoneID, paymentName string, amount float64, dueDate time.Time) (entities.PaymentScheduleEntry, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return entities.PaymentScheduleEntry{}, ErrInvalidMilestoneID
	}
	paymentName = strings.TrimSpace(paymentName)
	if paymentName == "" {
		return entities.PaymentScheduleEntry{}, ErrInvalidPaymentName
	}
	if amount <= 0 {
		return entities.PaymentScheduleEntry{}, ErrInvalidPaymentAmount
	}

	m, err := u.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return entities.PaymentScheduleEntry{}, err
	}
	if m.ID == "" {
		return entities.PaymentScheduleEntry{}, ErrMilestoneNotFound
	}

	now := time.Now().UTC()
	e := entities.PaymentScheduleEntry{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		ProjectID:   m.ProjectID,
		PaymentName: paymentName,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      entities.ScheduleStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.scheduleRepo.Create(ctx, e)
}

func (u *PaymentUseCase) GetEntry(ctx context.Context, entryID string) (entities.PaymentScheduleEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.PaymentScheduleEntry{}, ErrInvalidScheduleEntryID
	}
	e, err := u.scheduleRepo.GetByID(ctx, entryID)
	if err != nil {
		return entities.PaymentScheduleEntry{}, err
	}
	if e.ID == "" {
		return entities.PaymentScheduleEntry{}, ErrScheduleEntryNotFound
	}
	return e, nil
}

func (u *PaymentUseCase) ListByMilestone(ctx context.Context, milestoneID string) ([]entities.PaymentScheduleEntry, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return nil, ErrInvalidMilestoneID
	}
	return u.scheduleRepo.ListByMilestoneID(ctx, milestoneID)
}

// RecordPayment settles a schedule entry.
//
// Cash requires both a proof photo and a signature reference and settles in
// this call. Gateway enriches the provider payload (external_reference,
// amount from the entry as source of truth) and initiates a checkout; when
// the provider does not approve inline the entry is left untouched and the
// returned Payment is zero, settlement then happens in ConfirmGatewayPayment.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, entities.PaymentScheduleEntry, error) {
	in.ScheduleEntryID = strings.TrimSpace(in.ScheduleEntryID)
	log.Printf("[payment][usecase] record start entry_id=%s method=%s amount=%.2f", in.ScheduleEntryID, in.Method, in.AmountPaid)
	if in.ScheduleEntryID == "" {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrInvalidScheduleEntryID
	}
	if in.AmountPaid <= 0 {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrInvalidPaymentAmount
	}

	entry, err := u.scheduleRepo.GetByID(ctx, in.ScheduleEntryID)
	if err != nil {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, err
	}
	if entry.ID == "" {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrScheduleEntryNotFound
	}
	if entry.Status == entities.ScheduleStatusPaid {
		log.Printf("[payment][usecase] entry already settled entry_id=%s", entry.ID)
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrEntryAlreadySettled
	}

	switch in.Method {
	case entities.PaymentMethodCash:
		if strings.TrimSpace(in.ProofPhoto) == "" || strings.TrimSpace(in.Signature) == "" {
			log.Printf("[payment][usecase] missing proof entry_id=%s photo=%t signature=%t",
				entry.ID, in.ProofPhoto != "", in.Signature != "")
			return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrMissingProof
		}
		p := entities.Payment{
			ID:              uuid.NewString(),
			ScheduleEntryID: entry.ID,
			AmountPaid:      in.AmountPaid,
			PaymentDate:     time.Now().UTC(),
			Method:          entities.PaymentMethodCash,
			ReferenceNumber: in.ReferenceNumber,
			ProofPhoto:      in.ProofPhoto,
			Signature:       in.Signature,
			ProcessedBy:     in.ProcessedBy,
		}
		return u.settle(ctx, entry, p)

	case entities.PaymentMethodGateway:
		return u.initiateGatewayCheckout(ctx, entry, in)

	default:
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrInvalidPaymentMethod
	}
}

func (u *PaymentUseCase) initiateGatewayCheckout(ctx context.Context, entry entities.PaymentScheduleEntry, in RecordPaymentInput) (entities.Payment, entities.PaymentScheduleEntry, error) {
	if u.gateway == nil {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, errors.New("payment gateway not configured")
	}

	payload := in.GatewayPayload
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}

	// Link the checkout to the entry so provider events can be reconciled;
	// the source of truth for amount is the schedule entry in DB.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = entry.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = "Schedule entry " + entry.PaymentName
		}
		reqMap["transaction_amount"] = entry.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] calling payment gateway entry_id=%s", entry.ID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreateCheckout(ctx, entry.ID, entry.Amount, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed entry_id=%s err=%v", entry.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, entities.PaymentScheduleEntry{}, err
	}
	log.Printf("[payment][usecase] gateway checkout created entry_id=%s provider_payment_id=%s provider_status=%s", entry.ID, providerPaymentID, providerStatus)

	if providerStatus != "approved" {
		// Checkout initiated; the entry stays as-is until the webhook confirms.
		return entities.Payment{}, entry, nil
	}
	return u.settle(ctx, entry, gatewayPayment(entry.ID, providerPaymentID, in.AmountPaid, in.ProcessedBy, providerResp))
}

// ConfirmGatewayPayment is the provider confirmation callback. It settles
// the entry referenced by the checkout's external_reference.
func (u *PaymentUseCase) ConfirmGatewayPayment(ctx context.Context, entryID, providerPaymentID string, payload json.RawMessage) (entities.Payment, error) {
	entryID = strings.TrimSpace(entryID)
	log.Printf("[payment][usecase] gateway confirm start entry_id=%s provider_payment_id=%s", entryID, providerPaymentID)
	if entryID == "" {
		return entities.Payment{}, ErrInvalidScheduleEntryID
	}

	entry, err := u.scheduleRepo.GetByID(ctx, entryID)
	if err != nil {
		return entities.Payment{}, err
	}
	if entry.ID == "" {
		return entities.Payment{}, ErrScheduleEntryNotFound
	}
	if entry.Status == entities.ScheduleStatusPaid {
		return entities.Payment{}, ErrEntryAlreadySettled
	}

	created, _, err := u.settle(ctx, entry, gatewayPayment(entry.ID, providerPaymentID, entry.Amount, "", payload))
	return created, err
}

func (u *PaymentUseCase) ListPaymentsByEntry(ctx context.Context, entryID string) ([]entities.Payment, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return nil, ErrInvalidScheduleEntryID
	}
	return u.paymentRepo.ListByScheduleEntryID(ctx, entryID)
}

// settle flips the entry to paid under a CAS on its current status, then
// appends the immutable payment record. The CAS is the double-settlement
// guard: a racing settlement loses the conditional write. A failed settlement
// must leave the entry as it was, so if the payment write fails the status
// flip is rolled back and the caller can retry the whole settlement.
func (u *PaymentUseCase) settle(ctx context.Context, entry entities.PaymentScheduleEntry, p entities.Payment) (entities.Payment, entities.PaymentScheduleEntry, error) {
	updatedEntry, err := u.scheduleRepo.UpdateStatus(ctx, entry.ID, entry.Status, entities.ScheduleStatusPaid)
	if err != nil {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, err
	}
	if updatedEntry.ID == "" {
		return entities.Payment{}, entities.PaymentScheduleEntry{}, ErrEntryAlreadySettled
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment record create failed entry_id=%s payment_id=%s err=%v", entry.ID, p.ID, err)
		if _, revertErr := u.scheduleRepo.UpdateStatus(ctx, entry.ID, entities.ScheduleStatusPaid, entry.Status); revertErr != nil {
			log.Printf("[payment][usecase] settle rollback failed entry_id=%s status=%s err=%v", entry.ID, entry.Status, revertErr)
		}
		return entities.Payment{}, entities.PaymentScheduleEntry{}, err
	}
	log.Printf("[payment][usecase] settle success entry_id=%s payment_id=%s method=%s", entry.ID, created.ID, created.Method)
	return created, updatedEntry, nil
}

func gatewayPayment(entryID, providerPaymentID string, amount float64, processedBy string, providerResp json.RawMessage) entities.Payment {
	id := strings.TrimSpace(providerPaymentID)
	if id == "" {
		id = uuid.NewString()
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Printf("[payment][usecase] provider response unmarshal failed entry_id=%s err=%v", entryID, err)
		}
	}

	return entities.Payment{
		ID:                 id,
		ScheduleEntryID:    entryID,
		AmountPaid:         amount,
		PaymentDate:        time.Now().UTC(),
		Method:             entities.PaymentMethodGateway,
		ReferenceNumber:    strings.TrimSpace(providerPaymentID),
		ProcessedBy:        processedBy,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
}

// MilestoneStatusChanged unlocks the next due entry of the project when a
// milestone completes: the earliest pending entry moves to for_payment so
// the client can be billed for the next phase.
func (u *PaymentUseCase) MilestoneStatusChanged(ctx context.Context, m entities.Milestone, previous entities.MilestoneStatus) {
	if m.ProgressStatus != entities.MilestoneStatusCompleted {
		return
	}

	entries, err := u.scheduleRepo.ListByProjectID(ctx, m.ProjectID)
	if err != nil {
		log.Printf("[payment][usecase] unlock-next list failed project_id=%s err=%v", m.ProjectID, err)
		return
	}

	var next entities.PaymentScheduleEntry
	for _, e := range entries {
		if e.Status != entities.ScheduleStatusPending {
			continue
		}
		if next.ID == "" || e.DueDate.Before(next.DueDate) {
			next = e
		}
	}
	if next.ID == "" {
		return
	}

	updated, err := u.scheduleRepo.UpdateStatus(ctx, next.ID, entities.ScheduleStatusPending, entities.ScheduleStatusForPayment)
	if err != nil {
		log.Printf("[payment][usecase] unlock-next update failed entry_id=%s err=%v", next.ID, err)
		return
	}
	if updated.ID == "" {
		return
	}
	log.Printf("[payment][usecase] unlocked next entry entry_id=%s project_id=%s milestone_id=%s", updated.ID, m.ProjectID, updated.MilestoneID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
