package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"buildsite/internal/domain/entities"
	"buildsite/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMilestoneNotFound        = errors.New("milestone not found")
	ErrInvalidMilestoneTitle    = errors.New("invalid milestone title")
	ErrInvalidTargetStatus      = errors.New("invalid target status")
	ErrMissingEvidence          = errors.New("completion photo evidence required")
	ErrInitialPaymentNotSettled = errors.New("initiating payment not settled")
	ErrProjectNotFound          = errors.New("project not found")
)

// IMilestoneUseCase governs the milestone lifecycle. All writes after
// creation go through Transition; there is no free-form update.

type IMilestoneUseCase interface {
	Create(ctx context.Context, draft entities.Milestone) (entities.Milestone, error)
	GetByID(ctx context.Context, id string) (entities.Milestone, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.Milestone, error)
	Transition(ctx context.Context, milestoneID string, target entities.MilestoneStatus, completionPhoto string) (entities.Milestone, error)
}

type MilestoneUseCase struct {
	repo         interfaces.IMilestoneRepository
	projectRepo  interfaces.IProjectRepository
	scheduleRepo interfaces.IPaymentScheduleRepository
	listeners    []interfaces.IMilestoneStatusListener
}

var _ IMilestoneUseCase = (*MilestoneUseCase)(nil)

func NewMilestoneUseCase(repo interfaces.IMilestoneRepository, projectRepo interfaces.IProjectRepository, scheduleRepo interfaces.IPaymentScheduleRepository, listeners ...interfaces.IMilestoneStatusListener) *MilestoneUseCase {
	return &MilestoneUseCase{repo: repo, projectRepo: projectRepo, scheduleRepo: scheduleRepo, listeners: listeners}
}

func (u *MilestoneUseCase) Create(ctx context.Context, draft entities.Milestone) (entities.Milestone, error) {
	draft.ProjectID = strings.TrimSpace(draft.ProjectID)
	if draft.ProjectID == "" {
		return entities.Milestone{}, ErrInvalidProjectID
	}
	if strings.TrimSpace(draft.Title) == "" {
		return entities.Milestone{}, ErrInvalidMilestoneTitle
	}

	p, err := u.projectRepo.GetByID(ctx, draft.ProjectID)
	if err != nil {
		return entities.Milestone{}, err
	}
	if p.ID == "" {
		return entities.Milestone{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.ProgressStatus = entities.MilestoneStatusPending
	draft.CompletionPhoto = ""
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *MilestoneUseCase) GetByID(ctx context.Context, id string) (entities.Milestone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Milestone{}, ErrInvalidMilestoneID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Milestone{}, err
	}
	if m.ID == "" {
		return entities.Milestone{}, ErrMilestoneNotFound
	}
	return m, nil
}

func (u *MilestoneUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.Milestone, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// Transition moves a milestone to target, enforcing the transition table and
// the two gates on top of it:
//
//   - pending -> payment_confirmed needs a paid schedule entry on the
//     milestone (the initiating payment, e.g. the down payment)
//   - in_progress -> completed needs a completion photo reference
//
// The write is a compare-and-swap on the status read here, so two racing
// transitions cannot both commit. On success every registered listener is
// notified; listener failures are logged, never propagated.
func (u *MilestoneUseCase) Transition(ctx context.Context, milestoneID string, target entities.MilestoneStatus, completionPhoto string) (entities.Milestone, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return entities.Milestone{}, ErrInvalidMilestoneID
	}
	switch target {
	case entities.MilestoneStatusPaymentConfirmed, entities.MilestoneStatusInProgress,
		entities.MilestoneStatusCompleted, entities.MilestoneStatusCancelled:
	default:
		return entities.Milestone{}, ErrInvalidTargetStatus
	}

	m, err := u.repo.GetByID(ctx, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}
	if m.ID == "" {
		return entities.Milestone{}, ErrMilestoneNotFound
	}

	if !m.ProgressStatus.CanTransitionTo(target) {
		return entities.Milestone{}, newInvalidTransition("milestone", m.ID, string(m.ProgressStatus), string(target))
	}

	switch target {
	case entities.MilestoneStatusPaymentConfirmed:
		settled, err := u.initiatingPaymentSettled(ctx, m.ID)
		if err != nil {
			return entities.Milestone{}, err
		}
		if !settled {
			return entities.Milestone{}, ErrInitialPaymentNotSettled
		}
	case entities.MilestoneStatusCompleted:
		completionPhoto = strings.TrimSpace(completionPhoto)
		if completionPhoto == "" {
			return entities.Milestone{}, ErrMissingEvidence
		}
	}
	if target != entities.MilestoneStatusCompleted {
		completionPhoto = ""
	}

	previous := m.ProgressStatus
	updated, err := u.repo.UpdateStatus(ctx, m.ID, previous, target, completionPhoto)
	if err != nil {
		return entities.Milestone{}, err
	}
	if updated.ID == "" {
		// Lost the CAS race; the caller must re-fetch the current state.
		return entities.Milestone{}, newInvalidTransition("milestone", m.ID, string(previous), string(target))
	}

	log.Printf("[milestone][usecase] transition success milestone_id=%s from=%s to=%s", updated.ID, previous, updated.ProgressStatus)
	for _, l := range u.listeners {
		l.MilestoneStatusChanged(ctx, updated, previous)
	}
	return updated, nil
}

func (u *MilestoneUseCase) initiatingPaymentSettled(ctx context.Context, milestoneID string) (bool, error) {
	entries, err := u.scheduleRepo.ListByMilestoneID(ctx, milestoneID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.Status == entities.ScheduleStatusPaid {
			return true, nil
		}
	}
	return false, nil
}
