package interfaces

import (
	"buildsite/internal/domain/entities"
	"context"
)

// IMilestoneStatusListener receives the status-change event emitted after a
// successful milestone transition. Listeners run in-process, after the write
// has committed; a listener failure never rolls the transition back.
type IMilestoneStatusListener interface {
	MilestoneStatusChanged(ctx context.Context, milestone entities.Milestone, previous entities.MilestoneStatus)
}
