package output

import (
	"context"

	"signalsite/internal/domain/entities"
)

// LeadSink is the write-only destination of accepted leads.
type LeadSink interface {
	// Insert stores lead and sets lead.ID. Failures are classified with
	// domain.ErrDuplicateLead or domain.ErrSinkUnavailable.
	Insert(ctx context.Context, lead *entities.Lead) error
}
