package input

import (
	"context"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
)

type LeadUseCase interface {
	Validate(ctx context.Context, in entities.LeadInput) map[domain.Field]string
	Submit(ctx context.Context, token string, in entities.LeadInput) (*entities.Lead, error)
	ErrorMessage(ctx context.Context, err error) string
	FieldMessages(ctx context.Context, err error) map[domain.Field]string
}
