package input

import (
	"context"

	"signalsite/internal/domain/entities"
)

type PageUseCase interface {
	Build(ctx context.Context, form entities.FormState) *entities.Page
}
