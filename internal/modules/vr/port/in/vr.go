package in

import (
	"context"

	"neurowell/internal/modules/vr/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	List(ctx context.Context) ([]dto.EntryOutput, error)
	Active() bool
	Wait(ctx context.Context) error
}
