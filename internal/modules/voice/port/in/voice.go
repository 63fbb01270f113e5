package in

import (
	"context"

	"neurowell/internal/modules/voice/dto"
)

type Usecase interface {
	Dispatch(ctx context.Context, input dto.CommandInput) (dto.RouteOutput, error)
	Listen(ctx context.Context) error
	Simulate(ctx context.Context) (dto.RouteOutput, error)
	ScanBrain(ctx context.Context) (dto.ScanOutput, error)
}
