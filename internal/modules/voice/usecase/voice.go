package usecase

import (
	"context"

	"neurowell/internal/modules/voice/domain"
	"neurowell/internal/modules/voice/dto"
	voicein "neurowell/internal/modules/voice/port/in"
	"neurowell/internal/modules/voice/service"
)

type Interactor struct {
	router *service.Router
}

func NewInteractor(router *service.Router) voicein.Usecase {
	return &Interactor{router: router}
}

func (i *Interactor) Dispatch(ctx context.Context, input dto.CommandInput) (dto.RouteOutput, error) {
	return toRouteOutput(i.router.Dispatch(ctx, input.Command)), nil
}

func (i *Interactor) Listen(ctx context.Context) error {
	return i.router.Listen(ctx)
}

func (i *Interactor) Simulate(ctx context.Context) (dto.RouteOutput, error) {
	command := i.router.Simulate(ctx)
	return toRouteOutput(domain.Resolve(command)), nil
}

func (i *Interactor) ScanBrain(ctx context.Context) (dto.ScanOutput, error) {
	state := i.router.ScanBrain(ctx)
	return dto.ScanOutput{State: state.Name, Effect: state.Effect, Action: string(state.Action)}, nil
}

func toRouteOutput(r domain.Route) dto.RouteOutput {
	return dto.RouteOutput{Command: r.Command, Action: string(r.Action), ContentID: r.ContentID}
}
