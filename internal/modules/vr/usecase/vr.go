package usecase

import (
	"context"

	"neurowell/internal/modules/vr/domain"
	"neurowell/internal/modules/vr/dto"
	vrin "neurowell/internal/modules/vr/port/in"
	"neurowell/internal/modules/vr/service"
	"neurowell/internal/platform/id"
)

type Interactor struct {
	timer *service.ProgressTimer
	ids   id.Generator
}

func NewInteractor(timer *service.ProgressTimer, ids id.Generator) vrin.Usecase {
	return &Interactor{timer: timer, ids: ids}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	d := domain.Lookup(input.ContentID)
	runID := i.ids.New()
	if err := i.timer.Start(ctx, runID, d); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		RunID:           runID,
		ContentID:       input.ContentID,
		Name:            d.Name,
		DurationMinutes: d.DurationMinutes,
		Steps:           domain.Steps(i.timer.StepSize()),
	}, nil
}

func (i *Interactor) List(_ context.Context) ([]dto.EntryOutput, error) {
	entries := domain.Catalog()
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryOutput{
			ID:              e.ID,
			Name:            e.Descriptor.Name,
			DurationMinutes: e.Descriptor.DurationMinutes,
			ContentType:     e.ContentType,
			Description:     e.Description,
			Difficulty:      e.Difficulty,
		})
	}
	return out, nil
}

func (i *Interactor) Active() bool {
	return i.timer.Active()
}

func (i *Interactor) Wait(ctx context.Context) error {
	return i.timer.Wait(ctx)
}
