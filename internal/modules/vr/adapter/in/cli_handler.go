package in

import (
	"context"

	"neurowell/internal/modules/vr/dto"
	vrin "neurowell/internal/modules/vr/port/in"
)

type CLIHandler struct {
	usecase vrin.Usecase
}

func NewCLIHandler(usecase vrin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, contentID string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{ContentID: contentID})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.EntryOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Wait(ctx context.Context) error {
	return h.usecase.Wait(ctx)
}
