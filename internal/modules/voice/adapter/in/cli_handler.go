package in

import (
	"context"
	"strings"

	"neurowell/internal/modules/voice/dto"
	voicein "neurowell/internal/modules/voice/port/in"
)

type CLIHandler struct {
	usecase voicein.Usecase
}

func NewCLIHandler(usecase voicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Command dispatches the words as one spoken command.
func (h CLIHandler) Command(ctx context.Context, words []string) (dto.RouteOutput, error) {
	return h.usecase.Dispatch(ctx, dto.CommandInput{Command: strings.Join(words, " ")})
}

func (h CLIHandler) Listen(ctx context.Context) error {
	return h.usecase.Listen(ctx)
}

func (h CLIHandler) Simulate(ctx context.Context) (dto.RouteOutput, error) {
	return h.usecase.Simulate(ctx)
}

func (h CLIHandler) ScanBrain(ctx context.Context) (dto.ScanOutput, error) {
	return h.usecase.ScanBrain(ctx)
}
