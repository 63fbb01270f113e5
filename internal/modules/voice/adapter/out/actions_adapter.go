package out

import (
	"context"

	voiceout "neurowell/internal/modules/voice/port/out"
	vrdto "neurowell/internal/modules/vr/dto"
	vrin "neurowell/internal/modules/vr/port/in"
	wellnessdto "neurowell/internal/modules/wellness/dto"
	wellnessin "neurowell/internal/modules/wellness/port/in"
)

// InputSource reads the current slider and feelings values.
type InputSource func() wellnessdto.PlanInput

// Focuser moves input focus to the mood slider.
type Focuser func(ctx context.Context) error

type ActionsAdapter struct {
	vr       vrin.Usecase
	wellness wellnessin.Usecase
	inputs   InputSource
	focus    Focuser
}

func NewActionsAdapter(vr vrin.Usecase, wellness wellnessin.Usecase, inputs InputSource, focus Focuser) voiceout.Actions {
	return &ActionsAdapter{vr: vr, wellness: wellness, inputs: inputs, focus: focus}
}

func (a *ActionsAdapter) StartVR(ctx context.Context, contentID string) error {
	_, err := a.vr.Start(ctx, vrdto.StartInput{ContentID: contentID})
	return err
}

func (a *ActionsAdapter) GenerateWorkout(ctx context.Context) error {
	return a.wellness.GenerateWorkout(ctx)
}

func (a *ActionsAdapter) FocusMood(ctx context.Context) error {
	if a.focus == nil {
		return nil
	}
	return a.focus(ctx)
}

func (a *ActionsAdapter) GeneratePlan(ctx context.Context) error {
	_, err := a.wellness.GeneratePlan(ctx, a.inputs())
	return err
}
