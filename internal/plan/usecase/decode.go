package usecase

import (
	"context"
	"strings"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
)

// Decode runs raw model output through the decode pipeline.
func (uc *implUseCase) Decode(ctx context.Context, sc model.Scope, input plan.DecodeInput) (plan.DecodeOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return plan.DecodeOutput{}, plan.ErrEmptyContent
	}
	if input.Kind != decode.KindQuestions && input.Kind != decode.KindTasks {
		return plan.DecodeOutput{}, plan.ErrInvalidKind
	}

	content := input.Content
	if input.Envelope {
		var err error
		if content, err = decode.UnwrapEnvelope([]byte(input.Content)); err != nil {
			return plan.DecodeOutput{}, err
		}
	}

	res, err := uc.decoder.Decode(content, input.Kind)
	if err != nil {
		uc.logDecodeFailure(ctx, "Decode", err)
		return plan.DecodeOutput{}, err
	}

	uc.l.Debugf(ctx, "Decode: user=%s kind=%s strategy=%s", sc.UserID, input.Kind, res.Strategy)

	return plan.DecodeOutput{
		Strategy:           res.Strategy,
		Questions:          res.Questions,
		Tasks:              res.Tasks,
		ProjectTitle:       res.ProjectTitle,
		ProjectDescription: res.ProjectDescription,
	}, nil
}
