package usecase

import (
	"context"
	"errors"
	"fmt"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/plan"
	"ai-tasker/pkg/llmprovider"
)

// complete sends req and unwraps the reply content from the envelope.
func (uc *implUseCase) complete(ctx context.Context, req *llmprovider.Request) (string, *llmprovider.Response, error) {
	resp, err := uc.llm.Complete(ctx, req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return "", nil, fmt.Errorf("%w: %v", plan.ErrCancelled, err)
		}
		return "", nil, fmt.Errorf("LLM request failed: %w", err)
	}

	content, err := decode.UnwrapEnvelope(resp.Body)
	if err != nil {
		uc.l.Warnf(ctx, "LLM envelope from %s rejected: %v", resp.ProviderName, err)
		return "", nil, err
	}
	uc.l.Debugf(ctx, "LLM raw content from %s: %s", resp.ProviderName, content)
	return content, resp, nil
}

func (uc *implUseCase) logDecodeFailure(ctx context.Context, op string, err error) {
	var shapeErr *decode.UnrecognizedShapeError
	if errors.As(err, &shapeErr) {
		uc.l.Errorf(ctx, "%s: unrecognized %s shape. Raw=%q", op, shapeErr.Kind, shapeErr.Raw)
		return
	}
	uc.l.Errorf(ctx, "%s: decode failed: %v", op, err)
}
