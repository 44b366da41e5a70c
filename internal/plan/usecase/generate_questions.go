package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
	"ai-tasker/internal/plan/repository"
)

// GenerateQuestions asks the model for clarifying questions and stores them.
func (uc *implUseCase) GenerateQuestions(ctx context.Context, sc model.Scope, input plan.QuestionsInput) (plan.QuestionsOutput, error) {
	goal := strings.TrimSpace(input.Goal)
	if goal == "" {
		return plan.QuestionsOutput{}, plan.ErrEmptyGoal
	}

	count := input.Count
	if count <= 0 {
		count = uc.cfg.QuestionCount
	}
	count = min(count, maxQuestionCount)

	uc.l.Infof(ctx, "GenerateQuestions: user=%s goal_length=%d count=%d", sc.UserID, len(goal), count)

	content, resp, err := uc.complete(ctx, uc.questionsRequest(goal, count))
	if err != nil {
		return plan.QuestionsOutput{}, err
	}

	res, err := uc.decoder.Decode(content, decode.KindQuestions)
	if err != nil {
		uc.logDecodeFailure(ctx, "GenerateQuestions", err)
		return plan.QuestionsOutput{}, err
	}
	if len(res.Questions) != count {
		uc.l.Warnf(ctx, "GenerateQuestions: asked for %d questions, model returned %d", count, len(res.Questions))
	}

	saved, err := uc.repo.SaveQuestions(ctx, repository.SaveQuestionsOptions{
		UserID:    sc.UserID,
		Goal:      goal,
		Provider:  resp.ProviderName,
		Questions: res.Questions,
	})
	if err != nil {
		return plan.QuestionsOutput{}, fmt.Errorf("failed to store questions: %w", err)
	}

	uc.l.Infof(ctx, "GenerateQuestions: plan=%s questions=%d strategy=%s provider=%s",
		saved.PlanID, len(res.Questions), res.Strategy, resp.ProviderName)

	return plan.QuestionsOutput{
		PlanID:    saved.PlanID,
		Questions: res.Questions,
		Provider:  resp.ProviderName,
		Model:     resp.ModelName,
		Strategy:  res.Strategy,
	}, nil
}
