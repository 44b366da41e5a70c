package http

import (
	"errors"
	"regexp"
	"strings"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
	"ai-tasker/pkg/response"
)

var (
	errInvalidKind           = errors.New("kind must be questions or tasks")
	errInvalidCredentialName = errors.New("credential name must match [a-z0-9_.-]{1,64}")
	errEmptyCredentialValue  = errors.New("value is required")

	credentialNamePattern = regexp.MustCompile(`^[a-z0-9_.-]{1,64}$`)
)

// --- Request DTOs ---

type questionsReq struct {
	Goal  string `json:"goal"  binding:"required,max=2000"`
	Count int    `json:"count" binding:"omitempty,min=1,max=10"`
}

func (r questionsReq) toInput() plan.QuestionsInput {
	return plan.QuestionsInput{Goal: r.Goal, Count: r.Count}
}

type answerReq struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

type tasksReq struct {
	Goal               string      `json:"goal"               binding:"required,max=2000"`
	Answers            []answerReq `json:"answers"            binding:"omitempty,max=20,dive"`
	TimeAvailableHours float64     `json:"timeAvailableHours" binding:"omitempty,min=0,max=1000"`
	Category           string      `json:"category"           binding:"max=100"`
	Priority           string      `json:"priority"           binding:"max=50"`
	Style              string      `json:"style"              binding:"max=50"`
}

func (r tasksReq) toInput() plan.TasksInput {
	answers := make([]plan.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, plan.Answer{Question: a.Question, Answer: a.Answer})
	}
	return plan.TasksInput{
		Goal:               r.Goal,
		Answers:            answers,
		TimeAvailableHours: r.TimeAvailableHours,
		Category:           r.Category,
		PriorityHint:       r.Priority,
		Style:              r.Style,
	}
}

type decodeReq struct {
	Content  string `json:"content"  binding:"required"`
	Kind     string `json:"kind"     binding:"required"`
	Envelope bool   `json:"envelope"`
}

func (r decodeReq) toInput() (plan.DecodeInput, error) {
	kind, err := decode.ParseKind(r.Kind)
	if err != nil {
		return plan.DecodeInput{}, errInvalidKind
	}
	return plan.DecodeInput{Content: r.Content, Kind: kind, Envelope: r.Envelope}, nil
}

type listReq struct {
	Kind   string `form:"kind"   binding:"omitempty,oneof=questions tasks"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() plan.ListInput {
	return plan.ListInput{Kind: model.PlanKind(r.Kind), Limit: r.Limit, Offset: r.Offset}
}

type credentialReq struct {
	Value string `json:"value" binding:"required"`
}

func normalizeCredentialName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !credentialNamePattern.MatchString(name) {
		return "", errInvalidCredentialName
	}
	return name, nil
}

// --- Response DTOs ---

type questionsResp struct {
	PlanID    string                     `json:"planId"`
	Questions []model.ClarifyingQuestion `json:"questions"`
	Provider  string                     `json:"provider"`
	Model     string                     `json:"model"`
	Strategy  string                     `json:"strategy"`
}

func (h *handler) newQuestionsResp(o plan.QuestionsOutput) questionsResp {
	return questionsResp{
		PlanID:    o.PlanID,
		Questions: nonNil(o.Questions),
		Provider:  o.Provider,
		Model:     o.Model,
		Strategy:  o.Strategy,
	}
}

type tasksResp struct {
	PlanID             string                `json:"planId"`
	ProjectTitle       string                `json:"projectTitle,omitempty"`
	ProjectDescription string                `json:"projectDescription,omitempty"`
	Tasks              []model.GeneratedTask `json:"tasks"`
	TotalMinutes       int                   `json:"totalMinutes"`
	Provider           string                `json:"provider"`
	Model              string                `json:"model"`
	Strategy           string                `json:"strategy"`
	ExportedURLs       []string              `json:"exportedUrls,omitempty"`
}

func (h *handler) newTasksResp(o plan.TasksOutput) tasksResp {
	return tasksResp{
		PlanID:             o.PlanID,
		ProjectTitle:       o.ProjectTitle,
		ProjectDescription: o.ProjectDescription,
		Tasks:              nonNil(o.Tasks),
		TotalMinutes:       o.TotalMinutes,
		Provider:           o.Provider,
		Model:              o.Model,
		Strategy:           o.Strategy,
		ExportedURLs:       o.ExportedURLs,
	}
}

type decodeResp struct {
	Strategy           string                     `json:"strategy"`
	Questions          []model.ClarifyingQuestion `json:"questions,omitempty"`
	Tasks              []model.GeneratedTask      `json:"tasks,omitempty"`
	ProjectTitle       string                     `json:"projectTitle,omitempty"`
	ProjectDescription string                     `json:"projectDescription,omitempty"`
}

func (h *handler) newDecodeResp(o plan.DecodeOutput) decodeResp {
	return decodeResp(o)
}

type planResp struct {
	ID                 string                     `json:"id"`
	Kind               model.PlanKind             `json:"kind"`
	Goal               string                     `json:"goal"`
	ProjectTitle       string                     `json:"projectTitle,omitempty"`
	ProjectDescription string                     `json:"projectDescription,omitempty"`
	Questions          []model.ClarifyingQuestion `json:"questions,omitempty"`
	Tasks              []model.GeneratedTask      `json:"tasks,omitempty"`
	TotalMinutes       int                        `json:"totalMinutes,omitempty"`
	Provider           string                     `json:"provider,omitempty"`
	CreatedAt          response.DateTime          `json:"createdAt"`
}

func (h *handler) newPlanResp(p model.Plan) planResp {
	return planResp{
		ID:                 p.ID,
		Kind:               p.Kind,
		Goal:               p.Goal,
		ProjectTitle:       p.ProjectTitle,
		ProjectDescription: p.ProjectDescription,
		Questions:          p.Questions,
		Tasks:              p.Tasks,
		TotalMinutes:       p.TotalMinutes(),
		Provider:           p.Provider,
		CreatedAt:          response.DateTime(p.CreatedAt),
	}
}

type listResp struct {
	Plans []planResp `json:"plans"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(plans []model.Plan) listResp {
	out := listResp{Plans: make([]planResp, 0, len(plans)), Count: len(plans)}
	for _, p := range plans {
		out.Plans = append(out.Plans, h.newPlanResp(p))
	}
	return out
}

type credentialResp struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
