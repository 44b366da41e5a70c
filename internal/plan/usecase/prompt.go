package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"ai-tasker/internal/plan"
	"ai-tasker/pkg/llmprovider"
)

const questionsSystemPrompt = `You are a helpful project planning assistant. Your job is to ask clarifying questions
to help users better define their project scope.

CRITICAL: Generate EXACTLY %d specific, practical questions. No more, no less.

Return ONLY valid JSON. Do not include any markdown, code blocks, or extra text.
Return the JSON in this exact format:
{
  "questions": [
    {"question": "What is the date of the party?", "type": "date", "options": null},
    {"question": "How many guests are expected?", "type": "number", "options": null},
    {"question": "What type of party is it?", "type": "multipleChoice", "options": ["Birthday", "Wedding", "Corporate", "Casual Gathering", "Other"]},
    {"question": "What is your budget?", "type": "freeText", "options": null}
  ]
}

"type" MUST be one of: "freeText", "multipleChoice", "date", "number".
For freeText, date and number types, options should be null.
For multipleChoice, provide an array of options.`

const detailedTasksSystemPrompt = `You are an expert project planning assistant. Create a detailed, comprehensive task list
based on the user's goal and answers to clarifying questions. Generate 15-30 specific,
actionable tasks that cover all aspects needed to accomplish the goal.

For each task, determine relevant fields that the user should fill in. For example:
- "Book Accommodation" task should have fields: hotel name, check-in date, room type, confirmation number
- "Create Guest List" task should have fields: guest name, contact info, dietary restrictions

Return ONLY valid JSON in this exact format:
{
  "projectTitle": "Short project title",
  "projectDescription": "One sentence summary",
  "tasks": [
    {
      "title": "Book Accommodation",
      "description": "Find and book hotel for the event",
      "estimatedTime": 60,
      "priority": "high",
      "fields": [
        {"fieldName": "Hotel Name", "fieldType": "text", "fieldOrder": 1},
        {"fieldName": "Check-in Date", "fieldType": "date", "fieldOrder": 2}
      ]
    }
  ]
}

RULES:
- estimatedTime is an integer number of minutes
- priority MUST be one of: high, medium, low
- fieldType MUST be one of: text, number, currency, date, checkbox, list
- Include planning, preparation, execution, and follow-up tasks`

const quickTasksSystemPrompt = `You are an expert task planner. When given a goal, break it down into specific, actionable tasks.
Return ONLY valid JSON in this exact format:
{
  "tasks": [
    {
      "title": "Task title",
      "description": "Brief description of the task",
      "estimatedTime": 30,
      "priority": "high|medium|low"
    }
  ]
}
Keep responses concise and practical. Generate between 3-7 tasks depending on complexity.`

// questionsRequest composes the clarifying-question request for goal.
func (uc *implUseCase) questionsRequest(goal string, count int) *llmprovider.Request {
	user := fmt.Sprintf("Goal: %s\n\nPlease generate exactly %d clarifying questions to help better plan this project.\nRemember: Return ONLY the JSON object, no other text or markdown.", goal, count)

	return &llmprovider.Request{
		System:      fmt.Sprintf(questionsSystemPrompt, count),
		Messages:    []llmprovider.Message{{Role: "user", Content: user}},
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
		JSONMode:    uc.cfg.JSONMode,
	}
}

// tasksRequest composes the task-generation request. Inputs with answers get
// the detailed prompt with per-task fields; the rest get the quick planner.
func (uc *implUseCase) tasksRequest(input plan.TasksInput) *llmprovider.Request {
	system := quickTasksSystemPrompt
	if len(input.Answers) > 0 {
		system = detailedTasksSystemPrompt
	}

	return &llmprovider.Request{
		System:      system,
		Messages:    []llmprovider.Message{{Role: "user", Content: uc.tasksUserPrompt(input)}},
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
		JSONMode:    uc.cfg.JSONMode,
	}
}

func (uc *implUseCase) tasksUserPrompt(input plan.TasksInput) string {
	var sb strings.Builder

	sb.WriteString("Goal: ")
	sb.WriteString(input.Goal)
	sb.WriteString("\n")

	if input.TimeAvailableHours > 0 {
		sb.WriteString("Time available: ")
		sb.WriteString(strconv.FormatFloat(input.TimeAvailableHours, 'f', -1, 64))
		sb.WriteString(" hours\n")
	}
	if input.Category != "" {
		sb.WriteString("Category: " + input.Category + "\n")
	}
	if input.PriorityHint != "" {
		sb.WriteString("Priority: " + input.PriorityHint + "\n")
	}

	style := input.Style
	if style == "" {
		style = uc.cfg.Style
	}
	sb.WriteString("Task style: " + style + "\n")

	if len(input.Answers) > 0 {
		sb.WriteString("\nUser's Answers to Clarifying Questions:\n")
		for _, a := range input.Answers {
			sb.WriteString(fmt.Sprintf("%s: %s\n", a.Question, a.Answer))
		}
		sb.WriteString("\nPlease create a comprehensive, detailed task list with 15-30 tasks to accomplish this goal.\n")
		sb.WriteString("Take into account all the user's answers and create specific tasks based on those details.")
		return sb.String()
	}

	sb.WriteString("\nPlease generate a task list to accomplish this goal.")
	return sb.String()
}
