package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
)

const cliUserID = "cli"

func newQuestionsCmd(getUC func(*cobra.Command) (plan.UseCase, error)) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "questions <goal>",
		Short: "Ask for clarifying questions about a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := getUC(cmd)
			if err != nil {
				return err
			}

			out, err := uc.GenerateQuestions(cmd.Context(), model.Scope{UserID: cliUserID}, plan.QuestionsInput{
				Goal:  strings.Join(args, " "),
				Count: count,
			})
			if err != nil {
				return explain(err)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of questions (default from config)")
	return cmd
}

func newTasksCmd(getUC func(*cobra.Command) (plan.UseCase, error)) *cobra.Command {
	var (
		answers  []string
		hours    float64
		category string
		priority string
		style    string
	)

	cmd := &cobra.Command{
		Use:   "tasks <goal>",
		Short: "Generate a task plan for a goal",
		Long: `Generate a task plan. Pass --answer "question=answer" once per clarifying
question to get the detailed planner with per-task input fields.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			uc, err := getUC(cmd)
			if err != nil {
				return err
			}

			out, err := uc.GenerateTasks(cmd.Context(), model.Scope{UserID: cliUserID}, plan.TasksInput{
				Goal:               strings.Join(args, " "),
				Answers:            parsed,
				TimeAvailableHours: hours,
				Category:           category,
				PriorityHint:       priority,
				Style:              style,
			})
			if err != nil {
				return explain(err)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, `answer to a clarifying question as "question=answer"`)
	cmd.Flags().Float64Var(&hours, "hours", 0, "time available in hours")
	cmd.Flags().StringVar(&category, "category", "", "goal category")
	cmd.Flags().StringVar(&priority, "priority", "", "overall priority hint")
	cmd.Flags().StringVar(&style, "style", "", "task style (default from config)")
	return cmd
}

func parseAnswers(raw []string) ([]plan.Answer, error) {
	answers := make([]plan.Answer, 0, len(raw))
	for _, r := range raw {
		q, a, ok := strings.Cut(r, "=")
		if !ok || strings.TrimSpace(q) == "" {
			return nil, fmt.Errorf("invalid --answer %q: want question=answer", r)
		}
		answers = append(answers, plan.Answer{Question: strings.TrimSpace(q), Answer: strings.TrimSpace(a)})
	}
	return answers, nil
}
