package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"ai-tasker/config"
	"ai-tasker/internal/app"
	"ai-tasker/internal/plan"
	"ai-tasker/pkg/log"
)

// plannerLoader builds the planning use case on demand, so offline commands
// never need configuration or credentials.
type plannerLoader func(ctx context.Context, verbose bool) (plan.UseCase, error)

func loadPlanner(ctx context.Context, verbose bool) (plan.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
	})

	p, err := app.NewPlanner(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return p.UseCase, nil
}

func newRootCmd(load plannerLoader) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "planctl",
		Short: "Plan goals with an AI provider from the command line",
		Long: `planctl asks an OpenAI-compatible provider for clarifying questions or a task plan
and prints the decoded records as JSON.

Provider keys are read from the environment, e.g. OPENAI_API_KEY, or from config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log provider traffic")

	getUC := func(cmd *cobra.Command) (plan.UseCase, error) {
		return load(cmd.Context(), verbose)
	}

	root.AddCommand(
		newDecodeCmd(),
		newQuestionsCmd(getUC),
		newTasksCmd(getUC),
		newProvidersCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// explain prefixes err with the user-facing message for its kind.
func explain(err error) error {
	kind := plan.KindOf(err)
	return fmt.Errorf("%s (%s): %w", plan.Message(kind), kind, err)
}
