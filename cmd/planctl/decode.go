package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
)

type decodeOutput struct {
	Kind               string                     `json:"kind"`
	Strategy           string                     `json:"strategy"`
	ProjectTitle       string                     `json:"projectTitle,omitempty"`
	ProjectDescription string                     `json:"projectDescription,omitempty"`
	Questions          []model.ClarifyingQuestion `json:"questions,omitempty"`
	Tasks              []model.GeneratedTask      `json:"tasks,omitempty"`
}

func newDecodeCmd() *cobra.Command {
	var (
		kindFlag string
		envelope bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode saved model output without calling a provider",
		Long: `Read model output from a file, or stdin when no file or "-" is given, run it
through the decode pipeline and print the records with the strategy that matched.

Use --envelope when the input is a full chat-completion response body.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := decode.ParseKind(kindFlag)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			content := string(raw)
			if envelope {
				if content, err = decode.UnwrapEnvelope(raw); err != nil {
					return explain(err)
				}
			}

			res, err := decode.New().Decode(content, kind)
			if err != nil {
				return explain(err)
			}
			return printJSON(cmd.OutOrStdout(), decodeOutput{
				Kind:               res.Kind.String(),
				Strategy:           res.Strategy,
				ProjectTitle:       res.ProjectTitle,
				ProjectDescription: res.ProjectDescription,
				Questions:          res.Questions,
				Tasks:              res.Tasks,
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "tasks", "record kind: questions or tasks")
	cmd.Flags().BoolVar(&envelope, "envelope", false, "input is a chat-completion response body")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}
