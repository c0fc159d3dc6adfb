package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/renderers/prompt"
)

func promptCmd(flags *globalFlags) *cobra.Command {
	var (
		name        string
		maxAttempts int
		message     string
		confirm     bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a field value on the terminal until it validates",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.logger()
			store, err := flags.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			f, err := buildField(store, name, field.WithLogger(logger))
			if err != nil {
				return err
			}

			host := prompt.New(
				prompt.WithMaxAttempts(maxAttempts),
				prompt.WithInvalidMessage(message),
				prompt.WithClearPrompt(confirm),
				prompt.WithLogger(logger),
			)
			value, err := host.Run(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "field", "f", "", "field to prompt for")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "give up after this many invalid answers (0 retries forever)")
	cmd.Flags().StringVar(&message, "invalid-message", "invalid value", "message shown after an invalid answer")
	cmd.Flags().BoolVar(&confirm, "confirm-clear", false, "ask before clearing an invalid answer")

	return cmd
}
