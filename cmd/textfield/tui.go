package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/renderers/tui"
)

func tuiCmd(flags *globalFlags) *cobra.Command {
	var (
		name    string
		width   int
		message string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a field in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so transitions are not logged.
			// The trailing icon acts as a clear button.
			f, err := buildField(store, name, field.WithIconClick(func(h field.Handle) {
				h.Clear()
			}))
			if err != nil {
				return err
			}

			value, err := tui.Program{Out: cmd.ErrOrStderr()}.Run(cmd.Context(), f,
				tui.WithWidth(width),
				tui.WithErrorMessage(message),
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "field", "f", "", "field to edit")
	cmd.Flags().IntVar(&width, "width", 40, "field width in cells")
	cmd.Flags().StringVar(&message, "invalid-message", "invalid value", "message shown while the field is in error")

	return cmd
}
