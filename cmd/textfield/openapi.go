package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func openapiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the field definitions derived from an OpenAPI schema",
		Long: `Print converts the component schema named by --schema into the YAML
field definition format accepted by --config.`,
		Example: `  textfield openapi --openapi api.yaml --schema Account > fields.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.openapi == "" {
				return errors.New("--openapi is required")
			}
			store, err := flags.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			out, err := store.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
