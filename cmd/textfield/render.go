package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/renderers/html"
	"github.com/goliatone/go-textfield/pkg/renderers/tui"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		name     string
		renderer string
		page     bool
		output   string
		accent   string
		focus    bool
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a field to HTML or ANSI",
		Example: `  textfield render -c fields.yaml --field email --page --out email.html
  textfield render -c fields.yaml --field email --renderer ansi --validate`,
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
			f.Mount()
			defer f.Unmount()
			if focus {
				f.Focus()
			}
			if validate {
				f.Validate()
			}

			htmlOptions := []html.Option{html.WithLogger(logger)}
			if page {
				htmlOptions = append(htmlOptions, html.WithPage(""))
			}
			htmlRenderer, err := html.New(htmlOptions...)
			if err != nil {
				return err
			}
			registry, err := render.NewRegistry(htmlRenderer, tui.NewStaticRenderer())
			if err != nil {
				return err
			}

			out, _, err := registry.Render(cmd.Context(), renderer, render.ViewOf(f, render.Palette{}), render.RenderOptions{
				ID:     "textfield-" + f.Name(),
				Accent: accent,
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("field rendered", "field", f.Name(), "renderer", renderer, "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "field", "f", "", "field to render")
	cmd.Flags().StringVarP(&renderer, "renderer", "r", html.Name, "renderer name (html, ansi)")
	cmd.Flags().BoolVar(&page, "page", false, "wrap HTML output in a standalone page")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&accent, "accent", "", "override the accent color")
	cmd.Flags().BoolVar(&focus, "focus", false, "focus the field before rendering")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the field before rendering")

	return cmd
}
