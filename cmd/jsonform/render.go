package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/orchestrator"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/renderers/html"
	"github.com/goliatone/go-jsonform/pkg/renderers/prompt"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a schema to a static or prompt-driven output",
	Long: `Render loads the schema document and hands it to the named renderer.
The html renderer writes a standalone document; the prompt renderer asks for
each field on the terminal and emits the collected values.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("renderer", "r", "",
		"renderer to use: html or prompt (default html)")
	renderCmd.Flags().StringP("output", "o", "",
		"output file (stdout if empty)")
	renderCmd.Flags().String("title", "",
		"document title for the html renderer")

	_ = viper.BindPFlag("renderer", renderCmd.Flags().Lookup("renderer"))
	_ = viper.BindPFlag("output", renderCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	src, err := schemaSource()
	if err != nil {
		return err
	}

	registry := render.NewRegistry()

	htmlOptions := []html.Option{}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		htmlOptions = append(htmlOptions, html.WithTitle(title))
	}
	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return fmt.Errorf("initialise html renderer: %w", err)
	}
	registry.MustRegister(htmlRenderer)
	registry.MustRegister(prompt.New())

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(viper.GetString("renderer")),
		orchestrator.WithThemeSelector(staticSelector{}),
	)

	output, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:       src,
		Renderer:     viper.GetString("renderer"),
		ThemeName:    viper.GetString("theme.name"),
		ThemeVariant: viper.GetString("theme.variant"),
		Strategy:     form.Strategy(viper.GetString("strategy")),
	})
	if err != nil {
		return fmt.Errorf("generating form: %w", err)
	}

	return writeOutput(output, viper.GetString("output"))
}

// staticSelector passes the requested theme name through as-is. Useful when
// no manifest registry is configured: the html renderer still stamps the
// data-theme attribute so external stylesheets can pick it up.
type staticSelector struct{}

func (staticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return &theme.Selection{Theme: name, Variant: variant}, nil
}

func writeOutput(data []byte, path string) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Output written to %s\n", path)
	return nil
}
