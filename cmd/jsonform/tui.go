package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	jsonform "github.com/goliatone/go-jsonform"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/renderers/tui"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Fill in the form interactively in the terminal",
	Long: `Open the schema as an interactive terminal form. Submitting with
ctrl+s writes the collected values as JSON; cancelling with esc exits
without writing anything.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringP("output", "o", "form_output.json",
		"file the submitted values are written to")
	tuiCmd.Flags().Bool("debug", false,
		"write a jsonform.log debug file")

	// Running jsonform with no subcommand opens the interactive form.
	rootCmd.RunE = runTUI
	rootCmd.Flags().StringP("output", "o", "form_output.json",
		"file the submitted values are written to")
	rootCmd.Flags().Bool("debug", false,
		"write a jsonform.log debug file")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	src, err := schemaSource()
	if err != nil {
		return err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		f, err := tea.LogToFile("jsonform.log", "jsonform")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	loader := jsonform.NewLoader()
	doc, err := loader.Load(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	s, err := doc.Parse()
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	renderer := tui.New(tui.WithProgramOptions(tea.WithAltScreen()))
	data, err := renderer.Render(cmd.Context(), s, render.Options{
		Strategy: form.Strategy(viper.GetString("strategy")),
	})
	if errors.Is(err, tui.ErrAborted) {
		fmt.Println("Cancelled, nothing written.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("running form: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	return writeOutput(data, output)
}
