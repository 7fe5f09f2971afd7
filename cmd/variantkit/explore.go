package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/variantkit/internal/tui"
)

type exploreOptions struct {
	Props []string
	Text  string
}

func newExploreCmd(root *rootFlags) *cobra.Command {
	opts := &exploreOptions{}

	cmd := &cobra.Command{
		Use:   "explore <component>",
		Short: "Interactively cycle variant values and watch the style change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Props, "prop", nil, "Initial prop as name=value (repeatable)")
	cmd.Flags().StringVar(&opts.Text, "text", "", "Sample text for the preview pane")

	return cmd
}

func runExplore(cmd *cobra.Command, root *rootFlags, name string, opts *exploreOptions) error {
	if !isInteractive() {
		return newCommandError("start explorer", name, fmt.Errorf("stdin and stdout must be a terminal"),
			"Use 'variantkit resolve' or 'variantkit preview' in scripts.")
	}

	p, err := root.targetPlatform()
	if err != nil {
		return err
	}
	props, err := parseProps(opts.Props)
	if err != nil {
		return err
	}
	comp, err := root.lookup(cmd, name)
	if err != nil {
		return err
	}

	model := tui.NewModel(comp, tui.Options{Platform: p, Sample: opts.Text, Props: props})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return newCommandError("run explorer", name, err, "Try a larger terminal or run with --verbose.")
	}
	return nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
