package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/variantkit/internal/preview"
)

const defaultPreviewWidth = 40

type previewOptions struct {
	Props []string
	Text  string
	Width int
	Light bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <component>",
		Short: "Render sample text with the resolved style in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Props, "prop", nil, "Prop as name=value (repeatable)")
	cmd.Flags().StringVar(&opts.Text, "text", "The quick brown fox jumps over the lazy dog", "Sample text")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Width in cells (defaults to the terminal width)")
	cmd.Flags().BoolVar(&opts.Light, "light", false, "Use the light palette")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, name string, opts *previewOptions) error {
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

	out, _, err := resolveWithTrace(comp.Name, comp.Specs.For(p), props)
	if err != nil {
		return err
	}

	theme := preview.DefaultTheme()
	if opts.Light {
		theme = preview.NewTheme(preview.LightPalette, preview.BaseTemplate)
	}

	width := opts.Width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	fmt.Fprintln(cmd.OutOrStdout(), preview.Render(out, opts.Text, preview.Options{Theme: theme, Width: width}))
	return nil
}

func terminalWidth(writer any) int {
	if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultPreviewWidth
}
