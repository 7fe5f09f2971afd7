package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/pkg/diff"
)

type diffOptions struct {
	Props []string
	Stat  bool
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <component>",
		Short: "Compare the web and native resolution of the same props",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Props, "prop", nil, "Prop as name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.Stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, name string, opts *diffOptions) error {
	props, err := parseProps(opts.Props)
	if err != nil {
		return err
	}
	comp, err := root.lookup(cmd, name)
	if err != nil {
		return err
	}

	docs := make([][]byte, 0, len(platform.All))
	for _, p := range platform.All {
		out, _, err := resolveWithTrace(comp.Name, comp.Specs.For(p), props)
		if err != nil {
			return err
		}
		data, err := encodeYAML(out)
		if err != nil {
			return err
		}
		docs = append(docs, data)
	}

	w := cmd.OutOrStdout()
	if opts.Stat {
		stats := diff.Summarize(docs[0], docs[1])
		fmt.Fprintf(w, "%s: %d removed, %d added\n", comp.Name, stats.Removed, stats.Added)
		return nil
	}

	unified := diff.Unified(docs[0], docs[1], comp.Name+" (web)", comp.Name+" (native)")
	if unified == "" {
		fmt.Fprintf(w, "%s resolves identically on web and native\n", comp.Name)
		return nil
	}
	fmt.Fprint(w, unified)
	return nil
}
