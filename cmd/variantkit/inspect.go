package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

func newInspectCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [component]",
		Short: "List components or show how one is declared on each platform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInspectList(cmd, root)
			}
			return runInspectComponent(cmd, root, args[0])
		},
	}

	return cmd
}

func runInspectList(cmd *cobra.Command, root *rootFlags) error {
	cat, err := root.loadCatalog(cmd)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tWEB\tNATIVE\tSOURCE\tDESCRIPTION")
	for _, comp := range cat.List() {
		fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%s\n",
			comp.Name,
			comp.Specs.Web.Variants().Len(),
			comp.Specs.Native.Variants().Len(),
			comp.Source,
			valueOrFallback(comp.Description, "-"),
		)
	}
	return writer.Flush()
}

func runInspectComponent(cmd *cobra.Command, root *rootFlags, name string) error {
	comp, err := root.lookup(cmd, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bullet := "-"
	if supportsUnicode(out) {
		bullet = "•"
	}

	fmt.Fprintf(out, "%s (%s)\n", comp.Name, comp.Source)
	if comp.Description != "" {
		fmt.Fprintf(out, "%s\n", comp.Description)
	}
	for _, p := range platform.All {
		writeSpec(out, comp.Specs.For(p), bullet)
	}
	return nil
}

func writeSpec(w io.Writer, spec *resolver.Spec, bullet string) {
	fmt.Fprintf(w, "\n[%s]\n", spec.Platform())

	var traits []string
	if spec.IsText() {
		traits = append(traits, "text")
	}
	if spec.AcceptsClassName() {
		traits = append(traits, "className")
	}
	if len(traits) > 0 {
		fmt.Fprintf(w, "traits: %s\n", strings.Join(traits, ", "))
	}

	fmt.Fprintf(w, "base style: %s\n", formatFragment(spec.BaseStyle()))
	fmt.Fprintf(w, "default props: %s\n", formatFragment(style.Fragment(spec.DefaultProps())))

	fmt.Fprintln(w, "variants:")
	entries := spec.Variants().Entries()
	if len(entries) == 0 {
		fmt.Fprintf(w, "  %s none\n", bullet)
	}
	for _, entry := range entries {
		line := fmt.Sprintf("  %s %s: %s", bullet, entry.Name, strings.Join(entry.Definition.Discriminants(), " | "))
		if spec.Deopt().Retain(entry.Name) {
			line += " (live)"
		}
		fmt.Fprintln(w, line)
	}

	if names := spec.Deopt().Names(); len(names) > 0 {
		fmt.Fprintf(w, "live props: %s\n", strings.Join(names, ", "))
	}
	if inline := spec.InlineWhenUnflattened(); len(inline) > 0 {
		fmt.Fprintf(w, "inline when unflattened: %s\n", strings.Join(inline, ", "))
	}
}

func formatFragment(frag style.Fragment) string {
	if len(frag) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(frag))
	for _, key := range frag.Keys() {
		v := frag[key]
		if s, ok := v.Str(); ok {
			parts = append(parts, fmt.Sprintf("%s=%q", key, s))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
