package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/variantkit/internal/diagnostics"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

type resolveOptions struct {
	Props  []string
	Output string
	Strict bool
}

type resolveOutput struct {
	Component            string `json:"component" yaml:"component"`
	Platform             string `json:"platform" yaml:"platform"`
	resolver.RenderInput `yaml:",inline"`
	Findings             []diagnostics.Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve props into the style and forwarded props for one platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Props, "prop", nil, "Prop as name=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "yaml", "Output format: yaml or json")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Report diagnostics and fail on warnings")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, name string, opts *resolveOptions) error {
	format := strings.ToLower(opts.Output)
	if format != "yaml" && format != "json" {
		return newCommandError("select output", opts.Output, fmt.Errorf("unsupported format"), "Use --output yaml or --output json.")
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

	out, trace, err := resolveWithTrace(comp.Name, comp.Specs.For(p), props)
	if err != nil {
		return err
	}

	doc := resolveOutput{Component: comp.Name, Platform: p.String(), RenderInput: out}
	if opts.Strict {
		doc.Findings = diagnostics.Check(trace)
	}

	if err := writeDocument(cmd.OutOrStdout(), format, doc); err != nil {
		return err
	}

	if opts.Strict {
		if err := diagnostics.Strict(doc.Findings); err != nil {
			return newCommandError("resolve strictly", fmt.Sprintf("%s on %s", comp.Name, p), err,
				"Fix the reported props or drop --strict.")
		}
	}
	return nil
}

func resolveWithTrace(name string, spec *resolver.Spec, props style.Props) (resolver.RenderInput, resolver.Trace, error) {
	out, trace, err := resolver.ResolveTrace(spec, props)
	if err != nil {
		return resolver.RenderInput{}, resolver.Trace{}, newCommandError("resolve", name, err,
			"A variant function rejected the props; check the prop values.")
	}
	return out, trace, nil
}

func writeDocument(w io.Writer, format string, doc any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		data, err := encodeYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
}

func encodeYAML(doc any) ([]byte, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return []byte(buf.String()), nil
}
