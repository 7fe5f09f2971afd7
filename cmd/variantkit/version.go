package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func currentBuild() buildInfo {
	return buildInfo{Version: version, Commit: commit, Date: date}
}

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild()
			switch format := strings.ToLower(output); format {
			case "text":
				fmt.Fprintf(cmd.OutOrStdout(), "variantkit %s\ncommit: %s\nbuilt: %s\n", info.Version, info.Commit, info.Date)
				return nil
			case "json", "yaml":
				return writeDocument(cmd.OutOrStdout(), format, info)
			default:
				return newCommandError("select output", output, fmt.Errorf("unsupported format"), "Use --output text, yaml or json.")
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, yaml or json")

	return cmd
}
