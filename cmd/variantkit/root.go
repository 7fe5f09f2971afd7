package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variantkit/internal/catalog"
	"github.com/alexisbeaulieu97/variantkit/internal/logger"
	"github.com/alexisbeaulieu97/variantkit/internal/platform"
)

type rootFlags struct {
	verbose    bool
	platform   string
	components []string
	noDefault  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "variantkit",
		Short:         "variantkit resolves component variants into platform styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.platform, "platform", "p", platform.Web.String(), "Target platform (web or native)")
	cmd.PersistentFlags().StringArrayVar(&flags.components, "components", nil, "Directory of component files (repeatable)")
	cmd.PersistentFlags().BoolVar(&flags.noDefault, "no-default-components", false, "Skip the XDG component directory")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newExploreCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
}

func (f *rootFlags) targetPlatform() (platform.Platform, error) {
	p, err := platform.Parse(f.platform)
	if err != nil {
		return 0, newCommandError("select platform", f.platform, err, "Use --platform web or --platform native.")
	}
	return p, nil
}

func (f *rootFlags) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	log, err := f.logger(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cat, err := catalog.Load(catalog.Options{
		Dirs:           f.components,
		IncludeDefault: !f.noDefault,
		Logger:         log,
	})
	if err != nil {
		return nil, newCommandError("load components", strings.Join(f.components, ", "), err,
			"Check the component files for syntax or validation errors.")
	}
	return cat, nil
}

func (f *rootFlags) lookup(cmd *cobra.Command, name string) (catalog.Component, error) {
	cat, err := f.loadCatalog(cmd)
	if err != nil {
		return catalog.Component{}, err
	}
	comp, err := cat.Get(name)
	if err != nil {
		return catalog.Component{}, newCommandError("find component", name, err,
			"Run 'variantkit inspect' to list the available components.")
	}
	return comp, nil
}
