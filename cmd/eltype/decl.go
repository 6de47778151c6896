package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eltype-inspector/internal/analyze"
)

func newDeclCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decl PATTERN [TYPE...]",
		Short: "Print the declared element type of named Go types",
		Long: `Loads the Go packages matching PATTERN and prints the element type
declared by each TYPE. Types are named bare (Orders), by package (store.Orders)
or by import path (example.com/store.Orders). Without TYPE every exported
type of the loaded packages is listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var aopts []analyze.Option
			if opts.qualified {
				aopts = append(aopts, analyze.WithFullPaths())
			}

			opts.logger.Debug("loading package", "pattern", args[0])

			graph, err := analyze.NewAnalyzer(aopts...).LoadPackages(args[0])
			if err != nil {
				return err
			}

			opts.logger.Debug("package loaded", "types", len(graph.Types))

			if len(args) == 1 {
				return declareAll(cmd, opts, graph)
			}

			for _, name := range args[1:] {
				info, err := graph.Lookup(name)
				if err != nil {
					return err
				}

				if err := declare(cmd, opts, name, info); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func declareAll(cmd *cobra.Command, opts *options, graph *analyze.TypeGraph) error {
	for _, path := range graph.PackagePaths() {
		for _, id := range graph.Packages[path].Types {
			label := id.Short()
			if opts.qualified {
				label = id.String()
			}

			if err := declare(cmd, opts, label, graph.GetType(id)); err != nil {
				return err
			}
		}
	}

	return nil
}

func declare(cmd *cobra.Command, opts *options, label string, info *analyze.TypeInfo) error {
	if info.Generic {
		opts.logger.Warn("generic type declared without type arguments", "type", info.ID.String())
	}

	d, err := opts.inferrer().Eltype(info.Expr)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	opts.report(cmd.OutOrStdout(), label, d)

	return nil
}
