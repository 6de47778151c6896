package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eltype-inspector/internal/ingest"
)

func newFileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH...",
		Short: "Infer the element type of YAML or JSON record files",
		Long: `Loads every file and prints the element type of its records.

A file holding several YAML documents is read as one list of records.
Use !tuple, !set, !!set and !frozenset tags for the matching collections.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := opts.inferrer()

			for _, path := range args {
				opts.logger.Debug("loading records", "path", path)

				records, err := ingest.LoadFile(path)
				if err != nil {
					return err
				}

				d, err := in.Eltype(records)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				opts.logger.Debug("inferred element type", "path", path, "type", d.String())
				opts.report(cmd.OutOrStdout(), path, d)
			}

			return nil
		},
	}
}
