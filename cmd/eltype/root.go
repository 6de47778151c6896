package main

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"eltype-inspector/descriptor"
	"eltype-inspector/infer"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dump      bool
	qualified bool
	verbose   bool
	renames   map[string]string

	logger *slog.Logger
}

// renamable lists the Go types record scalars decode to.
var renamable = map[string]reflect.Type{
	"bool":    reflect.TypeOf(false),
	"int":     reflect.TypeOf(0),
	"float64": reflect.TypeOf(0.0),
	"string":  reflect.TypeOf(""),
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "eltype",
		Short:        "Infer the element type of records and declared container types",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)

			for from := range opts.renames {
				if _, ok := renamable[from]; !ok {
					return fmt.Errorf("cannot rename %s: not a record scalar type", from)
				}
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.dump, "dump", false, "dump the inferred descriptor structure")
	flags.BoolVar(&opts.qualified, "qualified", false, "qualify named types with their full package path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	flags.StringToStringVar(&opts.renames, "rename", nil, "rename record scalar types, e.g. float64=float,string=str")

	root.AddCommand(newFileCmd(opts), newDeclCmd(opts))

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) inferrer() *infer.Inferrer {
	var namer infer.ScalarNamer = infer.DefaultNamer
	if o.qualified {
		namer = infer.QualifiedNamer
	}

	for from, to := range o.renames {
		if rt, ok := renamable[from]; ok {
			namer = infer.WithCustomName(namer, rt, to)
		}
	}

	return infer.New(infer.WithScalarNamer(namer))
}

func (o *options) report(w io.Writer, label string, d descriptor.Descriptor) {
	fmt.Fprintf(w, "%s: %s\n", label, d)

	if o.dump {
		spew.Fdump(w, d)
	}
}
