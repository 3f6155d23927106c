package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drift/internal/diag"
	"drift/internal/diagfmt"
	"drift/internal/parser"
	"drift/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.dr>",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	file, ok := parser.ParseFile(fs.Get(id), diag.BagReporter{Bag: bag})

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd),
			ShowNotes: true,
		})
	}
	if !ok {
		return fmt.Errorf("parse: %s has syntax errors", args[0])
	}

	return diagfmt.FormatASTPretty(cmd.OutOrStdout(), file, fs.Get(id), fs)
}
