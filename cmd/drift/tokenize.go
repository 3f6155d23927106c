package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drift/internal/diag"
	"drift/internal/diagfmt"
	"drift/internal/lexer"
	"drift/internal/source"
	"drift/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.dr>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fs.Get(id), diag.BagReporter{Bag: bag})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	switch formatName {
	case "json":
		if err := diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens); err != nil {
			return err
		}
	case "pretty":
		if err := diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, fs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", formatName)
	}

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{Color: useColor(cmd)})
	}
	return nil
}
