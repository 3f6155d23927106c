package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"drift/internal/diagfmt"
	"drift/internal/driver"
	"drift/internal/project"
	"drift/internal/ui"
)

var importsCmd = &cobra.Command{
	Use:   "imports [flags] <file.dr|directory>...",
	Short: "Detect and remove unused imports",
	Long: `Analyze Drift source files and rewrite them without their unused imports.
By default the rewritten text goes to standard output; -w rewrites in place,
-l only lists the findings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImports,
}

func init() {
	importsCmd.Flags().BoolP("write", "w", false, "rewrite files in place")
	importsCmd.Flags().BoolP("list", "l", false, "list unused imports without rewriting")
	importsCmd.Flags().Bool("review", false, "review findings interactively before rewriting")
	importsCmd.Flags().Bool("cache", false, "cache list results keyed by file content")
}

func runImports(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	review, err := cmd.Flags().GetBool("review")
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if review && list {
		return fmt.Errorf("--review cannot be combined with --list")
	}

	files, err := expandOperands(args)
	if err != nil {
		return fmt.Errorf("imports: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("imports: no source files found")
	}

	if review {
		return runImportsReview(cmd, files, maxDiagnostics, quiet)
	}

	mode := selectMode(list, write)

	opts := &driver.Options{
		Mode:           mode,
		Out:            cmd.OutOrStdout(),
		MaxDiagnostics: maxDiagnostics,
	}
	if useCache && mode == driver.ModeList {
		cache, err := driver.OpenCache("drift")
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "imports: cache unavailable: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	if err := driver.ProcessFiles(files, opts); err != nil {
		reportRunError(cmd, err)
		return err
	}
	return nil
}

// selectMode resolves the -l/-w flag pair. -l берёт верх над -w:
// сначала посмотреть, потом переписывать.
func selectMode(list, write bool) driver.Mode {
	switch {
	case list:
		return driver.ModeList
	case write:
		return driver.ModeWrite
	default:
		return driver.ModePrint
	}
}

func runImportsReview(cmd *cobra.Command, files []string, maxDiagnostics int, quiet bool) error {
	var pipelines []*driver.Pipeline
	var items []ui.ReviewItem

	for _, path := range files {
		p, err := driver.Analyze(path, maxDiagnostics)
		if err != nil {
			reportRunError(cmd, err)
			return err
		}
		for _, rec := range p.Registry.Unused() {
			items = append(items, ui.ReviewItem{
				File:   path,
				Line:   rec.Start.Line,
				Col:    rec.Start.Col,
				Dotted: rec.DottedPath(),
				Remove: true,
			})
		}
		pipelines = append(pipelines, p)
	}

	if len(items) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no unused imports")
		}
		return nil
	}

	model := ui.NewReviewModel(items)
	prog := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("imports: review failed: %w", err)
	}
	if !model.Accepted() {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "review cancelled, nothing written")
		}
		return nil
	}

	// Снятые находки остаются в файле: запись помечается использованной,
	// и splicer её сохраняет. Файлы без подтверждённых удалений не трогаем.
	final := model.Items()
	itemIdx := 0
	for _, p := range pipelines {
		changed := false
		for _, rec := range p.Registry.Unused() {
			it := final[itemIdx]
			itemIdx++
			if it.Remove {
				changed = true
				continue
			}
			rec.Used = true
		}
		if !changed {
			continue
		}
		if err := p.RewriteInPlace(); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: rewritten\n", p.Path)
		}
	}
	return nil
}

// expandOperands resolves directory operands to .dr files, consulting the
// project manifest for exclude patterns when one is present.
func expandOperands(args []string) ([]string, error) {
	var manifest *project.Manifest
	if path, ok, err := project.FindManifest("."); err == nil && ok {
		if m, err := project.LoadManifest(path); err == nil {
			manifest = &m
		}
	}
	return driver.ExpandArgs(args, manifest)
}

// reportRunError pretty-prints parse diagnostics when the failure carries
// them; plain errors are left for cobra to print.
func reportRunError(cmd *cobra.Command, err error) {
	var parseErr *driver.ParseError
	if !errors.As(err, &parseErr) {
		return
	}
	diagfmt.Pretty(os.Stderr, parseErr.Bag, parseErr.FS, diagfmt.PrettyOpts{
		Color:     useColor(cmd),
		ShowNotes: true,
	})
	// Диагностики уже напечатаны; повторная строка от cobra не нужна.
	cmd.Root().SilenceErrors = true
}
