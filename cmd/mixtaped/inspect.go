package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/cobra"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/validation"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Show how each archive entry would be extracted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := zip.OpenReader(args[0])
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer func() { _ = r.Close() }()

			rows, summary := inspectEntries(r.File)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Entry", "Kind", "Extracted as", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintln(out, summary)
			return nil
		},
	}
}

// inspectEntries mirrors extraction: entries are flattened to a sanitized
// basename and later duplicates are skipped.
func inspectEntries(files []*zip.File) ([][]string, string) {
	rows := make([][]string, 0, len(files))
	seen := make(map[string]bool)
	counts := make(map[domain.EntryKind]int)
	for _, f := range files {
		kind := domain.ClassifyEntry(f.Name)
		target := "-"
		if kind != domain.EntrySkip {
			target = validation.EntryBaseName(f.Name)
			if seen[target] {
				kind = domain.EntrySkip
				target = "- (duplicate)"
			} else {
				seen[target] = true
			}
		}
		counts[kind]++
		rows = append(rows, []string{f.Name, string(kind), target, humanize.Bytes(f.UncompressedSize64)})
	}
	summary := fmt.Sprintf("%d audio, %d images, %d skipped",
		counts[domain.EntryAudio], counts[domain.EntryImage], counts[domain.EntrySkip])
	return rows, summary
}
